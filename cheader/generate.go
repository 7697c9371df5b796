package cheader

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/bridgegen/bridge"
	"github.com/wippyai/bridgegen/errors"
)

// Notice is the first line of every generated header.
const Notice = "// File automatically generated by bridgegen. Do not edit."

// Generate produces the C header for a module. The output is fully
// deterministic: the same model yields byte-identical text.
func Generate(m *bridge.Module) (string, error) {
	log := Logger()
	log.Debug("generating C header",
		zap.String("module", m.Name),
		zap.Int("entities", len(m.Entities)),
		zap.Int("functions", len(m.Functions)))

	g := &generator{book: newBookkeeping()}

	var decls strings.Builder
	for _, ent := range m.Entities {
		if err := g.entity(&decls, ent); err != nil {
			return "", err
		}
	}
	for i := range m.Functions {
		if err := g.function(&decls, &m.Functions[i]); err != nil {
			return "", err
		}
	}

	var out strings.Builder
	out.WriteString(Notice)
	out.WriteByte('\n')
	for _, inc := range g.book.sortedIncludes() {
		fmt.Fprintf(&out, "#include <%s>\n", inc)
	}
	for _, elem := range g.book.sortedSliceElems() {
		name := sliceWrapperName(elem)
		fmt.Fprintf(&out, "typedef struct %s { %s* start; uintptr_t len; } %s;\n", name, elem, name)
	}
	out.WriteString(decls.String())

	log.Debug("assembled C header",
		zap.String("module", m.Name),
		zap.Int("includes", len(g.book.includes)),
		zap.Int("slice_wrappers", len(g.book.sliceElems)))

	return out.String(), nil
}

type generator struct {
	book *bookkeeping
}

func (g *generator) entity(w *strings.Builder, ent bridge.Entity) error {
	switch ent := ent.(type) {
	case bridge.ValueType:
		return g.valueType(w, ent)
	case bridge.OpaqueHandle:
		g.opaqueHandle(w, ent)
		return nil
	default:
		return errors.InvalidData(errors.PhaseEmit, []string{ent.EntityName()},
			fmt.Sprintf("unknown entity variant %T", ent))
	}
}

// valueType emits `typedef struct Name { f0; f1; } Name;`, with the
// brace body omitted entirely for zero fields. Unnamed fields are
// numbered by their zero-based position among all fields.
func (g *generator) valueType(w *strings.Builder, vt bridge.ValueType) error {
	fields := make([]string, 0, len(vt.Fields))
	for i, f := range vt.Fields {
		name := f.Name
		if name == "" {
			name = fmt.Sprintf("_%d", i)
		}
		ct, err := mapType(f.Type, vt.Name, name)
		if err != nil {
			return err
		}
		g.book.record(ct)
		fields = append(fields, ct.Repr+" "+name)
	}

	body := ""
	if len(fields) > 0 {
		body = " { " + strings.Join(fields, "; ") + "; }"
	}
	fmt.Fprintf(w, "typedef struct %s%s %s;\n", vt.Name, body, vt.Name)
	return nil
}

// opaqueHandle emits the opaque typedef and destructor declaration for a
// native-owned handle. Foreign-owned handles live entirely on the other
// side and get no declaration at all.
func (g *generator) opaqueHandle(w *strings.Builder, h bridge.OpaqueHandle) {
	if h.Owner == bridge.OwnerForeign {
		return
	}
	fmt.Fprintf(w, "typedef struct %s %s;\n", h.Name, h.Name)
	fmt.Fprintf(w, "void %s(void* self);\n", bridge.FreeName(h.Name))
}

// function emits one declaration line for a native-owned function.
// Every receiver variant collapses to a single leading `void* self`
// parameter; an otherwise empty parameter list renders as `void`.
func (g *generator) function(w *strings.Builder, fn *bridge.Function) error {
	if fn.Owner == bridge.OwnerForeign {
		return nil
	}

	params := make([]string, 0, len(fn.Params)+1)
	if fn.Receiver.HasSelf() {
		params = append(params, "void* self")
	}
	for _, p := range fn.Params {
		ct, err := mapType(p.Type, fn.Name, p.Name)
		if err != nil {
			return err
		}
		g.book.record(ct)
		params = append(params, ct.Repr+" "+p.Name)
	}
	list := "void"
	if len(params) > 0 {
		list = strings.Join(params, ", ")
	}

	ret := "void"
	if fn.Result != nil {
		ct, err := mapType(fn.Result, fn.Name)
		if err != nil {
			return err
		}
		g.book.record(ct)
		ret = ct.Repr
	}

	fmt.Fprintf(w, "%s %s(%s);\n", ret, fn.LinkName(), list)
	return nil
}
