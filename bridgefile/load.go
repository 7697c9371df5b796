package bridgefile

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/wippyai/bridgegen/bridge"
	"github.com/wippyai/bridgegen/errors"
)

// file mirrors the TOML structure of a bridge definition.
type file struct {
	Module  moduleSection   `toml:"module"`
	Structs []structSection `toml:"struct"`
	Handles []handleSection `toml:"handle"`
	Fns     []fnSection     `toml:"fn"`
}

type moduleSection struct {
	Name string `toml:"name"`
}

type structSection struct {
	Name   string         `toml:"name"`
	Fields []fieldSection `toml:"fields"`
}

type fieldSection struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

type handleSection struct {
	Name  string `toml:"name"`
	Owner string `toml:"owner"`
}

type fnSection struct {
	Name         string         `toml:"name"`
	Owner        string         `toml:"owner"`
	Receiver     string         `toml:"receiver"`
	ReceiverKind string         `toml:"receiver_kind"`
	Params       []fieldSection `toml:"params"`
	Returns      string         `toml:"returns"`
}

// entKind distinguishes the two entity namespaces during resolution.
type entKind uint8

const (
	entStruct entKind = iota
	entHandle
)

// Load reads and resolves a bridge definition file.
func Load(path string) (*bridge.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load(fmt.Sprintf("read %s", path), err)
	}
	return Parse(data)
}

// Parse decodes a bridge definition and resolves it into a validated
// bridge.Module: unique names, every type reference bound. The returned
// module satisfies the trusted-input contract of the generators.
func Parse(data []byte) (*bridge.Module, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Load("decode bridge file", err)
	}
	if f.Module.Name == "" {
		return nil, errors.InvalidInput(errors.PhaseLoad, "missing [module] name")
	}

	kinds := make(map[string]entKind, len(f.Structs)+len(f.Handles))
	m := &bridge.Module{Name: f.Module.Name}

	for _, s := range f.Structs {
		if s.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseLoad, "struct with no name")
		}
		if _, ok := kinds[s.Name]; ok {
			return nil, errors.Duplicate(errors.PhaseLoad, "entity", s.Name)
		}
		kinds[s.Name] = entStruct
	}
	for _, h := range f.Handles {
		if h.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseLoad, "handle with no name")
		}
		if _, ok := kinds[h.Name]; ok {
			return nil, errors.Duplicate(errors.PhaseLoad, "entity", h.Name)
		}
		kinds[h.Name] = entHandle
	}

	// Entities keep their declaration order: structs first, then handles,
	// exactly as written in the file.
	for _, s := range f.Structs {
		vt := bridge.ValueType{Name: s.Name}
		for i, fld := range s.Fields {
			ty, err := parseType(fld.Type, kinds, s.Name, fieldLabel(fld.Name, i))
			if err != nil {
				return nil, err
			}
			vt.Fields = append(vt.Fields, bridge.Field{Name: fld.Name, Type: ty})
		}
		m.Entities = append(m.Entities, vt)
	}
	for _, h := range f.Handles {
		owner, err := parseOwner(h.Owner, h.Name)
		if err != nil {
			return nil, err
		}
		m.Entities = append(m.Entities, bridge.OpaqueHandle{Name: h.Name, Owner: owner})
	}

	for _, fn := range f.Fns {
		if fn.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseLoad, "fn with no name")
		}
		owner, err := parseOwner(fn.Owner, fn.Name)
		if err != nil {
			return nil, err
		}
		recv, err := parseReceiver(fn, kinds)
		if err != nil {
			return nil, err
		}

		out := bridge.Function{Name: fn.Name, Receiver: recv, Owner: owner}
		for i, p := range fn.Params {
			name := p.Name
			if name == "" {
				name = fmt.Sprintf("arg%d", i)
			}
			ty, err := parseType(p.Type, kinds, fn.Name, name)
			if err != nil {
				return nil, err
			}
			out.Params = append(out.Params, bridge.Param{Name: name, Type: ty})
		}
		if fn.Returns != "" {
			ty, err := parseType(fn.Returns, kinds, fn.Name, "returns")
			if err != nil {
				return nil, err
			}
			out.Result = ty
		}
		m.Functions = append(m.Functions, out)
	}

	Logger().Debug("loaded bridge definition",
		zap.String("module", m.Name),
		zap.Int("entities", len(m.Entities)),
		zap.Int("functions", len(m.Functions)))

	return m, nil
}

func fieldLabel(name string, idx int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("_%d", idx)
}

var scalars = map[string]bridge.Scalar{
	"bool":  bridge.Bool,
	"u8":    bridge.U8,
	"i8":    bridge.I8,
	"u16":   bridge.U16,
	"i16":   bridge.I16,
	"u32":   bridge.U32,
	"i32":   bridge.I32,
	"u64":   bridge.U64,
	"i64":   bridge.I64,
	"usize": bridge.Usize,
	"isize": bridge.Isize,
	"f32":   bridge.F32,
	"f64":   bridge.F64,
}

// parseType resolves one type expression: a scalar name, `&[T]`, or the
// name of a declared entity.
func parseType(expr string, kinds map[string]entKind, path ...string) (bridge.Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.InvalidData(errors.PhaseLoad, path, "empty type expression")
	}

	if inner, ok := strings.CutPrefix(expr, "&["); ok {
		inner, ok = strings.CutSuffix(inner, "]")
		if !ok {
			return nil, errors.InvalidData(errors.PhaseLoad, path,
				fmt.Sprintf("malformed slice type %q", expr))
		}
		elem, err := parseType(inner, kinds, path...)
		if err != nil {
			return nil, err
		}
		// Scalar elements only: entity elements have no C-identifier
		// wrapper name, and slices never nest.
		if _, ok := elem.(bridge.Scalar); !ok {
			return nil, errors.InvalidData(errors.PhaseLoad, path,
				fmt.Sprintf("slice element %q must be a scalar type", strings.TrimSpace(inner)))
		}
		return bridge.RefSlice{Elem: elem}, nil
	}

	if s, ok := scalars[expr]; ok {
		return s, nil
	}

	if k, ok := kinds[expr]; ok {
		if k == entStruct {
			return bridge.ValueRef{Name: expr}, nil
		}
		return bridge.OpaqueRef{Name: expr}, nil
	}
	return nil, errors.NotFound(errors.PhaseLoad, "type", expr)
}

func parseOwner(s, symbol string) (bridge.Owner, error) {
	switch s {
	case "", "native":
		return bridge.OwnerNative, nil
	case "foreign":
		return bridge.OwnerForeign, nil
	default:
		return 0, errors.InvalidData(errors.PhaseLoad, []string{symbol},
			fmt.Sprintf("unknown owner %q", s))
	}
}

func parseReceiver(fn fnSection, kinds map[string]entKind) (bridge.Receiver, error) {
	if fn.Receiver == "" {
		if fn.ReceiverKind != "" {
			return bridge.Receiver{}, errors.InvalidData(errors.PhaseLoad, []string{fn.Name},
				"receiver_kind without receiver")
		}
		return bridge.Receiver{Kind: bridge.RecvNone}, nil
	}
	if _, ok := kinds[fn.Receiver]; !ok {
		return bridge.Receiver{}, errors.NotFound(errors.PhaseLoad, "receiver entity", fn.Receiver)
	}

	kind := bridge.RecvRef
	switch fn.ReceiverKind {
	case "", "ref":
	case "value":
		kind = bridge.RecvValue
	case "mut", "mut_ref":
		kind = bridge.RecvMutRef
	default:
		return bridge.Receiver{}, errors.InvalidData(errors.PhaseLoad, []string{fn.Name},
			fmt.Sprintf("unknown receiver_kind %q", fn.ReceiverKind))
	}
	return bridge.Receiver{Entity: fn.Receiver, Kind: kind}, nil
}
