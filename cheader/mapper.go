package cheader

import (
	"fmt"

	"github.com/wippyai/bridgegen/bridge"
	"github.com/wippyai/bridgegen/errors"
)

// cType is the C-side view of one bridge type: its declaration
// representation, the library include it needs (empty for none), and the
// element representation of the slice wrapper it requires (empty for
// non-slices). ElemInclude is the include the wrapper's element type
// needs; the wrapper definition references the element directly, so its
// include is required even when the declaration itself never names it.
type cType struct {
	Repr        string
	Include     string
	SliceElem   string
	ElemInclude string
}

// scalarReprs is the fixed table of C representations for scalar kinds.
// It is never mutated after initialization.
var scalarReprs = map[bridge.Scalar]cType{
	bridge.Bool:  {Repr: "bool", Include: "stdbool.h"},
	bridge.U8:    {Repr: "uint8_t", Include: "stdint.h"},
	bridge.I8:    {Repr: "int8_t", Include: "stdint.h"},
	bridge.U16:   {Repr: "uint16_t", Include: "stdint.h"},
	bridge.I16:   {Repr: "int16_t", Include: "stdint.h"},
	bridge.U32:   {Repr: "uint32_t", Include: "stdint.h"},
	bridge.I32:   {Repr: "int32_t", Include: "stdint.h"},
	bridge.U64:   {Repr: "uint64_t", Include: "stdint.h"},
	bridge.I64:   {Repr: "int64_t", Include: "stdint.h"},
	bridge.Usize: {Repr: "uintptr_t", Include: "stdint.h"},
	bridge.Isize: {Repr: "intptr_t", Include: "stdint.h"},
	bridge.F32:   {Repr: "float"},
	bridge.F64:   {Repr: "double"},
}

// mapType maps a bridge type to its C representation. path is the symbol
// path used for error context only.
func mapType(t bridge.Type, path ...string) (cType, error) {
	switch t := t.(type) {
	case bridge.Scalar:
		ct, ok := scalarReprs[t]
		if !ok {
			return cType{}, errors.UnmappedType(path, t.String())
		}
		return ct, nil
	case bridge.OpaqueRef:
		return cType{Repr: "void*"}, nil
	case bridge.ValueRef:
		return cType{Repr: "struct " + t.Name}, nil
	case bridge.RefSlice:
		// Only scalar elements have reprs that form valid C identifiers
		// when embedded in the wrapper name; entity references do not.
		scalar, ok := t.Elem.(bridge.Scalar)
		if !ok {
			return cType{}, errors.New(errors.PhaseMap, errors.KindUnmappedType).
				Path(path...).
				Detail("slice element must be a scalar kind, got %T", t.Elem).
				Build()
		}
		elem, err := mapType(scalar, path...)
		if err != nil {
			return cType{}, err
		}
		// The wrapper embeds a uintptr_t length, so every slice pulls in
		// stdint.h even when the element itself does not.
		return cType{
			Repr:        "struct " + sliceWrapperName(elem.Repr),
			Include:     "stdint.h",
			SliceElem:   elem.Repr,
			ElemInclude: elem.Include,
		}, nil
	default:
		return cType{}, errors.UnmappedType(path, fmt.Sprintf("%T", t))
	}
}

// sliceWrapperName returns the synthesized wrapper struct name for a
// slice element representation. Declaration emission and bookkeeping
// both go through here so the two can never diverge.
func sliceWrapperName(elem string) string {
	return "FfiSlice_" + elem
}
