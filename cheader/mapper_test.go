package cheader

import (
	"errors"
	"testing"

	"github.com/wippyai/bridgegen/bridge"
	bgerrors "github.com/wippyai/bridgegen/errors"
)

func TestMapScalars(t *testing.T) {
	tests := []struct {
		scalar  bridge.Scalar
		repr    string
		include string
	}{
		{bridge.Bool, "bool", "stdbool.h"},
		{bridge.U8, "uint8_t", "stdint.h"},
		{bridge.I8, "int8_t", "stdint.h"},
		{bridge.U16, "uint16_t", "stdint.h"},
		{bridge.I16, "int16_t", "stdint.h"},
		{bridge.U32, "uint32_t", "stdint.h"},
		{bridge.I32, "int32_t", "stdint.h"},
		{bridge.U64, "uint64_t", "stdint.h"},
		{bridge.I64, "int64_t", "stdint.h"},
		{bridge.Usize, "uintptr_t", "stdint.h"},
		{bridge.Isize, "intptr_t", "stdint.h"},
		{bridge.F32, "float", ""},
		{bridge.F64, "double", ""},
	}

	for _, tc := range tests {
		t.Run(tc.scalar.String(), func(t *testing.T) {
			ct, err := mapType(tc.scalar)
			if err != nil {
				t.Fatalf("mapType(%s) error: %v", tc.scalar, err)
			}
			if ct.Repr != tc.repr {
				t.Errorf("Repr = %q, want %q", ct.Repr, tc.repr)
			}
			if ct.Include != tc.include {
				t.Errorf("Include = %q, want %q", ct.Include, tc.include)
			}
			if ct.SliceElem != "" {
				t.Errorf("SliceElem = %q, want empty", ct.SliceElem)
			}
		})
	}
}

func TestMapOpaqueRef(t *testing.T) {
	ct, err := mapType(bridge.OpaqueRef{Name: "Canvas"})
	if err != nil {
		t.Fatalf("mapType error: %v", err)
	}
	if ct.Repr != "void*" {
		t.Errorf("Repr = %q, want %q", ct.Repr, "void*")
	}
	if ct.Include != "" {
		t.Errorf("Include = %q, want empty", ct.Include)
	}
}

func TestMapValueRef(t *testing.T) {
	ct, err := mapType(bridge.ValueRef{Name: "Point"})
	if err != nil {
		t.Fatalf("mapType error: %v", err)
	}
	if ct.Repr != "struct Point" {
		t.Errorf("Repr = %q, want %q", ct.Repr, "struct Point")
	}
}

func TestMapRefSlice(t *testing.T) {
	tests := []struct {
		name        string
		elem        bridge.Scalar
		repr        string
		sliceElem   string
		elemInclude string
	}{
		{"u8", bridge.U8, "struct FfiSlice_uint8_t", "uint8_t", "stdint.h"},
		{"bool", bridge.Bool, "struct FfiSlice_bool", "bool", "stdbool.h"},
		{"f64", bridge.F64, "struct FfiSlice_double", "double", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ct, err := mapType(bridge.RefSlice{Elem: tc.elem})
			if err != nil {
				t.Fatalf("mapType error: %v", err)
			}
			if ct.Repr != tc.repr {
				t.Errorf("Repr = %q, want %q", ct.Repr, tc.repr)
			}
			if ct.SliceElem != tc.sliceElem {
				t.Errorf("SliceElem = %q, want %q", ct.SliceElem, tc.sliceElem)
			}
			if ct.Include != "stdint.h" {
				t.Errorf("Include = %q, want stdint.h", ct.Include)
			}
			if ct.ElemInclude != tc.elemInclude {
				t.Errorf("ElemInclude = %q, want %q", ct.ElemInclude, tc.elemInclude)
			}
		})
	}
}

// Entity-typed slice elements have no C-identifier wrapper name and
// must map to a typed error, never to malformed C.
func TestMapSliceEntityElem(t *testing.T) {
	tests := []struct {
		name string
		elem bridge.Type
	}{
		{"value type element", bridge.ValueRef{Name: "Point"}},
		{"opaque handle element", bridge.OpaqueRef{Name: "Canvas"}},
		{"nested slice element", bridge.RefSlice{Elem: bridge.U8}},
	}

	target := &bgerrors.Error{Phase: bgerrors.PhaseMap, Kind: bgerrors.KindUnmappedType}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapType(bridge.RefSlice{Elem: tc.elem}, "foo")
			if err == nil {
				t.Fatal("expected error for non-scalar slice element")
			}
			if !errors.Is(err, target) {
				t.Errorf("error = %v, want unmapped_type in map phase", err)
			}
		})
	}
}

// The declared and synthesized wrapper names come from the same helper;
// this pins the convention.
func TestSliceWrapperName(t *testing.T) {
	if got := sliceWrapperName("uint8_t"); got != "FfiSlice_uint8_t" {
		t.Errorf("sliceWrapperName = %q, want FfiSlice_uint8_t", got)
	}
}

// A scalar kind outside the table is a typed mapping error, never a
// panic or silent partial output.
func TestMapUnknownScalar(t *testing.T) {
	_, err := mapType(bridge.Scalar(99), "Widget", "field")
	if err == nil {
		t.Fatal("expected error for unknown scalar kind")
	}
	target := &bgerrors.Error{Phase: bgerrors.PhaseMap, Kind: bgerrors.KindUnmappedType}
	if !errors.Is(err, target) {
		t.Errorf("error = %v, want unmapped_type in map phase", err)
	}

	var mapErr *bgerrors.Error
	if !errors.As(err, &mapErr) {
		t.Fatal("error should be *errors.Error")
	}
	if len(mapErr.Path) != 2 || mapErr.Path[0] != "Widget" {
		t.Errorf("Path = %v, want [Widget field]", mapErr.Path)
	}
}

// An unmapped element type inside a slice propagates the same error.
func TestMapSliceUnknownElem(t *testing.T) {
	_, err := mapType(bridge.RefSlice{Elem: bridge.Scalar(99)})
	target := &bgerrors.Error{Phase: bgerrors.PhaseMap, Kind: bgerrors.KindUnmappedType}
	if !errors.Is(err, target) {
		t.Errorf("error = %v, want unmapped_type in map phase", err)
	}
}
