package bridge

// Type is the closed set of types that can cross the bridge boundary.
// Consumers switch exhaustively over Scalar, OpaqueRef, ValueRef and
// RefSlice; adding a variant is a compile-visible change at every
// consumption site.
type Type interface {
	isType()
}

// Scalar is a fixed-width primitive type.
type Scalar uint8

const (
	Bool Scalar = iota
	U8
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	Usize
	Isize
	F32
	F64
)

func (Scalar) isType() {}

var scalarNames = [...]string{
	Bool:  "bool",
	U8:    "u8",
	I8:    "i8",
	U16:   "u16",
	I16:   "i16",
	U32:   "u32",
	I32:   "i32",
	U64:   "u64",
	I64:   "i64",
	Usize: "usize",
	Isize: "isize",
	F32:   "f32",
	F64:   "f64",
}

func (s Scalar) String() string {
	if int(s) < len(scalarNames) {
		return scalarNames[s]
	}
	return "unknown"
}

// OpaqueRef references an opaque handle entity by name. The referenced
// layout is never visible across the boundary.
type OpaqueRef struct {
	Name string
}

func (OpaqueRef) isType() {}

// ValueRef references a value-type entity by name. Values of the
// referenced type are passed by value across the boundary.
type ValueRef struct {
	Name string
}

func (ValueRef) isType() {}

// RefSlice is a borrowed, length-bounded view over contiguous elements.
// Elem must be a Scalar: entity elements have no C-identifier wrapper
// name, and slices never nest.
type RefSlice struct {
	Elem Type
}

func (RefSlice) isType() {}
