package bridge

// Owner identifies which side of the bridge implements a symbol.
type Owner uint8

const (
	// OwnerNative marks symbols implemented by the native build. Only
	// native-owned symbols appear in the generated header.
	OwnerNative Owner = iota
	// OwnerForeign marks symbols implemented by the foreign runtime.
	OwnerForeign
)

var ownerNames = [...]string{
	OwnerNative:  "native",
	OwnerForeign: "foreign",
}

func (o Owner) String() string {
	if int(o) < len(ownerNames) {
		return ownerNames[o]
	}
	return "unknown"
}

// Entity is the closed set of declared bridge entities: ValueType and
// OpaqueHandle. Each entity is declared once per module and identified
// uniquely by name.
type Entity interface {
	isEntity()

	// EntityName returns the entity's declared name.
	EntityName() string
}

// ValueType is an entity whose fields are laid out and passed by value
// across the boundary.
type ValueType struct {
	Name   string
	Fields []Field
}

func (ValueType) isEntity() {}

func (v ValueType) EntityName() string { return v.Name }

// Field is a single value-type field in declaration order. An empty Name
// marks a positional field.
type Field struct {
	Name string
	Type Type
}

// OpaqueHandle is an entity whose layout is hidden from the foreign
// side; it crosses the boundary as an untyped pointer with an associated
// destructor.
type OpaqueHandle struct {
	Name  string
	Owner Owner
}

func (OpaqueHandle) isEntity() {}

func (h OpaqueHandle) EntityName() string { return h.Name }

// Module is one bridge module: entities and functions in their original
// declaration order. Generators must preserve that order.
type Module struct {
	Name      string
	Entities  []Entity
	Functions []Function
}
