package bridge

// LinkPrefix is the fixed symbol prefix shared by every generator in the
// bridge. The native glue and the foreign wrapper must agree on it
// byte-for-byte.
const LinkPrefix = "__bridgegen__"

// ReceiverKind is how a method takes its receiver. All variants except
// RecvNone are ABI-equivalent: the receiver crosses the boundary as a
// single untyped self pointer, and ownership only matters to the native
// glue.
type ReceiverKind uint8

const (
	RecvNone ReceiverKind = iota
	RecvValue
	RecvRef
	RecvMutRef
)

var receiverKindNames = [...]string{
	RecvNone:   "none",
	RecvValue:  "value",
	RecvRef:    "ref",
	RecvMutRef: "mut_ref",
}

func (k ReceiverKind) String() string {
	if int(k) < len(receiverKindNames) {
		return receiverKindNames[k]
	}
	return "unknown"
}

// Receiver binds a method to its entity. A RecvNone kind marks a free
// function; Entity is empty in that case.
type Receiver struct {
	Entity string
	Kind   ReceiverKind
}

// HasSelf reports whether the function takes an implicit self parameter.
func (r Receiver) HasSelf() bool { return r.Kind != RecvNone }

// Param is a declared function parameter.
type Param struct {
	Name string
	Type Type
}

// Function is one exported free function or method. Result is nil for
// functions that return nothing.
type Function struct {
	Name     string
	Receiver Receiver
	Params   []Param
	Result   Type
	Owner    Owner
}

// LinkName returns the deterministic symbol name the function is
// exported under.
func (f *Function) LinkName() string {
	if f.Receiver.HasSelf() {
		return LinkPrefix + "$" + f.Receiver.Entity + "$" + f.Name
	}
	return LinkPrefix + "$" + f.Name
}

// FreeName returns the link name of the destructor for a native-owned
// opaque handle.
func FreeName(entity string) string {
	return LinkPrefix + "$" + entity + "$_free"
}
