// Package bridgefile loads a bridge module from its TOML definition.
//
// A bridge file declares the module's entities and functions:
//
//	[module]
//	name = "renderer"
//
//	[[struct]]
//	name = "Point"
//	fields = [
//	    { name = "x", type = "f64" },
//	    { name = "y", type = "f64" },
//	]
//
//	[[handle]]
//	name = "Canvas"
//	owner = "native"
//
//	[[fn]]
//	name = "draw"
//	receiver = "Canvas"
//	receiver_kind = "mut"
//	params = [{ name = "at", type = "Point" }]
//
//	[[fn]]
//	name = "bytes"
//	receiver = "Canvas"
//	returns = "&[u8]"
//
// Type expressions are scalar names (u8, i8, ..., usize, isize, f32,
// f64, bool), `&[T]` for borrowed slices of a scalar T, or the name of
// a declared struct or handle. The loader resolves every reference and
// rejects duplicates, unknown names and non-scalar slice elements,
// which is what lets the generators trust the bridge.Module they
// receive.
package bridgefile
