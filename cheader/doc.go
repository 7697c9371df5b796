// Package cheader generates the C header for one bridge module.
//
// The header declares every symbol the native build must expose and the
// foreign wrapper must consume: value-type struct typedefs, opaque
// handle typedefs with their destructors, and function declarations
// under their deterministic link names.
//
// Generation is one synchronous pass over an immutable bridge.Module.
// Entity and function declarations keep the module's original
// declaration order; cross-cutting requirements discovered during the
// walk (library includes, synthesized slice wrappers) are deduplicated
// and prepended in lexicographic order, so the same model always yields
// byte-identical output.
//
//	header, err := cheader.Generate(mod)
//
// The sibling generators for the native glue and the foreign wrapper
// read the same model and must agree with this package byte-for-byte on
// link names and struct layouts.
package cheader
