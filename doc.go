// Package bridgegen generates the declarations a cross-language bridge
// needs at its boundary.
//
// Given an already-parsed, validated model of exported entities (value
// types, opaque handles) and functions, it emits a C header describing
// every symbol the native build must expose and every symbol the
// foreign-language wrapper must consume. Symbol names, struct layouts
// and synthesized slice wrappers are deterministic, so the sibling
// generators on both sides of the bridge can agree byte-for-byte.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	bridgegen/           Root package re-exporting the one-call Generate path
//	├── bridge/          Entity, function and type model of one bridge module
//	├── cheader/         C header generation: type mapping, declaration
//	│                    emission, include/slice bookkeeping, assembly
//	├── bridgefile/      TOML bridge-definition loading and resolution
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Build a module and generate its header:
//
//	mod := &bridge.Module{
//	    Name: "renderer",
//	    Entities: []bridge.Entity{
//	        bridge.OpaqueHandle{Name: "Canvas", Owner: bridge.OwnerNative},
//	    },
//	    Functions: []bridge.Function{
//	        {
//	            Name:     "draw",
//	            Receiver: bridge.Receiver{Entity: "Canvas", Kind: bridge.RecvMutRef},
//	            Params:   []bridge.Param{{Name: "x", Type: bridge.F64}},
//	        },
//	    },
//	}
//
//	header, err := bridgegen.Generate(mod)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(header)
//
// Or load the model from a bridge definition file:
//
//	mod, err := bridgefile.Load("renderer.toml")
//
// # Supported Types
//
//   - Scalars: bool, u8-u64, i8-i64, usize, isize, f32, f64
//   - Opaque handle references (untyped pointer plus destructor)
//   - Value type references (pass-by-value structs)
//   - Borrowed slices &[T] of scalar elements (synthesized
//     {pointer, length} wrappers)
//
// # Determinism
//
// Generation is a single synchronous pass over an immutable model.
// Includes and synthesized wrapper types are deduplicated and emitted in
// lexicographic order; entity and function declarations keep the
// module's declaration order. The same model always produces
// byte-identical output, and independent modules may be generated
// concurrently.
package bridgegen
