// Package errors provides structured error types for the bridgegen library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: symbol path, bridge/C type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMap, errors.KindUnmappedType).
//		Path("Counter", "value").
//		BridgeType("u128").
//		Detail("no C representation registered").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnmappedType(path, "u128")
//	err := errors.Duplicate(errors.PhaseLoad, "entity", "Counter")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
