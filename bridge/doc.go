// Package bridge defines the in-memory model of one bridge module: the
// exported entities (value types and opaque handles), the exported
// functions and methods, and the closed set of types that may cross the
// language boundary.
//
// The model is produced by an upstream front-end and is trusted to be
// fully validated: names are unique within a module and every type
// reference resolves. Generators consume the model read-only, so a
// materialized Module is safe to share between concurrent generation
// passes.
//
// # Link Names
//
// Every exported symbol has a deterministic link name shared by both
// sides of the bridge:
//
//	free function   __bridgegen__$name
//	method          __bridgegen__$Entity$name
//	destructor      __bridgegen__$Entity$_free
//
// See LinkPrefix, Function.LinkName and FreeName.
package bridge
