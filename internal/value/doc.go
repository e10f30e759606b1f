// Package value provides the runtime value system for the Culebra
// tree-walking evaluator.
//
// This package defines every value an evaluated Culebra expression can
// produce, plus the lexical Environment the evaluator threads through a
// program.
//
// Value Types:
//
// Primitive:
//   - Null: the unit value returned by a function that falls off its end
//   - Undefined: bound to a missing function argument; errors on first use
//   - Bool, Int, Float: ordinary scalars
//   - String: immutable, UTF-8
//
// Composite:
//   - Array: Culebra's one compound type - mutable in place (Set), fixed
//     in length, compared elementwise by Equals
//
// Functional:
//   - Function: a user-defined function plus its captured closure scope
//   - Builtin: a natively-implemented function (print, len, ...)
//
// Equality:
//
//	Scalars and strings compare by value. Arrays compare elementwise.
//	Functions and builtins compare by identity/name - there's no useful
//	notion of structural function equality.
//
// Environment:
//
//	Get/Assign/AssignCurrent/CreateChild implement ordinary lexical
//	scope-chain semantics: Get walks outward to find a
//	binding, Assign walks outward to find the scope that owns a name
//	before writing (falling back to the current scope), AssignCurrent
//	always writes to the current frame (used for parameter and
//	loop-variable binding), and CreateChild opens a new child frame for a
//	function call.
package value
