// Package ir lowers a type-checked Culebra AST to textual LLVM IR,
// Culebra's ahead-of-time compilation target. Callers are expected to
// run pkg/checker first - Generate does not re-derive types from
// scratch the way the evaluator's runtime dispatch does, it tracks
// each variable's ctype.Type as it emits, the same bookkeeping
// approach the original Python code generator uses.
//
// The emitted module always has the same shape: a module header, the
// %array struct definition, the fixed culebra_* runtime ABI
// declarations, a @main wrapper around the program's top-level
// statements, one LLVM function per Culebra function definition, and
// finally the pooled string constants any string literal or
// computation needed along the way.
package ir
