// Package eval implements Culebra's tree-walking evaluator: a direct
// recursive walk over the AST produced by pkg/parser, mirroring the
// structure of pkg/checker's visitor but operating on runtime
// value.Value instead of ctype.Type.
//
// Program execution runs the checker first (Evaluator.Eval refuses to
// run a program that fails type checking) and then walks statements in
// the root environment, following the same lex, parse, check, evaluate
// pipeline throughout.
//
// Control flow that isn't a plain sequential statement - return, break,
// continue - is threaded as a flow value (see signal.go) alongside Go's
// native error return, which is reserved for actual RuntimeErrors:
// name lookup failures, operator type mismatches, division by zero,
// out-of-range indexing, and calling a non-callable value.
package eval
