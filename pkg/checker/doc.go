// Package checker implements Culebra's static type checker.
//
// It is a single-pass visitor over internal/types that mirrors the
// evaluator's lexical scoping exactly (function bodies open a child
// scope; if/while/for bodies share their enclosing function's scope),
// tracking internal/ctype.Type instead of internal/value.Value. It
// enforces every static rule Culebra defines: literal types, array-literal
// homogeneity, identifier lookup (a missing name types as UNKNOWN rather
// than erroring - the interpreter still catches it at runtime),
// assignment (including bracket-assignment into an array), bracket
// access, arithmetic/comparison/logical operator rules, and the
// condition type of if/while/for.
//
// UNKNOWN is absorbing almost everywhere - an operator involving it
// propagates rather than rejects - except condition expressions, which
// must type exactly BOOL.
//
// Check stops and returns a *TypeError carrying the offending token on
// the first violation; there is no recovery past that point, matching
// the parser's first-error-latching behavior.
package checker
