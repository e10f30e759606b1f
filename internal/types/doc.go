// Package types provides Abstract Syntax Tree (AST) node definitions for
// Culebra programs.
//
// Unlike an expression-only language, Culebra's grammar splits into two
// sums: Expr for things that produce a value and Stmt for things that are
// sequenced inside a Block. Every node in both sums carries the lexer
// token it was parsed from, so later stages can report precise positions
// without threading them through every call.
//
// The AST is designed to be:
//   - Immutable: nodes don't change after creation
//   - Type-safe: strong typing prevents many traversal errors
//   - Debuggable: String() methods provide readable representations
//
// Expressions:
//   - Identifier: variable/function references (x, compute)
//   - IntegerLiteral, FloatLiteral: numeric literals (42, 3.14)
//   - StringLiteral: string literals, single- or triple-quoted
//   - BoolLiteral: true/false
//   - ArrayLiteral: array literals ([1, 2, 3])
//   - BinaryExpr: binary operations (a + b, x and y)
//   - PrefixExpr: unary operations (not x, -y)
//   - CallExpr: function calls (f(a, b))
//   - IndexExpr: bracket access (arr[0], s[1])
//
// Statements:
//   - ExpressionStmt: an expression used for its side effect
//   - Assignment: target = value
//   - Conditional: if/elif/else, elif chains represented as nested
//     Conditional values in Otherwise
//   - While, For: loops; For always carries all three header slots
//   - FunctionDefinition: def name(params): ...
//   - ReturnStatement, BreakStatement, ContinueStatement
//   - Block: an indented sequence of statements; Program is its root
//
// The parser builds these nodes from tokens; the type checker, evaluator
// and IR emitter each traverse them independently, so nothing here
// depends on any of those packages.
package types
