// Package parser implements a recursive-descent, operator-precedence
// parser for Culebra source code.
//
// The parser consumes a token stream from pkg/lexer and produces the
// statement-oriented AST defined in internal/types. Unlike an
// expression-only language, Culebra's grammar is built around
// statements: a Program is a Block of Stmt nodes, and only a handful of
// constructs (assignment targets and values, conditions, call arguments)
// are parsed as Expr.
//
// Structure:
//
//   - parser.go: the Parser type, token window (cur/peek), the Pratt
//     loop (parseExpression), and literal/identifier parsing.
//   - expressions.go: unary operators, grouping, array literals, and the
//     two postfix forms - call and bracket access - that chain at the
//     same precedence level.
//   - control_flow.go: statement dispatch, indentation-delimited block
//     parsing, if/elif/else, while, for, function definitions, return,
//     break, and continue.
//   - precedence.go: the operator precedence table driving parseExpression.
//   - errors.go: ParseError and the first-error-latching ParseErrors type.
//
// Error Handling:
//
//	Culebra's grammar has no recovery strategy for a malformed program,
//	so the parser stops accumulating statements as soon as the first
//	error is latched. Callers should treat HasErrors() as fatal rather
//	than attempting to keep parsing past it.
//
// Indentation:
//
//	Blocks are opened by "expr:" followed by NEWLINE, INDENT, one or
//	more statements, and a closing DEDENT. parseBlock leaves the current
//	token on that closing DEDENT rather than consuming it, so a
//	construct like Conditional can peek past it to check for a trailing
//	"elif"/"else" on the same line.
package parser
