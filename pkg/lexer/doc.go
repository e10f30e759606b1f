// Package lexer provides lexical analysis for Culebra source code.
//
// The lexer is the first stage of the Culebra toolchain, responsible for
// converting raw source text into a stream of tokens consumed by the
// parser, whether the downstream pipeline is the tree-walking evaluator
// or the LLVM IR emitter.
//
// Key Features:
//
// Token Recognition:
//   - Keywords: if, elif, else, while, for, def, return, break, continue,
//     and, or, not, true, false
//   - Identifiers: variable and function names
//   - Literals: integers, floats (digits required on both sides of the
//     dot), single- and triple-quoted strings with escape sequences
//   - Operators: +, -, *, /, ==, !=, <, >, <=, >=
//   - Delimiters: (, ), {, }, [, ], ;, :, ,, ., =
//
// Indentation Handling:
//   - Block structure is carried by indentation rather than braces
//   - INDENT/DEDENT tokens are synthesized from a stack of indent widths
//     measured in steps (one tab or four spaces per step)
//   - Blank and comment-only lines never affect the indent stack
//   - A terminal NEWLINE and full DEDENT flush are synthesized at EOF even
//     if the source doesn't end in one
//
// Comment Handling:
//   - Single-line comments starting with '#', running to end of line
//   - Comments are skipped during tokenization
//
// Position Tracking:
//   - Byte offset, line, and column recorded on every token
//   - Essential for meaningful error reporting
//
// String Processing:
//   - Double-quoted and triple-quoted string literals
//   - Recognized escapes (\n, \t, \r, \", \\) are resolved; unrecognized
//     escapes are passed through literally
//
// Error Handling:
//   - ILLEGAL_CHARACTER tokens for unrecognized bytes
//   - INVALID_IDENTIFIER tokens for a number immediately followed by
//     identifier characters (e.g. "3abc")
//
// The lexer follows the maximal munch principle, consuming the longest
// possible sequence of characters for each token.
//
// Usage Example:
//
//	l := lexer.New("def add(a, b):\n    return a + b\n")
//	for {
//	    token := l.NextToken()
//	    if token.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", token.Type, token.Literal)
//	}
package lexer
