package parser

import "github.com/cnexans/culebra/pkg/lexer"

// Operator precedence levels, low to high. "and"/"or" deliberately share a
// level - Culebra doesn't distinguish them the way C-family languages
// rank && above ||.
const (
	precedenceLowest     = iota
	precedenceLogical    // and or
	precedenceComparison // == != < > <= >=
	precedenceSum        // + -
	precedenceProduct    // * /
	precedencePrefix     // not x, -x
	precedenceCall       // f(...) and arr[...] postfix chaining
)

// precedenceMap maps token types that can appear as infix/postfix
// operators to their precedence.
var precedenceMap = map[lexer.TokenType]int{
	lexer.TOKEN_AND:      precedenceLogical,
	lexer.TOKEN_OR:       precedenceLogical,
	lexer.TOKEN_EQ:       precedenceComparison,
	lexer.TOKEN_NEQ:      precedenceComparison,
	lexer.TOKEN_LT:       precedenceComparison,
	lexer.TOKEN_GT:       precedenceComparison,
	lexer.TOKEN_LTE:      precedenceComparison,
	lexer.TOKEN_GTE:      precedenceComparison,
	lexer.TOKEN_PLUS:     precedenceSum,
	lexer.TOKEN_MINUS:    precedenceSum,
	lexer.TOKEN_MUL:      precedenceProduct,
	lexer.TOKEN_DIVIDE:   precedenceProduct,
	lexer.TOKEN_LPAREN:   precedenceCall,
	lexer.TOKEN_LBRACKET: precedenceCall,
}
