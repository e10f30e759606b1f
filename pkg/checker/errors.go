package checker

import (
	"fmt"

	"github.com/cnexans/culebra/pkg/lexer"
)

// TypeError reports a static type rule violation, carrying the
// offending node's originating token.
type TypeError struct {
	Message string
	Tok     lexer.Token
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error at line %d, column %d: %s", e.Tok.Line, e.Tok.Column, e.Message)
}

func typeErrorf(tok lexer.Token, format string, args ...interface{}) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...), Tok: tok}
}
