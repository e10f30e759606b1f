package eval

import (
	"fmt"

	"github.com/cnexans/culebra/pkg/lexer"
)

// RuntimeError is raised for the five categories of runtime failure:
// name lookup failure, operator type mismatch, division by zero, index
// out of range, and calling a non-callable value.
type RuntimeError struct {
	Message string
	Tok     lexer.Token
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at line %d, column %d: %s", e.Tok.Line, e.Tok.Column, e.Message)
}

func runtimeErrorf(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Tok: tok}
}
