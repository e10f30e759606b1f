package parser

import (
	"fmt"
)

// ParseError represents a parsing error with location information.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// ParseErrors latches the first parse error encountered and ignores
// everything after it - the grammar has no recovery strategy past the
// first violation, so there is never more than one error to report.
type ParseErrors struct {
	err *ParseError
}

// Add records msg as the error, if one hasn't already been latched.
func (p *ParseErrors) Add(msg string, line, column int) {
	if p.err != nil {
		return
	}
	p.err = &ParseError{Message: msg, Line: line, Column: column}
}

// Addf is Add with fmt.Sprintf-style formatting.
func (p *ParseErrors) Addf(line, column int, format string, args ...interface{}) {
	p.Add(fmt.Sprintf(format, args...), line, column)
}

// HasErrors reports whether an error has been latched.
func (p *ParseErrors) HasErrors() bool {
	return p.err != nil
}

// Error implements the error interface.
func (p *ParseErrors) Error() string {
	if p.err == nil {
		return "no errors"
	}

	return p.err.Error()
}

// First returns the latched error, or nil if none.
func (p *ParseErrors) First() error {
	if p.err == nil {
		return nil
	}

	return *p.err
}
