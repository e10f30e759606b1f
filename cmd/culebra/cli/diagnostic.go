package cli

import (
	"fmt"
	"strings"

	"github.com/cnexans/culebra/pkg/checker"
	"github.com/cnexans/culebra/pkg/eval"
	"github.com/cnexans/culebra/pkg/parser"
)

// diagnostic wraps a pipeline error together with the source line it
// points at, rendering a one-line message plus a source excerpt with a
// caret under the offending column. Every pass's (line, column)-carrying
// error funnels into this same presentation at the CLI boundary.
type diagnostic struct {
	cause error
	line  int
	col   int
	ok    bool
	src   string
}

func (d *diagnostic) Error() string {
	if !d.ok {
		return d.cause.Error()
	}

	lines := strings.Split(d.src, "\n")
	if d.line < 1 || d.line > len(lines) {
		return d.cause.Error()
	}

	excerpt := lines[d.line-1]
	col := d.col
	if col < 1 {
		col = 1
	}

	caret := strings.Repeat(" ", col-1) + "^"

	return fmt.Sprintf("%s\n%s\n%s", d.cause.Error(), excerpt, caret)
}

func (d *diagnostic) Unwrap() error {
	return d.cause
}

// diagnose attaches source-excerpt context to err, if err is one of the
// pipeline's own located error types. Errors with no location (e.g. an
// os.ReadFile failure) pass through unchanged.
func diagnose(source string, err error) error {
	if err == nil {
		return nil
	}

	line, col, ok := locate(err)
	if !ok {
		return err
	}

	return &diagnostic{cause: err, line: line, col: col, ok: true, src: source}
}

func locate(err error) (line, col int, ok bool) {
	switch e := err.(type) {
	case parser.ParseError:
		return e.Line, e.Column, true
	case *parser.ParseErrors:
		if pe, isErr := e.First().(parser.ParseError); isErr {
			return pe.Line, pe.Column, true
		}

		return 0, 0, false
	case *checker.TypeError:
		return e.Tok.Line, e.Tok.Column, true
	case *eval.RuntimeError:
		return e.Tok.Line, e.Tok.Column, true
	default:
		return 0, 0, false
	}
}
