package eval

import "github.com/cnexans/culebra/internal/value"

// signalKind is the non-local control signal a statement's evaluation
// can raise, layered over a plain (Value, error) result so break/continue
// can be carried alongside return.
type signalKind int

const (
	sigNormal signalKind = iota
	sigReturning
	sigBreaking
	sigContinuing
)

// flow is what evalStmt/evalBlock return instead of a bare value.Value:
// the statement's value (meaningful only for sigReturning) plus which
// control signal, if any, it raised. A while/for loop catches
// sigBreaking/sigContinuing; a function call frame catches sigReturning
// and lets break/continue that somehow escape a loop (they can't, the
// parser rejects them outside one) propagate as an error instead of
// silently vanishing.
type flow struct {
	Value  value.Value
	Signal signalKind
}

var normalFlow = flow{Value: value.MakeNull(), Signal: sigNormal}
