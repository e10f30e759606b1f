package eval

import (
	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/internal/value"
	"github.com/cnexans/culebra/pkg/checker"
	"github.com/cnexans/culebra/pkg/lexer"
)

// Evaluator walks a parsed Culebra program and produces side effects
// (print, file I/O) plus an eventual value.Value result, dispatching
// over Culebra's statement-oriented AST.
type Evaluator struct {
	root value.Environment
}

// New creates an evaluator with a fresh root environment populated with
// the builtin functions.
func New() *Evaluator {
	root := value.NewEnv()
	registerBuiltins(root)

	return &Evaluator{root: root}
}

// Eval type-checks and then executes prog in the evaluator's root
// environment, returning the last statement's signal value (ordinarily
// discarded by callers - Culebra programs are run for effect) or the
// first RuntimeError encountered.
func (ev *Evaluator) Eval(prog *types.Program) (value.Value, error) {
	if err := checker.New().Check(prog); err != nil {
		return nil, err
	}

	f, err := ev.evalBlock(prog, ev.root)
	if err != nil {
		return nil, err
	}

	return f.Value, nil
}

// evalBlock executes a block's statements in sequence within env,
// stopping early if any statement raises a non-normal signal (return,
// break, continue) or an error.
func (ev *Evaluator) evalBlock(block *types.Block, env value.Environment) (flow, error) {
	result := normalFlow
	for _, stmt := range block.Statements {
		f, err := ev.evalStmt(stmt, env)
		if err != nil {
			return flow{}, err
		}
		result = f
		if f.Signal != sigNormal {
			return f, nil
		}
	}

	return result, nil
}

// evalStmt dispatches a single statement to its evaluation function.
func (ev *Evaluator) evalStmt(stmt types.Stmt, env value.Environment) (flow, error) {
	switch s := stmt.(type) {
	case *types.ExpressionStmt:
		val, err := ev.evalExpr(s.Expr, env)
		if err != nil {
			return flow{}, err
		}

		return flow{Value: val, Signal: sigNormal}, nil
	case *types.Assignment:
		return ev.evalAssignment(s, env)
	case *types.Conditional:
		return ev.evalConditional(s, env)
	case *types.While:
		return ev.evalWhile(s, env)
	case *types.For:
		return ev.evalFor(s, env)
	case *types.FunctionDefinition:
		return ev.evalFunctionDefinition(s, env)
	case *types.ReturnStatement:
		return ev.evalReturn(s, env)
	case *types.BreakStatement:
		return flow{Value: value.MakeNull(), Signal: sigBreaking}, nil
	case *types.ContinueStatement:
		return flow{Value: value.MakeNull(), Signal: sigContinuing}, nil
	default:
		return flow{}, runtimeErrorf(stmt.Token(), "unsupported statement %T", stmt)
	}
}

// evalExpr dispatches an expression to its evaluation function.
func (ev *Evaluator) evalExpr(expr types.Expr, env value.Environment) (value.Value, error) {
	switch e := expr.(type) {
	case *types.IntegerLiteral:
		return value.MakeInt(e.Value), nil
	case *types.FloatLiteral:
		return value.MakeFloat(e.Value), nil
	case *types.StringLiteral:
		return value.MakeString(e.Value), nil
	case *types.BoolLiteral:
		return value.MakeBool(e.Value), nil
	case *types.Identifier:
		return ev.evalIdentifier(e, env)
	case *types.ArrayLiteral:
		return ev.evalArrayLiteral(e, env)
	case *types.BinaryExpr:
		return ev.evalBinary(e, env)
	case *types.PrefixExpr:
		return ev.evalPrefix(e, env)
	case *types.IndexExpr:
		return ev.evalIndex(e, env)
	case *types.CallExpr:
		return ev.evalCall(e, env)
	default:
		return nil, runtimeErrorf(expr.Token(), "unsupported expression %T", expr)
	}
}

// evalIdentifier looks a name up, reporting a RuntimeError rather than
// silently defaulting the way the type checker's UNKNOWN-absorption
// does - by the time we're evaluating, the checker already verified
// every identifier used in a type-sensitive position, so a lookup
// failure here means the name was genuinely never bound.
func (ev *Evaluator) evalIdentifier(id *types.Identifier, env value.Environment) (value.Value, error) {
	val, ok := env.Get(id.Name)
	if !ok {
		return nil, runtimeErrorf(id.Token(), "name %q is not defined", id.Name)
	}

	return val, nil
}

func (ev *Evaluator) evalArrayLiteral(lit *types.ArrayLiteral, env value.Environment) (value.Value, error) {
	elems := make([]value.Value, len(lit.Elements))
	for i, e := range lit.Elements {
		val, err := ev.evalExpr(e, env)
		if err != nil {
			return nil, err
		}
		elems[i] = val
	}

	return value.NewArray(elems...), nil
}

// requireDefined rejects the Undefined sentinel the first time a value
// is actually used by an operator, index, or builtin - matching the
// contract described in internal/value/doc.go.
func requireDefined(tok lexer.Token, v value.Value) error {
	if _, ok := v.(value.Undefined); ok {
		return runtimeErrorf(tok, "use of undefined value (missing function argument)")
	}

	return nil
}
