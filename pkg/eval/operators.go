package eval

import (
	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/internal/value"
)

// evalBinary evaluates a binary expression. and/or short-circuit (the
// right operand is only evaluated when needed), matching ordinary
// interpreter semantics even though the checker treats both operands as
// always-checked for type purposes.
func (ev *Evaluator) evalBinary(e *types.BinaryExpr, env value.Environment) (value.Value, error) {
	if e.Op == types.OpAnd || e.Op == types.OpOr {
		return ev.evalLogical(e, env)
	}

	left, err := ev.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	if err := requireDefined(e.Token(), left); err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	if err := requireDefined(e.Token(), right); err != nil {
		return nil, err
	}

	switch e.Op {
	case types.OpAdd, types.OpSub, types.OpMul, types.OpDiv:
		return evalArithmetic(e, left, right)
	case types.OpEq:
		return value.MakeBool(left.Equals(right)), nil
	case types.OpNEq:
		return value.MakeBool(!left.Equals(right)), nil
	case types.OpLT, types.OpGT, types.OpLTE, types.OpGTE:
		return evalComparison(e, left, right)
	default:
		return nil, runtimeErrorf(e.Token(), "unsupported binary operator %s", e.Op)
	}
}

func (ev *Evaluator) evalLogical(e *types.BinaryExpr, env value.Environment) (value.Value, error) {
	left, err := ev.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, runtimeErrorf(e.Token(), "logical operator %s requires boolean operands, got %s", e.Op, left.Type())
	}

	if e.Op == types.OpAnd && !bool(lb) {
		return value.MakeBool(false), nil
	}
	if e.Op == types.OpOr && bool(lb) {
		return value.MakeBool(true), nil
	}

	right, err := ev.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, runtimeErrorf(e.Token(), "logical operator %s requires boolean operands, got %s", e.Op, right.Type())
	}

	return value.MakeBool(bool(rb)), nil
}

func evalArithmetic(e *types.BinaryExpr, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, runtimeErrorf(e.Token(), "operands for %s must have the same type, got %s and %s", e.Op, left.Type(), right.Type())
		}
		switch e.Op {
		case types.OpAdd:
			return value.MakeInt(int64(l) + int64(r)), nil
		case types.OpSub:
			return value.MakeInt(int64(l) - int64(r)), nil
		case types.OpMul:
			return value.MakeInt(int64(l) * int64(r)), nil
		case types.OpDiv:
			if r == 0 {
				return nil, runtimeErrorf(e.Token(), "division by zero")
			}

			return value.MakeInt(int64(l) / int64(r)), nil
		}
	case value.Float:
		r, ok := right.(value.Float)
		if !ok {
			return nil, runtimeErrorf(e.Token(), "operands for %s must have the same type, got %s and %s", e.Op, left.Type(), right.Type())
		}
		switch e.Op {
		case types.OpAdd:
			return value.MakeFloat(float64(l) + float64(r)), nil
		case types.OpSub:
			return value.MakeFloat(float64(l) - float64(r)), nil
		case types.OpMul:
			return value.MakeFloat(float64(l) * float64(r)), nil
		case types.OpDiv:
			if r == 0 {
				return nil, runtimeErrorf(e.Token(), "division by zero")
			}

			return value.MakeFloat(float64(l) / float64(r)), nil
		}
	case value.String:
		r, ok := right.(value.String)
		if !ok {
			return nil, runtimeErrorf(e.Token(), "operands for %s must have the same type, got %s and %s", e.Op, left.Type(), right.Type())
		}
		if e.Op != types.OpAdd {
			return nil, runtimeErrorf(e.Token(), "operator %s not supported for STRING", e.Op)
		}

		return value.MakeString(string(l) + string(r)), nil
	}

	return nil, runtimeErrorf(e.Token(), "operator %s not supported for %s", e.Op, left.Type())
}

func evalComparison(e *types.BinaryExpr, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, runtimeErrorf(e.Token(), "comparison %s requires operands of the same type, got %s and %s", e.Op, left.Type(), right.Type())
		}

		return value.MakeBool(compare(int64(l), int64(r), e.Op)), nil
	case value.Float:
		r, ok := right.(value.Float)
		if !ok {
			return nil, runtimeErrorf(e.Token(), "comparison %s requires operands of the same type, got %s and %s", e.Op, left.Type(), right.Type())
		}

		return value.MakeBool(compareFloat(float64(l), float64(r), e.Op)), nil
	default:
		return nil, runtimeErrorf(e.Token(), "comparison %s requires numeric operands, got %s", e.Op, left.Type())
	}
}

func compare(l, r int64, op types.BinaryOp) bool {
	switch op {
	case types.OpLT:
		return l < r
	case types.OpGT:
		return l > r
	case types.OpLTE:
		return l <= r
	case types.OpGTE:
		return l >= r
	}

	return false
}

func compareFloat(l, r float64, op types.BinaryOp) bool {
	switch op {
	case types.OpLT:
		return l < r
	case types.OpGT:
		return l > r
	case types.OpLTE:
		return l <= r
	case types.OpGTE:
		return l >= r
	}

	return false
}

// evalPrefix evaluates unary "not"/"-".
func (ev *Evaluator) evalPrefix(e *types.PrefixExpr, env value.Environment) (value.Value, error) {
	operand, err := ev.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	if err := requireDefined(e.Token(), operand); err != nil {
		return nil, err
	}

	switch e.Op {
	case types.OpNeg:
		switch v := operand.(type) {
		case value.Int:
			return value.MakeInt(-int64(v)), nil
		case value.Float:
			return value.MakeFloat(-float64(v)), nil
		default:
			return nil, runtimeErrorf(e.Token(), "unary - expects INT or FLOAT, got %s", operand.Type())
		}
	case types.OpNot:
		b, ok := operand.(value.Bool)
		if !ok {
			return nil, runtimeErrorf(e.Token(), "not operator requires BOOL, got %s", operand.Type())
		}

		return value.MakeBool(!bool(b)), nil
	default:
		return nil, runtimeErrorf(e.Token(), "unsupported prefix operator %s", e.Op)
	}
}

// evalIndex evaluates "target[index]" for both array element access and
// single-character string access.
func (ev *Evaluator) evalIndex(e *types.IndexExpr, env value.Environment) (value.Value, error) {
	container, err := ev.evalExpr(e.Target, env)
	if err != nil {
		return nil, err
	}
	indexVal, err := ev.evalExpr(e.Index, env)
	if err != nil {
		return nil, err
	}
	i, ok := indexVal.(value.Int)
	if !ok {
		return nil, runtimeErrorf(e.Token(), "array index must be an INT, got %s", indexVal.Type())
	}

	switch c := container.(type) {
	case *value.Array:
		v, err := c.Get(int(i))
		if err != nil {
			return nil, runtimeErrorf(e.Token(), "%s", err)
		}

		return v, nil
	case value.String:
		s := string(c)
		if int(i) < 0 || int(i) >= len(s) {
			return nil, runtimeErrorf(e.Token(), "index %d out of range for string of length %d", int(i), len(s))
		}

		return value.MakeString(string(s[i])), nil
	default:
		return nil, runtimeErrorf(e.Token(), "cannot index a value of type %s", container.Type())
	}
}
