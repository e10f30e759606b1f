package checker

import (
	"github.com/cnexans/culebra/internal/ctype"
	"github.com/cnexans/culebra/internal/types"
)

func (c *Checker) checkBinaryExpr(e *types.BinaryExpr) (ctype.Type, error) {
	left, err := c.checkExpr(e.Left)
	if err != nil {
		return ctype.TUnknown, err
	}
	right, err := c.checkExpr(e.Right)
	if err != nil {
		return ctype.TUnknown, err
	}

	switch e.Op {
	case types.OpAdd, types.OpSub, types.OpMul, types.OpDiv:
		return checkArithmetic(e, left, right)
	case types.OpEq, types.OpNEq:
		return checkEquality(e, left, right)
	case types.OpLT, types.OpGT, types.OpLTE, types.OpGTE:
		return checkComparison(e, left, right)
	case types.OpAnd, types.OpOr:
		return checkLogical(e, left, right)
	default:
		return ctype.TUnknown, typeErrorf(e.Token(), "unsupported binary operator %s", e.Op)
	}
}

// checkArithmetic enforces the arithmetic rule: operands must match;
// INT+INT -> INT, FLOAT+FLOAT -> FLOAT, STRING+STRING -> STRING (+ only);
// UNKNOWN on either side propagates permissively.
func checkArithmetic(e *types.BinaryExpr, left, right ctype.Type) (ctype.Type, error) {
	if left.Kind == ctype.Unknown || right.Kind == ctype.Unknown {
		other := right
		if left.Kind != ctype.Unknown {
			other = left
		}
		if other.Kind == ctype.Int || other.Kind == ctype.Float {
			return other, nil
		}
		if e.Op == types.OpAdd && other.Kind == ctype.String {
			return ctype.TString, nil
		}

		return ctype.TUnknown, nil
	}

	if left.Kind != right.Kind {
		return ctype.TUnknown, typeErrorf(e.Token(),
			"operands for %s must have the same type, got %s and %s", e.Op, left, right)
	}

	if left.Kind != ctype.Int && left.Kind != ctype.Float {
		if e.Op == types.OpAdd && left.Kind == ctype.String {
			return ctype.TString, nil
		}

		return ctype.TUnknown, typeErrorf(e.Token(), "operator %s not supported for %s", e.Op, left)
	}

	return left, nil
}

// checkEquality implements "==" / "!=": legal on any matching pair,
// UNKNOWN propagates permissively. Result is always BOOL.
func checkEquality(e *types.BinaryExpr, left, right ctype.Type) (ctype.Type, error) {
	if left.Kind == ctype.Unknown || right.Kind == ctype.Unknown {
		return ctype.TBool, nil
	}
	if !left.Equals(right) {
		return ctype.TUnknown, typeErrorf(e.Token(),
			"operands for %s must be of the same type, got %s and %s", e.Op, left, right)
	}

	return ctype.TBool, nil
}

// checkComparison implements "<" ">" "<=" ">=": operands must be numeric
// and match; result BOOL.
func checkComparison(e *types.BinaryExpr, left, right ctype.Type) (ctype.Type, error) {
	if left.Kind == ctype.Unknown || right.Kind == ctype.Unknown {
		return ctype.TBool, nil
	}
	if left.Kind != right.Kind || !left.IsNumeric() {
		return ctype.TUnknown, typeErrorf(e.Token(),
			"comparison %s requires numeric operands of the same type, got %s and %s", e.Op, left, right)
	}

	return ctype.TBool, nil
}

// checkLogical implements "and"/"or": both operands must be BOOL; result
// BOOL. UNKNOWN propagates permissively.
func checkLogical(e *types.BinaryExpr, left, right ctype.Type) (ctype.Type, error) {
	if left.Kind == ctype.Unknown || right.Kind == ctype.Unknown {
		return ctype.TBool, nil
	}
	if left.Kind != ctype.Bool || right.Kind != ctype.Bool {
		return ctype.TUnknown, typeErrorf(e.Token(),
			"logical operator %s requires boolean operands, got %s and %s", e.Op, left, right)
	}

	return ctype.TBool, nil
}

func (c *Checker) checkPrefixExpr(e *types.PrefixExpr) (ctype.Type, error) {
	valueType, err := c.checkExpr(e.Right)
	if err != nil {
		return ctype.TUnknown, err
	}

	switch e.Op {
	case types.OpNeg:
		if valueType.Kind == ctype.Unknown {
			return ctype.TUnknown, nil
		}
		if valueType.Kind != ctype.Int && valueType.Kind != ctype.Float {
			return ctype.TUnknown, typeErrorf(e.Token(), "unary - expects INT or FLOAT, got %s", valueType)
		}

		return valueType, nil
	case types.OpNot:
		if valueType.Kind == ctype.Unknown {
			return ctype.TBool, nil
		}
		if valueType.Kind != ctype.Bool {
			return ctype.TUnknown, typeErrorf(e.Token(), "not operator requires BOOL, got %s", valueType)
		}

		return ctype.TBool, nil
	default:
		return ctype.TUnknown, typeErrorf(e.Token(), "unsupported prefix operator %s", e.Op)
	}
}
