package checker

import (
	"github.com/cnexans/culebra/internal/ctype"
	"github.com/cnexans/culebra/internal/types"
)

// Checker runs Culebra's static type rules over a parsed program.
type Checker struct {
	scope *scope
}

// New creates a checker with an empty root scope.
func New() *Checker {
	return &Checker{scope: newScope()}
}

// Check type-checks an entire program, stopping and returning the first
// *TypeError encountered.
func (c *Checker) Check(prog *types.Program) error {
	return c.checkBlock(prog)
}

func (c *Checker) checkBlock(block *types.Block) error {
	for _, stmt := range block.Statements {
		if err := c.checkStmt(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (c *Checker) checkStmt(stmt types.Stmt) error {
	switch s := stmt.(type) {
	case *types.ExpressionStmt:
		_, err := c.checkExpr(s.Expr)

		return err
	case *types.Assignment:
		return c.checkAssignment(s)
	case *types.Conditional:
		return c.checkConditional(s)
	case *types.While:
		return c.checkWhile(s)
	case *types.For:
		return c.checkFor(s)
	case *types.FunctionDefinition:
		return c.checkFunctionDefinition(s)
	case *types.ReturnStatement:
		if s.Value == nil {
			return nil
		}
		_, err := c.checkExpr(s.Value)

		return err
	case *types.BreakStatement, *types.ContinueStatement:
		return nil
	default:
		return typeErrorf(stmt.Token(), "no type check rule for statement %T", stmt)
	}
}

func (c *Checker) checkAssignment(s *types.Assignment) error {
	valueType, err := c.checkExpr(s.Value)
	if err != nil {
		return err
	}

	switch target := s.Target.(type) {
	case *types.Identifier:
		c.scope.assign(target.Name, valueType)

		return nil
	case *types.IndexExpr:
		targetType, err := c.checkExpr(target.Target)
		if err != nil {
			return err
		}
		indexType, err := c.checkExpr(target.Index)
		if err != nil {
			return err
		}
		if indexType.Kind != ctype.Int && indexType.Kind != ctype.Unknown {
			return typeErrorf(target.Index.Token(), "index expression must be INT, got %s", indexType)
		}
		if targetType.Kind == ctype.Unknown {
			return nil
		}
		if targetType.Kind != ctype.Array {
			return typeErrorf(target.Token(), "bracket assignment only valid for arrays, got %s", targetType)
		}
		if !targetType.Elem.Equals(valueType) {
			return typeErrorf(s.Token(), "Cannot assign %s to array of %s", valueType, *targetType.Elem)
		}

		return nil
	default:
		return typeErrorf(s.Token(), "invalid assignment target %T", s.Target)
	}
}

func (c *Checker) checkConditional(s *types.Conditional) error {
	condType, err := c.checkExpr(s.Cond)
	if err != nil {
		return err
	}
	if condType.Kind != ctype.Bool {
		return typeErrorf(s.Cond.Token(), "condition expression must be BOOL, got %s", condType)
	}
	if err := c.checkBlock(s.Body); err != nil {
		return err
	}
	if s.Otherwise != nil {
		return c.checkConditional(s.Otherwise)
	}

	return nil
}

func (c *Checker) checkWhile(s *types.While) error {
	condType, err := c.checkExpr(s.Cond)
	if err != nil {
		return err
	}
	if condType.Kind != ctype.Bool {
		return typeErrorf(s.Cond.Token(), "condition expression must be BOOL, got %s", condType)
	}

	return c.checkBlock(s.Body)
}

func (c *Checker) checkFor(s *types.For) error {
	if err := c.checkStmt(s.Pre); err != nil {
		return err
	}
	condType, err := c.checkExpr(s.Cond)
	if err != nil {
		return err
	}
	if condType.Kind != ctype.Bool {
		return typeErrorf(s.Cond.Token(), "condition expression must be BOOL, got %s", condType)
	}
	if err := c.checkStmt(s.Post); err != nil {
		return err
	}

	return c.checkBlock(s.Body)
}

// checkFunctionDefinition registers the function's name as FUNCTION in
// the enclosing scope, then checks the body in a child scope. Parameter
// types remain UNKNOWN - intentionally unsound, compensated by runtime
// checks in the evaluator.
func (c *Checker) checkFunctionDefinition(s *types.FunctionDefinition) error {
	c.scope.assign(s.Name, ctype.TFunction)

	child := c.scope.createChild()
	for _, param := range s.Params {
		child.types[param] = ctype.TUnknown
	}

	saved := c.scope
	c.scope = child
	err := c.checkBlock(s.Body)
	c.scope = saved

	return err
}

func (c *Checker) checkExpr(expr types.Expr) (ctype.Type, error) {
	switch e := expr.(type) {
	case *types.IntegerLiteral:
		return ctype.TInt, nil
	case *types.FloatLiteral:
		return ctype.TFloat, nil
	case *types.StringLiteral:
		return ctype.TString, nil
	case *types.BoolLiteral:
		return ctype.TBool, nil
	case *types.Identifier:
		return c.scope.get(e.Name), nil
	case *types.ArrayLiteral:
		return c.checkArrayLiteral(e)
	case *types.IndexExpr:
		return c.checkIndexExpr(e)
	case *types.BinaryExpr:
		return c.checkBinaryExpr(e)
	case *types.PrefixExpr:
		return c.checkPrefixExpr(e)
	case *types.CallExpr:
		return c.checkCallExpr(e)
	default:
		return ctype.TUnknown, typeErrorf(expr.Token(), "no type check rule for expression %T", expr)
	}
}

// checkArrayLiteral types an empty array as ARRAY(UNKNOWN) and otherwise
// requires every element to agree with the first, absorbing UNKNOWN
// along the way.
func (c *Checker) checkArrayLiteral(e *types.ArrayLiteral) (ctype.Type, error) {
	if len(e.Elements) == 0 {
		return ctype.NewArray(ctype.TUnknown), nil
	}

	acc, err := c.checkExpr(e.Elements[0])
	if err != nil {
		return ctype.TUnknown, err
	}

	for i, elem := range e.Elements[1:] {
		t, err := c.checkExpr(elem)
		if err != nil {
			return ctype.TUnknown, err
		}

		unified := ctype.Unify(acc, t)
		if unified.Kind == ctype.Unknown && acc.Kind != ctype.Unknown && t.Kind != ctype.Unknown {
			return ctype.TUnknown, typeErrorf(elem.Token(),
				"array elements must be of the same type: expected %s, got %s at index %d", acc, t, i+1)
		}
		acc = unified
	}

	return ctype.NewArray(acc), nil
}

func (c *Checker) checkIndexExpr(e *types.IndexExpr) (ctype.Type, error) {
	targetType, err := c.checkExpr(e.Target)
	if err != nil {
		return ctype.TUnknown, err
	}
	indexType, err := c.checkExpr(e.Index)
	if err != nil {
		return ctype.TUnknown, err
	}
	if indexType.Kind != ctype.Int && indexType.Kind != ctype.Unknown {
		return ctype.TUnknown, typeErrorf(e.Index.Token(), "index expression must be INT, got %s", indexType)
	}

	switch targetType.Kind {
	case ctype.Array:
		return *targetType.Elem, nil
	case ctype.String:
		return ctype.TString, nil
	case ctype.Unknown:
		return ctype.TUnknown, nil
	default:
		return ctype.TUnknown, typeErrorf(e.Target.Token(), "bracket access only valid on arrays or strings, got %s", targetType)
	}
}

func (c *Checker) checkCallExpr(e *types.CallExpr) (ctype.Type, error) {
	if _, err := c.checkExpr(e.Callee); err != nil {
		return ctype.TUnknown, err
	}
	for _, arg := range e.Args {
		if _, err := c.checkExpr(arg); err != nil {
			return ctype.TUnknown, err
		}
	}

	return ctype.TUnknown, nil
}
