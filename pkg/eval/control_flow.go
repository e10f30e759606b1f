package eval

import (
	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/internal/value"
)

// evalAssignment handles both plain "name = value" and bracket
// "target[index] = value" assignment forms.
func (ev *Evaluator) evalAssignment(a *types.Assignment, env value.Environment) (flow, error) {
	val, err := ev.evalExpr(a.Value, env)
	if err != nil {
		return flow{}, err
	}

	switch target := a.Target.(type) {
	case *types.Identifier:
		env.Assign(target.Name, val)

		return flow{Value: val, Signal: sigNormal}, nil
	case *types.IndexExpr:
		if err := ev.evalIndexAssignment(target, val, env); err != nil {
			return flow{}, err
		}

		return flow{Value: val, Signal: sigNormal}, nil
	default:
		return flow{}, runtimeErrorf(a.Token(), "invalid assignment target %T", a.Target)
	}
}

// evalIndexAssignment evaluates "target[index] = value" where target
// must resolve to an *value.Array; strings are immutable in Culebra, so
// bracket-assigning into one is a RuntimeError, not a silent no-op.
func (ev *Evaluator) evalIndexAssignment(idx *types.IndexExpr, val value.Value, env value.Environment) error {
	container, err := ev.evalExpr(idx.Target, env)
	if err != nil {
		return err
	}
	indexVal, err := ev.evalExpr(idx.Index, env)
	if err != nil {
		return err
	}
	i, ok := indexVal.(value.Int)
	if !ok {
		return runtimeErrorf(idx.Token(), "array index must be an INT, got %s", indexVal.Type())
	}

	arr, ok := container.(*value.Array)
	if !ok {
		if _, isString := container.(value.String); isString {
			return runtimeErrorf(idx.Token(), "strings are immutable, cannot assign to a character")
		}

		return runtimeErrorf(idx.Token(), "bracket assignment only valid for arrays, got %s", container.Type())
	}

	if err := arr.Set(int(i), val); err != nil {
		return runtimeErrorf(idx.Token(), "%s", err)
	}

	return nil
}

// evalConditional walks the if/elif/else chain, evaluating the first
// branch whose condition is true. An elif is a nested Conditional in
// Otherwise; a synthesized else-as-true-conditional always matches.
func (ev *Evaluator) evalConditional(c *types.Conditional, env value.Environment) (flow, error) {
	cond, err := ev.evalExpr(c.Cond, env)
	if err != nil {
		return flow{}, err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return flow{}, runtimeErrorf(c.Cond.Token(), "condition must be BOOL, got %s", cond.Type())
	}

	if bool(b) {
		return ev.evalBlock(c.Body, env)
	}
	if c.Otherwise != nil {
		return ev.evalConditional(c.Otherwise, env)
	}

	return normalFlow, nil
}

// evalWhile runs the loop body until Cond is false, catching break and
// continue signals raised by the body itself.
func (ev *Evaluator) evalWhile(w *types.While, env value.Environment) (flow, error) {
	for {
		cond, err := ev.evalExpr(w.Cond, env)
		if err != nil {
			return flow{}, err
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return flow{}, runtimeErrorf(w.Cond.Token(), "condition must be BOOL, got %s", cond.Type())
		}
		if !bool(b) {
			return normalFlow, nil
		}

		f, err := ev.evalBlock(w.Body, env)
		if err != nil {
			return flow{}, err
		}
		switch f.Signal {
		case sigBreaking:
			return normalFlow, nil
		case sigReturning:
			return f, nil
		}
	}
}

// evalFor runs a C-style "for pre; cond; post:" loop. pre, the condition,
// post and the body all run in env, the loop's enclosing scope, so a
// variable declared in pre stays visible across iterations instead of
// being reset each time.
func (ev *Evaluator) evalFor(f *types.For, env value.Environment) (flow, error) {
	if f.Pre != nil {
		if _, err := ev.evalStmt(f.Pre, env); err != nil {
			return flow{}, err
		}
	}

	for {
		cond, err := ev.evalExpr(f.Cond, env)
		if err != nil {
			return flow{}, err
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return flow{}, runtimeErrorf(f.Cond.Token(), "condition must be BOOL, got %s", cond.Type())
		}
		if !bool(b) {
			return normalFlow, nil
		}

		bodyFlow, err := ev.evalBlock(f.Body, env)
		if err != nil {
			return flow{}, err
		}
		switch bodyFlow.Signal {
		case sigBreaking:
			return normalFlow, nil
		case sigReturning:
			return bodyFlow, nil
		}

		if f.Post != nil {
			if _, err := ev.evalStmt(f.Post, env); err != nil {
				return flow{}, err
			}
		}
	}
}
