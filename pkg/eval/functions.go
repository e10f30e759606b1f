package eval

import (
	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/internal/value"
)

// evalFunctionDefinition binds name to a closure capturing env, the
// scope the def statement appears in. Redefinition simply rebinds the
// name, same as any other assignment.
func (ev *Evaluator) evalFunctionDefinition(def *types.FunctionDefinition, env value.Environment) (flow, error) {
	fn := value.NewFunction(def.Name, def.Params, def.Body, env)
	env.Assign(def.Name, fn)

	return flow{Value: fn, Signal: sigNormal}, nil
}

// evalReturn evaluates an optional return value and raises sigReturning
// so enclosing blocks/loops unwind up to the call frame that catches it.
func (ev *Evaluator) evalReturn(ret *types.ReturnStatement, env value.Environment) (flow, error) {
	if ret.Value == nil {
		return flow{Value: value.MakeNull(), Signal: sigReturning}, nil
	}
	val, err := ev.evalExpr(ret.Value, env)
	if err != nil {
		return flow{}, err
	}

	return flow{Value: val, Signal: sigReturning}, nil
}

// evalCall dispatches to either a user-defined Function or a Builtin.
func (ev *Evaluator) evalCall(call *types.CallExpr, env value.Environment) (value.Value, error) {
	callee, err := ev.evalExpr(call.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(call.Args))
	for i, a := range call.Args {
		v, err := ev.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *value.Function:
		return ev.callFunction(call, fn, args)
	case *value.Builtin:
		for _, a := range args {
			if err := requireDefined(call.Token(), a); err != nil {
				return nil, err
			}
		}
		v, err := fn.Apply(args)
		if err != nil {
			return nil, runtimeErrorf(call.Token(), "%s", err)
		}

		return v, nil
	default:
		return nil, runtimeErrorf(call.Token(), "cannot call a value of type %s", callee.Type())
	}
}

// callFunction binds positional arguments in a fresh child of the
// function's closure environment and executes its body. Extra arguments
// are ignored; missing arguments bind to Undefined, deferring the error
// until the parameter is actually used. AssignCurrent is required here
// (not Assign) so a parameter always shadows a same-named variable in
// the closure's enclosing scope rather than mutating it.
func (ev *Evaluator) callFunction(call *types.CallExpr, fn *value.Function, args []value.Value) (value.Value, error) {
	frame := fn.Env().CreateChild()
	params := fn.Params()
	for i, name := range params {
		if i < len(args) {
			frame.AssignCurrent(name, args[i])
		} else {
			frame.AssignCurrent(name, value.MakeUndefined())
		}
	}

	body, ok := fn.Body().(*types.Block)
	if !ok {
		return nil, runtimeErrorf(call.Token(), "function %q has no body", fn.Name())
	}

	f, err := ev.evalBlock(body, frame)
	if err != nil {
		return nil, err
	}
	if f.Signal == sigBreaking || f.Signal == sigContinuing {
		return nil, runtimeErrorf(call.Token(), "break/continue escaped function %q", fn.Name())
	}
	if f.Signal == sigReturning {
		return f.Value, nil
	}

	return value.MakeNull(), nil
}
