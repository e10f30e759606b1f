package ir

import (
	"fmt"

	"github.com/cnexans/culebra/internal/ctype"
	"github.com/cnexans/culebra/internal/types"
)

func (e *Emitter) visitStmt(stmt types.Stmt) {
	switch s := stmt.(type) {
	case *types.ExpressionStmt:
		e.visitExpr(s.Expr)
	case *types.Assignment:
		e.visitAssignment(s)
	case *types.Conditional:
		e.visitConditional(s)
	case *types.While:
		e.visitWhile(s)
	case *types.For:
		e.visitFor(s)
	case *types.ReturnStatement:
		e.visitReturn(s)
	case *types.FunctionDefinition:
		// handled separately by generate/generateFunction
	case *types.BreakStatement:
		e.emitLoopJump(true)
	case *types.ContinueStatement:
		e.emitLoopJump(false)
	default:
		panic(fmt.Sprintf("ir: unsupported statement %T", stmt))
	}
}

func (e *Emitter) visitAssignment(a *types.Assignment) {
	valueReg, valueType := e.visitExpr(a.Value)

	switch target := a.Target.(type) {
	case *types.Identifier:
		slot, exists := e.vars[target.Name]
		if !exists {
			lt := llvmType(valueType)
			reg := e.newTemp()
			e.emit(fmt.Sprintf("  %s = alloca %s", reg, lt))
			slot = varSlot{reg: reg, typ: valueType}
			e.vars[target.Name] = slot
		}
		lt := llvmType(slot.typ)
		e.emit(fmt.Sprintf("  store %s %s, %s* %s", lt, valueReg, lt, slot.reg))
	case *types.IndexExpr:
		e.visitIndexAssignment(target, valueReg, valueType)
	default:
		panic(fmt.Sprintf("ir: invalid assignment target %T", a.Target))
	}
}

func (e *Emitter) visitIndexAssignment(idx *types.IndexExpr, valueReg string, valueType ctype.Type) {
	targetReg, _ := e.visitExpr(idx.Target)
	indexReg, _ := e.visitExpr(idx.Index)
	stored := e.toI64(valueReg, valueType)
	e.emit(fmt.Sprintf("  call void @culebra_array_set(%%array* %s, i64 %s, i64 %s)", targetReg, indexReg, stored))
}

func (e *Emitter) visitConditional(c *types.Conditional) {
	condReg, condType := e.visitExpr(c.Cond)
	condReg = e.toI1(condReg, condType)

	thenLabel := e.newLabel("then")
	mergeLabel := e.newLabel("merge")
	elseLabel := mergeLabel
	hasElse := c.Otherwise != nil
	if hasElse {
		elseLabel = e.newLabel("else")
	}

	e.emit(fmt.Sprintf("  br i1 %s, label %%%s, label %%%s", condReg, thenLabel, elseLabel))

	e.emit(thenLabel + ":")
	for _, stmt := range c.Body.Statements {
		e.visitStmt(stmt)
	}
	e.emit(fmt.Sprintf("  br label %%%s", mergeLabel))

	if hasElse {
		e.emit(elseLabel + ":")
		// The parser always represents a trailing "else:" as a nested
		// Conditional guarded by a literal `true` rather than a nil Cond,
		// so elif and else both recurse the same way here; the nested
		// call's own merge label becomes the block this branch falls
		// through into below.
		e.visitConditional(c.Otherwise)
		e.emit(fmt.Sprintf("  br label %%%s", mergeLabel))
	}

	e.emit(mergeLabel + ":")
}

// toI1 coerces a condition value to i1 if the checker somehow let a
// non-BOOL condition through (it never should - conditions are required
// to be exactly BOOL - this is defense in depth only).
func (e *Emitter) toI1(reg string, t ctype.Type) string {
	switch t.Kind {
	case ctype.Bool:
		return reg
	case ctype.Int:
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = icmp ne i64 %s, 0", temp, reg))

		return temp
	default:
		return reg
	}
}

func (e *Emitter) visitWhile(w *types.While) {
	condLabel := e.newLabel("while_cond")
	bodyLabel := e.newLabel("while_body")
	endLabel := e.newLabel("while_end")

	e.emit(fmt.Sprintf("  br label %%%s", condLabel))
	e.emit(condLabel + ":")
	condReg, condType := e.visitExpr(w.Cond)
	condReg = e.toI1(condReg, condType)
	e.emit(fmt.Sprintf("  br i1 %s, label %%%s, label %%%s", condReg, bodyLabel, endLabel))

	e.loopStack = append(e.loopStack, loopLabels{continueLabel: condLabel, breakLabel: endLabel})
	e.emit(bodyLabel + ":")
	for _, stmt := range w.Body.Statements {
		e.visitStmt(stmt)
	}
	e.loopStack = e.loopStack[:len(e.loopStack)-1]
	e.emit(fmt.Sprintf("  br label %%%s", condLabel))

	e.emit(endLabel + ":")
}

func (e *Emitter) visitFor(f *types.For) {
	if f.Pre != nil {
		e.visitStmt(f.Pre)
	}

	condLabel := e.newLabel("for_cond")
	bodyLabel := e.newLabel("for_body")
	postLabel := e.newLabel("for_post")
	endLabel := e.newLabel("for_end")

	e.emit(fmt.Sprintf("  br label %%%s", condLabel))
	e.emit(condLabel + ":")
	condReg, condType := e.visitExpr(f.Cond)
	condReg = e.toI1(condReg, condType)
	e.emit(fmt.Sprintf("  br i1 %s, label %%%s, label %%%s", condReg, bodyLabel, endLabel))

	e.loopStack = append(e.loopStack, loopLabels{continueLabel: postLabel, breakLabel: endLabel})
	e.emit(bodyLabel + ":")
	for _, stmt := range f.Body.Statements {
		e.visitStmt(stmt)
	}
	e.loopStack = e.loopStack[:len(e.loopStack)-1]
	e.emit(fmt.Sprintf("  br label %%%s", postLabel))

	e.emit(postLabel + ":")
	if f.Post != nil {
		e.visitStmt(f.Post)
	}
	e.emit(fmt.Sprintf("  br label %%%s", condLabel))

	e.emit(endLabel + ":")
}

// emitLoopJump emits a branch to the innermost loop's break or continue
// target and opens a fresh (unreachable) block afterward, since LLVM
// requires every basic block to end in exactly one terminator and
// Culebra's parser doesn't forbid statements textually following a
// break/continue inside the same block.
func (e *Emitter) emitLoopJump(isBreak bool) {
	if len(e.loopStack) == 0 {
		panic("ir: break/continue outside a loop")
	}
	top := e.loopStack[len(e.loopStack)-1]
	target := top.continueLabel
	if isBreak {
		target = top.breakLabel
	}
	e.emit(fmt.Sprintf("  br label %%%s", target))
	e.emit(e.newLabel("unreachable") + ":")
}

// visitReturn lowers a return statement. A bare "return" still needs a
// value of the enclosing function's declared return type - "ret void"
// would mismatch a non-void function signature - so it emits the same
// zero value generateFunction's own fallback terminator would.
func (e *Emitter) visitReturn(r *types.ReturnStatement) {
	if r.Value == nil {
		e.emit(defaultReturn(e.currentReturnType))

		return
	}
	reg, t := e.visitExpr(r.Value)
	e.emit(fmt.Sprintf("  ret %s %s", llvmType(t), reg))
}

// registerFunction records a conservative signature for def before any
// call site is emitted - every parameter defaults to INT, and the return
// type is whatever inferReturnType reads off the body's top-level return
// statements.
func (e *Emitter) registerFunction(def *types.FunctionDefinition) {
	paramTypes := make([]ctype.Type, len(def.Params))
	for i := range paramTypes {
		paramTypes[i] = ctype.TInt
	}
	e.funcs[def.Name] = funcSig{returnType: inferReturnType(def), paramTypes: paramTypes}
}

// inferReturnType scans a function body's top-level return statements
// for a literal whose type is obvious without full inference; falls
// back to INT.
func inferReturnType(def *types.FunctionDefinition) ctype.Type {
	for _, stmt := range def.Body.Statements {
		ret, ok := stmt.(*types.ReturnStatement)
		if !ok || ret.Value == nil {
			continue
		}
		switch ret.Value.(type) {
		case *types.FloatLiteral:
			return ctype.TFloat
		case *types.StringLiteral:
			return ctype.TString
		case *types.BoolLiteral:
			return ctype.TBool
		}
	}

	return ctype.TInt
}

func (e *Emitter) generateFunction(def *types.FunctionDefinition) {
	sig := e.funcs[def.Name]

	savedVars := e.vars
	e.vars = make(map[string]varSlot)

	var params []string
	for i, name := range def.Params {
		lt := llvmType(sig.paramTypes[i])
		params = append(params, fmt.Sprintf("%s %%%s", lt, name))
	}
	e.emit(fmt.Sprintf("define %s @%s(%s) {", llvmType(sig.returnType), def.Name, joinArgs(params)))
	e.emit("entry:")

	savedReturnType := e.currentReturnType
	e.currentReturnType = sig.returnType

	for i, name := range def.Params {
		lt := llvmType(sig.paramTypes[i])
		reg := e.newTemp()
		e.emit(fmt.Sprintf("  %s = alloca %s", reg, lt))
		e.emit(fmt.Sprintf("  store %s %%%s, %s* %s", lt, name, lt, reg))
		e.vars[name] = varSlot{reg: reg, typ: sig.paramTypes[i]}
	}

	for _, stmt := range def.Body.Statements {
		e.visitStmt(stmt)
	}

	// Only append a fallback terminator if the body isn't guaranteed to
	// have already returned - emitting one unconditionally would leave a
	// second terminator trailing the one visitReturn already wrote,
	// which LLVM rejects.
	if !alwaysReturns(def.Body.Statements) {
		e.emit(defaultReturn(sig.returnType))
	}
	e.emit("}")
	e.emit("")

	e.vars = savedVars
	e.currentReturnType = savedReturnType
}

// defaultReturn produces a zero-value ret instruction matching t, used
// when a function body can fall off the end without an explicit return.
func defaultReturn(t ctype.Type) string {
	switch t.Kind {
	case ctype.Float:
		return "  ret double 0.0"
	case ctype.Bool:
		return "  ret i1 0"
	case ctype.String:
		return fmt.Sprintf("  ret %s null", llvmType(t))
	case ctype.Array:
		return fmt.Sprintf("  ret %s null", llvmType(t))
	default:
		return fmt.Sprintf("  ret %s 0", llvmType(t))
	}
}

// alwaysReturns conservatively reports whether the given statement list is
// guaranteed to end in a return on every path, by looking only at the
// last statement: either a bare return, or an if/elif/.../else chain whose
// every branch always returns. Anything else (loops, a trailing
// expression, no final else) is treated as not guaranteed, matching the
// same conservative style as inferReturnType.
func alwaysReturns(stmts []types.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}

	switch last := stmts[len(stmts)-1].(type) {
	case *types.ReturnStatement:
		return true
	case *types.Conditional:
		return conditionalAlwaysReturns(last)
	default:
		return false
	}
}

// conditionalAlwaysReturns walks an if/elif/.../else chain. The parser
// represents a trailing "else:" as a synthesized elif branch whose Cond is
// a literal `true` and whose own Otherwise is nil - structurally
// indistinguishable from a user-written "elif true:" with nothing after
// it, but that's harmless here: a branch guarded by a literal `true` is
// unconditionally taken either way, so treating it as the exhaustive case
// is correct regardless of which one it actually was.
func conditionalAlwaysReturns(c *types.Conditional) bool {
	if !alwaysReturns(c.Body.Statements) {
		return false
	}
	if c.Otherwise == nil {
		return false
	}
	if c.Otherwise.Otherwise == nil {
		return isLiteralTrue(c.Otherwise.Cond) && alwaysReturns(c.Otherwise.Body.Statements)
	}

	return conditionalAlwaysReturns(c.Otherwise)
}

func isLiteralTrue(expr types.Expr) bool {
	lit, ok := expr.(*types.BoolLiteral)

	return ok && lit.Value
}
