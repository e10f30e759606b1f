package ir

import (
	"fmt"

	"github.com/cnexans/culebra/internal/ctype"
	"github.com/cnexans/culebra/internal/types"
)

// visitExpr emits the IR for an expression and returns the SSA value
// (a register, or an immediate for literals) holding its result,
// alongside the ctype.Type the emitter is tracking for it.
func (e *Emitter) visitExpr(expr types.Expr) (string, ctype.Type) {
	switch v := expr.(type) {
	case *types.IntegerLiteral:
		return fmt.Sprintf("%d", v.Value), ctype.TInt
	case *types.FloatLiteral:
		return fmt.Sprintf("%g", v.Value), ctype.TFloat
	case *types.BoolLiteral:
		if v.Value {
			return "1", ctype.TBool
		}

		return "0", ctype.TBool
	case *types.StringLiteral:
		return e.stringConstant(v.Value), ctype.TString
	case *types.Identifier:
		return e.visitIdentifier(v)
	case *types.ArrayLiteral:
		return e.visitArrayLiteral(v)
	case *types.BinaryExpr:
		return e.visitBinary(v)
	case *types.PrefixExpr:
		return e.visitPrefix(v)
	case *types.IndexExpr:
		return e.visitIndex(v)
	case *types.CallExpr:
		return e.visitCall(v)
	default:
		panic(fmt.Sprintf("ir: unsupported expression %T", expr))
	}
}

func (e *Emitter) visitIdentifier(id *types.Identifier) (string, ctype.Type) {
	slot, ok := e.vars[id.Name]
	if !ok {
		panic(fmt.Sprintf("ir: undefined variable %q", id.Name))
	}
	lt := llvmType(slot.typ)
	temp := e.newTemp()
	e.emit(fmt.Sprintf("  %s = load %s, %s* %s", temp, lt, lt, slot.reg))

	return temp, slot.typ
}

// visitArrayLiteral allocates a runtime array and populates it. Every
// element is stored through culebra_array_set as an i64, matching the
// runtime ABI's fixed 8-byte slot width; FLOAT elements are bitcast and
// STRING/ARRAY pointers converted with ptrtoint first (see toI64).
func (e *Emitter) visitArrayLiteral(lit *types.ArrayLiteral) (string, ctype.Type) {
	n := len(lit.Elements)
	temp := e.newTemp()
	e.emit(fmt.Sprintf("  %s = call %%array* @culebra_create_array(i64 %d, i64 8)", temp, n))

	elemType := ctype.TUnknown
	for i, elemExpr := range lit.Elements {
		reg, t := e.visitExpr(elemExpr)
		elemType = ctype.Unify(elemType, t)
		slot := e.toI64(reg, t)
		e.emit(fmt.Sprintf("  call void @culebra_array_set(%%array* %s, i64 %d, i64 %s)", temp, i, slot))
	}

	return temp, ctype.NewArray(elemType)
}

// toI64 normalizes a value of type t to an i64 bit pattern suitable for
// array storage, bitcasting floats and converting pointers with ptrtoint
// as needed.
func (e *Emitter) toI64(reg string, t ctype.Type) string {
	switch t.Kind {
	case ctype.Int, ctype.Bool:
		return reg
	case ctype.Float:
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = bitcast double %s to i64", temp, reg))

		return temp
	default:
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = ptrtoint %s %s to i64", temp, llvmType(t), reg))

		return temp
	}
}

func (e *Emitter) visitBinary(b *types.BinaryExpr) (string, ctype.Type) {
	leftReg, leftType := e.visitExpr(b.Left)
	rightReg, rightType := e.visitExpr(b.Right)
	op := b.Op.String()
	resultType := binaryResultType(op, leftType, rightType)

	if leftType.Kind == ctype.Int && rightType.Kind == ctype.Float {
		conv := e.newTemp()
		e.emit(fmt.Sprintf("  %s = sitofp i64 %s to double", conv, leftReg))
		leftReg, leftType = conv, ctype.TFloat
	} else if leftType.Kind == ctype.Float && rightType.Kind == ctype.Int {
		conv := e.newTemp()
		e.emit(fmt.Sprintf("  %s = sitofp i64 %s to double", conv, rightReg))
		rightReg, rightType = conv, ctype.TFloat
	}

	temp := e.newTemp()
	switch b.Op {
	case types.OpAdd:
		switch {
		case leftType.Kind == ctype.String:
			e.emit(fmt.Sprintf("  %s = call i8* @culebra_str_concat(i8* %s, i8* %s)", temp, leftReg, rightReg))
		case leftType.Kind == ctype.Float:
			e.emit(fmt.Sprintf("  %s = fadd double %s, %s", temp, leftReg, rightReg))
		default:
			e.emit(fmt.Sprintf("  %s = add i64 %s, %s", temp, leftReg, rightReg))
		}
	case types.OpSub:
		if leftType.Kind == ctype.Float {
			e.emit(fmt.Sprintf("  %s = fsub double %s, %s", temp, leftReg, rightReg))
		} else {
			e.emit(fmt.Sprintf("  %s = sub i64 %s, %s", temp, leftReg, rightReg))
		}
	case types.OpMul:
		if leftType.Kind == ctype.Float {
			e.emit(fmt.Sprintf("  %s = fmul double %s, %s", temp, leftReg, rightReg))
		} else {
			e.emit(fmt.Sprintf("  %s = mul i64 %s, %s", temp, leftReg, rightReg))
		}
	case types.OpDiv:
		if leftType.Kind == ctype.Float {
			e.emit(fmt.Sprintf("  %s = fdiv double %s, %s", temp, leftReg, rightReg))
		} else {
			e.emit(fmt.Sprintf("  %s = sdiv i64 %s, %s", temp, leftReg, rightReg))
		}
	case types.OpEq:
		e.emitCompare(temp, "eq", "oeq", leftType, leftReg, rightReg)
	case types.OpNEq:
		e.emitCompare(temp, "ne", "one", leftType, leftReg, rightReg)
	case types.OpLT:
		e.emitCompare(temp, "slt", "olt", leftType, leftReg, rightReg)
	case types.OpGT:
		e.emitCompare(temp, "sgt", "ogt", leftType, leftReg, rightReg)
	case types.OpLTE:
		e.emitCompare(temp, "sle", "ole", leftType, leftReg, rightReg)
	case types.OpGTE:
		e.emitCompare(temp, "sge", "oge", leftType, leftReg, rightReg)
	case types.OpAnd:
		e.emit(fmt.Sprintf("  %s = and i1 %s, %s", temp, leftReg, rightReg))
	case types.OpOr:
		e.emit(fmt.Sprintf("  %s = or i1 %s, %s", temp, leftReg, rightReg))
	default:
		panic(fmt.Sprintf("ir: unsupported binary operator %s", b.Op))
	}

	return temp, resultType
}

func (e *Emitter) emitCompare(temp, intPred, floatPred string, operandType ctype.Type, left, right string) {
	if operandType.Kind == ctype.Float {
		e.emit(fmt.Sprintf("  %s = fcmp %s double %s, %s", temp, floatPred, left, right))
	} else {
		e.emit(fmt.Sprintf("  %s = icmp %s i64 %s, %s", temp, intPred, left, right))
	}
}

func (e *Emitter) visitPrefix(p *types.PrefixExpr) (string, ctype.Type) {
	operand, operandType := e.visitExpr(p.Right)
	temp := e.newTemp()

	switch p.Op {
	case types.OpNeg:
		if operandType.Kind == ctype.Float {
			e.emit(fmt.Sprintf("  %s = fneg double %s", temp, operand))
		} else {
			e.emit(fmt.Sprintf("  %s = sub i64 0, %s", temp, operand))
		}

		return temp, operandType
	case types.OpNot:
		e.emit(fmt.Sprintf("  %s = xor i1 %s, 1", temp, operand))

		return temp, ctype.TBool
	default:
		panic(fmt.Sprintf("ir: unsupported prefix operator %s", p.Op))
	}
}

// visitIndex emits array element access or single-character string
// access, matching the "string bracket-access yields a one-character
// STRING" decision also implemented in pkg/eval.
func (e *Emitter) visitIndex(idx *types.IndexExpr) (string, ctype.Type) {
	targetReg, targetType := e.visitExpr(idx.Target)
	indexReg, _ := e.visitExpr(idx.Index)

	switch targetType.Kind {
	case ctype.Array:
		elemType := ctype.TInt
		if targetType.Elem != nil {
			elemType = *targetType.Elem
		}
		ptrTemp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = call i8* @culebra_array_get(%%array* %s, i64 %s)", ptrTemp, targetReg, indexReg))
		bitcast := e.newTemp()
		e.emit(fmt.Sprintf("  %s = bitcast i8* %s to i64*", bitcast, ptrTemp))
		result := e.newTemp()
		e.emit(fmt.Sprintf("  %s = load i64, i64* %s", result, bitcast))

		return e.fromI64(result, elemType), elemType
	case ctype.String:
		charPtr := e.newTemp()
		e.emit(fmt.Sprintf("  %s = getelementptr i8, i8* %s, i64 %s", charPtr, targetReg, indexReg))
		byteVal := e.newTemp()
		e.emit(fmt.Sprintf("  %s = load i8, i8* %s", byteVal, charPtr))
		code := e.newTemp()
		e.emit(fmt.Sprintf("  %s = zext i8 %s to i64", code, byteVal))
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = call i8* @culebra_chr(i64 %s)", temp, code))

		return temp, ctype.TString
	default:
		panic(fmt.Sprintf("ir: cannot index type %s", targetType))
	}
}

// fromI64 reverses toI64's normalization when an array element is read
// back out as a typed value.
func (e *Emitter) fromI64(reg string, t ctype.Type) string {
	switch t.Kind {
	case ctype.Int, ctype.Bool:
		return reg
	case ctype.Float:
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = bitcast i64 %s to double", temp, reg))

		return temp
	default:
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = inttoptr i64 %s to %s", temp, reg, llvmType(t)))

		return temp
	}
}

func (e *Emitter) visitCall(call *types.CallExpr) (string, ctype.Type) {
	callee, ok := call.Callee.(*types.Identifier)
	if !ok {
		panic("ir: only direct-name calls are supported")
	}

	if reg, t, handled := e.visitBuiltinCall(callee.Name, call.Args); handled {
		return reg, t
	}

	sig, ok := e.funcs[callee.Name]
	if !ok {
		panic(fmt.Sprintf("ir: undefined function %q", callee.Name))
	}

	var argRegs []string
	for i, argExpr := range call.Args {
		reg, _ := e.visitExpr(argExpr)
		paramType := ctype.TInt
		if i < len(sig.paramTypes) {
			paramType = sig.paramTypes[i]
		}
		argRegs = append(argRegs, fmt.Sprintf("%s %s", llvmType(paramType), reg))
	}

	temp := e.newTemp()
	e.emit(fmt.Sprintf("  %s = call %s @%s(%s)", temp, llvmType(sig.returnType), callee.Name, joinArgs(argRegs)))

	return temp, sig.returnType
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}

	return out
}
