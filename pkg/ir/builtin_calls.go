package ir

import (
	"fmt"

	"github.com/cnexans/culebra/internal/ctype"
	"github.com/cnexans/culebra/internal/types"
)

// visitBuiltinCall handles the builtins that need bespoke codegen
// (print's variable arity and per-type dispatch, input's optional
// prompt, len/chr/ord's runtime-ABI shape) rather than a plain direct
// call. Returns handled=false for anything else, including the
// builtins (int/float/str/abs/read_file/read_lines) that have no
// direct AoT lowering and are interpreter-only - not every builtin
// needs to be compilable.
func (e *Emitter) visitBuiltinCall(name string, args []types.Expr) (string, ctype.Type, bool) {
	switch name {
	case "print":
		return e.genPrint(args), ctype.TInt, true
	case "input":
		return e.genInput(args), ctype.TString, true
	case "len":
		return e.genLen(args), ctype.TInt, true
	case "chr":
		return e.genChr(args), ctype.TString, true
	case "ord":
		return e.genOrd(args), ctype.TInt, true
	default:
		return "", ctype.TUnknown, false
	}
}

func (e *Emitter) genPrint(args []types.Expr) string {
	if len(args) == 0 {
		reg := e.stringConstant("")
		e.emit(fmt.Sprintf("  call void @culebra_print_string(i8* %s)", reg))

		return "0"
	}
	if len(args) == 1 {
		reg, t := e.visitExpr(args[0])
		switch t.Kind {
		case ctype.Int:
			e.emit(fmt.Sprintf("  call void @culebra_print_int(i64 %s)", reg))
		case ctype.Float:
			e.emit(fmt.Sprintf("  call void @culebra_print_float(double %s)", reg))
		case ctype.Bool:
			e.emit(fmt.Sprintf("  call void @culebra_print_bool(i1 %s)", reg))
		default:
			e.emit(fmt.Sprintf("  call void @culebra_print_string(i8* %s)", reg))
		}

		return "0"
	}

	space := e.stringConstant(" ")
	var acc string
	for _, argExpr := range args {
		reg, t := e.visitExpr(argExpr)
		str := e.toStringReg(reg, t)
		if acc == "" {
			acc = str

			continue
		}
		withSpace := e.newTemp()
		e.emit(fmt.Sprintf("  %s = call i8* @culebra_str_concat(i8* %s, i8* %s)", withSpace, acc, space))
		next := e.newTemp()
		e.emit(fmt.Sprintf("  %s = call i8* @culebra_str_concat(i8* %s, i8* %s)", next, withSpace, str))
		acc = next
	}
	e.emit(fmt.Sprintf("  call void @culebra_print_string(i8* %s)", acc))

	return "0"
}

func (e *Emitter) toStringReg(reg string, t ctype.Type) string {
	switch t.Kind {
	case ctype.String:
		return reg
	case ctype.Int:
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = call i8* @culebra_int_to_str(i64 %s)", temp, reg))

		return temp
	case ctype.Float:
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = call i8* @culebra_float_to_str(double %s)", temp, reg))

		return temp
	case ctype.Bool:
		temp := e.newTemp()
		e.emit(fmt.Sprintf("  %s = call i8* @culebra_bool_to_str(i1 %s)", temp, reg))

		return temp
	default:
		return reg
	}
}

func (e *Emitter) genInput(args []types.Expr) string {
	var promptReg string
	if len(args) == 0 {
		promptReg = e.stringConstant("")
	} else {
		promptReg, _ = e.visitExpr(args[0])
	}
	temp := e.newTemp()
	e.emit(fmt.Sprintf("  %s = call i8* @culebra_input(i8* %s)", temp, promptReg))

	return temp
}

func (e *Emitter) genLen(args []types.Expr) string {
	reg, t := e.visitExpr(args[0])
	temp := e.newTemp()
	if t.Kind == ctype.Array {
		e.emit(fmt.Sprintf("  %s = call i64 @culebra_len_array(%%array* %s)", temp, reg))
	} else {
		e.emit(fmt.Sprintf("  %s = call i64 @culebra_len(i8* %s)", temp, reg))
	}

	return temp
}

func (e *Emitter) genChr(args []types.Expr) string {
	reg, _ := e.visitExpr(args[0])
	temp := e.newTemp()
	e.emit(fmt.Sprintf("  %s = call i8* @culebra_chr(i64 %s)", temp, reg))

	return temp
}

func (e *Emitter) genOrd(args []types.Expr) string {
	reg, _ := e.visitExpr(args[0])
	temp := e.newTemp()
	e.emit(fmt.Sprintf("  %s = call i64 @culebra_ord(i8* %s)", temp, reg))

	return temp
}
