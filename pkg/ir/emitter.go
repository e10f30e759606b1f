package ir

import (
	"fmt"
	"strings"

	"github.com/cnexans/culebra/internal/ctype"
	"github.com/cnexans/culebra/internal/types"
)

// funcSig records a user-defined function's return and parameter types,
// inferred conservatively from its body: every parameter is treated as
// INT, and so is the return value unless a top-level return statement
// returns a FLOAT, STRING or BOOL literal (see inferReturnType).
type funcSig struct {
	returnType ctype.Type
	paramTypes []ctype.Type
}

// Emitter walks a type-checked AST and renders it as LLVM IR text: a flat
// output buffer, monotonic temp/label/string counters, and a variable
// table mapping each in-scope name to the SSA register holding its
// alloca plus its tracked ctype.Type.
type Emitter struct {
	out strings.Builder

	tempCounter   int
	labelCounter  int
	stringCounter int

	globalStrings map[string]string // name -> literal value
	stringOrder   []string

	vars  map[string]varSlot
	funcs map[string]funcSig

	loopStack []loopLabels

	// currentReturnType is the declared return type of the function
	// currently being generated, consulted by a bare "return" so its
	// implicit value matches the enclosing signature. Defaults to INT,
	// matching main's i32 return, since top-level code has no enclosing
	// function of its own.
	currentReturnType ctype.Type
}

// loopLabels is pushed by visitWhile/visitFor so a nested break/continue
// knows which block to jump to without threading the labels through
// every statement visitor.
type loopLabels struct {
	continueLabel string
	breakLabel    string
}

type varSlot struct {
	reg string
	typ ctype.Type
}

// New creates an Emitter ready to Generate one module.
func New() *Emitter {
	return &Emitter{
		globalStrings: make(map[string]string),
		vars:          make(map[string]varSlot),
		funcs:         make(map[string]funcSig),
	}
}

// Generate renders prog as a complete LLVM IR module.
func Generate(prog *types.Program) string {
	e := New()

	return e.generate(prog)
}

func (e *Emitter) generate(prog *types.Program) string {
	e.emit("; ModuleID = 'culebra'")
	e.emit(`source_filename = "culebra"`)
	e.emit("")
	e.emit("%array = type { i64, i8* }")
	e.emit("")
	e.emit("; runtime declarations")
	for _, decl := range runtimeDeclarations {
		e.emit(decl)
	}
	e.emit("")

	for _, stmt := range prog.Statements {
		if def, ok := stmt.(*types.FunctionDefinition); ok {
			e.registerFunction(def)
		}
	}

	e.emit("define i32 @main() {")
	e.emit("entry:")
	for _, stmt := range prog.Statements {
		if _, ok := stmt.(*types.FunctionDefinition); ok {
			continue
		}
		e.visitStmt(stmt)
	}
	e.emit("  ret i32 0")
	e.emit("}")
	e.emit("")

	for _, stmt := range prog.Statements {
		if def, ok := stmt.(*types.FunctionDefinition); ok {
			e.generateFunction(def)
		}
	}

	if len(e.stringOrder) > 0 {
		e.emit("; string constants")
		for _, name := range e.stringOrder {
			val := e.globalStrings[name]
			e.emit(fmt.Sprintf("%s = private unnamed_addr constant [%d x i8] c\"%s\\00\"",
				name, len(val)+1, escapeString(val)))
		}
	}

	return e.out.String()
}

func (e *Emitter) emit(line string) {
	e.out.WriteString(line)
	e.out.WriteByte('\n')
}

func (e *Emitter) newTemp() string {
	e.tempCounter++

	return fmt.Sprintf("%%t%d", e.tempCounter)
}

func (e *Emitter) newLabel(prefix string) string {
	e.labelCounter++

	return fmt.Sprintf("%s%d", prefix, e.labelCounter)
}

// stringConstant interns val, reusing an existing global if the same
// literal was already emitted, and returns the pointer register holding
// its address.
func (e *Emitter) stringConstant(val string) string {
	for _, name := range e.stringOrder {
		if e.globalStrings[name] == val {
			return e.loadStringConstant(name, val)
		}
	}
	e.stringCounter++
	name := fmt.Sprintf("@.str.%d", e.stringCounter)
	e.globalStrings[name] = val
	e.stringOrder = append(e.stringOrder, name)

	return e.loadStringConstant(name, val)
}

func (e *Emitter) loadStringConstant(name, val string) string {
	n := len(val) + 1
	temp := e.newTemp()
	e.emit(fmt.Sprintf("  %s = getelementptr [%d x i8], [%d x i8]* %s, i32 0, i32 0", temp, n, n, name))

	return temp
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\5C")
	s = strings.ReplaceAll(s, `"`, "\\22")
	s = strings.ReplaceAll(s, "\n", "\\0A")

	return s
}
