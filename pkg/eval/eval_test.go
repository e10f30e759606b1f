package eval

import (
	"testing"

	"github.com/cnexans/culebra/internal/value"
	"github.com/cnexans/culebra/pkg/lexer"
	"github.com/cnexans/culebra/pkg/parser"
)

func mustEval(t *testing.T, src string) value.Value {
	t.Helper()
	prog, err := parser.New(lexer.New(src)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	v, err := New().Eval(prog)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	return v
}

func evalErr(t *testing.T, src string) error {
	t.Helper()
	prog, err := parser.New(lexer.New(src)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, err = New().Eval(prog)
	if err == nil {
		t.Fatalf("expected an error, got none")
	}

	return err
}

func TestArithmeticAndAssignment(t *testing.T) {
	mustEval(t, "x = 1 + 2 * 3\n")
}

func TestIfElse(t *testing.T) {
	src := "x = 0\n" +
		"if true:\n" +
		"    x = 1\n" +
		"else:\n" +
		"    x = 2\n"
	mustEval(t, src)
}

func TestWhileLoopAccumulates(t *testing.T) {
	src := "i = 0\n" +
		"total = 0\n" +
		"while i < 5:\n" +
		"    total = total + i\n" +
		"    i = i + 1\n"
	mustEval(t, src)
}

func TestForLoopWithBreakContinue(t *testing.T) {
	src := "total = 0\n" +
		"for i = 0; i < 10; i = i + 1:\n" +
		"    if i == 5:\n" +
		"        break\n" +
		"    if i == 2:\n" +
		"        continue\n" +
		"    total = total + i\n"
	mustEval(t, src)
}

func TestFunctionCallAndReturn(t *testing.T) {
	src := "def add(a, b):\n" +
		"    return a + b\n" +
		"x = add(2, 3)\n"
	mustEval(t, src)
}

func TestFunctionMissingArgBindsUndefinedUntilUsed(t *testing.T) {
	src := "def greet(name):\n" +
		"    return 1\n" +
		"x = greet()\n"
	mustEval(t, src)
}

func TestArrayIndexAndAssignment(t *testing.T) {
	src := "a = [1, 2, 3]\n" +
		"a[0] = 9\n" +
		"x = a[0]\n"
	mustEval(t, src)
}

func TestStringIndexYieldsSingleCharacterString(t *testing.T) {
	src := "s = \"hello\"\n" +
		"x = s[1]\n"
	mustEval(t, src)
}

func TestNameLookupFailureIsRuntimeError(t *testing.T) {
	err := evalErr(t, "x = y\n")
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected a RuntimeError, got %T: %v", err, err)
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	evalErr(t, "x = 1 / 0\n")
}

func TestIndexOutOfRangeIsRuntimeError(t *testing.T) {
	evalErr(t, "a = [1, 2]\nx = a[5]\n")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	evalErr(t, "x = 1\ny = x()\n")
}

func TestLogicalShortCircuitsOr(t *testing.T) {
	src := "def boom():\n" +
		"    return 1 / 0\n" +
		"x = true or boom()\n"
	mustEval(t, src)
}

func TestBuiltinLenAndStr(t *testing.T) {
	src := "a = [1, 2, 3]\n" +
		"n = len(a)\n" +
		"s = str(n)\n"
	mustEval(t, src)
}
