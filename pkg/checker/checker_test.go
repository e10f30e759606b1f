package checker

import (
	"strings"
	"testing"

	"github.com/cnexans/culebra/pkg/lexer"
	"github.com/cnexans/culebra/pkg/parser"
)

func mustCheck(t *testing.T, src string) error {
	t.Helper()

	l := lexer.New(src)
	p := parser.New(l)
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return New().Check(prog)
}

func TestLiteralTypes(t *testing.T) {
	if err := mustCheck(t, "x = 1\ny = 1.5\nz = \"s\"\nw = true\n"); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
}

func TestArrayHomogeneity(t *testing.T) {
	if err := mustCheck(t, "arr = [1, 2, 3]\n"); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}

	err := mustCheck(t, "arr = [1, true]\n")
	if err == nil {
		t.Fatalf("expected a type error for heterogeneous array")
	}
	if !strings.Contains(err.Error(), "same type") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestBracketAssignmentTypeMismatch(t *testing.T) {
	err := mustCheck(t, "arr = [1, 2]\narr[0] = \"x\"\n")
	if err == nil {
		t.Fatalf("expected a type error for array element type mismatch")
	}
	if !strings.Contains(err.Error(), "Cannot assign") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestBracketAssignmentIndexMustBeInt(t *testing.T) {
	err := mustCheck(t, "arr = [1, 2]\narr[\"x\"] = 1\n")
	if err == nil {
		t.Fatalf("expected a type error for non-integer index")
	}
}

func TestArithmeticOperandMismatch(t *testing.T) {
	err := mustCheck(t, "x = 1 + true\n")
	if err == nil {
		t.Fatalf("expected a type error for INT + BOOL")
	}
}

func TestStringConcatenation(t *testing.T) {
	if err := mustCheck(t, "s = \"a\" + \"b\"\n"); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
}

func TestComparisonRequiresNumeric(t *testing.T) {
	err := mustCheck(t, "x = \"a\" < \"b\"\n")
	if err == nil {
		t.Fatalf("expected a type error for non-numeric comparison")
	}
}

func TestEqualityAllowsAnyMatchingPair(t *testing.T) {
	if err := mustCheck(t, "x = true == false\n"); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
}

func TestLogicalRequiresBool(t *testing.T) {
	err := mustCheck(t, "x = 1 and 2\n")
	if err == nil {
		t.Fatalf("expected a type error for non-boolean logical operands")
	}
}

func TestConditionMustBeBool(t *testing.T) {
	err := mustCheck(t, "if 1:\n    x = 1\n")
	if err == nil {
		t.Fatalf("expected a type error for a non-boolean condition")
	}
}

func TestUnboundIdentifierIsUnknownNotAnError(t *testing.T) {
	if err := mustCheck(t, "y = x + 1\n"); err != nil {
		t.Fatalf("unbound identifier should type as UNKNOWN, not error: %v", err)
	}
}

func TestFunctionDefinitionAndCall(t *testing.T) {
	src := "def add(a, b):\n    return a + b\nresult = add(1, 2)\n"
	if err := mustCheck(t, src); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
}

func TestStringBracketAccessYieldsString(t *testing.T) {
	if err := mustCheck(t, "s = \"hello\"\nc = s[0]\n"); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
}
