package parser

import (
	"testing"

	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/pkg/lexer"
)

func testIntegerLiteral(t *testing.T, il types.Expr, value int64) bool {
	t.Helper()

	integ, ok := il.(*types.IntegerLiteral)
	if !ok {
		t.Errorf("il not *types.IntegerLiteral. got=%T", il)

		return false
	}

	if integ.Value != value {
		t.Errorf("integ.Value not %d. got=%d", value, integ.Value)

		return false
	}

	return true
}

func testIdentifier(t *testing.T, exp types.Expr, value string) bool {
	t.Helper()

	ident, ok := exp.(*types.Identifier)
	if !ok {
		t.Errorf("exp not *types.Identifier. got=%T", exp)

		return false
	}

	if ident.Name != value {
		t.Errorf("ident.Name not %s. got=%s", value, ident.Name)

		return false
	}

	return true
}

func parseSource(t *testing.T, src string) *types.Program {
	t.Helper()

	l := lexer.New(src)
	p := New(l)
	prog := p.ParseProgram()

	if p.errors.HasErrors() {
		t.Fatalf("parser error: %s", p.errors.Error())
	}

	return prog
}

func TestAssignmentStatements(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
	}{
		{"x = 5\n", "x"},
		{"y = true\n", "y"},
		{"total = x + 1\n", "total"},
	}

	for _, tt := range tests {
		prog := parseSource(t, tt.input)
		if len(prog.Statements) != 1 {
			t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
		}

		stmt, ok := prog.Statements[0].(*types.Assignment)
		if !ok {
			t.Fatalf("statement not *types.Assignment. got=%T", prog.Statements[0])
		}

		if !testIdentifier(t, stmt.Target, tt.wantName) {
			return
		}
	}
}

func TestIndexAssignment(t *testing.T) {
	prog := parseSource(t, "a[0] = 1\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}

	stmt, ok := prog.Statements[0].(*types.Assignment)
	if !ok {
		t.Fatalf("statement not *types.Assignment. got=%T", prog.Statements[0])
	}

	if _, ok := stmt.Target.(*types.IndexExpr); !ok {
		t.Fatalf("target not *types.IndexExpr. got=%T", stmt.Target)
	}
}

func TestExpressionStatement(t *testing.T) {
	prog := parseSource(t, "foo\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}

	stmt, ok := prog.Statements[0].(*types.ExpressionStmt)
	if !ok {
		t.Fatalf("statement not *types.ExpressionStmt. got=%T", prog.Statements[0])
	}

	testIdentifier(t, stmt.Expr, "foo")
}

func TestBinaryExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a + b * c\n", "(a + (b * c))"},
		{"a * b + c\n", "((a * b) + c)"},
		{"a + b - c\n", "((a + b) - c)"},
		{"a < b and c > d\n", "((a < b) and (c > d))"},
		{"-a * b\n", "((-a) * b)"},
		{"not a and b\n", "((not a) and b)"},
	}

	for _, tt := range tests {
		prog := parseSource(t, tt.input)
		if len(prog.Statements) != 1 {
			t.Fatalf("input %q: expected 1 statement, got %d", tt.input, len(prog.Statements))
		}
		stmt := prog.Statements[0].(*types.ExpressionStmt)
		if got := stmt.Expr.String(); got != tt.want {
			t.Errorf("input %q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestArrayLiteral(t *testing.T) {
	prog := parseSource(t, "[1, 2, 3]\n")
	stmt := prog.Statements[0].(*types.ExpressionStmt)
	arr, ok := stmt.Expr.(*types.ArrayLiteral)
	if !ok {
		t.Fatalf("expr not *types.ArrayLiteral. got=%T", stmt.Expr)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
	testIntegerLiteral(t, arr.Elements[0], 1)
}

func TestCallExpression(t *testing.T) {
	prog := parseSource(t, "add(1, x)\n")
	stmt := prog.Statements[0].(*types.ExpressionStmt)
	call, ok := stmt.Expr.(*types.CallExpr)
	if !ok {
		t.Fatalf("expr not *types.CallExpr. got=%T", stmt.Expr)
	}
	testIdentifier(t, call.Callee, "add")
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

func TestIndexExpression(t *testing.T) {
	prog := parseSource(t, "arr[0]\n")
	stmt := prog.Statements[0].(*types.ExpressionStmt)
	idx, ok := stmt.Expr.(*types.IndexExpr)
	if !ok {
		t.Fatalf("expr not *types.IndexExpr. got=%T", stmt.Expr)
	}
	testIdentifier(t, idx.Target, "arr")
	testIntegerLiteral(t, idx.Index, 0)
}

func TestConditional(t *testing.T) {
	src := "if x < 5:\n    y = 1\nelif x < 10:\n    y = 2\nelse:\n    y = 3\n"
	prog := parseSource(t, src)

	cond, ok := prog.Statements[0].(*types.Conditional)
	if !ok {
		t.Fatalf("statement not *types.Conditional. got=%T", prog.Statements[0])
	}
	if len(cond.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in if-body, got %d", len(cond.Body.Statements))
	}

	elif := cond.Otherwise
	if elif == nil {
		t.Fatalf("expected elif clause")
	}
	if len(elif.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in elif-body, got %d", len(elif.Body.Statements))
	}

	els := elif.Otherwise
	if els == nil {
		t.Fatalf("expected else clause")
	}
	if _, ok := els.Cond.(*types.BoolLiteral); !ok {
		t.Fatalf("else condition not a literal true, got %T", els.Cond)
	}
	if els.Otherwise != nil {
		t.Fatalf("expected no further clause after else")
	}
}

func TestWhileLoop(t *testing.T) {
	src := "while x < 10:\n    x = x + 1\n"
	prog := parseSource(t, src)

	loop, ok := prog.Statements[0].(*types.While)
	if !ok {
		t.Fatalf("statement not *types.While. got=%T", prog.Statements[0])
	}
	if len(loop.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(loop.Body.Statements))
	}
}

func TestForLoop(t *testing.T) {
	src := "for i = 0; i < 10; i = i + 1:\n    print(i)\n"
	prog := parseSource(t, src)

	loop, ok := prog.Statements[0].(*types.For)
	if !ok {
		t.Fatalf("statement not *types.For. got=%T", prog.Statements[0])
	}
	if loop.Pre == nil || loop.Cond == nil || loop.Post == nil || loop.Body == nil {
		t.Fatalf("for-loop header incompletely parsed: %+v", loop)
	}

	children := loop.Children()
	if len(children) != 4 {
		t.Fatalf("expected 4 children, got %d", len(children))
	}
}

func TestFunctionDefinition(t *testing.T) {
	src := "def add(a, b):\n    return a + b\n"
	prog := parseSource(t, src)

	fn, ok := prog.Statements[0].(*types.FunctionDefinition)
	if !ok {
		t.Fatalf("statement not *types.FunctionDefinition. got=%T", prog.Statements[0])
	}
	if fn.Name != "add" {
		t.Errorf("fn.Name = %q, want add", fn.Name)
	}
	if len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
		t.Errorf("unexpected params: %v", fn.Params)
	}

	ret, ok := fn.Body.Statements[0].(*types.ReturnStatement)
	if !ok {
		t.Fatalf("body statement not *types.ReturnStatement. got=%T", fn.Body.Statements[0])
	}
	if ret.Value == nil {
		t.Fatalf("expected a return value")
	}
}

func TestBareReturn(t *testing.T) {
	src := "def noop():\n    return\n"
	prog := parseSource(t, src)

	fn := prog.Statements[0].(*types.FunctionDefinition)
	ret := fn.Body.Statements[0].(*types.ReturnStatement)
	if ret.Value != nil {
		t.Errorf("expected nil return value, got %v", ret.Value)
	}
}

func TestBreakContinueInsideLoop(t *testing.T) {
	src := "while true:\n    if x:\n        break\n    else:\n        continue\n"
	prog := parseSource(t, src)

	loop := prog.Statements[0].(*types.While)
	cond := loop.Body.Statements[0].(*types.Conditional)

	if _, ok := cond.Body.Statements[0].(*types.BreakStatement); !ok {
		t.Errorf("expected BreakStatement, got %T", cond.Body.Statements[0])
	}
	if _, ok := cond.Otherwise.Body.Statements[0].(*types.ContinueStatement); !ok {
		t.Errorf("expected ContinueStatement, got %T", cond.Otherwise.Body.Statements[0])
	}
}

func TestBreakOutsideLoopIsParseError(t *testing.T) {
	l := lexer.New("break\n")
	p := New(l)
	p.ParseProgram()

	if !p.errors.HasErrors() {
		t.Fatalf("expected a parse error for break outside a loop")
	}
}

func TestContinueOutsideLoopIsParseError(t *testing.T) {
	l := lexer.New("continue\n")
	p := New(l)
	p.ParseProgram()

	if !p.errors.HasErrors() {
		t.Fatalf("expected a parse error for continue outside a loop")
	}
}

func TestInvalidAssignmentTargetIsParseError(t *testing.T) {
	l := lexer.New("1 = 2\n")
	p := New(l)
	p.ParseProgram()

	if !p.errors.HasErrors() {
		t.Fatalf("expected a parse error for an invalid assignment target")
	}
}
