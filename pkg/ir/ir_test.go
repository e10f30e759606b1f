package ir

import (
	"strings"
	"testing"

	"github.com/cnexans/culebra/pkg/lexer"
	"github.com/cnexans/culebra/pkg/parser"
)

func mustParse(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.New(lexer.New(src)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return Generate(prog)
}

func TestGenerateEmitsModuleHeaderAndMain(t *testing.T) {
	out := mustParse(t, "x = 1 + 2\n")
	if !strings.Contains(out, "define i32 @main()") {
		t.Fatalf("missing main wrapper:\n%s", out)
	}
	if !strings.Contains(out, "%array = type { i64, i8* }") {
		t.Fatalf("missing array type definition:\n%s", out)
	}
}

func TestGenerateFunctionDefinition(t *testing.T) {
	src := "def add(a, b):\n" +
		"    return a + b\n" +
		"x = add(1, 2)\n"
	out := mustParse(t, src)
	if !strings.Contains(out, "define i64 @add(i64 %a, i64 %b)") {
		t.Fatalf("missing add function:\n%s", out)
	}
}

func TestGenerateWhileLoop(t *testing.T) {
	src := "i = 0\nwhile i < 3:\n    i = i + 1\n"
	out := mustParse(t, src)
	if !strings.Contains(out, "while_cond") || !strings.Contains(out, "while_end") {
		t.Fatalf("missing while loop labels:\n%s", out)
	}
}

func TestGenerateStringLiteralPools(t *testing.T) {
	src := "print(\"hi\")\nprint(\"hi\")\n"
	out := mustParse(t, src)
	if strings.Count(out, "@.str.1 = private") != 1 {
		t.Fatalf("expected string constant to be pooled once:\n%s", out)
	}
}

func TestGenerateBreakContinueInLoop(t *testing.T) {
	src := "for i = 0; i < 5; i = i + 1:\n" +
		"    if i == 2:\n" +
		"        continue\n" +
		"    if i == 4:\n" +
		"        break\n"
	mustParse(t, src)
}
