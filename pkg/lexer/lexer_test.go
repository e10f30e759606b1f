package lexer

import (
	"testing"
)

func collectTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	l := New(input)
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return types
}

func TestNextToken(t *testing.T) {
	input := "x = 5\ny = 10\n"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_IDENT, "x"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_NUMBER, "5"},
		{TOKEN_NEWLINE, ""},
		{TOKEN_IDENT, "y"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_NUMBER, "10"},
		{TOKEN_NEWLINE, ""},
		{TOKEN_EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "+-*/==!=<><=>="

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_PLUS, "+"},
		{TOKEN_MINUS, "-"},
		{TOKEN_MUL, "*"},
		{TOKEN_DIVIDE, "/"},
		{TOKEN_EQ, "=="},
		{TOKEN_NEQ, "!="},
		{TOKEN_LT, "<"},
		{TOKEN_GT, ">"},
		{TOKEN_LTE, "<="},
		{TOKEN_GTE, ">="},
		{TOKEN_NEWLINE, ""},
		{TOKEN_EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "123 3.14 0.5"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_NUMBER, "123"},
		{TOKEN_FLOAT, "3.14"},
		{TOKEN_FLOAT, "0.5"},
		{TOKEN_NEWLINE, ""},
		{TOKEN_EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestInvalidIdentifier(t *testing.T) {
	l := New("3abc")
	tok := l.NextToken()
	if tok.Type != TOKEN_INVALID_IDENTIFIER {
		t.Fatalf("expected INVALID_IDENTIFIER, got %q", tok.Type)
	}
	if tok.Literal != "3abc" {
		t.Fatalf("expected literal 3abc, got %q", tok.Literal)
	}
}

func TestStrings(t *testing.T) {
	input := `"hello world" "escaped \"quote\"" """triple
line"""`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_STRING, "hello world"},
		{TOKEN_STRING, `escaped "quote"`},
		{TOKEN_STRING, "triple\nline"},
		{TOKEN_NEWLINE, ""},
		{TOKEN_EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "if elif else while for def return break continue and or not true false"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_IF, "if"},
		{TOKEN_ELIF, "elif"},
		{TOKEN_ELSE, "else"},
		{TOKEN_WHILE, "while"},
		{TOKEN_FOR, "for"},
		{TOKEN_DEF, "def"},
		{TOKEN_RETURN, "return"},
		{TOKEN_BREAK, "break"},
		{TOKEN_CONTINUE, "continue"},
		{TOKEN_AND, "and"},
		{TOKEN_OR, "or"},
		{TOKEN_NOT, "not"},
		{TOKEN_BOOLEAN, "true"},
		{TOKEN_BOOLEAN, "false"},
		{TOKEN_NEWLINE, ""},
		{TOKEN_EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestComments(t *testing.T) {
	input := `# leading comment
x = 5 # trailing comment
y = 10`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_IDENT, "x"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_NUMBER, "5"},
		{TOKEN_NEWLINE, ""},
		{TOKEN_IDENT, "y"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_NUMBER, "10"},
		{TOKEN_NEWLINE, ""},
		{TOKEN_EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestIndentation(t *testing.T) {
	input := "if true:\n    x = 1\n    if true:\n        y = 2\n    z = 3\n"

	types := collectTypes(t, input)

	expected := []TokenType{
		TOKEN_IF, TOKEN_BOOLEAN, TOKEN_COLON, TOKEN_NEWLINE,
		TOKEN_INDENT,
		TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_NUMBER, TOKEN_NEWLINE,
		TOKEN_IF, TOKEN_BOOLEAN, TOKEN_COLON, TOKEN_NEWLINE,
		TOKEN_INDENT,
		TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_NUMBER, TOKEN_NEWLINE,
		TOKEN_DEDENT,
		TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_NUMBER, TOKEN_NEWLINE,
		TOKEN_DEDENT,
		TOKEN_EOF,
	}

	if len(types) != len(expected) {
		t.Fatalf("token count mismatch: got %d (%v), want %d (%v)", len(types), types, len(expected), expected)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Fatalf("token[%d]: got %s, want %s (full: %v)", i, types[i], expected[i], types)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != TOKEN_ILLEGAL {
		t.Fatalf("expected ILLEGAL_CHARACTER, got %q", tok.Type)
	}
	if tok.Literal != "@" {
		t.Fatalf("expected literal @, got %q", tok.Literal)
	}
}
