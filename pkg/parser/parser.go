package parser

import (
	"strconv"

	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/pkg/lexer"
)

// Parser implements a recursive descent parser with Pratt-style
// precedence climbing for Culebra. It turns a stream of tokens from the
// lexer into a statement-oriented AST. The parser uses a two-token
// lookahead window (cur/peek) for disambiguation.
type Parser struct {
	l      *lexer.Lexer
	cur    lexer.Token
	peek   lexer.Token
	errors *ParseErrors

	loopDepth int // > 0 while inside a while/for body, gates break/continue
}

// New creates a new parser instance from a lexer, priming the cur/peek
// window with the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: &ParseErrors{},
	}
	p.advance()
	p.advance()

	return p
}

// ParseProgram parses an entire source file: a sequence of statements
// terminated by EOF, skipping stray NEWLINEs between them. The grammar
// has no error recovery, so parsing stops at the first violation.
func (p *Parser) ParseProgram() *types.Program {
	prog := &types.Program{BaseNode: types.WithToken(p.cur)}

	for !p.curIs(lexer.TOKEN_EOF) {
		if p.curIs(lexer.TOKEN_NEWLINE) {
			p.advance()
			continue
		}
		if p.errors.HasErrors() {
			break
		}

		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if p.errors.HasErrors() {
			break
		}

		p.advance()
	}

	return prog
}

// Parse is the Program-returning entry point used by callers that want a
// (result, error) pair instead of inspecting Errors() separately.
func (p *Parser) Parse() (*types.Program, error) {
	prog := p.ParseProgram()
	if p.errors.HasErrors() {
		return nil, p.errors
	}

	return prog, nil
}

// Errors returns the accumulated (at most one - the parser latches only
// its first error) parse error as a slice of messages.
func (p *Parser) Errors() []string {
	if !p.errors.HasErrors() {
		return nil
	}

	return []string{p.errors.Error()}
}

// advance shifts the token window forward by one position.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// curIs checks if the current token matches the specified type.
func (p *Parser) curIs(t lexer.TokenType) bool {
	return p.cur.Type == t
}

// peekIs checks if the next token (lookahead) matches the specified type.
func (p *Parser) peekIs(t lexer.TokenType) bool {
	return p.peek.Type == t
}

// expectPeek verifies the next token matches t and consumes it, or
// records a parse error and returns false.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()

		return true
	}
	p.errors.Addf(p.peek.Line, p.peek.Column,
		"expected next token to be %v, got %v", t, p.peek.Type)

	return false
}

// peekPrecedence returns the precedence of the next token, or
// precedenceLowest if it isn't an operator - which is what lets a
// non-operator token terminate expression parsing without a separate
// terminator check.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedenceMap[p.peek.Type]; ok {
		return prec
	}

	return precedenceLowest
}

// curPrecedence returns the precedence of the current token.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedenceMap[p.cur.Type]; ok {
		return prec
	}

	return precedenceLowest
}

// isInfixOperator reports whether t can appear as an infix/postfix
// operator token.
func (p *Parser) isInfixOperator(t lexer.TokenType) bool {
	_, ok := precedenceMap[t]

	return ok
}

// parseExpression is the core Pratt-parsing loop: parse a prefix
// expression, then keep consuming infix/postfix operators as long as
// they bind tighter than the caller's precedence floor.
func (p *Parser) parseExpression(precedence int) types.Expr {
	left := p.parsePrefixExpression()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		if !p.isInfixOperator(p.peek.Type) {
			break
		}
		p.advance()
		left = p.parseInfixExpression(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parsePrefixExpression handles tokens that can start an expression:
// literals, identifiers, unary operators, grouping, and array literals.
func (p *Parser) parsePrefixExpression() types.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_NUMBER:
		return p.parseInteger()
	case lexer.TOKEN_FLOAT:
		return p.parseFloatLiteral()
	case lexer.TOKEN_STRING:
		return &types.StringLiteral{BaseNode: types.WithToken(p.cur), Value: p.cur.Literal}
	case lexer.TOKEN_BOOLEAN:
		return &types.BoolLiteral{BaseNode: types.WithToken(p.cur), Value: p.cur.Literal == "true"}
	case lexer.TOKEN_IDENT:
		return &types.Identifier{BaseNode: types.WithToken(p.cur), Name: p.cur.Literal}
	case lexer.TOKEN_NOT:
		return p.parsePrefixOp(types.OpNot)
	case lexer.TOKEN_MINUS:
		return p.parsePrefixOp(types.OpNeg)
	case lexer.TOKEN_LPAREN:
		return p.parseGrouped()
	case lexer.TOKEN_LBRACKET:
		return p.parseArrayLiteral()
	default:
		p.errors.Addf(p.cur.Line, p.cur.Column, "unexpected token %v in expression", p.cur.Type)

		return nil
	}
}

// parseInfixExpression handles binary operators plus the two postfix
// forms (call, index) that chain at the same precedence level.
func (p *Parser) parseInfixExpression(left types.Expr) types.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_PLUS:
		return p.parseBinary(left, types.OpAdd)
	case lexer.TOKEN_MINUS:
		return p.parseBinary(left, types.OpSub)
	case lexer.TOKEN_MUL:
		return p.parseBinary(left, types.OpMul)
	case lexer.TOKEN_DIVIDE:
		return p.parseBinary(left, types.OpDiv)
	case lexer.TOKEN_EQ:
		return p.parseBinary(left, types.OpEq)
	case lexer.TOKEN_NEQ:
		return p.parseBinary(left, types.OpNEq)
	case lexer.TOKEN_LT:
		return p.parseBinary(left, types.OpLT)
	case lexer.TOKEN_GT:
		return p.parseBinary(left, types.OpGT)
	case lexer.TOKEN_LTE:
		return p.parseBinary(left, types.OpLTE)
	case lexer.TOKEN_GTE:
		return p.parseBinary(left, types.OpGTE)
	case lexer.TOKEN_AND:
		return p.parseBinary(left, types.OpAnd)
	case lexer.TOKEN_OR:
		return p.parseBinary(left, types.OpOr)
	case lexer.TOKEN_LPAREN:
		return p.parseCall(left)
	case lexer.TOKEN_LBRACKET:
		return p.parseIndex(left)
	default:
		p.errors.Addf(p.cur.Line, p.cur.Column, "no infix parse function for %v", p.cur.Type)

		return nil
	}
}

// parseInteger converts a NUMBER token to an IntegerLiteral node.
func (p *Parser) parseInteger() types.Expr {
	val, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column, "could not parse %q as integer", p.cur.Literal)

		return nil
	}

	return &types.IntegerLiteral{BaseNode: types.WithToken(p.cur), Value: val}
}

// parseFloatLiteral converts a FLOAT token to a FloatLiteral node.
func (p *Parser) parseFloatLiteral() types.Expr {
	val, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column, "could not parse %q as float", p.cur.Literal)

		return nil
	}

	return &types.FloatLiteral{BaseNode: types.WithToken(p.cur), Value: val}
}
