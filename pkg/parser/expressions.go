package parser

import (
	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/pkg/lexer"
)

// parsePrefixOp parses a unary "not" or "-" expression. Unary operators
// bind tighter than every binary operator except call/index postfixes,
// so "-a * b" parses as "(-a) * b" and "-f(x)" parses as "-(f(x))".
func (p *Parser) parsePrefixOp(op types.PrefixOp) types.Expr {
	tok := p.cur
	p.advance()
	right := p.parseExpression(precedencePrefix)
	if right == nil {
		return nil
	}

	return &types.PrefixExpr{BaseNode: types.WithToken(tok), Op: op, Right: right}
}

// parseBinary parses the right-hand side of a binary operator and builds
// the resulting BinaryExpr. All of Culebra's binary operators are
// left-associative, so the right side is parsed at this operator's own
// precedence.
func (p *Parser) parseBinary(left types.Expr, op types.BinaryOp) types.Expr {
	tok := p.cur
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}

	return &types.BinaryExpr{BaseNode: types.WithToken(tok), Left: left, Op: op, Right: right}
}

// parseGrouped parses a parenthesized expression "(expr)".
func (p *Parser) parseGrouped() types.Expr {
	p.advance()
	expr := p.parseExpression(precedenceLowest)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return expr
}

// parseArrayLiteral parses "[e1, e2, ..., en]".
func (p *Parser) parseArrayLiteral() types.Expr {
	tok := p.cur
	elems := p.parseExpressionList(lexer.TOKEN_RBRACKET)
	if p.errors.HasErrors() {
		return nil
	}

	return &types.ArrayLiteral{BaseNode: types.WithToken(tok), Elements: elems}
}

// parseCall parses the postfix call form "callee(a, b, c)".
func (p *Parser) parseCall(left types.Expr) types.Expr {
	tok := p.cur
	args := p.parseExpressionList(lexer.TOKEN_RPAREN)

	return &types.CallExpr{BaseNode: types.WithToken(tok), Callee: left, Args: args}
}

// parseIndex parses the postfix bracket-access form "target[index]", used
// for both array element access and single-character string access.
func (p *Parser) parseIndex(left types.Expr) types.Expr {
	tok := p.cur
	p.advance()
	index := p.parseExpression(precedenceLowest)
	if index == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RBRACKET) {
		return nil
	}

	return &types.IndexExpr{BaseNode: types.WithToken(tok), Target: left, Index: index}
}

// parseExpressionList parses a comma-separated list of expressions up to
// (and consuming) the closing token. p.cur is the opening delimiter on
// entry and the closing delimiter on return.
func (p *Parser) parseExpressionList(closing lexer.TokenType) []types.Expr {
	var list []types.Expr

	if p.peekIs(closing) {
		p.advance()

		return list
	}

	p.advance()
	first := p.parseExpression(precedenceLowest)
	if first == nil {
		return nil
	}
	list = append(list, first)

	for p.peekIs(lexer.TOKEN_COMMA) {
		p.advance()
		p.advance()
		next := p.parseExpression(precedenceLowest)
		if next == nil {
			return nil
		}
		list = append(list, next)
	}

	if !p.expectPeek(closing) {
		return nil
	}

	return list
}
