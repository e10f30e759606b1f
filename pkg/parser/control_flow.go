package parser

import (
	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/pkg/lexer"
)

// parseStatement dispatches on the current token to the right
// statement-level parse function. Anything that doesn't start a keyword
// falls through to an assignment or a bare expression statement.
func (p *Parser) parseStatement() types.Stmt {
	switch p.cur.Type {
	case lexer.TOKEN_IF:
		return p.parseConditional()
	case lexer.TOKEN_WHILE:
		return p.parseWhileLoop()
	case lexer.TOKEN_FOR:
		return p.parseForLoop()
	case lexer.TOKEN_DEF:
		return p.parseFunctionDefinition()
	case lexer.TOKEN_RETURN:
		return p.parseReturn()
	case lexer.TOKEN_BREAK:
		return p.parseBreak()
	case lexer.TOKEN_CONTINUE:
		return p.parseContinue()
	default:
		return p.parseSimpleStatement()
	}
}

// isAssignable reports whether expr can legally sit on the left of "=":
// a bare identifier, or a chain of bracket accesses rooted at one.
func isAssignable(expr types.Expr) bool {
	switch e := expr.(type) {
	case *types.Identifier:
		return true
	case *types.IndexExpr:
		return isAssignable(e.Target)
	default:
		return false
	}
}

// parseSimpleStatement parses either an assignment ("target = value") or
// a bare expression statement. It is also used, without a NEWLINE
// terminator, for the pre/post clauses of a for-loop header.
func (p *Parser) parseSimpleStatement() types.Stmt {
	tok := p.cur
	expr := p.parseExpression(precedenceLowest)
	if expr == nil {
		return nil
	}

	if p.peekIs(lexer.TOKEN_ASSIGN) {
		if !isAssignable(expr) {
			p.errors.Addf(expr.Position().Line, expr.Position().Column, "invalid assignment target %s", expr)

			return nil
		}
		p.advance() // cur = ASSIGN
		p.advance() // cur = first token of value expression
		value := p.parseExpression(precedenceLowest)
		if value == nil {
			return nil
		}

		return &types.Assignment{BaseNode: types.WithToken(tok), Target: expr, Value: value}
	}

	return &types.ExpressionStmt{BaseNode: types.WithToken(tok), Expr: expr}
}

// parseBlock parses an indented statement block following a ":". p.cur
// must be the ":" on entry. On return p.cur is the DEDENT that closes the
// block - the caller consumes it (typically by checking peek for a
// trailing "elif"/"else", or simply advancing past it).
func (p *Parser) parseBlock() *types.Block {
	tok := p.cur
	if !p.expectPeek(lexer.TOKEN_NEWLINE) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_INDENT) {
		return nil
	}
	p.advance()

	block := &types.Block{BaseNode: types.WithToken(tok)}

	for !p.curIs(lexer.TOKEN_DEDENT) && !p.curIs(lexer.TOKEN_EOF) {
		if p.curIs(lexer.TOKEN_NEWLINE) {
			p.advance()
			continue
		}

		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.errors.HasErrors() {
			return block
		}

		p.advance()
	}

	if !p.curIs(lexer.TOKEN_DEDENT) {
		p.errors.Addf(p.cur.Line, p.cur.Column, "expected DEDENT to close block, got %v", p.cur.Type)
	}

	return block
}

// parseConditional parses "if cond:" / "elif cond:" followed by a body,
// and recursively folds any trailing elif/else into Otherwise. A trailing
// "else:" becomes a Conditional with a literal true condition.
func (p *Parser) parseConditional() *types.Conditional {
	tok := p.cur
	p.advance()
	cond := p.parseExpression(precedenceLowest)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}

	body := p.parseBlock()
	node := &types.Conditional{BaseNode: types.WithToken(tok), Cond: cond, Body: body}

	switch {
	case p.peekIs(lexer.TOKEN_ELIF):
		p.advance() // discard this block's DEDENT, cur = ELIF
		node.Otherwise = p.parseConditional()
	case p.peekIs(lexer.TOKEN_ELSE):
		p.advance() // cur = ELSE
		elseTok := p.cur
		if !p.expectPeek(lexer.TOKEN_COLON) {
			return nil
		}
		elseBody := p.parseBlock()
		node.Otherwise = &types.Conditional{
			BaseNode: types.WithToken(elseTok),
			Cond:     &types.BoolLiteral{BaseNode: types.WithToken(elseTok), Value: true},
			Body:     elseBody,
		}
	}

	return node
}

// parseWhileLoop parses "while cond:" followed by a body.
func (p *Parser) parseWhileLoop() *types.While {
	tok := p.cur
	p.advance()
	cond := p.parseExpression(precedenceLowest)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}

	p.loopDepth++
	body := p.parseBlock()
	p.loopDepth--

	return &types.While{BaseNode: types.WithToken(tok), Cond: cond, Body: body}
}

// parseForLoop parses "for pre; cond; post:" followed by a body. All
// three header clauses are mandatory.
func (p *Parser) parseForLoop() *types.For {
	tok := p.cur
	p.advance()
	pre := p.parseSimpleStatement()
	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	p.advance()
	cond := p.parseExpression(precedenceLowest)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	p.advance()
	post := p.parseSimpleStatement()
	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}

	p.loopDepth++
	body := p.parseBlock()
	p.loopDepth--

	return &types.For{BaseNode: types.WithToken(tok), Pre: pre, Cond: cond, Post: post, Body: body}
}

// parseFunctionDefinition parses "def name(p1, p2, ...):" followed by a
// body. Parameters are plain identifiers - Culebra has no default values
// or variadics in its declaration syntax.
func (p *Parser) parseFunctionDefinition() *types.FunctionDefinition {
	tok := p.cur
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.cur.Literal

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}

	var params []string
	if !p.peekIs(lexer.TOKEN_RPAREN) {
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			return nil
		}
		params = append(params, p.cur.Literal)

		for p.peekIs(lexer.TOKEN_COMMA) {
			p.advance()
			if !p.expectPeek(lexer.TOKEN_IDENT) {
				return nil
			}
			params = append(params, p.cur.Literal)
		}
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}

	body := p.parseBlock()

	return &types.FunctionDefinition{BaseNode: types.WithToken(tok), Name: name, Params: params, Body: body}
}

// parseReturn parses "return" or "return expr".
func (p *Parser) parseReturn() *types.ReturnStatement {
	tok := p.cur

	if p.peekIs(lexer.TOKEN_NEWLINE) || p.peekIs(lexer.TOKEN_EOF) || p.peekIs(lexer.TOKEN_DEDENT) {
		return &types.ReturnStatement{BaseNode: types.WithToken(tok), Value: nil}
	}

	p.advance()
	value := p.parseExpression(precedenceLowest)

	return &types.ReturnStatement{BaseNode: types.WithToken(tok), Value: value}
}

// parseBreak parses "break", rejecting it when lexically outside a loop.
func (p *Parser) parseBreak() *types.BreakStatement {
	if p.loopDepth == 0 {
		p.errors.Addf(p.cur.Line, p.cur.Column, "break outside a loop")

		return nil
	}

	return &types.BreakStatement{BaseNode: types.WithToken(p.cur)}
}

// parseContinue parses "continue", rejecting it when lexically outside a
// loop.
func (p *Parser) parseContinue() *types.ContinueStatement {
	if p.loopDepth == 0 {
		p.errors.Addf(p.cur.Line, p.cur.Column, "continue outside a loop")

		return nil
	}

	return &types.ContinueStatement{BaseNode: types.WithToken(p.cur)}
}
