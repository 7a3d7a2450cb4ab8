package parser

import (
	"github.com/alexandramedway/odds/internal/ast"
	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/token"
)

// parseStatement parses the single statement form: `do <expr>`.
func (p *Parser) parseStatement() ast.Statement {
	if !p.curTokenIs(token.DO) {
		p.errorf(diagnostics.ErrUnexpectedToken, p.curToken, "do", string(p.curToken.Type))
		return nil
	}
	return p.parseDoStatement()
}

func (p *Parser) parseDoStatement() *ast.DoStatement {
	tok := p.curToken // 'do'
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return &ast.DoStatement{Token: tok, Value: value}
}

// parseFunctionLiteral parses `(params) -> <body>`. curToken is the
// opening '(' on entry.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.curToken
	params := p.parseFunctionParams()
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken() // move onto the first token of the body
	body, ret := p.parseFunctionBody()
	if p.err != nil {
		return nil
	}
	return &ast.FunctionLiteral{Token: tok, Params: params, Body: body, Return: ret}
}

func (p *Parser) parseFunctionParams() []*ast.Identifier {
	var params []*ast.Identifier
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

// parseFunctionBody parses a function literal's body: zero or more `do`
// statements followed by a mandatory `return <expr>`.
func (p *Parser) parseFunctionBody() ([]ast.Statement, ast.Expression) {
	var stmts []ast.Statement
	for p.curTokenIs(token.DO) {
		stmts = append(stmts, p.parseDoStatement())
		if p.err != nil {
			return nil, nil
		}
		p.nextToken()
	}
	if !p.curTokenIs(token.RETURN) {
		p.errorf(diagnostics.ErrUnexpectedToken, p.curToken, "return", string(p.curToken.Type))
		return nil, nil
	}
	p.nextToken()
	ret := p.parseExpression(LOWEST)
	return stmts, ret
}
