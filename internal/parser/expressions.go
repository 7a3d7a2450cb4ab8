package parser

import (
	"github.com/alexandramedway/odds/internal/ast"
	"github.com/alexandramedway/odds/internal/token"
)

// Precedence levels, lowest to highest.
const (
	LOWEST      = iota
	OR          // ||
	AND         // &&
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	POWER       // **
	PREFIX      // !x, -x
	CALL        // f(x)
)

var precedences = map[token.Type]int{
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.POWER:    POWER,
	token.LPAREN:   CALL,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression is the Pratt-parsing core: a prefix parse produces a
// left operand, then infix parse functions fold in operators whose
// precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	left := prefix()

	for p.err == nil && !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifierOrAssign() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	if !p.peekTokenIs(token.ASSIGN) {
		return ident
	}
	tok := p.peekToken
	p.nextToken() // curToken = '='
	p.nextToken() // curToken = first token of rhs
	value := p.parseExpression(LOWEST)
	return &ast.AssignExpression{Token: tok, Name: ident, Value: value}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	return &ast.NumberLiteral{Token: p.curToken, Value: p.curToken.Literal.(float64)}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseVoidLiteral() ast.Expression {
	return &ast.VoidLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Operator: tok.Lexeme, Operand: operand}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	prec := p.curPrecedence()
	p.nextToken()
	// ** is right-associative: a lower floor lets a trailing ** bind to
	// the right instead of being swallowed by the left operand.
	if tok.Type == token.POWER {
		prec--
	}
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Lexeme, Right: right}
}

// parseParenExpression disambiguates `(expr)` grouping from a function
// literal's parameter list; Odds has no AST node for grouping, so a
// parenthesized expression simply returns its inner expression.
func (p *Parser) parseParenExpression() ast.Expression {
	if p.looksLikeFunctionLiteral() {
		return p.parseFunctionLiteral()
	}
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

// looksLikeFunctionLiteral scans ahead, without consuming tokens, for the
// shape `( IDENT , ... ) ->`. It clones the underlying lexer (a plain
// value type) to look past curToken/peekToken safely.
func (p *Parser) looksLikeFunctionLiteral() bool {
	clone := *p.l
	tok := p.peekToken
	for {
		switch tok.Type {
		case token.IDENT, token.COMMA:
			tok = clone.NextToken()
		case token.RPAREN:
			return clone.NextToken().Type == token.ARROW
		default:
			return false
		}
	}
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	tok := p.curToken // '('
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpression{Token: tok, Function: fn, Arguments: args}
}

func (p *Parser) parseListLiteral() ast.Expression {
	tok := p.curToken // '['
	elements := p.parseExpressionList(token.RBRACKET)
	return &ast.ListLiteral{Token: tok, Elements: elements}
}

// parseExpressionList parses a comma-separated list terminated by end,
// shared by call arguments and list literals. curToken is the opening
// delimiter on entry; on return curToken is the closing delimiter.
func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseIfExpression() ast.Expression {
	tok := p.curToken // 'if'
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.THEN) {
		return nil
	}
	p.nextToken()
	thenExpr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.ELSE) {
		return nil
	}
	p.nextToken()
	elseExpr := p.parseExpression(LOWEST)
	return &ast.IfExpression{Token: tok, Condition: cond, Then: thenExpr, Else: elseExpr}
}
