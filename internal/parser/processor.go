// Package parser implements a Pratt (operator-precedence) parser that
// turns a token stream into the source AST defined by internal/ast.
package parser

import (
	"github.com/alexandramedway/odds/internal/ast"
	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/lexer"
	"github.com/alexandramedway/odds/internal/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes tokens from a *lexer.Lexer two at a time (curToken,
// peekToken), in the classic Pratt-parser shape.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	err error
}

// New returns a Parser reading from l, primed with the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:  p.parseIdentifierOrAssign,
		token.NUMBER: p.parseNumberLiteral,
		token.STRING: p.parseStringLiteral,
		token.TRUE:   p.parseBoolLiteral,
		token.FALSE:  p.parseBoolLiteral,
		token.VOID:   p.parseVoidLiteral,
		token.BANG:   p.parsePrefixExpression,
		token.MINUS:  p.parsePrefixExpression,
		token.LPAREN: p.parseParenExpression,
		token.LBRACKET: p.parseListLiteral,
		token.IF:     p.parseIfExpression,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseBinaryExpression,
		token.MINUS:    p.parseBinaryExpression,
		token.ASTERISK: p.parseBinaryExpression,
		token.SLASH:    p.parseBinaryExpression,
		token.PERCENT:  p.parseBinaryExpression,
		token.POWER:    p.parseBinaryExpression,
		token.LT:       p.parseBinaryExpression,
		token.GT:       p.parseBinaryExpression,
		token.LTE:      p.parseBinaryExpression,
		token.GTE:      p.parseBinaryExpression,
		token.EQ:       p.parseBinaryExpression,
		token.NEQ:      p.parseBinaryExpression,
		token.AND:      p.parseBinaryExpression,
		token.OR:       p.parseBinaryExpression,
		token.LPAREN:   p.parseCallExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it has type t, recording a parse
// error otherwise.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf(diagnostics.ErrExpectedToken, p.peekToken, string(t)+", got "+string(p.peekToken.Type))
	return false
}

func (p *Parser) errorf(code diagnostics.Code, tok token.Token, args ...interface{}) {
	if p.err == nil {
		p.err = diagnostics.New(diagnostics.PhaseParser, code, tok, args...)
	}
}

func (p *Parser) noPrefixParseFnError(t token.Type) {
	p.errorf(diagnostics.ErrUnexpectedToken, p.curToken, "an expression", string(t))
}

// ParseProgram parses the full token stream into a Program. It stops and
// returns the first parse error encountered, if any.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			return nil, p.err
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	if p.err != nil {
		return nil, p.err
	}
	return program, nil
}

// Parse is a convenience entry point: lex then parse source in one call.
func Parse(source string) (*ast.Program, error) {
	return New(lexer.New(source)).ParseProgram()
}
