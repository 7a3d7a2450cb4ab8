// Package ast defines the source abstract syntax tree produced by the
// parser and consumed by the analyzer.
package ast

import "github.com/alexandramedway/odds/internal/token"

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
	GetToken() token.Token
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// Visitor dispatches over every concrete expression and statement kind
// through each node's Accept method. The parser and the analyzer do not use
// it; the analyzer dispatches with a type switch.
type Visitor interface {
	VisitNumberLiteral(*NumberLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitBoolLiteral(*BoolLiteral)
	VisitVoidLiteral(*VoidLiteral)
	VisitIdentifier(*Identifier)
	VisitUnaryExpression(*UnaryExpression)
	VisitBinaryExpression(*BinaryExpression)
	VisitAssignExpression(*AssignExpression)
	VisitCallExpression(*CallExpression)
	VisitListLiteral(*ListLiteral)
	VisitFunctionLiteral(*FunctionLiteral)
	VisitIfExpression(*IfExpression)
	VisitDoStatement(*DoStatement)
}

// Program is the root node produced by the parser: an ordered sequence of
// statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
func (p *Program) Accept(v Visitor)      {}
func (p *Program) GetToken() token.Token { return token.Token{} }

// DoStatement evaluates an expression for effect: `do <expr>`.
type DoStatement struct {
	Token token.Token // the 'do' token
	Value Expression
}

func (d *DoStatement) Accept(v Visitor)      { v.VisitDoStatement(d) }
func (d *DoStatement) statementNode()        {}
func (d *DoStatement) TokenLiteral() string  { return d.Token.Lexeme }
func (d *DoStatement) GetToken() token.Token { return d.Token }

// NumberLiteral is a numeric literal, integer or floating.
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (n *NumberLiteral) Accept(v Visitor)      { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) expressionNode()       {}
func (n *NumberLiteral) TokenLiteral() string  { return n.Token.Lexeme }
func (n *NumberLiteral) GetToken() token.Token { return n.Token }

// StringLiteral is a string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(s) }
func (s *StringLiteral) expressionNode()       {}
func (s *StringLiteral) TokenLiteral() string  { return s.Token.Lexeme }
func (s *StringLiteral) GetToken() token.Token { return s.Token }

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (b *BoolLiteral) Accept(v Visitor)      { v.VisitBoolLiteral(b) }
func (b *BoolLiteral) expressionNode()       {}
func (b *BoolLiteral) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BoolLiteral) GetToken() token.Token { return b.Token }

// VoidLiteral is the single void value.
type VoidLiteral struct {
	Token token.Token
}

func (v *VoidLiteral) Accept(vi Visitor)      { vi.VisitVoidLiteral(v) }
func (v *VoidLiteral) expressionNode()        {}
func (v *VoidLiteral) TokenLiteral() string   { return v.Token.Lexeme }
func (v *VoidLiteral) GetToken() token.Token  { return v.Token }

// Identifier is a reference to a bound name.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

// UnaryExpression is a prefix operator applied to a single operand:
// `!e` or `-e`.
type UnaryExpression struct {
	Token    token.Token // the operator token
	Operator string
	Operand  Expression
}

func (u *UnaryExpression) Accept(v Visitor)      { v.VisitUnaryExpression(u) }
func (u *UnaryExpression) expressionNode()       {}
func (u *UnaryExpression) TokenLiteral() string  { return u.Token.Lexeme }
func (u *UnaryExpression) GetToken() token.Token { return u.Token }

// BinaryExpression is an infix operator applied to two operands.
type BinaryExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpression) Accept(v Visitor)      { v.VisitBinaryExpression(b) }
func (b *BinaryExpression) expressionNode()       {}
func (b *BinaryExpression) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BinaryExpression) GetToken() token.Token { return b.Token }

// AssignExpression binds a new name to the value of an expression:
// `id = rhs`.
type AssignExpression struct {
	Token token.Token // the '=' token
	Name  *Identifier
	Value Expression
}

func (a *AssignExpression) Accept(v Visitor)      { v.VisitAssignExpression(a) }
func (a *AssignExpression) expressionNode()       {}
func (a *AssignExpression) TokenLiteral() string  { return a.Token.Lexeme }
func (a *AssignExpression) GetToken() token.Token { return a.Token }

// CallExpression invokes a callee with a list of argument expressions.
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression
	Arguments []Expression
}

func (c *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(c) }
func (c *CallExpression) expressionNode()       {}
func (c *CallExpression) TokenLiteral() string  { return c.Token.Lexeme }
func (c *CallExpression) GetToken() token.Token { return c.Token }

// ListLiteral is a literal list: `[e1, e2, ...]`.
type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (l *ListLiteral) Accept(v Visitor)      { v.VisitListLiteral(l) }
func (l *ListLiteral) expressionNode()       {}
func (l *ListLiteral) TokenLiteral() string  { return l.Token.Lexeme }
func (l *ListLiteral) GetToken() token.Token { return l.Token }

// FunctionLiteral is a function declaration expression:
// `(params) -> do ...stmts... return expr`.
type FunctionLiteral struct {
	Token  token.Token // the '(' token
	Params []*Identifier
	Body   []Statement
	Return Expression
}

func (f *FunctionLiteral) Accept(v Visitor)      { v.VisitFunctionLiteral(f) }
func (f *FunctionLiteral) expressionNode()       {}
func (f *FunctionLiteral) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FunctionLiteral) GetToken() token.Token { return f.Token }

// IfExpression is a conditional expression: `if cond then a else b`.
type IfExpression struct {
	Token     token.Token // the 'if' token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (i *IfExpression) Accept(v Visitor)      { v.VisitIfExpression(i) }
func (i *IfExpression) expressionNode()       {}
func (i *IfExpression) TokenLiteral() string  { return i.Token.Lexeme }
func (i *IfExpression) GetToken() token.Token { return i.Token }
