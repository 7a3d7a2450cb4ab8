// Package tast defines the typed, alpha-renamed output AST produced by
// internal/analyzer (spec.md §3). Every expression node carries a resolved
// typesystem.Type; every identifier carries a globally unique name minted
// by the analyzer.
package tast

import "github.com/alexandramedway/odds/internal/typesystem"

// UniqueName is an alpha-renamed identifier of the form <source>_<N>,
// where N is a process-wide monotonically increasing counter.
type UniqueName string

// Var is a binding's uname and its (possibly still-mutating, during
// checking) type. A *Var is shared between internal/analyzer's Environment
// and any TExpr node that was checked against it, so a constraint resolved
// deep in the tree is visible to every prior reference (spec.md §4.1).
type Var struct {
	Uname UniqueName
	Ty    typesystem.Type
}

// TExpr is a (Expr, Type) pair: a checked expression together with its
// resolved type. Ty is read directly off the node by convention, rather
// than stored redundantly, except where noted.
type TExpr interface {
	Type() typesystem.Type
	texprNode()
}

// TStmt is a checked statement. The only form is Do.
type TStmt interface {
	tstmtNode()
}

// Do evaluates a typed expression for effect.
type Do struct {
	Value TExpr
}

func (Do) tstmtNode() {}

// NumLit, StringLit, BoolLit, VoidLit are literal expressions.
type NumLit struct{ Value float64 }

func (NumLit) Type() typesystem.Type { return typesystem.Num{} }
func (NumLit) texprNode()            {}

type StringLit struct{ Value string }

func (StringLit) Type() typesystem.Type { return typesystem.String{} }
func (StringLit) texprNode()            {}

type BoolLit struct{ Value bool }

func (BoolLit) Type() typesystem.Type { return typesystem.Bool{} }
func (BoolLit) texprNode()            {}

type VoidLit struct{}

func (VoidLit) Type() typesystem.Type { return typesystem.Void{} }
func (VoidLit) texprNode()            {}

// Id is an already-resolved identifier reference. Its type is read off the
// backing *Var so that later mutation of the Var's type is reflected
// without re-walking the tree.
type Id struct {
	Var *Var
}

func (i Id) Type() typesystem.Type { return i.Var.Ty }
func (Id) texprNode()              {}

// Unop is a unary operator application (Not or Neg).
type Unop struct {
	Op      string
	Operand TExpr
	Ty      typesystem.Type
}

func (u Unop) Type() typesystem.Type { return u.Ty }
func (Unop) texprNode()              {}

// Binop is a binary operator application.
type Binop struct {
	Left  TExpr
	Op    string
	Right TExpr
	Ty    typesystem.Type
}

func (b Binop) Type() typesystem.Type { return b.Ty }
func (Binop) texprNode()              {}

// Assign binds a freshly minted unique name to the value of Value.
type Assign struct {
	Var   *Var
	Value TExpr
}

func (a Assign) Type() typesystem.Type { return a.Value.Type() }
func (Assign) texprNode()              {}

// Call is a function invocation. Ty is the callee's return type at the
// point the call was finalized (spec.md §4.5 step 7).
type Call struct {
	Callee TExpr
	Args   []TExpr
	Ty     typesystem.Type
}

func (c Call) Type() typesystem.Type { return c.Ty }
func (Call) texprNode()              {}

// List is a literal list expression.
type List struct {
	Elements []TExpr
	Ty       typesystem.Type
}

func (l List) Type() typesystem.Type { return l.Ty }
func (List) texprNode()              {}

// If is a conditional expression.
type If struct {
	Cond TExpr
	Then TExpr
	Else TExpr
	Ty   typesystem.Type
}

func (i If) Type() typesystem.Type { return i.Ty }
func (If) texprNode()              {}

// FDecl is a function declaration, named or anonymous. A named declaration
// is not wrapped in an Assign node; its binding is carried by Var.
type FDecl struct {
	Var    *Var
	Params []*Var
	Body   []TStmt
	Return TExpr
	IsAnon bool
}

func (f FDecl) Type() typesystem.Type { return f.Var.Ty }
func (FDecl) texprNode()              {}
