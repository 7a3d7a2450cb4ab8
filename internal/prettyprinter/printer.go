// Package prettyprinter renders the analyzer's typed output AST
// (internal/tast) back into Odds source text. It never inspects the
// source AST and is never called by internal/analyzer (spec.md: "the
// pretty-printer consumes the typed output AST and renders text; the
// analyzer does not call into it").
package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/alexandramedway/odds/internal/tast"
)

// operatorPrecedence mirrors internal/parser's Pratt table: it has to,
// since re-printing needs the same tighter-binds-higher ordering the
// parser used to build the tree in the first place, to decide where
// parentheses are load-bearing versus redundant.
var operatorPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3,
	"!=": 3,
	"<":  4,
	">":  4,
	"<=": 4,
	">=": 4,
	"+":  5,
	"-":  5,
	"*":  6,
	"/":  6,
	"%":  6,
	"**": 7,
}

func precedenceOf(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10
}

var rightAssoc = map[string]bool{"**": true}

// Printer walks a checked statement list and renders it as Odds source.
type Printer struct {
	buf    bytes.Buffer
	indent int
}

// Format renders stmts as Odds source text.
func Format(stmts []tast.TStmt) string {
	p := &Printer{}
	for i, stmt := range stmts {
		if i > 0 {
			p.writeln()
		}
		p.printStmt(stmt)
	}
	return p.buf.String()
}

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) writeln() { p.buf.WriteString("\n") }

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

func (p *Printer) printStmt(stmt tast.TStmt) {
	switch s := stmt.(type) {
	case tast.Do:
		p.write("do ")
		p.printExpr(s.Value, 0, false)
	default:
		p.write("<???>")
	}
}

// printExpr renders expr, parenthesizing it only when its own operator
// binds less tightly than the context it sits in (parentPrec), or binds
// equally but on the wrong side of a left-associative (or right-
// associative) operator.
func (p *Printer) printExpr(expr tast.TExpr, parentPrec int, isRight bool) {
	switch e := expr.(type) {
	case tast.NumLit:
		p.write(formatNum(e.Value))
	case tast.StringLit:
		p.write(quoteString(e.Value))
	case tast.BoolLit:
		if e.Value {
			p.write("true")
		} else {
			p.write("false")
		}
	case tast.VoidLit:
		p.write("void")
	case tast.Id:
		p.write(sourceNameOf(e.Var.Uname))
	case tast.Unop:
		p.write(e.Op)
		p.printExpr(e.Operand, 9, false)
	case tast.Binop:
		prec := precedenceOf(e.Op)
		needParens := prec < parentPrec
		if prec == parentPrec {
			if isRight && !rightAssoc[e.Op] {
				needParens = true
			} else if !isRight && rightAssoc[e.Op] {
				needParens = true
			}
		}
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Left, prec, false)
		p.write(" " + e.Op + " ")
		p.printExpr(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case tast.Assign:
		p.write(sourceNameOf(e.Var.Uname))
		p.write(" = ")
		p.printExpr(e.Value, 0, false)
	case tast.Call:
		// An immediately-invoked function literal needs its own
		// parentheses to disambiguate from its return expression
		// swallowing the call's argument list (internal/parser resolves
		// the same ambiguity the other way, via lookahead).
		if fd, ok := e.Callee.(tast.FDecl); ok && fd.IsAnon {
			p.write("(")
			p.printExpr(e.Callee, 0, false)
			p.write(")")
		} else {
			p.printExpr(e.Callee, 10, false)
		}
		p.write("(")
		for i, arg := range e.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(arg, 0, false)
		}
		p.write(")")
	case tast.List:
		p.write("[")
		for i, el := range e.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(el, 0, false)
		}
		p.write("]")
	case tast.If:
		p.write("if ")
		p.printExpr(e.Cond, 0, false)
		p.write(" then ")
		p.printExpr(e.Then, 0, false)
		p.write(" else ")
		p.printExpr(e.Else, 0, false)
	case tast.FDecl:
		p.printFDecl(e)
	default:
		p.write("<???>")
	}
}

func (p *Printer) printFDecl(f tast.FDecl) {
	// A named declaration (do f = (x) -> ...) carries its binding on
	// f.Var directly rather than through a wrapping tast.Assign node
	// (internal/analyzer's checkAssign special-cases a function-literal
	// right-hand side this way); an anonymous literal has no name to print.
	if !f.IsAnon {
		p.write(sourceNameOf(f.Var.Uname))
		p.write(" = ")
	}
	p.write("(")
	for i, param := range f.Params {
		if i > 0 {
			p.write(", ")
		}
		p.write(sourceNameOf(param.Uname))
	}
	p.write(") ->")
	p.indent++
	for _, stmt := range f.Body {
		p.writeln()
		p.writeIndent()
		p.printStmt(stmt)
	}
	p.writeln()
	p.writeIndent()
	p.write("return ")
	p.printExpr(f.Return, 0, false)
	p.indent--
}

// formatNum renders a float64 the way an Odds number literal is written:
// no exponent notation, since the lexer's readNumber never produces one.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// sourceNameOf recovers the original source name from a minted uname
// (internal/analyzer mints "<source>_<N>"), so the printed output reads
// like the program a person wrote rather than its alpha-renamed form.
func sourceNameOf(uname tast.UniqueName) string {
	s := string(uname)
	idx := strings.LastIndex(s, "_")
	if idx < 0 {
		return s
	}
	return s[:idx]
}
