// Package typesystem implements the Odds type algebra: a small set of
// ground types, lists, first-class functions, the Any top type, and the
// Unconst inference placeholder, along with the meet/generalize operations
// that drive constraint propagation in internal/analyzer.
//
// This is deliberately not a Hindley-Milner type system: there is no
// let-generalization and no unification variables that persist across
// bindings (spec.md's Non-goals exclude both). Unconst exists only to mark
// "not yet constrained" during a single checking pass.
package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface implemented by every member of the type algebra.
type Type interface {
	String() string
	typeNode()
}

// Num is the type of every numeric literal, integer or floating.
type Num struct{}

func (Num) String() string { return "Num" }
func (Num) typeNode()      {}

// String is the type of string literals.
type String struct{}

func (String) String() string { return "String" }
func (String) typeNode()      {}

// Bool is the type of boolean literals.
type Bool struct{}

func (Bool) String() string { return "Bool" }
func (Bool) typeNode()      {}

// Void is the type of the void literal. It is never a valid right-hand
// side of an assignment (spec.md §3).
type Void struct{}

func (Void) String() string { return "Void" }
func (Void) typeNode()      {}

// Any is the top type: accepted in place of any type at a call site.
// Used by built-ins (print) and by generalized unconstrained parameters.
type Any struct{}

func (Any) String() string { return "Any" }
func (Any) typeNode()      {}

// Unconst is the inference placeholder meaning "not yet constrained". It
// must never appear in the type of a fully analyzed program's output node.
type Unconst struct{}

func (Unconst) String() string { return "Unconst" }
func (Unconst) typeNode()      {}

// List is a homogeneous list of elements of type Elem.
type List struct {
	Elem Type
}

func (l List) String() string { return fmt.Sprintf("[%s]", l.Elem.String()) }
func (List) typeNode()        {}

// Func is a first-class function type.
type Func struct {
	Params []Type
	Ret    Type
}

func (f Func) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), f.Ret.String())
}
func (Func) typeNode() {}

// Equal reports whether t1 and t2 are structurally identical. Unconst is
// only equal to Unconst — equality here is not unification; use meet for
// constraint-aware comparison.
func Equal(t1, t2 Type) bool {
	switch a := t1.(type) {
	case Num:
		_, ok := t2.(Num)
		return ok
	case String:
		_, ok := t2.(String)
		return ok
	case Bool:
		_, ok := t2.(Bool)
		return ok
	case Void:
		_, ok := t2.(Void)
		return ok
	case Any:
		_, ok := t2.(Any)
		return ok
	case Unconst:
		_, ok := t2.(Unconst)
		return ok
	case List:
		b, ok := t2.(List)
		return ok && Equal(a.Elem, b.Elem)
	case Func:
		b, ok := t2.(Func)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Equal(a.Ret, b.Ret)
	default:
		return false
	}
}

// IsUnconst reports whether t is exactly the Unconst placeholder (not
// whether it merely contains one, e.g. inside a Func or List).
func IsUnconst(t Type) bool {
	_, ok := t.(Unconst)
	return ok
}

// Generalize replaces every Unconst occurring inside t with Any, recursing
// into Func parameters and return type and into List element types.
// Ground types are returned unchanged. Used only when closing over a
// function declaration's formal parameters (spec.md §4.4 step 5).
func Generalize(t Type) Type {
	switch v := t.(type) {
	case Unconst:
		return Any{}
	case Func:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = Generalize(p)
		}
		return Func{Params: params, Ret: Generalize(v.Ret)}
	case List:
		return List{Elem: Generalize(v.Elem)}
	default:
		return t
	}
}
