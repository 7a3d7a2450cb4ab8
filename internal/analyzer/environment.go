package analyzer

import (
	"strings"

	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/tast"
	"github.com/alexandramedway/odds/internal/token"
	"github.com/alexandramedway/odds/internal/typesystem"
)

// Env is the two-scope environment of spec.md §4.1: scope holds ordinary
// bindings (outer variables, declared functions, built-ins), params holds
// the formal parameters of the function currently being checked.
// Introducing a parameter removes that source name from scope; a later
// assignment to the same name inside the body adds it back to scope, where
// it shadows the parameter.
//
// Env is threaded value-style (every checker returns a possibly-new Env),
// but the maps themselves are shared (Go maps are reference types) and a
// *Var's Ty field is mutated in place, so a constraint discovered deep in
// a tree is visible through every alias of the same *Var — see tast.Var's
// doc comment and spec.md §5.
type Env struct {
	scope  map[string]*tast.Var
	params map[string]*tast.Var
}

// newChildEnv returns an Env sharing scope with parent but starting with a
// fresh, empty params map — used when entering a function body.
func newChildEnv(parent Env) Env {
	return Env{scope: parent.scope, params: make(map[string]*tast.Var)}
}

// lookup searches scope then params. The two maps share a key only when a
// function body assigns to one of its parameter names; scope is searched
// first so that such a body-local binding shadows the parameter.
func lookup(env Env, id string, tok token.Token) (*tast.Var, error) {
	if v, ok := env.scope[id]; ok {
		return v, nil
	}
	if v, ok := env.params[id]; ok {
		return v, nil
	}
	return nil, diagnostics.NewAnalyzer(diagnostics.ErrUndefinedVariable, tok, id)
}

// addToScope mints a fresh uname, inserts Var{uname, ty} into scope under
// key id (overwriting any prior binding of id in scope — shadowing), and
// returns the minted uname. Does not touch params.
func addToScope(env Env, id string, ty typesystem.Type) (tast.UniqueName, *tast.Var) {
	uname := mintName(id)
	v := &tast.Var{Uname: uname, Ty: ty}
	env.scope[id] = v
	return uname, v
}

// addToParam mints a fresh uname, inserts Var{uname, ty=Unconst} into
// params under id, and removes id from scope (a parameter and an outer
// binding of the same source name never coexist).
func addToParam(env Env, id string) (tast.UniqueName, *tast.Var) {
	uname := mintName(id)
	v := &tast.Var{Uname: uname, Ty: typesystem.Unconst{}}
	env.params[id] = v
	delete(env.scope, id)
	return uname, v
}

// updateType locates the Var backing uname (by recovering the source-name
// prefix, per spec.md §3) in scope or params and mutates its Ty field.
func updateType(env Env, uname tast.UniqueName, ty typesystem.Type, tok token.Token) error {
	source := sourceNameOf(uname)
	if v, ok := env.params[source]; ok && v.Uname == uname {
		v.Ty = ty
		return nil
	}
	if v, ok := env.scope[source]; ok && v.Uname == uname {
		v.Ty = ty
		return nil
	}
	// Fall back to a full scan: the binding for `source` may have been
	// shadowed by a later one sharing the same source name, in which case
	// neither map's current entry for that key is the Var we're after.
	for _, v := range env.params {
		if v.Uname == uname {
			v.Ty = ty
			return nil
		}
	}
	for _, v := range env.scope {
		if v.Uname == uname {
			v.Ty = ty
			return nil
		}
	}
	return diagnostics.NewAnalyzer(diagnostics.ErrUndefinedVariable, tok, string(uname))
}

// sourceNameOf recovers the original source name from a minted uname: the
// prefix before the final underscore-delimited counter suffix.
func sourceNameOf(uname tast.UniqueName) string {
	s := string(uname)
	idx := strings.LastIndex(s, "_")
	if idx < 0 {
		return s
	}
	return s[:idx]
}
