package analyzer

import (
	"github.com/alexandramedway/odds/internal/tast"
	"github.com/alexandramedway/odds/internal/typesystem"
)

// builtinSpec names a root-environment binding and its type, mirroring the
// shape of the teacher's own RegisterBuiltins (internal/analyzer/builtins.go)
// but scaled to spec.md §3's much smaller prelude.
type builtinSpec struct {
	name string
	ty   typesystem.Type
}

// rootBuiltins is the default prelude: the two numeric constants and the
// single built-in function spec.md §3 names. config.CLIConfig.Prelude
// (see internal/config) can extend this list for embedding callers without
// touching analyzer code; it can never remove from it.
func rootBuiltins() []builtinSpec {
	return []builtinSpec{
		{"EUL", typesystem.Num{}},
		{"PI", typesystem.Num{}},
		{"print", typesystem.Func{Params: []typesystem.Type{typesystem.Any{}}, Ret: typesystem.Void{}}},
	}
}

// newRootEnv builds the root Env pre-populated with the built-ins of
// spec.md §3, plus any extra names supplied by the embedding caller
// (internal/config's Prelude option). Extra names are seeded with type Any
// so that a configured prelude name behaves like an untyped host binding
// until a real type is threaded in by a future revision of the embedding
// API; none of spec.md's scenarios rely on extra prelude names, so this
// does not affect default behavior.
func newRootEnv(extra []string) Env {
	env := Env{scope: make(map[string]*tast.Var), params: make(map[string]*tast.Var)}
	for _, b := range rootBuiltins() {
		addToScope(env, b.name, b.ty)
	}
	for _, name := range extra {
		if _, exists := env.scope[name]; exists {
			continue
		}
		addToScope(env, name, typesystem.Any{})
	}
	return env
}
