// Package analyzer implements the Odds semantic analyzer: scope
// resolution, bidirectional type inference with unification-style
// constraining, and alpha-renaming, as specified in spec.md. Analysis is a
// single-pass recursive descent over the source AST; it aborts on the
// first semantic error (no multi-error recovery, per spec.md §5/§7).
package analyzer

import (
	"github.com/alexandramedway/odds/internal/ast"
	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/tast"
)

// checkStatement implements spec.md §4.6: the only statement form is
// Do(expr).
func checkStatement(env Env, s ast.Statement) (Env, tast.TStmt, error) {
	do, ok := s.(*ast.DoStatement)
	if !ok {
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrUnexpectedToken, s.GetToken(), "statement", s.TokenLiteral())
	}
	env, te, err := checkExpr(env, do.Value)
	if err != nil {
		return env, nil, err
	}
	return env, tast.Do{Value: te}, nil
}

// checkStatements threads env left to right across a statement list
// (spec.md §4.6, §5).
func checkStatements(env Env, stmts []ast.Statement) (Env, []tast.TStmt, error) {
	out := make([]tast.TStmt, len(stmts))
	for i, s := range stmts {
		var (
			ts  tast.TStmt
			err error
		)
		env, ts, err = checkStatement(env, s)
		if err != nil {
			return env, nil, err
		}
		out[i] = ts
	}
	return env, out, nil
}

// Options configures an analysis run beyond spec.md's default behavior.
// The zero value reproduces spec.md exactly: only EUL, PI and print are
// in scope.
type Options struct {
	// ExtraPrelude lists additional built-in names to seed into the root
	// environment (internal/config.CLIConfig.Prelude), each typed Any.
	ExtraPrelude []string
}

// Analyze runs spec.md §4.7's entry point: the statement list is checked
// against the root environment (§3); the final env is discarded. Analysis
// is total — either a typed statement list is returned, or the first
// *diagnostics.Error encountered aborts the run.
func Analyze(program *ast.Program, opts Options) ([]tast.TStmt, error) {
	env := newRootEnv(opts.ExtraPrelude)
	_, stmts, err := checkStatements(env, program.Statements)
	if err != nil {
		return nil, err
	}
	return stmts, nil
}
