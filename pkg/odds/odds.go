// Package odds is the embeddable library entry point for the Odds
// semantic analyzer: a thin public wrapper around the internal
// lex/parse/analyze/print pipeline, grounded on the teacher's own
// pkg-as-thin-wrapper shape (pkg/cli/entry.go), scaled down to the much
// smaller surface spec.md §6 describes ("The analyzer is a library
// function... No files, sockets, environment variables, or CLI flags are
// in scope").
package odds

import (
	"github.com/alexandramedway/odds/internal/analyzer"
	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/parser"
	"github.com/alexandramedway/odds/internal/prettyprinter"
	"github.com/alexandramedway/odds/internal/tast"
)

// Options configures an Analyze call. The zero value reproduces spec.md
// exactly.
type Options struct {
	// ExtraPrelude lists additional built-in names, each typed Any, to
	// seed into the root environment beyond EUL/PI/print.
	ExtraPrelude []string
}

// Result is the successful outcome of analyzing a source string.
type Result struct {
	Stmts []tast.TStmt
}

// Analyze lexes, parses, and semantically analyzes source, returning
// either a Result or the first diagnostics error encountered (parser or
// analyzer — whichever phase fails first; the lexer raises no diagnostics
// of its own, and an illegal character reaches the parser as an ILLEGAL
// token and is reported there).
func Analyze(source string, opts Options) (Result, error) {
	prog, err := parser.Parse(source)
	if err != nil {
		return Result{}, err
	}
	stmts, err := analyzer.Analyze(prog, analyzer.Options{ExtraPrelude: opts.ExtraPrelude})
	if err != nil {
		return Result{}, err
	}
	return Result{Stmts: stmts}, nil
}

// Format renders a Result's typed statements back to Odds source text.
func Format(r Result) string {
	return prettyprinter.Format(r.Stmts)
}

// AsDiagnostic unwraps err into a *diagnostics.Error, if it is one. Every
// error Analyze returns is one, so callers that only care about the
// structured fields (Code, Phase, position) can skip the type assertion.
func AsDiagnostic(err error) (*diagnostics.Error, bool) {
	diag, ok := err.(*diagnostics.Error)
	return diag, ok
}
