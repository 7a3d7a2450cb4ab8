package analyzer

import (
	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/tast"
	"github.com/alexandramedway/odds/internal/token"
	"github.com/alexandramedway/odds/internal/typesystem"
)

// constrainTExpr implements spec.md §4.3's constraining operator. Given a
// checked expression te with current type tOld and a requested type tReq,
// it either rejects the request (tOld is concrete and differs from tReq)
// or applies it, mutating whatever *Var backs te so the constraint becomes
// visible to every other reference to that Var.
//
// This is deliberately one-level: it does not recurse into te's
// sub-expressions. Deeper propagation would break the equality operator's
// heterogeneity policy (spec.md §9) — an implementer must not be tempted
// to make this recursive.
//
// The top-level "tOld must be Unconst or already equal to tReq" guard
// (spec.md §4.3) is checked per node kind below rather than once up front:
// Fdecl's pre-registered signature is a Func wrapping per-position Unconst
// placeholders, and finalizing it to a concrete signature is its normal
// lifecycle, not a conflict — a blanket structural-equality guard ahead of
// the switch would reject every ordinary (non-recursive) function
// declaration. Call has its own narrower guard on just the return
// position (spec.md §4.5 step 5 territory, reused here).
func constrainTExpr(env Env, te tast.TExpr, tReq typesystem.Type, tok token.Token) (tast.TExpr, error) {
	switch e := te.(type) {
	case tast.Id:
		tOld := e.Var.Ty
		if !typesystem.IsUnconst(tOld) && !typesystem.Equal(tOld, tReq) {
			return nil, diagnostics.NewAnalyzer(diagnostics.ErrConstrainConflict, tok, tOld.String(), tReq.String())
		}
		if err := updateType(env, e.Var.Uname, tReq, tok); err != nil {
			return nil, err
		}
		return tast.Id{Var: e.Var}, nil

	case tast.FDecl:
		if err := updateType(env, e.Var.Uname, tReq, tok); err != nil {
			return nil, err
		}
		return e, nil

	case tast.Call:
		if calleeId, ok := e.Callee.(tast.Id); ok {
			if fn, ok := calleeId.Var.Ty.(typesystem.Func); ok {
				reqFn, ok := tReq.(typesystem.Func)
				oldRet := fn.Ret
				var newRet typesystem.Type
				if ok {
					newRet = reqFn.Ret
				} else {
					newRet = tReq
				}
				if !typesystem.IsUnconst(oldRet) && !typesystem.Equal(oldRet, newRet) {
					return nil, diagnostics.NewAnalyzer(diagnostics.ErrConstrainConflict, tok, oldRet.String(), newRet.String())
				}
				newFn := typesystem.Func{Params: fn.Params, Ret: newRet}
				if err := updateType(env, calleeId.Var.Uname, newFn, tok); err != nil {
					return nil, err
				}
				return tast.Call{Callee: tast.Id{Var: calleeId.Var}, Args: e.Args, Ty: newRet}, nil
			}
		}
		return tast.Call{Callee: e.Callee, Args: e.Args, Ty: tReq}, nil

	default:
		tOld := te.Type()
		if !typesystem.IsUnconst(tOld) && !typesystem.Equal(tOld, tReq) {
			return nil, diagnostics.NewAnalyzer(diagnostics.ErrConstrainConflict, tok, tOld.String(), tReq.String())
		}
		return withType(te, tReq), nil
	}
}

// withType rebuilds te with Ty replaced by tReq for the node kinds that
// carry an explicit Ty field rather than deriving Type() from a *Var or a
// sub-expression. Literal nodes never need this (their type is fixed by
// construction) and are returned unchanged.
func withType(te tast.TExpr, tReq typesystem.Type) tast.TExpr {
	switch e := te.(type) {
	case tast.Unop:
		e.Ty = tReq
		return e
	case tast.Binop:
		e.Ty = tReq
		return e
	case tast.List:
		e.Ty = tReq
		return e
	case tast.If:
		e.Ty = tReq
		return e
	default:
		return te
	}
}
