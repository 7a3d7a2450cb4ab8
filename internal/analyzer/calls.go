package analyzer

import (
	"github.com/alexandramedway/odds/internal/ast"
	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/tast"
	"github.com/alexandramedway/odds/internal/typesystem"
)

// checkCall implements spec.md §4.5. It re-checks an already-checked
// sub-expression (the callee, at the end) — the source comments call this a workaround for materializing mid-call
// constraint updates into the emitted node; an implementation is free to
// thread updates more cleanly provided observable output is identical
// (spec.md §9).
func checkCall(env Env, n *ast.CallExpression) (Env, tast.TExpr, error) {
	env, callee, err := checkExpr(env, n.Function)
	if err != nil {
		return env, nil, err
	}

	var fn typesystem.Func
	switch ty := callee.Type().(type) {
	case typesystem.Func:
		fn = ty
	case typesystem.Unconst:
		params := make([]typesystem.Type, len(n.Arguments))
		for i := range params {
			params[i] = typesystem.Unconst{}
		}
		fn = typesystem.Func{Params: params, Ret: typesystem.Unconst{}}
		callee, err = constrainTExpr(env, callee, fn, n.Token)
		if err != nil {
			return env, nil, err
		}
	default:
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrCallNonFunction, n.Token, ty.String())
	}

	if len(n.Arguments) != len(fn.Params) {
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrCallArityMismatch, n.Token, len(fn.Params), len(n.Arguments))
	}

	args := make([]tast.TExpr, len(n.Arguments))
	refinedParams := make([]typesystem.Type, len(fn.Params))
	changed := false

	for i, argExpr := range n.Arguments {
		var arg tast.TExpr
		env, arg, err = checkExpr(env, argExpr)
		if err != nil {
			return env, nil, err
		}

		ti := arg.Type()
		pi := fn.Params[i]

		if typesystem.Equal(ti, pi) {
			refinedParams[i] = pi
			args[i] = arg
			continue
		}
		if _, isAny := pi.(typesystem.Any); isAny {
			refinedParams[i] = pi
			args[i] = arg
			continue
		}

		pPrime, err := typesystem.Meet(ti, pi)
		if err != nil {
			return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrCallArgTypeMismatch, n.Token, i+1, ti.String(), pi.String())
		}
		if !typesystem.Equal(ti, pPrime) {
			arg, err = constrainTExpr(env, arg, pPrime, n.Token)
			if err != nil {
				return env, nil, err
			}
		}
		refinedParams[i] = pPrime
		if !typesystem.Equal(pPrime, pi) {
			changed = true
		}
		args[i] = arg
	}

	if changed {
		if calleeId, ok := callee.(tast.Id); ok {
			newFn := typesystem.Func{Params: refinedParams, Ret: fn.Ret}
			if err := updateType(env, calleeId.Var.Uname, newFn, n.Token); err != nil {
				return env, nil, err
			}
		}
	}

	// Re-check the callee one final time so the emitted node reflects any
	// refinement applied above (spec.md §4.5 step 6).
	env, callee, err = checkExpr(env, n.Function)
	if err != nil {
		return env, nil, err
	}

	retTy := fn.Ret
	if calleeFn, ok := callee.Type().(typesystem.Func); ok {
		retTy = calleeFn.Ret
	}

	return env, tast.Call{Callee: callee, Args: args, Ty: retTy}, nil
}
