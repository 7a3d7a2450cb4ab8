package analyzer

import (
	"github.com/alexandramedway/odds/internal/ast"
	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/tast"
	"github.com/alexandramedway/odds/internal/typesystem"
)

// checkFunctionLiteral implements spec.md §4.4: pre-registration for
// direct recursion, parameter inference from the body, and return-type
// finalization. bindName is the assignment target, or "anon" for an
// anonymous function expression (isAnon = true).
func checkFunctionLiteral(env Env, n *ast.FunctionLiteral, bindName string, isAnon bool) (Env, tast.TExpr, error) {
	// 1. Pre-register: a fully-Unconst signature, inserted before the body
	// is checked, so recursive calls resolve.
	paramPlaceholders := make([]typesystem.Type, len(n.Params))
	for i := range paramPlaceholders {
		paramPlaceholders[i] = typesystem.Unconst{}
	}
	pre := typesystem.Func{Params: paramPlaceholders, Ret: typesystem.Unconst{}}

	if existing, ok := env.scope[bindName]; ok {
		if fn, ok := existing.Ty.(typesystem.Func); ok && typesystem.IsUnconst(fn.Ret) {
			return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrFdeclReassign, n.Token, bindName)
		}
	}
	_, fnVar := addToScope(env, bindName, pre)

	// 2. Local environment: move each formal parameter into params.
	bodyEnv := newChildEnv(env)
	paramVars := make([]*tast.Var, len(n.Params))
	for i, p := range n.Params {
		_, pv := addToParam(bodyEnv, p.Name)
		paramVars[i] = pv
	}

	// 3. Check body statements.
	bodyEnv, bodyStmts, err := checkStatements(bodyEnv, n.Body)
	if err != nil {
		return env, nil, err
	}

	// 4. Check return expression (first pass, to propagate constraints
	// into params).
	bodyEnv, retExpr, err := checkExpr(bodyEnv, n.Return)
	if err != nil {
		return env, nil, err
	}

	// 5. Reconcile parameter types: p' = generalize(meet(paramVar.ty,
	// functionTypeEntry.param_i)). functionTypeEntry is fnVar's *current*
	// signature, not the frozen pre-registration snapshot: a recursive call
	// inside the body (step 3/4) may already have refined fnVar.Ty.Params
	// via checkCall, and that refinement is exactly what a conflicting
	// recursive use needs to be checked against.
	liveParams := fnVar.Ty.(typesystem.Func).Params
	refinedParams := make([]typesystem.Type, len(n.Params))
	for i, pv := range paramVars {
		merged, err := typesystem.Meet(pv.Ty, liveParams[i])
		if err != nil {
			return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrRecursiveTypeMismatch, n.Token, sourceNameOf(pv.Uname), pv.Ty.String(), liveParams[i].String())
		}
		generalized := typesystem.Generalize(merged)
		if !typesystem.Equal(generalized, pv.Ty) {
			pv.Ty = generalized
		}
		refinedParams[i] = generalized
	}

	// 6. Re-check the return expression with the new environment, to
	// reflect parameter constraints acquired in step 5.
	bodyEnv, retExpr, err = checkExpr(bodyEnv, n.Return)
	if err != nil {
		return env, nil, err
	}

	// 7. Validate return type.
	retTy := retExpr.Type()
	if _, isAny := retTy.(typesystem.Any); isAny {
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrUnconstrainedReturn, n.Token, bindName)
	}
	if lst, isList := retTy.(typesystem.List); isList && typesystem.IsUnconst(lst.Elem) {
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrUnconstrainedReturn, n.Token, bindName)
	}

	finalTy := typesystem.Func{Params: refinedParams, Ret: retTy}

	// 8. Publish: constrain the pre-registered binding to the final type.
	fdecl := tast.FDecl{Var: fnVar, Params: paramVars, Body: bodyStmts, Return: retExpr, IsAnon: isAnon}
	published, err := constrainTExpr(env, fdecl, finalTy, n.Token)
	if err != nil {
		return env, nil, err
	}

	return env, published, nil
}
