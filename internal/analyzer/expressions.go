package analyzer

import (
	"github.com/alexandramedway/odds/internal/ast"
	"github.com/alexandramedway/odds/internal/diagnostics"
	"github.com/alexandramedway/odds/internal/tast"
	"github.com/alexandramedway/odds/internal/typesystem"
)

// checkExpr dispatches over every source expression kind and returns the
// possibly-updated Env together with the checked, typed expression
// (spec.md §4.3). Sub-terms are always checked left to right (spec.md §5).
func checkExpr(env Env, e ast.Expression) (Env, tast.TExpr, error) {
	switch n := e.(type) {
	case *ast.NumberLiteral:
		return env, tast.NumLit{Value: n.Value}, nil
	case *ast.StringLiteral:
		return env, tast.StringLit{Value: n.Value}, nil
	case *ast.BoolLiteral:
		return env, tast.BoolLit{Value: n.Value}, nil
	case *ast.VoidLiteral:
		return env, tast.VoidLit{}, nil
	case *ast.Identifier:
		return checkIdentifier(env, n)
	case *ast.UnaryExpression:
		return checkUnary(env, n)
	case *ast.BinaryExpression:
		return checkBinary(env, n)
	case *ast.AssignExpression:
		return checkAssign(env, n)
	case *ast.CallExpression:
		return checkCall(env, n)
	case *ast.ListLiteral:
		return checkList(env, n)
	case *ast.FunctionLiteral:
		return checkFunctionLiteral(env, n, "anon", true)
	case *ast.IfExpression:
		return checkIf(env, n)
	default:
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrUnexpectedToken, e.GetToken(), "expression", e.TokenLiteral())
	}
}

func checkIdentifier(env Env, n *ast.Identifier) (Env, tast.TExpr, error) {
	v, err := lookup(env, n.Name, n.Token)
	if err != nil {
		return env, nil, err
	}
	return env, tast.Id{Var: v}, nil
}

// checkUnary implements spec.md §4.3's unary operator rules: Not requires
// Bool (or Unconst, constrained to Bool); Neg requires Num (or Unconst,
// constrained to Num).
func checkUnary(env Env, n *ast.UnaryExpression) (Env, tast.TExpr, error) {
	env, operand, err := checkExpr(env, n.Operand)
	if err != nil {
		return env, nil, err
	}

	var want typesystem.Type
	switch n.Operator {
	case "!":
		want = typesystem.Bool{}
	case "-":
		want = typesystem.Num{}
	default:
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrUnopTypeError, n.Token, n.Operator, operand.Type().String())
	}

	ty := operand.Type()
	if typesystem.IsUnconst(ty) {
		operand, err = constrainTExpr(env, operand, want, n.Token)
		if err != nil {
			return env, nil, err
		}
	} else if !typesystem.Equal(ty, want) {
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrUnopTypeError, n.Token, n.Operator, ty.String())
	}

	return env, tast.Unop{Op: n.Operator, Operand: operand, Ty: want}, nil
}

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true, "**": true}
var orderOps = map[string]bool{"<": true, "<=": true, ">": true, ">=": true}
var equalityOps = map[string]bool{"==": true, "!=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}

// checkBinary implements spec.md §4.3's binary operator rules.
func checkBinary(env Env, n *ast.BinaryExpression) (Env, tast.TExpr, error) {
	env, left, err := checkExpr(env, n.Left)
	if err != nil {
		return env, nil, err
	}
	env, right, err := checkExpr(env, n.Right)
	if err != nil {
		return env, nil, err
	}

	op := n.Operator

	if equalityOps[op] {
		// Equality is intentionally heterogeneous: no constraining.
		return env, tast.Binop{Left: left, Op: op, Right: right, Ty: typesystem.Bool{}}, nil
	}

	var operandWant typesystem.Type
	var resultTy typesystem.Type
	switch {
	case arithmeticOps[op]:
		operandWant, resultTy = typesystem.Num{}, typesystem.Num{}
	case orderOps[op]:
		operandWant, resultTy = typesystem.Num{}, typesystem.Bool{}
	case logicalOps[op]:
		operandWant, resultTy = typesystem.Bool{}, typesystem.Bool{}
	default:
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrBinopTypeError, n.Token, op, left.Type().String(), right.Type().String())
	}

	left, err = checkBinaryOperand(env, left, operandWant, op, right.Type(), n)
	if err != nil {
		return env, nil, err
	}
	right, err = checkBinaryOperand(env, right, operandWant, op, left.Type(), n)
	if err != nil {
		return env, nil, err
	}

	return env, tast.Binop{Left: left, Op: op, Right: right, Ty: resultTy}, nil
}

func checkBinaryOperand(env Env, operand tast.TExpr, want typesystem.Type, op string, otherTy typesystem.Type, n *ast.BinaryExpression) (tast.TExpr, error) {
	ty := operand.Type()
	if typesystem.IsUnconst(ty) {
		return constrainTExpr(env, operand, want, n.Token)
	}
	if !typesystem.Equal(ty, want) {
		return nil, diagnostics.NewAnalyzer(diagnostics.ErrBinopTypeError, n.Token, op, ty.String(), otherTy.String())
	}
	return operand, nil
}

// checkAssign implements spec.md §4.3's assignment rule, delegating to
// internal/analyzer's declaration checker (checkFunctionLiteral) when the
// right-hand side is itself a function literal, so the function can know
// its own binding name for recursion (spec.md §4.4).
func checkAssign(env Env, n *ast.AssignExpression) (Env, tast.TExpr, error) {
	if fn, ok := n.Value.(*ast.FunctionLiteral); ok {
		return checkFunctionLiteral(env, fn, n.Name.Name, false)
	}

	env, rhs, err := checkExpr(env, n.Value)
	if err != nil {
		return env, nil, err
	}
	if _, isVoid := rhs.Type().(typesystem.Void); isVoid {
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrAssignToVoid, n.Token, n.Name.Name)
	}

	_, v := addToScope(env, n.Name.Name, rhs.Type())
	return env, tast.Assign{Var: v, Value: rhs}, nil
}

// checkList implements spec.md §4.3's list literal rule: the first
// non-Unconst element fixes the element type T; later elements must be T
// or Unconst (and are constrained to T); an all-Unconst list types as
// List(Unconst), tolerated locally.
func checkList(env Env, n *ast.ListLiteral) (Env, tast.TExpr, error) {
	elements := make([]tast.TExpr, len(n.Elements))
	var elemTy typesystem.Type = typesystem.Unconst{}

	for i, el := range n.Elements {
		var te tast.TExpr
		var err error
		env, te, err = checkExpr(env, el)
		if err != nil {
			return env, nil, err
		}
		elements[i] = te

		ty := te.Type()
		if typesystem.IsUnconst(elemTy) {
			if !typesystem.IsUnconst(ty) {
				elemTy = ty
			}
			continue
		}
		if typesystem.IsUnconst(ty) {
			te, err = constrainTExpr(env, te, elemTy, n.Token)
			if err != nil {
				return env, nil, err
			}
			elements[i] = te
			continue
		}
		if !typesystem.Equal(ty, elemTy) {
			return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrListElementType, n.Token, ty.String(), elemTy.String())
		}
	}

	return env, tast.List{Elements: elements, Ty: typesystem.List{Elem: elemTy}}, nil
}

// checkIf implements spec.md §4.3's if-expression rule.
func checkIf(env Env, n *ast.IfExpression) (Env, tast.TExpr, error) {
	env, cond, err := checkExpr(env, n.Condition)
	if err != nil {
		return env, nil, err
	}
	condTy := cond.Type()
	if typesystem.IsUnconst(condTy) {
		cond, err = constrainTExpr(env, cond, typesystem.Bool{}, n.Token)
		if err != nil {
			return env, nil, err
		}
	} else if _, ok := condTy.(typesystem.Bool); !ok {
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrExpectedBool, n.Token, condTy.String())
	}

	env, thenE, err := checkExpr(env, n.Then)
	if err != nil {
		return env, nil, err
	}
	env, elseE, err := checkExpr(env, n.Else)
	if err != nil {
		return env, nil, err
	}

	thenTy, elseTy := thenE.Type(), elseE.Type()
	meetTy, err := typesystem.Meet(thenTy, elseTy)
	if err != nil {
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrIfBranchMismatch, n.Token, thenTy.String(), elseTy.String())
	}
	if typesystem.IsUnconst(meetTy) {
		// Both branches were Unconst: meet(Unconst, Unconst) = Unconst
		// succeeds structurally, but an if-expression may never resolve to
		// Unconst (spec.md §3 invariants), so this is rejected here.
		return env, nil, diagnostics.NewAnalyzer(diagnostics.ErrUnconstrainedIf, n.Token)
	}

	thenE, err = constrainTExpr(env, thenE, meetTy, n.Token)
	if err != nil {
		return env, nil, err
	}
	elseE, err = constrainTExpr(env, elseE, meetTy, n.Token)
	if err != nil {
		return env, nil, err
	}

	return env, tast.If{Cond: cond, Then: thenE, Else: elseE, Ty: meetTy}, nil
}
