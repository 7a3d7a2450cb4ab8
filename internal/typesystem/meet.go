package typesystem

import "fmt"

// ConstraintConflictError is raised by Meet when two concrete types cannot
// be reconciled, or by callers of Meet/constraining logic in
// internal/analyzer under the ConstrainConflict/ConstraintConflict names
// from spec.md §7 (they share this one underlying condition).
type ConstraintConflictError struct {
	Left  Type
	Right Type
}

func (e *ConstraintConflictError) Error() string {
	return fmt.Sprintf("cannot reconcile %s with %s", e.Left.String(), e.Right.String())
}

// Meet computes the most-constrained type compatible with both t1 and t2
// (spec.md §4.2). Unconst unifies with anything; two Func types meet
// element-wise on parameters (which must be the same length) and on the
// return type; two List types meet on their element types; any other pair
// of distinct, non-equal types is a conflict.
func Meet(t1, t2 Type) (Type, error) {
	if IsUnconst(t1) {
		return t2, nil
	}
	if IsUnconst(t2) {
		return t1, nil
	}
	if f1, ok := t1.(Func); ok {
		f2, ok := t2.(Func)
		if !ok || len(f1.Params) != len(f2.Params) {
			return nil, &ConstraintConflictError{Left: t1, Right: t2}
		}
		params := make([]Type, len(f1.Params))
		for i := range f1.Params {
			p, err := Meet(f1.Params[i], f2.Params[i])
			if err != nil {
				return nil, err
			}
			params[i] = p
		}
		ret, err := Meet(f1.Ret, f2.Ret)
		if err != nil {
			return nil, err
		}
		return Func{Params: params, Ret: ret}, nil
	}
	if l1, ok := t1.(List); ok {
		l2, ok := t2.(List)
		if !ok {
			return nil, &ConstraintConflictError{Left: t1, Right: t2}
		}
		elem, err := Meet(l1.Elem, l2.Elem)
		if err != nil {
			return nil, err
		}
		return List{Elem: elem}, nil
	}
	if Equal(t1, t2) {
		return t1, nil
	}
	return nil, &ConstraintConflictError{Left: t1, Right: t2}
}
