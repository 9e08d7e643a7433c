package typesystem

import "fmt"

// UnificationError reports a type mismatch discovered by Unify; it always
// maps to the observable `type error` category (see diagnostics.Phase).
// Circular distinguishes an occurs-check failure from a plain shape
// mismatch for callers that want to pick a more specific diagnostics code
// (internal/typecheck does); both still print the same `type error`.
type UnificationError struct {
	msg      string
	Circular bool
}

func (e *UnificationError) Error() string { return e.msg }

func errMismatch(t1, t2 Type) error {
	return &UnificationError{msg: fmt.Sprintf("cannot unify %s with %s", t1.String(), t2.String())}
}

func errCircular(tv TVar, t Type) error {
	return &UnificationError{msg: fmt.Sprintf("circularity: %s occurs in %s", tv.String(), t.String()), Circular: true}
}

// Unify produces the most general unifier of t1 and t2, per §4.3's table:
// identical type variables unify to Identity; a variable unifies with any
// type not containing it; identical base types unify to Identity;
// compound types (arrow, pair, list, ref) unify component-wise, composing
// the substitutions left to right; anything else is a mismatch.
func Unify(t1, t2 Type) (Subst, error) {
	if tv1, ok := t1.(TVar); ok {
		if tv2, ok := t2.(TVar); ok && tv1.Name == tv2.Name {
			return Subst{}, nil
		}
		return Bind(tv1, t2)
	}
	if tv2, ok := t2.(TVar); ok {
		return Bind(tv2, t1)
	}

	switch t1 := t1.(type) {
	case TCon:
		if t2, ok := t2.(TCon); ok && t1.Name == t2.Name {
			return Subst{}, nil
		}
		return nil, errMismatch(t1, t2)

	case TArrow:
		u, ok := t2.(TArrow)
		if !ok {
			return nil, errMismatch(t1, t2)
		}
		s1, err := Unify(t1.Param, u.Param)
		if err != nil {
			return nil, err
		}
		s2, err := Unify(t1.Result.Apply(s1), u.Result.Apply(s1))
		if err != nil {
			return nil, err
		}
		return s2.Compose(s1), nil

	case TPair:
		u, ok := t2.(TPair)
		if !ok {
			return nil, errMismatch(t1, t2)
		}
		s1, err := Unify(t1.First, u.First)
		if err != nil {
			return nil, err
		}
		s2, err := Unify(t1.Second.Apply(s1), u.Second.Apply(s1))
		if err != nil {
			return nil, err
		}
		return s2.Compose(s1), nil

	case TList:
		u, ok := t2.(TList)
		if !ok {
			return nil, errMismatch(t1, t2)
		}
		return Unify(t1.Elem, u.Elem)

	case TRef:
		u, ok := t2.(TRef)
		if !ok {
			return nil, errMismatch(t1, t2)
		}
		return Unify(t1.Elem, u.Elem)
	}

	return nil, errMismatch(t1, t2)
}

// Bind maps a type variable to a type, after an occurs-check rejects any
// binding that would build an infinite type (§4.3, §8).
func Bind(tv TVar, t Type) (Subst, error) {
	if tVal, ok := t.(TVar); ok && tVal.Name == tv.Name {
		return Subst{}, nil
	}
	if OccursCheck(tv, t) {
		return nil, errCircular(tv, t)
	}
	return Subst{tv.Name: t}, nil
}

// OccursCheck reports whether tv appears free in t.
func OccursCheck(tv TVar, t Type) bool {
	for _, v := range t.FreeTypeVariables() {
		if v.Name == tv.Name {
			return true
		}
	}
	return false
}
