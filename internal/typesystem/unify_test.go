package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyIdenticalBaseTypes(t *testing.T) {
	for _, tc := range []Type{Int, Bool, Unit} {
		s, err := Unify(tc, tc)
		require.NoError(t, err)
		assert.Empty(t, s)
	}
}

func TestUnifyMismatchedBaseTypes(t *testing.T) {
	_, err := Unify(Int, Bool)
	require.Error(t, err)
	var uerr *UnificationError
	require.ErrorAs(t, err, &uerr)
	assert.False(t, uerr.Circular)
}

func TestUnifyVariableWithConcreteType(t *testing.T) {
	a := TVar{Name: "a"}
	s, err := Unify(a, Int)
	require.NoError(t, err)
	assert.Equal(t, Int, a.Apply(s))
}

func TestUnifyIsSymmetricUpToSubstitutionDirection(t *testing.T) {
	// Unify(a, int) and Unify(int, a) both resolve a to int, even though
	// the substitution itself binds the variable from whichever side it
	// appeared on.
	a := TVar{Name: "a"}
	s1, err := Unify(a, Int)
	require.NoError(t, err)
	s2, err := Unify(Int, a)
	require.NoError(t, err)
	assert.Equal(t, Int, a.Apply(s1))
	assert.Equal(t, Int, a.Apply(s2))
}

func TestOccursCheckRejectsCircularBinding(t *testing.T) {
	a := TVar{Name: "a"}
	listOfA := TList{Elem: a}
	_, err := Unify(a, listOfA)
	require.Error(t, err)
	var uerr *UnificationError
	require.ErrorAs(t, err, &uerr)
	assert.True(t, uerr.Circular)
}

func TestOccursCheckAllowsNonCircularNestedVariable(t *testing.T) {
	a := TVar{Name: "a"}
	b := TVar{Name: "b"}
	s, err := Unify(a, TList{Elem: b})
	require.NoError(t, err)
	assert.Equal(t, TList{Elem: b}, a.Apply(s))
}

func TestUnifyArrowComposesParamAndResultSubstitutions(t *testing.T) {
	a := TVar{Name: "a"}
	b := TVar{Name: "b"}
	t1 := TArrow{Param: a, Result: b}
	t2 := TArrow{Param: Int, Result: Bool}
	s, err := Unify(t1, t2)
	require.NoError(t, err)
	assert.Equal(t, Int, a.Apply(s))
	assert.Equal(t, Bool, b.Apply(s))
}

func TestUnifyPairComponentWise(t *testing.T) {
	a := TVar{Name: "a"}
	b := TVar{Name: "b"}
	s, err := Unify(TPair{First: a, Second: b}, TPair{First: Int, Second: Bool})
	require.NoError(t, err)
	assert.Equal(t, Int, a.Apply(s))
	assert.Equal(t, Bool, b.Apply(s))
}

func TestUnifyListAndRefUnwrapElement(t *testing.T) {
	a := TVar{Name: "a"}
	s, err := Unify(TList{Elem: a}, TList{Elem: Int})
	require.NoError(t, err)
	assert.Equal(t, Int, a.Apply(s))

	b := TVar{Name: "b"}
	s, err = Unify(TRef{Elem: b}, TRef{Elem: Bool})
	require.NoError(t, err)
	assert.Equal(t, Bool, b.Apply(s))
}

func TestUnifyShapeMismatchAcrossCompoundTypes(t *testing.T) {
	_, err := Unify(TArrow{Param: Int, Result: Int}, TPair{First: Int, Second: Int})
	require.Error(t, err)
}

func TestSubstComposeAppliesLeftAfterRight(t *testing.T) {
	a := TVar{Name: "a"}
	b := TVar{Name: "b"}
	// s2 binds a -> b, s1 binds b -> int; composed, a should resolve to int.
	s2 := Subst{"a": b}
	s1 := Subst{"b": Int}
	composed := s1.Compose(s2)
	assert.Equal(t, Int, a.Apply(composed))
}

func TestSubstComposeWithEmptyIsIdentity(t *testing.T) {
	a := TVar{Name: "a"}
	s := Subst{"a": Int}
	assert.Equal(t, Int, a.Apply(s.Compose(Subst{})))
	assert.Equal(t, Int, a.Apply(Subst{}.Compose(s)))
}

func TestIsEqualityTypeTable(t *testing.T) {
	equalityVar := TVar{Name: "a", Equality: true}
	plainVar := TVar{Name: "b", Equality: false}

	tests := []struct {
		name string
		typ  Type
		want bool
	}{
		{"int", Int, true},
		{"bool", Bool, true},
		{"unit", Unit, false},
		{"ref of int", TRef{Elem: Int}, true},
		{"arrow", TArrow{Param: Int, Result: Int}, false},
		{"pair of equality types", TPair{First: Int, Second: Bool}, true},
		{"pair containing arrow", TPair{First: Int, Second: TArrow{Param: Int, Result: Int}}, false},
		{"list of equality type", TList{Elem: Int}, true},
		{"list of arrow", TList{Elem: TArrow{Param: Int, Result: Int}}, false},
		{"equality-flagged var", equalityVar, true},
		{"plain var", plainVar, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEqualityType(tt.typ))
		})
	}
}

func TestFreeTypeVariablesDeduplicates(t *testing.T) {
	a := TVar{Name: "a"}
	arrow := TArrow{Param: a, Result: a}
	vars := arrow.FreeTypeVariables()
	require.Len(t, vars, 1)
	assert.Equal(t, "a", vars[0].Name)
}
