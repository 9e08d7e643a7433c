package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/simpl/internal/lexer"
	"github.com/funvibe/simpl/internal/parser"
)

func evalSource(t *testing.T, source string) (Value, error) {
	t.Helper()
	l := lexer.New(source)
	stream := lexer.NewTokenStream(l)
	expr, perr := parser.ParseProgram(stream)
	require.Nil(t, perr, "unexpected parse error: %v", perr)

	return New().Eval(expr, builtinEnv(t), NewStore())
}

// builtinEnv binds the seven library builtins the same way
// library.InitialRuntimeEnv does; this package cannot import
// internal/library, which imports it.
func builtinEnv(t *testing.T) *Environment {
	t.Helper()
	env := Empty.
		Extend("fst", Builtin{Kind: BuiltinFst}).
		Extend("snd", Builtin{Kind: BuiltinSnd}).
		Extend("hd", Builtin{Kind: BuiltinHd}).
		Extend("tl", Builtin{Kind: BuiltinTl})
	for _, b := range []struct{ name, body string }{{"succ", "x + 1"}, {"pred", "x - 1"}, {"iszero", "x = 0"}} {
		body, perr := parser.ParseProgram(lexer.NewTokenStream(lexer.New(b.body)))
		require.Nil(t, perr, "unexpected parse error: %v", perr)
		env = env.Extend(b.name, Closure{Param: "x", Body: body})
	}
	return env
}

func TestValueStringTable(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"int", Int{N: 42}, "42"},
		{"negative int", Int{N: -1}, "-1"},
		{"bool true", Bool{B: true}, "true"},
		{"bool false", Bool{B: false}, "false"},
		{"unit", Unit{}, "unit"},
		{"nil", Nil{}, "nil"},
		{"pair", Pair{First: Int{N: 1}, Second: Bool{B: true}}, "pair@1@true"},
		{"ref", Ref{Addr: 3}, "ref@3"},
		{"closure", Closure{}, "fun"},
		{"rec", Rec{}, "fun"},
		{"builtin", Builtin{Kind: BuiltinHd}, "fun"},
		{"single cons", Cons{Head: Int{N: 1}, Tail: Nil{}}, "list@1"},
		{"two-element cons", Cons{Head: Int{N: 1}, Tail: Cons{Head: Int{N: 2}, Tail: Nil{}}}, "list@2"},
		{"cons with non-cons tail counts as one trailing element", Cons{Head: Int{N: 1}, Tail: Int{N: 99}}, "list@2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.val.String())
		})
	}
}

func TestEqualStructural(t *testing.T) {
	assert.True(t, Equal(Int{N: 1}, Int{N: 1}))
	assert.False(t, Equal(Int{N: 1}, Int{N: 2}))
	assert.True(t, Equal(Pair{Int{N: 1}, Bool{B: true}}, Pair{Int{N: 1}, Bool{B: true}}))
	assert.False(t, Equal(Pair{Int{N: 1}, Bool{B: true}}, Pair{Int{N: 1}, Bool{B: false}}))
	assert.True(t, Equal(Ref{Addr: 5}, Ref{Addr: 5}))
	assert.False(t, Equal(Ref{Addr: 5}, Ref{Addr: 6}))
}

func TestEnvironmentShadowingAndImmutability(t *testing.T) {
	base := Empty.Extend("x", Int{N: 1})
	shadowed := base.Extend("x", Int{N: 2})

	v, ok := shadowed.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Int{N: 2}, v)

	// Extending into a new frame must never mutate the frame it was
	// built from.
	v, ok = base.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Int{N: 1}, v)
}

func TestEnvironmentLookupMiss(t *testing.T) {
	_, ok := Empty.Lookup("missing")
	assert.False(t, ok)
}

func TestStoreAllocReservesDistinctAddresses(t *testing.T) {
	s := NewStore()
	a := s.Alloc()
	b := s.Alloc()
	assert.NotEqual(t, a, b)

	s.Put(a, Int{N: 10})
	v, ok := s.Get(a)
	require.True(t, ok)
	assert.Equal(t, Int{N: 10}, v)

	_, ok = s.Get(b)
	assert.False(t, ok)
}

func TestEvalRecRecursionViaUnfold(t *testing.T) {
	val, err := evalSource(t, "let fact = rec f => fn n => if n = 0 then 1 else n * f (n - 1) in fact 5 end")
	require.NoError(t, err)
	assert.Equal(t, Int{N: 120}, val)
}

func TestEvalHdOfNilIsRuntimeError(t *testing.T) {
	_, err := evalSource(t, "hd nil")
	require.Error(t, err)
}

func TestEvalTlOfNilIsRuntimeError(t *testing.T) {
	_, err := evalSource(t, "tl nil")
	require.Error(t, err)
}

func TestEvalDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := evalSource(t, "1 / 0")
	require.Error(t, err)
}

func TestEvalModByZeroIsRuntimeError(t *testing.T) {
	_, err := evalSource(t, "1 % 0")
	require.Error(t, err)
}

func TestEvalAndAlsoShortCircuits(t *testing.T) {
	val, err := evalSource(t, "false andalso (1 / 0 = 0)")
	require.NoError(t, err)
	assert.Equal(t, Bool{B: false}, val)
}

func TestEvalOrElseShortCircuits(t *testing.T) {
	val, err := evalSource(t, "true orelse (1 / 0 = 0)")
	require.NoError(t, err)
	assert.Equal(t, Bool{B: true}, val)
}

func TestEvalSimpleRefSequencing(t *testing.T) {
	val, err := evalSource(t, "let x = ref 1 in x := 2 ; !x end")
	require.NoError(t, err)
	assert.Equal(t, Int{N: 2}, val)
}

func TestEvalBuiltinSuccPredIsZero(t *testing.T) {
	val, err := evalSource(t, "succ 1")
	require.NoError(t, err)
	assert.Equal(t, Int{N: 2}, val)

	val, err = evalSource(t, "pred 1")
	require.NoError(t, err)
	assert.Equal(t, Int{N: 0}, val)

	val, err = evalSource(t, "iszero 0")
	require.NoError(t, err)
	assert.Equal(t, Bool{B: true}, val)
}
