package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/simpl/internal/ast"
	"github.com/funvibe/simpl/internal/lexer"
)

func parse(t *testing.T, source string) ast.Expression {
	t.Helper()
	l := lexer.New(source)
	stream := lexer.NewTokenStream(l)
	expr, err := ParseProgram(stream)
	require.Nil(t, err, "unexpected parse error: %v", err)
	return expr
}

func TestArithmeticPrecedence(t *testing.T) {
	// 1 + 2 * 3 should group as Add(1, Mul(2, 3)).
	expr := parse(t, "1 + 2 * 3")
	add, ok := expr.(*ast.Add)
	require.True(t, ok)
	_, ok = add.Left.(*ast.IntLit)
	require.True(t, ok)
	mul, ok := add.Right.(*ast.Mul)
	require.True(t, ok)
	assert.Equal(t, int64(2), mul.Left.(*ast.IntLit).Value)
	assert.Equal(t, int64(3), mul.Right.(*ast.IntLit).Value)
}

func TestApplicationIsLeftAssociativeAndBindsTighterThanArithmetic(t *testing.T) {
	// f x y + 1 should group as Add(App(App(f,x),y), 1).
	expr := parse(t, "f x y + 1")
	add, ok := expr.(*ast.Add)
	require.True(t, ok)
	outerApp, ok := add.Left.(*ast.App)
	require.True(t, ok)
	assert.Equal(t, "y", outerApp.Arg.(*ast.Name).Value)
	innerApp, ok := outerApp.Fn.(*ast.App)
	require.True(t, ok)
	assert.Equal(t, "f", innerApp.Fn.(*ast.Name).Value)
	assert.Equal(t, "x", innerApp.Arg.(*ast.Name).Value)
}

func TestConsIsRightAssociative(t *testing.T) {
	expr := parse(t, "1 :: 2 :: nil")
	outer, ok := expr.(*ast.Cons)
	require.True(t, ok)
	assert.Equal(t, int64(1), outer.Left.(*ast.IntLit).Value)
	inner, ok := outer.Right.(*ast.Cons)
	require.True(t, ok)
	assert.Equal(t, int64(2), inner.Left.(*ast.IntLit).Value)
	_, ok = inner.Right.(*ast.Nil)
	require.True(t, ok)
}

func TestComparisonIsNonAssociative(t *testing.T) {
	l := lexer.New("1 < 2 < 3")
	stream := lexer.NewTokenStream(l)
	_, err := ParseProgram(stream)
	require.NotNil(t, err)
}

func TestParenthesisedForms(t *testing.T) {
	unit := parse(t, "()")
	_, ok := unit.(*ast.Unit)
	require.True(t, ok)

	group := parse(t, "(1)")
	_, ok = group.(*ast.Group)
	require.True(t, ok)

	pair := parse(t, "(1, 2)")
	p, ok := pair.(*ast.Pair)
	require.True(t, ok)
	assert.Equal(t, int64(1), p.Left.(*ast.IntLit).Value)
	assert.Equal(t, int64(2), p.Right.(*ast.IntLit).Value)
}

func TestUnterminatedLetIsSyntaxError(t *testing.T) {
	l := lexer.New("let x = 1 in")
	stream := lexer.NewTokenStream(l)
	_, err := ParseProgram(stream)
	require.NotNil(t, err)
}

func TestLetFnRec(t *testing.T) {
	expr := parse(t, "let fact = rec f => fn n => if n = 0 then 1 else n * f (n - 1) in fact 5 end")
	let, ok := expr.(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "fact", let.Name)
	rec, ok := let.Value.(*ast.Rec)
	require.True(t, ok)
	assert.Equal(t, "f", rec.Name)
	_, ok = rec.Body.(*ast.Fn)
	require.True(t, ok)
}
