package simpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/simpl/internal/evaluator"
	"github.com/funvibe/simpl/internal/lexer"
	"github.com/funvibe/simpl/internal/library"
	"github.com/funvibe/simpl/internal/parser"
	"github.com/funvibe/simpl/internal/pipeline"
	"github.com/funvibe/simpl/internal/typecheck"
)

// run drives a source string through the full lexer/parser/typecheck/
// evaluator pipeline, the same wiring cmd/simpl uses.
func run(source string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		typecheck.NewProcessor(library.InitialTypeEnv),
		evaluator.NewProcessor(library.InitialRuntimeEnv),
	)
	return p.Run(ctx)
}

// TestConcreteScenarios exercises every successful input/output pair from
// §8's end-to-end scenario table; TestConcreteScenarioFailures covers the
// three failing ones.
func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"arithmetic precedence", "1 + 2 * 3", "7"},
		{"cond true branch", "if 1 = 1 then true else false", "true"},
		{"ref assign deref", "let x = ref 0 in x := 5 ; !x end", "5"},
		{"closure application", "let f = fn x => x + 1 in f 10 end", "11"},
		{"recursive factorial", "let fact = rec f => fn n => if n = 0 then 1 else n * f (n - 1) in fact 5 end", "120"},
		{"fst of pair", "fst (10, 20)", "10"},
		{"cons list length", "1 :: 2 :: 3 :: nil", "list@3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := run(tt.source)
			require.False(t, ctx.Failed(), "unexpected errors: %v", ctx.Errors)
			require.NotNil(t, ctx.Value)
			assert.Equal(t, tt.want, ctx.Value.(evaluator.Value).String())
		})
	}
}

func TestConcreteScenarioFailures(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		category string
	}{
		{"hd of nil", "hd nil", "runtime error"},
		{"int plus bool", "1 + true", "type error"},
		{"unterminated let", "let x = 1 in", "syntax error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := run(tt.source)
			require.True(t, ctx.Failed())
			assert.Equal(t, tt.category, string(ctx.Errors[0].Phase.Category()))
		})
	}
}

func TestShortCircuit(t *testing.T) {
	// If the right side of `andalso`/`orelse` were evaluated when it
	// shouldn't be, these would still succeed as written (both sides are
	// well-typed booleans) — the property under test is that the
	// right-hand assignment never runs, observed through !r still
	// reading 0 after both forms.
	ctxAnd := run("let r = ref 0 in (false andalso (r := 1 ; true)) ; !r end")
	require.False(t, ctxAnd.Failed(), "%v", ctxAnd.Errors)
	assert.Equal(t, "0", ctxAnd.Value.(evaluator.Value).String())

	ctxOr := run("let r = ref 0 in (true orelse (r := 1 ; true)) ; !r end")
	require.False(t, ctxOr.Failed(), "%v", ctxOr.Errors)
	assert.Equal(t, "0", ctxOr.Value.(evaluator.Value).String())
}

func TestRefAddressUniqueness(t *testing.T) {
	ctx := run("let a = ref 1 in let b = ref 2 in if a = b then 0 else 1 end end")
	require.False(t, ctx.Failed(), "%v", ctx.Errors)
	assert.Equal(t, "1", ctx.Value.(evaluator.Value).String())
}

func TestDivisionTruncatesTowardZero(t *testing.T) {
	ctx := run("(0 - 7) / 2")
	require.False(t, ctx.Failed(), "%v", ctx.Errors)
	assert.Equal(t, "-3", ctx.Value.(evaluator.Value).String())
}

func TestModSignFollowsDividend(t *testing.T) {
	ctx := run("(0 - 7) % 2")
	require.False(t, ctx.Failed(), "%v", ctx.Errors)
	assert.Equal(t, "-1", ctx.Value.(evaluator.Value).String())
}

func TestDivisionByZero(t *testing.T) {
	ctx := run("1 / 0")
	require.True(t, ctx.Failed())
	assert.Equal(t, "runtime error", string(ctx.Errors[0].Phase.Category()))
}

func TestRefDerefRoundTrip(t *testing.T) {
	ctx := run("let p = ref 1 in !p end")
	require.False(t, ctx.Failed(), "%v", ctx.Errors)
	assert.Equal(t, "1", ctx.Value.(evaluator.Value).String())
}

func TestPairPrinting(t *testing.T) {
	ctx := run("(1, true)")
	require.False(t, ctx.Failed(), "%v", ctx.Errors)
	assert.Equal(t, "pair@1@true", ctx.Value.(evaluator.Value).String())
}

func TestListWithNilTail(t *testing.T) {
	// A nil-terminated list prints its cons-cell count. A tail that is
	// neither Nil nor Cons cannot pass the type checker, so that case is
	// covered by the evaluator's own String table test instead.
	ctx := run("1 :: 2 :: nil")
	require.False(t, ctx.Failed(), "%v", ctx.Errors)
	assert.Equal(t, "list@2", ctx.Value.(evaluator.Value).String())
}
