package evaluator

import (
	"github.com/funvibe/simpl/internal/ast"
	"github.com/funvibe/simpl/internal/diagnostics"
	"github.com/funvibe/simpl/internal/pipeline"
)

// RuntimeEnvBuilder produces the environment a program's top-level
// expression runs under. Injectable for the same reason
// typecheck.TypeEnvBuilder is: internal/library owns the real one and
// this package cannot import it back without a cycle.
type RuntimeEnvBuilder func() *Environment

type Processor struct {
	InitialEnv RuntimeEnvBuilder
}

func NewProcessor(initialEnv RuntimeEnvBuilder) *Processor {
	return &Processor{InitialEnv: initialEnv}
}

func (ep *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	root, ok := ctx.AstRoot.(ast.Expression)
	if !ok {
		return ctx
	}

	ev := New()
	env := ep.InitialEnv()
	store := NewStore()
	val, err := ev.Eval(root, env, store)
	if err != nil {
		if de, ok := err.(*diagnostics.DiagnosticError); ok {
			ctx.Errors = append(ctx.Errors, de)
		}
		return ctx
	}
	ctx.Value = val
	return ctx
}
