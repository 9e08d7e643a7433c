package typecheck

import (
	"github.com/funvibe/simpl/internal/ast"
	"github.com/funvibe/simpl/internal/diagnostics"
	"github.com/funvibe/simpl/internal/pipeline"
	"github.com/funvibe/simpl/internal/token"
)

// TypeEnvBuilder produces the type environment a program's top-level
// expression is checked under. internal/library supplies the real one;
// keeping it injectable avoids an import cycle (library imports
// typecheck for *Env, so typecheck cannot import library back).
type TypeEnvBuilder func(inf *Inferencer) *Env

type Processor struct {
	InitialEnv TypeEnvBuilder
}

func NewProcessor(initialEnv TypeEnvBuilder) *Processor {
	return &Processor{InitialEnv: initialEnv}
}

func (tp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	root, ok := ctx.AstRoot.(ast.Expression)
	if !ok {
		ctx.Errors = append(ctx.Errors, diagnostics.NewPhaseError(diagnostics.PhaseType, diagnostics.ErrT001, token.Token{}, "<no program>"))
		return ctx
	}

	inf := New()
	env := tp.InitialEnv(inf)
	_, typ, err := inf.Infer(root, env)
	if err != nil {
		if de, ok := err.(*diagnostics.DiagnosticError); ok {
			ctx.Errors = append(ctx.Errors, de)
		} else {
			ctx.Errors = append(ctx.Errors, diagnostics.NewPhaseError(diagnostics.PhaseType, diagnostics.ErrT002, root.GetToken(), err.Error()))
		}
		return ctx
	}
	ctx.Type = typ
	return ctx
}
