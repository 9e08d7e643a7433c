package parser

import "github.com/funvibe/simpl/internal/pipeline"

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	root, err := ParseProgram(ctx.TokenStream)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.AstRoot = root
	return ctx
}
