package pipeline

import (
	"github.com/funvibe/simpl/internal/ast"
	"github.com/funvibe/simpl/internal/diagnostics"
	"github.com/funvibe/simpl/internal/typesystem"
)

// PipelineContext holds all the data passed between pipeline stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string // path to the source file, if any
	TokenStream TokenStream
	AstRoot     ast.Node

	Type  typesystem.Type // the program's inferred type, set by the typechecker stage
	Value interface{}     // the program's final value, set by the evaluator stage (evaluator.Value)

	Errors []*diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Errors:     []*diagnostics.DiagnosticError{},
	}
}

// Failed reports whether any stage has recorded an error yet.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}
