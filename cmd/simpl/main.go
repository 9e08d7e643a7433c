// Command simpl runs a SIMPL source file through the lexer, parser,
// type inferencer, and evaluator, printing the resulting value or one
// of the three observable diagnostic categories (§6).
package main

import (
	"fmt"
	"os"

	"github.com/funvibe/simpl/internal/diagnostics"
	"github.com/funvibe/simpl/internal/evaluator"
	"github.com/funvibe/simpl/internal/lexer"
	"github.com/funvibe/simpl/internal/library"
	"github.com/funvibe/simpl/internal/parser"
	"github.com/funvibe/simpl/internal/pipeline"
	"github.com/funvibe/simpl/internal/typecheck"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: simpl <source-file>")
		os.Exit(0)
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Println(diagnostics.CategorySyntax)
		return
	}

	ctx := pipeline.NewPipelineContext(string(source))
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		typecheck.NewProcessor(library.InitialTypeEnv),
		evaluator.NewProcessor(library.InitialRuntimeEnv),
	)
	ctx = p.Run(ctx)

	if ctx.Failed() {
		fmt.Println(ctx.Errors[0].Phase.Category())
		return
	}

	fmt.Println(ctx.Value.(evaluator.Value).String())
}
