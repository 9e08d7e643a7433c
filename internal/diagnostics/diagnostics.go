package diagnostics

import (
	"fmt"

	"github.com/funvibe/simpl/internal/token"
)

// Phase represents the pipeline stage where an error originated.
type Phase string

const (
	PhaseLexer   Phase = "lexer"
	PhaseParser  Phase = "parser"
	PhaseType    Phase = "type"
	PhaseRuntime Phase = "runtime"
)

// Category is the three-way observable outcome of §6/§7: every Phase maps
// to exactly one Category, and only the Category is ever printed.
type Category string

const (
	CategorySyntax  Category = "syntax error"
	CategoryType    Category = "type error"
	CategoryRuntime Category = "runtime error"
)

// Category maps a Phase to the printed diagnostic per §6/§7: lexing and
// parsing faults are both "syntax error", type faults (mismatch,
// circularity, unbound name, equality-type violation) are "type error",
// and the evaluator's single free-form runtime fault kind is "runtime
// error".
func (p Phase) Category() Category {
	switch p {
	case PhaseLexer, PhaseParser:
		return CategorySyntax
	case PhaseType:
		return CategoryType
	default:
		return CategoryRuntime
	}
}

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // invalid character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // could not parse integer literal
	ErrP003 ErrorCode = "P003" // no prefix parse function found
	ErrP004 ErrorCode = "P004" // expected token, got something else

	// Type inferencer
	ErrT001 ErrorCode = "T001" // unbound name
	ErrT002 ErrorCode = "T002" // unification mismatch
	ErrT003 ErrorCode = "T003" // occurs-check / circularity
	ErrT004 ErrorCode = "T004" // equality-type violation

	// Evaluator
	ErrR001 ErrorCode = "R001" // free-form runtime fault
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: '%s'",
	ErrP001: "unexpected token: expected '%s', got '%s'",
	ErrP002: "could not parse '%s' as an integer",
	ErrP003: "no expression can start with '%s'",
	ErrP004: "expected next token to be '%s', got '%s' instead",
	ErrT001: "unbound name: '%s'",
	ErrT002: "%s",
	ErrT003: "%s",
	ErrT004: "%s is not an equality type",
	ErrR001: "%s",
}

// DiagnosticError is the single fault representation threaded through
// every stage of the pipeline. Phase/Code/Args/Token exist for internal
// debugging (go test failure messages); §7 keeps the diagnostic SIMPL
// programs themselves observe deliberately coarse, so only Phase.Category
// ever reaches a SIMPL program's user.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)
	if e.Token.Line > 0 {
		return fmt.Sprintf("[%s] %d:%d %s: %s", e.Phase, e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Phase, e.Code, message)
}

// NewPhaseError creates an error tagged with the phase it occurred in.
func NewPhaseError(phase Phase, code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: phase, Token: tok, Args: args}
}
