package evaluator

import (
	"github.com/funvibe/simpl/internal/diagnostics"
	"github.com/funvibe/simpl/internal/token"
)

// runtimeError builds the evaluator's single free-form fault kind
// (§7): division/mod by zero, hd/tl of nil, dereferencing an address
// nothing was ever stored at, and looking up a name the type checker
// should already have ruled out.
func runtimeError(tok token.Token, msg string) error {
	return diagnostics.NewPhaseError(diagnostics.PhaseRuntime, diagnostics.ErrR001, tok, msg)
}
