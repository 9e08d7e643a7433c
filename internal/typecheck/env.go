package typecheck

import "github.com/funvibe/simpl/internal/typesystem"

// Env is the type environment of §3: an ordered chain of (name, type)
// bindings with last-binding-wins lookup. Frames are immutable — Extend
// never mutates the chain it was given, so two environments may safely
// share a suffix, the same structural-sharing discipline the runtime
// Environment in internal/evaluator follows.
type Env struct {
	parent *Env
	name   string
	typ    typesystem.Type
}

// Empty is the environment with no bindings.
var Empty *Env

// Extend returns a new environment with name bound to typ, shadowing any
// existing binding of the same name without disturbing e.
func (e *Env) Extend(name string, typ typesystem.Type) *Env {
	return &Env{parent: e, name: name, typ: typ}
}

// Lookup walks inner-to-outer and returns the first binding of name.
func (e *Env) Lookup(name string) (typesystem.Type, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if frame.name == name {
			return frame.typ, true
		}
	}
	return nil, false
}

// Apply substitutes every binding's type, used where §4.3 calls for
// checking a subsequent sibling "under E composed with the running
// substitution" (ComposedTypeEnv in §3/§9) — implemented here by eager
// rebuild rather than lazy wrapping, one of the two semantics §9 calls
// equivalent.
func (e *Env) Apply(s typesystem.Subst) *Env {
	if e == nil {
		return nil
	}
	return &Env{parent: e.parent.Apply(s), name: e.name, typ: e.typ.Apply(s)}
}
