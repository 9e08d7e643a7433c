package evaluator

import (
	"fmt"
	"strconv"

	"github.com/funvibe/simpl/internal/ast"
)

// Value is any runtime value a SIMPL expression can produce. String
// implements §6's printed-value table.
type Value interface {
	String() string
}

type Int struct{ N int64 }

func (v Int) String() string { return strconv.FormatInt(v.N, 10) }

type Bool struct{ B bool }

func (v Bool) String() string {
	if v.B {
		return "true"
	}
	return "false"
}

// Unit is the single value of type unit.
type Unit struct{}

func (Unit) String() string { return "unit" }

// Nil is the empty list.
type Nil struct{}

func (Nil) String() string { return "nil" }

type Pair struct {
	First, Second Value
}

func (p Pair) String() string { return fmt.Sprintf("pair@%s@%s", p.First, p.Second) }

// Cons is a non-empty list cell. length treats anything but a Nil or
// Cons tail as a single trailing element, matching ConsValue.length in
// the reference evaluator — a cons-list's tail need not itself be nil
// or a cons cell to be printed.
type Cons struct {
	Head, Tail Value
}

func (c Cons) String() string { return fmt.Sprintf("list@%d", c.length()) }

func (c Cons) length() int {
	switch tail := c.Tail.(type) {
	case Nil:
		return 1
	case Cons:
		return 1 + tail.length()
	default:
		return 2
	}
}

// Ref is a mutable reference, identified by its store address.
type Ref struct{ Addr int }

func (r Ref) String() string { return fmt.Sprintf("ref@%d", r.Addr) }

// Closure is a user-written `fn x => e`, capturing the environment at
// the point it was evaluated.
type Closure struct {
	Env   *Environment
	Param string
	Body  ast.Expression
}

func (Closure) String() string { return "fun" }

// Rec is the value bound by `rec x => e`. Looking a Rec value up by
// name re-enters Unfold rather than returning it directly — SIMPL has
// no fixpoint combinator or mutable closure cell, so recursion works by
// re-evaluating the Rec body under an environment that rebinds the
// recursive name to itself, every time it is referenced.
type Rec struct {
	Env  *Environment
	Name string
	Body ast.Expression
}

func (Rec) String() string { return "fun" }

// Unfold produces the value a lookup of a Rec binding should yield: the
// body evaluated under Env extended with Name bound back to rv.
func (rv Rec) Unfold(ev *Evaluator, store *Store) (Value, error) {
	env := rv.Env.Extend(rv.Name, rv)
	return ev.Eval(rv.Body, env, store)
}

// BuiltinKind distinguishes the four library functions App dispatches
// directly on their argument shape rather than by closure call: fst,
// snd, hd, and tl (§4.5).
type BuiltinKind int

const (
	BuiltinFst BuiltinKind = iota
	BuiltinSnd
	BuiltinHd
	BuiltinTl
)

// Builtin is the value bound to fst/snd/hd/tl in the initial runtime
// environment. It carries no closure body — App recognizes it by Kind
// and dispatches before ever trying a generic closure call.
type Builtin struct{ Kind BuiltinKind }

func (Builtin) String() string { return "fun" }

// Equal implements the structural equality `=`/`<>` require (§4.3's
// equality-type restriction keeps this from ever being asked of a
// function or rec value, so those fall through to identity).
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Int:
		b, ok := b.(Int)
		return ok && a.N == b.N
	case Bool:
		b, ok := b.(Bool)
		return ok && a.B == b.B
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Pair:
		b, ok := b.(Pair)
		return ok && Equal(a.First, b.First) && Equal(a.Second, b.Second)
	case Cons:
		b, ok := b.(Cons)
		return ok && Equal(a.Head, b.Head) && Equal(a.Tail, b.Tail)
	case Ref:
		b, ok := b.(Ref)
		return ok && a.Addr == b.Addr
	default:
		return a == b
	}
}
