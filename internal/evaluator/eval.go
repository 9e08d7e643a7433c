package evaluator

import (
	"github.com/funvibe/simpl/internal/ast"
)

// Evaluator runs a big-step, call-by-value evaluation of an already
// type-checked program (§4.4, §5). It holds no mutable state of its
// own — the caller's Store, which carries the address counter, is
// threaded explicitly through every call, the same discipline the type
// inferencer applies to its substitution.
type Evaluator struct{}

func New() *Evaluator { return &Evaluator{} }

// Eval dispatches over node via ast.Visitor, mirroring the type
// inferencer's Infer.
func (ev *Evaluator) Eval(node ast.Expression, env *Environment, store *Store) (Value, error) {
	v := &evalVisitor{ev: ev, env: env, store: store}
	node.Accept(v)
	return v.val, v.err
}

type evalVisitor struct {
	ev    *Evaluator
	env   *Environment
	store *Store
	val   Value
	err   error
}

func (v *evalVisitor) set(val Value, err error) { v.val, v.err = val, err }

func (v *evalVisitor) eval(node ast.Expression) (Value, error) {
	return v.ev.Eval(node, v.env, v.store)
}

func (v *evalVisitor) VisitIntLit(n *ast.IntLit)   { v.set(Int{N: n.Value}, nil) }
func (v *evalVisitor) VisitBoolLit(n *ast.BoolLit) { v.set(Bool{B: n.Value}, nil) }
func (v *evalVisitor) VisitUnit(n *ast.Unit)       { v.set(Unit{}, nil) }
func (v *evalVisitor) VisitNil(n *ast.Nil)         { v.set(Nil{}, nil) }

func (v *evalVisitor) VisitName(n *ast.Name) {
	val, ok := v.env.Lookup(n.Value)
	if !ok {
		v.set(nil, runtimeError(n.Token, "variable "+n.Value+" not defined"))
		return
	}
	if rv, ok := val.(Rec); ok {
		v.set(rv.Unfold(v.ev, v.store))
		return
	}
	v.set(val, nil)
}

// asInt/asBool extract a tagged union's payload; the type checker has
// already proven the shape, so a mismatch here can only mean a bug in
// this evaluator, not a malformed SIMPL program — left to panic rather
// than manufacture a bogus runtime error.
func asInt(v Value) int64 { return v.(Int).N }
func asBool(v Value) bool { return v.(Bool).B }

func (v *evalVisitor) VisitAdd(n *ast.Add) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Int{N: asInt(l) + asInt(r)}, nil)
}

func (v *evalVisitor) VisitSub(n *ast.Sub) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Int{N: asInt(l) - asInt(r)}, nil)
}

func (v *evalVisitor) VisitMul(n *ast.Mul) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Int{N: asInt(l) * asInt(r)}, nil)
}

func (v *evalVisitor) VisitDiv(n *ast.Div) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	divisor := asInt(r)
	if divisor == 0 {
		v.set(nil, runtimeError(n.Token, "division by zero"))
		return
	}
	// Go's / already truncates toward zero for signed integers.
	v.set(Int{N: asInt(l) / divisor}, nil)
}

func (v *evalVisitor) VisitMod(n *ast.Mod) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	divisor := asInt(r)
	if divisor == 0 {
		v.set(nil, runtimeError(n.Token, "division by zero"))
		return
	}
	// Go's % carries the sign of the dividend, matching §4.4's
	// description directly (the reference interpreter's Python %
	// instead carries the sign of the divisor; we follow the spec text).
	v.set(Int{N: asInt(l) % divisor}, nil)
}

func (v *evalVisitor) VisitEq(n *ast.Eq) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: Equal(l, r)}, nil)
}

func (v *evalVisitor) VisitNeq(n *ast.Neq) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: !Equal(l, r)}, nil)
}

func (v *evalVisitor) VisitLess(n *ast.Less) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: asInt(l) < asInt(r)}, nil)
}

func (v *evalVisitor) VisitLessEq(n *ast.LessEq) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: asInt(l) <= asInt(r)}, nil)
}

func (v *evalVisitor) VisitGreater(n *ast.Greater) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: asInt(l) > asInt(r)}, nil)
}

func (v *evalVisitor) VisitGreaterEq(n *ast.GreaterEq) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: asInt(l) >= asInt(r)}, nil)
}

// VisitAndAlso/VisitOrElse short-circuit: the right operand is only
// evaluated when the left one doesn't already decide the result.
func (v *evalVisitor) VisitAndAlso(n *ast.AndAlso) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	if !asBool(l) {
		v.set(Bool{B: false}, nil)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: asBool(r)}, nil)
}

func (v *evalVisitor) VisitOrElse(n *ast.OrElse) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	if asBool(l) {
		v.set(Bool{B: true}, nil)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: asBool(r)}, nil)
}

func (v *evalVisitor) VisitPair(n *ast.Pair) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Pair{First: l, Second: r}, nil)
}

func (v *evalVisitor) VisitCons(n *ast.Cons) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Cons{Head: l, Tail: r}, nil)
}

func (v *evalVisitor) VisitSeq(n *ast.Seq) {
	if _, err := v.eval(n.Left); err != nil {
		v.set(nil, err)
		return
	}
	v.set(v.eval(n.Right))
}

func (v *evalVisitor) VisitAssign(n *ast.Assign) {
	l, err := v.eval(n.Left)
	if err != nil {
		v.set(nil, err)
		return
	}
	r, err := v.eval(n.Right)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.store.Put(l.(Ref).Addr, r)
	v.set(Unit{}, nil)
}

// VisitApp implements §4.4's function application: fst/snd/hd/tl are
// recognized on the evaluated function value before the generic
// closure-call path runs at all.
func (v *evalVisitor) VisitApp(n *ast.App) {
	fn, err := v.eval(n.Fn)
	if err != nil {
		v.set(nil, err)
		return
	}
	arg, err := v.eval(n.Arg)
	if err != nil {
		v.set(nil, err)
		return
	}

	if b, ok := fn.(Builtin); ok {
		switch b.Kind {
		case BuiltinFst:
			v.set(arg.(Pair).First, nil)
		case BuiltinSnd:
			v.set(arg.(Pair).Second, nil)
		case BuiltinHd:
			if _, isNil := arg.(Nil); isNil {
				v.set(nil, runtimeError(n.Token, "hd of nil"))
				return
			}
			v.set(arg.(Cons).Head, nil)
		case BuiltinTl:
			if _, isNil := arg.(Nil); isNil {
				v.set(nil, runtimeError(n.Token, "tl of nil"))
				return
			}
			v.set(arg.(Cons).Tail, nil)
		}
		return
	}

	closure := fn.(Closure)
	newEnv := closure.Env.Extend(closure.Param, arg)
	v.set(v.ev.Eval(closure.Body, newEnv, v.store))
}

func (v *evalVisitor) VisitNeg(n *ast.Neg) {
	e, err := v.eval(n.Expr)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Int{N: -asInt(e)}, nil)
}

func (v *evalVisitor) VisitNot(n *ast.Not) {
	e, err := v.eval(n.Expr)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.set(Bool{B: !asBool(e)}, nil)
}

// VisitRef implements §4.4's evaluation order: the address is reserved
// before the inner expression runs, so a reference allocated while
// evaluating e can never collide with the address e itself receives.
func (v *evalVisitor) VisitRef(n *ast.Ref) {
	addr := v.store.Alloc()
	val, err := v.eval(n.Expr)
	if err != nil {
		v.set(nil, err)
		return
	}
	v.store.Put(addr, val)
	v.set(Ref{Addr: addr}, nil)
}

func (v *evalVisitor) VisitDeref(n *ast.Deref) {
	ptr, err := v.eval(n.Expr)
	if err != nil {
		v.set(nil, err)
		return
	}
	val, ok := v.store.Get(ptr.(Ref).Addr)
	if !ok {
		v.set(nil, runtimeError(n.Token, "segmentation fault"))
		return
	}
	v.set(val, nil)
}

func (v *evalVisitor) VisitGroup(n *ast.Group) { v.set(v.eval(n.Expr)) }

func (v *evalVisitor) VisitCond(n *ast.Cond) {
	c, err := v.eval(n.Cond)
	if err != nil {
		v.set(nil, err)
		return
	}
	if asBool(c) {
		v.set(v.eval(n.Then))
		return
	}
	v.set(v.eval(n.Else))
}

func (v *evalVisitor) VisitLoop(n *ast.Loop) {
	for {
		c, err := v.eval(n.Cond)
		if err != nil {
			v.set(nil, err)
			return
		}
		if !asBool(c) {
			v.set(Unit{}, nil)
			return
		}
		if _, err := v.eval(n.Body); err != nil {
			v.set(nil, err)
			return
		}
	}
}

func (v *evalVisitor) VisitLet(n *ast.Let) {
	val, err := v.eval(n.Value)
	if err != nil {
		v.set(nil, err)
		return
	}
	newEnv := v.env.Extend(n.Name, val)
	v.set(v.ev.Eval(n.Body, newEnv, v.store))
}

func (v *evalVisitor) VisitFn(n *ast.Fn) {
	v.set(Closure{Env: v.env, Param: n.Param, Body: n.Body}, nil)
}

// VisitRec binds Name to a Rec value over the *current* environment
// (not yet extended) and evaluates Body under the environment extended
// with that binding — every later lookup of Name re-enters Rec.Unfold
// rather than returning a closure directly, which is how recursive
// calls keep seeing the binding without any mutation.
func (v *evalVisitor) VisitRec(n *ast.Rec) {
	rv := Rec{Env: v.env, Name: n.Name, Body: n.Body}
	newEnv := v.env.Extend(n.Name, rv)
	v.set(v.ev.Eval(n.Body, newEnv, v.store))
}
