package typecheck

import (
	"fmt"

	"github.com/funvibe/simpl/internal/ast"
	"github.com/funvibe/simpl/internal/diagnostics"
	"github.com/funvibe/simpl/internal/token"
	"github.com/funvibe/simpl/internal/typesystem"
)

// Inferencer walks an AST under a type environment, implementing the
// rules of §4.3. It owns the monotonically increasing fresh-variable
// counter — one Inferencer per program, mirroring the single shared
// address counter the evaluator threads through a run.
type Inferencer struct {
	varCount int
}

func New() *Inferencer { return &Inferencer{} }

func (inf *Inferencer) fresh(equality bool) typesystem.TVar {
	inf.varCount++
	return typesystem.TVar{Name: fmt.Sprintf("t%d", inf.varCount), Equality: equality}
}

// Fresh exposes fresh to callers outside the package — internal/library
// uses it to build the type variables fst/snd/hd/tl are polymorphic
// over, so they share the same counter as every variable the
// inferencer itself mints during a run.
func (inf *Inferencer) Fresh(equality bool) typesystem.TVar { return inf.fresh(equality) }

// Infer returns the principal substitution and type of node under env, or
// a *diagnostics.DiagnosticError tagged PhaseType. Dispatch goes through
// ast.Visitor rather than a type switch, exercising the same Accept/Visit
// shape the teacher uses for AST traversal.
func (inf *Inferencer) Infer(node ast.Expression, env *Env) (typesystem.Subst, typesystem.Type, error) {
	v := &inferVisitor{inf: inf, env: env}
	node.Accept(v)
	return v.subst, v.typ, v.err
}

type inferVisitor struct {
	inf   *Inferencer
	env   *Env
	subst typesystem.Subst
	typ   typesystem.Type
	err   error
}

func wrapUnify(tok token.Token, err error) error {
	if err == nil {
		return nil
	}
	if ue, ok := err.(*typesystem.UnificationError); ok && ue.Circular {
		return diagnostics.NewPhaseError(diagnostics.PhaseType, diagnostics.ErrT003, tok, ue.Error())
	}
	return diagnostics.NewPhaseError(diagnostics.PhaseType, diagnostics.ErrT002, tok, err.Error())
}

// binaryUnifyBoth implements the template shared by arithmetic,
// comparison, and boolean binary forms: infer both operands (the right
// one under the environment carrying the left's substitution), unify
// each operand's type with operandType, and report resultType.
func (inf *Inferencer) binaryUnifyBoth(env *Env, tok token.Token, left, right ast.Expression, operandType, resultType typesystem.Type) (typesystem.Subst, typesystem.Type, error) {
	s1, t1, err := inf.Infer(left, env)
	if err != nil {
		return nil, nil, err
	}
	s2, t2, err := inf.Infer(right, env.Apply(s1))
	if err != nil {
		return nil, nil, err
	}
	s := s2.Compose(s1)

	u1, err := typesystem.Unify(t1, operandType)
	if err != nil {
		return nil, nil, wrapUnify(tok, err)
	}
	s = s.Compose(u1)

	u2, err := typesystem.Unify(t2, operandType)
	if err != nil {
		return nil, nil, wrapUnify(tok, err)
	}
	s = s.Compose(u2)

	return s, resultType, nil
}

func (v *inferVisitor) set(s typesystem.Subst, t typesystem.Type, err error) {
	v.subst, v.typ, v.err = s, t, err
}

func (v *inferVisitor) VisitIntLit(n *ast.IntLit) { v.set(typesystem.Subst{}, typesystem.Int, nil) }

func (v *inferVisitor) VisitBoolLit(n *ast.BoolLit) { v.set(typesystem.Subst{}, typesystem.Bool, nil) }

func (v *inferVisitor) VisitUnit(n *ast.Unit) { v.set(typesystem.Subst{}, typesystem.Unit, nil) }

func (v *inferVisitor) VisitNil(n *ast.Nil) {
	elem := v.inf.fresh(true)
	v.set(typesystem.Subst{}, typesystem.TList{Elem: elem}, nil)
}

func (v *inferVisitor) VisitName(n *ast.Name) {
	t, ok := v.env.Lookup(n.Value)
	if !ok {
		v.set(nil, nil, diagnostics.NewPhaseError(diagnostics.PhaseType, diagnostics.ErrT001, n.Token, n.Value))
		return
	}
	v.set(typesystem.Subst{}, t, nil)
}

func (v *inferVisitor) VisitAdd(n *ast.Add) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Int))
}
func (v *inferVisitor) VisitSub(n *ast.Sub) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Int))
}
func (v *inferVisitor) VisitMul(n *ast.Mul) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Int))
}
func (v *inferVisitor) VisitDiv(n *ast.Div) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Int))
}
func (v *inferVisitor) VisitMod(n *ast.Mod) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Int))
}

func (v *inferVisitor) VisitLess(n *ast.Less) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Bool))
}
func (v *inferVisitor) VisitLessEq(n *ast.LessEq) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Bool))
}
func (v *inferVisitor) VisitGreater(n *ast.Greater) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Bool))
}
func (v *inferVisitor) VisitGreaterEq(n *ast.GreaterEq) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Int, typesystem.Bool))
}

func (v *inferVisitor) VisitAndAlso(n *ast.AndAlso) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Bool, typesystem.Bool))
}
func (v *inferVisitor) VisitOrElse(n *ast.OrElse) {
	v.set(v.inf.binaryUnifyBoth(v.env, n.Token, n.Left, n.Right, typesystem.Bool, typesystem.Bool))
}

// equality implements Eq/Neq: unify the two operand types with each
// other (not with a fixed type), then require the result satisfy the
// equality-type predicate (§4.3, §GLOSSARY).
func (v *inferVisitor) equality(tok token.Token, left, right ast.Expression) {
	s1, t1, err := v.inf.Infer(left, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s2, t2, err := v.inf.Infer(right, v.env.Apply(s1))
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s := s2.Compose(s1)
	u, err := typesystem.Unify(t1, t2)
	if err != nil {
		v.set(nil, nil, wrapUnify(tok, err))
		return
	}
	s = s.Compose(u)
	resultType := t1.Apply(s)
	if !typesystem.IsEqualityType(resultType) {
		v.set(nil, nil, diagnostics.NewPhaseError(diagnostics.PhaseType, diagnostics.ErrT004, tok, resultType.String()))
		return
	}
	v.set(s, typesystem.Bool, nil)
}

func (v *inferVisitor) VisitEq(n *ast.Eq)   { v.equality(n.Token, n.Left, n.Right) }
func (v *inferVisitor) VisitNeq(n *ast.Neq) { v.equality(n.Token, n.Left, n.Right) }

func (v *inferVisitor) VisitNeg(n *ast.Neg) {
	s, t, err := v.inf.Infer(n.Expr, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	u, err := typesystem.Unify(t, typesystem.Int)
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	v.set(u.Compose(s), typesystem.Int, nil)
}

func (v *inferVisitor) VisitNot(n *ast.Not) {
	s, t, err := v.inf.Infer(n.Expr, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	u, err := typesystem.Unify(t, typesystem.Bool)
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	v.set(u.Compose(s), typesystem.Bool, nil)
}

func (v *inferVisitor) VisitRef(n *ast.Ref) {
	s, t, err := v.inf.Infer(n.Expr, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	v.set(s, typesystem.TRef{Elem: t}, nil)
}

func (v *inferVisitor) VisitDeref(n *ast.Deref) {
	s, t, err := v.inf.Infer(n.Expr, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	elem := v.inf.fresh(true)
	u, err := typesystem.Unify(t, typesystem.TRef{Elem: elem})
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	s = u.Compose(s)
	v.set(s, s.Apply(elem), nil)
}

func (v *inferVisitor) VisitGroup(n *ast.Group) {
	v.set(v.inf.Infer(n.Expr, v.env))
}

func (v *inferVisitor) VisitPair(n *ast.Pair) {
	s1, t1, err := v.inf.Infer(n.Left, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s2, t2, err := v.inf.Infer(n.Right, v.env.Apply(s1))
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	v.set(s2.Compose(s1), typesystem.TPair{First: t1, Second: t2}, nil)
}

func (v *inferVisitor) VisitCons(n *ast.Cons) {
	s1, t1, err := v.inf.Infer(n.Left, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s2, t2, err := v.inf.Infer(n.Right, v.env.Apply(s1))
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s := s2.Compose(s1)
	u, err := typesystem.Unify(t2, typesystem.TList{Elem: t1})
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	s = s.Compose(u)
	v.set(s, s.Apply(t2), nil)
}

func (v *inferVisitor) VisitSeq(n *ast.Seq) {
	s1, _, err := v.inf.Infer(n.Left, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s2, t2, err := v.inf.Infer(n.Right, v.env.Apply(s1))
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	v.set(s2.Compose(s1), t2, nil)
}

func (v *inferVisitor) VisitAssign(n *ast.Assign) {
	s1, t1, err := v.inf.Infer(n.Left, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s2, t2, err := v.inf.Infer(n.Right, v.env.Apply(s1))
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s := s2.Compose(s1)
	u, err := typesystem.Unify(t1, typesystem.TRef{Elem: t2})
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	v.set(s.Compose(u), typesystem.Unit, nil)
}

// VisitApp implements §4.3's App rule, preserving the open-question
// asymmetry (DESIGN.md): both the function and argument are checked
// under the *original* env, not one threaded through the other's
// substitution.
func (v *inferVisitor) VisitApp(n *ast.App) {
	alpha := v.inf.fresh(false)
	s1, t1, err := v.inf.Infer(n.Fn, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s2, t2, err := v.inf.Infer(n.Arg, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s := s2.Compose(s1)
	uApply, err := typesystem.Unify(typesystem.TArrow{Param: t2, Result: alpha}, t1)
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	s = uApply.Compose(s)
	v.set(s, s.Apply(alpha), nil)
}

// VisitCond implements §4.3's Cond rule with the exact composition order
// of the original (DESIGN.md's Open Question note).
func (v *inferVisitor) VisitCond(n *ast.Cond) {
	s1r, t1, err := v.inf.Infer(n.Cond, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s1, err := typesystem.Unify(t1, typesystem.Bool)
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	env2 := v.env.Apply(s1.Compose(s1r))
	s2r, t2, err := v.inf.Infer(n.Then, env2)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s3r, t3, err := v.inf.Infer(n.Else, env2.Apply(s2r))
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s2, err := typesystem.Unify(t2, t3.Apply(s2r))
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	all := s2.Compose(s3r)
	all = all.Compose(s2r)
	all = all.Compose(s1)
	all = all.Compose(s1r)
	v.set(all, all.Apply(t2), nil)
}

func (v *inferVisitor) VisitLoop(n *ast.Loop) {
	s1r, t1, err := v.inf.Infer(n.Cond, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	s1, err := typesystem.Unify(t1, typesystem.Bool)
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	s2r, _, err := v.inf.Infer(n.Body, v.env.Apply(s1.Compose(s1r)))
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	v.set(s2r.Compose(s1r), typesystem.Unit, nil)
}

// VisitLet implements §4.3's monomorphic let — no generalisation (§9).
func (v *inferVisitor) VisitLet(n *ast.Let) {
	s1, t1, err := v.inf.Infer(n.Value, v.env)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	newEnv := v.env.Extend(n.Name, t1)
	s2, t2, err := v.inf.Infer(n.Body, newEnv)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	v.set(s2.Compose(s1), s2.Apply(t2), nil)
}

func (v *inferVisitor) VisitFn(n *ast.Fn) {
	param := v.inf.fresh(true)
	newEnv := v.env.Extend(n.Param, param)
	s, t, err := v.inf.Infer(n.Body, newEnv)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	v.set(s, typesystem.TArrow{Param: s.Apply(param), Result: t}, nil)
}

// VisitRec implements §4.3's Rec rule: a fresh equality-capable variable
// stands for the recursive binding while the body is checked; unifying
// the body's inferred type with that variable (after the body's own
// substitution) is what lets `rec f => fn n => ... f (n - 1) ...` pin
// down f's type to the function type its own body demands.
func (v *inferVisitor) VisitRec(n *ast.Rec) {
	alpha := v.inf.fresh(true)
	newEnv := v.env.Extend(n.Name, alpha)
	r, t, err := v.inf.Infer(n.Body, newEnv)
	if err != nil {
		v.set(nil, nil, err)
		return
	}
	u, err := typesystem.Unify(t, r.Apply(alpha))
	if err != nil {
		v.set(nil, nil, wrapUnify(n.Token, err))
		return
	}
	s := r.Compose(u)
	v.set(s, s.Apply(t), nil)
}
