// Package library provides SIMPL's small built-in function set — fst,
// snd, hd, tl, succ, pred, iszero — and the initial type and runtime
// environments a program's top-level expression is checked and
// evaluated under (§4.5).
package library

import (
	"strconv"

	"github.com/funvibe/simpl/internal/ast"
	"github.com/funvibe/simpl/internal/config"
	"github.com/funvibe/simpl/internal/evaluator"
	"github.com/funvibe/simpl/internal/token"
	"github.com/funvibe/simpl/internal/typecheck"
	"github.com/funvibe/simpl/internal/typesystem"
)

const (
	Fst    = config.BuiltinFst
	Snd    = config.BuiltinSnd
	Hd     = config.BuiltinHd
	Tl     = config.BuiltinTl
	Succ   = config.BuiltinSucc
	Pred   = config.BuiltinPred
	IsZero = config.BuiltinIsZero
)

// InitialTypeEnv builds the type environment fst/snd/hd/tl/succ/pred/
// iszero are bound in, one fresh pair of equality-capable type
// variables shared by fst and snd (and another by hd/tl), matching the
// reference implementation's initial_type_env.
func InitialTypeEnv(inf *typecheck.Inferencer) *typecheck.Env {
	env := typecheck.Empty
	a := inf.Fresh(true)
	b := inf.Fresh(true)
	env = env.Extend(Fst, typesystem.TArrow{Param: typesystem.TPair{First: a, Second: b}, Result: a})
	env = env.Extend(Snd, typesystem.TArrow{Param: typesystem.TPair{First: a, Second: b}, Result: b})

	elem := inf.Fresh(true)
	env = env.Extend(Hd, typesystem.TArrow{Param: typesystem.TList{Elem: elem}, Result: elem})
	env = env.Extend(Tl, typesystem.TArrow{Param: typesystem.TList{Elem: elem}, Result: typesystem.TList{Elem: elem}})

	env = env.Extend(IsZero, typesystem.TArrow{Param: typesystem.Int, Result: typesystem.Bool})
	env = env.Extend(Pred, typesystem.TArrow{Param: typesystem.Int, Result: typesystem.Int})
	env = env.Extend(Succ, typesystem.TArrow{Param: typesystem.Int, Result: typesystem.Int})
	return env
}

// InitialRuntimeEnv builds the runtime environment carrying the same
// seven names. fst/snd/hd/tl bind to evaluator.Builtin values App
// dispatches on directly; succ/pred/iszero bind to ordinary closures
// over a synthetic one-node body, exactly as the reference
// implementation defines them.
func InitialRuntimeEnv() *evaluator.Environment {
	env := evaluator.Empty
	env = env.Extend(Fst, evaluator.Builtin{Kind: evaluator.BuiltinFst})
	env = env.Extend(Snd, evaluator.Builtin{Kind: evaluator.BuiltinSnd})
	env = env.Extend(Hd, evaluator.Builtin{Kind: evaluator.BuiltinHd})
	env = env.Extend(Tl, evaluator.Builtin{Kind: evaluator.BuiltinTl})

	env = env.Extend(Succ, evaluator.Closure{Env: nil, Param: "x", Body: addOne()})
	env = env.Extend(Pred, evaluator.Closure{Env: nil, Param: "x", Body: subOne()})
	env = env.Extend(IsZero, evaluator.Closure{Env: nil, Param: "x", Body: eqZero()})
	return env
}

func identToken(lexeme string) token.Token {
	return token.Token{Type: token.IDENT, Lexeme: lexeme}
}

func intToken(n int64) token.Token {
	return token.Token{Type: token.INT, Lexeme: strconv.FormatInt(n, 10)}
}

func addOne() ast.Expression {
	return &ast.Add{
		Token: token.Token{Type: token.PLUS, Lexeme: "+"},
		Left:  &ast.Name{Token: identToken("x"), Value: "x"},
		Right: &ast.IntLit{Token: intToken(1), Value: 1},
	}
}

func subOne() ast.Expression {
	return &ast.Sub{
		Token: token.Token{Type: token.MINUS, Lexeme: "-"},
		Left:  &ast.Name{Token: identToken("x"), Value: "x"},
		Right: &ast.IntLit{Token: intToken(1), Value: 1},
	}
}

func eqZero() ast.Expression {
	return &ast.Eq{
		Token: token.Token{Type: token.EQ, Lexeme: "="},
		Left:  &ast.Name{Token: identToken("x"), Value: "x"},
		Right: &ast.IntLit{Token: intToken(0), Value: 0},
	}
}
