package ast

import (
	"github.com/funvibe/simpl/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Expression is a Node that represents an expression. SIMPL has no
// statement forms — a whole program is a single expression — so every
// node in this package is an Expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Visitor lets any traversal (type inferencer, evaluator, future tooling)
// dispatch over the node set without a type switch at every call site.
type Visitor interface {
	VisitIntLit(n *IntLit)
	VisitBoolLit(n *BoolLit)
	VisitUnit(n *Unit)
	VisitNil(n *Nil)
	VisitName(n *Name)
	VisitNeg(n *Neg)
	VisitNot(n *Not)
	VisitDeref(n *Deref)
	VisitRef(n *Ref)
	VisitGroup(n *Group)
	VisitAdd(n *Add)
	VisitSub(n *Sub)
	VisitMul(n *Mul)
	VisitDiv(n *Div)
	VisitMod(n *Mod)
	VisitEq(n *Eq)
	VisitNeq(n *Neq)
	VisitLess(n *Less)
	VisitLessEq(n *LessEq)
	VisitGreater(n *Greater)
	VisitGreaterEq(n *GreaterEq)
	VisitAndAlso(n *AndAlso)
	VisitOrElse(n *OrElse)
	VisitPair(n *Pair)
	VisitCons(n *Cons)
	VisitSeq(n *Seq)
	VisitAssign(n *Assign)
	VisitApp(n *App)
	VisitCond(n *Cond)
	VisitLoop(n *Loop)
	VisitLet(n *Let)
	VisitFn(n *Fn)
	VisitRec(n *Rec)
}

// ---- literals and atoms ----

type IntLit struct {
	Token token.Token
	Value int64
}

func (n *IntLit) Accept(v Visitor)      { v.VisitIntLit(n) }
func (n *IntLit) expressionNode()       {}
func (n *IntLit) TokenLiteral() string  { return n.Token.Lexeme }
func (n *IntLit) GetToken() token.Token { return n.Token }

type BoolLit struct {
	Token token.Token
	Value bool
}

func (n *BoolLit) Accept(v Visitor)      { v.VisitBoolLit(n) }
func (n *BoolLit) expressionNode()       {}
func (n *BoolLit) TokenLiteral() string  { return n.Token.Lexeme }
func (n *BoolLit) GetToken() token.Token { return n.Token }

// Unit is the `()` literal.
type Unit struct {
	Token token.Token
}

func (n *Unit) Accept(v Visitor)      { v.VisitUnit(n) }
func (n *Unit) expressionNode()       {}
func (n *Unit) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Unit) GetToken() token.Token { return n.Token }

// Nil is the empty list literal.
type Nil struct {
	Token token.Token
}

func (n *Nil) Accept(v Visitor)      { v.VisitNil(n) }
func (n *Nil) expressionNode()       {}
func (n *Nil) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Nil) GetToken() token.Token { return n.Token }

// Name is a variable reference.
type Name struct {
	Token token.Token
	Value string
}

func (n *Name) Accept(v Visitor)      { v.VisitName(n) }
func (n *Name) expressionNode()       {}
func (n *Name) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Name) GetToken() token.Token { return n.Token }

// ---- unary forms ----

type Neg struct {
	Token token.Token
	Expr  Expression
}

func (n *Neg) Accept(v Visitor)      { v.VisitNeg(n) }
func (n *Neg) expressionNode()       {}
func (n *Neg) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Neg) GetToken() token.Token { return n.Token }

type Not struct {
	Token token.Token
	Expr  Expression
}

func (n *Not) Accept(v Visitor)      { v.VisitNot(n) }
func (n *Not) expressionNode()       {}
func (n *Not) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Not) GetToken() token.Token { return n.Token }

// Deref is `!e`.
type Deref struct {
	Token token.Token
	Expr  Expression
}

func (n *Deref) Accept(v Visitor)      { v.VisitDeref(n) }
func (n *Deref) expressionNode()       {}
func (n *Deref) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Deref) GetToken() token.Token { return n.Token }

// Ref is `ref e`.
type Ref struct {
	Token token.Token
	Expr  Expression
}

func (n *Ref) Accept(v Visitor)      { v.VisitRef(n) }
func (n *Ref) expressionNode()       {}
func (n *Ref) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Ref) GetToken() token.Token { return n.Token }

// Group is a transparent parenthesised wrapper, `(e)`.
type Group struct {
	Token token.Token
	Expr  Expression
}

func (n *Group) Accept(v Visitor)      { v.VisitGroup(n) }
func (n *Group) expressionNode()       {}
func (n *Group) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Group) GetToken() token.Token { return n.Token }

// ---- binary arithmetic and comparison ----

type Add struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Add) Accept(v Visitor)      { v.VisitAdd(n) }
func (n *Add) expressionNode()       {}
func (n *Add) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Add) GetToken() token.Token { return n.Token }

type Sub struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Sub) Accept(v Visitor)      { v.VisitSub(n) }
func (n *Sub) expressionNode()       {}
func (n *Sub) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Sub) GetToken() token.Token { return n.Token }

type Mul struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Mul) Accept(v Visitor)      { v.VisitMul(n) }
func (n *Mul) expressionNode()       {}
func (n *Mul) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Mul) GetToken() token.Token { return n.Token }

type Div struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Div) Accept(v Visitor)      { v.VisitDiv(n) }
func (n *Div) expressionNode()       {}
func (n *Div) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Div) GetToken() token.Token { return n.Token }

type Mod struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Mod) Accept(v Visitor)      { v.VisitMod(n) }
func (n *Mod) expressionNode()       {}
func (n *Mod) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Mod) GetToken() token.Token { return n.Token }

type Eq struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Eq) Accept(v Visitor)      { v.VisitEq(n) }
func (n *Eq) expressionNode()       {}
func (n *Eq) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Eq) GetToken() token.Token { return n.Token }

type Neq struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Neq) Accept(v Visitor)      { v.VisitNeq(n) }
func (n *Neq) expressionNode()       {}
func (n *Neq) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Neq) GetToken() token.Token { return n.Token }

type Less struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Less) Accept(v Visitor)      { v.VisitLess(n) }
func (n *Less) expressionNode()       {}
func (n *Less) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Less) GetToken() token.Token { return n.Token }

type LessEq struct {
	Token       token.Token
	Left, Right Expression
}

func (n *LessEq) Accept(v Visitor)      { v.VisitLessEq(n) }
func (n *LessEq) expressionNode()       {}
func (n *LessEq) TokenLiteral() string  { return n.Token.Lexeme }
func (n *LessEq) GetToken() token.Token { return n.Token }

type Greater struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Greater) Accept(v Visitor)      { v.VisitGreater(n) }
func (n *Greater) expressionNode()       {}
func (n *Greater) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Greater) GetToken() token.Token { return n.Token }

type GreaterEq struct {
	Token       token.Token
	Left, Right Expression
}

func (n *GreaterEq) Accept(v Visitor)      { v.VisitGreaterEq(n) }
func (n *GreaterEq) expressionNode()       {}
func (n *GreaterEq) TokenLiteral() string  { return n.Token.Lexeme }
func (n *GreaterEq) GetToken() token.Token { return n.Token }

// ---- boolean short-circuit ----

type AndAlso struct {
	Token       token.Token
	Left, Right Expression
}

func (n *AndAlso) Accept(v Visitor)      { v.VisitAndAlso(n) }
func (n *AndAlso) expressionNode()       {}
func (n *AndAlso) TokenLiteral() string  { return n.Token.Lexeme }
func (n *AndAlso) GetToken() token.Token { return n.Token }

type OrElse struct {
	Token       token.Token
	Left, Right Expression
}

func (n *OrElse) Accept(v Visitor)      { v.VisitOrElse(n) }
func (n *OrElse) expressionNode()       {}
func (n *OrElse) TokenLiteral() string  { return n.Token.Lexeme }
func (n *OrElse) GetToken() token.Token { return n.Token }

// ---- structures ----

type Pair struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Pair) Accept(v Visitor)      { v.VisitPair(n) }
func (n *Pair) expressionNode()       {}
func (n *Pair) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Pair) GetToken() token.Token { return n.Token }

type Cons struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Cons) Accept(v Visitor)      { v.VisitCons(n) }
func (n *Cons) expressionNode()       {}
func (n *Cons) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Cons) GetToken() token.Token { return n.Token }

// Seq is `e1 ; e2`.
type Seq struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Seq) Accept(v Visitor)      { v.VisitSeq(n) }
func (n *Seq) expressionNode()       {}
func (n *Seq) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Seq) GetToken() token.Token { return n.Token }

// Assign is `lhs := rhs`.
type Assign struct {
	Token       token.Token
	Left, Right Expression
}

func (n *Assign) Accept(v Visitor)      { v.VisitAssign(n) }
func (n *Assign) expressionNode()       {}
func (n *Assign) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Assign) GetToken() token.Token { return n.Token }

// App is function application by juxtaposition: `f x`.
type App struct {
	Token     token.Token
	Fn, Arg   Expression
}

func (n *App) Accept(v Visitor)      { v.VisitApp(n) }
func (n *App) expressionNode()       {}
func (n *App) TokenLiteral() string  { return n.Token.Lexeme }
func (n *App) GetToken() token.Token { return n.Token }

// Cond is `if c then a else b`.
type Cond struct {
	Token              token.Token
	Cond, Then, Else   Expression
}

func (n *Cond) Accept(v Visitor)      { v.VisitCond(n) }
func (n *Cond) expressionNode()       {}
func (n *Cond) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Cond) GetToken() token.Token { return n.Token }

// Loop is `while c do b`.
type Loop struct {
	Token      token.Token
	Cond, Body Expression
}

func (n *Loop) Accept(v Visitor)      { v.VisitLoop(n) }
func (n *Loop) expressionNode()       {}
func (n *Loop) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Loop) GetToken() token.Token { return n.Token }

// Let is `let x = e1 in e2 end`.
type Let struct {
	Token      token.Token
	Name       string
	Value      Expression
	Body       Expression
}

func (n *Let) Accept(v Visitor)      { v.VisitLet(n) }
func (n *Let) expressionNode()       {}
func (n *Let) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Let) GetToken() token.Token { return n.Token }

// Fn is `fn x => e`.
type Fn struct {
	Token token.Token
	Param string
	Body  Expression
}

func (n *Fn) Accept(v Visitor)      { v.VisitFn(n) }
func (n *Fn) expressionNode()       {}
func (n *Fn) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Fn) GetToken() token.Token { return n.Token }

// Rec is `rec x => e`.
type Rec struct {
	Token token.Token
	Name  string
	Body  Expression
}

func (n *Rec) Accept(v Visitor)      { v.VisitRec(n) }
func (n *Rec) expressionNode()       {}
func (n *Rec) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Rec) GetToken() token.Token { return n.Token }
