// Package parser implements SIMPL's recursive-descent parser (§4.2): a
// ladder of one parseX method per precedence level, from `let` (lowest)
// down to atoms (highest), plus the juxtaposition rule that turns two
// adjacent unary forms into function application.
package parser

import (
	"github.com/funvibe/simpl/internal/ast"
	"github.com/funvibe/simpl/internal/config"
	"github.com/funvibe/simpl/internal/diagnostics"
	"github.com/funvibe/simpl/internal/pipeline"
	"github.com/funvibe/simpl/internal/token"
)

// curIsWord reports whether cur is an IDENT token spelling the given
// word-identifier — true/false/nil/ref/not/andalso/orelse are lexed as
// plain identifiers (§3) and dispatched here by lexeme, not by a
// dedicated token type.
func (p *Parser) curIsWord(word string) bool {
	return p.cur.Type == token.IDENT && p.cur.Lexeme == word
}

type Parser struct {
	tokens pipeline.TokenStream
	cur    token.Token
	peek   token.Token
	err    *diagnostics.DiagnosticError
}

func New(tokens pipeline.TokenStream) *Parser {
	p := &Parser{tokens: tokens}
	p.cur = p.tokens.Next()
	p.peek = p.tokens.Next()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.tokens.Next()
}

func (p *Parser) fail(code diagnostics.ErrorCode, args ...interface{}) {
	if p.err == nil {
		p.err = diagnostics.NewPhaseError(diagnostics.PhaseParser, code, p.cur, args...)
	}
}

func (p *Parser) failed() bool { return p.err != nil }

// expect consumes cur if it has the wanted type, else records a fault
// and leaves cur in place so callers can keep failing cheaply rather
// than panic.
func (p *Parser) expect(tt token.TokenType) {
	if p.failed() {
		return
	}
	if p.cur.Type != tt {
		p.fail(diagnostics.ErrP004, string(tt), p.cur.Lexeme)
		return
	}
	p.advance()
}

// ParseProgram parses the single top-level expression SIMPL programs
// consist of, and requires EOF to immediately follow it.
func ParseProgram(tokens pipeline.TokenStream) (ast.Expression, *diagnostics.DiagnosticError) {
	p := New(tokens)
	expr := p.parseLet()
	if p.failed() {
		return nil, p.err
	}
	if p.cur.Type != token.EOF {
		p.fail(diagnostics.ErrP001, "EOF", p.cur.Lexeme)
		return nil, p.err
	}
	return expr, nil
}

// level 1: let x = e1 in e2 end
func (p *Parser) parseLet() ast.Expression {
	if p.failed() {
		return nil
	}
	if p.cur.Type != token.LET {
		return p.parseIf()
	}
	tok := p.cur
	p.advance()
	if p.cur.Type != token.IDENT {
		p.fail(diagnostics.ErrP004, "identifier", p.cur.Lexeme)
		return nil
	}
	name := p.cur.Lexeme
	p.advance()
	p.expect(token.EQ)
	value := p.parseLet()
	if p.failed() {
		return nil
	}
	p.expect(token.IN)
	body := p.parseLet()
	if p.failed() {
		return nil
	}
	p.expect(token.END)
	if p.failed() {
		return nil
	}
	return &ast.Let{Token: tok, Name: name, Value: value, Body: body}
}

// level 2: if e1 then e2 else e3 / while e1 do e2
func (p *Parser) parseIf() ast.Expression {
	if p.failed() {
		return nil
	}
	switch p.cur.Type {
	case token.IF:
		tok := p.cur
		p.advance()
		cond := p.parseLet()
		if p.failed() {
			return nil
		}
		p.expect(token.THEN)
		then := p.parseLet()
		if p.failed() {
			return nil
		}
		p.expect(token.ELSE)
		els := p.parseLet()
		if p.failed() {
			return nil
		}
		return &ast.Cond{Token: tok, Cond: cond, Then: then, Else: els}
	case token.WHILE:
		tok := p.cur
		p.advance()
		cond := p.parseLet()
		if p.failed() {
			return nil
		}
		p.expect(token.DO)
		body := p.parseLet()
		if p.failed() {
			return nil
		}
		return &ast.Loop{Token: tok, Cond: cond, Body: body}
	default:
		return p.parseFnRec()
	}
}

// level 3: fn x => e / rec x => e
func (p *Parser) parseFnRec() ast.Expression {
	if p.failed() {
		return nil
	}
	switch p.cur.Type {
	case token.FN:
		tok := p.cur
		p.advance()
		if p.cur.Type != token.IDENT {
			p.fail(diagnostics.ErrP004, "identifier", p.cur.Lexeme)
			return nil
		}
		param := p.cur.Lexeme
		p.advance()
		p.expect(token.DARROW)
		body := p.parseLet()
		if p.failed() {
			return nil
		}
		return &ast.Fn{Token: tok, Param: param, Body: body}
	case token.REC:
		tok := p.cur
		p.advance()
		if p.cur.Type != token.IDENT {
			p.fail(diagnostics.ErrP004, "identifier", p.cur.Lexeme)
			return nil
		}
		name := p.cur.Lexeme
		p.advance()
		p.expect(token.DARROW)
		body := p.parseLet()
		if p.failed() {
			return nil
		}
		return &ast.Rec{Token: tok, Name: name, Body: body}
	default:
		return p.parseSeq()
	}
}

// level 4: e1 ; e2 ; ... (left-associative)
func (p *Parser) parseSeq() ast.Expression {
	left := p.parseAssign()
	for !p.failed() && p.cur.Type == token.SEMI {
		tok := p.cur
		p.advance()
		right := p.parseAssign()
		if p.failed() {
			return nil
		}
		left = &ast.Seq{Token: tok, Left: left, Right: right}
	}
	return left
}

// level 5: lhs := rhs (left-associative)
func (p *Parser) parseAssign() ast.Expression {
	left := p.parseOrElse()
	for !p.failed() && p.cur.Type == token.ASSIGN_REF {
		tok := p.cur
		p.advance()
		right := p.parseOrElse()
		if p.failed() {
			return nil
		}
		left = &ast.Assign{Token: tok, Left: left, Right: right}
	}
	return left
}

// level 6: orelse (left-associative)
func (p *Parser) parseOrElse() ast.Expression {
	left := p.parseAndAlso()
	for !p.failed() && p.curIsWord(config.WordOrElse) {
		tok := p.cur
		p.advance()
		right := p.parseAndAlso()
		if p.failed() {
			return nil
		}
		left = &ast.OrElse{Token: tok, Left: left, Right: right}
	}
	return left
}

// level 7: andalso (left-associative)
func (p *Parser) parseAndAlso() ast.Expression {
	left := p.parseComparison()
	for !p.failed() && p.curIsWord(config.WordAndAlso) {
		tok := p.cur
		p.advance()
		right := p.parseComparison()
		if p.failed() {
			return nil
		}
		left = &ast.AndAlso{Token: tok, Left: left, Right: right}
	}
	return left
}

// level 8: = <> < <= > >= (non-associative: at most one)
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseCons()
	if p.failed() {
		return nil
	}
	tok := p.cur
	var build func(token.Token, ast.Expression, ast.Expression) ast.Expression
	switch tok.Type {
	case token.EQ:
		build = func(t token.Token, l, r ast.Expression) ast.Expression { return &ast.Eq{Token: t, Left: l, Right: r} }
	case token.NEQ:
		build = func(t token.Token, l, r ast.Expression) ast.Expression { return &ast.Neq{Token: t, Left: l, Right: r} }
	case token.LT:
		build = func(t token.Token, l, r ast.Expression) ast.Expression { return &ast.Less{Token: t, Left: l, Right: r} }
	case token.LE:
		build = func(t token.Token, l, r ast.Expression) ast.Expression { return &ast.LessEq{Token: t, Left: l, Right: r} }
	case token.GT:
		build = func(t token.Token, l, r ast.Expression) ast.Expression { return &ast.Greater{Token: t, Left: l, Right: r} }
	case token.GE:
		build = func(t token.Token, l, r ast.Expression) ast.Expression { return &ast.GreaterEq{Token: t, Left: l, Right: r} }
	default:
		return left
	}
	p.advance()
	right := p.parseCons()
	if p.failed() {
		return nil
	}
	result := build(tok, left, right)
	if isComparisonOp(p.cur.Type) {
		p.fail(diagnostics.ErrP001, "end of comparison", p.cur.Lexeme)
		return nil
	}
	return result
}

func isComparisonOp(tt token.TokenType) bool {
	switch tt {
	case token.EQ, token.NEQ, token.LT, token.LE, token.GT, token.GE:
		return true
	default:
		return false
	}
}

// level 9: :: (right-associative)
func (p *Parser) parseCons() ast.Expression {
	left := p.parseAdditive()
	if p.failed() || p.cur.Type != token.CONS {
		return left
	}
	tok := p.cur
	p.advance()
	right := p.parseCons()
	if p.failed() {
		return nil
	}
	return &ast.Cons{Token: tok, Left: left, Right: right}
}

// level 10: + - (left-associative)
func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for !p.failed() && (p.cur.Type == token.PLUS || p.cur.Type == token.MINUS) {
		tok := p.cur
		p.advance()
		right := p.parseMultiplicative()
		if p.failed() {
			return nil
		}
		if tok.Type == token.PLUS {
			left = &ast.Add{Token: tok, Left: left, Right: right}
		} else {
			left = &ast.Sub{Token: tok, Left: left, Right: right}
		}
	}
	return left
}

// level 11: * / % (left-associative)
func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseApplication()
	for !p.failed() && (p.cur.Type == token.ASTERISK || p.cur.Type == token.SLASH || p.cur.Type == token.PERCENT) {
		tok := p.cur
		p.advance()
		right := p.parseApplication()
		if p.failed() {
			return nil
		}
		switch tok.Type {
		case token.ASTERISK:
			left = &ast.Mul{Token: tok, Left: left, Right: right}
		case token.SLASH:
			left = &ast.Div{Token: tok, Left: left, Right: right}
		default:
			left = &ast.Mod{Token: tok, Left: left, Right: right}
		}
	}
	return left
}

// level 12: application by juxtaposition (left-associative)
func (p *Parser) parseApplication() ast.Expression {
	left := p.parsePrefix()
	for !p.failed() && canStartAtom(p.cur) {
		tok := p.cur
		arg := p.parsePrefix()
		if p.failed() {
			return nil
		}
		left = &ast.App{Token: tok, Fn: left, Arg: arg}
	}
	return left
}

// canStartAtom implements §4.2's juxtaposition lookahead: the next
// token may begin another application operand only if it's an integer
// literal, an identifier (which covers the true/false/nil/ref/not
// word-identifiers, lexed as IDENT), or one of the fixed symbol/prefix
// lexemes. The andalso/orelse word-identifiers are infix operators, so
// they end an application instead of supplying its argument.
func canStartAtom(tok token.Token) bool {
	switch tok.Type {
	case token.INT, token.LPAREN, token.TILDE, token.BANG:
		return true
	case token.IDENT:
		return tok.Lexeme != config.WordAndAlso && tok.Lexeme != config.WordOrElse
	default:
		return false
	}
}

// level 13: not ~ ! ref
func (p *Parser) parsePrefix() ast.Expression {
	if p.failed() {
		return nil
	}
	switch {
	case p.curIsWord(config.WordNot):
		tok := p.cur
		p.advance()
		expr := p.parsePrefix()
		if p.failed() {
			return nil
		}
		return &ast.Not{Token: tok, Expr: expr}
	case p.cur.Type == token.TILDE:
		tok := p.cur
		p.advance()
		expr := p.parsePrefix()
		if p.failed() {
			return nil
		}
		return &ast.Neg{Token: tok, Expr: expr}
	case p.cur.Type == token.BANG:
		tok := p.cur
		p.advance()
		expr := p.parsePrefix()
		if p.failed() {
			return nil
		}
		return &ast.Deref{Token: tok, Expr: expr}
	case p.curIsWord(config.WordRef):
		tok := p.cur
		p.advance()
		expr := p.parsePrefix()
		if p.failed() {
			return nil
		}
		return &ast.Ref{Token: tok, Expr: expr}
	default:
		return p.parseAtom()
	}
}

// level 14: integer literal, true, false, nil, identifier, (), (e), (e1, e2)
func (p *Parser) parseAtom() ast.Expression {
	if p.failed() {
		return nil
	}
	tok := p.cur
	switch tok.Type {
	case token.INT:
		p.advance()
		return &ast.IntLit{Token: tok, Value: tok.Literal.(int64)}
	case token.IDENT:
		p.advance()
		switch tok.Lexeme {
		case config.WordTrue:
			return &ast.BoolLit{Token: tok, Value: true}
		case config.WordFalse:
			return &ast.BoolLit{Token: tok, Value: false}
		case config.WordNil:
			return &ast.Nil{Token: tok}
		default:
			return &ast.Name{Token: tok, Value: tok.Lexeme}
		}
	case token.LPAREN:
		return p.parseParenthesised()
	default:
		p.fail(diagnostics.ErrP003, tok.Lexeme)
		return nil
	}
}

func (p *Parser) parseParenthesised() ast.Expression {
	tok := p.cur
	p.advance()
	if p.cur.Type == token.RPAREN {
		p.advance()
		return &ast.Unit{Token: tok}
	}
	first := p.parseLet()
	if p.failed() {
		return nil
	}
	if p.cur.Type == token.COMMA {
		p.advance()
		second := p.parseLet()
		if p.failed() {
			return nil
		}
		p.expect(token.RPAREN)
		if p.failed() {
			return nil
		}
		return &ast.Pair{Token: tok, Left: first, Right: second}
	}
	p.expect(token.RPAREN)
	if p.failed() {
		return nil
	}
	return &ast.Group{Token: tok, Expr: first}
}
