package config

// SourceFileExt is a conventional extension for SIMPL source files. The
// language does not prescribe one: the CLI reads whatever file it is
// given, and its usage text does not mention an extension.
const SourceFileExt = ".spl"

// Keywords is the reserved-word set of §3, centralized here so the lexer,
// parser, and any future tooling refer to one identifier instead of
// repeating string literals.
var Keywords = []string{"let", "in", "end", "if", "then", "else", "while", "do", "fn", "rec"}

// WordIdentifiers lex as ordinary IDENT tokens (§3: "dispatched
// syntactically by the parser, not the lexer") — unlike Keywords, the
// lexer never reserves these as their own token type. internal/parser
// recognizes them by comparing an IDENT token's lexeme against the
// named constants below, the same way the reference implementation's
// parse_atom/parse_unary/parse_andalso/parse_orelse switch on the raw
// lexeme rather than a reserved token kind.
var WordIdentifiers = []string{WordTrue, WordFalse, WordNil, WordRef, WordNot, WordAndAlso, WordOrElse}

const (
	WordTrue    = "true"
	WordFalse   = "false"
	WordNil     = "nil"
	WordRef     = "ref"
	WordNot     = "not"
	WordAndAlso = "andalso"
	WordOrElse  = "orelse"
)

// Builtin names pre-populated into the initial environments by internal/library.
const (
	BuiltinFst    = "fst"
	BuiltinSnd    = "snd"
	BuiltinHd     = "hd"
	BuiltinTl     = "tl"
	BuiltinSucc   = "succ"
	BuiltinPred   = "pred"
	BuiltinIsZero = "iszero"
)
