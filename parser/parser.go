/*
File    : rugo/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements the binding-power-driven Pratt parser
// described in spec.md §4.3: prefix/infix dispatch tables keyed by
// lexer.TokenKind, a context stack that knows each construct's
// terminator set, and a scope stack for local-vs-call disambiguation.
// Every parse produces a Program, even on catastrophic input; errors
// accumulate in a diag.List instead of aborting (spec.md §7).
package parser

import (
	"github.com/akashmaji946/rugo/ast"
	"github.com/akashmaji946/rugo/diag"
	"github.com/akashmaji946/rugo/lexer"
)

// Precedence is a Pratt binding power. Ordering mirrors spec.md §4.3
// exactly; higher binds tighter.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecBraces
	PrecModifier
	PrecComposition
	PrecNot
	PrecDefined
	PrecAssignment // right-associative
	PrecModifierRescue
	PrecTernary // right-associative
	PrecRange
	PrecLogicalOr
	PrecLogicalAnd
	PrecEquality   // right-associative
	PrecComparison // right-associative
	PrecBitwiseOr  // right-associative
	PrecBitwiseAnd // right-associative
	PrecShift      // right-associative
	PrecTerm
	PrecFactor
	PrecUnaryMinus
	PrecExponent // right-associative
	PrecUnary
	PrecIndex
	PrecCall
)

// Context is the enclosing-construct tag pushed while parsing a
// statement list, used to decide when the list ends (spec.md §4.3's
// "Contexts and terminators" table).
type Context int

const (
	ContextMain Context = iota
	ContextModule
	ContextClass
	ContextSclass
	ContextDef
	ContextWhile
	ContextUntil
	ContextFor
	ContextIf
	ContextUnless
	ContextElsif
	ContextElse
	ContextBegin
	ContextRescue
	ContextEnsure
	ContextEmbexpr
	ContextPreexe
	ContextPostexe
	ContextParens
	ContextBlockBrace
	ContextBlockDo
	ContextCase
	ContextWhen
)

// prefixParseFunc parses a construct that can start an expression.
type prefixParseFunc func(p *Parser) ast.Node

// infixParseFunc parses a construct continuing from an already-parsed
// left operand.
type infixParseFunc func(p *Parser, left ast.Node) ast.Node

// Parser walks a token stream (fed by one lexer.Lexer, with one token
// of lookahead) and builds an *ast.Program. It is not safe for
// concurrent use; distinct Parsers over disjoint sources are
// independent (spec.md §5).
type Parser struct {
	lex *lexer.Lexer

	previous lexer.Token
	current  lexer.Token

	contexts []Context
	scopes   *ast.ScopeStack

	diagnostics diag.List
	recovering  bool
	// recoverContextDepth is the contexts-stack depth at the time
	// `recovering` was set; it clears once popping back to that depth
	// and seeing that frame's terminator (spec.md §4.3's
	// "context_recoverable").
	recoverContextDepth int

	prefix map[lexer.TokenKind]prefixParseFunc
	infix  map[lexer.TokenKind]infixParseFunc
	prec   map[lexer.TokenKind]Precedence
}

// New builds a Parser over src, ready to call Parse.
func New(src []byte) *Parser {
	p := &Parser{
		lex:    lexer.New(src),
		scopes: ast.NewScopeStack(),
	}
	p.registerPrefix()
	p.registerInfix()
	p.registerPrecedence()
	// Prime current with the first real token (spec.md §4.3: current &
	// previous, 1-token lookahead — no second buffered token).
	p.advance()
	return p
}

// RegisterEncodingDecodeCallback installs fn as the resolver invoked
// when a magic comment names an encoding the built-in table doesn't
// recognize (spec.md §6's parser_register_encoding_decode_callback).
func (p *Parser) RegisterEncodingDecodeCallback(fn lexer.DecodeCallback) {
	p.lex.SetDecodeCallback(fn)
}

// Diagnostics returns every accumulated lex-time and parse-time error
// and warning; once Parse has returned they are sorted by source
// position.
func (p *Parser) Diagnostics() *diag.List { return &p.diagnostics }

// Comments returns the comment list the lexer accumulated transparently
// to the grammar.
func (p *Parser) Comments() []lexer.Comment { return p.lex.Comments() }

// advance shifts the lookahead window forward by one token, skipping
// comment and embedded-document tokens: those reach callers only
// through Comments().
func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.lex.NextToken()
	for k := p.current.Kind; k == lexer.Comment || k == lexer.EmbdocBegin || k == lexer.EmbdocLine || k == lexer.EmbdocEnd; k = p.current.Kind {
		p.current = p.lex.NextToken()
	}
}

// check reports whether the current token has kind.
func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.current.Kind == kind
}

// match consumes and returns true if the current token has kind.
func (p *Parser) match(kind lexer.TokenKind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

// expect requires the current token to have kind; on success it
// consumes and returns it. On failure it reports message at the end of
// the previous token, synthesizes a MISSING token in its place, and
// enters recovery (spec.md §4.3's "Error recovery").
func (p *Parser) expect(kind lexer.TokenKind, message string) lexer.Token {
	if p.check(kind) {
		tok := p.current
		p.advance()
		return tok
	}
	p.diagnostics.Add(lexer.Span{Start: p.previous.Span.End, End: p.previous.Span.End}, message)
	p.enterRecovery()
	return lexer.MissingToken(p.previous.Span.End)
}

// enterRecovery sets the recovering flag, remembering the context
// depth so it can be cleared once control returns to a frame that
// knows how to proceed.
func (p *Parser) enterRecovery() {
	if p.recovering {
		return
	}
	p.recovering = true
	p.recoverContextDepth = len(p.contexts)
}

// maybeClearRecovery clears `recovering` once the current token is the
// terminator of the context at the depth recovery began, i.e. the
// parser has walked back up to a frame that knows how to proceed.
func (p *Parser) maybeClearRecovery() {
	if !p.recovering {
		return
	}
	if len(p.contexts) <= p.recoverContextDepth && p.currentIsContextTerminator() {
		p.recovering = false
	}
}

func (p *Parser) pushContext(c Context) {
	p.contexts = append(p.contexts, c)
}

func (p *Parser) popContext() Context {
	n := len(p.contexts)
	c := p.contexts[n-1]
	p.contexts = p.contexts[:n-1]
	return c
}

func (p *Parser) currentContext() Context {
	if len(p.contexts) == 0 {
		return ContextMain
	}
	return p.contexts[len(p.contexts)-1]
}

// pushScope starts a new local-variable scope (program/def/class/
// module/sclass entry) and returns it so the caller can attach it to the
// node it belongs to.
func (p *Parser) pushScope() *ast.Scope {
	s := ast.NewScope()
	p.scopes.Push(s)
	return s
}

// pushSharedScope pushes the enclosing scope again, for constructs
// (blocks, `for`) whose body shares the surrounding method's locals
// rather than starting a fresh method-level frame.
func (p *Parser) pushSharedScope() *ast.Scope {
	s := p.scopes.Current()
	p.scopes.Push(s)
	return s
}

func (p *Parser) popScope() { p.scopes.Pop() }

// isLocal reports whether name is a declared local in the active scope.
func (p *Parser) isLocal(name string) bool { return p.scopes.IsLocal(name) }

// declareLocal registers name as a local in the active scope.
func (p *Parser) declareLocal(name string) {
	if cur := p.scopes.Current(); cur != nil {
		cur.Add(name)
	}
}
