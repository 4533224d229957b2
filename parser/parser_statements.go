package parser

import (
	"github.com/akashmaji946/rugo/ast"
	"github.com/akashmaji946/rugo/lexer"
)

// Parse runs the whole program to completion and returns the root node,
// copying every lex-time diagnostic into the parser's own list first so
// callers see both in source order (spec.md §6's parse() contract:
// always returns a non-nil Program, errors live in Diagnostics()).
func (p *Parser) Parse() *ast.Program {
	locals := p.pushScope()
	body := p.parseStatements(ContextMain)
	p.popScope()
	p.diagnostics.AddLexerDiagnostics(p.lex.Diagnostics())
	return ast.NewProgram(body, locals)
}

// parseStatements pushes context and repeatedly parses one expression
// statement until the context's terminator is reached — the loop
// spec.md §4.3 describes. The context is still pushed on return; each
// caller pops it.
func (p *Parser) parseStatements(context Context) *ast.Statements {
	start := p.current.Span
	p.pushContext(context)
	var body []ast.Node
	for !p.contextTerminatorReached(context) && !p.check(lexer.EOF) {
		for p.match(lexer.Newline) || p.match(lexer.Semicolon) {
		}
		if p.contextTerminatorReached(context) || p.check(lexer.EOF) {
			break
		}
		stmt := p.parseExpression(PrecNone)
		body = append(body, stmt)
		p.maybeClearRecovery()
		if !p.check(lexer.EOF) && !p.contextTerminatorReached(context) {
			if !p.match(lexer.Newline) && !p.match(lexer.Semicolon) {
				// No separator and no terminator: report once and
				// resynchronize by consuming a token, to avoid looping
				// forever on unexpected input.
				p.diagnostics.Add(p.current.Span, "expected a newline or ';' between statements")
				p.enterRecovery()
				if !p.check(lexer.EOF) {
					p.advance()
				}
			}
		}
	}
	end := p.previous.Span
	if len(body) == 0 {
		end = start
	}
	return ast.NewStatements(lexer.Span{Start: start.Start, End: end.End}, body)
}

// contextTerminatorReached reports whether the current token ends the
// statement list for context, per spec.md §4.3's terminator table.
func (p *Parser) contextTerminatorReached(context Context) bool {
	k := p.current.Kind
	switch context {
	case ContextMain:
		return k == lexer.EOF
	case ContextModule, ContextClass, ContextSclass, ContextDef,
		ContextWhile, ContextUntil, ContextFor, ContextElse, ContextEnsure:
		return k == lexer.KeywordEnd
	case ContextIf, ContextUnless, ContextElsif:
		return k == lexer.KeywordElse || k == lexer.KeywordElsif || k == lexer.KeywordEnd
	case ContextBegin:
		return k == lexer.KeywordEnd || k == lexer.KeywordRescue || k == lexer.KeywordEnsure || k == lexer.KeywordElse
	case ContextRescue:
		return k == lexer.KeywordEnd || k == lexer.KeywordRescue || k == lexer.KeywordEnsure || k == lexer.KeywordElse
	case ContextEmbexpr:
		return k == lexer.EmbexprEnd
	case ContextPreexe, ContextPostexe:
		return k == lexer.BraceRight
	case ContextParens:
		return k == lexer.ParenRight
	case ContextBlockBrace:
		return k == lexer.BraceRight
	case ContextBlockDo:
		return k == lexer.KeywordEnd
	case ContextCase:
		return k == lexer.KeywordEnd || k == lexer.KeywordWhen || k == lexer.KeywordElse
	case ContextWhen:
		return k == lexer.KeywordEnd || k == lexer.KeywordWhen || k == lexer.KeywordElse
	}
	return k == lexer.EOF
}

// currentIsContextTerminator is the predicate enterRecovery/maybeClear-
// Recovery use: whether the current token is a terminator of the
// innermost open context frame (used once popped back to the recording
// depth).
func (p *Parser) currentIsContextTerminator() bool {
	return p.contextTerminatorReached(p.currentContext())
}
