package parser

import (
	"github.com/akashmaji946/rugo/ast"
	"github.com/akashmaji946/rugo/lexer"
)

// parseParenthesizedArguments parses `(args)` immediately following a
// call name or receiver.
func (p *Parser) parseParenthesizedArguments() *ast.ArgumentsNode {
	start := p.current.Span
	p.advance() // '('
	var args []ast.Node
	for !p.check(lexer.ParenRight) && !p.check(lexer.EOF) {
		for p.match(lexer.Newline) {
		}
		if p.check(lexer.ParenRight) {
			break
		}
		args = append(args, p.parseArgumentItem())
		for p.match(lexer.Newline) {
		}
		if !p.match(lexer.Comma) {
			break
		}
	}
	for p.match(lexer.Newline) {
	}
	closing := p.expect(lexer.ParenRight, "expected ')' to close argument list")
	return ast.NewArgumentsNode(start.Union(closing.Span), args)
}

// tryParseBlock parses a trailing `{ ... }` or `do ... end` block if
// present, returning nil otherwise. `{` binds to the nearest call
// (highest precedence); `do` binds to the outermost (command-call)
// receiver — both are treated identically here since the parser
// attaches the block to whatever CallNode is being built at the call
// site.
func (p *Parser) tryParseBlock() ast.Node {
	if p.check(lexer.BraceLeft) {
		start := p.current.Span
		p.advance()
		params := p.tryParseBlockParameters()
		scope := p.pushSharedScope()
		body := p.parseStatements(ContextBlockBrace)
		p.popContext()
		p.popScope()
		closing := p.expect(lexer.BraceRight, "expected '}' to close block")
		return ast.NewBlockNode(start.Union(closing.Span), params, scope, body)
	}
	if p.check(lexer.KeywordDo) {
		start := p.current.Span
		p.advance()
		params := p.tryParseBlockParameters()
		scope := p.pushSharedScope()
		body := p.parseStatements(ContextBlockDo)
		p.popContext()
		p.popScope()
		closing := p.expect(lexer.KeywordEnd, "expected 'end' to close block")
		return ast.NewBlockNode(start.Union(closing.Span), params, scope, body)
	}
	return nil
}

// tryParseBlockParameters parses `|a, b|` if present.
func (p *Parser) tryParseBlockParameters() *ast.ParametersNode {
	if !p.match(lexer.Pipe) {
		return nil
	}
	params := p.parseParameterList(lexer.Pipe)
	p.expect(lexer.Pipe, "expected '|' to close block parameters")
	return params
}

// parseParameterList parses the comma-separated parameter list shared
// by def, lambda, and block forms, stopping at terminator (spec.md
// §4.3's fixed ordering: required, optional, rest, post-rest required,
// keyword, keyword-rest, block, forwarding).
func (p *Parser) parseParameterList(terminator lexer.TokenKind) *ast.ParametersNode {
	start := p.current.Span
	var requireds, posts []ast.Node
	var optionals []*ast.OptionalParameterNode
	var rest *ast.RestParameterNode
	var keywords []*ast.KeywordParameterNode
	var keywordRest ast.Node
	var block *ast.BlockParameterNode
	var forwardingAll *ast.ForwardingParameterNode
	seenRest := false

	for !p.check(terminator) && !p.check(lexer.EOF) && !p.check(lexer.ParenRight) {
		switch p.current.Kind {
		case lexer.DotDotDot:
			t := p.current
			p.advance()
			forwardingAll = ast.NewForwardingParameterNode(t)
		case lexer.Star:
			rstart := p.current.Span
			p.advance()
			name := ""
			if p.check(lexer.Identifier) {
				t := p.current
				p.advance()
				name = string(t.Value)
				p.declareLocal(name)
			}
			rest = ast.NewRestParameterNode(rstart.Union(p.previous.Span), name)
			seenRest = true
		case lexer.StarStar:
			rstart := p.current.Span
			p.advance()
			if p.check(lexer.KeywordNil) {
				p.advance()
				keywordRest = ast.NewNoKeywordsParameterNode(rstart.Union(p.previous.Span))
				break
			}
			name := ""
			if p.check(lexer.Identifier) {
				t := p.current
				p.advance()
				name = string(t.Value)
				p.declareLocal(name)
			}
			keywordRest = ast.NewKeywordRestParameterNode(rstart.Union(p.previous.Span), name)
		case lexer.Ampersand:
			bstart := p.current.Span
			p.advance()
			name := ""
			if p.check(lexer.Identifier) {
				t := p.current
				p.advance()
				name = string(t.Value)
				p.declareLocal(name)
			}
			block = ast.NewBlockParameterNode(bstart.Union(p.previous.Span), name)
		case lexer.Label:
			t := p.current
			p.advance()
			name := string(labelName(t.Value))
			p.declareLocal(name)
			var value ast.Node
			if p.startsExpression() && !p.check(lexer.Comma) {
				value = p.parseExpression(PrecAssignment + 1)
			}
			keywords = append(keywords, ast.NewKeywordParameterNode(t.Span, name, value))
		case lexer.Identifier:
			t := p.current
			p.advance()
			name := string(t.Value)
			p.declareLocal(name)
			if p.match(lexer.Equal) {
				value := p.parseExpression(PrecAssignment + 1)
				optionals = append(optionals, ast.NewOptionalParameterNode(t.Span.Union(value.Span()), name, value))
			} else if seenRest {
				posts = append(posts, ast.NewRequiredParameterNode(t))
			} else {
				requireds = append(requireds, ast.NewRequiredParameterNode(t))
			}
		default:
			p.diagnostics.Add(p.current.Span, "unexpected token in parameter list")
			p.enterRecovery()
			p.advance()
		}
		if !p.match(lexer.Comma) {
			break
		}
		for p.match(lexer.Newline) {
		}
	}
	return ast.NewParametersNode(start.Union(p.previous.Span), requireds, optionals, rest, posts, keywords, keywordRest, block, forwardingAll)
}
