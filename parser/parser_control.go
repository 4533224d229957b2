package parser

import (
	"github.com/akashmaji946/rugo/ast"
	"github.com/akashmaji946/rugo/lexer"
)

// parseIfExpression unifies the if/elsif/else chain: each elsif
// reparses as the Consequent of the prior IfNode, and a trailing else
// becomes the innermost Consequent (spec.md §4.3).
func parseIfExpression(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // 'if'
	predicate := p.parseExpression(PrecNone)
	p.match(lexer.KeywordThen)
	stmts := p.parseStatements(ContextIf)
	p.popContext()
	consequent := p.parseIfTail()
	end := p.previous.Span
	return ast.NewIfNode(start.Union(end), predicate, stmts, consequent)
}

// parseIfTail parses the elsif-chain tail shared by `if` and the
// trailing `else`; consumes the final `end`.
func (p *Parser) parseIfTail() ast.Node {
	if p.check(lexer.KeywordElsif) {
		start := p.current.Span
		p.advance()
		predicate := p.parseExpression(PrecNone)
		p.match(lexer.KeywordThen)
		stmts := p.parseStatements(ContextElsif)
		p.popContext()
		consequent := p.parseIfTail()
		return ast.NewIfNode(start.Union(p.previous.Span), predicate, stmts, consequent)
	}
	if p.check(lexer.KeywordElse) {
		start := p.current.Span
		p.advance()
		stmts := p.parseStatements(ContextElse)
		p.popContext()
		p.expect(lexer.KeywordEnd, "expected 'end' to close 'else'")
		return ast.NewElseNode(start.Union(p.previous.Span), stmts)
	}
	p.expect(lexer.KeywordEnd, "expected 'end' to close 'if'")
	return nil
}

func parseUnlessExpression(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	predicate := p.parseExpression(PrecNone)
	p.match(lexer.KeywordThen)
	stmts := p.parseStatements(ContextUnless)
	p.popContext()
	var elseClause *ast.ElseNode
	if p.check(lexer.KeywordElse) {
		estart := p.current.Span
		p.advance()
		ebody := p.parseStatements(ContextElse)
		p.popContext()
		elseClause = ast.NewElseNode(estart.Union(p.previous.Span), ebody)
	}
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'unless'")
	return ast.NewUnlessNode(start.Union(closing.Span), predicate, stmts, elseClause)
}

func parseWhileExpression(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	predicate := p.parseExpression(PrecNone)
	p.match(lexer.KeywordDo)
	stmts := p.parseStatements(ContextWhile)
	p.popContext()
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'while'")
	return ast.NewWhileNode(start.Union(closing.Span), predicate, stmts)
}

func parseUntilExpression(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	predicate := p.parseExpression(PrecNone)
	p.match(lexer.KeywordDo)
	stmts := p.parseStatements(ContextUntil)
	p.popContext()
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'until'")
	return ast.NewUntilNode(start.Union(closing.Span), predicate, stmts)
}

// parseForExpression pushes the enclosing scope again (pushSharedScope)
// for its target and body, the same way blocks do.
func parseForExpression(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	p.pushSharedScope()
	target := p.parseForTarget()
	p.expect(lexer.KeywordIn, "expected 'in' in 'for' loop")
	iterable := p.parseExpression(PrecNone)
	p.match(lexer.KeywordDo)
	stmts := p.parseStatements(ContextFor)
	p.popContext()
	p.popScope()
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'for'")
	return ast.NewForNode(start.Union(closing.Span), target, iterable, stmts)
}

func (p *Parser) parseForTarget() ast.Node {
	first := p.parseForTargetOne()
	if !p.check(lexer.Comma) {
		return first
	}
	targets := []ast.Node{first}
	for p.match(lexer.Comma) {
		targets = append(targets, p.parseForTargetOne())
	}
	return ast.NewMultiTargetNode(first.Span().Union(p.previous.Span), targets)
}

func (p *Parser) parseForTargetOne() ast.Node {
	if p.check(lexer.Star) {
		start := p.current.Span
		p.advance()
		if p.check(lexer.Identifier) {
			t := p.current
			p.advance()
			p.declareLocal(string(t.Value))
			return ast.NewSplatNode(start.Union(t.Span), ast.NewLocalVariableWriteNode(t.Span, string(t.Value), nil))
		}
		return ast.NewSplatNode(start, nil)
	}
	t := p.expect(lexer.Identifier, "expected a local variable name in 'for'")
	name := string(t.Value)
	p.declareLocal(name)
	return ast.NewLocalVariableWriteNode(t.Span, name, nil)
}

// parseCaseExpression covers both `case EXPR; when ...` and the
// caseless `case; when ...` form.
func parseCaseExpression(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	var predicate ast.Node
	if !p.check(lexer.Newline) && !p.check(lexer.KeywordWhen) {
		predicate = p.parseExpression(PrecNone)
	}
	for p.match(lexer.Newline) || p.match(lexer.Semicolon) {
	}
	var whens []*ast.WhenNode
	for p.check(lexer.KeywordWhen) {
		wstart := p.current.Span
		p.advance()
		conds := []ast.Node{p.parseArgumentItem()}
		for p.match(lexer.Comma) {
			conds = append(conds, p.parseArgumentItem())
		}
		p.match(lexer.KeywordThen)
		body := p.parseStatements(ContextWhen)
		p.popContext()
		whens = append(whens, ast.NewWhenNode(wstart.Union(p.previous.Span), conds, body))
	}
	var elseClause *ast.ElseNode
	if p.check(lexer.KeywordElse) {
		estart := p.current.Span
		p.advance()
		body := p.parseStatements(ContextElse)
		p.popContext()
		elseClause = ast.NewElseNode(estart.Union(p.previous.Span), body)
	}
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'case'")
	return ast.NewCaseNode(start.Union(closing.Span), predicate, whens, elseClause)
}

// parseBeginExpression parses `begin STATEMENTS [rescue...][else...]
// [ensure...] end`, chaining multiple rescue clauses the same way
// IfNode chains elsif.
func parseBeginExpression(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	stmts := p.parseStatements(ContextBegin)
	p.popContext()
	rescue := p.parseRescueChain()
	var elseClause *ast.ElseNode
	if p.check(lexer.KeywordElse) {
		estart := p.current.Span
		p.advance()
		body := p.parseStatements(ContextElse)
		p.popContext()
		elseClause = ast.NewElseNode(estart.Union(p.previous.Span), body)
	}
	var ensure *ast.EnsureNode
	if p.check(lexer.KeywordEnsure) {
		estart := p.current.Span
		p.advance()
		body := p.parseStatements(ContextEnsure)
		p.popContext()
		ensure = ast.NewEnsureNode(estart.Union(p.previous.Span), body)
	}
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'begin'")
	return ast.NewBeginNode(start.Union(closing.Span), stmts, rescue, elseClause, ensure)
}

func (p *Parser) parseRescueChain() *ast.RescueNode {
	if !p.check(lexer.KeywordRescue) {
		return nil
	}
	start := p.current.Span
	p.advance()
	var exceptions []ast.Node
	var reference ast.Node
	if p.startsExpression() && !p.check(lexer.HashRocket) {
		exceptions = append(exceptions, p.parseExpression(PrecAssignment+1))
		for p.match(lexer.Comma) {
			exceptions = append(exceptions, p.parseExpression(PrecAssignment+1))
		}
	}
	if p.match(lexer.HashRocket) {
		reference = p.parseExpression(PrecAssignment + 1)
	}
	p.match(lexer.KeywordThen)
	body := p.parseStatements(ContextRescue)
	p.popContext()
	consequent := p.parseRescueChain()
	return ast.NewRescueNode(start.Union(p.previous.Span), exceptions, reference, body, consequent)
}

// parseClassOrSclass distinguishes `class << EXPR ... end` (Sclass)
// from `class NAME [< SUPER] ... end`.
func parseClassOrSclass(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // 'class'
	if p.match(lexer.LessLess) {
		expr := p.parseExpression(PrecNone)
		scope := p.pushScope()
		body := p.parseStatements(ContextSclass)
		p.popScope()
		p.popContext()
		closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'class <<'")
		return ast.NewSclassNode(start.Union(closing.Span), expr, scope, body)
	}
	path := p.parseConstantPathTarget()
	var superclass ast.Node
	if p.match(lexer.Less) {
		superclass = p.parseExpression(PrecNone)
	}
	scope := p.pushScope()
	body := p.parseStatements(ContextClass)
	p.popScope()
	p.popContext()
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'class'")
	return ast.NewClassNode(start.Union(closing.Span), path, superclass, scope, body)
}

func parseModule(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	path := p.parseConstantPathTarget()
	scope := p.pushScope()
	body := p.parseStatements(ContextModule)
	p.popScope()
	p.popContext()
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'module'")
	return ast.NewModuleNode(start.Union(closing.Span), path, scope, body)
}

// parseConstantPathTarget parses a bare `Name`, `::Name`, or
// `Parent::Name` path used as a class/module header or the left side
// of an `alias`-style declaration.
func (p *Parser) parseConstantPathTarget() ast.Node {
	var left ast.Node
	if p.match(lexer.ColonColon) {
		name := p.expect(lexer.Constant, "expected a constant name")
		left = ast.NewConstantPathNode(name.Span, nil, string(name.Value))
	} else {
		name := p.expect(lexer.Constant, "expected a constant name")
		left = ast.NewConstantReadNode(name)
	}
	for p.check(lexer.ColonColon) {
		p.advance()
		name := p.expect(lexer.Constant, "expected a constant name after '::'")
		left = ast.NewConstantPathNode(left.Span().Union(name.Span), left, string(name.Value))
	}
	return left
}

// parseDef parses `def name(params) ... end`, the singleton form
// `def self.name ... end` / `def obj.name ... end`, and the endless
// form `def name(params) = expr`.
func parseDef(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // 'def'

	name, receiver, endlessEqualConsumed := p.parseDefNameAndReceiver()
	scope := p.pushScope()

	// parseDefNameAndReceiver already committed to (and consumed) the
	// endless-method '=' when a setter's '(' didn't immediately follow
	// it, since telling the two forms apart needs a second token of
	// lookahead past the '=' that this parser doesn't keep. p.current is
	// already positioned at the body expression in that case.
	if endlessEqualConsumed {
		expr := p.parseExpression(PrecNone)
		p.popScope()
		body := ast.NewStatements(expr.Span(), []ast.Node{expr})
		return ast.NewDefNode(start.Union(expr.Span()), name, receiver, nil, scope, body)
	}

	var params *ast.ParametersNode
	if p.match(lexer.ParenLeft) {
		params = p.parseParameterList(lexer.ParenRight)
		p.expect(lexer.ParenRight, "expected ')' to close parameter list")
	} else if p.startsExpression() && !p.check(lexer.Newline) && !p.check(lexer.Semicolon) && !p.check(lexer.Equal) {
		params = p.parseParameterList(lexer.Newline)
	}

	if p.match(lexer.Equal) {
		expr := p.parseExpression(PrecNone)
		p.popScope()
		body := ast.NewStatements(expr.Span(), []ast.Node{expr})
		return ast.NewDefNode(start.Union(expr.Span()), name, receiver, params, scope, body)
	}

	body := p.parseStatements(ContextDef)
	p.popContext()
	var rescue *ast.RescueNode
	var ensure *ast.EnsureNode
	if p.check(lexer.KeywordRescue) {
		rescue = p.parseRescueChain()
	}
	if p.check(lexer.KeywordEnsure) {
		estart := p.current.Span
		p.advance()
		ebody := p.parseStatements(ContextEnsure)
		p.popContext()
		ensure = ast.NewEnsureNode(estart.Union(p.previous.Span), ebody)
	}
	if rescue != nil || ensure != nil {
		body = ast.NewStatements(body.Span(), []ast.Node{ast.NewBeginNode(body.Span(), body, rescue, nil, ensure)})
	}
	p.popScope()
	closing := p.expect(lexer.KeywordEnd, "expected 'end' to close 'def'")
	return ast.NewDefNode(start.Union(closing.Span), name, receiver, params, scope, body)
}

// parseDefNameAndReceiver reads the method name, handling the
// `self.name` / `Const.name` singleton-method prefix and the operator-
// method and `!`/`?`/`=`-suffixed name forms. Its third return value
// reports whether it already consumed the endless-method's '=' itself
// (see below): callers must skip straight to the body expression when
// it's true, rather than trying to parse a parameter list or match '='
// again.
func (p *Parser) parseDefNameAndReceiver() (string, ast.Node, bool) {
	var receiver ast.Node
	var t lexer.Token
	haveName := false

	if p.check(lexer.KeywordSelf) || p.check(lexer.Constant) || p.check(lexer.Identifier) {
		first := p.current
		p.advance()
		if p.match(lexer.Dot) {
			switch first.Kind {
			case lexer.KeywordSelf:
				receiver = ast.NewSelfNode(first)
			case lexer.Constant:
				receiver = ast.NewConstantReadNode(first)
			default:
				receiver = ast.NewLocalVariableReadNode(first)
			}
		} else {
			t, haveName = first, true
		}
	}

	if !haveName {
		// `[]`/`[]=` as a method name: the lexer merges it into one
		// BracketLeftRight token right after '.' (receiver form), but
		// lexes it as a separate BracketLeft/BracketRight pair in the
		// bare `def [](i)` form, since there's no preceding '.'. Either
		// way a bare '[' here can only start a `[]`/`[]=` name, so the
		// closing ']' is consumed with `expect` (recoverable) instead of
		// a lookahead peek.
		if p.check(lexer.BracketLeftRight) {
			p.advance()
			name := "[]"
			if p.match(lexer.Equal) {
				name = "[]="
			}
			return name, receiver, false
		}
		if p.check(lexer.BracketLeft) {
			p.advance()
			p.expect(lexer.BracketRight, "expected ']' to close '[]' method name")
			name := "[]"
			if p.match(lexer.Equal) {
				name = "[]="
			}
			return name, receiver, false
		}

		t = p.current
		p.advance()
	}

	name := string(t.Value)
	if p.check(lexer.Equal) {
		// A trailing '=' is either a setter-name suffix ('def foo=(v)')
		// or the separator of an endless method with no parameters
		// ('def foo = expr'); telling them apart needs the token after
		// '=', one past what a 1-token lookahead keeps. Consume '='
		// either way, then look at the token it exposes: a '(' means it
		// was the setter suffix and parameter parsing proceeds from
		// here as usual; anything else means it was the endless
		// separator, and the caller is already positioned at the body.
		p.advance()
		if p.check(lexer.ParenLeft) {
			return name + "=", receiver, false
		}
		return name, receiver, true
	}
	return name, receiver, false
}
