package parser

import (
	"github.com/akashmaji946/rugo/ast"
	"github.com/akashmaji946/rugo/lexer"
)

var binaryOperatorNames = map[lexer.TokenKind]string{
	lexer.Plus: "+", lexer.Minus: "-", lexer.Star: "*", lexer.Slash: "/", lexer.Percent: "%",
	lexer.StarStar: "**", lexer.LessLess: "<<", lexer.GreaterGreater: ">>",
	lexer.EqualEqual: "==", lexer.EqualEqualEqual: "===", lexer.BangEqual: "!=",
	lexer.EqualTilde: "=~", lexer.BangTilde: "!~", lexer.Spaceship: "<=>",
	lexer.Less: "<", lexer.LessEqual: "<=", lexer.Greater: ">", lexer.GreaterEqual: ">=",
	lexer.Pipe: "|", lexer.Ampersand: "&", lexer.Caret: "^",
}

var operatorAssignNames = map[lexer.TokenKind]string{
	lexer.PlusEqual: "+", lexer.MinusEqual: "-", lexer.StarEqual: "*", lexer.SlashEqual: "/",
	lexer.PercentEqual: "%", lexer.StarStarEqual: "**", lexer.LessLessEqual: "<<",
	lexer.GreaterGreaterEqual: ">>", lexer.AmpersandEqual: "&", lexer.PipeEqual: "|",
	lexer.CaretEqual: "^",
}

// registerInfix wires every token kind that can continue a left operand
// to its handler (spec.md §4.3's infix-handler rules).
func (p *Parser) registerInfix() {
	p.infix = map[lexer.TokenKind]infixParseFunc{}

	for kind := range binaryOperatorNames {
		p.infix[kind] = parseBinaryOperator
	}
	for kind := range operatorAssignNames {
		p.infix[kind] = parseOperatorAssignment
	}

	p.infix[lexer.AmpersandAmpersand] = parseLogicalAnd
	p.infix[lexer.PipePipe] = parseLogicalOr
	p.infix[lexer.KeywordAnd] = parseLogicalAndKeyword
	p.infix[lexer.KeywordOr] = parseLogicalOrKeyword

	p.infix[lexer.AmpersandAmpersandEqual] = parseAndAssignment
	p.infix[lexer.PipePipeEqual] = parseOrAssignment

	p.infix[lexer.DotDot] = parseRangeInfix
	p.infix[lexer.DotDotDot] = parseRangeInfix

	p.infix[lexer.Equal] = parseAssignment
	p.infix[lexer.Comma] = parseMultiTargetAssignment

	p.infix[lexer.Question] = parseTernary

	p.infix[lexer.Dot] = parseCallChain
	p.infix[lexer.AmpersandDot] = parseCallChain
	p.infix[lexer.ColonColon] = parseScopeOrCallChain

	p.infix[lexer.BracketLeft] = parseIndex
	p.infix[lexer.ParenLeft] = parseCallParens

	p.infix[lexer.KeywordIf] = parseModifierIf
	p.infix[lexer.KeywordUnless] = parseModifierUnless
	p.infix[lexer.KeywordWhile] = parseModifierWhile
	p.infix[lexer.KeywordUntil] = parseModifierUntil
	p.infix[lexer.KeywordRescue] = parseModifierRescue
}

func parseBinaryOperator(p *Parser, left ast.Node) ast.Node {
	t := p.current
	prec := p.precedenceOf(t.Kind)
	p.advance()
	right := p.parseExpression(nextMinPrec(prec, t.Kind))
	name := binaryOperatorNames[t.Kind]
	return ast.NewCallNode(left.Span().Union(right.Span()), left, name, t.Span, ast.NewArgumentsNode(right.Span(), []ast.Node{right}), nil, false)
}

func parseLogicalAnd(p *Parser, left ast.Node) ast.Node {
	p.advance()
	right := p.parseExpression(nextMinPrec(PrecLogicalAnd, lexer.AmpersandAmpersand))
	return ast.NewAndNode(left, right)
}

func parseLogicalOr(p *Parser, left ast.Node) ast.Node {
	p.advance()
	right := p.parseExpression(nextMinPrec(PrecLogicalOr, lexer.PipePipe))
	return ast.NewOrNode(left, right)
}

func parseLogicalAndKeyword(p *Parser, left ast.Node) ast.Node {
	p.advance()
	right := p.parseExpression(nextMinPrec(PrecComposition, lexer.KeywordAnd))
	return ast.NewAndNode(left, right)
}

func parseLogicalOrKeyword(p *Parser, left ast.Node) ast.Node {
	p.advance()
	right := p.parseExpression(nextMinPrec(PrecComposition, lexer.KeywordOr))
	return ast.NewOrNode(left, right)
}

func parseRangeInfix(p *Parser, left ast.Node) ast.Node {
	t := p.current
	exclusive := t.Kind == lexer.DotDotDot
	p.advance()
	if !p.startsExpression() {
		return ast.NewRangeNode(left.Span().Union(t.Span), left, nil, exclusive)
	}
	right := p.parseExpression(PrecRange + 1)
	return ast.NewRangeNode(left.Span().Union(right.Span()), left, right, exclusive)
}

// parseAssignment applies spec.md §4.3's destructive reinterpretation
// of the left operand, then parses the right-hand side at the same
// precedence (assignment is right-associative: `a = b = c`).
func parseAssignment(p *Parser, left ast.Node) ast.Node {
	p.advance() // '='
	value := p.parseExpression(PrecAssignment)
	return p.reinterpretAsAssignmentTarget(left, value, left.Span().Union(value.Span()))
}

func parseOperatorAssignment(p *Parser, left ast.Node) ast.Node {
	t := p.current
	p.advance()
	target := p.targetOf(left)
	value := p.parseExpression(PrecAssignment)
	return ast.NewOperatorAssignmentNode(target.Span().Union(value.Span()), target, operatorAssignNames[t.Kind], value)
}

func parseAndAssignment(p *Parser, left ast.Node) ast.Node {
	p.advance()
	target := p.targetOf(left)
	value := p.parseExpression(PrecAssignment)
	return ast.NewOperatorAndAssignmentNode(target.Span().Union(value.Span()), target, value)
}

func parseOrAssignment(p *Parser, left ast.Node) ast.Node {
	p.advance()
	target := p.targetOf(left)
	value := p.parseExpression(PrecAssignment)
	return ast.NewOperatorOrAssignmentNode(target.Span().Union(value.Span()), target, value)
}

// parseMultiTargetAssignment handles `a, b = 1, 2`: a bare comma at
// Index binding power following a just-parsed target builds up a
// MultiTargetNode, which an immediately-following '=' then turns into
// a write by reinterpreting every element.
func parseMultiTargetAssignment(p *Parser, left ast.Node) ast.Node {
	targets := []ast.Node{left}
	for p.match(lexer.Comma) {
		targets = append(targets, p.parseExpression(PrecIndex))
	}
	multi := ast.NewMultiTargetNode(left.Span().Union(p.previous.Span), targets)
	if !p.match(lexer.Equal) {
		return multi
	}
	var values []ast.Node
	values = append(values, p.parseExpression(PrecAssignment+1))
	for p.match(lexer.Comma) {
		values = append(values, p.parseExpression(PrecAssignment+1))
	}
	reinterpreted := make([]ast.Node, len(targets))
	for i, tgt := range targets {
		var v ast.Node
		if i < len(values) {
			v = values[i]
		} else {
			v = ast.NewMissingNode(p.previous.Span.End)
		}
		reinterpreted[i] = p.reinterpretAsAssignmentTarget(tgt, v, tgt.Span())
	}
	span := multi.Span()
	if len(values) > 0 {
		span = span.Union(values[len(values)-1].Span())
	}
	return ast.NewMultiTargetNode(span, reinterpreted)
}

// parseTernary synthesizes a missing colon and a MissingNode false
// branch if the true-branch's parse recovered, so the error does not
// fan out (spec.md §4.3).
func parseTernary(p *Parser, left ast.Node) ast.Node {
	start := p.current.Span
	p.advance() // '?'
	trueBranch := p.parseExpression(PrecTernary)
	if p.recovering {
		falseBranch := ast.NewMissingNode(p.previous.Span.End)
		return ast.NewTernaryNode(left.Span().Union(start), left, trueBranch, falseBranch)
	}
	p.expect(lexer.Colon, "expected ':' in ternary expression")
	falseBranch := p.parseExpression(PrecTernary)
	return ast.NewTernaryNode(left.Span().Union(falseBranch.Span()), left, trueBranch, falseBranch)
}

// parseCallChain handles `.`, `&.` (safe navigation): `foo.(args)`
// desugars to method name "call"; `foo.bar = x` is left as a
// zero-argument call for parseAssignment's reinterpretation to
// suffix with '='; `foo[]`-style aref after dot is handled by
// parseIndex once this returns.
func parseCallChain(p *Parser, left ast.Node) ast.Node {
	opTok := p.current
	safeNav := opTok.Kind == lexer.AmpersandDot
	p.advance()
	return finishMemberAccess(p, left, opTok, safeNav)
}

// finishMemberAccess reads whatever comes after an already-consumed
// '.'/'&.'/'::' operator token: a `.(args)` call, a `[]`/`[]=` method
// name, or a plain name optionally followed by parens and/or a block.
// Shared by parseCallChain and parseScopeOrCallChain's non-Constant
// fallback so both read the same grammar past the operator.
func finishMemberAccess(p *Parser, left ast.Node, opTok lexer.Token, safeNav bool) ast.Node {
	if p.check(lexer.ParenLeft) {
		args := p.parseParenthesizedArguments()
		block := p.tryParseBlock()
		return ast.NewCallNode(left.Span().Union(p.previous.Span), left, "call", opTok.Span, args, block, safeNav)
	}

	name, isBracket := p.parseMethodNameToken()
	if isBracket {
		nameSuffix := "[]"
		if p.match(lexer.Equal) {
			nameSuffix = "[]="
		}
		return ast.NewCallNode(left.Span().Union(p.previous.Span), left, nameSuffix, opTok.Span, nil, nil, safeNav)
	}

	if p.check(lexer.ParenLeft) {
		args := p.parseParenthesizedArguments()
		block := p.tryParseBlock()
		return ast.NewCallNode(left.Span().Union(p.previous.Span), left, name, opTok.Span, args, block, safeNav)
	}

	block := p.tryParseBlock()
	return ast.NewCallNode(left.Span().Union(p.previous.Span), left, name, opTok.Span, nil, block, safeNav)
}

// parseMethodNameToken reads one method-name token after '.'/'::', a
// context where keywords are always method names rather than
// statement starters (spec.md's "previous vs current" design note).
// The lexer emits `[]` immediately following '.' as a single
// BracketLeftRight token rather than a BracketLeft/BracketRight pair.
func (p *Parser) parseMethodNameToken() (string, bool) {
	if p.check(lexer.BracketLeftRight) {
		p.advance()
		return "[]", true
	}
	t := p.current
	p.advance()
	return string(t.Value), false
}

// parseScopeOrCallChain handles `::` after a left operand. '::' is
// consumed first, then the decision is made on whatever that exposes as
// the new current token: a Constant commits to a path/call read through
// '::' (a trailing '(' makes it a call, e.g. `Foo::Bar(args)`); anything
// else (a lowercase method name) is read the same way a '.' method call
// would be, via finishMemberAccess.
func parseScopeOrCallChain(p *Parser, left ast.Node) ast.Node {
	opTok := p.current
	p.advance() // '::'

	if p.check(lexer.Constant) {
		name := p.current
		p.advance()
		if !p.check(lexer.ParenLeft) {
			return ast.NewConstantPathNode(left.Span().Union(name.Span), left, string(name.Value))
		}
		args := p.parseParenthesizedArguments()
		block := p.tryParseBlock()
		return ast.NewCallNode(left.Span().Union(p.previous.Span), left, string(name.Value), opTok.Span, args, block, false)
	}

	return finishMemberAccess(p, left, opTok, false)
}

func parseIndex(p *Parser, left ast.Node) ast.Node {
	start := p.current.Span
	p.advance() // '['
	var args []ast.Node
	for !p.check(lexer.BracketRight) && !p.check(lexer.EOF) {
		args = append(args, p.parseArgumentItem())
		if !p.match(lexer.Comma) {
			break
		}
	}
	closing := p.expect(lexer.BracketRight, "expected ']'")
	name := "[]"
	argsNode := ast.NewArgumentsNode(start.Union(closing.Span), args)
	if p.match(lexer.Equal) {
		name = "[]="
		value := p.parseExpression(PrecAssignment)
		argsNode = ast.NewArgumentsNode(start.Union(value.Span()), append(args, value))
		return ast.NewCallNode(left.Span().Union(value.Span()), left, name, start, argsNode, nil, false)
	}
	return ast.NewCallNode(left.Span().Union(closing.Span), left, name, start, argsNode, nil, false)
}

// parseCallParens handles `foo (args)` where foo already parsed as a
// left operand (e.g. a local variable holding a callable) immediately
// followed by '(' — desugars to `foo.call(args)`.
func parseCallParens(p *Parser, left ast.Node) ast.Node {
	args := p.parseParenthesizedArguments()
	block := p.tryParseBlock()
	return ast.NewCallNode(left.Span().Union(p.previous.Span), left, "call", lexer.Span{}, args, block, false)
}

// parseModifierIf/Unless/While/Until wrap the left expression in a
// one-statement Statements node and build the conditional/loop node,
// per spec.md §4.3's statement-modifier rule.
func parseModifierIf(p *Parser, left ast.Node) ast.Node {
	p.advance()
	predicate := p.parseExpression(PrecModifier)
	stmts := ast.NewStatements(left.Span(), []ast.Node{left})
	return ast.NewIfNode(left.Span().Union(predicate.Span()), predicate, stmts, nil)
}

func parseModifierUnless(p *Parser, left ast.Node) ast.Node {
	p.advance()
	predicate := p.parseExpression(PrecModifier)
	stmts := ast.NewStatements(left.Span(), []ast.Node{left})
	return ast.NewUnlessNode(left.Span().Union(predicate.Span()), predicate, stmts, nil)
}

func parseModifierWhile(p *Parser, left ast.Node) ast.Node {
	p.advance()
	predicate := p.parseExpression(PrecModifier)
	stmts := ast.NewStatements(left.Span(), []ast.Node{left})
	return ast.NewWhileNode(left.Span().Union(predicate.Span()), predicate, stmts)
}

func parseModifierUntil(p *Parser, left ast.Node) ast.Node {
	p.advance()
	predicate := p.parseExpression(PrecModifier)
	stmts := ast.NewStatements(left.Span(), []ast.Node{left})
	return ast.NewUntilNode(left.Span().Union(predicate.Span()), predicate, stmts)
}

// parseModifierRescue is `expr rescue fallback`: sugar for a begin/
// rescue with no named exception class and no reference.
func parseModifierRescue(p *Parser, left ast.Node) ast.Node {
	p.advance()
	fallback := p.parseExpression(PrecModifierRescue)
	body := ast.NewStatements(left.Span(), []ast.Node{left})
	rescueBody := ast.NewStatements(fallback.Span(), []ast.Node{fallback})
	rescue := ast.NewRescueNode(fallback.Span(), nil, nil, rescueBody, nil)
	return ast.NewBeginNode(left.Span().Union(fallback.Span()), body, rescue, nil, nil)
}
