package parser

import (
	"github.com/akashmaji946/rugo/ast"
	"github.com/akashmaji946/rugo/lexer"
	rgxp "github.com/akashmaji946/rugo/regexp"
)

// registerPrefix wires every token kind that can begin an expression to
// its handler (spec.md §4.3's prefix-handler list).
func (p *Parser) registerPrefix() {
	p.prefix = map[lexer.TokenKind]prefixParseFunc{
		lexer.Integer:   parseIntegerLiteral,
		lexer.Float:     parseFloatLiteral,
		lexer.Rational:  parseRationalLiteral,
		lexer.Imaginary: parseImaginaryLiteral,

		lexer.Identifier:        parseIdentifier,
		lexer.Constant:          parseConstant,
		lexer.InstanceVariable:  parseInstanceVariable,
		lexer.ClassVariable:     parseClassVariable,
		lexer.GlobalVariable:    parseGlobalVariable,
		lexer.ColonColon:        parseTopLevelConstantPath,

		lexer.KeywordSelf:  parseSelf,
		lexer.KeywordNil:   parseNil,
		lexer.KeywordTrue:  parseTrue,
		lexer.KeywordFalse: parseFalse,

		lexer.KeywordEncoding: parseSourceEncoding,
		lexer.KeywordLine:     parseSourceLine,
		lexer.KeywordFile:     parseSourceFile,

		lexer.Bang:  parseUnary,
		lexer.Tilde: parseUnary,
		lexer.Plus:  parseUnary,
		lexer.Minus: parseUnaryMinus,
		lexer.KeywordNot: parseNot,

		lexer.ParenLeft:   parseParenthesized,
		lexer.BracketLeft: parseArrayLiteral,
		lexer.BraceLeft:   parseHashLiteral,

		lexer.StringBegin: parseString,
		lexer.Backtick:    parseXString,
		lexer.SymbolBegin: parseSymbol,
		lexer.RegexpBegin: parseRegexp,

		lexer.DotDot: parseBeginlessRange, lexer.DotDotDot: parseBeginlessRange,

		lexer.KeywordIf:     parseIfExpression,
		lexer.KeywordUnless: parseUnlessExpression,
		lexer.KeywordWhile:  parseWhileExpression,
		lexer.KeywordUntil:  parseUntilExpression,
		lexer.KeywordFor:    parseForExpression,
		lexer.KeywordCase:   parseCaseExpression,
		lexer.KeywordBegin:  parseBeginExpression,

		lexer.KeywordClass:  parseClassOrSclass,
		lexer.KeywordModule: parseModule,
		lexer.KeywordDef:    parseDef,

		lexer.KeywordDefinedQ: parseDefined,
		lexer.KeywordAlias:    parseAlias,
		lexer.KeywordUndef:    parseUndef,

		lexer.KeywordBreak:  parseBreak,
		lexer.KeywordNext:   parseNext,
		lexer.KeywordReturn: parseReturn,
		lexer.KeywordYield:  parseYield,
		lexer.KeywordSuper:  parseSuper,
		lexer.KeywordRedo:   parseRedo,
		lexer.KeywordRetry:  parseRetry,

		lexer.KeywordBeginUpper: parsePreExecution,
		lexer.KeywordEndUpper:   parsePostExecution,

		lexer.MinusGreater: parseLambda,
	}
}

func missingAt(p *Parser) ast.Node { return ast.NewMissingNode(p.current.Span.Start) }

// labelName strips a Label token's trailing ':' to get the bare name.
func labelName(value []byte) []byte {
	if n := len(value); n > 0 && value[n-1] == ':' {
		return value[:n-1]
	}
	return value
}

func parseIntegerLiteral(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewIntegerNode(t)
}

func parseFloatLiteral(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewFloatNode(t)
}

func parseRationalLiteral(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewRationalNode(t)
}

func parseImaginaryLiteral(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewImaginaryNode(t)
}

// parseIdentifier decides, per spec.md §3.4, whether a bare identifier
// is a local-variable read (the active scope already declared it) or a
// zero-argument call — and, either way, whether it's immediately
// followed by a parenthesized argument list or a block, which always
// forces the call interpretation.
func parseIdentifier(p *Parser) ast.Node {
	t := p.current
	p.advance()
	name := string(t.Value)

	if p.check(lexer.ParenLeft) && !p.precededBySpace() {
		args := p.parseParenthesizedArguments()
		block := p.tryParseBlock()
		return ast.NewCallNode(t.Span.Union(p.previous.Span), nil, name, lexer.Span{}, args, block, false)
	}

	if p.isLocal(name) {
		read := ast.NewLocalVariableReadNode(t)
		if block := p.tryParseBlock(); block != nil {
			return ast.NewCallNode(t.Span.Union(p.previous.Span), nil, name, lexer.Span{}, nil, block, false)
		}
		return read
	}

	// Command-style call without parens: `puts x` — only attempted when
	// the identifier is not a known local and is trailed by something
	// that can start an argument on the same logical statement.
	if p.canStartCommandArgument() {
		args := p.parseCommandArguments()
		block := p.tryParseBlock()
		return ast.NewCallNode(t.Span.Union(p.previous.Span), nil, name, lexer.Span{}, args, block, false)
	}

	block := p.tryParseBlock()
	return ast.NewCallNode(t.Span, nil, name, lexer.Span{}, nil, block, false)
}

// precededBySpace is a conservative always-false stand-in: the lexer
// does not currently record inter-token whitespace, so `foo (x)` and
// `foo(x)` are indistinguishable here. Given that, we treat an
// immediately-following '(' as call-parens, matching the common case.
func (p *Parser) precededBySpace() bool { return false }

// canStartCommandArgument reports whether the current token can begin
// a paren-less command argument list, conservatively limited to
// unambiguous starters so plain statement sequences are never misread
// as calls.
func (p *Parser) canStartCommandArgument() bool {
	switch p.current.Kind {
	case lexer.Integer, lexer.Float, lexer.Rational, lexer.Imaginary,
		lexer.StringBegin, lexer.SymbolBegin, lexer.InstanceVariable,
		lexer.ClassVariable, lexer.GlobalVariable, lexer.KeywordSelf,
		lexer.KeywordNil, lexer.KeywordTrue, lexer.KeywordFalse, lexer.Colon:
		return true
	}
	return false
}

func (p *Parser) parseCommandArguments() *ast.ArgumentsNode {
	start := p.current.Span
	var args []ast.Node
	args = append(args, p.parseExpression(PrecAssignment+1))
	for p.match(lexer.Comma) {
		args = append(args, p.parseExpression(PrecAssignment+1))
	}
	return ast.NewArgumentsNode(start.Union(p.previous.Span), args)
}

func parseConstant(p *Parser) ast.Node {
	t := p.current
	p.advance()
	var left ast.Node = ast.NewConstantReadNode(t)
	for p.check(lexer.ColonColon) {
		opTok := p.current
		p.advance()
		if p.check(lexer.Identifier) {
			// `Foo::bar` is a method call, read the same way as `Foo.bar`.
			return finishMemberAccess(p, left, opTok, false)
		}
		name := p.expect(lexer.Constant, "expected a constant name after '::'")
		left = ast.NewConstantPathNode(left.Span().Union(name.Span), left, string(name.Value))
	}
	if p.check(lexer.ParenLeft) {
		args := p.parseParenthesizedArguments()
		block := p.tryParseBlock()
		if cr, ok := left.(*ast.ConstantReadNode); ok {
			return ast.NewCallNode(t.Span.Union(p.previous.Span), nil, cr.Name, lexer.Span{}, args, block, false)
		}
	}
	return left
}

func parseTopLevelConstantPath(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // '::'
	name := p.expect(lexer.Constant, "expected a constant name after '::'")
	return ast.NewConstantPathNode(start.Union(name.Span), nil, string(name.Value))
}

func parseInstanceVariable(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewInstanceVariableReadNode(t)
}

func parseClassVariable(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewClassVariableReadNode(t)
}

func parseGlobalVariable(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewGlobalVariableReadNode(t)
}

func parseSelf(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewSelfNode(t)
}

func parseNil(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewNilNode(t)
}

func parseTrue(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewTrueNode(t)
}

func parseFalse(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewFalseNode(t)
}

func parseSourceEncoding(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewSourceEncodingNode(t)
}

func parseSourceLine(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewSourceLineNode(t)
}

func parseSourceFile(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewSourceFileNode(t)
}

// parseUnary covers `!`, `~`, and unary `+`: each desugars to a call
// with a synthesized method name, per spec.md §4.3.
func parseUnary(p *Parser) ast.Node {
	t := p.current
	p.advance()
	operand := p.parseExpression(PrecUnary)
	name := map[lexer.TokenKind]string{lexer.Bang: "!", lexer.Tilde: "~@", lexer.Plus: "+@"}[t.Kind]
	return ast.NewCallNode(t.Span.Union(operand.Span()), operand, name, t.Span, nil, nil, false)
}

// parseNot is the low-precedence keyword form of `!`.
func parseNot(p *Parser) ast.Node {
	t := p.current
	p.advance()
	operand := p.parseExpression(PrecNot)
	return ast.NewCallNode(t.Span.Union(operand.Span()), operand, "!", t.Span, nil, nil, false)
}

// parseUnaryMinus binds tighter than binary minus but looser than
// exponentiation, so `-2**2` parses as `-(2**2)`.
func parseUnaryMinus(p *Parser) ast.Node {
	t := p.current
	p.advance()
	operand := p.parseExpression(PrecUnaryMinus)
	return ast.NewCallNode(t.Span.Union(operand.Span()), operand, "-@", t.Span, nil, nil, false)
}

func parseParenthesized(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // '('
	stmts := p.parseStatements(ContextParens)
	p.popContext()
	closing := p.expect(lexer.ParenRight, "expected ')'")
	if len(stmts.Body) == 1 {
		return stmts.Body[0]
	}
	return ast.NewStatements(start.Union(closing.Span), stmts.Body)
}

func parseArrayLiteral(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // '['
	var elements []ast.Node
	for !p.check(lexer.BracketRight) && !p.check(lexer.EOF) {
		for p.match(lexer.Newline) {
		}
		if p.check(lexer.BracketRight) {
			break
		}
		elements = append(elements, p.parseArgumentItem())
		for p.match(lexer.Newline) {
		}
		if !p.match(lexer.Comma) {
			break
		}
	}
	for p.match(lexer.Newline) {
	}
	closing := p.expect(lexer.BracketRight, "expected ']'")
	return ast.NewArrayNode(start.Union(closing.Span), elements)
}

func parseHashLiteral(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // '{'
	var elements []ast.Node
	for !p.check(lexer.BraceRight) && !p.check(lexer.EOF) {
		for p.match(lexer.Newline) {
		}
		if p.check(lexer.BraceRight) {
			break
		}
		elements = append(elements, p.parseHashEntry())
		for p.match(lexer.Newline) {
		}
		if !p.match(lexer.Comma) {
			break
		}
	}
	for p.match(lexer.Newline) {
	}
	closing := p.expect(lexer.BraceRight, "expected '}'")
	return ast.NewHashNode(start.Union(closing.Span), elements)
}

func (p *Parser) parseHashEntry() ast.Node {
	if p.check(lexer.StarStar) {
		start := p.current.Span
		p.advance()
		value := p.parseExpression(PrecAssignment + 1)
		return ast.NewAssocSplatNode(start.Union(value.Span()), value)
	}
	if p.check(lexer.Label) {
		t := p.current
		p.advance()
		key := ast.NewSymbolNode(t.Span, labelName(t.Value))
		value := p.parseExpression(PrecAssignment + 1)
		return ast.NewAssocNode(key, value)
	}
	key := p.parseExpression(PrecAssignment + 1)
	p.expect(lexer.HashRocket, "expected '=>' in hash literal")
	value := p.parseExpression(PrecAssignment + 1)
	return ast.NewAssocNode(key, value)
}

// parseArgumentItem handles a single array-element / call-argument slot,
// which may be a splat, a block-pass, or a plain expression.
func (p *Parser) parseArgumentItem() ast.Node {
	switch p.current.Kind {
	case lexer.Star:
		start := p.current.Span
		p.advance()
		if p.startsExpression() {
			expr := p.parseExpression(PrecAssignment + 1)
			return ast.NewSplatNode(start.Union(expr.Span()), expr)
		}
		return ast.NewSplatNode(start, nil)
	case lexer.Ampersand:
		start := p.current.Span
		p.advance()
		if p.startsExpression() {
			expr := p.parseExpression(PrecAssignment + 1)
			return ast.NewBlockArgumentNode(start.Union(expr.Span()), expr)
		}
		return ast.NewBlockArgumentNode(start, nil)
	case lexer.DotDotDot:
		t := p.current
		p.advance()
		return ast.NewForwardingArgumentsNode(t)
	case lexer.Label:
		t := p.current
		p.advance()
		key := ast.NewSymbolNode(t.Span, labelName(t.Value))
		value := p.parseExpression(PrecAssignment + 1)
		return ast.NewAssocNode(key, value)
	default:
		return p.parseExpression(PrecAssignment + 1)
	}
}

func (p *Parser) startsExpression() bool {
	_, ok := p.prefix[p.current.Kind]
	return ok
}

// parseString assembles a StringNode or, if any interpolation appears,
// an InterpolatedStringNode, from the StringBegin/StringContent/
// EmbexprBegin.../EmbvarBegin/StringEnd token run the lexer produced.
func parseString(p *Parser) ast.Node {
	return p.parseStringLike(lexer.UnescapeAll)
}

func parseXString(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // Backtick
	parts, content, interpolated, closing := p.collectStringParts(lexer.UnescapeAll)
	span := start.Union(closing)
	if interpolated {
		return ast.NewInterpolatedStringNode(span, parts)
	}
	return ast.NewXStringNode(span, content)
}

func (p *Parser) parseStringLike(mode lexer.UnescapeMode) ast.Node {
	start := p.current.Span
	p.advance() // StringBegin
	parts, content, interpolated, closing := p.collectStringParts(mode)
	span := start.Union(closing)
	if interpolated {
		return ast.NewInterpolatedStringNode(span, parts)
	}
	return ast.NewStringNode(span, start, content, lexer.Span{Start: closing.Start, End: closing.End})
}

// collectStringParts drains tokens until StringEnd, decoding each
// StringContent run with Unescape(mode) and recursing into embedded
// expressions/variables. It reports whether any interpolation part was
// seen (forcing the InterpolatedString/InterpolatedSymbol node kind)
// even when surrounding literal parts are empty.
func (p *Parser) collectStringParts(mode lexer.UnescapeMode) (parts []ast.Node, content []byte, interpolated bool, closing lexer.Span) {
	for {
		switch p.current.Kind {
		case lexer.StringContent:
			t := p.current
			p.advance()
			decoded, _ := lexer.Unescape(t.Value, mode)
			parts = append(parts, ast.NewStringNode(t.Span, t.Span, decoded, t.Span))
			content = append(content, decoded...)
		case lexer.EmbexprBegin:
			interpolated = true
			start := p.current.Span
			p.advance()
			stmts := p.parseStatements(ContextEmbexpr)
			p.popContext()
			end := p.expect(lexer.EmbexprEnd, "expected '}' to close interpolation")
			parts = append(parts, ast.NewStatements(start.Union(end.Span), stmts.Body))
		case lexer.EmbvarBegin:
			interpolated = true
			p.advance()
			parts = append(parts, p.parseExpression(PrecCall))
		case lexer.StringEnd:
			closing = p.current.Span
			p.advance()
			return parts, content, interpolated, closing
		case lexer.EOF:
			closing = p.current.Span
			return parts, content, interpolated, closing
		default:
			closing = p.current.Span
			p.advance()
			return parts, content, interpolated, closing
		}
	}
}

func parseSymbol(p *Parser) ast.Node {
	start := p.current.Span
	// A bare symbol (`:foo`, `:+`) is a single Identifier/Constant/
	// operator token with no StringBegin; the lexer pushed ModeSymbol
	// and already popped back out, so the very next token IS the
	// symbol's spelling, still un-consumed here.
	p.advance() // SymbolBegin
	if p.check(lexer.StringContent) || p.check(lexer.EmbexprBegin) || p.check(lexer.StringEnd) {
		parts, content, interpolated, closing := p.collectStringParts(lexer.UnescapeAll)
		span := start.Union(closing)
		if interpolated {
			return ast.NewInterpolatedSymbolNode(span, parts)
		}
		return ast.NewSymbolNode(span, content)
	}
	t := p.current
	p.advance()
	return ast.NewSymbolNode(start.Union(t.Span), t.Value)
}

func parseRegexp(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // RegexpBegin
	var content []byte
	var parts []ast.Node
	interpolated := false
loop:
	for {
		switch p.current.Kind {
		case lexer.StringContent:
			t := p.current
			p.advance()
			content = append(content, t.Value...)
			parts = append(parts, ast.NewStringNode(t.Span, t.Span, t.Value, t.Span))
		case lexer.EmbexprBegin:
			interpolated = true
			estart := p.current.Span
			p.advance()
			stmts := p.parseStatements(ContextEmbexpr)
			p.popContext()
			eend := p.expect(lexer.EmbexprEnd, "expected '}' to close interpolation")
			parts = append(parts, ast.NewStatements(estart.Union(eend.Span), stmts.Body))
		default:
			break loop
		}
	}
	closing := p.current.Span
	var options []byte
	if p.check(lexer.RegexpEnd) {
		options = p.current.Value
		p.advance()
	}
	captures, _ := rgxp.ExtractCaptures(content)
	_ = parts
	_ = interpolated
	return ast.NewRegularExpressionNode(start.Union(closing), content, options, captures)
}

func parseBeginlessRange(p *Parser) ast.Node {
	t := p.current
	exclusive := t.Kind == lexer.DotDotDot
	p.advance()
	if !p.startsExpression() {
		return ast.NewRangeNode(t.Span, nil, nil, exclusive)
	}
	right := p.parseExpression(PrecRange + 1)
	return ast.NewRangeNode(t.Span.Union(right.Span()), nil, right, exclusive)
}

func parseDefined(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	if p.match(lexer.ParenLeft) {
		expr := p.parseExpression(PrecNone)
		closing := p.expect(lexer.ParenRight, "expected ')' after defined?")
		return ast.NewDefinedNode(start.Union(closing.Span), expr)
	}
	expr := p.parseExpression(PrecDefined)
	return ast.NewDefinedNode(start.Union(expr.Span()), expr)
}

// parseAliasArgument accepts a bare identifier, a symbol, or a global
// variable, per spec.md §4.3.
func (p *Parser) parseAliasArgument() ast.Node {
	switch p.current.Kind {
	case lexer.GlobalVariable:
		t := p.current
		p.advance()
		return ast.NewGlobalVariableReadNode(t)
	case lexer.SymbolBegin:
		return parseSymbol(p)
	case lexer.Identifier:
		t := p.current
		p.advance()
		return ast.NewSymbolNode(t.Span, t.Value)
	default:
		return missingAt(p)
	}
}

func parseAlias(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	newName := p.parseAliasArgument()
	oldName := p.parseAliasArgument()
	return ast.NewAliasNode(start.Union(oldName.Span()), newName, oldName)
}

func parseUndef(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	names := []ast.Node{p.parseAliasArgument()}
	for p.match(lexer.Comma) {
		names = append(names, p.parseAliasArgument())
	}
	return ast.NewUndefNode(start.Union(p.previous.Span), names)
}

func parseBreak(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	var args *ast.ArgumentsNode
	if p.canStartCommandArgument() || p.startsExpression() {
		args = p.parseCommandArguments()
	}
	end := start
	if args != nil {
		end = args.Span()
	}
	return ast.NewBreakNode(start.Union(end), args)
}

func parseNext(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	var args *ast.ArgumentsNode
	if p.canStartCommandArgument() || p.startsExpression() {
		args = p.parseCommandArguments()
	}
	end := start
	if args != nil {
		end = args.Span()
	}
	return ast.NewNextNode(start.Union(end), args)
}

func parseReturn(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	var args *ast.ArgumentsNode
	if p.canStartCommandArgument() || p.startsExpression() {
		args = p.parseCommandArguments()
	}
	end := start
	if args != nil {
		end = args.Span()
	}
	return ast.NewReturnNode(start.Union(end), args)
}

func parseYield(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	var args *ast.ArgumentsNode
	if p.check(lexer.ParenLeft) {
		args = p.parseParenthesizedArguments()
	} else if p.canStartCommandArgument() {
		args = p.parseCommandArguments()
	}
	end := start
	if args != nil {
		end = args.Span()
	}
	return ast.NewYieldNode(start.Union(end), args)
}

func parseSuper(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	if p.check(lexer.ParenLeft) {
		args := p.parseParenthesizedArguments()
		block := p.tryParseBlock()
		return ast.NewSuperNode(start.Union(p.previous.Span), args, block, true)
	}
	if p.canStartCommandArgument() {
		args := p.parseCommandArguments()
		block := p.tryParseBlock()
		return ast.NewSuperNode(start.Union(args.Span()), args, block, true)
	}
	block := p.tryParseBlock()
	if block != nil {
		return ast.NewForwardingSuperNode(start.Union(p.previous.Span), block)
	}
	return ast.NewForwardingSuperNode(start, nil)
}

func parseRedo(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewRedoNode(t)
}

func parseRetry(p *Parser) ast.Node {
	t := p.current
	p.advance()
	return ast.NewRetryNode(t)
}

func parsePreExecution(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	p.expect(lexer.BraceLeft, "expected '{' after BEGIN")
	stmts := p.parseStatements(ContextPreexe)
	p.popContext()
	closing := p.expect(lexer.BraceRight, "expected '}'")
	return ast.NewPreExecutionNode(start.Union(closing.Span), stmts)
}

func parsePostExecution(p *Parser) ast.Node {
	start := p.current.Span
	p.advance()
	p.expect(lexer.BraceLeft, "expected '{' after END")
	stmts := p.parseStatements(ContextPostexe)
	p.popContext()
	closing := p.expect(lexer.BraceRight, "expected '}'")
	return ast.NewPostExecutionNode(start.Union(closing.Span), stmts)
}

// parseLambda desugars `-> (params) { body }` / `-> (params) do body end`
// into a CallNode named "lambda" carrying a block, matching how every
// other block-taking construct is represented.
func parseLambda(p *Parser) ast.Node {
	start := p.current.Span
	p.advance() // '->'
	var params *ast.ParametersNode
	if p.match(lexer.ParenLeft) {
		params = p.parseParameterList(lexer.ParenRight)
		p.expect(lexer.ParenRight, "expected ')' to close lambda parameters")
	}
	scope := p.pushSharedScope()
	var body *ast.Statements
	if p.match(lexer.LambdaBegin) || p.match(lexer.BraceLeft) {
		body = p.parseStatements(ContextBlockBrace)
		p.popContext()
		p.expect(lexer.BraceRight, "expected '}' to close lambda body")
	} else {
		p.expect(lexer.KeywordDo, "expected '{' or 'do' to open lambda body")
		body = p.parseStatements(ContextBlockDo)
		p.popContext()
		p.expect(lexer.KeywordEnd, "expected 'end' to close lambda body")
	}
	p.popScope()
	block := ast.NewBlockNode(start.Union(p.previous.Span), params, scope, body)
	return ast.NewCallNode(start.Union(p.previous.Span), nil, "lambda", lexer.Span{}, nil, block, false)
}
