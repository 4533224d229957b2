package parser

import (
	"github.com/akashmaji946/rugo/ast"
	"github.com/akashmaji946/rugo/lexer"
)

// registerPrecedence fills in the binding power for every token kind
// that can appear in infix position, per spec.md §4.3's ordering.
func (p *Parser) registerPrecedence() {
	p.prec = map[lexer.TokenKind]Precedence{
		lexer.KeywordAnd: PrecComposition, lexer.KeywordOr: PrecComposition,

		lexer.Equal: PrecAssignment,
		lexer.PlusEqual: PrecAssignment, lexer.MinusEqual: PrecAssignment,
		lexer.StarEqual: PrecAssignment, lexer.SlashEqual: PrecAssignment,
		lexer.PercentEqual: PrecAssignment, lexer.StarStarEqual: PrecAssignment,
		lexer.LessLessEqual: PrecAssignment, lexer.GreaterGreaterEqual: PrecAssignment,
		lexer.AmpersandEqual: PrecAssignment, lexer.PipeEqual: PrecAssignment,
		lexer.CaretEqual: PrecAssignment,
		lexer.AmpersandAmpersandEqual: PrecAssignment, lexer.PipePipeEqual: PrecAssignment,

		lexer.KeywordRescue: PrecModifierRescue,
		lexer.Question:      PrecTernary,

		lexer.DotDot: PrecRange, lexer.DotDotDot: PrecRange,

		lexer.PipePipe: PrecLogicalOr,

		lexer.AmpersandAmpersand: PrecLogicalAnd,

		lexer.EqualEqual: PrecEquality, lexer.EqualEqualEqual: PrecEquality,
		lexer.BangEqual: PrecEquality, lexer.EqualTilde: PrecEquality, lexer.BangTilde: PrecEquality,

		lexer.Less: PrecComparison, lexer.LessEqual: PrecComparison,
		lexer.Greater: PrecComparison, lexer.GreaterEqual: PrecComparison,
		lexer.Spaceship: PrecComparison,

		lexer.Pipe: PrecBitwiseOr, lexer.Caret: PrecBitwiseOr,

		lexer.Ampersand: PrecBitwiseAnd,

		lexer.LessLess: PrecShift, lexer.GreaterGreater: PrecShift,

		lexer.Plus: PrecTerm, lexer.Minus: PrecTerm,

		lexer.Star: PrecFactor, lexer.Slash: PrecFactor, lexer.Percent: PrecFactor,

		lexer.StarStar: PrecExponent,

		lexer.Dot: PrecCall, lexer.AmpersandDot: PrecCall, lexer.ColonColon: PrecCall,
		lexer.BracketLeft: PrecIndex,
		lexer.ParenLeft:   PrecCall,
		lexer.BraceLeft:   PrecCall, lexer.KeywordDo: PrecCall,
	}
}

func (p *Parser) precedenceOf(kind lexer.TokenKind) Precedence {
	if prec, ok := p.prec[kind]; ok {
		return prec
	}
	return PrecNone
}

// rightAssociative reports whether kind's infix handler should recurse
// at its own precedence (right-assoc) rather than one above it.
func rightAssociative(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.Equal, lexer.PlusEqual, lexer.MinusEqual, lexer.StarEqual, lexer.SlashEqual,
		lexer.PercentEqual, lexer.StarStarEqual, lexer.LessLessEqual, lexer.GreaterGreaterEqual,
		lexer.AmpersandEqual, lexer.PipeEqual, lexer.CaretEqual,
		lexer.AmpersandAmpersandEqual, lexer.PipePipeEqual,
		lexer.Question, lexer.EqualEqual, lexer.EqualEqualEqual,
		lexer.BangEqual, lexer.EqualTilde, lexer.BangTilde, lexer.Caret,
		lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual, lexer.Spaceship,
		lexer.Pipe, lexer.Ampersand, lexer.LessLess, lexer.GreaterGreater, lexer.StarStar,
		lexer.Dot, lexer.AmpersandDot, lexer.ColonColon:
		return true
	}
	return false
}

// parseExpression is the Pratt driving loop: run the prefix handler for
// the current token, then repeatedly extend with infix handlers while
// their precedence is at least minPrec. Associativity comes from the
// minPrec each handler passes to its right-operand recursion (see
// nextMinPrec).
func (p *Parser) parseExpression(minPrec Precedence) ast.Node {
	prefix, ok := p.prefix[p.current.Kind]
	if !ok {
		start := p.current.Span.Start
		p.diagnostics.Add(p.current.Span, "unexpected token in expression position: "+p.current.Kind.String())
		p.enterRecovery()
		if !p.check(lexer.EOF) {
			p.advance()
		}
		return ast.NewMissingNode(start)
	}
	left := prefix(p)

	for !p.recovering {
		kind := p.current.Kind
		prec := p.precedenceOf(kind)
		if prec < minPrec {
			break
		}
		infix, ok := p.infix[kind]
		if !ok {
			break
		}
		left = infix(p, left)
	}
	return left
}

// nextMinPrec computes the minimum precedence an infix handler should
// use for its right-operand recursion: one above its own precedence
// for a left-associative operator (so a same-precedence operator to
// the right is left for the outer loop to pick up), or exactly its own
// precedence for a right-associative one (so a chain like `a = b = c`
// or `a ** b ** c` recurses through the same level).
func nextMinPrec(prec Precedence, kind lexer.TokenKind) Precedence {
	if rightAssociative(kind) {
		return prec
	}
	return prec + 1
}

// reinterpretAsAssignmentTarget applies spec.md §4.3's destructive
// reinterpretation rules to the left operand of `=`, returning the
// rewritten write node or, when the left operand cannot be a target, a
// diagnostic and the node unchanged.
func (p *Parser) reinterpretAsAssignmentTarget(left ast.Node, value ast.Node, span lexer.Span) ast.Node {
	switch n := left.(type) {
	case *ast.LocalVariableReadNode:
		p.declareLocal(n.Name)
		return ast.NewLocalVariableWriteNode(span, n.Name, value)
	case *ast.InstanceVariableReadNode:
		return ast.NewInstanceVariableWriteNode(span, n.Name, value)
	case *ast.ClassVariableReadNode:
		return ast.NewClassVariableWriteNode(span, n.Name, value)
	case *ast.GlobalVariableReadNode:
		return ast.NewGlobalVariableWriteNode(span, n.Name, value)
	case *ast.ConstantReadNode:
		return ast.NewConstantWriteNode(span, n.Name, value)
	case *ast.ConstantPathNode:
		return ast.NewConstantPathWriteNode(span, n, value)
	case *ast.CallNode:
		if n.Receiver == nil && n.Arguments == nil && n.Block == nil {
			p.declareLocal(n.Name)
			return ast.NewLocalVariableWriteNode(span, n.Name, value)
		}
		if n.Arguments == nil && n.Block == nil {
			return ast.NewCallNode(span, n.Receiver, n.Name+"=", n.OperatorLoc,
				ast.NewArgumentsNode(value.Span(), []ast.Node{value}), nil, n.SafeNav)
		}
		p.diagnostics.Add(span, "unexpected '='")
		return left
	default:
		p.diagnostics.Add(span, "unexpected '='")
		return left
	}
}

// targetOf mirrors reinterpretAsAssignmentTarget for op= forms, which
// need the *bare* target node (no Value yet) to build an
// OperatorAssignmentNode around.
func (p *Parser) targetOf(left ast.Node) ast.Node {
	switch n := left.(type) {
	case *ast.LocalVariableReadNode:
		p.declareLocal(n.Name)
		return left
	case *ast.CallNode:
		if n.Receiver == nil && n.Arguments == nil && n.Block == nil {
			p.declareLocal(n.Name)
		}
		return left
	default:
		return left
	}
}
