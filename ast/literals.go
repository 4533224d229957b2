package ast

import "github.com/akashmaji946/rugo/lexer"

// IntegerNode, FloatNode, RationalNode, and ImaginaryNode each carry the
// source token verbatim; the core does not evaluate literal values (no
// constant folding — that is semantic analysis, out of scope).
type IntegerNode struct {
	base
	Token lexer.Token
}

func NewIntegerNode(t lexer.Token) *IntegerNode {
	return &IntegerNode{base{kind: KindInteger, span: t.Span}, t}
}

type FloatNode struct {
	base
	Token lexer.Token
}

func NewFloatNode(t lexer.Token) *FloatNode {
	return &FloatNode{base{kind: KindFloat, span: t.Span}, t}
}

type RationalNode struct {
	base
	Token lexer.Token
}

func NewRationalNode(t lexer.Token) *RationalNode {
	return &RationalNode{base{kind: KindRational, span: t.Span}, t}
}

type ImaginaryNode struct {
	base
	Token lexer.Token
}

func NewImaginaryNode(t lexer.Token) *ImaginaryNode {
	return &ImaginaryNode{base{kind: KindImaginary, span: t.Span}, t}
}

// StringNode is a non-interpolated string (or one interpolated part of a
// larger InterpolatedStringNode): the opening/closing delimiter tokens
// plus the already-unescaped content bytes.
type StringNode struct {
	base
	OpeningLoc lexer.Span
	Content    []byte
	ClosingLoc lexer.Span
}

func NewStringNode(span lexer.Span, opening lexer.Span, content []byte, closing lexer.Span) *StringNode {
	return &StringNode{base{kind: KindString, span: span}, opening, content, closing}
}

// InterpolatedStringNode holds a mix of StringNode parts (literal
// fragments) and embedded Statements (parsed `#{...}` expressions), in
// source order.
type InterpolatedStringNode struct {
	base
	Parts []Node
}

func NewInterpolatedStringNode(span lexer.Span, parts []Node) *InterpolatedStringNode {
	return &InterpolatedStringNode{base{kind: KindInterpolatedString, span: span}, parts}
}

// SymbolNode is a bare or quoted symbol with no interpolation.
type SymbolNode struct {
	base
	Content []byte
}

func NewSymbolNode(span lexer.Span, content []byte) *SymbolNode {
	return &SymbolNode{base{kind: KindSymbol, span: span}, content}
}

// InterpolatedSymbolNode mirrors InterpolatedStringNode for `:"...#{..}"`.
type InterpolatedSymbolNode struct {
	base
	Parts []Node
}

func NewInterpolatedSymbolNode(span lexer.Span, parts []Node) *InterpolatedSymbolNode {
	return &InterpolatedSymbolNode{base{kind: KindInterpolatedSymbol, span: span}, parts}
}

// XStringNode is a `%x{...}` / backtick shell-command literal; the core
// never executes it.
type XStringNode struct {
	base
	Content []byte
}

func NewXStringNode(span lexer.Span, content []byte) *XStringNode {
	return &XStringNode{base{kind: KindXString, span: span}, content}
}

// RegularExpressionNode carries the raw pattern bytes, trailing option
// letters, and the named-capture names the regexp sub-parser extracted
// (see the regexp package).
type RegularExpressionNode struct {
	base
	Content  []byte
	Options  []byte
	Captures []string
}

func NewRegularExpressionNode(span lexer.Span, content, options []byte, captures []string) *RegularExpressionNode {
	return &RegularExpressionNode{base{kind: KindRegularExpression, span: span}, content, options, captures}
}

// ArrayNode is `[ ... ]`; elements may include SplatNode entries.
type ArrayNode struct {
	base
	Elements []Node
}

func NewArrayNode(span lexer.Span, elements []Node) *ArrayNode {
	return &ArrayNode{base{kind: KindArray, span: span}, elements}
}

// HashNode is `{ k => v, ... }` / the implicit keyword-argument hash;
// Elements holds AssocNode and AssocSplatNode entries.
type HashNode struct {
	base
	Elements []Node
}

func NewHashNode(span lexer.Span, elements []Node) *HashNode {
	return &HashNode{base{kind: KindHash, span: span}, elements}
}

type AssocNode struct {
	base
	Key   Node
	Value Node
}

func NewAssocNode(key, value Node) *AssocNode {
	return &AssocNode{base{kind: KindAssoc, span: key.Span().Union(value.Span())}, key, value}
}

type AssocSplatNode struct {
	base
	Value Node
}

func NewAssocSplatNode(span lexer.Span, value Node) *AssocSplatNode {
	return &AssocSplatNode{base{kind: KindAssocSplat, span: span}, value}
}

// RangeNode is `a..b` or `a...b`; either bound may be nil (beginless /
// endless range).
type RangeNode struct {
	base
	Left      Node
	Right     Node
	Exclusive bool
}

func NewRangeNode(span lexer.Span, left, right Node, exclusive bool) *RangeNode {
	return &RangeNode{base{kind: KindRange, span: span}, left, right, exclusive}
}

type SelfNode struct{ base }

func NewSelfNode(t lexer.Token) *SelfNode { return &SelfNode{base{kind: KindSelf, span: t.Span}} }

type NilNode struct{ base }

func NewNilNode(t lexer.Token) *NilNode { return &NilNode{base{kind: KindNil, span: t.Span}} }

type TrueNode struct{ base }

func NewTrueNode(t lexer.Token) *TrueNode { return &TrueNode{base{kind: KindTrue, span: t.Span}} }

type FalseNode struct{ base }

func NewFalseNode(t lexer.Token) *FalseNode { return &FalseNode{base{kind: KindFalse, span: t.Span}} }
