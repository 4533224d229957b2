package ast

import "github.com/akashmaji946/rugo/lexer"

// CallNode is the workhorse node: every binary operator, every bare
// method invocation, every attribute read/write desugars to one
// (spec.md §4.3's infix-handler rule). Receiver is nil for an implicit-
// self call ("foo" rather than "x.foo").
type CallNode struct {
	base
	Receiver    Node
	Name        string
	OperatorLoc lexer.Span // '.', '&.', '::', a unary/binary operator, or '[' for index calls — zero for an implicit-self call and for `callable(args)`
	Arguments   *ArgumentsNode
	Block       Node // *BlockNode or *BlockArgumentNode, or nil
	SafeNav     bool
}

func NewCallNode(span lexer.Span, receiver Node, name string, operatorLoc lexer.Span, args *ArgumentsNode, block Node, safeNav bool) *CallNode {
	return &CallNode{base{kind: KindCall, span: span}, receiver, name, operatorLoc, args, block, safeNav}
}

type ArgumentsNode struct {
	base
	Arguments []Node
}

func NewArgumentsNode(span lexer.Span, arguments []Node) *ArgumentsNode {
	return &ArgumentsNode{base{kind: KindArguments, span: span}, arguments}
}

// BlockNode is a `do ... end` or `{ ... }` block attached to a call.
type BlockNode struct {
	base
	Parameters *ParametersNode // nil if the block takes no parameters
	Locals     *Scope
	Body       *Statements
}

func NewBlockNode(span lexer.Span, parameters *ParametersNode, locals *Scope, body *Statements) *BlockNode {
	return &BlockNode{base{kind: KindBlock, span: span}, parameters, locals, body}
}

// BlockArgumentNode is `&expr` passed as the last call argument.
type BlockArgumentNode struct {
	base
	Expression Node // nil for the bare forwarding form `&`
}

func NewBlockArgumentNode(span lexer.Span, expr Node) *BlockArgumentNode {
	return &BlockArgumentNode{base{kind: KindBlockArgument, span: span}, expr}
}

// SplatNode is `*expr` in an argument list, array literal, or
// multi-target assignment; Expression is nil for the bare `*`.
type SplatNode struct {
	base
	Expression Node
}

func NewSplatNode(span lexer.Span, expr Node) *SplatNode {
	return &SplatNode{base{kind: KindSplat, span: span}, expr}
}
