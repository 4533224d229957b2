package ast

import "github.com/akashmaji946/rugo/lexer"

// BreakNode, NextNode, and ReturnNode each carry an optional argument
// list (spec.md's `break EXPR`, `next EXPR`, `return EXPR, EXPR`).
type BreakNode struct {
	base
	Arguments *ArgumentsNode // nil for a bare `break`
}

func NewBreakNode(span lexer.Span, arguments *ArgumentsNode) *BreakNode {
	return &BreakNode{base{kind: KindBreak, span: span}, arguments}
}

type NextNode struct {
	base
	Arguments *ArgumentsNode
}

func NewNextNode(span lexer.Span, arguments *ArgumentsNode) *NextNode {
	return &NextNode{base{kind: KindNext, span: span}, arguments}
}

type ReturnNode struct {
	base
	Arguments *ArgumentsNode
}

func NewReturnNode(span lexer.Span, arguments *ArgumentsNode) *ReturnNode {
	return &ReturnNode{base{kind: KindReturn, span: span}, arguments}
}

// YieldNode is `yield(args)` or bare `yield`.
type YieldNode struct {
	base
	Arguments *ArgumentsNode
}

func NewYieldNode(span lexer.Span, arguments *ArgumentsNode) *YieldNode {
	return &YieldNode{base{kind: KindYield, span: span}, arguments}
}

// SuperNode is `super(args)` or `super args`; the parser always sets
// ArgumentsGiven to true. A bare `super` with no argument list becomes
// a ForwardingSuperNode instead.
type SuperNode struct {
	base
	Arguments      *ArgumentsNode
	Block          Node
	ArgumentsGiven bool
}

func NewSuperNode(span lexer.Span, arguments *ArgumentsNode, block Node, argumentsGiven bool) *SuperNode {
	return &SuperNode{base{kind: KindSuper, span: span}, arguments, block, argumentsGiven}
}

type RedoNode struct{ base }

func NewRedoNode(t lexer.Token) *RedoNode { return &RedoNode{base{kind: KindRedo, span: t.Span}} }

type RetryNode struct{ base }

func NewRetryNode(t lexer.Token) *RetryNode { return &RetryNode{base{kind: KindRetry, span: t.Span}} }

// DefinedNode is `defined?(expr)`; the core never evaluates it, it
// only records the probed expression.
type DefinedNode struct {
	base
	Expression Node
}

func NewDefinedNode(span lexer.Span, expression Node) *DefinedNode {
	return &DefinedNode{base{kind: KindDefined, span: span}, expression}
}

// AliasNode is `alias new_name old_name`; both names are symbols or
// global variables per Ruby grammar, stored as the parsed operand
// nodes rather than bare strings so their own spans survive.
type AliasNode struct {
	base
	NewName Node
	OldName Node
}

func NewAliasNode(span lexer.Span, newName, oldName Node) *AliasNode {
	return &AliasNode{base{kind: KindAlias, span: span}, newName, oldName}
}

// UndefNode is `undef name1, name2, ...`.
type UndefNode struct {
	base
	Names []Node
}

func NewUndefNode(span lexer.Span, names []Node) *UndefNode {
	return &UndefNode{base{kind: KindUndef, span: span}, names}
}

// PreExecutionNode is `BEGIN { ... }`; PostExecutionNode is `END { ... }`.
type PreExecutionNode struct {
	base
	Statements *Statements
}

func NewPreExecutionNode(span lexer.Span, statements *Statements) *PreExecutionNode {
	return &PreExecutionNode{base{kind: KindPreExecution, span: span}, statements}
}

type PostExecutionNode struct {
	base
	Statements *Statements
}

func NewPostExecutionNode(span lexer.Span, statements *Statements) *PostExecutionNode {
	return &PostExecutionNode{base{kind: KindPostExecution, span: span}, statements}
}

// SourceFileNode, SourceLineNode, and SourceEncodingNode are the
// `__FILE__`, `__LINE__`, and `__ENCODING__` magic literals: their
// values depend on where the parser is invoked, not on anything the
// lexer can resolve, so the core only records the occurrence.
type SourceFileNode struct{ base }

func NewSourceFileNode(t lexer.Token) *SourceFileNode {
	return &SourceFileNode{base{kind: KindSourceFile, span: t.Span}}
}

type SourceLineNode struct{ base }

func NewSourceLineNode(t lexer.Token) *SourceLineNode {
	return &SourceLineNode{base{kind: KindSourceLine, span: t.Span}}
}

type SourceEncodingNode struct{ base }

func NewSourceEncodingNode(t lexer.Token) *SourceEncodingNode {
	return &SourceEncodingNode{base{kind: KindSourceEncoding, span: t.Span}}
}

// OperatorAssignmentNode is `target OP= value` (`x += 1`, `x.y -= 1`,
// `a[i] *= 2`): Operator holds the bare operator name ("+", "-", ...),
// which the parser maps from the lexer's single `OP=` token, and Target
// is whatever the left-hand side parsed to (a LocalVariableReadNode,
// CallNode, etc.), kept as parsed rather than rewritten to a write node;
// a bare name on the left is declared as a local.
type OperatorAssignmentNode struct {
	base
	Target   Node
	Operator string
	Value    Node
}

func NewOperatorAssignmentNode(span lexer.Span, target Node, operator string, value Node) *OperatorAssignmentNode {
	return &OperatorAssignmentNode{base{kind: KindOperatorAssignment, span: span}, target, operator, value}
}

// OperatorAndAssignmentNode and OperatorOrAssignmentNode are the
// special-cased `&&=` and `||=` (short-circuiting, unlike every other
// OP= which always evaluates Value).
type OperatorAndAssignmentNode struct {
	base
	Target Node
	Value  Node
}

func NewOperatorAndAssignmentNode(span lexer.Span, target, value Node) *OperatorAndAssignmentNode {
	return &OperatorAndAssignmentNode{base{kind: KindOperatorAndAssignment, span: span}, target, value}
}

type OperatorOrAssignmentNode struct {
	base
	Target Node
	Value  Node
}

func NewOperatorOrAssignmentNode(span lexer.Span, target, value Node) *OperatorOrAssignmentNode {
	return &OperatorOrAssignmentNode{base{kind: KindOperatorOrAssignment, span: span}, target, value}
}

// MultiTargetNode is a comma-separated target list: a multiple
// assignment (`a, b = 1, 2`, each target rewritten to a write carrying
// its value) or a `for a, b in ...` loop variable list. Targets are in
// source order. A SplatNode target (`*b`) is produced only in the `for`
// form; the assignment form does not accept `*`, and the parser does
// not limit how many splats a `for` list holds.
type MultiTargetNode struct {
	base
	Targets []Node
}

func NewMultiTargetNode(span lexer.Span, targets []Node) *MultiTargetNode {
	return &MultiTargetNode{base{kind: KindMultiTarget, span: span}, targets}
}

// ForwardingArgumentsNode is the bare `...` used as a call argument,
// forwarding a ForwardingParameterNode's captured arguments.
type ForwardingArgumentsNode struct{ base }

func NewForwardingArgumentsNode(t lexer.Token) *ForwardingArgumentsNode {
	return &ForwardingArgumentsNode{base{kind: KindForwardingArguments, span: t.Span}}
}

// ForwardingSuperNode is the bare `super` with no argument list, which
// forwards the enclosing method's own arguments; Block is the trailing
// block, or nil.
type ForwardingSuperNode struct {
	base
	Block Node
}

func NewForwardingSuperNode(span lexer.Span, block Node) *ForwardingSuperNode {
	return &ForwardingSuperNode{base{kind: KindForwardingSuper, span: span}, block}
}
