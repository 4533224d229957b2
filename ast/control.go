package ast

import "github.com/akashmaji946/rugo/lexer"

// IfNode unifies the if/elsif/else chain: each elsif reparses as the
// Consequent of the prior IfNode, and a trailing else becomes the
// innermost Consequent (spec.md §4.3). Consequent is nil, an *IfNode
// (elsif), or an *ElseNode.
type IfNode struct {
	base
	Predicate  Node
	Statements *Statements
	Consequent Node
}

func NewIfNode(span lexer.Span, predicate Node, statements *Statements, consequent Node) *IfNode {
	return &IfNode{base{kind: KindIf, span: span}, predicate, statements, consequent}
}

type UnlessNode struct {
	base
	Predicate  Node
	Statements *Statements
	ElseClause *ElseNode
}

func NewUnlessNode(span lexer.Span, predicate Node, statements *Statements, elseClause *ElseNode) *UnlessNode {
	return &UnlessNode{base{kind: KindUnless, span: span}, predicate, statements, elseClause}
}

type ElseNode struct {
	base
	Statements *Statements
}

func NewElseNode(span lexer.Span, statements *Statements) *ElseNode {
	return &ElseNode{base{kind: KindElse, span: span}, statements}
}

type WhileNode struct {
	base
	Predicate  Node
	Statements *Statements
}

func NewWhileNode(span lexer.Span, predicate Node, statements *Statements) *WhileNode {
	return &WhileNode{base{kind: KindWhile, span: span}, predicate, statements}
}

type UntilNode struct {
	base
	Predicate  Node
	Statements *Statements
}

func NewUntilNode(span lexer.Span, predicate Node, statements *Statements) *UntilNode {
	return &UntilNode{base{kind: KindUntil, span: span}, predicate, statements}
}

// ForNode is `for TARGET in ITERABLE do BODY end`; Target may be a
// LocalVariableWriteNode or a MultiTargetNode (`for a, b in ...`). It
// introduces a new scope per spec.md §4.3.
type ForNode struct {
	base
	Target     Node
	Iterable   Node
	Statements *Statements
}

func NewForNode(span lexer.Span, target, iterable Node, statements *Statements) *ForNode {
	return &ForNode{base{kind: KindFor, span: span}, target, iterable, statements}
}

type CaseNode struct {
	base
	Predicate  Node // nil for a caseless `case; when ...` form
	Conditions []*WhenNode
	ElseClause *ElseNode
}

func NewCaseNode(span lexer.Span, predicate Node, conditions []*WhenNode, elseClause *ElseNode) *CaseNode {
	return &CaseNode{base{kind: KindCase, span: span}, predicate, conditions, elseClause}
}

type WhenNode struct {
	base
	Conditions []Node
	Statements *Statements
}

func NewWhenNode(span lexer.Span, conditions []Node, statements *Statements) *WhenNode {
	return &WhenNode{base{kind: KindWhen, span: span}, conditions, statements}
}

// BeginNode is `begin STATEMENTS [rescue...][else...][ensure...] end`.
type BeginNode struct {
	base
	Statements *Statements
	Rescue     *RescueNode
	ElseClause *ElseNode
	EnsureClse *EnsureNode
}

func NewBeginNode(span lexer.Span, statements *Statements, rescue *RescueNode, elseClause *ElseNode, ensure *EnsureNode) *BeginNode {
	return &BeginNode{base{kind: KindBegin, span: span}, statements, rescue, elseClause, ensure}
}

// RescueNode chains to the next `rescue` clause via Consequent, mirroring
// IfNode's elsif chain.
type RescueNode struct {
	base
	Exceptions []Node
	Reference  Node // the `=> e` target, or nil
	Statements *Statements
	Consequent *RescueNode
}

func NewRescueNode(span lexer.Span, exceptions []Node, reference Node, statements *Statements, consequent *RescueNode) *RescueNode {
	return &RescueNode{base{kind: KindRescue, span: span}, exceptions, reference, statements, consequent}
}

type EnsureNode struct {
	base
	Statements *Statements
}

func NewEnsureNode(span lexer.Span, statements *Statements) *EnsureNode {
	return &EnsureNode{base{kind: KindEnsure, span: span}, statements}
}

// TernaryNode is `predicate ? true_branch : false_branch`. Per spec.md
// §4.3, if true_branch's parse recovered an error, the parser
// synthesizes a missing colon position and a MissingNode false branch
// before calling expect(':') — modeled here simply by the caller
// constructing TrueBranch/FalseBranch as MissingNode when recovery
// happened; this struct carries no recovery-specific field.
type TernaryNode struct {
	base
	Predicate   Node
	TrueBranch  Node
	FalseBranch Node
}

func NewTernaryNode(span lexer.Span, predicate, trueBranch, falseBranch Node) *TernaryNode {
	return &TernaryNode{base{kind: KindTernary, span: span}, predicate, trueBranch, falseBranch}
}

// AndNode and OrNode model `&&`/`and` and `||`/`or`: short-circuiting
// composition, distinct from CallNode so a future evaluator need not
// special-case a method named "&&".
type AndNode struct {
	base
	Left  Node
	Right Node
}

func NewAndNode(left, right Node) *AndNode {
	return &AndNode{base{kind: KindAnd, span: left.Span().Union(right.Span())}, left, right}
}

type OrNode struct {
	base
	Left  Node
	Right Node
}

func NewOrNode(left, right Node) *OrNode {
	return &OrNode{base{kind: KindOr, span: left.Span().Union(right.Span())}, left, right}
}
