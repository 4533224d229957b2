package ast

import "github.com/akashmaji946/rugo/lexer"

// LocalVariableReadNode is a bare identifier that resolved against the
// active scope's locals list (spec.md §3.4's "local-vs-call
// disambiguation"); an identifier that does NOT resolve becomes a
// zero-argument CallNode instead.
type LocalVariableReadNode struct {
	base
	Name string
}

func NewLocalVariableReadNode(t lexer.Token) *LocalVariableReadNode {
	return &LocalVariableReadNode{base{kind: KindLocalVariableRead, span: t.Span}, string(t.Value)}
}

// LocalVariableWriteNode is produced in place of a Read when `=`
// reinterprets the left operand (spec.md §4.3's assignment rule), or
// directly for a for-loop target. Parameters produce their own
// parameter node kinds instead.
type LocalVariableWriteNode struct {
	base
	Name  string
	Value Node
}

func NewLocalVariableWriteNode(span lexer.Span, name string, value Node) *LocalVariableWriteNode {
	return &LocalVariableWriteNode{base{kind: KindLocalVariableWrite, span: span}, name, value}
}

type InstanceVariableReadNode struct {
	base
	Name string
}

func NewInstanceVariableReadNode(t lexer.Token) *InstanceVariableReadNode {
	return &InstanceVariableReadNode{base{kind: KindInstanceVariableRead, span: t.Span}, string(t.Value)}
}

type InstanceVariableWriteNode struct {
	base
	Name  string
	Value Node
}

func NewInstanceVariableWriteNode(span lexer.Span, name string, value Node) *InstanceVariableWriteNode {
	return &InstanceVariableWriteNode{base{kind: KindInstanceVariableWrite, span: span}, name, value}
}

type ClassVariableReadNode struct {
	base
	Name string
}

func NewClassVariableReadNode(t lexer.Token) *ClassVariableReadNode {
	return &ClassVariableReadNode{base{kind: KindClassVariableRead, span: t.Span}, string(t.Value)}
}

type ClassVariableWriteNode struct {
	base
	Name  string
	Value Node
}

func NewClassVariableWriteNode(span lexer.Span, name string, value Node) *ClassVariableWriteNode {
	return &ClassVariableWriteNode{base{kind: KindClassVariableWrite, span: span}, name, value}
}

type GlobalVariableReadNode struct {
	base
	Name string
}

func NewGlobalVariableReadNode(t lexer.Token) *GlobalVariableReadNode {
	return &GlobalVariableReadNode{base{kind: KindGlobalVariableRead, span: t.Span}, string(t.Value)}
}

type GlobalVariableWriteNode struct {
	base
	Name  string
	Value Node
}

func NewGlobalVariableWriteNode(span lexer.Span, name string, value Node) *GlobalVariableWriteNode {
	return &GlobalVariableWriteNode{base{kind: KindGlobalVariableWrite, span: span}, name, value}
}

type ConstantReadNode struct {
	base
	Name string
}

func NewConstantReadNode(t lexer.Token) *ConstantReadNode {
	return &ConstantReadNode{base{kind: KindConstantRead, span: t.Span}, string(t.Value)}
}

type ConstantWriteNode struct {
	base
	Name  string
	Value Node
}

func NewConstantWriteNode(span lexer.Span, name string, value Node) *ConstantWriteNode {
	return &ConstantWriteNode{base{kind: KindConstantWrite, span: span}, name, value}
}

// ConstantPathNode is `Parent::Child`; Parent is nil for a leading `::`
// (top-level constant reference).
type ConstantPathNode struct {
	base
	Parent Node
	Name   string
}

func NewConstantPathNode(span lexer.Span, parent Node, name string) *ConstantPathNode {
	return &ConstantPathNode{base{kind: KindConstantPath, span: span}, parent, name}
}

type ConstantPathWriteNode struct {
	base
	Target Node
	Value  Node
}

func NewConstantPathWriteNode(span lexer.Span, target, value Node) *ConstantPathWriteNode {
	return &ConstantPathWriteNode{base{kind: KindConstantPathWrite, span: span}, target, value}
}
