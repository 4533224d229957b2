package ast

import "github.com/akashmaji946/rugo/lexer"

// DefNode is `def name(params) ... end` or the singleton form
// `def self.name(params) ... end` (Receiver non-nil).
type DefNode struct {
	base
	Name       string
	Receiver   Node // non-nil for `def self.x` / `def obj.x`
	Parameters *ParametersNode
	Locals     *Scope
	Body       *Statements
}

func NewDefNode(span lexer.Span, name string, receiver Node, parameters *ParametersNode, locals *Scope, body *Statements) *DefNode {
	return &DefNode{base{kind: KindDef, span: span}, name, receiver, parameters, locals, body}
}

// ClassNode is `class Name [< Superclass] ... end`; Superclass is nil
// for a class with no explicit parent.
type ClassNode struct {
	base
	ConstantPath Node
	Superclass   Node
	Locals       *Scope
	Body         *Statements
}

func NewClassNode(span lexer.Span, constantPath, superclass Node, locals *Scope, body *Statements) *ClassNode {
	return &ClassNode{base{kind: KindClass, span: span}, constantPath, superclass, locals, body}
}

type ModuleNode struct {
	base
	ConstantPath Node
	Locals       *Scope
	Body         *Statements
}

func NewModuleNode(span lexer.Span, constantPath Node, locals *Scope, body *Statements) *ModuleNode {
	return &ModuleNode{base{kind: KindModule, span: span}, constantPath, locals, body}
}

// SclassNode is `class << self ... end` (singleton class reopen).
type SclassNode struct {
	base
	Expression Node
	Locals     *Scope
	Body       *Statements
}

func NewSclassNode(span lexer.Span, expression Node, locals *Scope, body *Statements) *SclassNode {
	return &SclassNode{base{kind: KindSclass, span: span}, expression, locals, body}
}

// ParametersNode groups every parameter kind in Ruby's fixed ordering:
// required, optional, a single rest (or none), post-rest required,
// keywords, a single keyword-rest (or none/NoKeyword), and a trailing
// block parameter.
type ParametersNode struct {
	base
	Requireds     []Node // *RequiredParameterNode or *MultiTargetNode
	Optionals     []*OptionalParameterNode
	Rest          *RestParameterNode // nil if absent
	Posts         []Node
	Keywords      []*KeywordParameterNode
	KeywordRest   Node // *KeywordRestParameterNode, *NoKeywordsParameterNode, or nil
	Block         *BlockParameterNode
	ForwardingAll *ForwardingParameterNode // `...` shorthand, or nil
}

func NewParametersNode(span lexer.Span, requireds []Node, optionals []*OptionalParameterNode, rest *RestParameterNode, posts []Node, keywords []*KeywordParameterNode, keywordRest Node, block *BlockParameterNode, forwardingAll *ForwardingParameterNode) *ParametersNode {
	return &ParametersNode{base{kind: KindParameters, span: span}, requireds, optionals, rest, posts, keywords, keywordRest, block, forwardingAll}
}

type RequiredParameterNode struct {
	base
	Name string
}

func NewRequiredParameterNode(t lexer.Token) *RequiredParameterNode {
	return &RequiredParameterNode{base{kind: KindRequiredParameter, span: t.Span}, string(t.Value)}
}

type OptionalParameterNode struct {
	base
	Name  string
	Value Node
}

func NewOptionalParameterNode(span lexer.Span, name string, value Node) *OptionalParameterNode {
	return &OptionalParameterNode{base{kind: KindOptionalParameter, span: span}, name, value}
}

// RestParameterNode is `*name` or the bare `*`; Name is empty for the
// bare form.
type RestParameterNode struct {
	base
	Name string
}

func NewRestParameterNode(span lexer.Span, name string) *RestParameterNode {
	return &RestParameterNode{base{kind: KindRestParameter, span: span}, name}
}

type KeywordParameterNode struct {
	base
	Name  string
	Value Node // nil for a required keyword (`name:` with no default)
}

func NewKeywordParameterNode(span lexer.Span, name string, value Node) *KeywordParameterNode {
	return &KeywordParameterNode{base{kind: KindKeywordParameter, span: span}, name, value}
}

// KeywordRestParameterNode is `**name` or the bare `**`.
type KeywordRestParameterNode struct {
	base
	Name string
}

func NewKeywordRestParameterNode(span lexer.Span, name string) *KeywordRestParameterNode {
	return &KeywordRestParameterNode{base{kind: KindKeywordRestParameter, span: span}, name}
}

// NoKeywordsParameterNode is the explicit `**nil` marker refusing all
// keyword arguments.
type NoKeywordsParameterNode struct{ base }

func NewNoKeywordsParameterNode(span lexer.Span) *NoKeywordsParameterNode {
	return &NoKeywordsParameterNode{base{kind: KindNoKeywordsParameter, span: span}}
}

// BlockParameterNode is `&name` or the bare `&`.
type BlockParameterNode struct {
	base
	Name string
}

func NewBlockParameterNode(span lexer.Span, name string) *BlockParameterNode {
	return &BlockParameterNode{base{kind: KindBlockParameter, span: span}, name}
}

// ForwardingParameterNode is the `...` parameter-list shorthand that
// forwards all positional, keyword, and block arguments.
type ForwardingParameterNode struct{ base }

func NewForwardingParameterNode(t lexer.Token) *ForwardingParameterNode {
	return &ForwardingParameterNode{base{kind: KindForwardingParameter, span: t.Span}}
}
