/*
File    : rugo/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the syntax tree the parser builds: a sealed Node
// interface plus one struct per node kind, following the same approach
// go/ast itself uses (a closed interface, dispatched by type switch)
// rather than a hand-rolled Visitor with one method per kind.
package ast

import "github.com/akashmaji946/rugo/lexer"

// NodeKind tags which concrete struct a Node value holds, so serialize
// and dump can switch on a plain value instead of a type assertion
// chain when only the tag (not the payload) is needed.
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindStatements
	KindMissing

	KindInteger
	KindFloat
	KindRational
	KindImaginary
	KindString
	KindInterpolatedString
	KindSymbol
	KindInterpolatedSymbol
	KindXString
	KindRegularExpression
	KindArray
	KindHash
	KindAssoc
	KindAssocSplat
	KindRange
	KindSelf
	KindNil
	KindTrue
	KindFalse

	KindLocalVariableRead
	KindLocalVariableWrite
	KindInstanceVariableRead
	KindInstanceVariableWrite
	KindClassVariableRead
	KindClassVariableWrite
	KindGlobalVariableRead
	KindGlobalVariableWrite
	KindConstantRead
	KindConstantWrite
	KindConstantPath
	KindConstantPathWrite

	KindCall
	KindArguments
	KindBlock
	KindBlockArgument
	KindSplat

	KindIf
	KindUnless
	KindElse
	KindWhile
	KindUntil
	KindFor
	KindCase
	KindWhen
	KindBegin
	KindRescue
	KindEnsure
	KindTernary
	KindAnd
	KindOr

	KindDef
	KindClass
	KindModule
	KindSclass
	KindParameters
	KindRequiredParameter
	KindOptionalParameter
	KindRestParameter
	KindKeywordParameter
	KindKeywordRestParameter
	KindNoKeywordsParameter
	KindBlockParameter
	KindForwardingParameter
	KindForwardingArguments
	KindForwardingSuper

	KindOperatorAssignment
	KindOperatorAndAssignment
	KindOperatorOrAssignment
	KindMultiTarget

	KindBreak
	KindNext
	KindReturn
	KindYield
	KindSuper
	KindRedo
	KindRetry
	KindDefined
	KindAlias
	KindUndef
	KindPreExecution
	KindPostExecution
	KindSourceFile
	KindSourceLine
	KindSourceEncoding
	KindScope
)

var nodeKindNames = map[NodeKind]string{
	KindProgram: "PROGRAM", KindStatements: "STATEMENTS", KindMissing: "MISSING",
	KindInteger: "INTEGER", KindFloat: "FLOAT", KindRational: "RATIONAL", KindImaginary: "IMAGINARY",
	KindString: "STRING", KindInterpolatedString: "INTERPOLATED_STRING",
	KindSymbol: "SYMBOL", KindInterpolatedSymbol: "INTERPOLATED_SYMBOL",
	KindXString: "X_STRING", KindRegularExpression: "REGULAR_EXPRESSION",
	KindArray: "ARRAY", KindHash: "HASH", KindAssoc: "ASSOC", KindAssocSplat: "ASSOC_SPLAT",
	KindRange: "RANGE", KindSelf: "SELF", KindNil: "NIL", KindTrue: "TRUE", KindFalse: "FALSE",
	KindLocalVariableRead: "LOCAL_VARIABLE_READ", KindLocalVariableWrite: "LOCAL_VARIABLE_WRITE",
	KindInstanceVariableRead: "INSTANCE_VARIABLE_READ", KindInstanceVariableWrite: "INSTANCE_VARIABLE_WRITE",
	KindClassVariableRead: "CLASS_VARIABLE_READ", KindClassVariableWrite: "CLASS_VARIABLE_WRITE",
	KindGlobalVariableRead: "GLOBAL_VARIABLE_READ", KindGlobalVariableWrite: "GLOBAL_VARIABLE_WRITE",
	KindConstantRead: "CONSTANT_READ", KindConstantWrite: "CONSTANT_WRITE",
	KindConstantPath: "CONSTANT_PATH", KindConstantPathWrite: "CONSTANT_PATH_WRITE",
	KindCall: "CALL", KindArguments: "ARGUMENTS", KindBlock: "BLOCK",
	KindBlockArgument: "BLOCK_ARGUMENT", KindSplat: "SPLAT",
	KindIf: "IF", KindUnless: "UNLESS", KindElse: "ELSE", KindWhile: "WHILE", KindUntil: "UNTIL",
	KindFor: "FOR", KindCase: "CASE", KindWhen: "WHEN",
	KindBegin: "BEGIN", KindRescue: "RESCUE", KindEnsure: "ENSURE",
	KindTernary: "TERNARY", KindAnd: "AND", KindOr: "OR",
	KindDef: "DEF", KindClass: "CLASS", KindModule: "MODULE", KindSclass: "SCLASS",
	KindParameters: "PARAMETERS", KindRequiredParameter: "REQUIRED_PARAMETER",
	KindOptionalParameter: "OPTIONAL_PARAMETER", KindRestParameter: "REST_PARAMETER",
	KindKeywordParameter: "KEYWORD_PARAMETER", KindKeywordRestParameter: "KEYWORD_REST_PARAMETER",
	KindNoKeywordsParameter: "NO_KEYWORDS_PARAMETER", KindBlockParameter: "BLOCK_PARAMETER",
	KindForwardingParameter: "FORWARDING_PARAMETER", KindForwardingArguments: "FORWARDING_ARGUMENTS",
	KindForwardingSuper: "FORWARDING_SUPER",
	KindOperatorAssignment: "OPERATOR_ASSIGNMENT", KindOperatorAndAssignment: "OPERATOR_AND_ASSIGNMENT",
	KindOperatorOrAssignment: "OPERATOR_OR_ASSIGNMENT", KindMultiTarget: "MULTI_TARGET",
	KindBreak: "BREAK", KindNext: "NEXT", KindReturn: "RETURN", KindYield: "YIELD",
	KindSuper: "SUPER", KindRedo: "REDO", KindRetry: "RETRY",
	KindDefined: "DEFINED", KindAlias: "ALIAS", KindUndef: "UNDEF",
	KindPreExecution: "PRE_EXECUTION", KindPostExecution: "POST_EXECUTION",
	KindSourceFile: "SOURCE_FILE", KindSourceLine: "SOURCE_LINE", KindSourceEncoding: "SOURCE_ENCODING",
	KindScope: "SCOPE",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Node is the sealed interface every tree node implements. Every node's
// span is the union of its children's spans (computed by the
// constructor, not re-derived lazily).
type Node interface {
	NodeKind() NodeKind
	Span() lexer.Span
}

// base is embedded by every concrete node struct to satisfy Node
// without repeating the two accessor methods on every type.
type base struct {
	kind NodeKind
	span lexer.Span
}

func (b *base) NodeKind() NodeKind { return b.kind }
func (b *base) Span() lexer.Span   { return b.span }

// MissingNode is the placeholder synthesized wherever error recovery
// needed an expression and none was available. Its span is zero-width
// at the recovery point.
type MissingNode struct {
	base
}

func NewMissingNode(at int) *MissingNode {
	return &MissingNode{base{kind: KindMissing, span: lexer.Span{Start: at, End: at}}}
}

// Program is the root of every parse; Parse always returns one, even
// for a catastrophic failure, per spec.md §6's parse() contract.
type Program struct {
	base
	Locals     *Scope
	Statements *Statements
}

func NewProgram(statements *Statements, locals *Scope) *Program {
	return &Program{base{kind: KindProgram, span: statements.Span()}, locals, statements}
}

// Statements is an ordered list of statement nodes sharing an enclosing
// context (a method body, a block body, the top level, ...).
type Statements struct {
	base
	Body []Node
}

func NewStatements(span lexer.Span, body []Node) *Statements {
	return &Statements{base{kind: KindStatements, span: span}, body}
}
