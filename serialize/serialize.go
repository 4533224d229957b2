/*
File    : rugo/serialize/serialize.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package serialize implements the one-way binary tree dump described
// in spec.md §6: a magic header, a version triple, then the node tree
// itself, each node framed as `u8 kind, u64 payload-length, u64
// span.start, u64 span.end` followed by its per-kind fields, using the
// host's native byte order since the artifact is only ever consumed
// in-process. There is no corresponding Load — the format is write-only,
// matching spec.md §1's Non-goals ("binary serialization" is listed as
// an external collaborator's concern, not the core's).
package serialize

import (
	"bytes"
	"encoding/binary"
	"reflect"

	"github.com/akashmaji946/rugo/ast"
)

const (
	versionMajor byte = 0
	versionMinor byte = 1
	versionPatch byte = 0

	// kindAbsent is a local sentinel, outside ast.NodeKind's range, that
	// marks a nil optional child so the stream stays self-describing
	// without the spec needing a reserved "none" node kind.
	kindAbsent byte = 0xFF
)

var magic = [4]byte{'Y', 'A', 'R', 'P'}

// Dump encodes prog into the binary format, returning the complete
// byte slice (header through trailing terminator).
func Dump(prog *ast.Program) []byte {
	var out bytes.Buffer
	out.Write(magic[:])
	out.WriteByte(versionMajor)
	out.WriteByte(versionMinor)
	out.WriteByte(versionPatch)
	writeNode(&out, prog)
	out.WriteByte(0)
	return out.Bytes()
}

func putU64(out *bytes.Buffer, n int) {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], uint64(n))
	out.Write(b[:])
}

func writeBytes(out *bytes.Buffer, data []byte) {
	putU64(out, len(data))
	out.Write(data)
}

func writeString(out *bytes.Buffer, s string) {
	writeBytes(out, []byte(s))
}

func writeBool(out *bytes.Buffer, v bool) {
	if v {
		out.WriteByte(1)
	} else {
		out.WriteByte(0)
	}
}

func writeStringList(out *bytes.Buffer, list []string) {
	putU64(out, len(list))
	for _, s := range list {
		writeString(out, s)
	}
}

// writeNode frames n as `u8 kind, u64 payload-length, u64 start, u64
// end` followed by the payload this package's kind-specific encoder
// produces; the payload is built in a scratch buffer first so its
// length is known up front.
func writeNode(out *bytes.Buffer, n ast.Node) {
	if isNilNode(n) {
		out.WriteByte(kindAbsent)
		return
	}
	var payload bytes.Buffer
	encodePayload(&payload, n)

	out.WriteByte(byte(n.NodeKind()))
	putU64(out, payload.Len())
	span := n.Span()
	putU64(out, span.Start)
	putU64(out, span.End)
	out.Write(payload.Bytes())
}

// isNilNode reports n == nil for both a bare nil interface and a typed
// nil pointer wrapped in one — fields like *RescueNode or
// *ParametersNode are declared with their concrete pointer type, so an
// absent one arrives here as a non-nil ast.Node holding a nil pointer.
func isNilNode(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func writeNodeList(out *bytes.Buffer, nodes []ast.Node) {
	putU64(out, len(nodes))
	for _, n := range nodes {
		writeNode(out, n)
	}
}

func writeStatements(out *bytes.Buffer, s *ast.Statements) {
	writeNode(out, s)
}

// encodePayload writes the per-kind fields following a node's common
// span/length framing; this is the binary counterpart to ast/dump.go's
// type switch, covering the same node set.
func encodePayload(out *bytes.Buffer, n ast.Node) {
	switch node := n.(type) {
	case *ast.Program:
		writeNode(out, node.Statements)
	case *ast.Statements:
		writeNodeList(out, node.Body)
	case *ast.MissingNode:
		// no fields

	case *ast.IntegerNode:
		writeBytes(out, node.Token.Value)
	case *ast.FloatNode:
		writeBytes(out, node.Token.Value)
	case *ast.RationalNode:
		writeBytes(out, node.Token.Value)
	case *ast.ImaginaryNode:
		writeBytes(out, node.Token.Value)
	case *ast.StringNode:
		writeBytes(out, node.Content)
	case *ast.InterpolatedStringNode:
		writeNodeList(out, node.Parts)
	case *ast.SymbolNode:
		writeBytes(out, node.Content)
	case *ast.InterpolatedSymbolNode:
		writeNodeList(out, node.Parts)
	case *ast.XStringNode:
		writeBytes(out, node.Content)
	case *ast.RegularExpressionNode:
		writeBytes(out, node.Content)
		writeBytes(out, node.Options)
		writeStringList(out, node.Captures)
	case *ast.ArrayNode:
		writeNodeList(out, node.Elements)
	case *ast.HashNode:
		writeNodeList(out, node.Elements)
	case *ast.AssocNode:
		writeNode(out, node.Key)
		writeNode(out, node.Value)
	case *ast.AssocSplatNode:
		writeNode(out, node.Value)
	case *ast.RangeNode:
		writeBool(out, node.Exclusive)
		writeNode(out, node.Left)
		writeNode(out, node.Right)
	case *ast.SelfNode, *ast.NilNode, *ast.TrueNode, *ast.FalseNode:
		// no fields

	case *ast.LocalVariableReadNode:
		writeString(out, node.Name)
	case *ast.LocalVariableWriteNode:
		writeString(out, node.Name)
		writeNode(out, node.Value)
	case *ast.InstanceVariableReadNode:
		writeString(out, node.Name)
	case *ast.InstanceVariableWriteNode:
		writeString(out, node.Name)
		writeNode(out, node.Value)
	case *ast.ClassVariableReadNode:
		writeString(out, node.Name)
	case *ast.ClassVariableWriteNode:
		writeString(out, node.Name)
		writeNode(out, node.Value)
	case *ast.GlobalVariableReadNode:
		writeString(out, node.Name)
	case *ast.GlobalVariableWriteNode:
		writeString(out, node.Name)
		writeNode(out, node.Value)
	case *ast.ConstantReadNode:
		writeString(out, node.Name)
	case *ast.ConstantWriteNode:
		writeString(out, node.Name)
		writeNode(out, node.Value)
	case *ast.ConstantPathNode:
		writeString(out, node.Name)
		writeNode(out, node.Parent)
	case *ast.ConstantPathWriteNode:
		writeNode(out, node.Target)
		writeNode(out, node.Value)

	case *ast.CallNode:
		writeString(out, node.Name)
		writeBool(out, node.SafeNav)
		writeNode(out, node.Receiver)
		writeNode(out, node.Arguments)
		writeNode(out, node.Block)
	case *ast.ArgumentsNode:
		writeNodeList(out, node.Arguments)
	case *ast.BlockNode:
		writeNode(out, node.Parameters)
		writeStatements(out, node.Body)
	case *ast.BlockArgumentNode:
		writeNode(out, node.Expression)
	case *ast.SplatNode:
		writeNode(out, node.Expression)

	case *ast.IfNode:
		writeNode(out, node.Predicate)
		writeStatements(out, node.Statements)
		writeNode(out, node.Consequent)
	case *ast.UnlessNode:
		writeNode(out, node.Predicate)
		writeStatements(out, node.Statements)
		writeNode(out, node.ElseClause)
	case *ast.ElseNode:
		writeStatements(out, node.Statements)
	case *ast.WhileNode:
		writeNode(out, node.Predicate)
		writeStatements(out, node.Statements)
	case *ast.UntilNode:
		writeNode(out, node.Predicate)
		writeStatements(out, node.Statements)
	case *ast.ForNode:
		writeNode(out, node.Target)
		writeNode(out, node.Iterable)
		writeStatements(out, node.Statements)
	case *ast.CaseNode:
		writeNode(out, node.Predicate)
		putU64(out, len(node.Conditions))
		for _, w := range node.Conditions {
			writeNode(out, w)
		}
		writeNode(out, node.ElseClause)
	case *ast.WhenNode:
		writeNodeList(out, node.Conditions)
		writeStatements(out, node.Statements)
	case *ast.BeginNode:
		writeStatements(out, node.Statements)
		writeNode(out, node.Rescue)
		writeNode(out, node.ElseClause)
		writeNode(out, node.EnsureClse)
	case *ast.RescueNode:
		writeNodeList(out, node.Exceptions)
		writeNode(out, node.Reference)
		writeStatements(out, node.Statements)
		writeNode(out, node.Consequent)
	case *ast.EnsureNode:
		writeStatements(out, node.Statements)
	case *ast.TernaryNode:
		writeNode(out, node.Predicate)
		writeNode(out, node.TrueBranch)
		writeNode(out, node.FalseBranch)
	case *ast.AndNode:
		writeNode(out, node.Left)
		writeNode(out, node.Right)
	case *ast.OrNode:
		writeNode(out, node.Left)
		writeNode(out, node.Right)

	case *ast.DefNode:
		writeString(out, node.Name)
		writeNode(out, node.Receiver)
		writeNode(out, node.Parameters)
		writeStatements(out, node.Body)
	case *ast.ClassNode:
		writeNode(out, node.ConstantPath)
		writeNode(out, node.Superclass)
		writeStatements(out, node.Body)
	case *ast.ModuleNode:
		writeNode(out, node.ConstantPath)
		writeStatements(out, node.Body)
	case *ast.SclassNode:
		writeNode(out, node.Expression)
		writeStatements(out, node.Body)
	case *ast.ParametersNode:
		writeNodeList(out, node.Requireds)
		putU64(out, len(node.Optionals))
		for _, o := range node.Optionals {
			writeNode(out, o)
		}
		writeNode(out, node.Rest)
		writeNodeList(out, node.Posts)
		putU64(out, len(node.Keywords))
		for _, k := range node.Keywords {
			writeNode(out, k)
		}
		writeNode(out, node.KeywordRest)
		writeNode(out, node.Block)
		writeNode(out, node.ForwardingAll)
	case *ast.RequiredParameterNode:
		writeString(out, node.Name)
	case *ast.OptionalParameterNode:
		writeString(out, node.Name)
		writeNode(out, node.Value)
	case *ast.RestParameterNode:
		writeString(out, node.Name)
	case *ast.KeywordParameterNode:
		writeString(out, node.Name)
		writeNode(out, node.Value)
	case *ast.KeywordRestParameterNode:
		writeString(out, node.Name)
	case *ast.NoKeywordsParameterNode:
		// no fields
	case *ast.BlockParameterNode:
		writeString(out, node.Name)
	case *ast.ForwardingParameterNode:
		// no fields

	case *ast.OperatorAssignmentNode:
		writeString(out, node.Operator)
		writeNode(out, node.Target)
		writeNode(out, node.Value)
	case *ast.OperatorAndAssignmentNode:
		writeNode(out, node.Target)
		writeNode(out, node.Value)
	case *ast.OperatorOrAssignmentNode:
		writeNode(out, node.Target)
		writeNode(out, node.Value)
	case *ast.MultiTargetNode:
		writeNodeList(out, node.Targets)

	case *ast.BreakNode:
		writeNode(out, node.Arguments)
	case *ast.NextNode:
		writeNode(out, node.Arguments)
	case *ast.ReturnNode:
		writeNode(out, node.Arguments)
	case *ast.YieldNode:
		writeNode(out, node.Arguments)
	case *ast.SuperNode:
		writeBool(out, node.ArgumentsGiven)
		writeNode(out, node.Arguments)
		writeNode(out, node.Block)
	case *ast.RedoNode, *ast.RetryNode:
		// no fields
	case *ast.DefinedNode:
		writeNode(out, node.Expression)
	case *ast.AliasNode:
		writeNode(out, node.NewName)
		writeNode(out, node.OldName)
	case *ast.UndefNode:
		writeNodeList(out, node.Names)
	case *ast.PreExecutionNode:
		writeStatements(out, node.Statements)
	case *ast.PostExecutionNode:
		writeStatements(out, node.Statements)
	case *ast.SourceFileNode, *ast.SourceLineNode, *ast.SourceEncodingNode:
		// no fields
	case *ast.ForwardingArgumentsNode:
		// no fields
	case *ast.ForwardingSuperNode:
		writeNode(out, node.Block)

	default:
		// Every ast.Node variant is handled above; an unmatched type
		// here would be a new node kind that still needs a case.
		panic("serialize: unhandled node kind " + node.NodeKind().String())
	}
}
