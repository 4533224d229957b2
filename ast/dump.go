package ast

import (
	"fmt"
	"strings"
)

// Dump renders a tree as an indented S-expression-like listing for
// debugging, grounded on the teacher's print_visitor.go but adapted to
// the sealed-interface/type-switch idiom: one type switch instead of a
// NodeVisitor with sixty Visit methods.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func dumpStatements(b *strings.Builder, s *Statements, depth int) {
	for _, stmt := range s.Body {
		dump(b, stmt, depth)
	}
}

func dump(b *strings.Builder, n Node, depth int) {
	indent(b, depth)
	if n == nil {
		b.WriteString("nil\n")
		return
	}

	switch node := n.(type) {
	case *Program:
		fmt.Fprintf(b, "Program\n")
		dumpStatements(b, node.Statements, depth+1)
	case *Statements:
		fmt.Fprintf(b, "Statements\n")
		dumpStatements(b, node, depth+1)
	case *MissingNode:
		fmt.Fprintf(b, "Missing\n")

	case *IntegerNode:
		fmt.Fprintf(b, "Integer(%s)\n", node.Token.Value)
	case *FloatNode:
		fmt.Fprintf(b, "Float(%s)\n", node.Token.Value)
	case *RationalNode:
		fmt.Fprintf(b, "Rational(%s)\n", node.Token.Value)
	case *ImaginaryNode:
		fmt.Fprintf(b, "Imaginary(%s)\n", node.Token.Value)
	case *StringNode:
		fmt.Fprintf(b, "String(%q)\n", node.Content)
	case *InterpolatedStringNode:
		fmt.Fprintf(b, "InterpolatedString\n")
		for _, p := range node.Parts {
			dump(b, p, depth+1)
		}
	case *SymbolNode:
		fmt.Fprintf(b, "Symbol(%q)\n", node.Content)
	case *InterpolatedSymbolNode:
		fmt.Fprintf(b, "InterpolatedSymbol\n")
		for _, p := range node.Parts {
			dump(b, p, depth+1)
		}
	case *XStringNode:
		fmt.Fprintf(b, "XString(%q)\n", node.Content)
	case *RegularExpressionNode:
		fmt.Fprintf(b, "RegularExpression(/%s/%s captures=%v)\n", node.Content, node.Options, node.Captures)
	case *ArrayNode:
		fmt.Fprintf(b, "Array\n")
		for _, e := range node.Elements {
			dump(b, e, depth+1)
		}
	case *HashNode:
		fmt.Fprintf(b, "Hash\n")
		for _, e := range node.Elements {
			dump(b, e, depth+1)
		}
	case *AssocNode:
		fmt.Fprintf(b, "Assoc\n")
		dump(b, node.Key, depth+1)
		dump(b, node.Value, depth+1)
	case *AssocSplatNode:
		fmt.Fprintf(b, "AssocSplat\n")
		dump(b, node.Value, depth+1)
	case *RangeNode:
		fmt.Fprintf(b, "Range(exclusive=%v)\n", node.Exclusive)
		dump(b, node.Left, depth+1)
		dump(b, node.Right, depth+1)
	case *SelfNode:
		fmt.Fprintf(b, "Self\n")
	case *NilNode:
		fmt.Fprintf(b, "Nil\n")
	case *TrueNode:
		fmt.Fprintf(b, "True\n")
	case *FalseNode:
		fmt.Fprintf(b, "False\n")

	case *LocalVariableReadNode:
		fmt.Fprintf(b, "LocalVariableRead(%s)\n", node.Name)
	case *LocalVariableWriteNode:
		fmt.Fprintf(b, "LocalVariableWrite(%s)\n", node.Name)
		dump(b, node.Value, depth+1)
	case *InstanceVariableReadNode:
		fmt.Fprintf(b, "InstanceVariableRead(%s)\n", node.Name)
	case *InstanceVariableWriteNode:
		fmt.Fprintf(b, "InstanceVariableWrite(%s)\n", node.Name)
		dump(b, node.Value, depth+1)
	case *ClassVariableReadNode:
		fmt.Fprintf(b, "ClassVariableRead(%s)\n", node.Name)
	case *ClassVariableWriteNode:
		fmt.Fprintf(b, "ClassVariableWrite(%s)\n", node.Name)
		dump(b, node.Value, depth+1)
	case *GlobalVariableReadNode:
		fmt.Fprintf(b, "GlobalVariableRead(%s)\n", node.Name)
	case *GlobalVariableWriteNode:
		fmt.Fprintf(b, "GlobalVariableWrite(%s)\n", node.Name)
		dump(b, node.Value, depth+1)
	case *ConstantReadNode:
		fmt.Fprintf(b, "ConstantRead(%s)\n", node.Name)
	case *ConstantWriteNode:
		fmt.Fprintf(b, "ConstantWrite(%s)\n", node.Name)
		dump(b, node.Value, depth+1)
	case *ConstantPathNode:
		fmt.Fprintf(b, "ConstantPath(%s)\n", node.Name)
		if node.Parent != nil {
			dump(b, node.Parent, depth+1)
		}
	case *ConstantPathWriteNode:
		fmt.Fprintf(b, "ConstantPathWrite\n")
		dump(b, node.Target, depth+1)
		dump(b, node.Value, depth+1)

	case *CallNode:
		fmt.Fprintf(b, "Call(%s safeNav=%v)\n", node.Name, node.SafeNav)
		if node.Receiver != nil {
			dump(b, node.Receiver, depth+1)
		}
		if node.Arguments != nil {
			dump(b, node.Arguments, depth+1)
		}
		if node.Block != nil {
			dump(b, node.Block, depth+1)
		}
	case *ArgumentsNode:
		fmt.Fprintf(b, "Arguments\n")
		for _, a := range node.Arguments {
			dump(b, a, depth+1)
		}
	case *BlockNode:
		fmt.Fprintf(b, "Block\n")
		if node.Parameters != nil {
			dump(b, node.Parameters, depth+1)
		}
		dumpStatements(b, node.Body, depth+1)
	case *BlockArgumentNode:
		fmt.Fprintf(b, "BlockArgument\n")
		if node.Expression != nil {
			dump(b, node.Expression, depth+1)
		}
	case *SplatNode:
		fmt.Fprintf(b, "Splat\n")
		if node.Expression != nil {
			dump(b, node.Expression, depth+1)
		}

	case *IfNode:
		fmt.Fprintf(b, "If\n")
		dump(b, node.Predicate, depth+1)
		dumpStatements(b, node.Statements, depth+1)
		if node.Consequent != nil {
			dump(b, node.Consequent, depth+1)
		}
	case *UnlessNode:
		fmt.Fprintf(b, "Unless\n")
		dump(b, node.Predicate, depth+1)
		dumpStatements(b, node.Statements, depth+1)
		if node.ElseClause != nil {
			dump(b, node.ElseClause, depth+1)
		}
	case *ElseNode:
		fmt.Fprintf(b, "Else\n")
		dumpStatements(b, node.Statements, depth+1)
	case *WhileNode:
		fmt.Fprintf(b, "While\n")
		dump(b, node.Predicate, depth+1)
		dumpStatements(b, node.Statements, depth+1)
	case *UntilNode:
		fmt.Fprintf(b, "Until\n")
		dump(b, node.Predicate, depth+1)
		dumpStatements(b, node.Statements, depth+1)
	case *ForNode:
		fmt.Fprintf(b, "For\n")
		dump(b, node.Target, depth+1)
		dump(b, node.Iterable, depth+1)
		dumpStatements(b, node.Statements, depth+1)
	case *CaseNode:
		fmt.Fprintf(b, "Case\n")
		if node.Predicate != nil {
			dump(b, node.Predicate, depth+1)
		}
		for _, w := range node.Conditions {
			dump(b, w, depth+1)
		}
		if node.ElseClause != nil {
			dump(b, node.ElseClause, depth+1)
		}
	case *WhenNode:
		fmt.Fprintf(b, "When\n")
		for _, c := range node.Conditions {
			dump(b, c, depth+1)
		}
		dumpStatements(b, node.Statements, depth+1)
	case *BeginNode:
		fmt.Fprintf(b, "Begin\n")
		dumpStatements(b, node.Statements, depth+1)
		if node.Rescue != nil {
			dump(b, node.Rescue, depth+1)
		}
		if node.ElseClause != nil {
			dump(b, node.ElseClause, depth+1)
		}
		if node.EnsureClse != nil {
			dump(b, node.EnsureClse, depth+1)
		}
	case *RescueNode:
		fmt.Fprintf(b, "Rescue\n")
		for _, e := range node.Exceptions {
			dump(b, e, depth+1)
		}
		if node.Reference != nil {
			dump(b, node.Reference, depth+1)
		}
		dumpStatements(b, node.Statements, depth+1)
		if node.Consequent != nil {
			dump(b, node.Consequent, depth+1)
		}
	case *EnsureNode:
		fmt.Fprintf(b, "Ensure\n")
		dumpStatements(b, node.Statements, depth+1)
	case *TernaryNode:
		fmt.Fprintf(b, "Ternary\n")
		dump(b, node.Predicate, depth+1)
		dump(b, node.TrueBranch, depth+1)
		dump(b, node.FalseBranch, depth+1)
	case *AndNode:
		fmt.Fprintf(b, "And\n")
		dump(b, node.Left, depth+1)
		dump(b, node.Right, depth+1)
	case *OrNode:
		fmt.Fprintf(b, "Or\n")
		dump(b, node.Left, depth+1)
		dump(b, node.Right, depth+1)

	case *DefNode:
		fmt.Fprintf(b, "Def(%s)\n", node.Name)
		if node.Receiver != nil {
			dump(b, node.Receiver, depth+1)
		}
		if node.Parameters != nil {
			dump(b, node.Parameters, depth+1)
		}
		dumpStatements(b, node.Body, depth+1)
	case *ClassNode:
		fmt.Fprintf(b, "Class\n")
		dump(b, node.ConstantPath, depth+1)
		if node.Superclass != nil {
			dump(b, node.Superclass, depth+1)
		}
		dumpStatements(b, node.Body, depth+1)
	case *ModuleNode:
		fmt.Fprintf(b, "Module\n")
		dump(b, node.ConstantPath, depth+1)
		dumpStatements(b, node.Body, depth+1)
	case *SclassNode:
		fmt.Fprintf(b, "Sclass\n")
		dump(b, node.Expression, depth+1)
		dumpStatements(b, node.Body, depth+1)
	case *ParametersNode:
		fmt.Fprintf(b, "Parameters\n")
		for _, r := range node.Requireds {
			dump(b, r, depth+1)
		}
		for _, o := range node.Optionals {
			dump(b, o, depth+1)
		}
		if node.Rest != nil {
			dump(b, node.Rest, depth+1)
		}
		for _, p := range node.Posts {
			dump(b, p, depth+1)
		}
		for _, k := range node.Keywords {
			dump(b, k, depth+1)
		}
		if node.KeywordRest != nil {
			dump(b, node.KeywordRest, depth+1)
		}
		if node.Block != nil {
			dump(b, node.Block, depth+1)
		}
		if node.ForwardingAll != nil {
			dump(b, node.ForwardingAll, depth+1)
		}
	case *RequiredParameterNode:
		fmt.Fprintf(b, "RequiredParameter(%s)\n", node.Name)
	case *OptionalParameterNode:
		fmt.Fprintf(b, "OptionalParameter(%s)\n", node.Name)
		dump(b, node.Value, depth+1)
	case *RestParameterNode:
		fmt.Fprintf(b, "RestParameter(%s)\n", node.Name)
	case *KeywordParameterNode:
		fmt.Fprintf(b, "KeywordParameter(%s)\n", node.Name)
		if node.Value != nil {
			dump(b, node.Value, depth+1)
		}
	case *KeywordRestParameterNode:
		fmt.Fprintf(b, "KeywordRestParameter(%s)\n", node.Name)
	case *NoKeywordsParameterNode:
		fmt.Fprintf(b, "NoKeywordsParameter\n")
	case *BlockParameterNode:
		fmt.Fprintf(b, "BlockParameter(%s)\n", node.Name)
	case *ForwardingParameterNode:
		fmt.Fprintf(b, "ForwardingParameter\n")

	case *OperatorAssignmentNode:
		fmt.Fprintf(b, "OperatorAssignment(%s)\n", node.Operator)
		dump(b, node.Target, depth+1)
		dump(b, node.Value, depth+1)
	case *OperatorAndAssignmentNode:
		fmt.Fprintf(b, "OperatorAndAssignment\n")
		dump(b, node.Target, depth+1)
		dump(b, node.Value, depth+1)
	case *OperatorOrAssignmentNode:
		fmt.Fprintf(b, "OperatorOrAssignment\n")
		dump(b, node.Target, depth+1)
		dump(b, node.Value, depth+1)
	case *MultiTargetNode:
		fmt.Fprintf(b, "MultiTarget\n")
		for _, t := range node.Targets {
			dump(b, t, depth+1)
		}

	case *BreakNode:
		fmt.Fprintf(b, "Break\n")
		if node.Arguments != nil {
			dump(b, node.Arguments, depth+1)
		}
	case *NextNode:
		fmt.Fprintf(b, "Next\n")
		if node.Arguments != nil {
			dump(b, node.Arguments, depth+1)
		}
	case *ReturnNode:
		fmt.Fprintf(b, "Return\n")
		if node.Arguments != nil {
			dump(b, node.Arguments, depth+1)
		}
	case *YieldNode:
		fmt.Fprintf(b, "Yield\n")
		if node.Arguments != nil {
			dump(b, node.Arguments, depth+1)
		}
	case *SuperNode:
		fmt.Fprintf(b, "Super(argumentsGiven=%v)\n", node.ArgumentsGiven)
		if node.Arguments != nil {
			dump(b, node.Arguments, depth+1)
		}
		if node.Block != nil {
			dump(b, node.Block, depth+1)
		}
	case *RedoNode:
		fmt.Fprintf(b, "Redo\n")
	case *RetryNode:
		fmt.Fprintf(b, "Retry\n")
	case *DefinedNode:
		fmt.Fprintf(b, "Defined\n")
		dump(b, node.Expression, depth+1)
	case *AliasNode:
		fmt.Fprintf(b, "Alias\n")
		dump(b, node.NewName, depth+1)
		dump(b, node.OldName, depth+1)
	case *UndefNode:
		fmt.Fprintf(b, "Undef\n")
		for _, name := range node.Names {
			dump(b, name, depth+1)
		}
	case *PreExecutionNode:
		fmt.Fprintf(b, "PreExecution\n")
		dumpStatements(b, node.Statements, depth+1)
	case *PostExecutionNode:
		fmt.Fprintf(b, "PostExecution\n")
		dumpStatements(b, node.Statements, depth+1)
	case *SourceFileNode:
		fmt.Fprintf(b, "SourceFile\n")
	case *SourceLineNode:
		fmt.Fprintf(b, "SourceLine\n")
	case *SourceEncodingNode:
		fmt.Fprintf(b, "SourceEncoding\n")
	case *ForwardingArgumentsNode:
		fmt.Fprintf(b, "ForwardingArguments\n")
	case *ForwardingSuperNode:
		fmt.Fprintf(b, "ForwardingSuper\n")
		if node.Block != nil {
			dump(b, node.Block, depth+1)
		}

	default:
		fmt.Fprintf(b, "%s\n", node.NodeKind())
	}
}
