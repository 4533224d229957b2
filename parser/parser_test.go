package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/rugo/ast"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New([]byte(src))
	return p.Parse()
}

func TestParseSimpleArithmeticIsACall(t *testing.T) {
	prog := parse(t, "1 + 2")
	require.Len(t, prog.Statements.Body, 1)
	call, ok := prog.Statements.Body[0].(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "+", call.Name)
	receiver, ok := call.Receiver.(*ast.IntegerNode)
	require.True(t, ok)
	assert.Equal(t, "1", string(receiver.Token.Value))
	require.Len(t, call.Arguments.Arguments, 1)
	arg, ok := call.Arguments.Arguments[0].(*ast.IntegerNode)
	require.True(t, ok)
	assert.Equal(t, "2", string(arg.Token.Value))
}

func TestParseAssignmentThenRead(t *testing.T) {
	prog := parse(t, "foo = 1\nfoo")
	require.Len(t, prog.Statements.Body, 2)

	write, ok := prog.Statements.Body[0].(*ast.LocalVariableWriteNode)
	require.True(t, ok)
	assert.Equal(t, "foo", write.Name)

	read, ok := prog.Statements.Body[1].(*ast.LocalVariableReadNode)
	require.True(t, ok)
	assert.Equal(t, "foo", read.Name)
}

func TestParseInterpolatedString(t *testing.T) {
	prog := parse(t, `"a#{1+2}b"`)
	require.Len(t, prog.Statements.Body, 1)
	str, ok := prog.Statements.Body[0].(*ast.InterpolatedStringNode)
	require.True(t, ok)
	require.Len(t, str.Parts, 3)
	assert.IsType(t, &ast.StringNode{}, str.Parts[0])
	assert.IsType(t, &ast.Statements{}, str.Parts[1])
	assert.IsType(t, &ast.StringNode{}, str.Parts[2])
}

func TestParseInterpolatedSymbol(t *testing.T) {
	prog := parse(t, `:"x#{y}"`)
	require.Len(t, prog.Statements.Body, 1)
	sym, ok := prog.Statements.Body[0].(*ast.InterpolatedSymbolNode)
	require.True(t, ok)
	require.Len(t, sym.Parts, 2)
}

func TestParseIfElsifElseChain(t *testing.T) {
	prog := parse(t, "if a\n1\nelsif b\n2\nelse\n3\nend")
	require.Len(t, prog.Statements.Body, 1)
	top, ok := prog.Statements.Body[0].(*ast.IfNode)
	require.True(t, ok)

	elsif, ok := top.Consequent.(*ast.IfNode)
	require.True(t, ok)

	elseNode, ok := elsif.Consequent.(*ast.ElseNode)
	require.True(t, ok)
	require.Len(t, elseNode.Statements.Body, 1)
}

func TestParseRegexpNamedCaptures(t *testing.T) {
	prog := parse(t, "/(?<n>a)(?<m>b)/")
	require.Len(t, prog.Statements.Body, 1)
	re, ok := prog.Statements.Body[0].(*ast.RegularExpressionNode)
	require.True(t, ok)
	assert.Equal(t, []string{"n", "m"}, re.Captures)
}

func TestParseTrailingOperatorRecoversWithDiagnostic(t *testing.T) {
	p := New([]byte("a + "))
	prog := p.Parse()
	require.Len(t, prog.Statements.Body, 1)
	call, ok := prog.Statements.Body[0].(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "+", call.Name)
	require.Len(t, call.Arguments.Arguments, 1)
	assert.IsType(t, &ast.MissingNode{}, call.Arguments.Arguments[0])
	assert.True(t, p.Diagnostics().HasErrors())
	assert.Equal(t, 1, p.Diagnostics().Len())
}

func TestParseLocalVsCallDisambiguation(t *testing.T) {
	prog := parse(t, "foo = 1\nfoo\nbar")
	require.Len(t, prog.Statements.Body, 3)
	assert.IsType(t, &ast.LocalVariableWriteNode{}, prog.Statements.Body[0])
	assert.IsType(t, &ast.LocalVariableReadNode{}, prog.Statements.Body[1])
	assert.IsType(t, &ast.CallNode{}, prog.Statements.Body[2])
}

func TestParseMethodChainAndIndex(t *testing.T) {
	prog := parse(t, "foo.bar[0] = 1")
	require.Len(t, prog.Statements.Body, 1)
	call, ok := prog.Statements.Body[0].(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "[]=", call.Name)
	inner, ok := call.Receiver.(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "bar", inner.Name)
}

func TestParseOperatorAssignment(t *testing.T) {
	prog := parse(t, "x = 1\nx += 2")
	require.Len(t, prog.Statements.Body, 2)
	opAssign, ok := prog.Statements.Body[1].(*ast.OperatorAssignmentNode)
	require.True(t, ok)
	assert.Equal(t, "+", opAssign.Operator)
}

func TestParseTernary(t *testing.T) {
	prog := parse(t, "a ? 1 : 2")
	require.Len(t, prog.Statements.Body, 1)
	ternary, ok := prog.Statements.Body[0].(*ast.TernaryNode)
	require.True(t, ok)
	assert.IsType(t, &ast.IntegerNode{}, ternary.TrueBranch)
	assert.IsType(t, &ast.IntegerNode{}, ternary.FalseBranch)
}

func TestParseDefWithParametersAndBody(t *testing.T) {
	prog := parse(t, "def add(a, b = 1, *rest)\n  a + b\nend")
	require.Len(t, prog.Statements.Body, 1)
	def, ok := prog.Statements.Body[0].(*ast.DefNode)
	require.True(t, ok)
	assert.Equal(t, "add", def.Name)
	require.Len(t, def.Parameters.Requireds, 1)
	require.Len(t, def.Parameters.Optionals, 1)
	require.NotNil(t, def.Parameters.Rest)
	assert.Equal(t, "rest", def.Parameters.Rest.Name)
}

func TestParseEndlessDef(t *testing.T) {
	prog := parse(t, "def square(x) = x * x")
	require.Len(t, prog.Statements.Body, 1)
	def, ok := prog.Statements.Body[0].(*ast.DefNode)
	require.True(t, ok)
	require.Len(t, def.Body.Body, 1)
	assert.IsType(t, &ast.CallNode{}, def.Body.Body[0])
}

func TestParseEndlessDefWithNoParameters(t *testing.T) {
	prog := parse(t, "def name = 1")
	require.Len(t, prog.Statements.Body, 1)
	def, ok := prog.Statements.Body[0].(*ast.DefNode)
	require.True(t, ok)
	assert.Equal(t, "name", def.Name)
	assert.Nil(t, def.Parameters)
	require.Len(t, def.Body.Body, 1)
	assert.IsType(t, &ast.IntegerNode{}, def.Body.Body[0])
}

func TestParseSetterDefAttachesEqualToName(t *testing.T) {
	prog := parse(t, "def name=(v)\n  v\nend")
	require.Len(t, prog.Statements.Body, 1)
	def, ok := prog.Statements.Body[0].(*ast.DefNode)
	require.True(t, ok)
	assert.Equal(t, "name=", def.Name)
	require.Len(t, def.Parameters.Requireds, 1)
}

func TestParseSingletonDefOnConstantReceiver(t *testing.T) {
	prog := parse(t, "def Dog.bark\n  1\nend")
	require.Len(t, prog.Statements.Body, 1)
	def, ok := prog.Statements.Body[0].(*ast.DefNode)
	require.True(t, ok)
	assert.Equal(t, "bark", def.Name)
	require.NotNil(t, def.Receiver)
	assert.IsType(t, &ast.ConstantReadNode{}, def.Receiver)
}

func TestParseScopeResolutionCallOnNonConstant(t *testing.T) {
	prog := parse(t, "Foo::bar")
	require.Len(t, prog.Statements.Body, 1)
	call, ok := prog.Statements.Body[0].(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "bar", call.Name)
}

func TestParseBlockSharesEnclosingScope(t *testing.T) {
	prog := parse(t, "x = 1\n[1, 2].each do |y|\n  x\nend")
	require.Len(t, prog.Statements.Body, 2)
	call, ok := prog.Statements.Body[1].(*ast.CallNode)
	require.True(t, ok)
	block, ok := call.Block.(*ast.BlockNode)
	require.True(t, ok)
	require.Len(t, block.Body.Body, 1)
	assert.IsType(t, &ast.LocalVariableReadNode{}, block.Body.Body[0])
}

func TestParseBeginRescueEnsure(t *testing.T) {
	prog := parse(t, "begin\n  1\nrescue StandardError => e\n  2\nensure\n  3\nend")
	require.Len(t, prog.Statements.Body, 1)
	begin, ok := prog.Statements.Body[0].(*ast.BeginNode)
	require.True(t, ok)
	require.NotNil(t, begin.Rescue)
	require.Len(t, begin.Rescue.Exceptions, 1)
	require.NotNil(t, begin.Rescue.Reference)
	require.NotNil(t, begin.EnsureClse)
}

func TestParseCaseWhen(t *testing.T) {
	prog := parse(t, "case x\nwhen 1, 2\n  :small\nelse\n  :other\nend")
	require.Len(t, prog.Statements.Body, 1)
	c, ok := prog.Statements.Body[0].(*ast.CaseNode)
	require.True(t, ok)
	require.Len(t, c.Conditions, 1)
	assert.Len(t, c.Conditions[0].Conditions, 2)
	require.NotNil(t, c.ElseClause)
}

func TestParseClassWithSuperclass(t *testing.T) {
	prog := parse(t, "class Dog < Animal\n  def bark\n    1\n  end\nend")
	require.Len(t, prog.Statements.Body, 1)
	class, ok := prog.Statements.Body[0].(*ast.ClassNode)
	require.True(t, ok)
	require.NotNil(t, class.Superclass)
	require.Len(t, class.Body.Body, 1)
}

func TestParseMultiAssignment(t *testing.T) {
	prog := parse(t, "a, b = 1, 2")
	require.Len(t, prog.Statements.Body, 1)
	multi, ok := prog.Statements.Body[0].(*ast.MultiTargetNode)
	require.True(t, ok)
	require.Len(t, multi.Targets, 2)
	assert.IsType(t, &ast.LocalVariableWriteNode{}, multi.Targets[0])
	assert.IsType(t, &ast.LocalVariableWriteNode{}, multi.Targets[1])
}

func TestParseModifierIf(t *testing.T) {
	prog := parse(t, "return 1 if x")
	require.Len(t, prog.Statements.Body, 1)
	ifNode, ok := prog.Statements.Body[0].(*ast.IfNode)
	require.True(t, ok)
	require.Len(t, ifNode.Statements.Body, 1)
	assert.IsType(t, &ast.ReturnNode{}, ifNode.Statements.Body[0])
}

func TestParseUnclosedParenRecovers(t *testing.T) {
	p := New([]byte("foo(1, 2"))
	prog := p.Parse()
	require.Len(t, prog.Statements.Body, 1)
	assert.True(t, p.Diagnostics().HasErrors())
	call, ok := prog.Statements.Body[0].(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "foo", call.Name)
	require.Len(t, call.Arguments.Arguments, 2)
}
