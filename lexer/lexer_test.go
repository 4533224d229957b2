package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lx := New([]byte(src))
	var toks []Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexSimpleArithmetic(t *testing.T) {
	toks := lexAll(t, "1 + 2")
	require.Len(t, toks, 4)
	assert.Equal(t, []TokenKind{Integer, Plus, Integer, EOF}, kinds(toks))
}

func TestLexMaximalMunchOperators(t *testing.T) {
	cases := map[string]TokenKind{
		"=":   Equal,
		"==":  EqualEqual,
		"===": EqualEqualEqual,
		"<=>": Spaceship,
		"<=":  LessEqual,
		"<<=": LessLessEqual,
		"&&=": AmpersandAmpersandEqual,
		"&.":  AmpersandDot,
		"**":  StarStar,
		"...": DotDotDot,
	}
	for src, want := range cases {
		toks := lexAll(t, src)
		require.Len(t, toks, 2, "src=%q", src)
		assert.Equal(t, want, toks[0].Kind, "src=%q", src)
	}
}

func TestLexIdentifierVsConstantVsKeyword(t *testing.T) {
	toks := lexAll(t, "foo Bar if")
	kindsGot := kinds(toks)
	assert.Equal(t, []TokenKind{Identifier, Constant, KeywordIf, EOF}, kindsGot)
}

func TestLexKeywordAfterDotIsMethodName(t *testing.T) {
	toks := lexAll(t, "x.class")
	require.Len(t, toks, 4)
	assert.Equal(t, []TokenKind{Identifier, Dot, Identifier, EOF}, kinds(toks))
}

func TestLexInstanceAndClassVariables(t *testing.T) {
	toks := lexAll(t, "@foo @@bar")
	require.Len(t, toks, 3)
	assert.Equal(t, InstanceVariable, toks[0].Kind)
	assert.Equal(t, ClassVariable, toks[1].Kind)
}

func TestLexGlobalVariableForms(t *testing.T) {
	toks := lexAll(t, "$stdout $1 $&")
	require.Len(t, toks, 4)
	assert.Equal(t, GlobalVariable, toks[0].Kind)
	assert.Equal(t, GlobalVariableNthRef, toks[1].Kind)
	assert.Equal(t, GlobalVariableBackref, toks[2].Kind)
}

func TestLexNumericLiterals(t *testing.T) {
	cases := map[string]TokenKind{
		"123":    Integer,
		"0b101":  Integer,
		"0o17":   Integer,
		"0xFF":   Integer,
		"1.5":    Float,
		"1.5e10": Float,
		"1r":     Rational,
		"1i":     Imaginary,
		"1ri":    Imaginary,
	}
	for src, want := range cases {
		toks := lexAll(t, src)
		require.Len(t, toks, 2, "src=%q", src)
		assert.Equal(t, want, toks[0].Kind, "src=%q", src)
	}
}

func TestLexNumericTrailingUnderscoreIsDiagnostic(t *testing.T) {
	lx := New([]byte("1_000_ "))
	for {
		tok := lx.NextToken()
		if tok.Kind == EOF {
			break
		}
	}
	require.NotEmpty(t, lx.Diagnostics())
}

func TestLexStringWithoutInterpolation(t *testing.T) {
	toks := lexAll(t, "'hi'")
	require.Len(t, toks, 4)
	assert.Equal(t, []TokenKind{StringBegin, StringContent, StringEnd, EOF}, kinds(toks))
}

func TestLexDoubleQuotedStringWithInterpolation(t *testing.T) {
	toks := lexAll(t, `"a#{1}b"`)
	assert.Equal(t, []TokenKind{
		StringBegin, StringContent, EmbexprBegin, Integer, EmbexprEnd, StringContent, StringEnd, EOF,
	}, kinds(toks))
}

func TestLexSymbol(t *testing.T) {
	toks := lexAll(t, ":foo")
	require.Len(t, toks, 3)
	assert.Equal(t, SymbolBegin, toks[0].Kind)
	assert.Equal(t, Identifier, toks[1].Kind)
}

func TestLexDynamicSymbol(t *testing.T) {
	toks := lexAll(t, `:"x#{y}"`)
	assert.Equal(t, []TokenKind{
		SymbolBegin, StringContent, EmbexprBegin, Identifier, EmbexprEnd, StringEnd, EOF,
	}, kinds(toks))
}

func TestLexRegexpWithOptions(t *testing.T) {
	toks := lexAll(t, "/abc/im")
	require.Len(t, toks, 4)
	assert.Equal(t, []TokenKind{RegexpBegin, StringContent, RegexpEnd, EOF}, kinds(toks))
}

func TestLexSlashAfterIdentifierIsDivision(t *testing.T) {
	toks := lexAll(t, "a / b")
	assert.Equal(t, []TokenKind{Identifier, Slash, Identifier, EOF}, kinds(toks))
}

// TestLexSlashFollowedByNonSpaceOpensRegexpRegardlessOfPreviousToken
// pins the byte-peek rule: the decision is made on the byte right after
// '/', not on whether the previous token could end an expression.
func TestLexSlashFollowedByNonSpaceOpensRegexpRegardlessOfPreviousToken(t *testing.T) {
	toks := lexAll(t, "foo /bar/")
	assert.Equal(t, []TokenKind{Identifier, RegexpBegin, StringContent, RegexpEnd, EOF}, kinds(toks))
}

func TestLexSlashFollowedByNonSpaceAfterParenOpensRegexp(t *testing.T) {
	toks := lexAll(t, "(1+2) /x/")
	assert.Equal(t, []TokenKind{
		ParenLeft, Integer, Plus, Integer, ParenRight, RegexpBegin, StringContent, RegexpEnd, EOF,
	}, kinds(toks))
}

func TestLexSlashFollowedBySpaceAfterParenIsDivision(t *testing.T) {
	toks := lexAll(t, "(1+2) / x")
	assert.Equal(t, []TokenKind{
		ParenLeft, Integer, Plus, Integer, ParenRight, Slash, Identifier, EOF,
	}, kinds(toks))
}

func TestLexPercentWordList(t *testing.T) {
	toks := lexAll(t, "%w[a b]")
	assert.Equal(t, []TokenKind{
		StringBegin, StringContent, WordsSep, StringContent, StringEnd, EOF,
	}, kinds(toks))
}

func TestLexCommentAndNewline(t *testing.T) {
	toks := lexAll(t, "1 # comment\n2")
	assert.Equal(t, []TokenKind{Integer, Comment, Newline, Integer, EOF}, kinds(toks))
}

func TestLexMagicEncodingComment(t *testing.T) {
	lx := New([]byte("# encoding: ascii\n1"))
	for {
		tok := lx.NextToken()
		if tok.Kind == EOF {
			break
		}
	}
	assert.Equal(t, "ascii", lx.Encoding().Name)
}

func TestLexUnknownEncodingReportsDiagnostic(t *testing.T) {
	lx := New([]byte("# encoding: bogus-7\n1"))
	for {
		tok := lx.NextToken()
		if tok.Kind == EOF {
			break
		}
	}
	require.NotEmpty(t, lx.Diagnostics())
}

func TestLexEndUpperStopsLexing(t *testing.T) {
	toks := lexAll(t, "1\n__END__\nanything here")
	assert.Equal(t, []TokenKind{Integer, Newline, EOF}, kinds(toks))
}

func TestLexEmbdocWindowIsOneCommentAndEmitsBeginLineEndTokens(t *testing.T) {
	lx := New([]byte("=begin\ncomment line\n=end\n1"))
	var toks []Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	assert.Equal(t, []TokenKind{EmbdocBegin, EmbdocLine, EmbdocEnd, Newline, Integer, EOF}, kinds(toks))

	require.Len(t, lx.Comments(), 1)
	comment := lx.Comments()[0]
	assert.Equal(t, CommentEmbdoc, comment.Kind)
	assert.Equal(t, "=begin\ncomment line\n=end", string(lx.Src[comment.Span.Start:comment.Span.End]))
}

func TestLexEqualNotAtLineStartIsNeverEmbdoc(t *testing.T) {
	toks := lexAll(t, "a =begin")
	assert.Equal(t, []TokenKind{Identifier, Equal, KeywordBegin, EOF}, kinds(toks))
}

func TestLexUnterminatedEmbdocReportsDiagnostic(t *testing.T) {
	lx := New([]byte("=begin\nnever closed"))
	for {
		tok := lx.NextToken()
		if tok.Kind == EOF {
			break
		}
	}
	require.NotEmpty(t, lx.Diagnostics())
	require.Len(t, lx.Comments(), 1)
}

func TestLexBracketLeftRightAfterDot(t *testing.T) {
	toks := lexAll(t, "x.[]")
	assert.Equal(t, []TokenKind{Identifier, Dot, BracketLeftRight, EOF}, kinds(toks))
}

func TestLexLambdaBegin(t *testing.T) {
	toks := lexAll(t, "-> { 1 }")
	assert.Equal(t, []TokenKind{MinusGreater, LambdaBegin, Integer, BraceRight, EOF}, kinds(toks))
}

func TestLexHeredocIntroducerIsRecognizedButBodyNotLexed(t *testing.T) {
	toks := lexAll(t, "x = <<~SQL\nSELECT 1\nSQL\n")
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, Equal, toks[1].Kind)
	assert.Equal(t, HeredocBegin, toks[2].Kind)
}

func TestModeStackNeverEmpties(t *testing.T) {
	lx := New([]byte("'unterminated"))
	for {
		tok := lx.NextToken()
		if tok.Kind == EOF {
			break
		}
	}
	assert.Equal(t, 1, lx.ModeDepth())
}

func TestUnescapeMinimalOnlyBackslashAndQuote(t *testing.T) {
	out, borrowed := Unescape([]byte(`a\nb\'c`), UnescapeMinimal)
	assert.False(t, borrowed)
	assert.Equal(t, `a\nb'c`, string(out))
}

func TestUnescapeAllControlSequences(t *testing.T) {
	out, _ := Unescape([]byte(`\n\t\s\\`), UnescapeAll)
	assert.Equal(t, "\n\t \\", string(out))
}

func TestUnescapeHexAndOctal(t *testing.T) {
	out, _ := Unescape([]byte(`\x41\101`), UnescapeAll)
	assert.Equal(t, "AA", string(out))
}

func TestUnescapeUnicodeBraceForm(t *testing.T) {
	out, _ := Unescape([]byte(`\u{48 69}`), UnescapeAll)
	assert.Equal(t, "Hi", string(out))
}

func TestUnescapeNoneBorrowsSource(t *testing.T) {
	src := []byte(`a\nb`)
	out, borrowed := Unescape(src, UnescapeNone)
	assert.True(t, borrowed)
	assert.Equal(t, src, out)
}

func TestNewlineIndexLineCol(t *testing.T) {
	var idx NewlineIndex
	idx.Record(5)
	idx.Record(10)
	line, col := idx.LineCol(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, col)
	line, col = idx.LineCol(7)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
	line, col = idx.LineCol(11)
	assert.Equal(t, 3, line)
	assert.Equal(t, 0, col)
}
