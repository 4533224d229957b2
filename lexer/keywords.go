package lexer

// keywords maps exact, case-sensitive keyword spellings to their token
// kind, per spec.md §4.2. defined? keeps its trailing '?' as part of the
// spelling, matching the source.
var keywords = map[string]TokenKind{
	"alias":        KeywordAlias,
	"and":          KeywordAnd,
	"begin":        KeywordBegin,
	"BEGIN":        KeywordBeginUpper,
	"break":        KeywordBreak,
	"case":         KeywordCase,
	"class":        KeywordClass,
	"def":          KeywordDef,
	"defined?":     KeywordDefinedQ,
	"do":           KeywordDo,
	"else":         KeywordElse,
	"elsif":        KeywordElsif,
	"end":          KeywordEnd,
	"END":          KeywordEndUpper,
	"ensure":       KeywordEnsure,
	"false":        KeywordFalse,
	"for":          KeywordFor,
	"if":           KeywordIf,
	"in":           KeywordIn,
	"module":       KeywordModule,
	"next":         KeywordNext,
	"nil":          KeywordNil,
	"not":          KeywordNot,
	"or":           KeywordOr,
	"redo":         KeywordRedo,
	"rescue":       KeywordRescue,
	"retry":        KeywordRetry,
	"return":       KeywordReturn,
	"self":         KeywordSelf,
	"super":        KeywordSuper,
	"then":         KeywordThen,
	"true":         KeywordTrue,
	"undef":        KeywordUndef,
	"unless":       KeywordUnless,
	"until":        KeywordUntil,
	"when":         KeywordWhen,
	"while":        KeywordWhile,
	"yield":        KeywordYield,
	"__ENCODING__": KeywordEncoding,
	"__LINE__":     KeywordLine,
	"__FILE__":     KeywordFile,
}

// LookupKeyword reports whether ident is an exact keyword spelling and,
// if so, its token kind.
func LookupKeyword(ident string) (TokenKind, bool) {
	kind, ok := keywords[ident]
	return kind, ok
}
