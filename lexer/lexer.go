// Package lexer implements the byte-cursor, mode-aware lexer described in
// spec.md §4.1–§4.2: a lex-mode stack drives a switch over the current
// mode, producing a token stream with one token of lookahead built in by
// callers (the lexer itself only ever advances forward).
package lexer

import "strings"

// CommentKind classifies an entry in the comment list the lexer
// accumulates transparently to the parser.
type CommentKind int

const (
	CommentInline CommentKind = iota
	CommentEmbdoc
	CommentEndUpper
)

// Comment is one captured comment, inline `#...`, an `=begin`/`=end`
// window, or the `__END__` trailer.
type Comment struct {
	Kind CommentKind
	Span Span
}

// Diagnostic is the lexer's view of an error/warning record; it mirrors
// diag.Diagnostic's shape without importing the diag package, so lexer
// stays leaf-level per spec.md §2's dependency table.
type Diagnostic struct {
	Span    Span
	Message string
}

// Lexer is the byte-cursor scanner. It never looks behind more than the
// immediately preceding token (via previousKind) and never ahead beyond
// what a single NextToken call consumes.
type Lexer struct {
	Src []byte
	pos int

	modes    *ModeStack
	newlines NewlineIndex

	encoding *Encoding
	decode   DecodeCallback

	comments    []Comment
	diagnostics []Diagnostic

	previousKind TokenKind
	atLineStart  bool

	// embdocStart is the byte offset of the '=begin' that opened the
	// current embdoc window, so the whole window can be recorded as one
	// Comment once '=end' (or EOF) closes it.
	embdocStart int
}

// New returns a Lexer positioned at the start of src, with Default on
// the bottom of its mode stack and the default (UTF-8) encoding active.
func New(src []byte) *Lexer {
	return &Lexer{
		Src:          src,
		modes:        NewModeStack(),
		encoding:     DefaultEncoding(),
		previousKind: Invalid,
		atLineStart:  true,
	}
}

// SetDecodeCallback registers fn to resolve an unknown magic-comment
// encoding name, per spec.md §6 parser_register_encoding_decode_callback.
func (l *Lexer) SetDecodeCallback(fn DecodeCallback) { l.decode = fn }

// Encoding returns the currently active encoding.
func (l *Lexer) Encoding() *Encoding { return l.encoding }

// Comments returns the accumulated comment list.
func (l *Lexer) Comments() []Comment { return l.comments }

// Diagnostics returns the accumulated lex-time diagnostics.
func (l *Lexer) Diagnostics() []Diagnostic { return l.diagnostics }

// NewlineIndex exposes the append-only newline offset table for
// line/column lookups.
func (l *Lexer) NewlineIndex() *NewlineIndex { return &l.newlines }

// ModeDepth reports how many lex modes are currently on the stack
// (Default included); used by TestModeStackNeverEmpties to confirm the
// stack unwinds to size 1 after lexing.
func (l *Lexer) ModeDepth() int { return l.modes.Depth() }

func (l *Lexer) addDiagnostic(span Span, message string) {
	l.diagnostics = append(l.diagnostics, Diagnostic{Span: span, Message: message})
}

func (l *Lexer) byteAt(offset int) byte {
	if offset < 0 || offset >= len(l.Src) {
		return 0
	}
	return l.Src[offset]
}

func (l *Lexer) current() byte { return l.byteAt(l.pos) }
func (l *Lexer) peek(ahead int) byte { return l.byteAt(l.pos + ahead) }
func (l *Lexer) atEnd() bool { return l.pos >= len(l.Src) }

func (l *Lexer) advance() byte {
	b := l.current()
	l.pos++
	return b
}

// match consumes the current byte and returns true if it equals b;
// otherwise leaves the cursor untouched.
func (l *Lexer) match(b byte) bool {
	if l.current() == b {
		l.pos++
		return true
	}
	return false
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	t := Token{Kind: kind, Span: Span{Start: start, End: l.pos}}
	t.Value = l.Src[start:l.pos]
	return t
}

// NextToken lexes and returns the next token, advancing the cursor. It
// is the lexer's sole exposed operation (spec.md §4.2 lex_next);
// Parser.advance wraps it to maintain the previous/current lookahead
// pair.
func (l *Lexer) NextToken() Token {
	startedLine := l.atLineStart
	mode := l.modes.Current()

	var tok Token
	switch mode.Kind {
	case ModeDefault, ModeEmbexpr:
		tok = l.lexDefault(startedLine)
	case ModeEmbvar:
		tok = l.lexDefault(startedLine)
		l.modes.Pop()
	case ModeEmbdoc:
		tok = l.lexEmbdoc()
	case ModeList:
		tok = l.lexList(mode)
	case ModeRegexp:
		tok = l.lexRegexpBody(mode)
	case ModeString:
		tok = l.lexStringBody(mode)
	case ModeSymbol:
		tok = l.lexSymbolBody()
	default:
		tok = l.lexDefault(startedLine)
	}

	l.previousKind = tok.Kind
	return tok
}

// skipInlineWhitespace advances over space/tab/form-feed/vertical-tab and
// a lone carriage return not followed by a newline, setting the token's
// eventual start. It never consumes a newline itself.
func (l *Lexer) skipInlineWhitespace() {
	for !l.atEnd() {
		switch l.current() {
		case ' ', '\t', '\f', '\v':
			l.pos++
		case '\r':
			if l.peek(1) != '\n' {
				l.pos++
				continue
			}
			return
		default:
			return
		}
	}
}

func (l *Lexer) lexDefault(lineStart bool) Token {
	l.skipInlineWhitespace()
	start := l.pos

	if l.atEnd() {
		return Token{Kind: EOF, Span: Span{Start: start, End: start}}
	}

	b := l.current()

	switch b {
	case 0, 0x04, 0x1a: // NUL, ^D, ^Z
		l.pos++
		return Token{Kind: EOF, Span: Span{Start: start, End: l.pos}}
	case '#':
		return l.lexComment(start)
	case '\n':
		l.pos++
		l.newlines.Record(start)
		l.atLineStart = true
		return l.token(Newline, start)
	case ';':
		l.pos++
		l.atLineStart = false
		return l.token(Semicolon, start)
	}

	l.atLineStart = false

	if lineStart && b == '_' && strings.HasPrefix(string(l.Src[l.pos:]), "__END__") {
		rest := l.pos + len("__END__")
		if rest >= len(l.Src) || l.Src[rest] == '\n' || (l.Src[rest] == '\r' && l.byteAt(rest+1) == '\n') {
			l.pos = len(l.Src)
			l.comments = append(l.comments, Comment{Kind: CommentEndUpper, Span: Span{Start: start, End: l.pos}})
			return Token{Kind: EOF, Span: Span{Start: l.pos, End: l.pos}}
		}
	}

	switch {
	case isHeredocIntroducer(l.Src, l.pos):
		return l.lexHeredocIntroducer(start)
	case lineStart && b == '=':
		return l.lexEmbdocBegin(start)
	case b == '"', b == '\'', b == '`':
		return l.lexQuoteOpen(start, b)
	case b == '%':
		return l.lexPercentLiteral(start)
	case b == ':':
		return l.lexColon(start)
	case b == '?':
		return l.lexCharacterLiteral(start)
	case b == '/':
		return l.lexSlash(start)
	case b == '$':
		return l.lexGlobalVariable(start)
	case b == '@':
		return l.lexAtVariable(start)
	case isASCIIDigit(b):
		return l.lexNumber(start)
	case l.encoding.IsAlpha(l.Src[l.pos:]):
		return l.lexIdentifier(start)
	}

	return l.lexOperator(start)
}

func (l *Lexer) lexComment(start int) Token {
	for !l.atEnd() && l.current() != '\n' {
		l.pos++
	}
	span := Span{Start: start, End: l.pos}
	l.checkMagicEncodingComment(l.Src[start:l.pos])
	l.comments = append(l.comments, Comment{Kind: CommentInline, Span: span})
	return Token{Kind: Comment, Span: span}
}

// checkMagicEncodingComment looks for `[-*-] encoding: NAME` inside a
// comment body and rebinds the active encoding, per spec.md §4.2/§6.
func (l *Lexer) checkMagicEncodingComment(body []byte) {
	text := strings.TrimLeft(string(body), "#")
	text = strings.Trim(text, " \t")
	text = strings.TrimPrefix(text, "-*-")
	text = strings.TrimSuffix(text, "-*-")
	text = strings.TrimSpace(text)

	lower := strings.ToLower(text)
	idx := strings.Index(lower, "encoding:")
	if idx < 0 {
		idx = strings.Index(lower, "encoding=")
	}
	if idx < 0 {
		return
	}
	name := strings.TrimSpace(text[idx+len("encoding:"):])
	name = strings.TrimSuffix(name, "-*-")
	name = strings.TrimSpace(name)
	// Stop the name at the first separator a following magic-comment
	// field might introduce.
	if sep := strings.IndexAny(name, " \t;"); sep >= 0 {
		name = name[:sep]
	}
	if name == "" {
		return
	}
	enc := LookupEncoding(name, l.decode)
	if enc == nil {
		l.addDiagnostic(Span{Start: l.pos - len(body), End: l.pos}, "unknown encoding name \""+name+"\"")
		return
	}
	l.encoding = enc
}

// lexEmbdocBegin checks whether a line-starting '=' opens an embedded
// document (`=begin` immediately followed by a newline). Anything else
// starting with '=' is an ordinary operator, so a non-match falls back
// to lexOperator's own maximal munch.
func (l *Lexer) lexEmbdocBegin(start int) Token {
	rest := l.Src[l.pos+1:]
	switch {
	case strings.HasPrefix(string(rest), "begin\r\n"):
		l.pos += 1 + len("begin\r\n")
		l.newlines.Record(l.pos - 1)
	case strings.HasPrefix(string(rest), "begin\n"):
		l.pos += 1 + len("begin\n")
		l.newlines.Record(l.pos - 1)
	default:
		return l.lexOperator(start)
	}
	l.embdocStart = start
	l.modes.Push(LexMode{Kind: ModeEmbdoc})
	return l.token(EmbdocBegin, start)
}

func (l *Lexer) lexEmbdoc() Token {
	start := l.pos
	if strings.HasPrefix(string(l.Src[l.pos:]), "=end") {
		end := l.pos + 4
		lineEnd := end
		for lineEnd < len(l.Src) && l.Src[lineEnd] != '\n' {
			lineEnd++
		}
		l.pos = lineEnd
		l.modes.Pop()
		l.comments = append(l.comments, Comment{Kind: CommentEmbdoc, Span: Span{Start: l.embdocStart, End: l.pos}})
		return Token{Kind: EmbdocEnd, Span: Span{Start: start, End: l.pos}}
	}
	for !l.atEnd() && l.current() != '\n' {
		l.pos++
	}
	if !l.atEnd() {
		l.newlines.Record(l.pos)
		l.pos++
	}
	if l.atEnd() {
		l.addDiagnostic(Span{Start: l.embdocStart, End: l.pos}, "unterminated embedded document")
		l.comments = append(l.comments, Comment{Kind: CommentEmbdoc, Span: Span{Start: l.embdocStart, End: l.pos}})
		return Token{Kind: EOF, Span: Span{Start: l.pos, End: l.pos}}
	}
	return Token{Kind: EmbdocLine, Span: Span{Start: start, End: l.pos}}
}
