package lexer

// identifierRunEnd returns the offset just past the maximal run of
// identifier bytes (encoding is_alnum plus '_') starting at pos.
func (l *Lexer) identifierRunEnd(pos int) int {
	for pos < len(l.Src) && l.encoding.IsAlnum(l.Src[pos:]) {
		pos += l.encoding.CharWidth(l.Src[pos:])
	}
	return pos
}

func (l *Lexer) lexIdentifier(start int) Token {
	l.pos = l.identifierRunEnd(l.pos)

	// Optional trailing '!' or '?', unless followed by '=' (which would
	// make it a setter-style "name?=" — not legal, so in that case the
	// suffix is not consumed and '=' lexes as its own token next).
	if !l.atEnd() && (l.current() == '!' || l.current() == '?') {
		if l.peek(1) != '=' {
			l.pos++
		}
	}

	// A trailing ':' immediately after an identifier (no space) makes it
	// a Label, used for hash-literal shorthand keys and keyword
	// arguments — but not when it's actually '::' (scope resolution).
	text := string(l.Src[start:l.pos])

	if kind, ok := LookupKeyword(text); ok && l.previousKind != Dot {
		return l.token(kind, start)
	}

	if !l.atEnd() && l.current() == ':' && l.peek(1) != ':' {
		l.pos++
		return l.token(Label, start)
	}

	if len(text) > 0 && text[0] >= 'A' && text[0] <= 'Z' {
		return l.token(Constant, start)
	}
	return l.token(Identifier, start)
}

func (l *Lexer) lexAtVariable(start int) Token {
	l.pos++ // consume '@'
	class := false
	if !l.atEnd() && l.current() == '@' {
		class = true
		l.pos++
	}
	if l.atEnd() || !l.encoding.IsAlpha(l.Src[l.pos:]) {
		l.addDiagnostic(Span{Start: start, End: l.pos}, "'@' without identifier")
		return l.token(Invalid, start)
	}
	l.pos = l.identifierRunEnd(l.pos)
	if class {
		return l.token(ClassVariable, start)
	}
	return l.token(InstanceVariable, start)
}

func (l *Lexer) lexGlobalVariable(start int) Token {
	l.pos++ // consume '$'
	if l.atEnd() {
		l.addDiagnostic(Span{Start: start, End: l.pos}, "'$' without identifier")
		return l.token(Invalid, start)
	}
	b := l.current()
	switch {
	case b >= '1' && b <= '9':
		for !l.atEnd() && isASCIIDigit(l.current()) {
			l.pos++
		}
		return l.token(GlobalVariableNthRef, start)
	case b == '&' || b == '`' || b == '\'' || b == '+':
		l.pos++
		return l.token(GlobalVariableBackref, start)
	case b == '~' || b == '*' || b == '$' || b == '?' || b == '!' || b == '@' ||
		b == '/' || b == '\\' || b == ';' || b == ',' || b == '.' || b == '=' ||
		b == ':' || b == '<' || b == '>' || b == '"' || b == '0':
		l.pos++
		return l.token(GlobalVariable, start)
	default:
		if l.encoding.IsAlpha(l.Src[l.pos:]) {
			l.pos = l.identifierRunEnd(l.pos)
			return l.token(GlobalVariable, start)
		}
		l.addDiagnostic(Span{Start: start, End: l.pos}, "invalid global variable name")
		return l.token(Invalid, start)
	}
}

func (l *Lexer) lexColon(start int) Token {
	l.pos++ // consume ':'
	if l.match(':') {
		return l.token(ColonColon, start)
	}
	b := l.current()
	switch {
	case b == '"':
		l.pos++
		l.modes.Push(LexMode{Kind: ModeString, Terminator: '"', Interpolation: true})
		return l.token(SymbolBegin, start)
	case b == '\'':
		l.pos++
		l.modes.Push(LexMode{Kind: ModeString, Terminator: '\'', Interpolation: false})
		return l.token(SymbolBegin, start)
	case l.encoding.IsAlpha(l.Src[l.pos:]) || isSymbolOperatorStart(b):
		l.modes.Push(LexMode{Kind: ModeSymbol})
		return l.token(SymbolBegin, start)
	default:
		return l.token(Colon, start)
	}
}

// isSymbolOperatorStart reports whether b can begin an operator-method
// symbol spelling, e.g. :+, :[], :<=>.
func isSymbolOperatorStart(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '~', '&', '|', '^', '[', '@':
		return true
	}
	return false
}

// lexSymbolBody lexes the single token inside Symbol mode (spec.md
// §4.2's "Symbol mode" rule) and pops back out.
func (l *Lexer) lexSymbolBody() Token {
	start := l.pos
	defer l.modes.Pop()

	if l.encoding.IsAlpha(l.Src[l.pos:]) {
		l.pos = l.identifierRunEnd(l.pos)
		if !l.atEnd() && (l.current() == '!' || l.current() == '?' || l.current() == '=') {
			l.pos++
		}
		text := string(l.Src[start:l.pos])
		if len(text) > 0 && text[0] >= 'A' && text[0] <= 'Z' {
			return l.token(Constant, start)
		}
		return l.token(Identifier, start)
	}

	// Operator-method symbol spelling: greedily match the longest known
	// operator token and re-use its kind.
	opStart := l.pos
	opTok := l.lexOperator(l.pos)
	_ = opStart
	return opTok
}

func (l *Lexer) lexCharacterLiteral(start int) Token {
	// '?' followed by an identifier-start byte and not itself continuing
	// into a longer identifier is a one-character literal, e.g. ?a, ?\n.
	next := l.peek(1)
	if next == 0 {
		l.pos++
		return l.token(Question, start)
	}
	if next == '\\' {
		l.pos += 2
		if !l.atEnd() {
			l.pos++
		}
		return l.token(CharacterLiteral, start)
	}
	if !l.encoding.IsAlpha(l.Src[l.pos+1:]) {
		l.pos++
		return l.token(Question, start)
	}
	// If a second identifier byte follows, this is ternary '?' applied
	// to an identifier, not a character literal (e.g. `cond ? abc : d`).
	width := l.encoding.CharWidth(l.Src[l.pos+1:])
	after := l.pos + 1 + width
	if after < len(l.Src) && l.encoding.IsAlnum(l.Src[after:]) {
		l.pos++
		return l.token(Question, start)
	}
	l.pos = after
	return l.token(CharacterLiteral, start)
}

// lexSlash decides regex-vs-division by a byte-level peek at what
// immediately follows the '/', not by what token preceded it: a space
// right after '/' means division, anything else opens a regex.
func (l *Lexer) lexSlash(start int) Token {
	l.pos++ // consume '/'
	if l.match('=') {
		return l.token(SlashEqual, start)
	}
	if l.current() == ' ' {
		return l.token(Slash, start)
	}
	l.modes.Push(LexMode{Kind: ModeRegexp, Terminator: '/'})
	return l.token(RegexpBegin, start)
}

func (l *Lexer) lexQuoteOpen(start int, quote byte) Token {
	l.pos++
	switch quote {
	case '`':
		l.modes.Push(LexMode{Kind: ModeString, Terminator: '`', Interpolation: true})
		return l.token(Backtick, start)
	case '"':
		l.modes.Push(LexMode{Kind: ModeString, Terminator: '"', Interpolation: true})
		return l.token(StringBegin, start)
	default: // '\''
		l.modes.Push(LexMode{Kind: ModeString, Terminator: '\'', Interpolation: false})
		return l.token(StringBegin, start)
	}
}

// lexPercentLiteral handles %q %Q %w %W %i %I %r %s %x and the bare
// %(...) string-literal form.
func (l *Lexer) lexPercentLiteral(start int) Token {
	l.pos++ // consume '%'
	if l.match('=') {
		return l.token(PercentEqual, start)
	}

	letter := byte(0)
	if !l.atEnd() && isPercentLetter(l.current()) {
		letter = l.current()
		l.pos++
	}
	if l.atEnd() {
		l.addDiagnostic(Span{Start: start, End: l.pos}, "unterminated %-literal")
		return l.token(Invalid, start)
	}
	open := l.advance()
	term := terminator(open)

	switch letter {
	case 'w', 'W':
		l.modes.Push(LexMode{Kind: ModeList, Terminator: term, Interpolation: letter == 'W'})
		return l.token(StringBegin, start)
	case 'i', 'I':
		l.modes.Push(LexMode{Kind: ModeList, Terminator: term, Interpolation: letter == 'I'})
		return l.token(SymbolBegin, start)
	case 'r':
		l.modes.Push(LexMode{Kind: ModeRegexp, Terminator: term})
		return l.token(RegexpBegin, start)
	case 's':
		l.modes.Push(LexMode{Kind: ModeString, Terminator: term, Interpolation: false})
		return l.token(SymbolBegin, start)
	case 'q':
		l.modes.Push(LexMode{Kind: ModeString, Terminator: term, Interpolation: false})
		return l.token(StringBegin, start)
	case 'x':
		l.modes.Push(LexMode{Kind: ModeString, Terminator: term, Interpolation: true})
		return l.token(Backtick, start)
	default: // 'Q' or bare %(
		l.modes.Push(LexMode{Kind: ModeString, Terminator: term, Interpolation: true})
		return l.token(StringBegin, start)
	}
}

func isPercentLetter(b byte) bool {
	switch b {
	case 'Q', 'q', 'w', 'W', 'i', 'I', 'r', 's', 'x':
		return true
	}
	return false
}
