package lexer

// lexList lexes one token inside List mode (%w/%W/%i/%I), per spec.md
// §4.2's "List mode" rule.
func (l *Lexer) lexList(mode LexMode) Token {
	start := l.pos

	if l.atEnd() {
		l.addDiagnostic(Span{Start: start, End: start}, "unterminated list literal")
		l.modes.Pop()
		return Token{Kind: EOF, Span: Span{Start: start, End: start}}
	}

	if isListWhitespace(l.current()) {
		for !l.atEnd() && isListWhitespace(l.current()) {
			l.pos++
		}
		return l.token(WordsSep, start)
	}

	if l.current() == mode.Terminator {
		l.pos++
		l.modes.Pop()
		return l.token(StringEnd, start)
	}

	if mode.Interpolation && l.current() == '#' && l.peek(1) == '{' {
		l.pos += 2
		l.modes.EnterEmbexpr()
		return l.token(EmbexprBegin, start)
	}

	for !l.atEnd() && l.current() != mode.Terminator && !isListWhitespace(l.current()) {
		if l.current() == '\\' && l.pos+1 < len(l.Src) {
			l.pos += 2
			continue
		}
		if mode.Interpolation && l.current() == '#' && l.peek(1) == '{' {
			break
		}
		l.pos++
	}
	return l.token(StringContent, start)
}

func isListWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

var regexpOptionLetters = map[byte]bool{
	'e': true, 'i': true, 'm': true, 'n': true, 's': true, 'u': true, 'x': true,
}

// lexRegexpBody lexes one token inside Regexp mode, per spec.md §4.2's
// "Regexp mode" rule: content runs until the terminator (honoring \X),
// '#{' pushes Embexpr, and the closer is followed by a greedy run of
// option letters.
func (l *Lexer) lexRegexpBody(mode LexMode) Token {
	start := l.pos

	if l.atEnd() {
		l.addDiagnostic(Span{Start: start, End: start}, "unterminated regular expression")
		l.modes.Pop()
		return Token{Kind: EOF, Span: Span{Start: start, End: start}}
	}

	if l.current() == mode.Terminator {
		l.pos++
		for !l.atEnd() && regexpOptionLetters[l.current()] {
			l.pos++
		}
		l.modes.Pop()
		return l.token(RegexpEnd, start)
	}

	if l.current() == '#' && l.peek(1) == '{' {
		l.pos += 2
		l.modes.EnterEmbexpr()
		return l.token(EmbexprBegin, start)
	}

	for !l.atEnd() && l.current() != mode.Terminator {
		if l.current() == '\\' && l.pos+1 < len(l.Src) {
			l.pos += 2
			continue
		}
		if l.current() == '#' && l.peek(1) == '{' {
			break
		}
		l.pos++
	}
	return l.token(StringContent, start)
}

// lexStringBody lexes one token inside String mode (also used for
// Symbol-as-string `:"..."` and x-strings), per spec.md §4.2's "String
// mode" rule.
func (l *Lexer) lexStringBody(mode LexMode) Token {
	start := l.pos

	if l.atEnd() {
		l.addDiagnostic(Span{Start: start, End: start}, "unterminated string")
		l.modes.Pop()
		return Token{Kind: EOF, Span: Span{Start: start, End: start}}
	}

	if l.current() == mode.Terminator {
		l.pos++
		l.modes.Pop()
		return l.token(StringEnd, start)
	}

	if mode.Interpolation {
		if l.current() == '#' && l.peek(1) == '{' {
			l.pos += 2
			l.modes.EnterEmbexpr()
			return l.token(EmbexprBegin, start)
		}
		if l.current() == '#' && (l.peek(1) == '@' || l.peek(1) == '$') {
			return l.lexEmbeddedVariableRef(start)
		}
	}

	for !l.atEnd() && l.current() != mode.Terminator {
		if l.current() == '\\' && l.pos+1 < len(l.Src) {
			l.pos += 2
			continue
		}
		if mode.Interpolation {
			if l.current() == '#' && l.peek(1) == '{' {
				break
			}
			if l.current() == '#' && (l.peek(1) == '@' || l.peek(1) == '$') {
				break
			}
		}
		l.pos++
	}
	return l.token(StringContent, start)
}

// lexEmbeddedVariableRef recognizes '#@name', '#@@name', and '#$name'
// shorthand for a bare interpolated variable reference (spec.md §4.2,
// "String mode"): it emits EmbvarBegin covering just the '#' and pushes a
// one-shot ModeEmbvar frame so the *next* NextToken call lexes the
// variable itself as an ordinary ivar/cvar/gvar token, after which the
// frame pops automatically and String mode resumes.
func (l *Lexer) lexEmbeddedVariableRef(start int) Token {
	l.pos++ // consume '#'
	l.modes.Push(LexMode{Kind: ModeEmbvar})
	return l.token(EmbvarBegin, start)
}
