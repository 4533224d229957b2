package lexer

// lexNumber recognizes integer and float literals with an optional base
// prefix (0b/0o/0d/0x or a leading-zero octal run), an optional float
// suffix, and optional rational ('r') / imaginary ('i') suffixes, per
// spec.md §4.2's numeric-prefix rule.
func (l *Lexer) lexNumber(start int) Token {
	if l.current() == '0' && l.pos+1 < len(l.Src) {
		switch l.peek(1) {
		case 'b', 'B':
			return l.lexRadixLiteral(start, 2, isBinaryDigit)
		case 'o', 'O':
			return l.lexRadixLiteral(start, 8, isOctalDigit)
		case 'd', 'D':
			return l.lexRadixLiteral(start, 10, isASCIIDigit)
		case 'x', 'X':
			return l.lexRadixLiteral(start, 16, isHexDigit)
		}
		if isOctalDigit(l.peek(1)) {
			// Leading-zero octal: only the '0' is a prefix, so the digit
			// run starts one byte in rather than two.
			l.pos++
			if l.consumeDigitRun(isOctalDigit) {
				l.addDiagnostic(Span{Start: start, End: l.pos}, "trailing '_' in numeric literal")
			}
			return l.finishNumberSuffix(start, Integer)
		}
	}
	return l.lexDecimalLiteral(start)
}

func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }
func isOctalDigit(b byte) bool  { return b >= '0' && b <= '7' }

// consumeDigitRun consumes a maximal run of digits (as classified by
// valid) interleaved with single '_' digit-group separators, also
// consuming (and flagging) a dangling trailing '_' not followed by a
// further digit, which is invalid per spec.md §7.
func (l *Lexer) consumeDigitRun(valid func(byte) bool) (trailingUnderscore bool) {
	sawDigit := false
	for !l.atEnd() {
		if valid(l.current()) {
			l.pos++
			sawDigit = true
			continue
		}
		if l.current() == '_' && sawDigit {
			if valid(l.peek(1)) {
				l.pos++
				continue
			}
			l.pos++
			return true
		}
		break
	}
	return false
}

func (l *Lexer) lexRadixLiteral(start int, _ int, valid func(byte) bool) Token {
	l.pos += 2 // consume "0x"/"0b"/"0o"/"0d" prefix
	digitsStart := l.pos
	trailing := l.consumeDigitRun(valid)
	if l.pos == digitsStart {
		l.addDiagnostic(Span{Start: start, End: l.pos}, "invalid numeric literal: no digits after base prefix")
	} else if trailing {
		l.addDiagnostic(Span{Start: start, End: l.pos}, "trailing '_' in numeric literal")
	}
	return l.finishNumberSuffix(start, Integer)
}

func (l *Lexer) lexDecimalLiteral(start int) Token {
	trailing := l.consumeDigitRun(isASCIIDigit)
	kind := TokenKind(Integer)

	if !l.atEnd() && l.current() == '.' && isASCIIDigit(l.peek(1)) {
		l.pos++ // consume '.'
		trailing = l.consumeDigitRun(isASCIIDigit)
		kind = Float
	}

	if !l.atEnd() && (l.current() == 'e' || l.current() == 'E') {
		save := l.pos
		l.pos++
		if !l.atEnd() && (l.current() == '+' || l.current() == '-') {
			l.pos++
		}
		if !l.atEnd() && isASCIIDigit(l.current()) {
			trailing = l.consumeDigitRun(isASCIIDigit)
			kind = Float
		} else {
			l.pos = save
		}
	}

	if trailing {
		l.addDiagnostic(Span{Start: start, End: l.pos}, "trailing '_' in numeric literal")
	}

	return l.finishNumberSuffix(start, kind)
}

// finishNumberSuffix consumes the optional rational ('r') and imaginary
// ('i') suffixes, in that order ("1r", "1i", "1ri"), and resolves the
// final token kind.
func (l *Lexer) finishNumberSuffix(start int, base TokenKind) Token {
	kind := base
	if !l.atEnd() && l.current() == 'r' && (l.peek(1) == 'i' || !l.encoding.IsAlnum(l.Src[l.pos+1:])) {
		l.pos++
		kind = Rational
	}
	if !l.atEnd() && l.current() == 'i' && !l.encoding.IsAlnum(l.Src[l.pos+1:]) {
		l.pos++
		kind = Imaginary
	}
	if !l.atEnd() && l.current() == '_' {
		l.addDiagnostic(Span{Start: start, End: l.pos + 1}, "trailing '_' in numeric literal")
	}
	return l.token(kind, start)
}
