package lexer

// isHeredocIntroducer reports whether src[pos:] begins a heredoc
// introducer: '<<', optionally '~' or '-', then a bare identifier, a
// quoted identifier, or a backtick-quoted identifier. See DESIGN.md
// "Open Question decisions" — body lexing is intentionally not
// completed; only the introducer token is recognized (spec.md §9).
func isHeredocIntroducer(src []byte, pos int) bool {
	if pos+1 >= len(src) || src[pos] != '<' || src[pos+1] != '<' {
		return false
	}
	i := pos + 2
	if i < len(src) && (src[i] == '~' || src[i] == '-') {
		i++
	}
	switch {
	case i < len(src) && (src[i] == '"' || src[i] == '\'' || src[i] == '`'):
		quote := src[i]
		i++
		j := i
		for j < len(src) && src[j] != quote && src[j] != '\n' {
			j++
		}
		return j < len(src) && src[j] == quote && j > i
	case i < len(src) && isIdentifierStartASCII(src[i]):
		return true
	default:
		return false
	}
}

func isIdentifierStartASCII(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

// lexHeredocIntroducer consumes the '<<[~-]IDENTIFIER' (or quoted-
// identifier) spelling and emits a single HeredocBegin token covering it.
// The lexer does not enter a Heredoc lex mode: per the scoped decision in
// DESIGN.md, the body is never lexed and scanning resumes at the next
// newline in whatever mode was already active.
func (l *Lexer) lexHeredocIntroducer(start int) Token {
	l.pos += 2 // '<<'
	if !l.atEnd() && (l.current() == '~' || l.current() == '-') {
		l.pos++
	}
	if !l.atEnd() && (l.current() == '"' || l.current() == '\'' || l.current() == '`') {
		quote := l.advance()
		for !l.atEnd() && l.current() != quote && l.current() != '\n' {
			l.pos++
		}
		if !l.atEnd() && l.current() == quote {
			l.pos++
		}
		return l.token(HeredocBegin, start)
	}
	l.pos = l.identifierRunEnd(l.pos)
	return l.token(HeredocBegin, start)
}
