package lexer

import "unicode/utf8"

// UnescapeMode selects which subset of backslash sequences Unescape
// decodes, per spec.md §4.4.
type UnescapeMode int

const (
	// UnescapeNone processes no escapes at all; the result borrows the
	// source slice unchanged.
	UnescapeNone UnescapeMode = iota
	// UnescapeMinimal recognizes only \\ and \'; any other backslash-X
	// stays as the two literal bytes \X. Used for single-quoted strings
	// and %q.
	UnescapeMinimal
	// UnescapeAll recognizes the full escape set. Used for double-quoted
	// strings, %Q, %w/%W, dynamic symbols, and %x.
	UnescapeAll
)

// Unescape decodes the escape sequences in src according to mode. If no
// backslash appears, the returned slice aliases src (zero-copy); the
// returned bool reports whether the result borrows src directly.
func Unescape(src []byte, mode UnescapeMode) ([]byte, bool) {
	if mode == UnescapeNone {
		return src, true
	}
	idx := indexByte(src, '\\')
	if idx < 0 {
		return src, true
	}

	out := make([]byte, 0, len(src))
	out = append(out, src[:idx]...)
	i := idx

	for i < len(src) {
		b := src[i]
		if b != '\\' {
			out = append(out, b)
			i++
			continue
		}
		if i+1 >= len(src) {
			// Trailing lone backslash: copy it literally.
			out = append(out, '\\')
			i++
			break
		}
		if mode == UnescapeMinimal {
			out, i = unescapeMinimalOne(out, src, i)
			continue
		}
		out, i = unescapeAllOne(out, src, i)
	}
	return out, false
}

// unescapeMinimalOne handles a single escape in Minimal mode, starting at
// src[i] == '\\'. It returns the updated buffer and the next index.
func unescapeMinimalOne(out, src []byte, i int) ([]byte, int) {
	next := src[i+1]
	switch next {
	case '\\', '\'':
		return append(out, next), i + 2
	default:
		return append(out, '\\', next), i + 2
	}
}

// unescapeAllOne handles a single escape in All mode, starting at
// src[i] == '\\'. It returns the updated buffer and the next index.
func unescapeAllOne(out, src []byte, i int) ([]byte, int) {
	next := src[i+1]
	switch next {
	case 'a':
		return append(out, '\a'), i + 2
	case 'b':
		return append(out, '\b'), i + 2
	case 'e':
		return append(out, 0x1b), i + 2
	case 'f':
		return append(out, '\f'), i + 2
	case 'n':
		return append(out, '\n'), i + 2
	case 'r':
		return append(out, '\r'), i + 2
	case 's':
		return append(out, ' '), i + 2
	case 't':
		return append(out, '\t'), i + 2
	case 'v':
		return append(out, '\v'), i + 2
	case '\\', '\'', '"':
		return append(out, next), i + 2
	case 'x':
		return unescapeHex(out, src, i+2)
	case 'u':
		return unescapeUnicode(out, src, i+2)
	case 'c':
		return unescapeControl(out, src, i+2)
	case 'C':
		// \C-X
		if i+2 < len(src) && src[i+2] == '-' {
			return unescapeControl(out, src, i+3)
		}
		return append(out, '\\', 'C'), i + 2
	case 'M':
		return unescapeMeta(out, src, i+2)
	default:
		if next >= '0' && next <= '7' {
			return unescapeOctal(out, src, i+1)
		}
		return append(out, '\\', next), i + 2
	}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}

// unescapeHex decodes \xNN — 1-2 hex digits, one byte of output.
func unescapeHex(out, src []byte, i int) ([]byte, int) {
	start := i
	value := 0
	count := 0
	for i < len(src) && count < 2 && isHexDigit(src[i]) {
		value = value*16 + hexValue(src[i])
		i++
		count++
	}
	if count == 0 {
		return append(out, '\\', 'x'), start
	}
	return append(out, byte(value)), i
}

// unescapeOctal decodes \NNN — 1-3 octal digits, one byte of output. i
// points at the first octal digit.
func unescapeOctal(out, src []byte, i int) ([]byte, int) {
	value := 0
	count := 0
	for i < len(src) && count < 3 && src[i] >= '0' && src[i] <= '7' {
		value = value*8 + int(src[i]-'0')
		i++
		count++
	}
	return append(out, byte(value)), i
}

// unescapeUnicode decodes \uNNNN (exactly 4 hex digits) or
// \u{H H H ...} (space-separated 1-6-hex-digit code points).
func unescapeUnicode(out, src []byte, i int) ([]byte, int) {
	if i < len(src) && src[i] == '{' {
		i++
		for {
			for i < len(src) && src[i] == ' ' {
				i++
			}
			if i >= len(src) || src[i] == '}' {
				if i < len(src) {
					i++
				}
				break
			}
			start := i
			for i < len(src) && i-start < 6 && isHexDigit(src[i]) {
				i++
			}
			if i == start {
				break
			}
			cp := 0
			for _, b := range src[start:i] {
				cp = cp*16 + hexValue(b)
			}
			out = appendUTF8(out, cp)
		}
		return out, i
	}
	count := 0
	cp := 0
	for i < len(src) && count < 4 && isHexDigit(src[i]) {
		cp = cp*16 + hexValue(src[i])
		i++
		count++
	}
	if count < 4 {
		return append(out, '\\', 'u'), i
	}
	return appendUTF8(out, cp), i
}

// appendUTF8 encodes a code point into out. Code points above 0x10FFFF
// are rejected (dropped) per spec.md §4.4's UTF-8 writer contract; well-
// formed surrogate-range rejection is left to callers that validate the
// whole string, matching the core's "always produce a tree" philosophy.
func appendUTF8(out []byte, cp int) []byte {
	if cp < 0 || cp > 0x10FFFF {
		return out
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(cp))
	return append(out, buf[:n]...)
}

// unescapeControl decodes \cX, \C-X (already positioned past the '-'),
// and \C-? (DEL). Also handles the combined \c\M-X form by decoding the
// \M-X part with unescapeMeta and then applying the control mask; the
// \M-\cX form is handled by unescapeMeta itself.
func unescapeControl(out, src []byte, i int) ([]byte, int) {
	if i >= len(src) {
		return append(out, '\\', 'c'), i
	}
	if src[i] == '?' {
		return append(out, 0x7f), i + 1
	}
	if src[i] == '\\' && i+1 < len(src) && src[i+1] == 'M' {
		meta, next := unescapeMeta(nil, src, i+2)
		if len(meta) == 1 {
			return append(out, meta[0]&0x9f), next
		}
		return append(out, meta...), next
	}
	b := src[i]
	return append(out, b&0x1f), i + 1
}

// unescapeMeta decodes \M-X, \M-\C-X, and \M-\cX.
func unescapeMeta(out, src []byte, i int) ([]byte, int) {
	if i >= len(src) || src[i] != '-' {
		return append(out, '\\', 'M'), i
	}
	i++
	if i < len(src) && src[i] == '\\' && i+1 < len(src) {
		switch src[i+1] {
		case 'C':
			if i+2 < len(src) && src[i+2] == '-' {
				ctrl, next := unescapeControl(nil, src, i+3)
				if len(ctrl) == 1 {
					return append(out, ctrl[0]|0x80), next
				}
				return append(out, ctrl...), next
			}
		case 'c':
			ctrl, next := unescapeControl(nil, src, i+2)
			if len(ctrl) == 1 {
				return append(out, ctrl[0]|0x80), next
			}
			return append(out, ctrl...), next
		}
	}
	if i < len(src) {
		return append(out, src[i]|0x80), i + 1
	}
	return out, i
}

func indexByte(src []byte, b byte) int {
	for i, c := range src {
		if c == b {
			return i
		}
	}
	return -1
}
