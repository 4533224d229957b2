package lexer

import (
	"strings"
	"unicode/utf8"
)

// Encoding provides the byte-classification routines the lexer needs to
// recognize identifiers, independent of the structural ASCII characters
// (operators, delimiters) which are encoding-invariant.
type Encoding struct {
	Name string

	// IsAlpha reports whether the byte at src[0] begins an identifier.
	IsAlpha func(src []byte) bool
	// IsAlnum reports whether the byte at src[0] continues an identifier.
	IsAlnum func(src []byte) bool
	// CharWidth returns the number of bytes the character at src[0]
	// occupies, at least 1.
	CharWidth func(src []byte) int
}

func isASCIIAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

var asciiEncoding = Encoding{
	Name: "ascii",
	IsAlpha: func(src []byte) bool {
		return len(src) > 0 && isASCIIAlpha(src[0]) && src[0] < 0x80
	},
	IsAlnum: func(src []byte) bool {
		return len(src) > 0 && src[0] < 0x80 && (isASCIIAlpha(src[0]) || isASCIIDigit(src[0]))
	},
	CharWidth: func(src []byte) int { return 1 },
}

var binaryEncoding = Encoding{
	Name: "binary",
	IsAlpha: func(src []byte) bool {
		return len(src) > 0 && isASCIIAlpha(src[0])
	},
	IsAlnum: func(src []byte) bool {
		return len(src) > 0 && (isASCIIAlpha(src[0]) || isASCIIDigit(src[0]))
	},
	CharWidth: func(src []byte) int { return 1 },
}

var utf8Encoding = Encoding{
	Name: "utf-8",
	IsAlpha: func(src []byte) bool {
		if len(src) == 0 {
			return false
		}
		if src[0] < 0x80 {
			return isASCIIAlpha(src[0])
		}
		return true
	},
	IsAlnum: func(src []byte) bool {
		if len(src) == 0 {
			return false
		}
		if src[0] < 0x80 {
			return isASCIIAlpha(src[0]) || isASCIIDigit(src[0])
		}
		return true
	},
	CharWidth: func(src []byte) int {
		if len(src) == 0 {
			return 1
		}
		_, width := utf8.DecodeRune(src)
		if width == 0 {
			return 1
		}
		return width
	},
}

// iso885909IsAlpha reports whether a high byte of ISO-8859-9 (Latin-5,
// Turkish) is alphabetic. ISO-8859-9 is identical to Latin-1 except for
// six Turkish letters; rather than special-case those six, every byte
// >= 0xC0 other than 0xD7 and 0xF7 (the multiplication and division
// signs) is treated as alphabetic, matching the original's
// src/enc/iso_8859_9.c stub.
func iso885909IsAlpha(b byte) bool {
	return b >= 0xC0 && b != 0xD7 && b != 0xF7
}

var iso885909Encoding = Encoding{
	Name: "iso-8859-9",
	IsAlpha: func(src []byte) bool {
		if len(src) == 0 {
			return false
		}
		b := src[0]
		if b < 0x80 {
			return isASCIIAlpha(b)
		}
		return iso885909IsAlpha(b)
	},
	IsAlnum: func(src []byte) bool {
		if len(src) == 0 {
			return false
		}
		b := src[0]
		if b < 0x80 {
			return isASCIIAlpha(b) || isASCIIDigit(b)
		}
		return iso885909IsAlpha(b) || (b >= 0xB2 && b <= 0xB9)
	},
	CharWidth: func(src []byte) int { return 1 },
}

// builtinEncodings maps every name built-in encoding recognition accepts
// (spec.md §6) to its table. us-ascii is an alias of ascii.
var builtinEncodings = map[string]*Encoding{
	"ascii":      &asciiEncoding,
	"us-ascii":   &asciiEncoding,
	"binary":     &binaryEncoding,
	"ascii-8bit": &binaryEncoding,
	"utf-8":      &utf8Encoding,
	"iso-8859-9": &iso885909Encoding,
}

// DecodeCallback resolves an encoding name the built-in table doesn't
// recognize. It returns nil if the name is still unknown.
type DecodeCallback func(name string) *Encoding

// LookupEncoding resolves name against the built-in table and, if that
// fails, the caller-supplied callback (which may be nil).
func LookupEncoding(name string, callback DecodeCallback) *Encoding {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if enc, ok := builtinEncodings[normalized]; ok {
		return enc
	}
	if callback != nil {
		return callback(normalized)
	}
	return nil
}

// DefaultEncoding is the encoding a Parser starts with absent a magic
// comment.
func DefaultEncoding() *Encoding { return &utf8Encoding }
