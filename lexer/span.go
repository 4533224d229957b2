package lexer

import "sort"

// Span is a half-open byte range [Start, End) into an immutable source
// slice. Every token and every AST node carries one.
type Span struct {
	Start int
	End   int
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// IsZero reports whether the span is zero-width, as synthesized MISSING
// and NOT_PROVIDED tokens are.
func (s Span) IsZero() bool {
	return s.Start == s.End
}

// NewlineIndex records the byte offset of every '\n' seen so far, in
// source order. It is append-only and amortized O(1) to build; offset to
// (line, column) is a binary search plus a subtraction.
type NewlineIndex struct {
	offsets []int
}

// Record appends the offset of a newline byte. Callers must call this in
// increasing offset order; the lexer does so naturally since it scans
// left to right.
func (n *NewlineIndex) Record(offset int) {
	n.offsets = append(n.offsets, offset)
}

// LineCol converts a byte offset into a 1-indexed line and 0-indexed
// column, using the newlines recorded so far.
func (n *NewlineIndex) LineCol(offset int) (line, col int) {
	// offsets[i] is the position of the i-th newline (0-indexed); the
	// line containing `offset` is the count of newlines strictly before
	// it, plus one.
	idx := sort.Search(len(n.offsets), func(i int) bool {
		return n.offsets[i] >= offset
	})
	line = idx + 1
	if idx == 0 {
		col = offset
	} else {
		col = offset - n.offsets[idx-1] - 1
	}
	return line, col
}
