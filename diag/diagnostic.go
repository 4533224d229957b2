/*
File    : rugo/diag/diagnostic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag holds the parser-facing diagnostic record and an
// append-only list, mirroring lexer.Diagnostic's shape one level up the
// dependency chain (spec.md §2's leaf-to-root ordering: lexer depends on
// nothing in this module, ast depends on lexer, diag depends on lexer,
// parser depends on lexer+ast+diag).
package diag

import (
	"fmt"
	"sort"

	"github.com/akashmaji946/rugo/lexer"
)

// Severity distinguishes a hard parse error (the tree still gets built,
// per spec.md §8's "always produces a tree" invariant, but downstream
// consumers should treat it as unusable) from an advisory warning.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one error or warning anchored to a byte range.
type Diagnostic struct {
	Span     lexer.Span
	Message  string
	Severity Severity
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%d,%d)", d.Severity, d.Message, d.Span.Start, d.Span.End)
}

// List is the append-only diagnostics collector shared by the lexer
// bridge and the parser itself; nothing ever removes an entry, per
// spec.md §7's error-handling design (errors accumulate, they never
// abort the parse).
type List struct {
	entries []Diagnostic
}

func (l *List) Add(span lexer.Span, message string) {
	l.entries = append(l.entries, Diagnostic{Span: span, Message: message, Severity: SeverityError})
}

func (l *List) AddWarning(span lexer.Span, message string) {
	l.entries = append(l.entries, Diagnostic{Span: span, Message: message, Severity: SeverityWarning})
}

// AddLexerDiagnostics copies every lexer.Diagnostic the lexer
// accumulated (unterminated strings, unknown encodings, numeric
// literal errors, ...) into the parser's own list, then re-sorts by
// span start so a caller reading one diag.List sees both lex-time and
// parse-time errors in source order regardless of which pass found
// them first; the sort is stable, so entries sharing a start keep their
// relative insertion order.
func (l *List) AddLexerDiagnostics(ds []lexer.Diagnostic) {
	for _, d := range ds {
		l.Add(d.Span, d.Message)
	}
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Span.Start < l.entries[j].Span.Start
	})
}

func (l *List) All() []Diagnostic { return l.entries }

func (l *List) HasErrors() bool {
	for _, d := range l.entries {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (l *List) Len() int { return len(l.entries) }
