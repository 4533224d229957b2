package lexer

// ModeKind tags the variant of LexMode, per spec.md §3.3.
type ModeKind int

const (
	ModeDefault ModeKind = iota
	ModeEmbdoc
	ModeEmbexpr
	ModeEmbvar // one-shot: '#@name' / '#@@name' / '#$name' inside a string
	ModeList
	ModeRegexp
	ModeString
	ModeSymbol
)

// LexMode is the tagged variant describing which bytes are legal and
// which token kind they produce. Default/Embdoc/Embexpr/Symbol carry no
// extra state; List/Regexp/String carry a terminator byte (and, for
// List/String, whether #{...} interpolation is recognized).
type LexMode struct {
	Kind          ModeKind
	Terminator    byte
	Interpolation bool

	// BraceDepth counts unmatched '{' seen while this Embexpr frame is on
	// top, so a '}' that closes a nested hash literal or block inside the
	// interpolation doesn't close the interpolation itself (only valid
	// when Kind == ModeEmbexpr). Spec.md §4.1's invariant — a mode that
	// pushed an Embexpr must see exactly one matching pop before its own
	// terminator can fire — falls out of this for free: the stack itself
	// won't hand control back to the String/Regexp/List/Symbol lexer
	// function until the Embexpr frame (and all its nested braces) pops.
	BraceDepth int
}

// ModeStack is the parser's lex-mode stack. The bottom is always
// ModeDefault and the stack is never empty. A plain slice is used: Go
// slices already amortize growth over a shared backing array, so a
// small-inline-then-spill scheme (appropriate in a manually managed
// language) buys nothing extra here — see DESIGN.md.
type ModeStack struct {
	modes []LexMode
}

// NewModeStack returns a stack with Default on the bottom.
func NewModeStack() *ModeStack {
	return &ModeStack{modes: []LexMode{{Kind: ModeDefault}}}
}

// Push records mode as the new top of stack.
func (s *ModeStack) Push(mode LexMode) {
	s.modes = append(s.modes, mode)
}

// Pop removes the top mode. If the stack has only the bottom Default
// frame, it is reset in place rather than removed, so the stack is never
// empty (spec.md §4.1).
func (s *ModeStack) Pop() {
	if len(s.modes) <= 1 {
		s.modes[0] = LexMode{Kind: ModeDefault}
		return
	}
	s.modes = s.modes[:len(s.modes)-1]
}

// Current returns the mode on top of the stack. O(1).
func (s *ModeStack) Current() LexMode {
	return s.modes[len(s.modes)-1]
}

// topIndex is used internally to mutate the top frame in place (e.g. to
// bump BraceDepth) without a pop/push round trip.
func (s *ModeStack) topIndex() int { return len(s.modes) - 1 }

// EnterEmbexpr pushes an Embexpr frame, entered on seeing '#{' inside a
// String/List/Regexp/Symbol body.
func (s *ModeStack) EnterEmbexpr() {
	s.Push(LexMode{Kind: ModeEmbexpr})
}

// OpenBrace increments the current Embexpr frame's brace depth, called
// when a nested '{' (hash literal, block) appears inside an
// interpolation.
func (s *ModeStack) OpenBrace() {
	if idx := s.topIndex(); idx >= 0 {
		s.modes[idx].BraceDepth++
	}
}

// CloseBrace reports whether a '}' closes the current Embexpr frame
// itself (true) or merely a nested brace inside it (false, and the
// depth is decremented).
func (s *ModeStack) CloseBrace() bool {
	idx := s.topIndex()
	if idx < 0 || s.modes[idx].BraceDepth == 0 {
		return true
	}
	s.modes[idx].BraceDepth--
	return false
}

// Depth reports how many modes are on the stack, Default included.
func (s *ModeStack) Depth() int { return len(s.modes) }
