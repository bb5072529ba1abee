package editor

import "unicode"

// Session is the transient composition state of a new entry. It is not safe
// for concurrent use.
type Session struct {
	state    State
	selStart int
	selEnd   int
	scramble func(rune) rune
}

// NewSession returns an empty session that scrambles inserted runes with
// scramble. A nil scramble stores inserted runes unchanged in both buffers.
func NewSession(scramble func(rune) rune) *Session {
	return &Session{scramble: scramble}
}

// Select sets the range the next edit applies to. The range is clamped to
// the buffer and cleared by the next edit.
func (s *Session) Select(start, end int) {
	n := len(s.state.Hidden)
	s.selStart, s.selEnd = clamp(start, n), clamp(end, n)
	if s.selStart > s.selEnd {
		s.selStart, s.selEnd = s.selEnd, s.selStart
	}
}

func (s *Session) apply(k Kind, c rune) {
	start, end := s.state.Caret, s.state.Caret
	if s.selStart != s.selEnd {
		start, end = s.selStart, s.selEnd
	}
	s.state = Apply(s.state, Edit{Kind: k, Start: start, End: end, Char: c}, s.scramble)
	s.selStart, s.selEnd = s.state.Caret, s.state.Caret
}

// Insert types c at the caret, replacing the selection if any.
func (s *Session) Insert(c rune) {
	if c == '\n' {
		s.apply(Newline, c)
		return
	}
	s.apply(Insert, c)
}

// InsertString types every rune of text in order.
func (s *Session) InsertString(text string) {
	for _, c := range text {
		s.Insert(c)
	}
}

func (s *Session) Backspace() { s.apply(Backspace, 0) }
func (s *Session) DeleteForward() { s.apply(DeleteForward, 0) }
func (s *Session) Newline() { s.apply(Newline, '\n') }
func (s *Session) Left() { s.apply(MoveLeft, 0) }
func (s *Session) Right() { s.apply(MoveRight, 0) }
func (s *Session) Home() { s.apply(Home, 0) }
func (s *Session) End() { s.apply(End, 0) }

// Visible returns the scrambled text.
func (s *Session) Visible() string { return string(s.state.Visible) }

// Hidden returns the original text.
func (s *Session) Hidden() string { return string(s.state.Hidden) }

// Caret returns the caret offset in runes.
func (s *Session) Caret() int { return s.state.Caret }

// Len returns the length of both buffers in runes.
func (s *Session) Len() int { return len(s.state.Hidden) }

// State returns a copy of the underlying buffers.
func (s *Session) State() State {
	return State{
		Visible: append([]rune(nil), s.state.Visible...),
		Hidden:  append([]rune(nil), s.state.Hidden...),
		Caret:   s.state.Caret,
	}
}

// Reset discards all text.
func (s *Session) Reset() {
	s.state = State{}
	s.selStart, s.selEnd = 0, 0
}

// Commit returns the trimmed visible and hidden text and resets the session.
// Trimming is driven by the hidden buffer so both results cover the same
// positions.
func (s *Session) Commit() (content, actual string) {
	h := s.state.Hidden
	lo, hi := 0, len(h)
	for lo < hi && unicode.IsSpace(h[lo]) {
		lo++
	}
	for hi > lo && unicode.IsSpace(h[hi-1]) {
		hi--
	}
	content = string(s.state.Visible[lo:hi])
	actual = string(h[lo:hi])
	s.Reset()
	return content, actual
}
