// Package editor keeps the visible (scrambled) and hidden (original) text of
// an entry being composed aligned rune for rune.
package editor

import "slices"

// Kind identifies an edit operation.
type Kind int

const (
	Insert Kind = iota
	Backspace
	DeleteForward
	Newline
	MoveLeft
	MoveRight
	Home
	End
)

// Edit is a single operation against the selection [Start, End). A caret
// without selection has Start == End.
type Edit struct {
	Kind  Kind
	Start int
	End   int
	Char  rune
}

// State is the pair of aligned buffers plus the caret offset into both.
type State struct {
	Visible []rune
	Hidden  []rune
	Caret   int
}

// Apply performs e on both buffers of s and returns the resulting state.
// s is never modified. Offsets are clamped into range; edits that have
// nothing to act on return the state unchanged apart from the caret.
func Apply(s State, e Edit, scramble func(rune) rune) State {
	n := len(s.Hidden)
	start, end := clamp(e.Start, n), clamp(e.End, n)
	if start > end {
		start, end = end, start
	}

	switch e.Kind {
	case Insert:
		v := e.Char
		if scramble != nil {
			v = scramble(e.Char)
		}
		return splice(s, start, end, v, e.Char)

	case Newline:
		return splice(s, start, end, '\n', '\n')

	case Backspace:
		if start < end {
			return cut(s, start, end)
		}
		if start == 0 {
			return State{Visible: s.Visible, Hidden: s.Hidden, Caret: 0}
		}
		return cut(s, start-1, start)

	case DeleteForward:
		if start < end {
			return cut(s, start, end)
		}
		if start == n {
			return State{Visible: s.Visible, Hidden: s.Hidden, Caret: n}
		}
		return cut(s, start, start+1)

	case MoveLeft:
		caret := start
		if start == end && start > 0 {
			caret--
		}
		return State{Visible: s.Visible, Hidden: s.Hidden, Caret: caret}

	case MoveRight:
		caret := end
		if start == end && end < n {
			caret++
		}
		return State{Visible: s.Visible, Hidden: s.Hidden, Caret: caret}

	case Home:
		caret := start
		for caret > 0 && s.Hidden[caret-1] != '\n' {
			caret--
		}
		return State{Visible: s.Visible, Hidden: s.Hidden, Caret: caret}

	case End:
		caret := end
		for caret < n && s.Hidden[caret] != '\n' {
			caret++
		}
		return State{Visible: s.Visible, Hidden: s.Hidden, Caret: caret}
	}

	return s
}

func clamp(i, n int) int {
	return max(0, min(i, n))
}

func splice(s State, start, end int, visible, hidden rune) State {
	v := slices.Concat(s.Visible[:start], []rune{visible}, s.Visible[end:])
	h := slices.Concat(s.Hidden[:start], []rune{hidden}, s.Hidden[end:])
	return State{Visible: v, Hidden: h, Caret: start + 1}
}

func cut(s State, start, end int) State {
	v := slices.Concat(s.Visible[:start], s.Visible[end:])
	h := slices.Concat(s.Hidden[:start], s.Hidden[end:])
	return State{Visible: v, Hidden: h, Caret: start}
}
