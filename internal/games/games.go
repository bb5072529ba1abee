// Package games holds what the three mini-games share: the end-of-round
// callback contract.
package games

import "math/rand/v2"

// EndFunc is told whether the player won. It runs exactly once per round.
type EndFunc func(won bool)

// Ender guards an EndFunc so it fires at most once until Reset.
type Ender struct {
	fn    EndFunc
	fired bool
}

func NewEnder(fn EndFunc) Ender {
	return Ender{fn: fn}
}

// End reports the round's result unless it was already reported.
func (e *Ender) End(won bool) {
	if e.fired {
		return
	}
	e.fired = true
	if e.fn != nil {
		e.fn(won)
	}
}

// Done reports whether the current round has ended.
func (e *Ender) Done() bool { return e.fired }

// Reset arms the callback for a new round.
func (e *Ender) Reset() { e.fired = false }

// Picker returns a value in [0, n).
type Picker func(n int) int

// OrDefault returns p, or math/rand/v2's IntN when p is nil.
func (p Picker) OrDefault() Picker {
	if p == nil {
		return rand.IntN
	}
	return p
}
