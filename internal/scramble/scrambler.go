package scramble

import (
	"math/rand/v2"
	"strings"
)

// Picker returns a value in [0, n). It must be uniform for the scrambler to
// sample candidates uniformly.
type Picker func(n int) int

// Scrambler replaces one rune at a time with a random candidate from its
// Table. It keeps no state between calls.
type Scrambler struct {
	table Table
	pick  Picker
}

// NewScrambler builds a Scrambler over t. A nil pick uses math/rand/v2.
func NewScrambler(t Table, pick Picker) *Scrambler {
	if pick == nil {
		pick = rand.IntN
	}
	return &Scrambler{table: t, pick: pick}
}

// Table returns the substitution table in use.
func (s *Scrambler) Table() Table {
	return s.table
}

// Scramble returns r unchanged when it has no table entry, otherwise one of
// its candidates chosen by the picker.
func (s *Scrambler) Scramble(r rune) rune {
	n := s.table.size(r)
	if n == 0 {
		return r
	}
	return s.table.pick(r, s.pick(n))
}

// ScrambleString applies Scramble to every rune of text.
func (s *Scrambler) ScrambleString(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(s.Scramble(r))
	}
	return b.String()
}
