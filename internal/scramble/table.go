// Package scramble implements the cosmetic keystroke substitution used by the
// journal editor. It is not encryption: the original text is kept elsewhere.
package scramble

import (
	"errors"
	"fmt"
	"slices"
	"unicode"
)

// ErrEmptyCandidates is returned when a supported rune has no replacements.
var ErrEmptyCandidates = errors.New("empty candidate set")

// Table maps a supported rune to the ordered set of runes it may be
// replaced with. A Table is immutable once built.
type Table struct {
	candidates map[rune][]rune
}

// qwerty lists keyboard neighbours for lowercase letters.
var qwerty = map[rune]string{
	'q': "was", 'w': "qeasd", 'e': "wrsdf", 'r': "etdfg", 't': "ryfgh",
	'y': "tughj", 'u': "yihjk", 'i': "uojkl", 'o': "ipkl", 'p': "ol",
	'a': "qwsz", 's': "adwezx", 'd': "sferxc", 'f': "dgrtcv", 'g': "fhtyvb",
	'h': "gjyubn", 'j': "hkuinm", 'k': "jliom", 'l': "kop",
	'z': "asx", 'x': "zcsd", 'c': "xvdf", 'v': "cbfg", 'b': "vngh",
	'n': "bmhj", 'm': "njk",
}

var digits = map[rune]string{
	'1': "2", '2': "13", '3': "24", '4': "35", '5': "46",
	'6': "57", '7': "68", '8': "79", '9': "80", '0': "9",
}

var punctuation = map[rune]string{
	'.': ",:", '!': "?.", '?': "!.", ',': ".;",
	';': ":,", ':': ";.", '"': "':", '\'': "\";",
	' ': " _",
}

// DefaultTable returns the built-in adjacency table covering lowercase and
// uppercase letters, digits, space and the punctuation . ! ? , ; : " '.
func DefaultTable() Table {
	m := make(map[rune][]rune, 2*len(qwerty)+len(digits)+len(punctuation))
	for r, s := range qwerty {
		m[r] = []rune(s)
		upper := make([]rune, 0, len(s))
		for _, c := range s {
			upper = append(upper, unicode.ToUpper(c))
		}
		m[unicode.ToUpper(r)] = upper
	}
	for r, s := range digits {
		m[r] = []rune(s)
	}
	for r, s := range punctuation {
		m[r] = []rune(s)
	}
	t, err := NewTable(m)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable copies m into a Table, rejecting any rune mapped to an empty list.
func NewTable(m map[rune][]rune) (Table, error) {
	c := make(map[rune][]rune, len(m))
	for r, list := range m {
		if len(list) == 0 {
			return Table{}, fmt.Errorf("rune %q: %w", r, ErrEmptyCandidates)
		}
		c[r] = slices.Clone(list)
	}
	return Table{candidates: c}, nil
}

// Candidates returns a copy of the replacement list for r. The boolean is
// false when r is outside the table's domain.
func (t Table) Candidates(r rune) ([]rune, bool) {
	list, ok := t.candidates[r]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Supports reports whether r is in the table's domain.
func (t Table) Supports(r rune) bool {
	_, ok := t.candidates[r]
	return ok
}

// Runes returns the table's domain in ascending order.
func (t Table) Runes() []rune {
	out := make([]rune, 0, len(t.candidates))
	for r := range t.candidates {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func (t Table) pick(r rune, i int) rune {
	return t.candidates[r][i]
}

func (t Table) size(r rune) int {
	return len(t.candidates[r])
}
