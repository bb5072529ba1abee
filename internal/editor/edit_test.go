package editor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func st(visible, hidden string, caret int) State {
	return State{Visible: []rune(visible), Hidden: []rune(hidden), Caret: caret}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		in   State
		edit Edit
		want State
	}{
		{"insert into empty", st("", "", 0), Edit{Kind: Insert, Char: 'a'}, st("A", "a", 1)},
		{"insert in middle", st("AC", "ac", 1), Edit{Kind: Insert, Start: 1, End: 1, Char: 'b'}, st("ABC", "abc", 2)},
		{"insert replaces selection", st("ABCD", "abcd", 3), Edit{Kind: Insert, Start: 1, End: 3, Char: 'x'}, st("AXD", "axd", 2)},
		{"insert unsupported passes through", st("", "", 0), Edit{Kind: Insert, Char: '#'}, st("#", "#", 1)},
		{"newline not scrambled", st("AB", "ab", 1), Edit{Kind: Newline, Start: 1, End: 1}, st("A\nB", "a\nb", 2)},
		{"backspace at zero is noop", st("AB", "ab", 0), Edit{Kind: Backspace}, st("AB", "ab", 0)},
		{"backspace on empty is noop", st("", "", 0), Edit{Kind: Backspace}, st("", "", 0)},
		{"backspace removes previous", st("ABC", "abc", 2), Edit{Kind: Backspace, Start: 2, End: 2}, st("AC", "ac", 1)},
		{"backspace removes selection", st("ABCD", "abcd", 4), Edit{Kind: Backspace, Start: 1, End: 3}, st("AD", "ad", 1)},
		{"delete forward at end is noop", st("AB", "ab", 2), Edit{Kind: DeleteForward, Start: 2, End: 2}, st("AB", "ab", 2)},
		{"delete forward removes next", st("ABC", "abc", 1), Edit{Kind: DeleteForward, Start: 1, End: 1}, st("AC", "ac", 1)},
		{"delete forward removes selection", st("ABCD", "abcd", 0), Edit{Kind: DeleteForward, Start: 0, End: 2}, st("CD", "cd", 0)},
		{"reversed selection is normalised", st("ABCD", "abcd", 0), Edit{Kind: Backspace, Start: 3, End: 1}, st("AD", "ad", 1)},
		{"out of range offsets are clamped", st("AB", "ab", 0), Edit{Kind: Insert, Start: 10, End: 12, Char: 'c'}, st("ABC", "abc", 3)},
		{"move left", st("AB", "ab", 1), Edit{Kind: MoveLeft, Start: 1, End: 1}, st("AB", "ab", 0)},
		{"move left stops at zero", st("AB", "ab", 0), Edit{Kind: MoveLeft}, st("AB", "ab", 0)},
		{"move right stops at end", st("AB", "ab", 2), Edit{Kind: MoveRight, Start: 2, End: 2}, st("AB", "ab", 2)},
		{"home goes to line start", st("A\nBC", "a\nbc", 4), Edit{Kind: Home, Start: 4, End: 4}, st("A\nBC", "a\nbc", 2)},
		{"end goes to line end", st("AB\nC", "ab\nc", 0), Edit{Kind: End}, st("AB\nC", "ab\nc", 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.in, tt.edit, upper)
			assert.Equal(t, string(tt.want.Visible), string(got.Visible))
			assert.Equal(t, string(tt.want.Hidden), string(got.Hidden))
			assert.Equal(t, tt.want.Caret, got.Caret)
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := st("ABC", "abc", 1)
	_ = Apply(in, Edit{Kind: Insert, Start: 1, End: 1, Char: 'x'}, upper)
	_ = Apply(in, Edit{Kind: Backspace, Start: 1, End: 1}, upper)

	assert.Equal(t, "ABC", string(in.Visible))
	assert.Equal(t, "abc", string(in.Hidden))
}

func TestApply_RandomSequencesKeepBuffersAligned(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	kinds := []Kind{Insert, Backspace, DeleteForward, Newline, MoveLeft, MoveRight, Home, End}
	alphabet := []rune("abc XYZ.!\n")

	s := State{}
	for i := 0; i < 5000; i++ {
		n := len(s.Hidden) + 2
		e := Edit{
			Kind:  kinds[r.IntN(len(kinds))],
			Start: r.IntN(n+2) - 1,
			End:   r.IntN(n+2) - 1,
			Char:  alphabet[r.IntN(len(alphabet))],
		}
		s = Apply(s, e, upper)

		require.Equal(t, len(s.Hidden), len(s.Visible), "step %d", i)
		require.GreaterOrEqual(t, s.Caret, 0)
		require.LessOrEqual(t, s.Caret, len(s.Hidden))
		for j := range s.Hidden {
			require.Equal(t, upper(s.Hidden[j]), s.Visible[j], "step %d pos %d", i, j)
		}
	}
}
