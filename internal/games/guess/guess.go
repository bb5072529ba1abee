// Package guess is the number oracle: find a secret number in a few tries.
package guess

import (
	"github.com/dmitrijs2005/unconfessional/internal/games"
)

const (
	Range       = 100
	MaxAttempts = 5
)

// Feedback is the oracle's answer to a guess.
type Feedback int

const (
	// Invalid guesses are out of range and cost no attempt.
	Invalid Feedback = iota
	Higher
	Lower
	Won
	Lost
	// Over means the round already ended.
	Over
)

func (f Feedback) String() string {
	switch f {
	case Invalid:
		return "invalid"
	case Higher:
		return "higher"
	case Lower:
		return "lower"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Over:
		return "over"
	}
	return "unknown"
}

type Game struct {
	target       int
	attemptsLeft int
	ender        games.Ender
	pick         games.Picker
}

// New starts a round. pick chooses the secret; nil uses math/rand/v2.
func New(onEnd games.EndFunc, pick games.Picker) *Game {
	g := &Game{ender: games.NewEnder(onEnd), pick: pick.OrDefault()}
	g.Reset()
	return g
}

// Reset draws a new secret and restores all attempts.
func (g *Game) Reset() {
	g.target = g.pick(Range) + 1
	g.attemptsLeft = MaxAttempts
	g.ender.Reset()
}

// Guess checks n against the secret.
func (g *Game) Guess(n int) Feedback {
	if g.ender.Done() {
		return Over
	}
	if n < 1 || n > Range {
		return Invalid
	}
	if n == g.target {
		g.ender.End(true)
		return Won
	}

	g.attemptsLeft--
	if g.attemptsLeft == 0 {
		g.ender.End(false)
		return Lost
	}
	if n < g.target {
		return Higher
	}
	return Lower
}

func (g *Game) AttemptsLeft() int { return g.attemptsLeft }

func (g *Game) Over() bool { return g.ender.Done() }

// Target reveals the secret once the round is over.
func (g *Game) Target() (int, bool) {
	if !g.ender.Done() {
		return 0, false
	}
	return g.target, true
}
