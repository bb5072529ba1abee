// Package memory is the card matching game: flip two cards at a time and
// pair every symbol before the clock runs out.
package memory

import (
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/dmitrijs2005/unconfessional/internal/games"
)

// TimeLimit is the length of a round.
const TimeLimit = 120 * time.Second

// Symbols are the card faces; each appears twice on the board.
var Symbols = []string{
	"🍕", "🦄", "💩", "🤡", "👹", "🦖", "🪳", "🛸", "👽", "🧟",
	"🤯", "🐙", "🍔", "🪼", "🍟", "🎃", "🦔", "🪱",
}

// FlipResult tells the caller what a flip did.
type FlipResult int

const (
	// Ignored flips hit a revealed card, an invalid index, a full hand or a
	// finished round.
	Ignored FlipResult = iota
	// Flipped revealed the first card of a pair.
	Flipped
	// PairReady revealed the second card; call Resolve next.
	PairReady
)

type Game struct {
	cards   []string
	flipped []int
	matched []bool
	pairs   int
	started time.Time
	limit   time.Duration
	won     bool
	ender   games.Ender
	shuffle func([]string) []string
}

// New deals a shuffled board at now. A nil shuffle uses lo.Shuffle.
func New(onEnd games.EndFunc, now time.Time, shuffle func([]string) []string) *Game {
	if shuffle == nil {
		shuffle = func(cards []string) []string { return lo.Shuffle(cards) }
	}
	g := &Game{ender: games.NewEnder(onEnd), shuffle: shuffle, limit: TimeLimit}
	g.Reset(now)
	return g
}

// Reset deals a new board and restarts the clock at now.
func (g *Game) Reset(now time.Time) {
	g.cards = g.shuffle(slices.Concat(Symbols, Symbols))
	g.flipped = nil
	g.matched = make([]bool, len(g.cards))
	g.pairs = 0
	g.started = now
	g.won = false
	g.ender.Reset()
}

// Flip reveals card i.
func (g *Game) Flip(i int, now time.Time) FlipResult {
	if g.Tick(now) || i < 0 || i >= len(g.cards) {
		return Ignored
	}
	if len(g.flipped) == 2 || g.matched[i] || slices.Contains(g.flipped, i) {
		return Ignored
	}

	g.flipped = append(g.flipped, i)
	if len(g.flipped) == 2 {
		return PairReady
	}
	return Flipped
}

// Resolve compares the two face-up cards, keeps them if they match and turns
// them back otherwise. It reports whether they matched.
func (g *Game) Resolve(now time.Time) bool {
	if len(g.flipped) != 2 {
		return false
	}
	first, second := g.flipped[0], g.flipped[1]
	g.flipped = nil

	if g.Tick(now) || g.cards[first] != g.cards[second] {
		return false
	}

	g.matched[first], g.matched[second] = true, true
	g.pairs++
	if g.pairs == len(Symbols) {
		g.won = true
		g.ender.End(true)
	}
	return true
}

// Tick ends the round as lost once the time limit has passed. It reports
// whether the round is over.
func (g *Game) Tick(now time.Time) bool {
	if g.ender.Done() {
		return true
	}
	if now.Sub(g.started) >= g.limit {
		g.ender.End(false)
		return true
	}
	return false
}

// TimeLeft returns the remaining round time, never negative.
func (g *Game) TimeLeft(now time.Time) time.Duration {
	return max(g.limit-now.Sub(g.started), 0)
}

// Elapsed returns the time spent in the round at now, capped at the limit.
func (g *Game) Elapsed(now time.Time) time.Duration {
	return min(now.Sub(g.started), g.limit)
}

func (g *Game) Len() int { return len(g.cards) }

func (g *Game) Pairs() int { return g.pairs }

func (g *Game) Won() bool { return g.won }

func (g *Game) Over() bool { return g.ender.Done() }

// Face returns card i's symbol and whether it is currently visible.
func (g *Game) Face(i int) (string, bool) {
	if i < 0 || i >= len(g.cards) {
		return "", false
	}
	return g.cards[i], g.matched[i] || slices.Contains(g.flipped, i)
}

// FormatTime renders d as m:ss.
func FormatTime(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
