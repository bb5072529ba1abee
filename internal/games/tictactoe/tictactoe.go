// Package tictactoe plays noughts and crosses against a simple oracle: the
// human is X and moves first, the oracle is O.
package tictactoe

import (
	"github.com/samber/lo"

	"github.com/dmitrijs2005/unconfessional/internal/games"
)

type Cell int

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Result is the state of a board.
type Result int

const (
	Ongoing Result = iota
	XWins
	OWins
	Draw
)

type Board [9]Cell

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner reports whether either side holds a full line or the board is full.
func (b Board) Winner() Result {
	for _, l := range lines {
		c := b[l[0]]
		if c != Empty && c == b[l[1]] && c == b[l[2]] {
			if c == X {
				return XWins
			}
			return OWins
		}
	}
	if len(b.EmptyCells()) == 0 {
		return Draw
	}
	return Ongoing
}

func (b Board) EmptyCells() []int {
	return lo.Filter(lo.Range(len(b)), func(i int, _ int) bool {
		return b[i] == Empty
	})
}

// FindLineCompletion returns the empty cell of the first line where p already
// holds the other two cells.
func (b Board) FindLineCompletion(p Cell) (int, bool) {
	for _, l := range lines {
		owned, empty := 0, -1
		for _, i := range l {
			switch b[i] {
			case p:
				owned++
			case Empty:
				empty = i
			}
		}
		if owned == 2 && empty >= 0 {
			return empty, true
		}
	}
	return 0, false
}

type Game struct {
	board  Board
	result Result
	ender  games.Ender
	pick   games.Picker
}

// New starts a round. A nil pick chooses the oracle's fallback cell at random.
func New(onEnd games.EndFunc, pick games.Picker) *Game {
	return &Game{ender: games.NewEnder(onEnd), pick: pick.OrDefault()}
}

func (g *Game) Reset() {
	g.board = Board{}
	g.result = Ongoing
	g.ender.Reset()
}

// Play puts X on cell i and, if the round goes on, lets the oracle answer.
// It returns the oracle's cell, or -1 when the oracle did not move. Moves on
// taken cells, out of range or after the end are ignored and return false.
func (g *Game) Play(i int) (int, bool) {
	if g.result != Ongoing || i < 0 || i >= len(g.board) || g.board[i] != Empty {
		return -1, false
	}

	g.board[i] = X
	if g.settle() {
		return -1, true
	}

	move := g.oracleMove()
	g.board[move] = O
	g.settle()
	return move, true
}

func (g *Game) oracleMove() int {
	if i, ok := g.board.FindLineCompletion(O); ok {
		return i
	}
	if i, ok := g.board.FindLineCompletion(X); ok {
		return i
	}
	empty := g.board.EmptyCells()
	return empty[g.pick(len(empty))]
}

// settle records the board's result and reports whether the round ended. Only
// an X line counts as a win.
func (g *Game) settle() bool {
	g.result = g.board.Winner()
	if g.result == Ongoing {
		return false
	}
	g.ender.End(g.result == XWins)
	return true
}

func (g *Game) Board() Board { return g.board }

func (g *Game) Result() Result { return g.result }

func (g *Game) Over() bool { return g.result != Ongoing }
