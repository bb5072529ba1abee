package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/unconfessional/internal/games"
	"github.com/dmitrijs2005/unconfessional/internal/games/guess"
	"github.com/dmitrijs2005/unconfessional/internal/games/memory"
	"github.com/dmitrijs2005/unconfessional/internal/games/tictactoe"
)

// Game constructors are test seams; tests swap in deterministic ones.
var (
	newGuess     = func(onEnd games.EndFunc) *guess.Game { return guess.New(onEnd, nil) }
	newTicTacToe = func(onEnd games.EndFunc) *tictactoe.Game { return tictactoe.New(onEnd, nil) }
	shuffleCards func([]string) []string
)

const quitHint = "q to quit"

// onGameEnd reports the result of a round.
func (a *App) onGameEnd(ctx context.Context, game string) games.EndFunc {
	return func(won bool) {
		a.log.Info(ctx, "game over", "game", game, "won", won)
		if won {
			fmt.Fprintln(a.out, "You won!")
			return
		}
		fmt.Fprintln(a.out, "You lost.")
	}
}

// readMove reads one line of game input. It reports false when the player
// quits or input ends.
func (a *App) readMove(prompt string) ([]string, bool) {
	line, err := GetSimpleText(a.reader, prompt+" ("+quitHint+")", a.out)
	if err != nil {
		return nil, false
	}
	fields := strings.Fields(line)
	if len(fields) > 0 && (fields[0] == "q" || fields[0] == "quit") {
		return nil, false
	}
	return fields, true
}

// Guess plays the number oracle.
func (a *App) Guess(ctx context.Context) error {
	g := newGuess(a.onGameEnd(ctx, "guess"))
	fmt.Fprintf(a.out, "I am thinking of a number between 1 and %d. You have %d tries.\n", guess.Range, guess.MaxAttempts)

	for !g.Over() {
		fields, ok := a.readMove(fmt.Sprintf("Your guess, %d left", g.AttemptsLeft()))
		if !ok {
			return nil
		}
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			fmt.Fprintln(a.out, "That is not a number.")
			continue
		}

		switch g.Guess(n) {
		case guess.Invalid:
			fmt.Fprintf(a.out, "Pick a number between 1 and %d.\n", guess.Range)
		case guess.Higher:
			fmt.Fprintln(a.out, "Higher.")
		case guess.Lower:
			fmt.Fprintln(a.out, "Lower.")
		case guess.Lost:
			target, _ := g.Target()
			fmt.Fprintf(a.out, "The number was %d.\n", target)
		}
	}
	return nil
}

// Memory plays the card matching game against the clock.
func (a *App) Memory(ctx context.Context) error {
	g := memory.New(a.onGameEnd(ctx, "memory"), a.now(), shuffleCards)
	fmt.Fprintf(a.out, "Match every pair within %s. Pick two cards by number.\n", memory.FormatTime(memory.TimeLimit))

	for !g.Tick(a.now()) {
		fmt.Fprintln(a.out, renderMemory(g))
		fields, ok := a.readMove(fmt.Sprintf("%s left, two cards", memory.FormatTime(g.TimeLeft(a.now()))))
		if !ok {
			return nil
		}

		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				continue
			}
			if g.Flip(n-1, a.now()) != memory.PairReady {
				continue
			}
			fmt.Fprintln(a.out, renderMemory(g))
			if g.Resolve(a.now()) {
				fmt.Fprintf(a.out, "A pair! %d of %d.\n", g.Pairs(), len(memory.Symbols))
			} else {
				fmt.Fprintln(a.out, "No match.")
			}
			break
		}
	}

	if g.Won() {
		fmt.Fprintf(a.out, "Finished in %s.\n", memory.FormatTime(g.Elapsed(a.now())))
	}
	return nil
}

func renderMemory(g *memory.Game) string {
	var b strings.Builder
	for i := 0; i < g.Len(); i++ {
		if face, up := g.Face(i); up {
			fmt.Fprintf(&b, " %s ", face)
		} else {
			fmt.Fprintf(&b, "%3d ", i+1)
		}
		if (i+1)%6 == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// TicTacToe plays the ancient grid. The player is X and moves first.
func (a *App) TicTacToe(ctx context.Context) error {
	g := newTicTacToe(a.onGameEnd(ctx, "tictactoe"))
	fmt.Fprintln(a.out, "You are X. Pick a cell from 1 to 9.")

	for !g.Over() {
		fmt.Fprintln(a.out, renderBoard(g.Board()))
		fields, ok := a.readMove("Your move")
		if !ok {
			return nil
		}
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			fmt.Fprintln(a.out, "That is not a cell.")
			continue
		}
		if _, ok := g.Play(n - 1); !ok {
			fmt.Fprintln(a.out, "That cell is taken or off the board.")
		}
	}

	fmt.Fprintln(a.out, renderBoard(g.Board()))
	if g.Result() == tictactoe.Draw {
		fmt.Fprintln(a.out, "A draw.")
	}
	return nil
}

func renderBoard(b tictactoe.Board) string {
	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			i := r*3 + c
			if b[i] == tictactoe.Empty {
				cells[c] = strconv.Itoa(i + 1)
			} else {
				cells[c] = b[i].String()
			}
		}
		rows = append(rows, " "+strings.Join(cells, " | "))
	}
	return strings.Join(rows, "\n---+---+---\n")
}
