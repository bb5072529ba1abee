package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/unconfessional/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Write(ctx context.Context) error
	List(ctx context.Context) error
	SetView(mode models.ViewMode) error
	Show(ctx context.Context, ref string) error
	Decipher(ctx context.Context, ref string) error
	Clear(ctx context.Context) error
	Guess(ctx context.Context) error
	Memory(ctx context.Context) error
	TicTacToe(ctx context.Context) error
}

const helpText = `Available commands:
  write            compose and seal a new entry
  (l)ist           list entries
  view grid|list   switch the list layout
  show <n|id>      show an entry as it was sealed
  decipher <n|id>  attempt to decipher an entry
  clear            erase every entry
  guess            play the number oracle
  memory           play the memory cards
  tictactoe        play the ancient grid
  exit | quit      leave the program`

// runREPL starts a simple read-eval-print loop for the journal CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. The loop exits on EOF, on "exit" or "quit", or
// when ctx is cancelled.
//
// The REPL reads whole lines through the same buffered reader the commands
// use, so nothing typed ahead is lost when a command takes over the input.
// Errors returned by command handlers are reported and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("journal %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "w", "write":
			report(a.Write(ctx))

		case "l", "list":
			report(a.List(ctx))

		case "view", "grid":
			mode := cmd
			if cmd == "view" {
				if len(args) == 0 {
					printlnFn("Usage: view grid|list")
					continue
				}
				mode = args[0]
			}
			v, err := models.ParseViewMode(mode)
			if err != nil {
				report(err)
				continue
			}
			report(a.SetView(v))

		case "show", "decipher":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <n|id>", cmd))
				continue
			}
			if cmd == "show" {
				report(a.Show(ctx, args[0]))
			} else {
				report(a.Decipher(ctx, args[0]))
			}

		case "clear":
			report(a.Clear(ctx))

		case "guess":
			report(a.Guess(ctx))

		case "memory":
			report(a.Memory(ctx))

		case "tictactoe", "ttt":
			report(a.TicTacToe(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("error:", err)
	}
}
