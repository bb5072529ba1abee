// Package cli is the interactive terminal front end of the journal.
//
// It wires configuration, the journal service and a line-oriented REPL. The
// write command switches the terminal to raw mode and feeds every keystroke
// through an editor session, so the screen only ever shows the scrambled
// text. A background watcher clears elapsed lockouts while the REPL runs.
//
// Commands:
//   - write, list, view grid|list
//   - show <n|id>, decipher <n|id>, clear
//   - guess, memory, tictactoe
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
