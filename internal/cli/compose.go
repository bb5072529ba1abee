package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/unconfessional/internal/editor"
)

// Test seams for golang.org/x/term. Tests replace them to avoid touching a
// real terminal.
var (
	isTerminal = term.IsTerminal
	makeRaw    = term.MakeRaw
	restore    = term.Restore
)

const (
	saveCursor    = "\x1b7"
	restoreCursor = "\x1b8"
	clearBelow    = "\x1b[J"
	reverseVideo  = "\x1b[7m"
	resetVideo    = "\x1b[0m"
)

const composeHelp = "Type freely. Ctrl-S seals, Esc or Ctrl-C discards."

// compose fills session from the user's keystrokes. It reports whether the
// user asked to seal (true) or discard (false) the draft.
//
// On a terminal it switches stdin to raw mode so every keystroke reaches the
// session as it is typed. Otherwise it reads lines up to an empty one and
// feeds them through the session rune by rune.
func (a *App) compose(session *editor.Session) (bool, error) {
	if a.inFd >= 0 && isTerminal(a.inFd) {
		state, err := makeRaw(a.inFd)
		if err != nil {
			return false, fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = restore(a.inFd, state) }()

		return editKeys(a.reader, a.out, session)
	}

	text, err := GetMultiline(a.reader, "Write your entry", a.out)
	if err != nil {
		return false, err
	}
	session.InsertString(text)
	return true, nil
}

// editKeys drives session from raw keystrokes on r, redrawing the scrambled
// buffer on w after each one. EOF seals what was typed so far.
func editKeys(r *bufio.Reader, w io.Writer, session *editor.Session) (bool, error) {
	fmt.Fprint(w, composeHelp+"\r\n"+saveCursor)
	redraw(w, session)

	for {
		k, err := readKey(r)
		if errors.Is(err, io.EOF) {
			fmt.Fprint(w, "\r\n")
			return true, nil
		}
		if err != nil {
			return false, err
		}

		switch k.Kind {
		case KeySeal:
			fmt.Fprint(w, "\r\n")
			return true, nil
		case KeyCancel:
			fmt.Fprint(w, "\r\n")
			return false, nil
		case KeyRune:
			session.Insert(k.Rune)
		case KeyEnter:
			session.Newline()
		case KeyBackspace:
			session.Backspace()
		case KeyDelete:
			session.DeleteForward()
		case KeyLeft:
			session.Left()
		case KeyRight:
			session.Right()
		case KeyHome:
			session.Home()
		case KeyEnd:
			session.End()
		default:
			continue
		}
		redraw(w, session)
	}
}

func redraw(w io.Writer, session *editor.Session) {
	fmt.Fprint(w, restoreCursor+clearBelow+renderDraft([]rune(session.Visible()), session.Caret()))
}

// renderDraft renders the visible buffer for a raw terminal, marking the
// caret position in reverse video.
func renderDraft(visible []rune, caret int) string {
	var b strings.Builder
	for i, r := range visible {
		if i == caret {
			b.WriteString(reverseVideo)
			if r == '\n' {
				b.WriteString(" " + resetVideo + "\r\n")
				continue
			}
			b.WriteRune(r)
			b.WriteString(resetVideo)
			continue
		}
		if r == '\n' {
			b.WriteString("\r\n")
			continue
		}
		b.WriteRune(r)
	}
	if caret >= len(visible) {
		b.WriteString(reverseVideo + " " + resetVideo)
	}
	return b.String()
}
