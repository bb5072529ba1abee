package cli

import (
	"bufio"
	"unicode"
)

// KeyKind classifies one decoded keystroke from a raw terminal.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeySeal
	KeyCancel
)

type Key struct {
	Kind KeyKind
	Rune rune
}

const (
	ctrlA     = 0x01
	ctrlC     = 0x03
	ctrlD     = 0x04
	ctrlE     = 0x05
	ctrlH     = 0x08
	ctrlS     = 0x13
	escape    = 0x1b
	backspace = 0x7f
)

// readKey decodes the next keystroke from r. A lone ESC with nothing
// buffered behind it cancels; ESC sequences the editor does not handle
// decode as KeyUnknown.
func readKey(r *bufio.Reader) (Key, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch c {
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case backspace, ctrlH:
		return Key{Kind: KeyBackspace}, nil
	case ctrlS, ctrlD:
		return Key{Kind: KeySeal}, nil
	case ctrlC:
		return Key{Kind: KeyCancel}, nil
	case ctrlA:
		return Key{Kind: KeyHome}, nil
	case ctrlE:
		return Key{Kind: KeyEnd}, nil
	case escape:
		if r.Buffered() == 0 {
			return Key{Kind: KeyCancel}, nil
		}
		return readEscape(r)
	case '\t':
		return Key{Kind: KeyRune, Rune: c}, nil
	}

	if unicode.IsControl(c) {
		return Key{Kind: KeyUnknown}, nil
	}
	return Key{Kind: KeyRune, Rune: c}, nil
}

// readEscape decodes CSI (ESC [) and SS3 (ESC O) cursor sequences.
func readEscape(r *bufio.Reader) (Key, error) {
	intro, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if intro != '[' && intro != 'O' {
		return Key{Kind: KeyUnknown}, nil
	}

	var param []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if b >= '0' && b <= '9' || b == ';' {
			param = append(param, b)
			continue
		}

		switch b {
		case 'C':
			return Key{Kind: KeyRight}, nil
		case 'D':
			return Key{Kind: KeyLeft}, nil
		case 'H':
			return Key{Kind: KeyHome}, nil
		case 'F':
			return Key{Kind: KeyEnd}, nil
		case '~':
			return tildeKey(string(param)), nil
		}
		return Key{Kind: KeyUnknown}, nil
	}
}

func tildeKey(param string) Key {
	switch param {
	case "3":
		return Key{Kind: KeyDelete}
	case "1", "7":
		return Key{Kind: KeyHome}
	case "4", "8":
		return Key{Kind: KeyEnd}
	}
	return Key{Kind: KeyUnknown}
}
