package terminal

import "unicode/utf8"

const (
	keyCtrlC      = 0x03
	keyCtrlD      = 0x04
	keyCtrlH      = 0x08
	keyTab        = 0x09
	keyLF         = 0x0a
	keyCR         = 0x0d
	keyEscape     = 0x1b
	keyDEL        = 0x7f
	csiIntroducer = '['
	ss3Introducer = 'O'
)

// Decode converts one chunk of raw terminal input into key events.
// Malformed UTF-8 is dropped; unrecognised control bytes and escape
// sequences are reported as SymUnknown so callers can ignore them.
func Decode(b []byte) []KeyEvent {
	var events []KeyEvent

	for i := 0; i < len(b); {
		c := b[i]

		switch {
		case c == keyEscape:
			ev, n := decodeEscape(b[i:])
			events = append(events, ev)
			i += n
			continue

		case c == keyCR || c == keyLF:
			events = append(events, Named(SymEnter))
		case c == keyDEL || c == keyCtrlH:
			events = append(events, Named(SymBackspace))
		case c == keyTab:
			events = append(events, Named(SymTab))
		case c == keyCtrlC:
			events = append(events, Named(SymInterrupt))
		case c == keyCtrlD:
			events = append(events, Named(SymEOF))
		case c < 0x20:
			events = append(events, Named(SymUnknown))

		case c < utf8.RuneSelf:
			events = append(events, Literal(rune(c)))

		default:
			r, size := utf8.DecodeRune(b[i:])
			if r != utf8.RuneError {
				events = append(events, Literal(r))
			}
			i += size
			continue
		}
		i++
	}

	return events
}

// decodeEscape decodes a sequence starting with ESC and returns the event
// plus the number of bytes consumed
func decodeEscape(b []byte) (KeyEvent, int) {
	if len(b) == 1 {
		return Named(SymEscape), 1
	}

	switch b[1] {
	case csiIntroducer:
		return decodeCSI(b)
	case ss3Introducer:
		if len(b) < 3 {
			return Named(SymUnknown), len(b)
		}
		return Named(finalSymbol(b[2])), 3
	default:
		// ESC followed by an ordinary key: report the Escape on its own and
		// let the next byte decode normally
		return Named(SymEscape), 1
	}
}

// decodeCSI decodes "ESC [ params final"
func decodeCSI(b []byte) (KeyEvent, int) {
	// Parameter and intermediate bytes are 0x20-0x3f, final byte is 0x40-0x7e
	j := 2
	for j < len(b) && b[j] >= 0x20 && b[j] <= 0x3f {
		j++
	}
	if j >= len(b) || b[j] < 0x40 || b[j] > 0x7e {
		return Named(SymUnknown), j
	}

	params := string(b[2:j])
	final := b[j]
	consumed := j + 1

	if final == '~' {
		switch params {
		case "1", "7":
			return Named(SymHome), consumed
		case "3":
			return Named(SymDelete), consumed
		case "4", "8":
			return Named(SymEnd), consumed
		default:
			return Named(SymUnknown), consumed
		}
	}

	// Modified arrows ("ESC [ 1 ; 5 A") decode to the plain arrow
	return Named(finalSymbol(final)), consumed
}

func finalSymbol(final byte) Symbol {
	switch final {
	case 'A':
		return SymUp
	case 'B':
		return SymDown
	case 'C':
		return SymRight
	case 'D':
		return SymLeft
	case 'H':
		return SymHome
	case 'F':
		return SymEnd
	default:
		return SymUnknown
	}
}
