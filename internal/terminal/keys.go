package terminal

import "fmt"

// Symbol names a non-printable key
type Symbol int

const (
	SymNone Symbol = iota
	SymEnter
	SymEscape
	SymBackspace
	SymDelete
	SymUp
	SymDown
	SymLeft
	SymRight
	SymHome
	SymEnd
	SymTab
	// SymInterrupt is Ctrl-C, delivered as a byte while in raw mode
	SymInterrupt
	// SymEOF is Ctrl-D
	SymEOF
	// SymUnknown is any control byte or escape sequence we do not decode
	SymUnknown
)

// String returns a human-readable name for the symbol
func (s Symbol) String() string {
	switch s {
	case SymNone:
		return "None"
	case SymEnter:
		return "Enter"
	case SymEscape:
		return "Escape"
	case SymBackspace:
		return "Backspace"
	case SymDelete:
		return "Delete"
	case SymUp:
		return "Up"
	case SymDown:
		return "Down"
	case SymLeft:
		return "Left"
	case SymRight:
		return "Right"
	case SymHome:
		return "Home"
	case SymEnd:
		return "End"
	case SymTab:
		return "Tab"
	case SymInterrupt:
		return "Ctrl-C"
	case SymEOF:
		return "Ctrl-D"
	case SymUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Symbol(%d)", s)
	}
}

// KeyEvent is a single keystroke. Exactly one of Rune or Sym is set; the zero
// value represents an empty read. KeyEvent is comparable and can be used as a
// map key.
type KeyEvent struct {
	Rune rune
	Sym  Symbol
}

// Literal returns the event for a printable character
func Literal(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// Named returns the event for a named (non-printable) key
func Named(s Symbol) KeyEvent {
	return KeyEvent{Sym: s}
}

// IsZero reports whether the event carries no key at all
func (k KeyEvent) IsZero() bool {
	return k.Rune == 0 && k.Sym == SymNone
}

// IsNamed reports whether the event is a named key
func (k KeyEvent) IsNamed() bool {
	return k.Sym != SymNone
}

// String returns "<Name>" for named keys and the character itself otherwise
func (k KeyEvent) String() string {
	switch {
	case k.IsZero():
		return ""
	case k.IsNamed():
		return "<" + k.Sym.String() + ">"
	case k.Rune == ' ':
		return "<Space>"
	default:
		return string(k.Rune)
	}
}
