package remote

import (
	"context"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/terminal"
)

// TextEntryPrompt is written before text entry starts
const TextEntryPrompt = "Enter text (<Esc> to abort) : "

// eraseChar moves back over one echoed character and blanks it
const eraseChar = "\b \b"

// textEntryState is the whole state of a text entry session. column counts
// echoed characters after the prompt and never goes below zero.
type textEntryState struct {
	column int
	done   bool
}

// stepTextEntry applies one key event. The returned state replaces st; the
// error is any failure relaying to the device.
func stepTextEntry(ctx context.Context, r Remote, out io.Writer, st textEntryState, ev terminal.KeyEvent) (textEntryState, error) {
	if ev.IsZero() {
		return st, nil
	}

	if ev.IsNamed() {
		switch ev.Sym {
		case terminal.SymEnter:
			st.done = true
			return st, r.Keypress(ctx, ecp.KeyEnter)

		case terminal.SymEscape:
			st.done = true
			return st, nil

		case terminal.SymBackspace, terminal.SymDelete:
			if err := r.Keypress(ctx, ecp.KeyBackspace); err != nil {
				return st, err
			}
			if st.column > 0 {
				_, _ = io.WriteString(out, eraseChar)
				st.column--
			}
			return st, nil

		default:
			return st, nil
		}
	}

	if !unicode.IsPrint(ev.Rune) {
		return st, nil
	}

	if err := r.Literal(ctx, ev.Rune); err != nil {
		return st, err
	}
	_, _ = io.WriteString(out, string(ev.Rune))
	st.column++
	return st, nil
}

// RunTextEntry relays typed text until Enter (commit) or Escape (abort).
// The prompt line is cleared on the way out whatever the outcome.
func RunTextEntry(ctx context.Context, keys KeyReader, r Remote, out io.Writer) error {
	_, _ = io.WriteString(out, TextEntryPrompt)
	defer func() {
		_, _ = io.WriteString(out, ansi.EraseLineLeft+"\r")
	}()

	var st textEntryState
	for !st.done {
		ev, err := keys.ReadKey()
		if err != nil {
			return fmt.Errorf("%w: %w", errKeyboard, err)
		}

		st, err = stepTextEntry(ctx, r, out, st, ev)
		if err != nil {
			return err
		}
	}

	return nil
}
