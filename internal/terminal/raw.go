package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Raw tracks a terminal that has been switched into raw mode
type Raw struct {
	fd    int
	state *term.State
}

// EnterRaw puts f into raw mode. When f is not a terminal (input piped from
// a file, tests) nothing is changed and the returned Raw is inactive.
func EnterRaw(f *os.File) (*Raw, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return &Raw{fd: fd}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	return &Raw{fd: fd, state: state}, nil
}

// Active reports whether the terminal is currently in raw mode
func (r *Raw) Active() bool {
	return r != nil && r.state != nil
}

// Restore returns the terminal to the mode it had before EnterRaw.
// It is safe to call more than once.
func (r *Raw) Restore() error {
	if !r.Active() {
		return nil
	}
	state := r.state
	r.state = nil
	if err := term.Restore(r.fd, state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}
