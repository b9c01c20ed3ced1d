package remote

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/logging"
	"github.com/muurk/rokucli/internal/terminal"
)

// errKeyboard marks failures reading the keyboard, as opposed to the device
var errKeyboard = errors.New("failed to read keyboard")

// KeyReader is the keyboard capability. *terminal.Reader implements it.
type KeyReader interface {
	ReadKey() (terminal.KeyEvent, error)
}

// State is the main loop state
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Mode is the input mode of a session
type Mode int

const (
	ModeNormal Mode = iota
	ModeTextEntry
)

// CommunicationError is a device call that failed mid-session. Every failure
// is treated the same way: the session ends.
type CommunicationError struct {
	Addr   ecp.Address
	Action Action
	Err    error
}

// Error implements the error interface
func (e *CommunicationError) Error() string {
	return fmt.Sprintf("Unable to communicate with roku at %s", e.Addr)
}

// Unwrap returns the underlying device error
func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// Loop is the main input loop of a session
type Loop struct {
	session *Session
	keys    KeyReader
	out     io.Writer
}

// NewLoop creates the input loop for s, reading keys from keys and echoing
// text entry to out
func NewLoop(s *Session, keys KeyReader, out io.Writer) *Loop {
	return &Loop{
		session: s,
		keys:    keys,
		out:     out,
	}
}

// isQuit reports whether ev ends the session
func isQuit(ev terminal.KeyEvent) bool {
	switch {
	case ev == terminal.Literal('q'), ev == terminal.Literal('Q'):
		return true
	case ev.Sym == terminal.SymInterrupt, ev.Sym == terminal.SymEOF:
		return true
	default:
		return false
	}
}

// Step handles one key event in the Running state. It returns
// StateTerminated with a nil error for a quit key, and StateTerminated with
// an error when the device could not be reached.
func (l *Loop) Step(ctx context.Context, ev terminal.KeyEvent) (State, error) {
	if ev.IsZero() {
		return StateRunning, nil
	}

	if isQuit(ev) {
		logging.Debug("Quit key pressed", zap.String("key", ev.String()))
		return StateTerminated, nil
	}

	action, ok := l.session.Commands.Lookup(ev)
	if !ok {
		return StateRunning, nil
	}

	logging.LogKeypress(ev.String(), action.String())

	var err error
	if action == ActionTextEntry {
		l.session.mode = ModeTextEntry
		err = RunTextEntry(ctx, l.keys, l.session.Remote, l.out)
		l.session.mode = ModeNormal
	} else {
		err = Perform(ctx, l.session.Remote, action)
	}

	switch {
	case err == nil:
		return StateRunning, nil
	case errors.Is(err, errKeyboard) && errors.Is(err, io.EOF):
		// Input closed during text entry
		return StateTerminated, nil
	default:
		return StateTerminated, l.fail(action, err)
	}
}

// fail wraps a device error; keyboard errors pass through untouched
func (l *Loop) fail(action Action, err error) error {
	if errors.Is(err, errKeyboard) {
		return err
	}
	logging.Error("Device call failed",
		zap.String("action", action.String()),
		zap.String("device", l.session.Addr.String()),
		zap.Error(err),
	)
	return &CommunicationError{Addr: l.session.Addr, Action: action, Err: err}
}

// Run reads keys until the session terminates. The returned error is nil
// for a user quit.
func (l *Loop) Run(ctx context.Context) error {
	for {
		ev, err := l.keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Input closed: nothing more can be sent
				return nil
			}
			return fmt.Errorf("%w: %w", errKeyboard, err)
		}

		state, err := l.Step(ctx, ev)
		if state == StateTerminated {
			return err
		}
	}
}
