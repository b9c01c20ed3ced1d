package remote

import (
	"context"
	"fmt"
	"io"

	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/terminal"
)

// fakeRemote records every call it receives. failOn makes the named call
// (e.g. "Keypress:Home" or "Literal:x") return err.
type fakeRemote struct {
	calls   []string
	failOn  string
	err     error
	info    *ecp.DeviceInfo
	infoErr error
}

func (f *fakeRemote) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn != "" && call == f.failOn {
		return f.err
	}
	return nil
}

func (f *fakeRemote) Keypress(ctx context.Context, key ecp.Key) error {
	return f.record(fmt.Sprintf("Keypress:%s", key))
}

func (f *fakeRemote) Literal(ctx context.Context, r rune) error {
	return f.record(fmt.Sprintf("Literal:%c", r))
}

func (f *fakeRemote) DeviceInfo(ctx context.Context) (*ecp.DeviceInfo, error) {
	f.calls = append(f.calls, "DeviceInfo")
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.info, nil
}

// scriptedKeys replays a fixed list of key events, then returns io.EOF
type scriptedKeys struct {
	events []terminal.KeyEvent
	err    error
}

func keys(events ...terminal.KeyEvent) *scriptedKeys {
	return &scriptedKeys{events: events}
}

func (s *scriptedKeys) ReadKey() (terminal.KeyEvent, error) {
	if len(s.events) == 0 {
		if s.err != nil {
			return terminal.KeyEvent{}, s.err
		}
		return terminal.KeyEvent{}, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

// runes turns a string into literal key events
func runes(s string) []terminal.KeyEvent {
	var out []terminal.KeyEvent
	for _, r := range s {
		out = append(out, terminal.Literal(r))
	}
	return out
}

var (
	boxInfo  = &ecp.DeviceInfo{SerialNumber: "YH00AA000000", ModelName: "Roku Ultra", ModelNumber: "4800X"}
	tvInfo   = &ecp.DeviceInfo{SerialNumber: "X004000AAAAA", ModelName: "TCL 55S425", IsTVFlag: true}
	testAddr = ecp.Address{Host: "192.168.1.134", Port: 8060}
)
