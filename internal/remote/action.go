package remote

import (
	"context"
	"fmt"

	"github.com/muurk/rokucli/internal/ecp"
)

// Remote is the device capability the loop drives. *ecp.Client implements it.
type Remote interface {
	Keypress(ctx context.Context, key ecp.Key) error
	Literal(ctx context.Context, r rune) error
}

// Action is a remote-control command bound to a key
type Action int

const (
	ActionNone Action = iota
	ActionBack
	ActionHome
	ActionLeft
	ActionDown
	ActionUp
	ActionRight
	ActionSelect
	ActionReplay
	ActionInfo
	ActionRewind
	ActionFastForward
	ActionPlayPause
	ActionTextEntry
	ActionPower
	ActionVolumeUp
	ActionVolumeDown
	ActionVolumeMute
)

var actionKeys = map[Action]ecp.Key{
	ActionBack:        ecp.KeyBack,
	ActionHome:        ecp.KeyHome,
	ActionLeft:        ecp.KeyLeft,
	ActionDown:        ecp.KeyDown,
	ActionUp:          ecp.KeyUp,
	ActionRight:       ecp.KeyRight,
	ActionSelect:      ecp.KeySelect,
	ActionReplay:      ecp.KeyInstantReplay,
	ActionInfo:        ecp.KeyInfo,
	ActionRewind:      ecp.KeyRev,
	ActionFastForward: ecp.KeyFwd,
	ActionPlayPause:   ecp.KeyPlay,
	ActionPower:       ecp.KeyPowerToggle,
	ActionVolumeUp:    ecp.KeyVolumeUp,
	ActionVolumeDown:  ecp.KeyVolumeDown,
	ActionVolumeMute:  ecp.KeyVolumeMute,
}

// String returns a human-readable name for the action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionBack:
		return "Back"
	case ActionHome:
		return "Home"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionReplay:
		return "Replay"
	case ActionInfo:
		return "Info"
	case ActionRewind:
		return "Rewind"
	case ActionFastForward:
		return "FastForward"
	case ActionPlayPause:
		return "PlayPause"
	case ActionTextEntry:
		return "TextEntry"
	case ActionPower:
		return "Power"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	case ActionVolumeMute:
		return "VolumeMute"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Key returns the ECP key the action sends. ActionNone and ActionTextEntry
// have no key.
func (a Action) Key() (ecp.Key, bool) {
	key, ok := actionKeys[a]
	return key, ok
}

// Perform sends the action to the device. Success means the device accepted
// the request; the response body is discarded.
func Perform(ctx context.Context, r Remote, a Action) error {
	key, ok := a.Key()
	if !ok {
		return fmt.Errorf("action %s does not map to a device key", a)
	}
	return r.Keypress(ctx, key)
}
