package remote

import "github.com/muurk/rokucli/internal/terminal"

// CommandMap binds key events to actions. It is built once per session and
// never modified.
type CommandMap struct {
	bindings map[terminal.KeyEvent]Action
}

// BuildCommandMap returns the bindings for a device. TV-class devices get
// power and volume keys on top of the base set. No I/O is performed.
func BuildCommandMap(isTV bool) CommandMap {
	bindings := map[terminal.KeyEvent]Action{
		terminal.Literal('B'):              ActionBack,
		terminal.Named(terminal.SymEscape): ActionBack,
		terminal.Literal('H'):              ActionHome,
		terminal.Literal('h'):              ActionLeft,
		terminal.Named(terminal.SymLeft):   ActionLeft,
		terminal.Literal('j'):              ActionDown,
		terminal.Named(terminal.SymDown):   ActionDown,
		terminal.Literal('k'):              ActionUp,
		terminal.Named(terminal.SymUp):     ActionUp,
		terminal.Literal('l'):              ActionRight,
		terminal.Named(terminal.SymRight):  ActionRight,
		terminal.Named(terminal.SymEnter):  ActionSelect,
		terminal.Literal('R'):              ActionReplay,
		terminal.Literal('i'):              ActionInfo,
		terminal.Literal('r'):              ActionRewind,
		terminal.Literal('f'):              ActionFastForward,
		terminal.Literal(' '):              ActionPlayPause,
		terminal.Literal('/'):              ActionTextEntry,
	}

	if isTV {
		bindings[terminal.Literal('p')] = ActionPower
		bindings[terminal.Literal('V')] = ActionVolumeUp
		bindings[terminal.Literal('v')] = ActionVolumeDown
		bindings[terminal.Literal('M')] = ActionVolumeMute
	}

	return CommandMap{bindings: bindings}
}

// Lookup returns the action bound to ev
func (m CommandMap) Lookup(ev terminal.KeyEvent) (Action, bool) {
	a, ok := m.bindings[ev]
	return a, ok
}

// Len returns the number of bindings
func (m CommandMap) Len() int {
	return len(m.bindings)
}

// Bindings returns a copy of the key-to-action table
func (m CommandMap) Bindings() map[terminal.KeyEvent]Action {
	out := make(map[terminal.KeyEvent]Action, len(m.bindings))
	for k, v := range m.bindings {
		out[k] = v
	}
	return out
}

// KeysFor returns every key bound to a
func (m CommandMap) KeysFor(a Action) []terminal.KeyEvent {
	var keys []terminal.KeyEvent
	for k, v := range m.bindings {
		if v == a {
			keys = append(keys, k)
		}
	}
	return keys
}
