// Package remote is the interactive half of the Roku remote: it turns key
// events into device commands.
//
// # Components
//
//   - CommandMap: the key bindings, built once per session from the device
//     class (TVs add power and volume keys).
//   - Loop: the main input loop. Each key is looked up in the CommandMap and
//     the bound Action is performed synchronously before the next key is read.
//   - Text entry: a nested loop, entered with "/", that relays typed
//     characters one at a time and echoes them locally.
//   - Bootstrap: resolves the device address (explicit or discovered),
//     fetches its device-info and builds the Session.
//
// # States
//
//	Running --"/"--> TextEntry --Enter/Esc--> Running
//	Running --q/Q/Ctrl-C/Ctrl-D--> Terminated (nil error, exit 0)
//	Running --action fails--> Terminated (*CommunicationError, exit 1)
//
// Device calls are never retried.
package remote
