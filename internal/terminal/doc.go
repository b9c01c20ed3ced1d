// Package terminal turns raw keyboard bytes into key events.
//
// The remote control reads the keyboard one keystroke at a time. This package
// owns the two pieces that make that possible:
//   - Raw switches the controlling terminal into raw mode (and back) using
//     golang.org/x/term.
//   - Reader decodes the byte stream into KeyEvent values: printable
//     characters become Literal events, control keys and ANSI escape
//     sequences become Named events.
//
// # Usage Example
//
//	raw, err := terminal.EnterRaw(os.Stdin)
//	if err != nil {
//	    return err
//	}
//	defer raw.Restore()
//
//	keys := terminal.NewReader(os.Stdin)
//	for {
//	    ev, err := keys.ReadKey()
//	    if err != nil {
//	        return err
//	    }
//	    if ev == terminal.Literal('q') {
//	        return nil
//	    }
//	}
//
// # Escape Key Handling
//
// A lone ESC byte and the first byte of an arrow-key sequence are the same
// byte. The decoder assumes a whole escape sequence arrives in a single read,
// so a read that contains only 0x1b is reported as the Escape key.
package terminal
