// Package logging provides structured logging for the Roku remote.
//
// This package wraps a zap logger with convenience functions for the few
// events worth tracing in an interactive remote: discovery responses, ECP
// requests and the keystrokes that triggered them.
//
// # Log Levels
//
//   - Debug: Every keystroke, request and discovery response
//   - Info: Session start and device selection
//   - Warn: Discovery finder failures
//   - Error: Device calls that end the session
//
// # Configuration
//
// Logging is silent unless a level is passed on the command line:
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs are written to stderr in console format so they never mix with the
// help banner on stdout. Redirect stderr to a file to trace a session:
//
//	roku --log-level debug 192.168.1.134 2>roku.log
package logging
