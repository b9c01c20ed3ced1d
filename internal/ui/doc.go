// Package ui renders the roku CLI's styled output.
//
// Output follows a "print once" pattern: the device line, help table and
// fatal errors go straight to a writer through a Printer. The only Bubble
// Tea program is the scan screen, which shows a spinner and progress bar
// while discovery runs and exits by itself when it completes.
//
// Styles degrade to plain text when stdout is not a terminal, so the help
// table and error lines are byte-for-byte stable in pipes and tests.
//
// # Logging Integration
//
// zap logging is silent unless --log-level is set and writes to stderr, so
// it never interleaves with anything rendered here.
package ui
