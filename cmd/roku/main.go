// Roku is an interactive terminal remote control for Roku devices.
//
// It finds a Roku on the local network (or uses the address given on the
// command line), prints the device and a key table, then relays single
// keystrokes to the device over the External Control Protocol until q is
// pressed.
//
// Usage:
//
//	roku [ipaddr] [flags]
//
// See 'roku --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/rokucli/internal/discovery"
	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/logging"
	"github.com/muurk/rokucli/internal/remote"
	"github.com/muurk/rokucli/internal/terminal"
	"github.com/muurk/rokucli/internal/ui"
	"github.com/muurk/rokucli/internal/version"
)

// errReported means the failure was already printed; main only sets the
// exit status
var errReported = errors.New("error already reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	port            int
	discoverTimeout time.Duration
	requestTimeout  time.Duration
	logLevel        string
)

var rootCmd = &cobra.Command{
	Use:   "roku [ipaddr]",
	Short: "Interactive command-line control of Roku devices",
	Long: `Control a Roku device from the terminal.

Without an address the first Roku that answers on the local network is
used. Once connected, single keystrokes are sent to the device; press / to
type text into search boxes and q to exit.`,
	Example: `  # Find a Roku on the network and control it
  roku

  # Control a specific device
  roku 192.168.1.134

  # Show what is happening on the wire
  roku 192.168.1.134 --log-level debug 2> roku.log`,
	Version:       version.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: runRemote,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().IntVar(&port, "port", ecp.DefaultPort, "ECP port used when the address has none")
	rootCmd.PersistentFlags().DurationVar(&discoverTimeout, "discover-timeout", discovery.DefaultTimeout, "How long to search the network for a device")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "request-timeout", 0, "Timeout for each device request (0 = none)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level written to stderr (debug, info, warn, error); silent when empty")

	rootCmd.AddCommand(versionCmd)
}

// sessionOptions builds bootstrap options from flags and an optional address
// argument
func sessionOptions(args []string) remote.Options {
	opts := remote.Options{
		Port:            port,
		DiscoverTimeout: discoverTimeout,
		RequestTimeout:  requestTimeout,
	}
	if len(args) > 0 {
		opts.Address = args[0]
	}
	return opts
}

// reportFatal prints the one-line message for err and returns errReported
func reportFatal(p *ui.Printer, err error) error {
	logging.Debug("Fatal error", zap.Error(err))
	p.PrintFatal(remote.FatalMessage(err))
	return errReported
}

func runRemote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	printer := ui.NewPrinter(cmd.OutOrStdout())

	session, err := remote.Bootstrap(ctx, sessionOptions(args))
	if err != nil {
		return reportFatal(printer, err)
	}

	printer.PrintDeviceLine(session.Info)
	printer.PrintHelp(remote.Help(session.IsTV()))

	raw, err := terminal.EnterRaw(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to set up terminal: %w", err)
	}
	defer func() { _ = raw.Restore() }()

	loop := remote.NewLoop(session, terminal.NewReader(os.Stdin), cmd.OutOrStdout())
	if err := loop.Run(ctx); err != nil {
		// Restore before printing so the message lands on a sane terminal
		_ = raw.Restore()
		return reportFatal(printer, err)
	}

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "roku %s\n", version.Full())
	},
}
