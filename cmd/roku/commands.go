package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/muurk/rokucli/internal/discovery"
	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/remote"
	"github.com/muurk/rokucli/internal/ui"
)

// Subcommand flags
var (
	scanTimeout  time.Duration
	outputFormat string
)

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(infoCmd)

	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", discovery.DefaultTimeout, "Scan timeout")
	infoCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json, yaml)")
}

// scanCmd lists every Roku that answers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for Roku devices on the network",
	Long: `Scan for Roku devices using SSDP and mDNS discovery.

Every device that answers before the timeout is listed with its address
and serial number.`,
	Example: `  # Scan for 5 seconds (default)
  roku scan

  # Longer scan for busy networks
  roku scan --timeout 15s`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	printer := ui.NewPrinter(out)

	scan := func(ctx context.Context) ([]*discovery.Device, error) {
		return discovery.Scan(ctx, scanTimeout)
	}

	var devices []*discovery.Device
	var err error
	if isTerminal(out) {
		devices, err = ui.RunScan(ctx, scanTimeout, scan, out)
	} else {
		devices, err = scan(ctx)
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printer.PrintDevices(devices)
	return nil
}

// infoCmd prints what a device reports about itself
var infoCmd = &cobra.Command{
	Use:   "info [ipaddr]",
	Short: "Show device information",
	Long: `Query a Roku for its device information and print it.

Without an address the first Roku found on the network is used.`,
	Example: `  # Show info for the first device found
  roku info

  # JSON output for scripting
  roku info 192.168.1.134 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	printer := ui.NewPrinter(cmd.OutOrStdout())

	opts := sessionOptions(args)
	addr, err := remote.ResolveAddress(ctx, opts)
	if err != nil {
		return reportFatal(printer, err)
	}

	client := ecp.NewClient(addr)
	client.SetTimeout(requestTimeout)

	info, err := client.DeviceInfo(ctx)
	if err != nil {
		return reportFatal(printer, err)
	}

	return writeInfo(printer, cmd.OutOrStdout(), outputFormat, addr, info)
}

// writeInfo renders info in the requested format
func writeInfo(p *ui.Printer, w io.Writer, format string, addr ecp.Address, info *ecp.DeviceInfo) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	case "text":
		p.PrintDeviceInfo(addr, info)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
