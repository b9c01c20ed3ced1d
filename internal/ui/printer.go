package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/rokucli/internal/discovery"
	"github.com/muurk/rokucli/internal/ecp"
)

// Printer provides methods for printing UI components to a writer
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintDeviceLine prints the one-line device summary shown at session start
func (p *Printer) PrintDeviceLine(info *ecp.DeviceInfo) {
	p.Println(DeviceLineStyle.Render(info.String()))
}

// PrintHelp prints a key table. The table is written unstyled so its
// columns stay aligned.
func (p *Printer) PrintHelp(help string) {
	p.Println(help)
}

// PrintFatal prints the single line shown when the session aborts
func (p *Printer) PrintFatal(message string) {
	p.Println(ErrorLineStyle.Render(message))
}

// PrintDevices prints the result of a scan
func (p *Printer) PrintDevices(devices []*discovery.Device) {
	p.Print(RenderDeviceList(devices))
}

// PrintDeviceInfo prints device details in a bordered box
func (p *Printer) PrintDeviceInfo(addr ecp.Address, info *ecp.DeviceInfo) {
	p.Println(RenderDeviceInfo(addr, info, p.width))
}
