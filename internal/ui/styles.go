package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - found devices
	ErrorColor   = lipgloss.Color("#FF5555") // Red - fatal errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - nothing found
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100
)

var (
	// DeviceLineStyle is for the device summary printed at session start
	DeviceLineStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// ErrorLineStyle is for the single fatal error line
	ErrorLineStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// TitleStyle is for scan screen titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// SubtitleStyle is for muted secondary lines
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// SpinnerStyle colors the scan spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// FoundStyle is for the "Found N device(s)" line
	FoundStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// WarningStyle is for the nothing-found line
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// KeyStyle is for detail keys in device listings
	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(12)

	// ValueStyle is for detail values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// BoxStyle returns the rounded border used around device details
func BoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2).
		Padding(0, 1)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	return lipgloss.NewStyle().
		Foreground(MutedColor).
		Render(strings.Repeat(char, width))
}
