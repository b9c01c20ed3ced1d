package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/rokucli/internal/discovery"
)

// ErrScanCancelled is returned by RunScan when the user quits the scan screen
var ErrScanCancelled = errors.New("scan cancelled")

// ScanFunc performs the discovery behind the scan screen
type ScanFunc func(ctx context.Context) ([]*discovery.Device, error)

// Messages for async operations
type scanStartMsg struct{}
type scanCompleteMsg struct {
	devices []*discovery.Device
	err     error
}

// ScanModel is the scan screen: a spinner and progress bar shown while
// discovery runs. It quits as soon as the scan completes.
type ScanModel struct {
	Scanning  bool
	Cancelled bool
	Devices   []*discovery.Device
	Err       error

	Timeout       time.Duration
	ScanStartTime time.Time
	Spinner       spinner.Model
	ProgressBar   progress.Model
	Width         int

	scan tea.Cmd
}

// NewScanModel creates a scan screen that runs scan with ctx
func NewScanModel(ctx context.Context, timeout time.Duration, scan ScanFunc) ScanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.Width = 40

	return ScanModel{
		Timeout:     timeout,
		Spinner:     s,
		ProgressBar: progressBar,
		scan: func() tea.Msg {
			devices, err := scan(ctx)
			return scanCompleteMsg{devices: devices, err: err}
		},
	}
}

// Init starts scanning immediately
func (m ScanModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return scanStartMsg{} },
		m.scan,
		m.Spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Cancelled = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case scanStartMsg:
		m.Scanning = true
		m.ScanStartTime = time.Now()

	case scanCompleteMsg:
		m.Scanning = false
		m.Devices = msg.devices
		m.Err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// progressFraction is the share of the timeout used so far, capped at 1
func (m ScanModel) progressFraction(now time.Time) float64 {
	if m.Timeout <= 0 || m.ScanStartTime.IsZero() {
		return 0
	}
	f := float64(now.Sub(m.ScanStartTime)) / float64(m.Timeout)
	if f > 1 {
		return 1
	}
	return f
}

// View renders the scan screen. It is empty once the scan is over so the
// final frame does not linger above the results.
func (m ScanModel) View() string {
	if !m.Scanning {
		return ""
	}

	width := m.Width
	if width == 0 {
		width = MinTerminalWidth
	}

	elapsed := time.Since(m.ScanStartTime).Round(time.Second)
	content := lipgloss.JoinVertical(lipgloss.Left,
		"",
		TitleStyle.Render(fmt.Sprintf("%s Searching for Roku devices", m.Spinner.View())),
		SubtitleStyle.Render("Sending SSDP and mDNS queries on the local network..."),
		"",
		m.ProgressBar.ViewAs(m.progressFraction(time.Now())),
		SubtitleStyle.Render(fmt.Sprintf("Elapsed: %s  (q to cancel)", elapsed)),
		"",
	)

	return lipgloss.NewStyle().MaxWidth(width).Render(content)
}

// RunScan shows the scan screen on out while scan runs and returns what it
// found
func RunScan(ctx context.Context, timeout time.Duration, scan ScanFunc, out io.Writer) ([]*discovery.Device, error) {
	model := NewScanModel(ctx, timeout, scan)
	p := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("scan screen error: %w", err)
	}

	m, ok := final.(ScanModel)
	if !ok {
		return nil, fmt.Errorf("unexpected scan model %T", final)
	}
	if m.Cancelled {
		return nil, ErrScanCancelled
	}

	return m.Devices, m.Err
}
