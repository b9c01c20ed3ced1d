package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/rokucli/internal/discovery"
	"github.com/muurk/rokucli/internal/ecp"
)

// detail is one key/value row in a listing
type detail struct {
	key   string
	value string
}

func renderDetails(details []detail, indent string) string {
	var lines []string
	for _, d := range details {
		if d.value == "" {
			continue
		}
		lines = append(lines, indent+KeyStyle.Render(d.key+":")+" "+ValueStyle.Render(d.value))
	}
	return strings.Join(lines, "\n")
}

// RenderDeviceList renders the devices found by a scan, or a nothing-found
// message with troubleshooting hints
func RenderDeviceList(devices []*discovery.Device) string {
	var b strings.Builder

	if len(devices) == 0 {
		b.WriteString(WarningStyle.Render("No Roku device found on the local network"))
		b.WriteString("\n\nTroubleshooting:\n")
		b.WriteString("  • Ensure the device is powered on and on the same network\n")
		b.WriteString("  • Check that \"Control by mobile apps\" is enabled on the device\n")
		b.WriteString("  • Try increasing --timeout for slower networks\n")
		b.WriteString("  • Pass the device address directly: roku <ipaddr>\n")
		return b.String()
	}

	b.WriteString(FoundStyle.Render(fmt.Sprintf("Found %d device(s):", len(devices))))
	b.WriteString("\n\n")

	for i, device := range devices {
		name := device.Name
		if name == "" {
			name = "Roku"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, TitleStyle.Render(name))
		b.WriteString(renderDetails([]detail{
			{"Address", device.Address().String()},
			{"Serial", device.Serial},
			{"Source", device.Source},
			{"Location", device.Location},
		}, "   "))
		b.WriteString("\n\n")
	}

	b.WriteString(SubtitleStyle.Render("Use 'roku <ipaddr>' to control a device"))
	b.WriteString("\n")

	return b.String()
}

// RenderDeviceInfo renders device details in a bordered box
func RenderDeviceInfo(addr ecp.Address, info *ecp.DeviceInfo, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	title := TitleStyle.Render(info.Name())
	divider := RenderHorizontalDivider(width-6, "─")

	body := renderDetails([]detail{
		{"Address", addr.String()},
		{"Type", info.Type()},
		{"Vendor", info.VendorName},
		{"Model", strings.TrimSpace(info.ModelName + " " + info.ModelNumber)},
		{"Serial", info.SerialNumber},
		{"Device ID", info.DeviceID},
		{"Software", strings.TrimSpace(info.SoftwareVersion + " " + buildSuffix(info.SoftwareBuild))},
		{"Power", info.PowerMode},
		{"TV", strconv.FormatBool(info.IsTV())},
	}, "")

	content := lipgloss.JoinVertical(lipgloss.Left, title, divider, body)
	return BoxStyle(width).Render(content)
}

func buildSuffix(build string) string {
	if build == "" {
		return ""
	}
	return "build " + build
}
