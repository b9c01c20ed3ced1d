package ecp

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Device types reported by Type
const (
	TypeTV    = "TV"
	TypeStick = "Stick"
	TypeBox   = "Box"
)

// DeviceInfo is the subset of /query/device-info the remote uses
type DeviceInfo struct {
	XMLName            xml.Name `xml:"device-info" json:"-" yaml:"-"`
	UDN                string   `xml:"udn" json:"udn" yaml:"udn"`
	SerialNumber       string   `xml:"serial-number" json:"serial_number" yaml:"serial_number"`
	DeviceID           string   `xml:"device-id" json:"device_id" yaml:"device_id"`
	VendorName         string   `xml:"vendor-name" json:"vendor_name" yaml:"vendor_name"`
	ModelName          string   `xml:"model-name" json:"model_name" yaml:"model_name"`
	ModelNumber        string   `xml:"model-number" json:"model_number" yaml:"model_number"`
	FriendlyDeviceName string   `xml:"friendly-device-name" json:"friendly_device_name,omitempty" yaml:"friendly_device_name,omitempty"`
	UserDeviceName     string   `xml:"user-device-name" json:"user_device_name,omitempty" yaml:"user_device_name,omitempty"`
	SoftwareVersion    string   `xml:"software-version" json:"software_version" yaml:"software_version"`
	SoftwareBuild      string   `xml:"software-build" json:"software_build" yaml:"software_build"`
	PowerMode          string   `xml:"power-mode" json:"power_mode,omitempty" yaml:"power_mode,omitempty"`
	IsTVFlag           bool     `xml:"is-tv" json:"is_tv" yaml:"is_tv"`
	IsStickFlag        bool     `xml:"is-stick" json:"is_stick" yaml:"is_stick"`
}

// ParseDeviceInfo decodes a /query/device-info response body
func ParseDeviceInfo(body []byte) (*DeviceInfo, error) {
	var info DeviceInfo
	if err := xml.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	if info.SerialNumber == "" && info.ModelName == "" && info.UDN == "" {
		return nil, fmt.Errorf("device-info response has no device fields")
	}
	return &info, nil
}

// IsTV reports whether the device is a Roku TV (volume and power keys work)
func (d *DeviceInfo) IsTV() bool {
	return d.IsTVFlag
}

// Type returns TypeTV, TypeStick or TypeBox
func (d *DeviceInfo) Type() string {
	switch {
	case d.IsTVFlag:
		return TypeTV
	case d.IsStickFlag:
		return TypeStick
	default:
		return TypeBox
	}
}

// Name returns the most descriptive name the device reports
func (d *DeviceInfo) Name() string {
	for _, name := range []string{d.UserDeviceName, d.FriendlyDeviceName, d.ModelName} {
		if name != "" {
			return name
		}
	}
	return "Roku"
}

// String returns the one-line summary printed when a session starts
func (d *DeviceInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Type(), d.Name())
	if d.ModelNumber != "" {
		fmt.Fprintf(&b, " (%s)", d.ModelNumber)
	}
	if d.SoftwareVersion != "" {
		fmt.Fprintf(&b, ", software %s", d.SoftwareVersion)
		if d.SoftwareBuild != "" {
			fmt.Fprintf(&b, " build %s", d.SoftwareBuild)
		}
	}
	if d.SerialNumber != "" {
		fmt.Fprintf(&b, ", serial %s", d.SerialNumber)
	}
	return b.String()
}
