package discovery

import (
	"fmt"
	"time"

	"github.com/muurk/rokucli/internal/ecp"
)

// Sources reported in Device.Source
const (
	SourceSSDP = "ssdp"
	SourceMDNS = "mdns"
)

// Device represents a discovered Roku device on the network
type Device struct {
	// Host is the device IP address (e.g., "192.168.1.134")
	Host string

	// Port is the ECP port (normally 8060)
	Port int

	// Serial is the device serial number when the response carries one
	Serial string

	// Name is a display name (mDNS instance name, or empty for SSDP)
	Name string

	// Location is the SSDP LOCATION URL (empty for mDNS)
	Location string

	// Source is the finder that reported the device (SourceSSDP, SourceMDNS)
	Source string

	// Metadata contains raw response headers or TXT records
	Metadata map[string]string

	// DiscoveredAt is when the device was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the device
func (d *Device) String() string {
	name := d.Name
	if name == "" {
		name = "Roku"
	}
	if d.Serial != "" {
		return fmt.Sprintf("%s %s at %s:%d", name, d.Serial, d.Host, d.Port)
	}
	return fmt.Sprintf("%s at %s:%d", name, d.Host, d.Port)
}

// Address returns the ECP address of the device
func (d *Device) Address() ecp.Address {
	return ecp.Address{Host: d.Host, Port: d.Port}
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
