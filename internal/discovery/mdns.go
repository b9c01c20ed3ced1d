package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/logging"
)

const (
	// ServiceType is the mDNS service type browsed for Roku devices.
	// AirPlay-capable Rokus advertise "_airplay._tcp" with manufacturer=Roku.
	ServiceType = "_airplay._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	rokuMarker = "roku"
)

// MDNSFinder discovers devices with a zeroconf browse
type MDNSFinder struct {
	// Service is the service type to browse (default ServiceType)
	Service string

	// Domain is the mDNS domain (default ServiceDomain)
	Domain string
}

// NewMDNSFinder creates an mDNS finder with default settings
func NewMDNSFinder() *MDNSFinder {
	return &MDNSFinder{
		Service: ServiceType,
		Domain:  ServiceDomain,
	}
}

// Name implements Finder
func (f *MDNSFinder) Name() string {
	return SourceMDNS
}

// Browse reports every Roku service entry until ctx is done
func (f *MDNSFinder) Browse(ctx context.Context, found chan<- *Device) error {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)

	go func() {
		for entry := range entries {
			device := parseServiceEntry(entry)
			if device == nil {
				continue
			}
			logging.LogDiscovery(SourceMDNS, device.Host, device.Port, device.Name)
			select {
			case found <- device:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, f.Service, f.Domain, entries); err != nil {
		return fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()
	return nil
}

// parseServiceEntry converts a zeroconf service entry to a Device.
// Returns nil if the entry is not a Roku.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Device {
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}

	if !isRoku(entry.Instance, metadata) {
		return nil
	}

	// Prefer IPv4
	var host string
	switch {
	case len(entry.AddrIPv4) > 0:
		host = entry.AddrIPv4[0].String()
	case len(entry.AddrIPv6) > 0:
		host = entry.AddrIPv6[0].String()
	default:
		return nil
	}

	// The AirPlay port is not the ECP port; ECP always listens on 8060
	return &Device{
		Host:         host,
		Port:         ecp.DefaultPort,
		Serial:       metadata["serialNumber"],
		Name:         entry.Instance,
		Source:       SourceMDNS,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

func isRoku(instance string, metadata map[string]string) bool {
	for _, value := range []string{metadata["manufacturer"], metadata["model"], instance} {
		if strings.Contains(strings.ToLower(value), rokuMarker) {
			return true
		}
	}
	return false
}
