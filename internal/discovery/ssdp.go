package discovery

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/ipv4"

	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/logging"
)

const (
	// SSDPGroupAddr is the SSDP multicast group and port
	SSDPGroupAddr = "239.255.255.250:1900"

	// RokuSearchTarget is the ST every Roku answers
	RokuSearchTarget = "roku:ecp"

	// DefaultSearchMX is the MX value sent in M-SEARCH (seconds devices may wait before answering)
	DefaultSearchMX = 2

	// DefaultResendInterval is how often the M-SEARCH is repeated while browsing
	DefaultResendInterval = time.Second

	// usnPrefix precedes the serial number in a Roku USN header
	usnPrefix = "uuid:roku:ecp:"

	maxDatagramSize = 2048
)

// SSDPFinder discovers devices with SSDP M-SEARCH requests
type SSDPFinder struct {
	// GroupAddr is the multicast destination (default SSDPGroupAddr)
	GroupAddr string

	// SearchTarget is the ST header value (default RokuSearchTarget)
	SearchTarget string

	// MX is the maximum response delay requested from devices
	MX int

	// ResendInterval controls how often the request is repeated; UDP is lossy
	ResendInterval time.Duration
}

// NewSSDPFinder creates an SSDP finder with default settings
func NewSSDPFinder() *SSDPFinder {
	return &SSDPFinder{
		GroupAddr:      SSDPGroupAddr,
		SearchTarget:   RokuSearchTarget,
		MX:             DefaultSearchMX,
		ResendInterval: DefaultResendInterval,
	}
}

// Name implements Finder
func (f *SSDPFinder) Name() string {
	return SourceSSDP
}

// Browse sends M-SEARCH requests and reports every matching response until
// ctx is done
func (f *SSDPFinder) Browse(ctx context.Context, found chan<- *Device) error {
	dst, err := net.ResolveUDPAddr("udp4", f.GroupAddr)
	if err != nil {
		return fmt.Errorf("failed to resolve SSDP group address: %w", err)
	}

	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return fmt.Errorf("failed to open SSDP socket: %w", err)
	}
	defer func() { _ = conn.Close() }()

	pc := ipv4.NewPacketConn(conn)
	// Stay on the local segment; loopback lets a responder on this host answer
	if err := pc.SetMulticastTTL(2); err != nil {
		logging.Warn("Failed to set SSDP multicast TTL", zap.Error(err))
	}
	_ = pc.SetMulticastLoopback(true)

	request := BuildSearchRequest(f.GroupAddr, f.SearchTarget, f.MX)

	// Unblock ReadFrom when the context ends
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
	})
	defer stop()

	go f.resend(ctx, pc, request, dst)

	buf := make([]byte, maxDatagramSize)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read SSDP response: %w", err)
		}

		device, err := ParseSearchResponse(buf[:n], f.SearchTarget)
		if err != nil {
			logging.Debug("Ignoring SSDP response", zap.Error(err), zap.String("from", from.String()))
			continue
		}

		logging.LogDiscovery(SourceSSDP, device.Host, device.Port, device.Location)

		select {
		case found <- device:
		case <-ctx.Done():
			return nil
		}
	}
}

// resend writes the request immediately and then every ResendInterval
func (f *SSDPFinder) resend(ctx context.Context, pc *ipv4.PacketConn, request []byte, dst net.Addr) {
	interval := f.ResendInterval
	if interval <= 0 {
		interval = DefaultResendInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := pc.WriteTo(request, nil, dst); err != nil {
			logging.Warn("Failed to send SSDP M-SEARCH", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// BuildSearchRequest returns an SSDP M-SEARCH datagram
func BuildSearchRequest(groupAddr, searchTarget string, mx int) []byte {
	var b strings.Builder
	b.WriteString("M-SEARCH * HTTP/1.1\r\n")
	b.WriteString("HOST: " + groupAddr + "\r\n")
	b.WriteString("MAN: \"ssdp:discover\"\r\n")
	b.WriteString("ST: " + searchTarget + "\r\n")
	b.WriteString("MX: " + strconv.Itoa(mx) + "\r\n")
	b.WriteString("\r\n")
	return []byte(b.String())
}

// ParseSearchResponse parses an SSDP response datagram. Responses for other
// search targets, or without a usable LOCATION, are rejected.
func ParseSearchResponse(data []byte, searchTarget string) (*Device, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(data)), nil)
	if err != nil {
		return nil, fmt.Errorf("malformed SSDP response: %w", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected SSDP status %d", resp.StatusCode)
	}

	st := resp.Header.Get("St")
	if !strings.EqualFold(st, searchTarget) {
		return nil, fmt.Errorf("foreign search target %q", st)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return nil, fmt.Errorf("SSDP response has no LOCATION header")
	}
	u, err := url.Parse(location)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("invalid LOCATION %q", location)
	}

	port := ecp.DefaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid port in LOCATION %q", location)
		}
	}

	metadata := make(map[string]string, len(resp.Header))
	for key := range resp.Header {
		metadata[strings.ToLower(key)] = resp.Header.Get(key)
	}

	usn := resp.Header.Get("Usn")
	serial := ""
	if strings.HasPrefix(strings.ToLower(usn), usnPrefix) {
		serial = usn[len(usnPrefix):]
	}

	return &Device{
		Host:         u.Hostname(),
		Port:         port,
		Serial:       serial,
		Location:     location,
		Source:       SourceSSDP,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}, nil
}
