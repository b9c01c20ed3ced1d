package ecp

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// DefaultPort is the ECP HTTP port
const DefaultPort = 8060

// Address identifies a Roku device on the network
type Address struct {
	Host string
	Port int
}

// ParseAddress accepts "host" or "host:port". A missing port means
// defaultPort.
func ParseAddress(s string, defaultPort int) (Address, error) {
	if s == "" {
		return Address{}, fmt.Errorf("empty device address")
	}

	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		// No port component (plain IPv4, hostname or bare IPv6)
		return Address{Host: strings.Trim(s, "[]"), Port: defaultPort}, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Address{}, fmt.Errorf("invalid port %q in device address %q", portStr, s)
	}
	if host == "" {
		return Address{}, fmt.Errorf("missing host in device address %q", s)
	}

	return Address{Host: host, Port: port}, nil
}

// String returns "host:port"
func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// BaseURL returns the HTTP base URL for the device
func (a Address) BaseURL() string {
	return "http://" + a.String()
}
