package discovery

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"
)

const rokuSearchResponse = "HTTP/1.1 200 OK\r\n" +
	"Cache-Control: max-age=3600\r\n" +
	"ST: roku:ecp\r\n" +
	"Location: http://192.168.1.134:8060/\r\n" +
	"USN: uuid:roku:ecp:YH00AA000000\r\n" +
	"Ext: \r\n" +
	"Server: Roku/12.0.0 UPnP/1.0 Roku/12.0.0\r\n" +
	"\r\n"

func TestBuildSearchRequest(t *testing.T) {
	req := string(BuildSearchRequest(SSDPGroupAddr, RokuSearchTarget, 2))

	for _, line := range []string{
		"M-SEARCH * HTTP/1.1\r\n",
		"HOST: 239.255.255.250:1900\r\n",
		"MAN: \"ssdp:discover\"\r\n",
		"ST: roku:ecp\r\n",
		"MX: 2\r\n",
	} {
		if !strings.Contains(req, line) {
			t.Errorf("request missing %q:\n%s", line, req)
		}
	}
	if !strings.HasSuffix(req, "\r\n\r\n") {
		t.Error("request must end with an empty line")
	}
}

func TestParseSearchResponse(t *testing.T) {
	device, err := ParseSearchResponse([]byte(rokuSearchResponse), RokuSearchTarget)
	if err != nil {
		t.Fatalf("ParseSearchResponse() error = %v", err)
	}

	if device.Host != "192.168.1.134" {
		t.Errorf("Host = %s, want 192.168.1.134", device.Host)
	}
	if device.Port != 8060 {
		t.Errorf("Port = %d, want 8060", device.Port)
	}
	if device.Serial != "YH00AA000000" {
		t.Errorf("Serial = %s, want YH00AA000000", device.Serial)
	}
	if device.Source != SourceSSDP {
		t.Errorf("Source = %s, want %s", device.Source, SourceSSDP)
	}
	if device.GetMetadata("server") != "Roku/12.0.0 UPnP/1.0 Roku/12.0.0" {
		t.Errorf("server metadata = %q", device.GetMetadata("server"))
	}
	if time.Since(device.DiscoveredAt) > time.Second {
		t.Errorf("DiscoveredAt is not recent: %v", device.DiscoveredAt)
	}
}

func TestParseSearchResponse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not http",
			data: "garbage",
		},
		{
			name: "foreign search target",
			data: "HTTP/1.1 200 OK\r\nST: urn:dial-multiscreen-org:service:dial:1\r\nLocation: http://192.168.1.20:8008/\r\n\r\n",
		},
		{
			name: "missing location",
			data: "HTTP/1.1 200 OK\r\nST: roku:ecp\r\n\r\n",
		},
		{
			name: "bad port",
			data: "HTTP/1.1 200 OK\r\nST: roku:ecp\r\nLocation: http://192.168.1.134:ecp/\r\n\r\n",
		},
		{
			name: "error status",
			data: "HTTP/1.1 500 Internal Server Error\r\nST: roku:ecp\r\nLocation: http://192.168.1.134:8060/\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSearchResponse([]byte(tt.data), RokuSearchTarget); err == nil {
				t.Error("ParseSearchResponse() should fail")
			}
		})
	}
}

func TestParseSearchResponse_DefaultPort(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nST: roku:ecp\r\nLocation: http://192.168.1.134/\r\n\r\n"
	device, err := ParseSearchResponse([]byte(data), RokuSearchTarget)
	if err != nil {
		t.Fatalf("ParseSearchResponse() error = %v", err)
	}
	if device.Port != 8060 {
		t.Errorf("Port = %d, want 8060", device.Port)
	}
}

// TestSSDPFinder_Browse runs the finder against a unicast responder on
// loopback standing in for the multicast group
func TestSSDPFinder_Browse(t *testing.T) {
	responder, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer responder.Close()

	go func() {
		buf := make([]byte, 2048)
		for {
			n, from, err := responder.ReadFrom(buf)
			if err != nil {
				return
			}
			if !strings.HasPrefix(string(buf[:n]), "M-SEARCH") {
				continue
			}
			_, _ = responder.WriteTo([]byte(rokuSearchResponse), from)
		}
	}()

	finder := NewSSDPFinder()
	finder.GroupAddr = responder.LocalAddr().String()
	finder.ResendInterval = 100 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	found := make(chan *Device)
	done := make(chan error, 1)
	go func() { done <- finder.Browse(ctx, found) }()

	select {
	case device := <-found:
		if device.Host != "192.168.1.134" {
			t.Errorf("Host = %s, want 192.168.1.134", device.Host)
		}
	case err := <-done:
		t.Fatalf("Browse() returned early: %v", err)
	case <-ctx.Done():
		t.Fatal("no device reported before timeout")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Browse() after cancel error = %v, want nil", err)
	}
}
