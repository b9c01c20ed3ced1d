package discovery

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeFinder reports a fixed list of devices after an optional delay, then
// waits for the context
type fakeFinder struct {
	name    string
	delay   time.Duration
	devices []*Device
	err     error
}

func (f *fakeFinder) Name() string { return f.name }

func (f *fakeFinder) Browse(ctx context.Context, found chan<- *Device) error {
	if f.err != nil {
		return f.err
	}
	select {
	case <-time.After(f.delay):
	case <-ctx.Done():
		return nil
	}
	for _, d := range f.devices {
		select {
		case found <- d:
		case <-ctx.Done():
			return nil
		}
	}
	<-ctx.Done()
	return nil
}

func TestDiscoverer_First(t *testing.T) {
	d := &Discoverer{
		Finders: []Finder{
			&fakeFinder{name: "slow", delay: time.Second, devices: []*Device{{Host: "10.0.0.2", Port: 8060}}},
			&fakeFinder{name: "fast", delay: 10 * time.Millisecond, devices: []*Device{{Host: "10.0.0.1", Port: 8060}}},
		},
		Timeout: 3 * time.Second,
	}

	device, err := d.First(context.Background())
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if device.Host != "10.0.0.1" {
		t.Errorf("First() host = %s, want the fastest responder 10.0.0.1", device.Host)
	}
}

func TestDiscoverer_First_Timeout(t *testing.T) {
	d := &Discoverer{
		Finders: []Finder{&fakeFinder{name: "silent", delay: time.Hour}},
		Timeout: 50 * time.Millisecond,
	}

	start := time.Now()
	_, err := d.First(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("First() error = %v, want ErrNotFound", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("First() took %v, timeout not honoured", elapsed)
	}
}

func TestDiscoverer_First_AllFindersFail(t *testing.T) {
	boom := errors.New("no multicast route")
	d := &Discoverer{
		Finders: []Finder{
			&fakeFinder{name: "a", err: boom},
			&fakeFinder{name: "b", err: errors.New("resolver failed")},
		},
		Timeout: 5 * time.Second,
	}

	start := time.Now()
	_, err := d.First(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("First() error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("First() error = %v, want finder error included", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("First() waited %v although every finder had failed", elapsed)
	}
}

func TestDiscoverer_All(t *testing.T) {
	d := &Discoverer{
		Finders: []Finder{
			&fakeFinder{name: "ssdp", devices: []*Device{
				{Host: "10.0.0.1", Port: 8060, Source: SourceSSDP},
				{Host: "10.0.0.2", Port: 8060, Source: SourceSSDP},
			}},
			&fakeFinder{name: "mdns", delay: 10 * time.Millisecond, devices: []*Device{
				{Host: "10.0.0.1", Port: 8060, Source: SourceMDNS},
			}},
		},
		Timeout: 200 * time.Millisecond,
	}

	devices, err := d.All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("All() returned %d devices, want 2 (de-duplicated)", len(devices))
	}

	hosts := map[string]bool{}
	for _, dev := range devices {
		hosts[dev.Host] = true
	}
	if !hosts["10.0.0.1"] || !hosts["10.0.0.2"] {
		t.Errorf("All() hosts = %v", hosts)
	}
}

func TestDiscoverer_All_Empty(t *testing.T) {
	d := &Discoverer{
		Finders: []Finder{&fakeFinder{name: "silent", delay: time.Hour}},
		Timeout: 50 * time.Millisecond,
	}

	devices, err := d.All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("All() = %v, want empty", devices)
	}
}

func TestDiscoverer_All_AllFindersFail(t *testing.T) {
	d := &Discoverer{
		Finders: []Finder{&fakeFinder{name: "a", err: errors.New("socket")}},
		Timeout: time.Second,
	}

	if _, err := d.All(context.Background()); err == nil {
		t.Error("All() should fail when every finder fails")
	}
}

func TestNewDiscoverer(t *testing.T) {
	d := NewDiscoverer(0)
	if d.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", d.Timeout, DefaultTimeout)
	}
	if len(d.Finders) != 2 {
		t.Fatalf("got %d finders, want 2", len(d.Finders))
	}
	if d.Finders[0].Name() != SourceSSDP || d.Finders[1].Name() != SourceMDNS {
		t.Errorf("finder order = %s, %s", d.Finders[0].Name(), d.Finders[1].Name())
	}
}
