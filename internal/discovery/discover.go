package discovery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/rokucli/internal/logging"
)

// DefaultTimeout bounds a discovery run
const DefaultTimeout = 5 * time.Second

// ErrNotFound is returned when no device answers before the timeout
var ErrNotFound = errors.New("no Roku device found on the local network")

// Finder is one discovery mechanism. Browse reports devices on found until
// ctx is done, and returns nil when it stopped because of ctx.
type Finder interface {
	Name() string
	Browse(ctx context.Context, found chan<- *Device) error
}

// Discoverer runs a set of finders under a bounded timeout
type Discoverer struct {
	// Finders are run concurrently
	Finders []Finder

	// Timeout is the maximum time to wait for devices
	Timeout time.Duration
}

// NewDiscoverer creates a discoverer using SSDP and mDNS
func NewDiscoverer(timeout time.Duration) *Discoverer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Discoverer{
		Finders: []Finder{NewSSDPFinder(), NewMDNSFinder()},
		Timeout: timeout,
	}
}

// First returns the first device any finder reports, or ErrNotFound
func (d *Discoverer) First(ctx context.Context) (*Device, error) {
	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	found, finished := d.browse(ctx)

	select {
	case device := <-found:
		cancel()
		logging.Info("Device discovered",
			zap.String("source", device.Source),
			zap.String("address", device.Address().String()),
		)
		return device, nil
	case errs := <-finished:
		// Every finder gave up before the deadline
		if len(errs) > 0 {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, errors.Join(errs...))
		}
		return nil, ErrNotFound
	case <-ctx.Done():
		return nil, ErrNotFound
	}
}

// All waits for the whole timeout and returns every device, de-duplicated
// by host. An empty result is not an error.
func (d *Discoverer) All(ctx context.Context) ([]*Device, error) {
	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	found, finished := d.browse(ctx)

	devices := make([]*Device, 0)
	seen := make(map[string]bool)

	for {
		select {
		case device := <-found:
			if seen[device.Host] {
				continue
			}
			seen[device.Host] = true
			devices = append(devices, device)
		case errs := <-finished:
			if len(devices) == 0 && len(errs) == len(d.Finders) && len(errs) > 0 {
				return nil, fmt.Errorf("discovery failed: %w", errors.Join(errs...))
			}
			return devices, nil
		case <-ctx.Done():
			return devices, nil
		}
	}
}

// browse starts every finder. finished receives the finder errors once all
// finders have returned.
func (d *Discoverer) browse(ctx context.Context) (<-chan *Device, <-chan []error) {
	found := make(chan *Device)
	finished := make(chan []error, 1)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, finder := range d.Finders {
		wg.Add(1)
		go func(f Finder) {
			defer wg.Done()
			if err := f.Browse(ctx, found); err != nil {
				logging.Warn("Discovery finder failed",
					zap.String("finder", f.Name()),
					zap.Error(err),
				)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", f.Name(), err))
				mu.Unlock()
			}
		}(finder)
	}

	go func() {
		wg.Wait()
		finished <- errs
	}()

	return found, finished
}

// Discover returns the first Roku that answers within timeout
func Discover(ctx context.Context, timeout time.Duration) (*Device, error) {
	return NewDiscoverer(timeout).First(ctx)
}

// Scan returns every Roku that answers within timeout
func Scan(ctx context.Context, timeout time.Duration) ([]*Device, error) {
	return NewDiscoverer(timeout).All(ctx)
}
