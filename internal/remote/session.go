package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/rokucli/internal/discovery"
	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/logging"
)

// Device is what a session needs from the device client
type Device interface {
	Remote
	DeviceInfo(ctx context.Context) (*ecp.DeviceInfo, error)
}

// Session is the state of one remote-control run
type Session struct {
	Addr     ecp.Address
	Remote   Remote
	Info     *ecp.DeviceInfo
	Commands CommandMap

	mode Mode
}

// NewSession builds a session for a device whose info is already known.
// The CommandMap is derived from info and fixed for the session.
func NewSession(addr ecp.Address, r Remote, info *ecp.DeviceInfo) *Session {
	return &Session{
		Addr:     addr,
		Remote:   r,
		Info:     info,
		Commands: BuildCommandMap(info.IsTV()),
		mode:     ModeNormal,
	}
}

// Mode returns the current input mode
func (s *Session) Mode() Mode {
	return s.mode
}

// IsTV reports whether the session drives a TV-class device
func (s *Session) IsTV() bool {
	return s.Info.IsTV()
}

// Options controls Bootstrap
type Options struct {
	// Address is the explicit device address ("host" or "host:port"). Empty
	// means discover.
	Address string

	// Port is used when Address has no port
	Port int

	// DiscoverTimeout bounds discovery
	DiscoverTimeout time.Duration

	// RequestTimeout is the per-request timeout for device calls; zero
	// means none
	RequestTimeout time.Duration

	// Discover overrides discovery.Discover (tests)
	Discover func(ctx context.Context, timeout time.Duration) (*discovery.Device, error)

	// Dial overrides the ECP client constructor (tests)
	Dial func(addr ecp.Address) Device
}

func (o Options) withDefaults() Options {
	if o.Port == 0 {
		o.Port = ecp.DefaultPort
	}
	if o.DiscoverTimeout <= 0 {
		o.DiscoverTimeout = discovery.DefaultTimeout
	}
	if o.Discover == nil {
		o.Discover = discovery.Discover
	}
	if o.Dial == nil {
		timeout := o.RequestTimeout
		o.Dial = func(addr ecp.Address) Device {
			client := ecp.NewClient(addr)
			client.SetTimeout(timeout)
			return client
		}
	}
	return o
}

// ResolveAddress returns the explicit address when one is given, otherwise
// the first device discovery finds
func ResolveAddress(ctx context.Context, opts Options) (ecp.Address, error) {
	opts = opts.withDefaults()

	if opts.Address != "" {
		return ecp.ParseAddress(opts.Address, opts.Port)
	}

	device, err := opts.Discover(ctx, opts.DiscoverTimeout)
	if err != nil {
		return ecp.Address{}, err
	}
	return device.Address(), nil
}

// Bootstrap resolves the device, queries its info and builds the session.
// Nothing is printed; the caller reports errors with FatalMessage.
func Bootstrap(ctx context.Context, opts Options) (*Session, error) {
	opts = opts.withDefaults()

	addr, err := ResolveAddress(ctx, opts)
	if err != nil {
		return nil, err
	}

	device := opts.Dial(addr)
	info, err := device.DeviceInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query device at %s: %w", addr, err)
	}

	logging.Info("Session started",
		zap.String("device", addr.String()),
		zap.String("type", info.Type()),
		zap.String("model", info.ModelName),
	)

	return NewSession(addr, device, info), nil
}

// FatalMessage returns the single line printed when the session aborts
func FatalMessage(err error) string {
	if errors.Is(err, discovery.ErrNotFound) {
		return "No Roku device found on the local network"
	}

	var commErr *CommunicationError
	if errors.As(err, &commErr) {
		return commErr.Error()
	}

	var devErr *ecp.DeviceError
	if errors.As(err, &devErr) {
		return ecp.GetShortErrorMessage(devErr)
	}

	return err.Error()
}
