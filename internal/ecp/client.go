package ecp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/rokucli/internal/logging"
	"github.com/muurk/rokucli/internal/version"
)

// maxDeviceInfoSize caps how much of a device-info response is read
const maxDeviceInfoSize = 1 << 20

// Client sends ECP requests to a single Roku device
type Client struct {
	// Addr is the device the client talks to
	Addr Address

	// HTTPClient is the underlying HTTP client. Its Timeout is zero (no
	// client-side timeout) unless SetTimeout is called.
	HTTPClient *http.Client
}

// NewClient creates a new ECP client for the device at addr
func NewClient(addr Address) *Client {
	return &Client{
		Addr:       addr,
		HTTPClient: &http.Client{},
	}
}

// SetTimeout sets the per-request timeout; zero disables it
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Keypress presses and releases a single key on the device
func (c *Client) Keypress(ctx context.Context, key Key) error {
	return c.post(ctx, "/keypress/"+string(key))
}

// Literal sends one character of text entry
func (c *Client) Literal(ctx context.Context, r rune) error {
	return c.post(ctx, "/keypress/"+literalPrefix+escapeLiteral(r))
}

// DeviceInfo queries /query/device-info. Any answer that is not a device-info
// document is reported as ErrTypeProtocolMismatch.
func (c *Client) DeviceInfo(ctx context.Context) (*DeviceInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Addr.BaseURL()+"/query/device-info", nil)
	if err != nil {
		return nil, NewNetworkError("failed to create device-info request", err, c.Addr)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	logging.LogRequest(c.Addr.String(), req.Method, req.URL.Path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("device-info request failed", err, c.Addr)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProtocolError(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil, c.Addr)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDeviceInfoSize))
	if err != nil {
		return nil, NewNetworkError("failed to read device-info response", err, c.Addr)
	}

	info, err := ParseDeviceInfo(body)
	if err != nil {
		return nil, NewProtocolError("failed to parse device-info response", err, c.Addr)
	}

	logging.Debug("Device info received",
		zap.String("device", c.Addr.String()),
		zap.String("model", info.ModelName),
		zap.String("type", info.Type()),
	)

	return info, nil
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Addr.BaseURL()+path, nil)
	if err != nil {
		return NewNetworkError("failed to create request", err, c.Addr)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	logging.LogRequest(c.Addr.String(), req.Method, path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("request failed", err, c.Addr)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("%s returned status %d", path, resp.StatusCode), c.Addr)
	}

	return nil
}

// escapeLiteral percent-encodes a character for use in a Lit_ path segment
func escapeLiteral(r rune) string {
	return strings.ReplaceAll(url.QueryEscape(string(r)), "+", "%20")
}
