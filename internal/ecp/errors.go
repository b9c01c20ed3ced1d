package ecp

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error not covered by a more specific type
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHostUnreachable indicates there is no route to the device (EHOSTUNREACH, ENETUNREACH)
	ErrTypeHostUnreachable
	// ErrTypeProtocolMismatch indicates the address answers but is not a Roku
	// (connection refused on the ECP port, unexpected status, unparseable device-info)
	ErrTypeProtocolMismatch
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeDNS indicates a hostname resolution failure
	ErrTypeDNS
	// ErrTypeHTTP indicates an HTTP-level error on a keypress
	ErrTypeHTTP
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHostUnreachable:
		return "Host Unreachable"
	case ErrTypeProtocolMismatch:
		return "Protocol Mismatch"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DeviceError represents an error that occurred while talking to a device
type DeviceError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
	Addr       Address   // Device the request was sent to
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a typed DeviceError
func ClassifyNetworkError(err error, addr Address) *DeviceError {
	if err == nil {
		return nil
	}

	// url.Error wraps everything http.Client returns; classify what it wraps
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		classified := ClassifyNetworkError(urlErr.Err, addr)
		classified.Err = err
		return classified
	}

	if os.IsTimeout(err) {
		return &DeviceError{
			Type:    ErrTypeTimeout,
			Message: "Request timed out",
			Err:     err,
			Addr:    addr,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &DeviceError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
			Addr:    addr,
		}
	}

	switch {
	case errors.Is(err, syscall.EHOSTUNREACH):
		return &DeviceError{
			Type:    ErrTypeHostUnreachable,
			Message: "No route to host",
			Err:     err,
			Addr:    addr,
		}
	case errors.Is(err, syscall.ENETUNREACH):
		return &DeviceError{
			Type:    ErrTypeHostUnreachable,
			Message: "Network unreachable",
			Err:     err,
			Addr:    addr,
		}
	case errors.Is(err, syscall.ECONNREFUSED):
		return &DeviceError{
			Type:    ErrTypeProtocolMismatch,
			Message: "Connection refused on the ECP port",
			Err:     err,
			Addr:    addr,
		}
	}

	return &DeviceError{
		Type:    ErrTypeNetwork,
		Message: "Network error occurred",
		Err:     err,
		Addr:    addr,
	}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error, addr Address) *DeviceError {
	classified := ClassifyNetworkError(err, addr)
	if classified == nil {
		return &DeviceError{Type: ErrTypeNetwork, Message: message, Addr: addr}
	}
	if classified.Type == ErrTypeNetwork {
		classified.Message = message
	}
	return classified
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string, addr Address) *DeviceError {
	return &DeviceError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
		Addr:       addr,
	}
}

// NewProtocolError creates an error for a device that answered but is not a Roku
func NewProtocolError(message string, err error, addr Address) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeProtocolMismatch,
		Message: message,
		Err:     err,
		Addr:    addr,
	}
}

func errorType(err error) (ErrorType, bool) {
	var devErr *DeviceError
	if errors.As(err, &devErr) {
		return devErr.Type, true
	}
	return 0, false
}

// IsHostUnreachable checks if an error means there is no route to the device
func IsHostUnreachable(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeHostUnreachable
}

// IsProtocolMismatch checks if an error means the address is not a Roku
func IsProtocolMismatch(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeProtocolMismatch
}

// IsNetworkError checks if an error is any transport-level failure
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	if !ok {
		return false
	}
	return t == ErrTypeNetwork ||
		t == ErrTypeHostUnreachable ||
		t == ErrTypeTimeout ||
		t == ErrTypeDNS
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		return err.Error()
	}

	switch devErr.Type {
	case ErrTypeHostUnreachable:
		return "No route to host"
	case ErrTypeProtocolMismatch:
		return "Not a roku device"
	case ErrTypeTimeout:
		return fmt.Sprintf("Roku at %s is not responding (timeout)", devErr.Addr)
	case ErrTypeDNS:
		return "Cannot resolve device hostname"
	default:
		return fmt.Sprintf("Unable to communicate with roku at %s", devErr.Addr)
	}
}
