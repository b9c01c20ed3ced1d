package ecp

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
	"testing"
)

// timeoutError implements net.Error with Timeout() == true
type timeoutError struct{}

func (e *timeoutError) Error() string   { return "i/o timeout" }
func (e *timeoutError) Timeout() bool   { return true }
func (e *timeoutError) Temporary() bool { return true }

var testAddr = Address{Host: "192.168.1.134", Port: 8060}

func dialError(errno syscall.Errno) error {
	return &url.Error{
		Op:  "Post",
		URL: "http://192.168.1.134:8060/keypress/Home",
		Err: &net.OpError{
			Op:  "dial",
			Net: "tcp",
			Err: os.NewSyscallError("connect", errno),
		},
	}
}

func TestClassifyNetworkError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
	}{
		{"no route to host", dialError(syscall.EHOSTUNREACH), ErrTypeHostUnreachable},
		{"network unreachable", dialError(syscall.ENETUNREACH), ErrTypeHostUnreachable},
		{"connection refused", dialError(syscall.ECONNREFUSED), ErrTypeProtocolMismatch},
		{"connection reset", dialError(syscall.ECONNRESET), ErrTypeNetwork},
		{
			name: "timeout",
			err: &url.Error{
				Op:  "Post",
				URL: "http://192.168.1.134:8060/keypress/Home",
				Err: &net.OpError{Op: "dial", Net: "tcp", Err: &timeoutError{}},
			},
			wantType: ErrTypeTimeout,
		},
		{
			name:     "dns",
			err:      &net.DNSError{Err: "no such host", Name: "roku.invalid", IsNotFound: true},
			wantType: ErrTypeDNS,
		},
		{"plain error", errors.New("boom"), ErrTypeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			devErr := ClassifyNetworkError(tt.err, testAddr)
			if devErr == nil {
				t.Fatal("ClassifyNetworkError() = nil")
			}
			if devErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", devErr.Type, tt.wantType)
			}
			if devErr.Addr != testAddr {
				t.Errorf("Addr = %v, want %v", devErr.Addr, testAddr)
			}
			if !errors.Is(devErr, tt.err) {
				t.Error("classified error should wrap the original")
			}
		})
	}
}

func TestClassifyNetworkError_Nil(t *testing.T) {
	if got := ClassifyNetworkError(nil, testAddr); got != nil {
		t.Errorf("ClassifyNetworkError(nil) = %v, want nil", got)
	}
}

func TestGetShortErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"host unreachable", ClassifyNetworkError(dialError(syscall.EHOSTUNREACH), testAddr), "No route to host"},
		{"protocol mismatch", NewProtocolError("bad xml", nil, testAddr), "Not a roku device"},
		{"generic network", ClassifyNetworkError(dialError(syscall.ECONNRESET), testAddr), "Unable to communicate with roku at 192.168.1.134:8060"},
		{"http", NewHTTPError(500, "boom", testAddr), "Unable to communicate with roku at 192.168.1.134:8060"},
		{"wrapped", fmt.Errorf("bootstrap: %w", NewProtocolError("bad xml", nil, testAddr)), "Not a roku device"},
		{"foreign error", errors.New("something else"), "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetShortErrorMessage(tt.err); got != tt.want {
				t.Errorf("GetShortErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	unreachable := ClassifyNetworkError(dialError(syscall.EHOSTUNREACH), testAddr)
	mismatch := NewProtocolError("nope", nil, testAddr)
	httpErr := NewHTTPError(404, "nope", testAddr)

	if !IsHostUnreachable(unreachable) || IsHostUnreachable(mismatch) {
		t.Error("IsHostUnreachable misclassified")
	}
	if !IsProtocolMismatch(mismatch) || IsProtocolMismatch(httpErr) {
		t.Error("IsProtocolMismatch misclassified")
	}
	if !IsNetworkError(unreachable) || IsNetworkError(httpErr) {
		t.Error("IsNetworkError misclassified")
	}
	if IsNetworkError(errors.New("plain")) {
		t.Error("plain errors are not network errors")
	}
}

func TestDeviceError_Error(t *testing.T) {
	err := &DeviceError{Type: ErrTypeHTTP, Message: "status 500"}
	if got := err.Error(); got != "HTTP Error: status 500" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := &DeviceError{Type: ErrTypeNetwork, Message: "request failed", Err: errors.New("reset")}
	if !strings.Contains(wrapped.Error(), "caused by: reset") {
		t.Errorf("Error() = %q, want cause included", wrapped.Error())
	}
}
