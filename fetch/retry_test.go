package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "deadline exceeded" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestRetryableNetworkErrnos(t *testing.T) {
	for _, errno := range []syscall.Errno{
		syscall.ECONNRESET,
		syscall.ETIMEDOUT,
		syscall.EHOSTUNREACH,
		syscall.ENETUNREACH,
		syscall.ECONNREFUSED,
		syscall.EADDRINUSE,
		syscall.ECONNABORTED,
		syscall.EPIPE,
	} {
		if !Retryable(errno) {
			t.Errorf("Retryable(%v) = false, want true", errno)
		}
		// Also when wrapped, as net.OpError wraps dial failures.
		wrapped := fmt.Errorf("dialing registry: %w", errno)
		if !Retryable(wrapped) {
			t.Errorf("Retryable(wrapped %v) = false, want true", errno)
		}
	}
}

func TestRetryableHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{408, true},
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{504, true},
		{400, false},
		{401, false},
		{403, false},
		{404, false},
		{410, false},
	}
	for _, tt := range tests {
		err := &HTTPError{StatusCode: tt.status, URL: "https://example.com"}
		if got := Retryable(err); got != tt.want {
			t.Errorf("Retryable(HTTP %d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRetryableNetTimeout(t *testing.T) {
	var err net.Error = timeoutErr{}
	if !Retryable(err) {
		t.Error("Retryable(net timeout) = false, want true")
	}
	if !Retryable(&net.OpError{Op: "dial", Err: timeoutErr{}}) {
		t.Error("Retryable(OpError timeout) = false, want true")
	}
}

func TestRetryableMessageSniffing(t *testing.T) {
	if !Retryable(errors.New("request timed out waiting for headers")) {
		t.Error("timed out message should be retryable")
	}
	if !Retryable(context.DeadlineExceeded) {
		t.Error("deadline exceeded should be retryable")
	}
	if Retryable(errors.New("invalid package name")) {
		t.Error("ordinary errors should not be retryable")
	}
	if Retryable(nil) {
		t.Error("nil should not be retryable")
	}
}

func TestRetryableIgnoresTimeDuration(t *testing.T) {
	// Sanity: errors carrying durations in text do not confuse the sniffer.
	err := fmt.Errorf("gave up after %v", 3*time.Second)
	if Retryable(err) {
		t.Error("plain give-up message should not be retryable")
	}
}
