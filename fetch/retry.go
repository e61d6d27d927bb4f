package fetch

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// HTTPError is a non-2xx registry response. Whether it is retryable depends
// only on the status code.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}

// IsNotFound returns true if the error represents a 404 response.
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == 404
}

// retryableStatus is the fixed set of HTTP status codes worth retrying.
var retryableStatus = map[int]bool{
	408: true,
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// retryableErrno is the fixed set of transient network error codes.
var retryableErrno = []syscall.Errno{
	syscall.ECONNRESET,
	syscall.ETIMEDOUT,
	syscall.EHOSTUNREACH,
	syscall.ENETUNREACH,
	syscall.ECONNREFUSED,
	syscall.EADDRINUSE,
	syscall.ECONNABORTED,
	syscall.EPIPE,
}

// Retryable reports whether a release fetch failure is transient: a known
// network errno, a retryable HTTP status, a net timeout, or an error whose
// text indicates a timeout or generic network failure.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return retryableStatus[httpErr.StatusCode]
	}

	for _, errno := range retryableErrno {
		if errors.Is(err, errno) {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "timed out") ||
		strings.Contains(msg, "network error")
}
