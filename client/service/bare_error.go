package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoAvailableServer is returned by Client.Fetch when the pool has no server to try.
var ErrNoAvailableServer = errors.New("no available server")

// ErrClientClosed is returned by Client.Fetch after Close.
var ErrClientClosed = errors.New("client is closed")

// BareError is a request failure reported at the transport boundary. Status is the upstream HTTP
// status, or 0 when the failure happened before any response.
type BareError struct {
	Message string
	Status  int
}

// NewBareError creates a BareError. status may be 0.
func NewBareError(message string, status int) *BareError {
	return &BareError{Message: message, Status: status}
}

func (e *BareError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("BareError: %s (status %d)", e.Message, e.Status)
	}
	return "BareError: " + e.Message
}

// Name is the error kind, kept stable for callers that log it.
func (e *BareError) Name() string {
	return "BareError"
}

// ToBareError returns the *BareError in err's chain, or nil.
func ToBareError(err error) *BareError {
	var be *BareError
	if errors.As(err, &be) {
		return be
	}
	return nil
}

// IsRetryable reports whether another server may succeed where this one failed.
// Client errors (4xx) come from the request itself and are final; everything else,
// including network errors and 5xx, is retried on the next server.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if be := ToBareError(err); be != nil {
		return be.Status == 0 || be.Status >= http.StatusInternalServerError ||
			be.Status == http.StatusTooManyRequests
	}
	return true
}
