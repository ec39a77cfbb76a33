// Package transport holds the error taxonomy shared by every outbound
// client (JSON-RPC, REST, websocket). Its subpackages build the clients.
package transport

import (
	"errors"
	"fmt"
)

// NetworkError reports a failed exchange with a remote endpoint: a transport
// failure, a timeout, a non-2xx status or a payload that could not be
// decoded. It is the only error kind the presentation layer surfaces as a
// transient notification.
type NetworkError struct {
	Op         string // logical operation, e.g. "tx_search"
	Endpoint   string // URL that was contacted
	StatusCode int    // HTTP status, 0 when no response was received
	Err        error  // underlying cause
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ErrUnexpectedStatus is the cause recorded for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

// NewNetworkError wraps err as a NetworkError. A nil err yields nil, and an
// err that already is a NetworkError is returned as is.
func NewNetworkError(op, endpoint string, statusCode int, err error) error {
	if err == nil {
		return nil
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return err
	}

	return &NetworkError{Op: op, Endpoint: endpoint, StatusCode: statusCode, Err: err}
}

// IsNetworkError reports whether err wraps a NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
