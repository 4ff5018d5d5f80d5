package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
)

// Timeout sentinels. The driver gives these two their own one-line messages,
// every other transport failure is rendered generically.
var (
	ErrConnectTimeout = errors.New("connect timeout")
	ErrReadTimeout    = errors.New("read timeout")
)

// HTTPError is a response status outside the success range.
type HTTPError struct {
	Status int
	Op     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: unexpected response code %d", e.Op, e.Status)
}

// ProtocolError is a non-null "error" field in the response body. It is raised
// regardless of the HTTP status code.
type ProtocolError struct {
	Data json.RawMessage
	Op   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: got RPC error %s", e.Op, string(e.Data))
}

func classifyTransport(op string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		var operr *net.OpError
		if errors.As(err, &operr) && operr.Op == "dial" {
			return fmt.Errorf("%s: %w: %v", op, ErrConnectTimeout, err)
		}
		return fmt.Errorf("%s: %w: %v", op, ErrReadTimeout, err)
	}
	if os.IsTimeout(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrReadTimeout, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
