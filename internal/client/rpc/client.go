// Package rpc implements the client side of the LuCI json-rpc convention:
// plain HTTP POST with a {id?, method, params} body and a {result, error}
// reply. The session token travels as the auth query parameter, not in the
// body.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type ClientContract interface {
	Call(ctx context.Context, call Call) (json.RawMessage, error)
}

type Client struct {
	http *http.Client
	log  *slog.Logger
}

// Call describes one rpc invocation. Op is the human-readable name of the
// logical operation and ends up in error messages and log lines.
type Call struct {
	URL     string
	Method  string
	Params  []any
	ID      *int
	Token   string
	Timeout time.Duration
	Op      string

	// LenientHTTP keeps going on a non-2xx status: the status is logged as a
	// warning and the body is still inspected for an rpc error. The get_all
	// read path relies on this.
	LenientHTTP bool
}

func New(log *slog.Logger) *Client {
	return &Client{
		http: &http.Client{},
		log:  log,
	}
}

func (c *Client) Call(ctx context.Context, call Call) (json.RawMessage, error) {
	body, err := json.Marshal(Request{
		ID:     call.ID,
		Method: call.Method,
		Params: call.Params,
	})
	if err != nil {
		return nil, classifyTransport(call.Op, err)
	}

	target := call.URL
	if call.Token != "" {
		q := url.Values{}
		q.Set("auth", call.Token)
		target = target + "?" + q.Encode()
	}

	if call.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, call.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, classifyTransport(call.Op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("rpc call",
		slog.String("op", call.Op),
		slog.String("method", call.Method),
		slog.String("url", call.URL))

	res, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(call.Op, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, classifyTransport(call.Op, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if !call.LenientHTTP {
			return nil, &HTTPError{Status: res.StatusCode, Op: call.Op}
		}
		c.log.Warn("unexpected response code, still reading the body",
			slog.String("op", call.Op),
			slog.Int("status", res.StatusCode))
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, classifyTransport(call.Op, err)
	}

	if !IsNull(resp.Error) {
		return nil, &ProtocolError{Data: resp.Error, Op: call.Op}
	}
	return resp.Result, nil
}
