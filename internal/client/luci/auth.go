package luci

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akyaiy/luci-ifctl/internal/client/rpc"
)

// ErrAuthRejected means login answered cleanly but handed back a null result:
// the daemon refused the credentials without raising an rpc error.
var ErrAuthRejected = errors.New("authentication failed")

// Login fetches a fresh session token. One attempt, no refresh: the token
// lives exactly as long as the run that requested it.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	id := 1
	result, err := c.rpc.Call(ctx, rpc.Call{
		URL:     c.host + AuthRoute,
		Method:  "login",
		Params:  []any{username, password},
		ID:      &id,
		Timeout: c.authTimeout,
		Op:      "login",
	})
	if err != nil {
		return "", err
	}

	if rpc.IsNull(result) {
		c.log.Error("authentication rejected", slog.String("user", username))
		return "", ErrAuthRejected
	}

	var token string
	if err := json.Unmarshal(result, &token); err != nil {
		return "", fmt.Errorf("login: unexpected token payload: %w", err)
	}
	return token, nil
}
