package luci

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akyaiy/luci-ifctl/internal/client/rpc"
)

// StateError is a requested state outside {"0","1"}, caught before any
// network work happens.
type StateError struct {
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("interface state should be %s or %s, got %q", StateDisabled, StateEnabled, e.State)
}

// CommitError marks a set that went through while the follow-up commit did
// not: the staged change is still sitting uncommitted on the router. The
// daemon offers no rollback, so the caller decides whether to retry the
// commit alone.
type CommitError struct {
	Name  string
	State string
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("interface %s staged to %s but commit failed: %v", e.Name, e.State, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// SetInterface stages the auto option of the named interface and commits the
// network domain. A failed set aborts before commit; a failed commit is
// reported as *CommitError.
func (c *Client) SetInterface(ctx context.Context, name, state, token string) error {
	if state != StateDisabled && state != StateEnabled {
		return &StateError{State: state}
	}

	_, err := c.rpc.Call(ctx, rpc.Call{
		URL:     c.host + UCIRoute,
		Method:  "set",
		Params:  []any{"network", name, "auto", state},
		Token:   token,
		Timeout: c.callTimeout,
		Op:      fmt.Sprintf("set interface %s to %s", name, state),
	})
	if err != nil {
		return err
	}

	_, err = c.rpc.Call(ctx, rpc.Call{
		URL:     c.host + UCIRoute,
		Method:  "commit",
		Params:  []any{"network"},
		Token:   token,
		Timeout: c.callTimeout,
		Op:      "commit changes",
	})
	if err != nil {
		return &CommitError{Name: name, State: state, Err: err}
	}

	c.log.Debug("interface staged and committed",
		slog.String("iface", name),
		slog.String("state", state))
	return nil
}

// GetInterface reads the named interface section back. A nil record means
// the section does not exist. The read path is deliberately lenient about
// the HTTP status: a non-2xx answer is logged and the body still inspected.
func (c *Client) GetInterface(ctx context.Context, name, token string) (Record, error) {
	result, err := c.rpc.Call(ctx, rpc.Call{
		URL:         c.host + UCIRoute,
		Method:      "get_all",
		Params:      []any{"network", name},
		Token:       token,
		Timeout:     c.callTimeout,
		Op:          fmt.Sprintf("get interface status for %s", name),
		LenientHTTP: true,
	})
	if err != nil {
		return nil, err
	}
	if rpc.IsNull(result) {
		return nil, nil
	}
	return Record(result), nil
}
