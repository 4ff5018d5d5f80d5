// Package luci drives a router's LuCI management endpoint: one login for a
// session token, then uci calls against the network config domain.
package luci

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/akyaiy/luci-ifctl/internal/client/rpc"
)

// Record is the raw json value get_all returns for one interface section.
// A nil Record means the section does not exist on the router.
type Record = json.RawMessage

const (
	AuthRoute = "/auth"
	UCIRoute  = "/uci"
)

// Permitted interface states. Anything else is rejected before a single
// request goes out.
const (
	StateDisabled = "0"
	StateEnabled  = "1"
)

type ClientContract interface {
	Login(ctx context.Context, username, password string) (string, error)
	SetInterface(ctx context.Context, name, state, token string) error
	GetInterface(ctx context.Context, name, token string) (Record, error)
}

type Client struct {
	rpc         rpc.ClientContract
	host        string
	authTimeout time.Duration
	callTimeout time.Duration
	log         *slog.Logger
}

type ClientInit struct {
	RPC         rpc.ClientContract
	Host        string
	AuthTimeout time.Duration
	CallTimeout time.Duration
	Log         *slog.Logger
}

func NewClient(init *ClientInit) *Client {
	return &Client{
		rpc:         init.RPC,
		host:        init.Host,
		authTimeout: init.AuthTimeout,
		callTimeout: init.CallTimeout,
		log:         init.Log,
	}
}
