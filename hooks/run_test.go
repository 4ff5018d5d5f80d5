package hooks

import (
	"errors"
	"fmt"
	"testing"

	"github.com/akyaiy/luci-ifctl/internal/client/luci"
	"github.com/akyaiy/luci-ifctl/internal/client/rpc"
	"github.com/akyaiy/luci-ifctl/internal/engine/config"
)

func TestFunc_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, config.ExitOK},
		{"interface missing", &IfaceMissingError{Name: "lte"}, config.ExitIfaceMissing},
		{"wrapped interface missing", fmt.Errorf("read back: %w", &IfaceMissingError{Name: "lte"}), config.ExitIfaceMissing},
		{"auth rejected", luci.ErrAuthRejected, config.ExitGeneric},
		{"http error", &rpc.HTTPError{Status: 500, Op: "commit changes"}, config.ExitGeneric},
		{"protocol error", &rpc.ProtocolError{Op: "login"}, config.ExitGeneric},
		{"plain error", errors.New("boom"), config.ExitGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d; want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFunc_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"connect timeout",
			fmt.Errorf("login: %w: dial tcp: i/o timeout", rpc.ErrConnectTimeout),
			"Connection timed out. Check if the remote host is alive",
		},
		{
			"read timeout",
			fmt.Errorf("get interface status for lte: %w: context deadline exceeded", rpc.ErrReadTimeout),
			"Reading from a connection timed out. Remote host is too slow?",
		},
		{
			"anything else",
			errors.New("interface lte staged to 1 but commit failed: boom"),
			"interface lte staged to 1 but commit failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q; want %q", got, tt.want)
			}
		})
	}
}
