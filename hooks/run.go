package hooks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/akyaiy/luci-ifctl/internal/client/luci"
	"github.com/akyaiy/luci-ifctl/internal/client/rpc"
	"github.com/akyaiy/luci-ifctl/internal/core/history"
	"github.com/akyaiy/luci-ifctl/internal/core/runstate"
	"github.com/akyaiy/luci-ifctl/internal/core/utils"
	"github.com/akyaiy/luci-ifctl/internal/engine/app"
	"github.com/akyaiy/luci-ifctl/internal/engine/config"
	"github.com/akyaiy/luci-ifctl/internal/engine/logs"
	"github.com/spf13/cobra"
)

var toolApp = app.New()

// IfaceMissingError is the read-back finding nothing under the requested
// section name. It gets its own exit code so scripts can tell it apart.
type IfaceMissingError struct {
	Name string
}

func (e *IfaceMissingError) Error() string {
	return fmt.Sprintf("interface %s does not exist", e.Name)
}

func Set(cmd *cobra.Command, args []string) {
	toolApp.InitialHooks(Init0Hook, Init1Hook, Init2Hook, Init3Hook, Init4Hook)
	toolApp.Fail(FailHook)
	toolApp.Run(func(ctx context.Context, rs *runstate.RunState, x *app.AppX) error {
		return runSet(ctx, rs, x, args[0], args[1])
	})
}

func Get(cmd *cobra.Command, args []string) {
	toolApp.InitialHooks(Init0Hook, Init1Hook, Init2Hook, Init3Hook, Init4Hook)
	toolApp.Fail(FailHook)
	toolApp.Run(func(ctx context.Context, rs *runstate.RunState, x *app.AppX) error {
		return runGet(ctx, rs, x, args[0])
	})
}

func History(cmd *cobra.Command, args []string) {
	toolApp.InitialHooks(Init0Hook, Init1Hook, Init2Hook, Init3Hook, Init4Hook)
	toolApp.Fail(FailHook)
	toolApp.Run(func(ctx context.Context, rs *runstate.RunState, x *app.AppX) error {
		return runHistory(ctx, rs, x)
	})
}

func newLuCIClient(x *app.AppX) *luci.Client {
	return luci.NewClient(&luci.ClientInit{
		RPC:         rpc.New(x.SLog),
		Host:        *x.Config.Env.Host,
		AuthTimeout: *x.Config.Conf.LuCI.AuthTimeout,
		CallTimeout: *x.Config.Conf.LuCI.CallTimeout,
		Log:         x.SLog,
	})
}

func runSet(ctx context.Context, rs *runstate.RunState, x *app.AppX, ifName, ifState string) error {
	if err := Compositor.Require(); err != nil {
		return err
	}
	cl := newLuCIClient(x)

	x.SLog.Info("Authenticating...")
	token, err := cl.Login(ctx, *x.Config.Env.User, *x.Config.Env.Pass)
	if err != nil {
		return err
	}

	x.SLog.Info("Setting interface",
		slog.String("iface", ifName),
		slog.String("state", ifState))
	if err := cl.SetInterface(ctx, ifName, ifState, token); err != nil {
		recordToggle(ctx, rs, x, ifName, ifState, err.Error())
		return err
	}
	recordToggle(ctx, rs, x, ifName, ifState, "ok")

	// write, wait, read: give the remote daemon time to settle before the
	// read-back, this is not a retry
	delay := settleDelay(x)
	x.SLog.Info("Verifying current state",
		slog.String("iface", ifName),
		slog.Duration("settle-delay", delay))
	if err := utils.Sleep(ctx, delay); err != nil {
		return err
	}

	record, err := cl.GetInterface(ctx, ifName, token)
	if err != nil {
		return err
	}
	if record == nil {
		return &IfaceMissingError{Name: ifName}
	}
	x.SLog.Info("Current interface state", slog.String("iface", ifName))
	fmt.Println(string(record))
	return nil
}

func runGet(ctx context.Context, rs *runstate.RunState, x *app.AppX, ifName string) error {
	if err := Compositor.Require(); err != nil {
		return err
	}
	cl := newLuCIClient(x)

	x.SLog.Info("Authenticating...")
	token, err := cl.Login(ctx, *x.Config.Env.User, *x.Config.Env.Pass)
	if err != nil {
		return err
	}

	record, err := cl.GetInterface(ctx, ifName, token)
	if err != nil {
		return err
	}
	if record == nil {
		return &IfaceMissingError{Name: ifName}
	}
	fmt.Println(string(record))
	return nil
}

func runHistory(ctx context.Context, rs *runstate.RunState, x *app.AppX) error {
	rec := history.New(*x.Config.Conf.History.Path, x.SLog)
	entries, err := rec.Recent(ctx, Compositor.CMDLine.History.Limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s  %-12s -> %s  [%s]  run=%s\n",
			time.Unix(e.Timestamp, 0).Format("2006-01-02 15:04:05"),
			e.Iface, e.State, e.Outcome, e.RunID)
	}
	return nil
}

func settleDelay(x *app.AppX) time.Duration {
	if Compositor.CMDLine.Set.NoWait {
		return 0
	}
	if raw := Compositor.CMDLine.Set.Wait; raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
		x.Log.Printf("%s: cannot parse --wait value %q, using the configured delay", logs.PrintWarn(), raw)
	}
	return *x.Config.Conf.LuCI.SettleDelay
}

func recordToggle(ctx context.Context, rs *runstate.RunState, x *app.AppX, ifName, ifState, outcome string) {
	if !*x.Config.Conf.History.Enabled {
		return
	}
	rec := history.New(*x.Config.Conf.History.Path, x.SLog)
	if err := rec.Record(ctx, history.Entry{
		RunID:   rs.RunID,
		Iface:   ifName,
		State:   ifState,
		Outcome: outcome,
	}); err != nil {
		x.Log.Printf("%s: cannot record toggle history: %s", logs.PrintWarn(), err.Error())
	}
}

// ExitCode maps the failure taxonomy to the process exit contract.
func ExitCode(err error) int {
	if err == nil {
		return config.ExitOK
	}
	var missing *IfaceMissingError
	if errors.As(err, &missing) {
		return config.ExitIfaceMissing
	}
	return config.ExitGeneric
}

// Message renders a failure as the one line the user sees. The two named
// timeouts keep their own wording, everything else prints as-is.
func Message(err error) string {
	switch {
	case errors.Is(err, rpc.ErrConnectTimeout):
		return "Connection timed out. Check if the remote host is alive"
	case errors.Is(err, rpc.ErrReadTimeout):
		return "Reading from a connection timed out. Remote host is too slow?"
	default:
		return err.Error()
	}
}

func FailHook(x *app.AppX, err error) {
	x.Log.Printf("%s: %s", logs.PrintError(), Message(err))
	os.Exit(ExitCode(err))
}
