package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyaiy/luci-ifctl/internal/core/runstate"
	"github.com/akyaiy/luci-ifctl/internal/core/utils"
	"github.com/akyaiy/luci-ifctl/internal/engine/config"
)

type AppContract interface {
	InitialHooks(fn ...func(rs *runstate.RunState, x *AppX))
	Run(fn func(ctx context.Context, rs *runstate.RunState, x *AppX) error)
	Fail(fn func(x *AppX, err error))
}

type App struct {
	initHooks []func(rs *runstate.RunState, x *AppX)
	runHook   func(ctx context.Context, rs *runstate.RunState, x *AppX) error
	failHook  func(x *AppX, err error)

	RunState *runstate.RunState
	AppX     *AppX
}

type AppX struct {
	Config *config.Compositor
	Log    *log.Logger
	SLog   *slog.Logger
}

func New() AppContract {
	return &App{
		AppX: &AppX{
			Log: log.Default(),
		},
		RunState: &runstate.RunState{},
	}
}

func (a *App) InitialHooks(fn ...func(rs *runstate.RunState, x *AppX)) {
	a.initHooks = append(a.initHooks, fn...)
}

// Fail is called with the error the run hook returned. It owns terminal
// reporting and the process exit code.
func (a *App) Fail(fn func(x *AppX, err error)) {
	a.failHook = fn
}

func (a *App) Run(fn func(ctx context.Context, rs *runstate.RunState, x *AppX) error) {
	a.runHook = fn

	for _, hook := range a.initHooks {
		hook(a.RunState, a.AppX)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	defer utils.CatchPanicWithFallback(func(any) {
		os.Exit(1)
	})

	var runErr error
	if a.runHook != nil {
		runErr = a.runHook(ctx, a.RunState, a.AppX)
	}

	if runErr != nil {
		if a.failHook != nil {
			a.failHook(a.AppX, runErr)
			return
		}
		a.AppX.Log.Fatalf("fatal in Run: %v", runErr)
	}
}
