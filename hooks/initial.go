package hooks

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/akyaiy/luci-ifctl/internal/core/runstate"
	"github.com/akyaiy/luci-ifctl/internal/engine/app"
	"github.com/akyaiy/luci-ifctl/internal/engine/config"
	"github.com/akyaiy/luci-ifctl/internal/engine/logs"
	"github.com/google/uuid"
)

var Compositor *config.Compositor = config.NewCompositor()

func Init0Hook(rs *runstate.RunState, x *app.AppX) {
	x.Config = Compositor
	x.Log.SetOutput(os.Stderr)
	x.Log.SetPrefix(logs.SetBrightBlack(fmt.Sprintf("(%s) ", runstate.StageNotReady)))
	x.Log.SetFlags(log.Ldate | log.Ltime)
}

// First stage: pre-init
func Init1Hook(rs *runstate.RunState, x *app.AppX) {
	*rs = *runstate.NewRunState(&runstate.RunState{
		RunID:              uuid.New().String(),
		BinName:            filepath.Base(os.Args[0]),
		Version:            config.ToolVersion,
		Stage:              runstate.StagePreInit,
		StartTimestampUnix: time.Now().Unix(),
	})
	x.Log.SetPrefix(logs.SetBrightBlack(fmt.Sprintf("(%s) ", rs.Stage)))
}

// Second stage: compose environment. The dotenv file never overrides
// variables that are already exported.
func Init2Hook(rs *runstate.RunState, x *app.AppX) {
	if err := Compositor.LoadDotenv(config.DotenvName); err != nil {
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
	if err := Compositor.LoadEnv(); err != nil {
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
}

// Third stage: the yaml config. The --config flag wins over LUCI_IFCTL_CONFIG.
func Init3Hook(rs *runstate.RunState, x *app.AppX) {
	path := Compositor.CMDLine.Root.ConfigPath
	if path == "" {
		path = *Compositor.Env.ConfigPath
	}
	if err := Compositor.LoadConf(path); err != nil {
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
	if Compositor.CMDLine.Root.Debug {
		level := "debug"
		Compositor.Conf.Log.Level = &level
	}
}

// Fourth stage: structured logger, tagged with the run id.
func Init4Hook(rs *runstate.RunState, x *app.AppX) {
	rs.Stage = runstate.StageReady
	x.Log.SetPrefix(logs.SetGreen(fmt.Sprintf("(%s) ", rs.Stage)))

	newSlog, err := logs.SetupLogger(x.Config.Conf.Log)
	if err != nil {
		x.Log.Fatalf("Unexpected failure: %s", err.Error())
	}
	x.SLog = newSlog.With(slog.String("run-id", rs.RunID))

	if *x.Config.Conf.LuCI.ShowConfig {
		Compositor.Print(Compositor.Conf)
	}
}
