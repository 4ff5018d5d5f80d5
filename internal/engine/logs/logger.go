// Package logs provides a logger setup function that configures the logger
// based on the tool configuration. It uses the standard library's slog
// package for structured logging.
package logs

import (
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/akyaiy/luci-ifctl/internal/engine/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

var GlobalLevel slog.Level

type levelsStruct struct {
	Available []string
	Fallback  string
}

var Levels = levelsStruct{
	Available: []string{
		"debug", "info",
	},
	Fallback: "info",
}

// SetupLogger initializes and returns a logger based on the provided
// log configuration. Output "%1%" and "%2%" select stdout and stderr,
// anything else is a file path handed to lumberjack.
func SetupLogger(o *config.Log) (*slog.Logger, error) {
	var handlerOpts = slog.HandlerOptions{}
	var writer io.Writer = os.Stderr

	level := *o.Level
	if !slices.Contains(Levels.Available, level) {
		level = Levels.Fallback
	}

	switch level {
	case "debug":
		GlobalLevel = slog.LevelDebug
		handlerOpts.Level = slog.LevelDebug
	default:
		GlobalLevel = slog.LevelInfo
		handlerOpts.Level = slog.LevelInfo
	}

	switch *o.OutPath {
	case "%1%":
		writer = os.Stdout
	case "%2%":
		writer = os.Stderr
	default:
		writer = &lumberjack.Logger{
			Filename:   *o.OutPath,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
	}

	if *o.JSON {
		return slog.New(slog.NewJSONHandler(writer, &handlerOpts)), nil
	}
	return slog.New(slog.NewTextHandler(writer, &handlerOpts)), nil
}
