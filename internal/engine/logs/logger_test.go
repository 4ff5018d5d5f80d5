package logs

import (
	"log/slog"
	"testing"

	"github.com/akyaiy/luci-ifctl/internal/engine/config"
)

func logConf(level, out string, jsonFmt bool) *config.Log {
	return &config.Log{JSON: &jsonFmt, Level: &level, OutPath: &out}
}

func TestFunc_SetupLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if _, err := SetupLogger(logConf(tt.level, "%2%", false)); err != nil {
				t.Fatalf("SetupLogger failed: %v", err)
			}
			if GlobalLevel != tt.want {
				t.Errorf("GlobalLevel = %v; want %v", GlobalLevel, tt.want)
			}
		})
	}
}

func TestFunc_SetupLogger_FileOutput(t *testing.T) {
	path := t.TempDir() + "/event.log"
	log, err := SetupLogger(logConf("info", path, true))
	if err != nil {
		t.Fatalf("SetupLogger failed: %v", err)
	}
	log.Info("hello")
}
