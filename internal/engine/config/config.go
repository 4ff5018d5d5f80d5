// Package config provides configuration management for the tool.
// Values are composed from three places: an optional dotenv file, the
// process environment and an optional yaml config, in that order.
package config

import (
	"time"
)

type CompositorContract interface {
	LoadDotenv(path string) error
	LoadEnv() error
	LoadConf(path string) error
}

type Compositor struct {
	CMDLine *CMDLine
	Conf    *Conf
	Env     *Env
}

type Conf struct {
	LuCI    *LuCI    `mapstructure:"luci"`
	Log     *Log     `mapstructure:"log"`
	History *History `mapstructure:"history"`
}

type LuCI struct {
	AuthTimeout *time.Duration `mapstructure:"auth_timeout"`
	CallTimeout *time.Duration `mapstructure:"call_timeout"`
	SettleDelay *time.Duration `mapstructure:"settle_delay"`
	ShowConfig  *bool          `mapstructure:"show_config"`
}

type Log struct {
	JSON    *bool   `mapstructure:"json_format"`
	Level   *string `mapstructure:"level"`
	OutPath *string `mapstructure:"output"`
}

type History struct {
	Enabled *bool   `mapstructure:"enabled"`
	Path    *string `mapstructure:"path"`
}

// Env structure for environment variables. The LuCI_* trio keeps the exact
// mixed-case names the router tooling has always used.
type Env struct {
	User       *string `mapstructure:"user"`
	Pass       *string `mapstructure:"pass"`
	Host       *string `mapstructure:"host"`
	ConfigPath *string `mapstructure:"config_path"`
}

type CMDLine struct {
	Root    Root
	Set     Set
	Get     Get
	History HistoryCmd
}

type Root struct {
	Debug      bool   `persistent:"true" full:"debug" short:"d" def:"false" desc:"Set debug mode"`
	ConfigPath string `persistent:"true" full:"config" short:"c" def:"" desc:"Path to configuration file"`
}

type Set struct {
	NoWait bool   `full:"no-wait" def:"false" desc:"Skip the settle delay before reading the state back"`
	Wait   string `full:"wait" short:"w" def:"" desc:"Override the settle delay (e.g. 5s)"`
}

type Get struct{}

type HistoryCmd struct {
	Limit int `full:"limit" short:"n" def:"10" desc:"Number of recent runs to show"`
}
