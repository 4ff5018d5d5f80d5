package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

func NewCompositor() *Compositor {
	return &Compositor{}
}

// LoadDotenv reads KEY=VALUE pairs from a local dotenv file and exports the
// ones the environment does not already define. A missing file is fine.
func (c *Compositor) LoadDotenv(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading dotenv: %w", err)
	}

	for _, key := range f.Section(ini.DefaultSection).Keys() {
		if _, set := os.LookupEnv(key.Name()); set {
			continue
		}
		if err := os.Setenv(key.Name(), key.Value()); err != nil {
			return fmt.Errorf("error exporting %s: %w", key.Name(), err)
		}
	}
	return nil
}

func (c *Compositor) LoadEnv() error {
	v := viper.New()

	// defaults; viper only unmarshals bound env keys it already knows about
	v.SetDefault("config_path", "./cfg/config.yaml")
	v.SetDefault("user", "")
	v.SetDefault("pass", "")
	v.SetDefault("host", "")

	// the credential names are case-sensitive on purpose
	_ = v.BindEnv("user", "LuCI_USER")
	_ = v.BindEnv("pass", "LuCI_PASS")
	_ = v.BindEnv("host", "LuCI_HOST")
	_ = v.BindEnv("config_path", "LUCI_IFCTL_CONFIG")

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return fmt.Errorf("error unmarshaling env: %w", err)
	}

	c.Env = &env
	return nil
}

// Require checks that the credential trio is present before any network
// activity is attempted.
func (c *Compositor) Require() error {
	if c.Env == nil || c.Env.User == nil || *c.Env.User == "" ||
		c.Env.Pass == nil || *c.Env.Pass == "" ||
		c.Env.Host == nil || *c.Env.Host == "" {
		return errors.New("failed to parse ENV data, please specify LuCI username, password and host")
	}
	return nil
}

func (c *Compositor) LoadConf(path string) error {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// defaults
	v.SetDefault("luci.auth_timeout", "4s")
	v.SetDefault("luci.call_timeout", "10s")
	v.SetDefault("luci.settle_delay", "2s")
	v.SetDefault("luci.show_config", false)
	v.SetDefault("log.json_format", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "%2%")
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", MetaDir+"/history.db")

	if err := v.ReadInConfig(); err != nil {
		// the config file is optional, defaults cover a missing one
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Conf
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	c.Conf = &cfg
	return nil
}

func (c *Compositor) LoadCMDLine(root *cobra.Command) {
	cmdLine := &CMDLine{}
	c.CMDLine = cmdLine

	t := reflect.TypeOf(cmdLine).Elem()
	v := reflect.ValueOf(cmdLine).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)
		ptr := fieldVal.Addr().Interface()
		use := strings.ToLower(field.Name)

		cmd := root
		if use != "root" {
			cmd = nil
			for _, sub := range root.Commands() {
				if sub.Use == use || strings.HasPrefix(sub.Use, use+" ") {
					cmd = sub
					break
				}
			}
		}

		if cmd == nil {
			continue
		}

		Unmarshal(cmd, ptr)
	}
}

func Unmarshal(cmd *cobra.Command, target any) {
	t := reflect.TypeOf(target).Elem()
	v := reflect.ValueOf(target).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		valPtr := v.Field(i).Addr().Interface()

		full := field.Tag.Get("full")
		short := field.Tag.Get("short")
		def := field.Tag.Get("def")
		desc := field.Tag.Get("desc")
		isPersistent := field.Tag.Get("persistent") == "true"

		flagSet := cmd.Flags()
		if isPersistent {
			flagSet = cmd.PersistentFlags()
		}

		switch field.Type.Kind() {
		case reflect.String:
			flagSet.StringVarP(valPtr.(*string), full, short, def, desc)

		case reflect.Bool:
			defVal, err := strconv.ParseBool(def)
			if err != nil && def != "" {
				fmt.Printf("warning: cannot parse default bool: %q\n", def)
			}
			flagSet.BoolVarP(valPtr.(*bool), full, short, defVal, desc)

		case reflect.Int:
			defVal, err := strconv.Atoi(def)
			if err != nil && def != "" {
				fmt.Printf("warning: cannot parse default int: %q\n", def)
			}
			flagSet.IntVarP(valPtr.(*int), full, short, defVal, desc)
		}
	}
}
