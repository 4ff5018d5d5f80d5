package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFunc_LoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "LuCI_USER=root\nLuCI_PASS=secret\nLuCI_HOST=http://192.168.1.1/cgi-bin/luci/rpc\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, k := range []string{"LuCI_USER", "LuCI_PASS", "LuCI_HOST"} {
		os.Unsetenv(k)
		defer os.Unsetenv(k)
	}
	// an already exported variable must win over the dotenv file
	t.Setenv("LuCI_USER", "admin")

	c := NewCompositor()
	if err := c.LoadDotenv(path); err != nil {
		t.Fatalf("LoadDotenv failed: %v", err)
	}

	if got := os.Getenv("LuCI_USER"); got != "admin" {
		t.Errorf("LuCI_USER = %q; want the pre-existing value kept", got)
	}
	if got := os.Getenv("LuCI_PASS"); got != "secret" {
		t.Errorf("LuCI_PASS = %q; want %q", got, "secret")
	}
}

func TestFunc_LoadDotenv_MissingFile(t *testing.T) {
	c := NewCompositor()
	if err := c.LoadDotenv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("a missing dotenv file should not be an error, got %v", err)
	}
}

func TestFunc_LoadEnvAndRequire(t *testing.T) {
	t.Setenv("LuCI_USER", "root")
	t.Setenv("LuCI_PASS", "secret")
	t.Setenv("LuCI_HOST", "http://192.168.1.1/cgi-bin/luci/rpc")

	c := NewCompositor()
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if err := c.Require(); err != nil {
		t.Fatalf("Require failed with the full trio set: %v", err)
	}
	if *c.Env.Host != "http://192.168.1.1/cgi-bin/luci/rpc" {
		t.Errorf("host = %q; want the bound env value", *c.Env.Host)
	}
}

func TestFunc_Require_MissingCredentials(t *testing.T) {
	t.Setenv("LuCI_USER", "root")
	t.Setenv("LuCI_PASS", "")
	t.Setenv("LuCI_HOST", "")

	c := NewCompositor()
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if err := c.Require(); err == nil {
		t.Error("Require passed with an incomplete credential trio")
	}
}

func TestFunc_LoadConf_Defaults(t *testing.T) {
	c := NewCompositor()
	if err := c.LoadConf(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("LoadConf with a missing file failed: %v", err)
	}

	if c.Conf.LuCI.AuthTimeout.String() != "4s" {
		t.Errorf("auth_timeout = %s; want 4s", c.Conf.LuCI.AuthTimeout)
	}
	if c.Conf.LuCI.SettleDelay.String() != "2s" {
		t.Errorf("settle_delay = %s; want 2s", c.Conf.LuCI.SettleDelay)
	}
	if *c.Conf.Log.Level != "info" {
		t.Errorf("log level = %q; want info", *c.Conf.Log.Level)
	}
	if *c.Conf.History.Enabled {
		t.Error("history should be disabled by default")
	}
}

func TestFunc_LoadConf_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "luci:\n  settle_delay: 5s\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c := NewCompositor()
	if err := c.LoadConf(path); err != nil {
		t.Fatalf("LoadConf failed: %v", err)
	}
	if c.Conf.LuCI.SettleDelay.String() != "5s" {
		t.Errorf("settle_delay = %s; want the file value 5s", c.Conf.LuCI.SettleDelay)
	}
	if *c.Conf.Log.Level != "debug" {
		t.Errorf("log level = %q; want debug", *c.Conf.Log.Level)
	}
	// untouched keys keep their defaults
	if c.Conf.LuCI.AuthTimeout.String() != "4s" {
		t.Errorf("auth_timeout = %s; want the default 4s", c.Conf.LuCI.AuthTimeout)
	}
}
