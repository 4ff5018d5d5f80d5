package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/akyaiy/luci-ifctl/hooks"
	"github.com/akyaiy/luci-ifctl/internal/core/runstate"
	"github.com/akyaiy/luci-ifctl/internal/engine/config"
	"github.com/akyaiy/luci-ifctl/internal/engine/logs"
	"github.com/spf13/cobra"
)

var compositor *config.Compositor = hooks.Compositor

var rootCmd = &cobra.Command{
	Use:   "luci-ifctl",
	Short: "Toggle router interfaces over the LuCI json-rpc endpoint",
	Long: `luci-ifctl logs in to a router's LuCI json-rpc endpoint, flips a named
network interface on or off, commits the change and reports the state it
reads back. Credentials come from LuCI_USER, LuCI_PASS and LuCI_HOST.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	log.SetOutput(os.Stderr)
	log.SetPrefix(logs.SetBrightBlack(fmt.Sprintf("(%s) ", runstate.StageNotReady)))
	log.SetFlags(log.Ldate | log.Ltime)
	compositor.LoadCMDLine(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the usage message to stderr
		os.Exit(config.ExitUsage)
	}
}
