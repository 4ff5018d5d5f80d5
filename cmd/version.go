package cmd

import (
	"fmt"
	"runtime"

	"github.com/akyaiy/luci-ifctl/internal/engine/config"
	"github.com/spf13/cobra"
)

var verCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"ver", "v"},
	Short:   "Return tool version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("luci-ifctl: %s\n", config.ToolVersion)
		fmt.Printf("Go version: %s\n", runtime.Version())
		fmt.Printf("Go OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(verCmd)
}
