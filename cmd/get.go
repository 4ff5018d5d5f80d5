package cmd

import (
	"github.com/akyaiy/luci-ifctl/hooks"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:     "get <if_name>",
	Aliases: []string{"g"},
	Short:   "Read an interface section back without changing it",
	Args:    cobra.ExactArgs(1),
	Run:     hooks.Get,
}

func init() {
	rootCmd.AddCommand(getCmd)
}
