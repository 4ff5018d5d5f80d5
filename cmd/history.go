package cmd

import (
	"github.com/akyaiy/luci-ifctl/hooks"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Show recent interface toggles recorded locally",
	Args:    cobra.NoArgs,
	Run:     hooks.History,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
