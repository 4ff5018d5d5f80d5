package cmd

import (
	"fmt"

	"github.com/akyaiy/luci-ifctl/hooks"
	"github.com/akyaiy/luci-ifctl/internal/client/luci"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:     "set <if_name> <if_state>",
	Aliases: []string{"s"},
	Short:   "Set an interface to 0 (disabled) or 1 (enabled) and commit",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(2)(cmd, args); err != nil {
			return err
		}
		if args[1] != luci.StateDisabled && args[1] != luci.StateEnabled {
			return fmt.Errorf("if_state should be %s or %s, got %q", luci.StateDisabled, luci.StateEnabled, args[1])
		}
		return nil
	},
	Run: hooks.Set,
}

func init() {
	rootCmd.AddCommand(setCmd)
}
