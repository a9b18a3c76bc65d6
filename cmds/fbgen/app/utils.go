package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TweakCommand adds the common settings of all sub commands.
func TweakCommand(cmd *cobra.Command) {
	cmd.DisableFlagsInUseLine = true
	cmd.SilenceUsage = true
}

func requireArgs(args []string, n int, what string) error {
	if len(args) != n {
		return fmt.Errorf("%s expected", what)
	}
	return nil
}
