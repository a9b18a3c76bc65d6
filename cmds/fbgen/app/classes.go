package app

import (
	"github.com/spf13/cobra"
)

func NewClasses(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "list the packages and classes of the object database",
	}
	TweakCommand(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		db, err := opts.Database()
		if err != nil {
			return err
		}
		db.Dump(cmd.OutOrStdout())
		return nil
	}
	return cmd
}
