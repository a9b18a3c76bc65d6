package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/formbuilder/pkg/project"
)

type Convert struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
}

func NewConvert(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <project> <options>",
		Short: "convert a project to the current file format",
	}
	TweakCommand(cmd)

	c := &Convert{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output file (default: overwrite the project)")
	return cmd
}

func (c *Convert) Run(args []string) error {
	if err := requireArgs(args, 1, "project file"); err != nil {
		return err
	}
	d, err := c.mainopts.Designer(args[0])
	if err != nil {
		return err
	}
	if !d.IsModified() && c.output == "" {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s is up to date\n", args[0])
		return nil
	}
	err = d.SaveProject(c.output)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s written with file format %s\n", d.ProjectFile(), project.CurrentVersion())
	return nil
}
