package app

import (
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
)

type XRC struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
}

func NewXRC(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xrc <project> <options>",
		Short: "export the forms of a project as XRC resource",
	}
	TweakCommand(cmd)

	c := &XRC{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func (c *XRC) Run(args []string) error {
	if err := requireArgs(args, 1, "project file"); err != nil {
		return err
	}
	d, err := c.mainopts.Designer(args[0])
	if err != nil {
		return err
	}
	data, err := d.ExportXRC()
	if err != nil {
		return err
	}
	if c.output == "" {
		_, err = c.cmd.OutOrStdout().Write(data)
		return err
	}
	return vfs.WriteFile(c.mainopts.fs, c.output, data, 0o644)
}
