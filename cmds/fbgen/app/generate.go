package app

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
)

type Generate struct {
	cmd *cobra.Command

	mainopts  *Options
	languages []string
	output    string
}

func NewGenerate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <project> <options>",
		Short: "generate code for a project",
		Long: `
Generates the code for all forms of a project. Without explicit
languages the languages configured for the project are used.
`,
	}
	TweakCommand(cmd)

	c := &Generate{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringSliceVarP(&c.languages, "languages", "l", nil, "languages to generate code for (cpp, python, php, lua)")
	flags.StringVarP(&c.output, "output", "o", "", "output directory (default: directory of the project)")
	return cmd
}

func (c *Generate) Run(args []string) error {
	if err := requireArgs(args, 1, "project file"); err != nil {
		return err
	}
	d, err := c.mainopts.Designer(args[0])
	if err != nil {
		return err
	}

	langs := c.languages
	if len(langs) == 0 {
		langs = c.mainopts.languages
	}
	dir := c.output
	if dir == "" {
		dir = path.Dir(args[0])
	}

	written, err := d.WriteCode(dir, langs...)
	for _, f := range written {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", f)
	}
	if err != nil {
		return err
	}
	if len(written) == 0 {
		fmt.Fprintf(c.cmd.OutOrStdout(), "no code generated\n")
	}
	return nil
}
