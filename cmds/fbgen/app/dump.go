package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/formbuilder/pkg/objectbase"
)

type Dump struct {
	cmd *cobra.Command

	mainopts *Options
	all      bool
}

func NewDump(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <project> <options>",
		Short: "show the object tree of a project",
	}
	TweakCommand(cmd)

	c := &Dump{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.all, "all", "a", false, "show default property values, too")
	return cmd
}

func (c *Dump) Run(args []string) error {
	if err := requireArgs(args, 1, "project file"); err != nil {
		return err
	}
	d, err := c.mainopts.Designer(args[0])
	if err != nil {
		return err
	}
	DumpObject(c.cmd.OutOrStdout(), d.Project(), c.all)
	return nil
}

// DumpObject prints an object tree with one line per object followed
// by its property values.
func DumpObject(w io.Writer, obj *objectbase.Object, all bool) {
	dumpObject(w, obj, all, 0)
}

func dumpObject(w io.Writer, obj *objectbase.Object, all bool, level int) {
	gap := strings.Repeat("  ", level)
	if n := obj.Name(); n != "" {
		fmt.Fprintf(w, "%s%s %q\n", gap, obj.ClassName(), n)
	} else {
		fmt.Fprintf(w, "%s%s\n", gap, obj.ClassName())
	}
	for _, p := range obj.Properties() {
		if p.Name() == objectbase.PROP_NAME || (!all && p.IsDefault()) {
			continue
		}
		fmt.Fprintf(w, "%s  - %s: %s\n", gap, p.Name(), p.Value())
	}
	for _, e := range obj.Events() {
		if e.Value() != "" {
			fmt.Fprintf(w, "%s  - %s -> %s\n", gap, e.Name(), e.Value())
		}
	}
	for _, c := range obj.Children() {
		dumpObject(w, c, all, level+1)
	}
}
