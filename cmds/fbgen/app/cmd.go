package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/projectionfs"
	"github.com/mandelsoft/vfs/pkg/readonlyfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/designer"
	"github.com/mandelsoft/formbuilder/pkg/utils"
	"github.com/mandelsoft/formbuilder/resources"
)

type Options struct {
	fs             vfs.FileSystem
	resources      string
	toolkitVersion string
	languages      []string
	logLevel       string

	db *database.ObjectDatabase
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs:       utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
		logLevel: "warn",
	}
	cfg := GetConfig(opts.fs)
	if cfg.Resources != nil {
		opts.resources = *cfg.Resources
	}
	if cfg.ToolkitVersion != nil {
		opts.toolkitVersion = *cfg.ToolkitVersion
	}
	if cfg.LogLevel != nil {
		opts.logLevel = *cfg.LogLevel
	}
	opts.languages = cfg.Languages

	maincmd := &cobra.Command{
		Use:   "fbgen <options> <cmd> <args>",
		Short: "process form builder projects",
		Long: `
This command reads form builder project files and generates
source code or XRC resources for the designed forms.
`,
		Run:              nil,
		TraverseChildren: true,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}
	maincmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return opts.setLogLevel()
	}

	opts.AddFlags(maincmd.PersistentFlags())

	maincmd.AddCommand(NewGenerate(opts))
	maincmd.AddCommand(NewDump(opts))
	maincmd.AddCommand(NewConvert(opts))
	maincmd.AddCommand(NewClasses(opts))
	maincmd.AddCommand(NewXRC(opts))
	return maincmd
}

// AddFlags adds the global options.
func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.resources, "resources", "r", o.resources, "resource directory with object types and plugins")
	flags.StringVarP(&o.toolkitVersion, "toolkit-version", "t", o.toolkitVersion, "targeted toolkit version")
	flags.StringVarP(&o.logLevel, "log-level", "L", o.logLevel, "log level")
}

func (o *Options) setLogLevel() error {
	l, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", o.logLevel)
	}
	logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("formbuilder")))
	return nil
}

// resourceFileSystem returns the configured resource directory or the
// built-in resources.
func (o *Options) resourceFileSystem() (vfs.FileSystem, error) {
	if o.resources == "" {
		return resources.FileSystem(), nil
	}
	fs, err := projectionfs.New(o.fs, o.resources)
	if err != nil {
		return nil, fmt.Errorf("resources %q: %w", o.resources, err)
	}
	return readonlyfs.New(fs), nil
}

// Database loads the object database once.
func (o *Options) Database() (*database.ObjectDatabase, error) {
	if o.db != nil {
		return o.db, nil
	}
	fs, err := o.resourceFileSystem()
	if err != nil {
		return nil, err
	}
	db, err := database.New(database.Options{FileSystem: fs, ToolkitVersion: o.toolkitVersion})
	if err != nil {
		return nil, err
	}
	err = db.LoadPlugins("/")
	if err != nil {
		return nil, err
	}
	o.db = db
	return db, nil
}

// Designer creates a designer with a loaded project.
func (o *Options) Designer(file string) (*designer.Designer, error) {
	db, err := o.Database()
	if err != nil {
		return nil, err
	}
	d, err := designer.New(db, o.fs)
	if err != nil {
		return nil, err
	}
	err = d.LoadProject(file)
	if err != nil {
		return nil, err
	}
	return d, nil
}
