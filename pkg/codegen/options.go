package codegen

import (
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
)

// Project properties evaluated by the code generator.
const (
	PROP_CODE_GENERATION    = "code_generation"
	PROP_INTERNATIONALIZE   = "internationalize"
	PROP_RELATIVE_PATH      = "relative_path"
	PROP_INDENT_WITH_SPACES = "indent_with_spaces"
	PROP_UI_TABLE           = "ui_table"
	PROP_FILE               = "file"
	PROP_PATH               = "path"
)

// Options control the formatting of generated code.
type Options struct {
	// I18n wraps translatable strings.
	I18n bool
	// RelativePath keeps file paths relative, otherwise they
	// are prefixed by BasePath.
	RelativePath bool
	BasePath     string
	// IndentWithSpaces uses four spaces per level instead of a tab.
	IndentWithSpaces bool
	// UITable is the Lua table holding the generated objects.
	UITable string
}

// OptionsFromProject reads the options from the project settings.
func OptionsFromProject(project *objectbase.Object) Options {
	opts := Options{RelativePath: true}
	if project == nil {
		return opts
	}
	get := func(name string) *objectbase.Property { return project.Property(name) }
	if p := get(PROP_INTERNATIONALIZE); p != nil {
		opts.I18n = p.AsBool()
	}
	if p := get(PROP_RELATIVE_PATH); p != nil {
		opts.RelativePath = p.AsBool()
	}
	if p := get(PROP_INDENT_WITH_SPACES); p != nil {
		opts.IndentWithSpaces = p.AsBool()
	}
	if p := get(PROP_UI_TABLE); p != nil {
		opts.UITable = p.Value()
	}
	return opts
}

func (o Options) uiTable() string {
	if o.UITable == "" {
		return "UI"
	}
	return o.UITable
}
