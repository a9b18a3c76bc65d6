// Package libcommon is the component library for the bundled
// plugin packages.
package libcommon

import (
	"github.com/mandelsoft/formbuilder/pkg/components"
)

const NAME = "libcommon"

func init() {
	components.RegisterLibrary(New())
}

var window = []mapping{
	prop("pos"),
	prop("size"),
	prop("minimum_size", "minsize"),
	prop("font"),
	prop("fg"),
	prop("bg"),
	prop("tooltip"),
	prop("enabled"),
	prop("hidden"),
}

func widget(class, xrcClass string, mappings ...mapping) *component {
	return newComponent(class, xrcClass, append(mappings, window...)...)
}

var splitModes = map[string]string{
	"wxSPLIT_VERTICAL":   "vertical",
	"wxSPLIT_HORIZONTAL": "horizontal",
}

// New creates the library instance.
func New() components.Library {
	list := []*component{
		widget("Frame", "wxFrame", prop("title"), mergedStyle(), centered()),
		widget("Panel", "wxPanel", windowStyle()),
		widget("Dialog", "wxDialog", prop("title"), mergedStyle(), centered()),

		newComponent("wxBoxSizer", "wxBoxSizer", prop("orient"), prop("minimum_size", "minsize")),
		newComponent("wxStaticBoxSizer", "wxStaticBoxSizer", prop("orient"), prop("label"), prop("minimum_size", "minsize")),
		newComponent("wxGridSizer", "wxGridSizer", prop("rows"), prop("cols"), prop("vgap"), prop("hgap")),
		newComponent("wxFlexGridSizer", "wxFlexGridSizer", prop("rows"), prop("cols"), prop("vgap"), prop("hgap"),
			prop("growablecols"), prop("growablerows")),
		newComponent("wxGridBagSizer", "wxGridBagSizer", prop("vgap"), prop("hgap"),
			prop("growablecols"), prop("growablerows"), prop("empty_cell_size", "empty_cellsize")),
		newComponent("spacer", "spacer", pair("size", "width", "height")),
		newComponent("sizeritem", "sizeritem", prop("proportion", "option"), prop("flag"), prop("border")),
		newComponent("gbsizeritem", "gbsizeritem", prop("flag"), prop("border"),
			pair("cellpos", "row", "column"), pair("cellspan", "rowspan", "colspan")),

		widget("wxButton", "wxButton", prop("label"), prop("default"), bitmap("bitmap"), mergedStyle()),
		widget("wxStaticText", "wxStaticText", prop("label"), prop("wrap"), mergedStyle()),
		widget("wxTextCtrl", "wxTextCtrl", prop("value"), prop("maxlength"), mergedStyle()),
		widget("wxCheckBox", "wxCheckBox", prop("label"), prop("checked"), mergedStyle()),
		widget("wxChoice", "wxChoice", prop("choices", "content"), prop("selection"), mergedStyle()),
		widget("wxStaticLine", "wxStaticLine", mergedStyle()),
		widget("wxStaticBitmap", "wxStaticBitmap", bitmap("bitmap"), windowStyle()),
		widget("wxStatusBar", "wxStatusBar", prop("fields"), mergedStyle()),
		newComponent("wxMenuBar", "wxMenuBar", prop("style")),
		newComponent("wxMenu", "wxMenu", prop("label")),
		newComponent("submenu", "wxMenu", prop("label")),
		newComponent("wxMenuItem", "wxMenuItem", prop("label"), prop("help"), bitmap("bitmap"), prop("checked"), prop("enabled")),
		widget("wxToolBar", "wxToolBar", prop("bitmapsize"), prop("margins"), prop("packing"), prop("separation"), mergedStyle()),
		newComponent("tool", "tool", prop("label"), bitmap("bitmap"), prop("tooltip"), prop("statusbar", "longhelp")),

		widget("wxPanel", "wxPanel", windowStyle()),
		widget("wxScrolledWindow", "wxScrolledWindow", windowStyle()),
		widget("wxCollapsiblePane", "wxCollapsiblePane", prop("label"), prop("collapsed"), windowStyle()),
		widget("wxNotebook", "wxNotebook", mergedStyle()),
		newComponent("notebookpage", "notebookpage", prop("label"), prop("select", "selected"), bitmap("bitmap")),
		widget("wxSplitterWindow", "wxSplitterWindow", mergedStyle(), option("splitmode", "orientation", splitModes),
			prop("sashpos"), prop("sashgravity", "gravity"), prop("min_pane_size", "minsize")),
		{class: "splitteritem", transparent: true},
		widget("wxAuiNotebook", "wxAuiNotebook", windowStyle()),
	}

	m := map[string]components.Component{}
	for _, c := range list {
		m[c.class] = c
	}
	return components.NewLibrary(NAME, m)
}
