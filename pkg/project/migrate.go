package project

import (
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/utils"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

// flagRename describes an obsolete flag of a bitlist property dropped
// or replaced up to a file version.
type flagRename struct {
	before   *semver.Version
	property string
	old      string
	new      string
}

var obsoleteFlags = []flagRename{
	{FileVersion(1, 7), "flag", "wxADJUST_MINSIZE", ""},
	{FileVersion(1, 9), "style", "wxTHICK_FRAME", "wxRESIZE_BORDER"},
	{FileVersion(1, 10), "window_style", "wxNO_3D", ""},
	{FileVersion(1, 10), "window_style", "wxSIMPLE_BORDER", "wxBORDER_SIMPLE"},
	{FileVersion(1, 10), "window_style", "wxSUNKEN_BORDER", "wxBORDER_SUNKEN"},
	{FileVersion(1, 10), "window_style", "wxRAISED_BORDER", "wxBORDER_RAISED"},
	{FileVersion(1, 10), "window_style", "wxNO_BORDER", "wxBORDER_NONE"},
	{FileVersion(1, 12), "window_style", "wxDOUBLE_BORDER", ""},
}

// classes whose wxTAB_TRAVERSAL style moved to the window style
var panelClasses = []string{"wxPanel", "Panel"}

// Migrate converts a serialized object tree written with the given
// file version to the current format. The database is used to find
// bitmap properties and may be nil. The result reports whether
// anything has been changed.
func Migrate(db *database.ObjectDatabase, elem *xmltree.Element, from *semver.Version) bool {
	if !from.LessThan(CurrentVersion()) {
		return false
	}
	m := &migration{db: db, from: from}
	m.convert(elem)
	return m.changed
}

type migration struct {
	db      *database.ObjectDatabase
	from    *semver.Version
	changed bool
}

func (m *migration) before(major, minor int) bool {
	return m.from.LessThan(FileVersion(major, minor))
}

func (m *migration) convert(elem *xmltree.Element) {
	for _, c := range elem.ChildrenNamed(objectbase.TAG_OBJECT) {
		m.convert(c)
	}

	class := elem.AttrDefault(objectbase.ATTR_CLASS, "")

	if m.before(1, 3) {
		if class == "sizeritem" || class == "gbsizeritem" {
			if p := property(elem, "option"); p != nil {
				log.Debug("renaming option to proportion for {{class}}", "class", class)
				p.SetAttr(objectbase.ATTR_NAME, "proportion")
				m.changed = true
			}
		}
		if old := property(elem, "flags"); old != nil {
			flags := utils.SplitTrim(old.Value(), "|")
			if p := property(elem, "flag"); p != nil {
				p.Text = strings.Join(utils.AppendUnique(utils.SplitTrim(p.Value(), "|"), flags...), "|")
				elem.RemoveChild(old)
			} else {
				old.SetAttr(objectbase.ATTR_NAME, "flag")
				old.Text = strings.Join(flags, "|")
			}
			m.changed = true
		}
	}

	if m.before(1, 4) {
		for _, p := range elem.ChildrenNamed(objectbase.TAG_PROPERTY) {
			if !m.isBitmap(class, p.AttrDefault(objectbase.ATTR_NAME, "")) {
				continue
			}
			if v, ok := convertBitmap(p.Value()); ok {
				p.Text = v
				m.changed = true
			}
		}
	}

	if m.before(1, 5) && slices.Contains(panelClasses, class) {
		if p := property(elem, "style"); p != nil {
			flags := utils.SplitTrim(p.Value(), "|")
			if slices.Contains(flags, "wxTAB_TRAVERSAL") {
				flags = removeFlag(flags, "wxTAB_TRAVERSAL")
				ws := property(elem, "window_style")
				if ws == nil {
					ws = xmltree.NewElement(objectbase.TAG_PROPERTY, objectbase.ATTR_NAME, "window_style")
					elem.InsertChild(elem.ChildIndex(p)+1, ws)
				}
				ws.Text = strings.Join(utils.AppendUnique(utils.SplitTrim(ws.Value(), "|"), "wxTAB_TRAVERSAL"), "|")
				if len(flags) == 0 {
					elem.RemoveChild(p)
				} else {
					p.Text = strings.Join(flags, "|")
				}
				m.changed = true
			}
		}
	}

	for _, r := range obsoleteFlags {
		if !m.from.LessThan(r.before) {
			continue
		}
		p := property(elem, r.property)
		if p == nil {
			continue
		}
		flags := utils.SplitTrim(p.Value(), "|")
		if !slices.Contains(flags, r.old) {
			continue
		}
		flags = removeFlag(flags, r.old)
		if r.new != "" {
			flags = utils.AppendUnique(flags, r.new)
		}
		log.Debug("replacing obsolete flag {{flag}} of {{class}}", "flag", r.old, "class", class)
		p.Text = strings.Join(flags, "|")
		m.changed = true
	}
}

func (m *migration) isBitmap(class, name string) bool {
	if m.db == nil {
		return name == "bitmap"
	}
	info := m.db.GetObjectInfo(class)
	if info == nil {
		return false
	}
	p := findPropertyInfo(info, name)
	return p != nil && p.Type() == metamodel.PT_BITMAP
}

func findPropertyInfo(info *metamodel.ObjectInfo, name string) *metamodel.PropertyInfo {
	if p := info.PropertyInfo(name); p != nil {
		return p
	}
	for _, b := range info.BaseClasses() {
		if p := findPropertyInfo(b, name); p != nil {
			return p
		}
	}
	return nil
}

// convertBitmap converts the old "path" and "path; source" bitmap
// notations to "source; path".
func convertBitmap(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	first, second, ok := strings.Cut(v, ";")
	if !ok {
		return objectbase.Bitmap{Source: objectbase.BITMAP_SOURCE_FILE, Path: v}.String(), true
	}
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)
	if strings.HasPrefix(second, "Load From") && !strings.HasPrefix(first, "Load From") {
		return objectbase.Bitmap{Source: second, Path: first}.String(), true
	}
	return v, false
}

func property(elem *xmltree.Element, name string) *xmltree.Element {
	return elem.ChildWithAttr(objectbase.TAG_PROPERTY, objectbase.ATTR_NAME, name)
}

func removeFlag(flags []string, flag string) []string {
	return slices.DeleteFunc(flags, func(f string) bool { return f == flag })
}
