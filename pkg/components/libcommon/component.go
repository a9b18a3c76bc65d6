package libcommon

import (
	"strings"

	"github.com/mandelsoft/formbuilder/pkg/components"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/utils"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

// mapping describes the XRC rendition of a single property.
type mapping struct {
	property string
	xrc      string
	export   func(o *objectbase.Object, v string) string
	imp      func(e *xmltree.Element, v string) []field
}

type field struct {
	name  string
	value string
}

func prop(name string, xrc ...string) mapping {
	return mapping{property: name, xrc: utils.OptionalDefaulted(name, xrc...)}
}

// component maps a designer class to an XRC class using a property
// table.
type component struct {
	class       string
	xrcClass    string
	transparent bool
	mappings    []mapping
}

var _ components.Component = (*component)(nil)

func newComponent(class, xrcClass string, mappings ...mapping) *component {
	return &component{class: class, xrcClass: xrcClass, mappings: mappings}
}

func (c *component) XrcClass() string {
	if c.transparent {
		return ""
	}
	return c.xrcClass
}

func (c *component) OnCreated(obj *objectbase.Object) {
	log.Trace("created {{object}}", "object", obj.String())
}

func (c *component) ExportToXrc(obj *objectbase.Object) *xmltree.Element {
	if c.transparent {
		return nil
	}
	e := xmltree.NewElement("object", "class", c.xrcClass)
	if n := obj.Name(); n != "" {
		e.SetAttr("name", n)
	}
	for _, m := range c.mappings {
		p := obj.Property(m.property)
		if p == nil {
			continue
		}
		v := p.Value()
		if m.export != nil {
			v = m.export(obj, v)
		}
		if v == "" {
			continue
		}
		if m.xrc == "content" {
			content := xmltree.NewElement("content")
			for _, s := range objectbase.ParseStringList(v) {
				content.AddChild(xmltree.NewTextElement("item", s))
			}
			e.AddChild(content)
			continue
		}
		e.AddChild(xmltree.NewTextElement(m.xrc, v))
	}
	return e
}

func (c *component) ImportFromXrc(elem *xmltree.Element) *xmltree.Element {
	o := xmltree.NewElement(objectbase.TAG_OBJECT, objectbase.ATTR_CLASS, c.class)
	if n, ok := elem.Attr("name"); ok {
		o.AddChild(xmltree.NewTextElement(objectbase.TAG_PROPERTY, n, objectbase.ATTR_NAME, objectbase.PROP_NAME))
	}
	for _, m := range c.mappings {
		x := elem.FirstChild(m.xrc)
		if x == nil {
			continue
		}
		v := x.Value()
		if m.xrc == "content" {
			v = objectbase.FormatStringList(utils.TransformSlice(x.ChildrenNamed("item"), (*xmltree.Element).Value))
		}
		fields := []field{{m.property, v}}
		if m.imp != nil {
			fields = m.imp(x, v)
		}
		for _, f := range fields {
			o.AddChild(xmltree.NewTextElement(objectbase.TAG_PROPERTY, f.value, objectbase.ATTR_NAME, f.name))
		}
	}
	return o
}

////////////////////////////////////////////////////////////////////////////////
// special property conversions

// mergedStyle exports style and window_style as one XRC style.
func mergedStyle() mapping {
	return mapping{
		property: "style",
		xrc:      "style",
		export: func(o *objectbase.Object, v string) string {
			flags := utils.SplitTrim(v, "|")
			flags = utils.AppendUnique(flags, utils.SplitTrim(o.PropertyValue("window_style"), "|")...)
			return strings.Join(flags, "|")
		},
	}
}

func windowStyle() mapping {
	return mapping{
		property: "window_style",
		xrc:      "style",
		export: func(o *objectbase.Object, v string) string {
			if o.Property("style") != nil {
				return ""
			}
			return v
		},
	}
}

// pair maps two numeric properties to one XRC value "a,b".
func pair(xrc, first, second string) mapping {
	return mapping{
		property: first,
		xrc:      xrc,
		export: func(o *objectbase.Object, v string) string {
			return v + "," + o.PropertyValue(second)
		},
		imp: func(e *xmltree.Element, v string) []field {
			a, b, _ := strings.Cut(v, ",")
			return []field{{first, strings.TrimSpace(a)}, {second, strings.TrimSpace(b)}}
		},
	}
}

// option maps a designer option value to an XRC value.
func option(name, xrc string, values map[string]string) mapping {
	reverse := map[string]string{}
	for k, v := range values {
		reverse[v] = k
	}
	return mapping{
		property: name,
		xrc:      xrc,
		export: func(o *objectbase.Object, v string) string {
			return values[v]
		},
		imp: func(e *xmltree.Element, v string) []field {
			return []field{{name, reverse[v]}}
		},
	}
}

// centered exports the center option as XRC boolean.
func centered() mapping {
	return mapping{
		property: "center",
		xrc:      "centered",
		export: func(o *objectbase.Object, v string) string {
			if v == "" {
				return ""
			}
			return "1"
		},
		imp: func(e *xmltree.Element, v string) []field {
			if v == "1" {
				return []field{{"center", "wxBOTH"}}
			}
			return []field{{"center", ""}}
		},
	}
}

// bitmap exports the path of a bitmap reference.
func bitmap(name string) mapping {
	return mapping{
		property: name,
		xrc:      name,
		export: func(o *objectbase.Object, v string) string {
			return objectbase.ParseBitmap(v).Path
		},
		imp: func(e *xmltree.Element, v string) []field {
			return []field{{name, objectbase.Bitmap{Source: objectbase.BITMAP_SOURCE_FILE, Path: v}.String()}}
		},
	}
}
