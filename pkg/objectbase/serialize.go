package objectbase

import (
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

const (
	TAG_OBJECT   = "object"
	TAG_PROPERTY = "property"
	TAG_EVENT    = "event"

	ATTR_CLASS    = "class"
	ATTR_NAME     = "name"
	ATTR_EXPANDED = "expanded"
)

// Serialize converts an object tree into an XML element tree.
// Properties holding their default value and unassigned events
// are omitted.
func Serialize(o *Object) *xmltree.Element {
	e := xmltree.NewElement(TAG_OBJECT, ATTR_CLASS, o.ClassName(), ATTR_EXPANDED, FormatBool(o.expanded))
	for _, p := range o.properties {
		if p.IsDefault() {
			continue
		}
		e.AddChild(xmltree.NewTextElement(TAG_PROPERTY, p.Value(), ATTR_NAME, p.Name()))
	}
	for _, ev := range o.events {
		if ev.Value() == "" {
			continue
		}
		e.AddChild(xmltree.NewTextElement(TAG_EVENT, ev.Value(), ATTR_NAME, ev.Name()))
	}
	for _, c := range o.children {
		e.AddChild(Serialize(c))
	}
	return e
}
