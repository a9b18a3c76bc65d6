package database

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

// classes only allowed below frames
var frameOnlyTypes = []string{"menubar", "statusbar", "ribbonbar", "toolbar"}

// object types getting proportion 1 and wxEXPAND|wxALL in a sizer item
var expandingTypes = []string{
	"notebook", "flatnotebook", "listbook", "simplebook", "choicebook", "auinotebook",
	"treelistctrl", "expanded_widget", "container",
}

// CreateObject creates an object of the given class suitable to be
// inserted below parent. The object is not linked to parent.
//
// If the class cannot be placed directly below the parent, but into an
// item wrapper accepted by the parent, the item is created with the
// object as its child and the item is returned.
//
// A nil object without error is returned if there is no legal
// placement. An unknown class is reported as ErrUnknownClass.
func (d *ObjectDatabase) CreateObject(s *Session, class string, parent *objectbase.Object) (*objectbase.Object, error) {
	info := d.classes[class]
	if info == nil {
		return nil, &UnknownClassError{Class: class}
	}
	if parent == nil {
		return d.NewObject(s, info), nil
	}

	objType := info.ObjectType()
	parentType := parent.ObjectType()

	aui := false
	if parentType.Name() == TYPE_FORM {
		aui = parent.Property("aui_managed") != nil && parent.Property("aui_managed").AsBool()
	}

	if slices.Contains(frameOnlyTypes, objType.Name()) && parentType.Name() == TYPE_FORM && parent.ClassName() != CLASS_FRAME {
		log.Debug("{{type}} objects are only allowed in frames", "type", objType.Name())
		return nil, nil
	}

	if objType.Name() == "menu" && parent.ClassName() == "tool" {
		if gp := parent.Parent(); gp != nil && gp.ClassName() == "wxToolBar" {
			log.Debug("dropdown menus are not supported for tools of a wxToolBar")
			return nil, nil
		}
	}

	max := parentType.FindChildType(objType, aui)
	if max != metamodel.FORBIDDEN {
		if max > 0 && countChildrenOfType(parent, objType) >= max {
			return nil, nil
		}
		return d.NewObject(s, info), nil
	}

	// try an item wrapper accepted by the parent
	for _, itemType := range parentType.ChildTypes() {
		if !itemType.IsItem() {
			continue
		}
		if itemType.FindChildType(objType, aui) == metamodel.FORBIDDEN {
			continue
		}
		imax := parentType.FindChildType(itemType, aui)
		if imax > 0 && countChildrenOfType(parent, itemType) >= imax {
			continue
		}
		itemInfo := d.classes[itemType.Name()]
		if itemInfo == nil {
			log.Error("no class for item type {{type}}", "type", itemType.Name())
			continue
		}
		item := d.NewObject(s, itemInfo)
		obj := d.NewObject(s, info)
		item.AddChild(obj)
		if itemInfo.IsSubclassOf(CLASS_SIZERITEMBASE) {
			SetDefaultLayoutProperties(item)
		}
		return item, nil
	}
	return nil, nil
}

// countChildrenOfType counts the children of the given type. Sizers and
// grid bag sizers are counted as one family.
func countChildrenOfType(parent *objectbase.Object, t *metamodel.ObjectType) int {
	sizer := t.Name() == TYPE_SIZER || t.Name() == TYPE_GBSIZER
	count := 0
	for _, c := range parent.Children() {
		n := c.ObjectTypeName()
		if n == t.Name() || (sizer && (n == TYPE_SIZER || n == TYPE_GBSIZER)) {
			count++
		}
	}
	return count
}

// NewObject creates an object with all properties and events of the
// class and its base classes. Properties found first win, default
// values overridden by a class are applied for its base classes.
// Objects with a name property get a session wide unique number
// appended.
func (d *ObjectDatabase) NewObject(s *Session, info *metamodel.ObjectInfo) *objectbase.Object {
	obj := objectbase.New(info)

	for _, p := range info.Properties() {
		obj.AddProperty(objectbase.NewProperty(p, p.DefaultValue()))
	}
	for _, e := range info.Events() {
		obj.AddEvent(objectbase.NewEvent(e))
	}

	for i, base := range info.BaseClasses() {
		d.addBaseMembers(obj, info, i, base)
	}

	if p := obj.Property(objectbase.PROP_NAME); p != nil {
		p.SetValue(fmt.Sprintf("%s%d", p.Value(), s.NextInstance(info.ClassName())))
	}

	if c := d.components[info.ClassName()]; c != nil {
		c.OnCreated(obj)
	}
	return obj
}

// addBaseMembers adds the properties and events of a base class.
// Overrides are taken from the class referencing the base.
func (d *ObjectDatabase) addBaseMembers(obj *objectbase.Object, info *metamodel.ObjectInfo, idx int, base *metamodel.ObjectInfo) {
	for _, p := range base.Properties() {
		def, ok := info.BaseClassDefaultPropertyValue(idx, p.Name())
		if !ok {
			def = p.DefaultValue()
		}
		obj.AddProperty(objectbase.NewProperty(p, def))
	}
	for _, e := range base.Events() {
		obj.AddEvent(objectbase.NewEvent(e))
	}
	for i, b := range base.BaseClasses() {
		d.addBaseMembers(obj, base, i, b)
	}
}

// SetDefaultLayoutProperties initializes the layout properties of
// a sizer item according to the wrapped object.
func SetDefaultLayoutProperties(item *objectbase.Object) {
	if item.ChildCount() == 0 {
		return
	}
	child := item.Child(0)
	proportion := item.Property("proportion")
	flag := item.Property("flag")

	set := func(p string, f string) {
		if proportion != nil && p != "" {
			proportion.SetValue(p)
		}
		if flag != nil {
			flag.SetValue(f)
		}
	}

	typ := child.ObjectTypeName()
	class := child.ClassName()
	switch {
	case child.IsSubclassOf("sizer"), child.IsSubclassOf("gbsizer"), typ == TYPE_SIZER, typ == TYPE_GBSIZER, typ == "splitter", class == "spacer":
		set("1", "wxEXPAND")
	case class == "wxStaticLine":
		set("", "wxEXPAND | wxALL")
	case class == "wxToolBar":
		set("", "wxEXPAND")
	case typ == "widget", typ == "statusbar":
		set("0", "wxALL")
	case slices.Contains(expandingTypes, typ):
		set("1", "wxEXPAND | wxALL")
	}
}

// CopyObject creates a deep copy of an object tree. Every copied
// object is a new instance of its class, the property and event values
// including the names are taken from the original. The copy is not
// linked to any parent.
func (d *ObjectDatabase) CopyObject(s *Session, obj *objectbase.Object) *objectbase.Object {
	c := d.NewObject(s, obj.Info())
	for _, p := range obj.Properties() {
		if cp := c.Property(p.Name()); cp != nil {
			cp.SetValue(p.Value())
		}
	}
	for _, e := range obj.Events() {
		if ce := c.Event(e.Name()); ce != nil {
			ce.SetValue(e.Value())
		}
	}
	c.SetExpanded(obj.IsExpanded())
	for _, child := range obj.Children() {
		c.AddChild(d.CopyObject(s, child))
	}
	return c
}

// CreateObjectFromXML creates an object tree from a serialized
// object element and links it to parent. Properties not found in
// the element keep their class defaults. Like CreateObject it
// returns the item wrapper if one has been required.
func (d *ObjectDatabase) CreateObjectFromXML(s *Session, elem *xmltree.Element, parent *objectbase.Object) (*objectbase.Object, error) {
	class, ok := elem.Attr(objectbase.ATTR_CLASS)
	if !ok {
		return nil, fmt.Errorf("object element without class")
	}
	created, err := d.CreateObject(s, class, parent)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}
	obj := created
	if created.ClassName() != class && created.ChildCount() > 0 {
		// the object has been wrapped by an item
		obj = created.Child(0)
	}

	obj.SetExpanded(elem.BoolAttr(objectbase.ATTR_EXPANDED, true))

	for _, p := range obj.Properties() {
		p.ResetDefault()
	}
	for _, pe := range elem.ChildrenNamed(objectbase.TAG_PROPERTY) {
		name := pe.AttrDefault(objectbase.ATTR_NAME, "")
		p := obj.Property(name)
		if p == nil {
			if strings.TrimSpace(pe.Value()) != "" {
				log.Warn("property {{property}} of class {{class}} not supported by this version: {{value}} will be ignored. If you save this project, YOU WILL LOSE DATA",
					"property", name, "class", class, "value", pe.Value())
			}
			continue
		}
		p.SetValue(pe.Value())
	}
	for _, ee := range elem.ChildrenNamed(objectbase.TAG_EVENT) {
		name := ee.AttrDefault(objectbase.ATTR_NAME, "")
		e := obj.Event(name)
		if e == nil {
			if strings.TrimSpace(ee.Value()) != "" {
				log.Warn("event {{event}} of class {{class}} not supported by this version: handler {{value}} will be ignored. If you save this project, YOU WILL LOSE DATA",
					"event", name, "class", class, "value", ee.Value())
			}
			continue
		}
		e.SetValue(ee.Value())
	}

	if parent != nil {
		parent.AddChild(created)
	}

	for _, ce := range elem.ChildrenNamed(objectbase.TAG_OBJECT) {
		c, err := d.CreateObjectFromXML(s, ce, obj)
		if err != nil {
			return nil, err
		}
		if c == nil {
			log.Error("cannot place {{class}} below {{parent}}", "class", ce.AttrDefault(objectbase.ATTR_CLASS, ""), "parent", obj.String())
		}
	}
	return created, nil
}
