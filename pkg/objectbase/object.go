// Package objectbase implements the design tree: instances of
// classes described by metamodel.ObjectInfo holding textual
// property and event values and an ordered list of children.
package objectbase

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/formbuilder/pkg/metamodel"
)

const PROP_NAME = "name"

// Object is one node of the design tree. A parent exclusively owns
// its children; the parent link is a plain back reference.
type Object struct {
	info     *metamodel.ObjectInfo
	expanded bool

	properties []*Property
	propIndex  map[string]*Property
	events     []*Event
	eventIndex map[string]*Event

	parent   *Object
	children []*Object
}

// New creates an object without properties and events.
// Objects are typically created by the object database.
func New(info *metamodel.ObjectInfo) *Object {
	return &Object{
		info:       info,
		expanded:   true,
		propIndex:  map[string]*Property{},
		eventIndex: map[string]*Event{},
	}
}

func (o *Object) Info() *metamodel.ObjectInfo {
	return o.info
}

func (o *Object) ClassName() string {
	return o.info.ClassName()
}

func (o *Object) ObjectType() *metamodel.ObjectType {
	return o.info.ObjectType()
}

func (o *Object) ObjectTypeName() string {
	return o.info.ObjectTypeName()
}

func (o *Object) IsSubclassOf(class string) bool {
	return o.info.IsSubclassOf(class)
}

// IsItem reports whether the object is a transparent wrapper.
func (o *Object) IsItem() bool {
	t := o.info.ObjectType()
	return t != nil && t.IsItem()
}

func (o *Object) IsExpanded() bool {
	return o.expanded
}

func (o *Object) SetExpanded(b bool) {
	o.expanded = b
}

// Name returns the value of the name property, if present.
func (o *Object) Name() string {
	if p := o.propIndex[PROP_NAME]; p != nil {
		return p.Value()
	}
	return ""
}

func (o *Object) String() string {
	if n := o.Name(); n != "" {
		return fmt.Sprintf("%s(%s)", o.ClassName(), n)
	}
	return o.ClassName()
}

////////////////////////////////////////////////////////////////////////////////
// properties and events

// AddProperty attaches a property. A property with the same
// name already present is kept.
func (o *Object) AddProperty(p *Property) bool {
	if o.propIndex[p.Name()] != nil {
		return false
	}
	p.owner = o
	o.properties = append(o.properties, p)
	o.propIndex[p.Name()] = p
	return true
}

func (o *Object) AddEvent(e *Event) bool {
	if o.eventIndex[e.Name()] != nil {
		return false
	}
	e.owner = o
	o.events = append(o.events, e)
	o.eventIndex[e.Name()] = e
	return true
}

// Property returns the property with the given name or nil.
func (o *Object) Property(name string) *Property {
	return o.propIndex[name]
}

// PropertyValue returns the value of a property or an empty string.
func (o *Object) PropertyValue(name string) string {
	if p := o.propIndex[name]; p != nil {
		return p.Value()
	}
	return ""
}

func (o *Object) Properties() []*Property {
	return slices.Clone(o.properties)
}

func (o *Object) PropertyCount() int {
	return len(o.properties)
}

func (o *Object) Event(name string) *Event {
	return o.eventIndex[name]
}

func (o *Object) Events() []*Event {
	return slices.Clone(o.events)
}

////////////////////////////////////////////////////////////////////////////////
// children

func (o *Object) Parent() *Object {
	return o.parent
}

func (o *Object) ChildCount() int {
	return len(o.children)
}

// Child returns the child at position i or nil.
func (o *Object) Child(i int) *Object {
	if i < 0 || i >= len(o.children) {
		return nil
	}
	return o.children[i]
}

func (o *Object) Children() []*Object {
	return slices.Clone(o.children)
}

// AddChild appends a child and takes ownership.
func (o *Object) AddChild(c *Object) {
	c.parent = o
	o.children = append(o.children, c)
}

// InsertChild inserts a child at the given position. An out of range
// position appends the child.
func (o *Object) InsertChild(c *Object, pos int) {
	c.parent = o
	if pos < 0 || pos >= len(o.children) {
		o.children = append(o.children, c)
		return
	}
	o.children = slices.Insert(o.children, pos, c)
}

// RemoveChild detaches a child. The child's parent link is cleared.
func (o *Object) RemoveChild(c *Object) bool {
	i := o.ChildPosition(c)
	if i < 0 {
		return false
	}
	o.children = slices.Delete(o.children, i, i+1)
	c.parent = nil
	return true
}

func (o *Object) RemoveAllChildren() {
	for _, c := range o.children {
		c.parent = nil
	}
	o.children = nil
}

// ChildPosition returns the index of a child or -1.
func (o *Object) ChildPosition(c *Object) int {
	return slices.Index(o.children, c)
}

// ChangeChildPosition moves a child to a new position keeping
// the order of all other children.
func (o *Object) ChangeChildPosition(c *Object, pos int) bool {
	cur := o.ChildPosition(c)
	if cur < 0 || pos < 0 || pos >= len(o.children) {
		return false
	}
	if cur == pos {
		return true
	}
	o.children = slices.Delete(o.children, cur, cur+1)
	o.children = slices.Insert(o.children, pos, c)
	return true
}

////////////////////////////////////////////////////////////////////////////////
// navigation

func (o *Object) Root() *Object {
	r := o
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors.
func (o *Object) Depth() int {
	d := 0
	for p := o.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// FindNearAncestor returns the nearest strict ancestor of the given
// object type.
func (o *Object) FindNearAncestor(typ string) *Object {
	for p := o.parent; p != nil; p = p.parent {
		if p.ObjectTypeName() == typ {
			return p
		}
	}
	return nil
}

// FindNearAncestorByBaseClass returns the nearest strict ancestor
// whose class is or derives from the given class.
func (o *Object) FindNearAncestorByBaseClass(class string) *Object {
	for p := o.parent; p != nil; p = p.parent {
		if p.IsSubclassOf(class) {
			return p
		}
	}
	return nil
}

// FindParentForm returns the nearest strict ancestor which is a direct
// child of the tree root. Whether it is really a form is decided by
// the tree shape only.
func (o *Object) FindParentForm() *Object {
	for p := o.parent; p != nil; p = p.parent {
		if p.parent != nil && p.parent.parent == nil {
			return p
		}
	}
	return nil
}

// Form returns the object itself if it is a direct child of the root,
// otherwise its parent form.
func (o *Object) Form() *Object {
	if o.parent != nil && o.parent.parent == nil {
		return o
	}
	return o.FindParentForm()
}

// NonItemParent returns the parent skipping a transparent item wrapper.
func (o *Object) NonItemParent() *Object {
	p := o.parent
	if p != nil && p.IsItem() {
		return p.parent
	}
	return p
}

// NonItemChild returns the wrapped object for items, the object itself
// otherwise.
func (o *Object) NonItemChild() *Object {
	if o.IsItem() && len(o.children) > 0 {
		return o.children[0]
	}
	return o
}

// VisibleChildren returns the children as shown in a tree view, where
// item wrappers are replaced by their content.
func (o *Object) VisibleChildren() []*Object {
	r := make([]*Object, 0, len(o.children))
	for _, c := range o.children {
		if c.IsItem() {
			if c.ChildCount() > 0 {
				r = append(r, c.children[0])
			}
			continue
		}
		r = append(r, c)
	}
	return r
}

// Walk visits the object and all descendants depth first. If f returns
// false, the children of the visited object are skipped.
func (o *Object) Walk(f func(o *Object) bool) {
	if !f(o) {
		return
	}
	for _, c := range o.children {
		c.Walk(f)
	}
}

// IsAncestorOf reports whether o is a strict ancestor of c.
func (o *Object) IsAncestorOf(c *Object) bool {
	for p := c.parent; p != nil; p = p.parent {
		if p == o {
			return true
		}
	}
	return false
}
