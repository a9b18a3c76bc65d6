// Package command provides reversible edits of the design tree and a
// processor keeping them on undo and redo stacks.
package command

import (
	"fmt"

	"github.com/mandelsoft/formbuilder/pkg/objectbase"
)

// Command is a single reversible tree edit. Restore must exactly
// revert the effect of a preceding Execute.
type Command interface {
	Execute()
	Restore()
	String() string
}

////////////////////////////////////////////////////////////////////////////////

// InsertObject adds an object to a parent. A negative position
// appends it.
type InsertObject struct {
	parent *objectbase.Object
	object *objectbase.Object
	pos    int
}

var _ Command = (*InsertObject)(nil)

func NewInsertObject(parent, obj *objectbase.Object, pos int) *InsertObject {
	return &InsertObject{parent: parent, object: obj, pos: pos}
}

func (c *InsertObject) Object() *objectbase.Object {
	return c.object
}

func (c *InsertObject) Execute() {
	c.parent.InsertChild(c.object, c.pos)
}

func (c *InsertObject) Restore() {
	c.parent.RemoveChild(c.object)
}

func (c *InsertObject) String() string {
	return fmt.Sprintf("insert %s into %s", c.object, c.parent)
}

////////////////////////////////////////////////////////////////////////////////

// RemoveObject detaches an object from its parent. The detached subtree
// is owned by the command until it is restored.
type RemoveObject struct {
	parent *objectbase.Object
	object *objectbase.Object
	pos    int
}

var _ Command = (*RemoveObject)(nil)

func NewRemoveObject(obj *objectbase.Object) *RemoveObject {
	c := &RemoveObject{object: obj, parent: obj.Parent(), pos: -1}
	if c.parent != nil {
		c.pos = c.parent.ChildPosition(obj)
	}
	return c
}

func (c *RemoveObject) Execute() {
	if c.parent != nil {
		c.parent.RemoveChild(c.object)
	}
}

func (c *RemoveObject) Restore() {
	if c.parent != nil {
		c.parent.InsertChild(c.object, c.pos)
	}
}

func (c *RemoveObject) String() string {
	return fmt.Sprintf("remove %s from %s", c.object, c.parent)
}

////////////////////////////////////////////////////////////////////////////////

// ReparentObject moves an object to the end of a new parent.
type ReparentObject struct {
	object    *objectbase.Object
	oldParent *objectbase.Object
	oldPos    int
	newParent *objectbase.Object
}

var _ Command = (*ReparentObject)(nil)

func NewReparentObject(obj, parent *objectbase.Object) *ReparentObject {
	c := &ReparentObject{object: obj, oldParent: obj.Parent(), oldPos: -1, newParent: parent}
	if c.oldParent != nil {
		c.oldPos = c.oldParent.ChildPosition(obj)
	}
	return c
}

func (c *ReparentObject) Execute() {
	if c.oldParent != nil {
		c.oldParent.RemoveChild(c.object)
	}
	c.newParent.AddChild(c.object)
}

func (c *ReparentObject) Restore() {
	c.newParent.RemoveChild(c.object)
	if c.oldParent != nil {
		c.oldParent.InsertChild(c.object, c.oldPos)
	}
}

func (c *ReparentObject) String() string {
	return fmt.Sprintf("reparent %s from %s to %s", c.object, c.oldParent, c.newParent)
}

////////////////////////////////////////////////////////////////////////////////

// ModifyProperty sets a property value remembering the previous one.
type ModifyProperty struct {
	property *objectbase.Property
	oldValue string
	newValue string
}

var _ Command = (*ModifyProperty)(nil)

func NewModifyProperty(prop *objectbase.Property, value string) *ModifyProperty {
	return &ModifyProperty{property: prop, oldValue: prop.Value(), newValue: value}
}

func (c *ModifyProperty) Property() *objectbase.Property {
	return c.property
}

func (c *ModifyProperty) Execute() {
	c.property.SetValue(c.newValue)
}

func (c *ModifyProperty) Restore() {
	c.property.SetValue(c.oldValue)
}

func (c *ModifyProperty) String() string {
	return fmt.Sprintf("modify property %s of %s", c.property.Name(), c.property.Object())
}

////////////////////////////////////////////////////////////////////////////////

type ModifyEvent struct {
	event    *objectbase.Event
	oldValue string
	newValue string
}

var _ Command = (*ModifyEvent)(nil)

func NewModifyEvent(evt *objectbase.Event, value string) *ModifyEvent {
	return &ModifyEvent{event: evt, oldValue: evt.Value(), newValue: value}
}

func (c *ModifyEvent) Event() *objectbase.Event {
	return c.event
}

func (c *ModifyEvent) Execute() {
	c.event.SetValue(c.newValue)
}

func (c *ModifyEvent) Restore() {
	c.event.SetValue(c.oldValue)
}

func (c *ModifyEvent) String() string {
	return fmt.Sprintf("modify event %s of %s", c.event.Name(), c.event.Object())
}

////////////////////////////////////////////////////////////////////////////////

// ShiftChild moves an object to another position among its siblings.
type ShiftChild struct {
	object *objectbase.Object
	oldPos int
	newPos int
}

var _ Command = (*ShiftChild)(nil)

func NewShiftChild(obj *objectbase.Object, pos int) *ShiftChild {
	c := &ShiftChild{object: obj, oldPos: -1, newPos: pos}
	if p := obj.Parent(); p != nil {
		c.oldPos = p.ChildPosition(obj)
	}
	return c
}

func (c *ShiftChild) Execute() {
	if p := c.object.Parent(); p != nil && c.oldPos >= 0 {
		p.ChangeChildPosition(c.object, c.newPos)
	}
}

func (c *ShiftChild) Restore() {
	if p := c.object.Parent(); p != nil && c.oldPos >= 0 {
		p.ChangeChildPosition(c.object, c.oldPos)
	}
}

func (c *ShiftChild) String() string {
	return fmt.Sprintf("shift %s from %d to %d", c.object, c.oldPos, c.newPos)
}

////////////////////////////////////////////////////////////////////////////////

type ExpandObject struct {
	object   *objectbase.Object
	oldValue bool
	newValue bool
}

var _ Command = (*ExpandObject)(nil)

func NewExpandObject(obj *objectbase.Object, expand bool) *ExpandObject {
	return &ExpandObject{object: obj, oldValue: obj.IsExpanded(), newValue: expand}
}

func (c *ExpandObject) Execute() {
	c.object.SetExpanded(c.newValue)
}

func (c *ExpandObject) Restore() {
	c.object.SetExpanded(c.oldValue)
}

func (c *ExpandObject) String() string {
	return fmt.Sprintf("expand %s: %t", c.object, c.newValue)
}

////////////////////////////////////////////////////////////////////////////////

// Group executes a sequence of commands as a single undo step.
// Restore reverts them in reverse order.
type Group struct {
	name     string
	commands []Command
}

var _ Command = (*Group)(nil)

func NewGroup(name string, cmds ...Command) *Group {
	return &Group{name: name, commands: cmds}
}

func (c *Group) Add(cmds ...Command) {
	c.commands = append(c.commands, cmds...)
}

func (c *Group) Len() int {
	return len(c.commands)
}

func (c *Group) Execute() {
	for _, e := range c.commands {
		e.Execute()
	}
}

func (c *Group) Restore() {
	for i := len(c.commands) - 1; i >= 0; i-- {
		c.commands[i].Restore()
	}
}

func (c *Group) String() string {
	return c.name
}
