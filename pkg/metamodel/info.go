package metamodel

import (
	"slices"
)

// Option is a named value of an enumeration like property.
type Option struct {
	Name        string
	Description string
}

// PropertyChild describes one field of a composite (parent) property.
type PropertyChild struct {
	Name         string
	Type         PropertyType
	DefaultValue string
	Description  string
}

// PropertyInfo is the immutable descriptor of a class property.
type PropertyInfo struct {
	name         string
	typ          PropertyType
	defaultValue string
	description  string
	customEditor string
	hidden       bool
	options      []Option
	children     []PropertyChild
}

func NewPropertyInfo(name string, typ PropertyType, def, desc string, options []Option, children []PropertyChild) *PropertyInfo {
	return &PropertyInfo{
		name:         name,
		typ:          typ,
		defaultValue: def,
		description:  desc,
		options:      slices.Clone(options),
		children:     slices.Clone(children),
	}
}

func (p *PropertyInfo) Name() string {
	return p.name
}

func (p *PropertyInfo) Type() PropertyType {
	return p.typ
}

func (p *PropertyInfo) DefaultValue() string {
	return p.defaultValue
}

func (p *PropertyInfo) Description() string {
	return p.description
}

func (p *PropertyInfo) CustomEditor() string {
	return p.customEditor
}

func (p *PropertyInfo) IsHidden() bool {
	return p.hidden
}

func (p *PropertyInfo) WithEditor(editor string, hidden bool) *PropertyInfo {
	p.customEditor = editor
	p.hidden = hidden
	return p
}

func (p *PropertyInfo) Options() []Option {
	return slices.Clone(p.options)
}

// HasOption reports whether name is one of the declared options.
func (p *PropertyInfo) HasOption(name string) bool {
	return slices.ContainsFunc(p.options, func(o Option) bool { return o.Name == name })
}

func (p *PropertyInfo) Children() []PropertyChild {
	return slices.Clone(p.children)
}

// ChildIndex returns the position of a named field of a parent property.
func (p *PropertyInfo) ChildIndex(name string) int {
	return slices.IndexFunc(p.children, func(c PropertyChild) bool { return c.Name == name })
}

////////////////////////////////////////////////////////////////////////////////

// EventInfo is the immutable descriptor of a class event.
type EventInfo struct {
	name         string
	eventClass   string
	defaultValue string
	description  string
}

func NewEventInfo(name, eventClass, def, desc string) *EventInfo {
	return &EventInfo{
		name:         name,
		eventClass:   eventClass,
		defaultValue: def,
		description:  desc,
	}
}

func (e *EventInfo) Name() string {
	return e.name
}

func (e *EventInfo) EventClass() string {
	return e.eventClass
}

func (e *EventInfo) DefaultValue() string {
	return e.defaultValue
}

func (e *EventInfo) Description() string {
	return e.description
}

////////////////////////////////////////////////////////////////////////////////

// Category groups property and event names for presentation.
type Category struct {
	name       string
	properties []string
	events     []string
	categories []*Category
}

func NewCategory(name string) *Category {
	return &Category{name: name}
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) AddProperty(name string) {
	c.properties = append(c.properties, name)
}

func (c *Category) AddEvent(name string) {
	c.events = append(c.events, name)
}

func (c *Category) AddCategory(sub *Category) {
	c.categories = append(c.categories, sub)
}

func (c *Category) Properties() []string {
	return slices.Clone(c.properties)
}

func (c *Category) Events() []string {
	return slices.Clone(c.events)
}

func (c *Category) Categories() []*Category {
	return slices.Clone(c.categories)
}

// Find returns the category (this one or a nested one) with the given name.
func (c *Category) Find(name string) *Category {
	if c.name == name {
		return c
	}
	for _, s := range c.categories {
		if f := s.Find(name); f != nil {
			return f
		}
	}
	return nil
}
