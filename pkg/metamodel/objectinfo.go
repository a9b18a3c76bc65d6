package metamodel

import (
	"fmt"
	"io"
	"slices"

	"github.com/mandelsoft/formbuilder/pkg/utils"
)

// Package is a named group of classes provided by one plugin
// descriptor file.
type Package struct {
	name        string
	description string
	icon        string
	library     string
	objects     []*ObjectInfo
}

func NewPackage(name, desc, icon, lib string) *Package {
	return &Package{name: name, description: desc, icon: icon, library: lib}
}

func (p *Package) Name() string {
	return p.name
}

func (p *Package) Description() string {
	return p.description
}

func (p *Package) Icon() string {
	return p.icon
}

// Library is the name of the component library backing the classes.
func (p *Package) Library() string {
	return p.library
}

// Add adds a class to the palette of the package.
func (p *Package) Add(o *ObjectInfo) {
	p.objects = append(p.objects, o)
}

// Objects returns the palette classes.
func (p *Package) Objects() []*ObjectInfo {
	return slices.Clone(p.objects)
}

////////////////////////////////////////////////////////////////////////////////

type baseClass struct {
	info     *ObjectInfo
	defaults map[string]string
}

// ObjectInfo is the descriptor of a class. It is created while loading
// plugin descriptors and shared by all instances of the class.
type ObjectInfo struct {
	class      string
	typ        *ObjectType
	pkg        *Package
	startGroup bool
	icon       string
	smallIcon  string

	properties []*PropertyInfo
	propIndex  map[string]*PropertyInfo
	events     []*EventInfo
	eventIndex map[string]*EventInfo
	category   *Category

	bases []*baseClass
	codes map[string]*CodeInfo
}

func NewObjectInfo(class string, typ *ObjectType, pkg *Package, startGroup bool) *ObjectInfo {
	return &ObjectInfo{
		class:      class,
		typ:        typ,
		pkg:        pkg,
		startGroup: startGroup,
		propIndex:  map[string]*PropertyInfo{},
		eventIndex: map[string]*EventInfo{},
		category:   NewCategory(class),
		codes:      map[string]*CodeInfo{},
	}
}

func (o *ObjectInfo) ClassName() string {
	return o.class
}

func (o *ObjectInfo) ObjectType() *ObjectType {
	return o.typ
}

func (o *ObjectInfo) ObjectTypeName() string {
	if o.typ == nil {
		return ""
	}
	return o.typ.Name()
}

func (o *ObjectInfo) Package() *Package {
	return o.pkg
}

func (o *ObjectInfo) StartGroup() bool {
	return o.startGroup
}

func (o *ObjectInfo) SetIcons(icon, small string) {
	o.icon = icon
	o.smallIcon = small
}

func (o *ObjectInfo) Icon() string {
	return o.icon
}

func (o *ObjectInfo) SmallIcon() string {
	return o.smallIcon
}

func (o *ObjectInfo) Category() *Category {
	return o.category
}

// AddPropertyInfo adds a property descriptor. A second descriptor
// with the same name is ignored.
func (o *ObjectInfo) AddPropertyInfo(p *PropertyInfo) bool {
	if o.propIndex[p.Name()] != nil {
		return false
	}
	o.propIndex[p.Name()] = p
	o.properties = append(o.properties, p)
	return true
}

func (o *ObjectInfo) AddEventInfo(e *EventInfo) bool {
	if o.eventIndex[e.Name()] != nil {
		return false
	}
	o.eventIndex[e.Name()] = e
	o.events = append(o.events, e)
	return true
}

// PropertyInfo returns an own property descriptor of the class.
func (o *ObjectInfo) PropertyInfo(name string) *PropertyInfo {
	return o.propIndex[name]
}

func (o *ObjectInfo) EventInfo(name string) *EventInfo {
	return o.eventIndex[name]
}

// Properties returns the own property descriptors in declaration order.
func (o *ObjectInfo) Properties() []*PropertyInfo {
	return slices.Clone(o.properties)
}

func (o *ObjectInfo) Events() []*EventInfo {
	return slices.Clone(o.events)
}

// PropertyTypes returns the distinct types of the own properties.
func (o *ObjectInfo) PropertyTypes() []PropertyType {
	var r []PropertyType
	for _, p := range o.properties {
		r = utils.AppendUnique(r, p.Type())
	}
	return r
}

// AddBaseClass adds a base class and returns its index.
func (o *ObjectInfo) AddBaseClass(base *ObjectInfo) int {
	o.bases = append(o.bases, &baseClass{info: base, defaults: map[string]string{}})
	return len(o.bases) - 1
}

// AddBaseClassDefaultPropertyValue overrides the default value of
// a property inherited from the base class with the given index.
func (o *ObjectInfo) AddBaseClassDefaultPropertyValue(base int, prop, value string) error {
	if base < 0 || base >= len(o.bases) {
		return fmt.Errorf("invalid base class index %d for class %q", base, o.class)
	}
	o.bases[base].defaults[prop] = value
	return nil
}

// BaseClassDefaultPropertyValue returns the override for a property
// of the base class with the given index.
func (o *ObjectInfo) BaseClassDefaultPropertyValue(base int, prop string) (string, bool) {
	if base < 0 || base >= len(o.bases) {
		return "", false
	}
	v, ok := o.bases[base].defaults[prop]
	return v, ok
}

func (o *ObjectInfo) BaseClassCount() int {
	return len(o.bases)
}

func (o *ObjectInfo) BaseClass(i int) *ObjectInfo {
	if i < 0 || i >= len(o.bases) {
		return nil
	}
	return o.bases[i].info
}

func (o *ObjectInfo) BaseClasses() []*ObjectInfo {
	return utils.TransformSlice(o.bases, func(b *baseClass) *ObjectInfo { return b.info })
}

// IsSubclassOf checks the class and, recursively, all its base classes.
func (o *ObjectInfo) IsSubclassOf(class string) bool {
	if o.class == class {
		return true
	}
	for _, b := range o.bases {
		if b.info.IsSubclassOf(class) {
			return true
		}
	}
	return false
}

// AddCodeInfo adds code templates for a language. Templates already
// present for the class are kept.
func (o *ObjectInfo) AddCodeInfo(lang string, ci *CodeInfo) {
	if c := o.codes[lang]; c != nil {
		c.Merge(ci)
		return
	}
	o.codes[lang] = ci.Clone()
}

func (o *ObjectInfo) CodeInfo(lang string) *CodeInfo {
	return o.codes[lang]
}

func (o *ObjectInfo) Languages() []string {
	return utils.OrderedMapKeys(o.codes)
}

func (o *ObjectInfo) Dump(w io.Writer) {
	fmt.Fprintf(w, "%s (%s)\n", o.class, o.ObjectTypeName())
	for i, b := range o.bases {
		fmt.Fprintf(w, "  base %s\n", b.info.class)
		for _, k := range utils.OrderedMapKeys(o.bases[i].defaults) {
			fmt.Fprintf(w, "    %s=%q\n", k, o.bases[i].defaults[k])
		}
	}
	for _, p := range o.properties {
		fmt.Fprintf(w, "  property %s: %s = %q\n", p.Name(), p.Type(), p.DefaultValue())
	}
	for _, e := range o.events {
		fmt.Fprintf(w, "  event %s: %s\n", e.Name(), e.EventClass())
	}
}

////////////////////////////////////////////////////////////////////////////////

// CodeInfo is a bundle of named code templates for one language.
type CodeInfo struct {
	templates map[string]string
}

func NewCodeInfo() *CodeInfo {
	return &CodeInfo{templates: map[string]string{}}
}

// AddTemplate adds a template. It returns false if a template with this
// name already exists, which is kept.
func (c *CodeInfo) AddTemplate(name, text string) bool {
	if _, ok := c.templates[name]; ok {
		return false
	}
	c.templates[name] = text
	return true
}

// Template returns the named template or an empty string.
func (c *CodeInfo) Template(name string) string {
	if c == nil {
		return ""
	}
	return c.templates[name]
}

func (c *CodeInfo) HasTemplate(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.templates[name]
	return ok
}

func (c *CodeInfo) Names() []string {
	return utils.OrderedMapKeys(c.templates)
}

// Merge adds all templates of another bundle not yet present.
func (c *CodeInfo) Merge(o *CodeInfo) {
	for n, t := range o.templates {
		c.AddTemplate(n, t)
	}
}

func (c *CodeInfo) Clone() *CodeInfo {
	n := NewCodeInfo()
	n.Merge(c)
	return n
}
