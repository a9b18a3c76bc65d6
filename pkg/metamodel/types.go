package metamodel

import (
	"fmt"
	"io"
	"slices"

	"github.com/mandelsoft/formbuilder/pkg/utils"
)

// Child type limits.
const (
	UNLIMITED = -1
	FORBIDDEN = 0
)

// ObjectType is a named kind of objects (form, sizer, widget, ...)
// constraining which kinds of objects may be placed below it.
type ObjectType struct {
	id     int
	name   string
	hidden bool
	item   bool

	children []*childType
}

type childType struct {
	typ    *ObjectType
	max    int
	auiMax int
}

func NewObjectType(id int, name string, hidden, item bool) *ObjectType {
	return &ObjectType{
		id:     id,
		name:   name,
		hidden: hidden,
		item:   item,
	}
}

func (t *ObjectType) Id() int {
	return t.id
}

func (t *ObjectType) Name() string {
	return t.name
}

func (t *ObjectType) IsHidden() bool {
	return t.hidden
}

// IsItem reports whether objects of this type are transparent
// wrappers (for example sizer items) holding exactly one object.
func (t *ObjectType) IsItem() bool {
	return t.item
}

func (t *ObjectType) String() string {
	return t.name
}

// AddChildType registers an allowed child type with its maximum count
// for standard and AUI managed parents. A repeated registration
// replaces the limits.
func (t *ObjectType) AddChildType(c *ObjectType, max, auiMax int) {
	for _, e := range t.children {
		if e.typ == c {
			e.max = max
			e.auiMax = auiMax
			return
		}
	}
	t.children = append(t.children, &childType{typ: c, max: max, auiMax: auiMax})
}

// FindChildType returns the maximum number of children of the given type.
// UNLIMITED (-1) means no limit, FORBIDDEN (0) means the type is not allowed.
func (t *ObjectType) FindChildType(c *ObjectType, aui bool) int {
	for _, e := range t.children {
		if e.typ == c {
			if aui {
				return e.auiMax
			}
			return e.max
		}
	}
	return FORBIDDEN
}

// ChildTypes returns the registered child types in declaration order.
func (t *ObjectType) ChildTypes() []*ObjectType {
	return utils.TransformSlice(t.children, func(c *childType) *ObjectType { return c.typ })
}

////////////////////////////////////////////////////////////////////////////////

// Registry is the set of object types known to the designer.
// It is populated once and read-only afterwards.
type Registry struct {
	types map[string]*ObjectType
	order []*ObjectType
}

func NewRegistry() *Registry {
	return &Registry{types: map[string]*ObjectType{}}
}

// Define adds a new type. An existing type with the same name is returned
// unchanged.
func (r *Registry) Define(name string, hidden, item bool) *ObjectType {
	if t := r.types[name]; t != nil {
		return t
	}
	t := NewObjectType(len(r.order), name, hidden, item)
	r.types[name] = t
	r.order = append(r.order, t)
	return t
}

func (r *Registry) GetObjectType(name string) *ObjectType {
	return r.types[name]
}

// Types returns all types in definition order.
func (r *Registry) Types() []*ObjectType {
	return slices.Clone(r.order)
}

func (r *Registry) TypeNames() []string {
	return utils.OrderedMapKeys(r.types)
}

func (r *Registry) Dump(w io.Writer) {
	for _, t := range r.order {
		flags := ""
		if t.hidden {
			flags += " hidden"
		}
		if t.item {
			flags += " item"
		}
		fmt.Fprintf(w, "- %s%s\n", t.name, flags)
		for _, c := range t.children {
			fmt.Fprintf(w, "  - %s (%d/%d)\n", c.typ.name, c.max, c.auiMax)
		}
	}
}
