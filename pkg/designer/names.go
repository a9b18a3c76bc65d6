package designer

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/formbuilder/pkg/objectbase"
)

// nameScope returns the object whose subtree defines the names an
// object must not collide with: its form, or the project for forms.
func (d *Designer) nameScope(obj *objectbase.Object) *objectbase.Object {
	if top := obj.FindParentForm(); top != nil {
		return top
	}
	return d.project
}

// nameSet collects the names of all objects below top except obj.
func nameSet(obj, top *objectbase.Object) sets.Set[string] {
	names := sets.New[string]()
	top.Walk(func(o *objectbase.Object) bool {
		if o != obj {
			if p := o.Property(objectbase.PROP_NAME); p != nil {
				names.Insert(p.Value())
			}
		}
		return true
	})
	return names
}

// uniqueName appends the lowest positive number making the name unique.
func uniqueName(name string, names sets.Set[string]) string {
	unique := name
	for i := 1; names.Has(unique); i++ {
		unique = fmt.Sprintf("%s%d", name, i)
	}
	return unique
}

// ResolveNameConflict renames an object linked into the project if its
// name is already used by another object of its form. Item wrappers
// are resolved to the wrapped object.
func (d *Designer) ResolveNameConflict(obj *objectbase.Object) {
	obj = nonItem(obj)
	if obj == nil {
		return
	}
	p := obj.Property(objectbase.PROP_NAME)
	if p == nil {
		return
	}
	name := uniqueName(p.Value(), nameSet(obj, d.nameScope(obj)))
	if name != p.Value() {
		log.Debug("renaming {{old}} to {{new}}", "old", p.Value(), "new", name)
		p.SetValue(name)
	}
}

// ResolveSubtreeNameConflicts renames all objects of an unlinked
// subtree which would collide with the names used in the scope of
// parent, or with each other, after inserting it below parent.
func (d *Designer) ResolveSubtreeNameConflicts(obj, parent *objectbase.Object) {
	top := d.project
	if parent != nil && parent != d.project {
		if form := parent.Form(); form != nil {
			top = form
		}
	}
	names := nameSet(nil, top)
	obj.Walk(func(o *objectbase.Object) bool {
		if p := o.Property(objectbase.PROP_NAME); p != nil {
			name := uniqueName(p.Value(), names)
			if name != p.Value() {
				log.Debug("renaming {{old}} to {{new}}", "old", p.Value(), "new", name)
				p.SetValue(name)
			}
			names.Insert(name)
		}
		return true
	})
}

func nonItem(obj *objectbase.Object) *objectbase.Object {
	for obj != nil && obj.IsItem() {
		obj = obj.Child(0)
	}
	return obj
}
