package metamodel

import (
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

const (
	TAG_OBJTYPE   = "objtype"
	TAG_CHILDTYPE = "childtype"
)

// LoadObjectTypes reads an object type definition file (objtypes.xml).
func LoadObjectTypes(fs vfs.FileSystem, file string) (*Registry, error) {
	root, err := xmltree.Load(fs, file, xmltree.Options{CondenseWhitespace: true})
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	err = r.Load(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return r, nil
}

// Load adds the type definitions found below the given element.
// All types are created first, afterwards the child type tables are
// resolved by name. Unknown child type names are reported and skipped.
func (r *Registry) Load(root *xmltree.Element) error {
	elems := root.ChildrenNamed(TAG_OBJTYPE)
	for _, e := range elems {
		name, ok := e.Attr("name")
		if !ok || name == "" {
			return fmt.Errorf("object type without name")
		}
		r.Define(name, e.BoolAttr("hidden", false), e.BoolAttr("item", false))
	}

	for _, e := range elems {
		name, _ := e.Attr("name")
		t := r.types[name]
		for _, c := range e.ChildrenNamed(TAG_CHILDTYPE) {
			cname, _ := c.Attr("name")
			ct := r.types[cname]
			if ct == nil {
				log.Error("unknown child type {{childtype}} for object type {{type}}", "childtype", cname, "type", name)
				continue
			}
			max, err := c.IntAttr("nmax", UNLIMITED)
			if err != nil {
				log.Error("invalid nmax for child type {{childtype}} of object type {{type}}: {{error}}", "childtype", cname, "type", name, "error", err)
				continue
			}
			auiMax, err := c.IntAttr("aui_nmax", max)
			if err != nil {
				log.Error("invalid aui_nmax for child type {{childtype}} of object type {{type}}: {{error}}", "childtype", cname, "type", name, "error", err)
				continue
			}
			if max < UNLIMITED || auiMax < UNLIMITED {
				log.Error("invalid limits {{max}}/{{auimax}} for child type {{childtype}} of object type {{type}}", "max", max, "auimax", auiMax, "childtype", cname, "type", name)
				continue
			}
			t.AddChildType(ct, max, auiMax)
		}
	}
	return nil
}
