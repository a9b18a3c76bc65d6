// Package xrc converts design trees to and from XRC resource
// documents using the components of the designer classes.
package xrc

import (
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pkg/errors"

	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

const (
	TAG_RESOURCE = "resource"
	TAG_OBJECT   = "object"

	NAMESPACE = "http://www.wxwidgets.org/wxxrc"
	VERSION   = "2.3.0.1"

	CLASS_SPACER = "spacer"
)

// Export creates an XRC resource document for all forms of a project.
// Objects of classes without component are skipped including their
// children.
func Export(db *database.ObjectDatabase, project *objectbase.Object) *xmltree.Element {
	root := xmltree.NewElement(TAG_RESOURCE, "xmlns", NAMESPACE, "version", VERSION)
	for _, form := range project.Children() {
		exportObject(db, root, form)
	}
	return root
}

// ExportObject creates the XRC element of a single object tree.
func ExportObject(db *database.ObjectDatabase, obj *objectbase.Object) *xmltree.Element {
	root := xmltree.NewElement(TAG_RESOURCE)
	exportObject(db, root, obj)
	if len(root.Children) == 0 {
		return nil
	}
	return root.Children[0]
}

func exportObject(db *database.ObjectDatabase, parent *xmltree.Element, obj *objectbase.Object) {
	c := db.Component(obj.ClassName())
	if c == nil {
		log.Warn("class {{class}} not supported by XRC, skipping {{object}}", "class", obj.ClassName(), "object", obj.String())
		return
	}
	e := c.ExportToXrc(obj)
	if e == nil {
		for _, child := range obj.Children() {
			exportObject(db, parent, child)
		}
		return
	}

	if obj.IsItem() && obj.ChildCount() == 1 && obj.Child(0).ClassName() == CLASS_SPACER {
		// spacers carry the sizer item settings themselves
		if sc := db.Component(CLASS_SPACER); sc != nil {
			if s := sc.ExportToXrc(obj.Child(0)); s != nil {
				s.Children = append(e.Children, s.Children...)
				parent.AddChild(s)
				return
			}
		}
	}

	for _, child := range obj.Children() {
		exportObject(db, e, child)
	}
	parent.AddChild(e)
}

func Write(db *database.ObjectDatabase, project *objectbase.Object) ([]byte, error) {
	return xmltree.Write(Export(db, project))
}

func Save(fs vfs.FileSystem, file string, db *database.ObjectDatabase, project *objectbase.Object) error {
	err := xmltree.Save(fs, file, Export(db, project))
	if err != nil {
		return errors.Wrapf(err, "xrc %q", file)
	}
	return nil
}
