package xrc

import (
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pkg/errors"

	"github.com/mandelsoft/formbuilder/pkg/components"
	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

type importer struct {
	db      *database.ObjectDatabase
	session *database.Session
	// probe is used to check placements without touching the
	// instance counters of the session.
	probe *database.Session
	index map[string][]string
}

// Import creates a project from an XRC resource document. XRC classes
// mapped to several designer classes are resolved by the placement
// rules of the parent, for example wxPanel becomes a form at top level
// and a container below a sizer.
func Import(db *database.ObjectDatabase, s *database.Session, elem *xmltree.Element) (*objectbase.Object, error) {
	if elem.Name != TAG_RESOURCE {
		return nil, fmt.Errorf("unexpected root element %q", elem.Name)
	}
	info := db.GetObjectInfo(database.CLASS_PROJECT)
	if info == nil {
		return nil, fmt.Errorf("no project class found")
	}
	im := &importer{
		db:      db,
		session: s,
		probe:   database.NewSession(),
		index:   map[string][]string{},
	}
	for _, c := range db.Classes() {
		comp, ok := db.Component(c.ClassName()).(components.XrcNamed)
		if !ok || comp.XrcClass() == "" {
			continue
		}
		im.index[comp.XrcClass()] = append(im.index[comp.XrcClass()], c.ClassName())
	}

	project := db.NewObject(s, info)
	for _, o := range elem.ChildrenNamed(TAG_OBJECT) {
		if err := im.importObject(o, project, nil); err != nil {
			return nil, err
		}
	}
	return project, nil
}

func Read(db *database.ObjectDatabase, s *database.Session, data []byte) (*objectbase.Object, error) {
	elem, err := xmltree.Parse(data)
	if err != nil {
		return nil, err
	}
	return Import(db, s, elem)
}

func Load(db *database.ObjectDatabase, s *database.Session, fs vfs.FileSystem, file string) (*objectbase.Object, error) {
	elem, err := xmltree.Load(fs, file)
	if err != nil {
		return nil, err
	}
	p, err := Import(db, s, elem)
	if err != nil {
		return nil, errors.Wrapf(err, "xrc %q", file)
	}
	return p, nil
}

func (im *importer) isItem(xclass string) bool {
	for _, c := range im.index[xclass] {
		if info := im.db.GetObjectInfo(c); info != nil && info.ObjectType().IsItem() {
			return true
		}
	}
	return false
}

// choose selects the first designer class for an XRC class which may
// be placed below parent.
func (im *importer) choose(xclass string, parent *objectbase.Object) string {
	for _, c := range im.index[xclass] {
		o, err := im.db.CreateObject(im.probe, c, parent)
		if err == nil && o != nil {
			return c
		}
	}
	return ""
}

// importObject creates the object of an XRC element below parent.
// item is the enclosing XRC item element, if any, providing the
// settings of the item wrapper.
func (im *importer) importObject(elem *xmltree.Element, parent *objectbase.Object, item *xmltree.Element) error {
	xclass := elem.AttrDefault("class", "")
	if item == nil && im.isItem(xclass) {
		content := elem.FirstChild(TAG_OBJECT)
		if content == nil {
			log.Warn("ignoring empty {{class}}", "class", xclass)
			return nil
		}
		return im.importObject(content, parent, elem)
	}

	class := im.choose(xclass, parent)
	if class == "" {
		log.Warn("XRC class {{class}} not supported below {{parent}}", "class", xclass, "parent", parent.String())
		return nil
	}
	conv := im.db.Component(class).ImportFromXrc(elem)
	created, err := im.db.CreateObjectFromXML(im.session, conv, parent)
	if err != nil {
		return err
	}
	if created == nil {
		log.Warn("cannot place {{class}} below {{parent}}", "class", class, "parent", parent.String())
		return nil
	}

	obj := created
	if created.ClassName() != class {
		obj = created.Child(0)
		src := elem
		if item != nil {
			src = item
		}
		if c := im.db.Component(created.ClassName()); c != nil {
			applyProperties(created, c.ImportFromXrc(src))
		}
	}

	for _, ce := range elem.ChildrenNamed(TAG_OBJECT) {
		if err := im.importObject(ce, obj, nil); err != nil {
			return err
		}
	}
	return nil
}

func applyProperties(obj *objectbase.Object, elem *xmltree.Element) {
	for _, pe := range elem.ChildrenNamed(objectbase.TAG_PROPERTY) {
		if p := obj.Property(pe.AttrDefault(objectbase.ATTR_NAME, "")); p != nil {
			p.SetValue(pe.Value())
		}
	}
}
