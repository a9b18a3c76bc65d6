package project

import (
	"fmt"

	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

// Attributes recording the format version of clipboard data.
const (
	ATTR_CLIPBOARD_MAJOR = "fbp_version_major"
	ATTR_CLIPBOARD_MINOR = "fbp_version_minor"
)

// ToClipboard serializes an object tree for the exchange with other
// instances, which may run another version.
func ToClipboard(obj *objectbase.Object) ([]byte, error) {
	elem := objectbase.Serialize(obj)
	elem.SetAttr(ATTR_CLIPBOARD_MAJOR, fmt.Sprint(MAJOR_VERSION))
	elem.SetAttr(ATTR_CLIPBOARD_MINOR, fmt.Sprint(MINOR_VERSION))
	return xmltree.Write(elem)
}

// FromClipboard creates an unlinked object tree from clipboard data.
// Data without version attributes is taken as current.
func FromClipboard(db *database.ObjectDatabase, s *database.Session, data []byte) (*objectbase.Object, error) {
	elem, err := xmltree.Parse(data)
	if err != nil {
		return nil, err
	}
	if elem.Name != objectbase.TAG_OBJECT {
		return nil, fmt.Errorf("unexpected clipboard element %q", elem.Name)
	}
	major, err := elem.IntAttr(ATTR_CLIPBOARD_MAJOR, MAJOR_VERSION)
	if err != nil {
		return nil, err
	}
	minor, err := elem.IntAttr(ATTR_CLIPBOARD_MINOR, MINOR_VERSION)
	if err != nil {
		return nil, err
	}
	convert, err := checkVersion(major, minor)
	if err != nil {
		return nil, err
	}
	if convert {
		Migrate(db, elem, FileVersion(major, minor))
	}
	obj, err := db.CreateObjectFromXML(s, elem, nil)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("cannot create object from clipboard")
	}
	return obj, nil
}
