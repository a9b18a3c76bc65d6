// Package project reads and writes project files and clipboard data.
// Files written by older versions are converted on load.
package project

import (
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pkg/errors"

	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

const (
	TAG_ROOT    = "wxFormBuilder_Project"
	TAG_VERSION = "FileVersion"

	ATTR_MAJOR = "major"
	ATTR_MINOR = "minor"

	EXTENSION = ".fbp"
)

// Result describes a loaded project.
type Result struct {
	Root *objectbase.Object
	// Major and Minor are the version found in the file.
	Major int
	Minor int
	// Converted is set if the file had to be converted from an older
	// format. Saving it persists the new format.
	Converted bool
}

// Load reads a project file.
func Load(db *database.ObjectDatabase, s *database.Session, fs vfs.FileSystem, file string) (*Result, error) {
	data, err := vfs.ReadFile(fs, file)
	if err != nil {
		return nil, err
	}
	r, err := Read(db, s, data)
	if err != nil {
		return nil, errors.Wrapf(err, "project %q", file)
	}
	if r.Converted {
		log.Warn("project {{file}} has been converted from format {{major}}.{{minor}}, saving it will use the new format",
			"file", file, "major", r.Major, "minor", r.Minor)
	}
	return r, nil
}

// Read parses the content of a project file and builds the object tree.
// Files without version are handled as version 0.0 documents, whose
// root element is the project object itself.
func Read(db *database.ObjectDatabase, s *database.Session, data []byte) (*Result, error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, err
	}

	r := &Result{}
	var obj *xmltree.Element
	switch doc.Name {
	case TAG_ROOT:
		if v := doc.FirstChild(TAG_VERSION); v != nil {
			r.Major, err = v.IntAttr(ATTR_MAJOR, 0)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid major version")
			}
			r.Minor, err = v.IntAttr(ATTR_MINOR, 0)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid minor version")
			}
		}
		obj = doc.FirstChild(objectbase.TAG_OBJECT)
	case objectbase.TAG_OBJECT:
		obj = doc
	default:
		return nil, fmt.Errorf("unexpected root element %q", doc.Name)
	}
	if obj == nil {
		return nil, fmt.Errorf("no project object found")
	}

	convert, err := checkVersion(r.Major, r.Minor)
	if err != nil {
		return nil, err
	}
	if convert {
		r.Converted = Migrate(db, obj, FileVersion(r.Major, r.Minor))
	}

	s.ResetObjectCounters()
	r.Root, err = db.CreateObjectFromXML(s, obj, nil)
	if err != nil {
		return nil, err
	}
	if r.Root == nil {
		return nil, fmt.Errorf("cannot create project object")
	}
	return r, nil
}

// Document creates the XML document of a project tree.
func Document(root *objectbase.Object) *xmltree.Element {
	doc := xmltree.NewElement(TAG_ROOT)
	doc.AddChild(xmltree.NewElement(TAG_VERSION,
		ATTR_MAJOR, fmt.Sprint(MAJOR_VERSION),
		ATTR_MINOR, fmt.Sprint(MINOR_VERSION),
	))
	doc.AddChild(objectbase.Serialize(root))
	return doc
}

// Write serializes a project tree in the current format.
func Write(root *objectbase.Object) ([]byte, error) {
	return xmltree.Write(Document(root))
}

func Save(fs vfs.FileSystem, file string, root *objectbase.Object) error {
	err := xmltree.Save(fs, file, Document(root))
	if err != nil {
		return errors.Wrapf(err, "project %q", file)
	}
	return nil
}
