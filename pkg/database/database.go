// Package database is the registry of all designer classes and the
// factory creating design tree objects.
package database

import (
	"fmt"
	"io"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/formbuilder/pkg/components"
	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/utils"
)

// Well known classes and object types.
const (
	CLASS_PROJECT       = "Project"
	CLASS_CPP           = "C++"
	CLASS_SIZERITEMBASE = "sizeritembase"
	CLASS_FRAME         = "Frame"

	TYPE_FORM    = "form"
	TYPE_SIZER   = "sizer"
	TYPE_GBSIZER = "gbsizer"
)

// ObjectDatabase holds the object types and the class descriptors.
// It is populated by the load functions and read-only afterwards.
type ObjectDatabase struct {
	opts    Options
	fs      vfs.FileSystem
	version *semver.Version

	types    *metamodel.Registry
	classes  map[string]*metamodel.ObjectInfo
	order    []*metamodel.ObjectInfo
	packages []*metamodel.Package

	components map[string]components.Component
	libraries  map[string]components.Library

	// property type templates per language
	propertyTemplates map[metamodel.PropertyType]map[string]*metamodel.CodeInfo
}

func New(opts Options) (*ObjectDatabase, error) {
	v, err := opts.toolkitVersion()
	if err != nil {
		return nil, err
	}
	return &ObjectDatabase{
		opts:              opts,
		fs:                opts.fileSystem(),
		version:           v,
		types:             metamodel.NewRegistry(),
		classes:           map[string]*metamodel.ObjectInfo{},
		components:        map[string]components.Component{},
		libraries:         map[string]components.Library{},
		propertyTemplates: map[metamodel.PropertyType]map[string]*metamodel.CodeInfo{},
	}, nil
}

func (d *ObjectDatabase) FileSystem() vfs.FileSystem {
	return d.fs
}

func (d *ObjectDatabase) ToolkitVersion() *semver.Version {
	return d.version
}

func (d *ObjectDatabase) Types() *metamodel.Registry {
	return d.types
}

func (d *ObjectDatabase) GetObjectType(name string) *metamodel.ObjectType {
	return d.types.GetObjectType(name)
}

func (d *ObjectDatabase) GetObjectInfo(class string) *metamodel.ObjectInfo {
	return d.classes[class]
}

// Classes returns all class descriptors in load order.
func (d *ObjectDatabase) Classes() []*metamodel.ObjectInfo {
	return slices.Clone(d.order)
}

// Packages returns the plugin packages in load order.
func (d *ObjectDatabase) Packages() []*metamodel.Package {
	return slices.Clone(d.packages)
}

// Component returns the component bound to a class, if any.
func (d *ObjectDatabase) Component(class string) components.Component {
	return d.components[class]
}

// LoadedLibraries returns the names of the bound component libraries.
func (d *ObjectDatabase) LoadedLibraries() []string {
	names := sets.New[string]()
	for _, lib := range d.libraries {
		names.Insert(lib.Name())
	}
	return sets.List(names)
}

// LibraryPaths returns the paths the component libraries were
// imported from.
func (d *ObjectDatabase) LibraryPaths() []string {
	return utils.OrderedMapKeys(d.libraries)
}

func (d *ObjectDatabase) addClass(info *metamodel.ObjectInfo) error {
	if d.classes[info.ClassName()] != nil {
		return fmt.Errorf("class %q already defined", info.ClassName())
	}
	d.classes[info.ClassName()] = info
	d.order = append(d.order, info)
	d.applyPropertyTemplates(info)
	return nil
}

// applyPropertyTemplates merges the property type templates
// into a class for all types of its properties.
func (d *ObjectDatabase) applyPropertyTemplates(info *metamodel.ObjectInfo) {
	for _, t := range info.PropertyTypes() {
		for lang, ci := range d.propertyTemplates[t] {
			info.AddCodeInfo(lang, ci)
		}
	}
}

func (d *ObjectDatabase) Dump(w io.Writer) {
	for _, p := range d.packages {
		fmt.Fprintf(w, "package %s [%s]\n", p.Name(), p.Library())
		for _, o := range p.Objects() {
			fmt.Fprintf(w, "  %s\n", o.ClassName())
		}
	}
	for _, c := range d.order {
		fmt.Fprintf(w, "%s: %s", c.ClassName(), c.ObjectTypeName())
		if bases := c.BaseClasses(); len(bases) > 0 {
			fmt.Fprintf(w, " (%s)", utils.JoinFunc(bases, ", ", (*metamodel.ObjectInfo).ClassName))
		}
		if d.components[c.ClassName()] != nil {
			fmt.Fprintf(w, " [component]")
		}
		fmt.Fprintln(w)
	}
}
