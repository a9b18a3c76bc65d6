// Package components provides the behaviour bound to designer
// classes. Component libraries are linked into the binary and
// registered under the library name used by plugin packages.
package components

import (
	"sync"

	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/utils"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

// Component is the behaviour of a designer class.
type Component interface {
	// OnCreated is called for every object of the class created
	// by the object database.
	OnCreated(obj *objectbase.Object)
	// ExportToXrc converts an object into an XRC object element
	// without children. A nil result omits the object.
	ExportToXrc(obj *objectbase.Object) *xmltree.Element
	// ImportFromXrc converts an XRC object element into a project
	// object element without children.
	ImportFromXrc(elem *xmltree.Element) *xmltree.Element
}

// XrcNamed is implemented by components exported under an XRC
// class name. An empty name marks transparent objects whose
// children are exported in place.
type XrcNamed interface {
	XrcClass() string
}

// Library is a set of components keyed by class name.
type Library interface {
	Name() string
	Component(class string) Component
	Classes() []string
}

type library struct {
	name       string
	components map[string]Component
}

var _ Library = (*library)(nil)

// NewLibrary creates a library from a component table.
func NewLibrary(name string, components map[string]Component) Library {
	m := map[string]Component{}
	for k, v := range components {
		m[k] = v
	}
	return &library{name: name, components: m}
}

func (l *library) Name() string {
	return l.name
}

func (l *library) Component(class string) Component {
	return l.components[class]
}

func (l *library) Classes() []string {
	return utils.OrderedMapKeys(l.components)
}

////////////////////////////////////////////////////////////////////////////////

var (
	lock      sync.Mutex
	libraries = map[string]Library{}
)

// RegisterLibrary makes a library available for plugin packages.
// A later registration replaces an earlier one.
func RegisterLibrary(lib Library) {
	lock.Lock()
	defer lock.Unlock()
	libraries[lib.Name()] = lib
}

func GetLibrary(name string) Library {
	lock.Lock()
	defer lock.Unlock()
	return libraries[name]
}

func Libraries() []string {
	lock.Lock()
	defer lock.Unlock()
	return utils.OrderedMapKeys(libraries)
}
