package objectbase

import (
	"fmt"

	"github.com/mandelsoft/formbuilder/pkg/utils"
)

// CheckParentLinks panics if the parent link of any object below o
// does not match the tree structure.
func CheckParentLinks(o *Object) {
	for _, c := range o.children {
		if c.parent != o {
			panic(fmt.Sprintf("parent link of %s does not point to %s", c, o))
		}
		CheckParentLinks(c)
	}
}

// CheckItems panics if an item object below o does not wrap
// exactly one object.
func CheckItems(o *Object) {
	o.Walk(func(c *Object) bool {
		if c.IsItem() && len(c.children) != 1 {
			panic(fmt.Sprintf("item %s has %d children", c, len(c.children)))
		}
		return true
	})
}

// Snapshot is a value copy of the observable state of an object tree.
type Snapshot struct {
	Class      string            `json:"class"`
	Expanded   bool              `json:"expanded"`
	Properties map[string]string `json:"properties,omitempty"`
	Events     map[string]string `json:"events,omitempty"`
	Children   []*Snapshot       `json:"children,omitempty"`
}

func TakeSnapshot(o *Object) *Snapshot {
	s := &Snapshot{
		Class:      o.ClassName(),
		Expanded:   o.expanded,
		Properties: map[string]string{},
		Events:     map[string]string{},
	}
	for _, p := range o.properties {
		s.Properties[p.Name()] = p.Value()
	}
	for _, e := range o.events {
		s.Events[e.Name()] = e.Value()
	}
	for _, c := range o.children {
		s.Children = append(s.Children, TakeSnapshot(c))
	}
	return s
}

// Fingerprint returns a digest of the observable state of an object
// tree. Equal trees have equal fingerprints.
func Fingerprint(o *Object) string {
	if o == nil {
		return ""
	}
	return utils.HashData(TakeSnapshot(o))
}
