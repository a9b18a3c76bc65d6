// Package xmltree provides a small ordered element tree used for
// descriptor files, project files and XRC documents.
package xmltree

import (
	"encoding/xml"
	"slices"
	"strconv"
	"strings"
)

// Element is a generic XML element keeping the order of
// attributes and child elements.
type Element struct {
	Name     string
	Attrs    []xml.Attr
	Children []*Element
	// Text is the concatenated character data of the element.
	Text string
}

func NewElement(name string, attrs ...string) *Element {
	e := &Element{Name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.SetAttr(attrs[i], attrs[i+1])
	}
	return e
}

// NewTextElement creates an element with character content.
func NewTextElement(name, text string, attrs ...string) *Element {
	e := NewElement(name, attrs...)
	e.Text = text
	return e
}

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrDefault returns the attribute value or the given default
// if the attribute is not present.
func (e *Element) AttrDefault(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// IntAttr returns an integer attribute. The default is used if the
// attribute is missing. A malformed value is reported as error.
func (e *Element) IntAttr(name string, def int) (int, error) {
	v, ok := e.Attr(name)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

// BoolAttr interprets "1" and "true" as true.
func (e *Element) BoolAttr(name string, def bool) bool {
	v, ok := e.Attr(name)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return def
}

func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name.Local == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func (e *Element) RemoveAttr(name string) {
	e.Attrs = slices.DeleteFunc(e.Attrs, func(a xml.Attr) bool { return a.Name.Local == name })
}

// FirstChild returns the first child element with the given name.
func (e *Element) FirstChild(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct child elements with the given name.
func (e *Element) ChildrenNamed(name string) []*Element {
	var r []*Element
	for _, c := range e.Children {
		if c.Name == name {
			r = append(r, c)
		}
	}
	return r
}

// ChildWithAttr returns the first child element with the given name
// and attribute value.
func (e *Element) ChildWithAttr(name, attr, value string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			if v, ok := c.Attr(attr); ok && v == value {
				return c
			}
		}
	}
	return nil
}

func (e *Element) AddChild(c ...*Element) *Element {
	e.Children = append(e.Children, c...)
	return e
}

func (e *Element) InsertChild(pos int, c *Element) {
	if pos < 0 || pos > len(e.Children) {
		pos = len(e.Children)
	}
	e.Children = slices.Insert(e.Children, pos, c)
}

func (e *Element) RemoveChild(c *Element) bool {
	i := slices.Index(e.Children, c)
	if i < 0 {
		return false
	}
	e.Children = slices.Delete(e.Children, i, i+1)
	return true
}

func (e *Element) ChildIndex(c *Element) int {
	return slices.Index(e.Children, c)
}

// Value returns the textual content. For elements with child
// elements only the trimmed character data is used, because it
// is interleaved with formatting whitespace.
func (e *Element) Value() string {
	if len(e.Children) > 0 {
		return strings.TrimSpace(e.Text)
	}
	return e.Text
}

// Walk visits the element and all its descendants in document order.
// Returning false from the visitor stops the descent into the
// children of the visited element.
func (e *Element) Walk(f func(e *Element) bool) {
	if !f(e) {
		return
	}
	for _, c := range slices.Clone(e.Children) {
		c.Walk(f)
	}
}

// Clone creates a deep copy.
func (e *Element) Clone() *Element {
	n := &Element{
		Name:  e.Name,
		Attrs: slices.Clone(e.Attrs),
		Text:  e.Text,
	}
	for _, c := range e.Children {
		n.Children = append(n.Children, c.Clone())
	}
	return n
}

// Condense collapses whitespace runs into single blanks and trims the
// result, the way descriptor files are read.
func Condense(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
