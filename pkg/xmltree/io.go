package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"

	"github.com/mandelsoft/vfs/pkg/vfs"
)

const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>` + "\n"

type Options struct {
	// CondenseWhitespace collapses whitespace in character data.
	CondenseWhitespace bool
}

// Parse reads the root element of an XML document.
func Parse(data []byte, opts ...Options) (*Element, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			e := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: a.Name.Local}, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements (%s, %s)", root.Name, e.Name)
				}
				root = e
			} else {
				stack[len(stack)-1].AddChild(e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			e := stack[len(stack)-1]
			if o.CondenseWhitespace {
				e.Text = Condense(e.Text)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("no root element found")
	}
	return root, nil
}

// Write serializes an element tree as indented XML document.
func Write(root *Element) ([]byte, error) {
	buf := bytes.NewBufferString(Header)
	err := Encode(buf, root)
	if err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// Encode writes an element tree without document header.
func Encode(w io.Writer, root *Element) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	err := encode(enc, root)
	if err != nil {
		return err
	}
	return enc.Flush()
}

func encode(enc *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}, Attr: e.Attrs}
	err := enc.EncodeToken(start)
	if err != nil {
		return err
	}
	if e.Text != "" {
		err = enc.EncodeToken(xml.CharData(e.Text))
		if err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		err = encode(enc, c)
		if err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Load reads an XML document from a virtual filesystem.
func Load(fs vfs.FileSystem, file string, opts ...Options) (*Element, error) {
	data, err := vfs.ReadFile(fs, file)
	if err != nil {
		return nil, err
	}
	e, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return e, nil
}

// Save writes an XML document to a virtual filesystem.
func Save(fs vfs.FileSystem, file string, root *Element) error {
	data, err := Write(root)
	if err != nil {
		return err
	}
	err = fs.MkdirAll(path.Dir(file), 0o755)
	if err != nil {
		return err
	}
	return vfs.WriteFile(fs, file, data, 0o644)
}
