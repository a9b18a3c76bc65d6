package template

import (
	"fmt"
	"strings"
)

// Node is an element of a parsed template.
type Node interface {
	String() string
}

// Navigation selects the object a property is read from.
type Navigation int

const (
	NAV_NONE Navigation = iota
	NAV_WXPARENT
	NAV_PARENT
	NAV_CHILD
	NAV_FORM
)

var navigationNames = map[Navigation]string{
	NAV_WXPARENT: "wxparent",
	NAV_PARENT:   "parent",
	NAV_CHILD:    "child",
	NAV_FORM:     "form",
}

func (n Navigation) String() string {
	return navigationNames[n]
}

// PropertyRef addresses a property, optionally a field of a composite
// property, of the current or a related object.
type PropertyRef struct {
	Nav   Navigation
	Name  string
	Child string
}

func (r PropertyRef) String() string {
	s := "$" + r.Name
	if r.Child != "" {
		s += "/" + r.Child
	}
	if r.Nav != NAV_NONE {
		s = "#" + r.Nav.String() + " " + s
	}
	return s
}

// Text is literal output.
type Text struct {
	Text string
}

func (n *Text) String() string {
	return fmt.Sprintf("%q", n.Text)
}

// Property substitutes the code for a property value.
type Property struct {
	Ref PropertyRef
}

func (n *Property) String() string {
	return n.Ref.String()
}

type Condition int

const (
	IF_NOT_NULL Condition = iota
	IF_NULL
	IF_EQUAL
	IF_NOT_EQUAL
	IF_PARENT_TYPE_EQUAL
	IF_PARENT_TYPE_NOT_EQUAL
	IF_PARENT_CLASS_EQUAL
	IF_PARENT_CLASS_NOT_EQUAL
	IF_TYPE_EQUAL
	IF_TYPE_NOT_EQUAL
)

var conditions = map[string]Condition{
	"ifnotnull":             IF_NOT_NULL,
	"ifnull":                IF_NULL,
	"ifequal":               IF_EQUAL,
	"ifnotequal":            IF_NOT_EQUAL,
	"ifparenttypeequal":     IF_PARENT_TYPE_EQUAL,
	"ifparenttypenotequal":  IF_PARENT_TYPE_NOT_EQUAL,
	"ifparentclassequal":    IF_PARENT_CLASS_EQUAL,
	"ifparentclassnotequal": IF_PARENT_CLASS_NOT_EQUAL,
	"iftypeequal":           IF_TYPE_EQUAL,
	"iftypenotequal":        IF_TYPE_NOT_EQUAL,
}

func (c Condition) String() string {
	for n, v := range conditions {
		if v == c {
			return n
		}
	}
	return fmt.Sprintf("Condition(%d)", int(c))
}

// HasProperty reports whether the condition reads a property.
func (c Condition) HasProperty() bool {
	return c <= IF_NOT_EQUAL
}

// HasLiteral reports whether the condition compares with a literal.
func (c Condition) HasLiteral() bool {
	return c >= IF_EQUAL
}

// Negated reports whether the block is expanded if the
// comparison fails.
func (c Condition) Negated() bool {
	switch c {
	case IF_NULL, IF_NOT_EQUAL, IF_PARENT_TYPE_NOT_EQUAL, IF_PARENT_CLASS_NOT_EQUAL, IF_TYPE_NOT_EQUAL:
		return true
	}
	return false
}

// Conditional expands its body depending on a condition.
type Conditional struct {
	Condition Condition
	Ref       *PropertyRef
	Literal   string
	Body      []Node
}

func (n *Conditional) String() string {
	s := "#" + n.Condition.String()
	if n.Ref != nil {
		s += " " + n.Ref.String()
	}
	if n.Condition.HasLiteral() {
		s += fmt.Sprintf(" %q", n.Literal)
	}
	return s + " " + Nodes(n.Body)
}

// ForEach expands its body for every element of a list property.
type ForEach struct {
	Ref  PropertyRef
	Body []Node
}

func (n *ForEach) String() string {
	return "#foreach " + n.Ref.String() + " " + Nodes(n.Body)
}

// Macro is a macro without arguments.
type Macro struct {
	Name string
}

func (n *Macro) String() string {
	return "#" + n.Name
}

// Argument free macros.
const (
	MACRO_APPEND   = "append"
	MACRO_CLASS    = "class"
	MACRO_INDENT   = "indent"
	MACRO_UNINDENT = "unindent"
	MACRO_NL       = "nl"
	MACRO_PRED     = "pred"
	MACRO_NPRED    = "npred"
	MACRO_UTBL     = "utbl"
)

var simpleMacros = []string{MACRO_APPEND, MACRO_CLASS, MACRO_INDENT, MACRO_UNINDENT, MACRO_NL, MACRO_PRED, MACRO_NPRED, MACRO_UTBL}

// Nodes renders a node list for diagnostic output.
func Nodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
