package template

import (
	"fmt"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/utils"
)

const (
	// TAB is the placeholder for one indentation level in
	// rendered code. It is resolved by the code writer.
	TAB = "%TAB%"

	// VALUE_TEMPLATE_PREFIX prefixes class templates overriding the
	// code of a property type.
	VALUE_TEMPLATE_PREFIX = "value_"

	DEFAULT_UI_TABLE = "UI"
)

// Language converts property values into code of a target language.
type Language interface {
	// Name is the key of the code templates for the language.
	Name() string
	ValueToCode(t metamodel.PropertyType, value string) string
	// RootWxParent returns the code referring to the form an
	// object without container ancestor belongs to.
	RootWxParent(obj *objectbase.Object) string
}

// Renderer expands templates for objects.
type Renderer struct {
	lang    Language
	cache   *Cache
	project *objectbase.Object
}

// NewRenderer creates a renderer. The project object is used for
// project wide settings, it may be nil.
func NewRenderer(lang Language, project *objectbase.Object, cache *Cache) *Renderer {
	if cache == nil {
		cache = NewCache()
	}
	return &Renderer{lang: lang, cache: cache, project: project}
}

func (r *Renderer) Language() Language {
	return r.lang
}

func (r *Renderer) Cache() *Cache {
	return r.cache
}

// RenderText parses (cached) and expands a template text for an object.
func (r *Renderer) RenderText(text string, obj *objectbase.Object) (string, error) {
	return r.RenderWith(text, obj, "", "")
}

func (r *Renderer) Render(t *Template, obj *objectbase.Object) (string, error) {
	return r.renderWith(t.Nodes, obj, 0, "", "")
}

// RenderWith expands a template text with predefined values for
// #pred and #npred.
func (r *Renderer) RenderWith(text string, obj *objectbase.Object, pred, npred string) (string, error) {
	t, err := r.cache.Get(text)
	if err != nil {
		return "", err
	}
	return r.renderWith(t.Nodes, obj, 0, pred, npred)
}

func (r *Renderer) renderWith(nodes []Node, obj *objectbase.Object, indent int, pred, npred string) (string, error) {
	st := &state{r: r, obj: obj, indent: indent, pred: pred, npred: npred}
	if err := st.exec(nodes); err != nil {
		return "", err
	}
	return st.out.String(), nil
}

// PropertyToCode returns the code for a property value. A class template
// value_<type> of the owning class or one of its base classes takes
// precedence over the language conversion. It is expanded with #pred
// set to the raw value.
func (r *Renderer) PropertyToCode(p *objectbase.Property) (string, error) {
	if p.Object() != nil {
		if t := FindClassTemplate(p.Object().Info(), r.lang.Name(), VALUE_TEMPLATE_PREFIX+p.Type().String()); t != "" {
			return r.RenderWith(t, p.Object(), p.Value(), "")
		}
	}
	return r.lang.ValueToCode(p.Type(), p.Value()), nil
}

// FindClassTemplate looks up a named template for a language in
// a class and, depth first, in its base classes.
func FindClassTemplate(info *metamodel.ObjectInfo, lang, name string) string {
	if info == nil {
		return ""
	}
	if ci := info.CodeInfo(lang); ci.HasTemplate(name) {
		return ci.Template(name)
	}
	for _, b := range info.BaseClasses() {
		if t := FindClassTemplate(b, lang, name); t != "" {
			return t
		}
	}
	return ""
}

// WxParent returns the nearest ancestor acting as window parent.
func WxParent(obj *objectbase.Object) *objectbase.Object {
	candidates := []*objectbase.Object{
		obj.FindNearAncestor("container"),
		obj.FindNearAncestor("notebook"),
		obj.FindNearAncestor("splitter"),
		obj.FindNearAncestor("auinotebook"),
		obj.FindNearAncestor("toolbar"),
		obj.FindNearAncestorByBaseClass("wxStaticBoxSizer"),
	}
	var found *objectbase.Object
	for _, c := range candidates {
		if c != nil && (found == nil || c.Depth() > found.Depth()) {
			found = c
		}
	}
	return found
}

// IsEqual compares a value with a set of alternatives separated by '|'.
// Empty alternatives are ignored, so an empty set matches nothing.
func IsEqual(value, set string) bool {
	return sets.New(utils.SplitTrim(set, "|")...).Has(strings.TrimSpace(value))
}

////////////////////////////////////////////////////////////////////////////////

type state struct {
	r      *Renderer
	obj    *objectbase.Object
	out    strings.Builder
	indent int
	pred   string
	npred  string
}

func (s *state) nested(nodes []Node, pred, npred string) (string, error) {
	return s.r.renderWith(nodes, s.obj, s.indent, pred, npred)
}

func (s *state) exec(nodes []Node) error {
	for _, n := range nodes {
		var err error
		switch t := n.(type) {
		case *Text:
			s.out.WriteString(t.Text)
		case *Property:
			err = s.property(t.Ref)
		case *Conditional:
			err = s.conditional(t)
		case *ForEach:
			err = s.foreach(t)
		case *Macro:
			err = s.macro(t.Name)
		default:
			err = fmt.Errorf("unexpected template node %T", n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *state) related(nav Navigation) *objectbase.Object {
	switch nav {
	case NAV_WXPARENT:
		return WxParent(s.obj)
	case NAV_PARENT:
		return s.obj.Parent()
	case NAV_CHILD:
		return s.obj.Child(0)
	case NAV_FORM:
		return s.obj.Form()
	}
	return s.obj
}

func (s *state) property(ref PropertyRef) error {
	target := s.related(ref.Nav)
	if target == nil {
		if ref.Nav != NAV_FORM {
			s.out.WriteString(s.r.lang.RootWxParent(s.obj))
		}
		return nil
	}
	p := target.Property(ref.Name)
	if p == nil && ref.Nav == NAV_NONE && ref.Child == "" {
		// $pred and $npred are accepted as aliases of the macros.
		switch ref.Name {
		case MACRO_PRED:
			s.out.WriteString(s.pred)
			return nil
		case MACRO_NPRED:
			s.out.WriteString(s.npred)
			return nil
		}
	}
	if p == nil {
		log.Error("the property {{property}} does not exist for objects of class {{class}}", "property", ref.Name, "class", target.ClassName())
		return nil
	}
	if ref.Child != "" {
		s.out.WriteString(p.ChildFromParent(ref.Child))
		return nil
	}
	if ref.Nav == NAV_WXPARENT {
		typ := metamodel.PT_WXPARENT
		switch target.ClassName() {
		case "wxStaticBoxSizer":
			typ = metamodel.PT_WXPARENT_SB
		case "wxCollapsiblePane":
			typ = metamodel.PT_WXPARENT_CP
		}
		s.out.WriteString(s.r.lang.ValueToCode(typ, p.Value()))
		return nil
	}
	code, err := s.r.PropertyToCode(p)
	if err != nil {
		return err
	}
	s.out.WriteString(code)
	return nil
}

// lookup resolves the property of a conditional. A missing related
// object yields nil without error.
func (s *state) lookup(ref *PropertyRef) (*objectbase.Property, error) {
	target := s.related(ref.Nav)
	if target == nil {
		return nil, nil
	}
	p := target.Property(ref.Name)
	if p == nil {
		return nil, fmt.Errorf("the property %q does not exist for objects of class %q", ref.Name, target.ClassName())
	}
	return p, nil
}

func (s *state) condition(c *Conditional) (bool, error) {
	switch c.Condition {
	case IF_NOT_NULL, IF_NULL:
		p, err := s.lookup(c.Ref)
		if err != nil || p == nil {
			return false, err
		}
		set := !p.IsNull()
		if set && c.Ref.Child != "" {
			set = p.ChildFromParent(c.Ref.Child) != ""
		}
		return set != c.Condition.Negated(), nil
	case IF_EQUAL, IF_NOT_EQUAL:
		p, err := s.lookup(c.Ref)
		if err != nil || p == nil {
			return false, err
		}
		v := p.Value()
		if c.Ref.Child != "" {
			v = p.ChildFromParent(c.Ref.Child)
		}
		return IsEqual(v, c.Literal) != c.Condition.Negated(), nil
	case IF_PARENT_TYPE_EQUAL, IF_PARENT_TYPE_NOT_EQUAL:
		parent := s.obj.Parent()
		if parent == nil {
			return false, nil
		}
		return IsEqual(parent.ObjectTypeName(), c.Literal) != c.Condition.Negated(), nil
	case IF_PARENT_CLASS_EQUAL, IF_PARENT_CLASS_NOT_EQUAL:
		parent := s.obj.Parent()
		if parent == nil {
			return false, nil
		}
		return IsEqual(parent.ClassName(), c.Literal) != c.Condition.Negated(), nil
	case IF_TYPE_EQUAL, IF_TYPE_NOT_EQUAL:
		return IsEqual(s.obj.ObjectTypeName(), c.Literal) != c.Condition.Negated(), nil
	}
	return false, fmt.Errorf("unknown condition %s", c.Condition)
}

func (s *state) conditional(c *Conditional) error {
	ok, err := s.condition(c)
	if err != nil || !ok {
		return err
	}
	code, err := s.nested(c.Body, s.pred, s.npred)
	if err != nil {
		return err
	}
	s.out.WriteString(code)
	return nil
}

// foreach expands the body for every element of a list. Each
// expansion is preceded by a newline.
func (s *state) foreach(f *ForEach) error {
	p, err := s.lookup(&f.Ref)
	if err != nil || p == nil {
		return err
	}
	var elems []string
	switch {
	case p.Type() == metamodel.PT_STRINGLIST:
		for _, e := range objectbase.ParseStringList(p.Value()) {
			elems = append(elems, s.r.lang.ValueToCode(metamodel.PT_WXSTRING_I18N, e))
		}
	case p.Type().IsPairList():
		for _, e := range utils.SplitTrim(p.Value(), ",") {
			elems = append(elems, strings.ReplaceAll(e, ":", ","))
		}
	default:
		elems = utils.SplitTrim(p.Value(), ",")
	}
	for i, e := range elems {
		code, err := s.nested(f.Body, e, strconv.Itoa(i))
		if err != nil {
			return err
		}
		s.out.WriteString("\n")
		s.out.WriteString(code)
	}
	return nil
}

func (s *state) macro(name string) error {
	switch name {
	case MACRO_APPEND:
		text := AppendRewrite(s.out.String())
		s.out.Reset()
		s.out.WriteString(text)
	case MACRO_CLASS:
		if p := s.obj.Property("subclass"); p != nil {
			if sub := p.ChildFromParent("name"); sub != "" {
				s.out.WriteString(sub)
				return nil
			}
		}
		s.out.WriteString(s.r.lang.ValueToCode(metamodel.PT_CLASS, s.obj.ClassName()))
	case MACRO_INDENT:
		s.indent++
	case MACRO_UNINDENT:
		if s.indent > 0 {
			s.indent--
		}
	case MACRO_NL:
		s.out.WriteString("\n")
		s.out.WriteString(strings.Repeat(TAB, s.indent))
	case MACRO_PRED:
		s.out.WriteString(s.pred)
	case MACRO_NPRED:
		s.out.WriteString(s.npred)
	case MACRO_UTBL:
		tbl := ""
		if s.r.project != nil {
			tbl = s.r.project.PropertyValue("ui_table")
		}
		if tbl == "" {
			tbl = DEFAULT_UI_TABLE
		}
		s.out.WriteString(tbl + ".")
	default:
		return fmt.Errorf("unknown macro %q", name)
	}
	return nil
}

// AppendRewrite rewrites the trailing identifier of a text so that
// further text can be appended: array brackets are replaced, for
// example arr[0] becomes arr_0.
func AppendRewrite(text string) string {
	i := len(text)
	for i > 0 {
		c := rune(text[i-1])
		if !(utils.IsIdentRune(c) || c == '[' || c == ']') {
			break
		}
		i--
	}
	tail := strings.ReplaceAll(text[i:], "[", "_")
	tail = strings.ReplaceAll(tail, "]", "")
	return text[:i] + tail
}
