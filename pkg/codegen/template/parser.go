package template

import (
	"slices"
	"strings"

	"github.com/mandelsoft/formbuilder/pkg/scanner"
	"github.com/mandelsoft/formbuilder/pkg/utils"
)

// Template is a parsed code template.
type Template struct {
	Source string
	Nodes  []Node
}

func (t *Template) String() string {
	return Nodes(t.Nodes)
}

// Parse parses a template text.
func Parse(text string) (*Template, error) {
	nodes, err := parse(text, 0)
	if err != nil {
		return nil, err
	}
	return &Template{Source: text, Nodes: nodes}, nil
}

func parse(text string, base int) ([]Node, error) {
	p := &parser{s: scanner.NewScanner(text), base: base}
	return p.parseNodes()
}

type parser struct {
	s    scanner.Scanner
	base int
}

func (p *parser) errorf(msg string, args ...interface{}) error {
	return NewParseError(p.base+p.s.Position(), msg, args...)
}

func (p *parser) parseNodes() ([]Node, error) {
	var nodes []Node
	for !p.s.Eof() {
		switch p.s.Current() {
		case '#':
			p.s.Next()
			n, err := p.parseMacro()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case '$':
			p.s.Next()
			ref, err := p.parsePropertyName(NAV_NONE)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &Property{Ref: ref})
		default:
			if t := p.parseText(); t != "" {
				nodes = append(nodes, &Text{Text: t})
			}
		}
	}
	return nodes, nil
}

// parseText reads literal text up to the next macro or property.
// A text consisting of whitespace only is reduced to the
// explicitly escaped spaces.
func (p *parser) parseText() string {
	var sb strings.Builder
	sspace := 0
	for !p.s.Eof() && p.s.Current() != '#' && p.s.Current() != '$' {
		c := p.s.Current()
		p.s.Next()
		if c == '@' {
			if p.s.Eof() {
				break
			}
			c = p.s.Current()
			p.s.Next()
			if c == ' ' {
				sspace++
			}
		}
		sb.WriteRune(c)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return strings.Repeat(" ", sspace)
	}
	return text
}

func (p *parser) ident() string {
	var sb strings.Builder
	for !p.s.Eof() && utils.IsAlnum(p.s.Current()) {
		sb.WriteRune(p.s.Current())
		p.s.Next()
	}
	return sb.String()
}

func (p *parser) parseMacro() (Node, error) {
	pos := p.s.Position()
	name := p.ident()
	switch name {
	case "":
		return nil, p.errorf("macro name expected")
	case "wxparent", "parent", "child", "form":
		ref, err := p.relatedProperty(navigation(name))
		if err != nil {
			return nil, err
		}
		return &Property{Ref: ref}, nil
	case "foreach":
		ref, err := p.conditionProperty()
		if err != nil {
			return nil, err
		}
		body, err := p.innerTemplate()
		if err != nil {
			return nil, err
		}
		return &ForEach{Ref: *ref, Body: body}, nil
	case MACRO_APPEND:
		p.s.SkipSpaces()
		return &Macro{Name: name}, nil
	}
	if slices.Contains(simpleMacros, name) {
		return &Macro{Name: name}, nil
	}

	cond, ok := conditions[name]
	if !ok {
		return nil, NewParseError(p.base+pos, "unknown macro %q", name)
	}
	n := &Conditional{Condition: cond}
	if cond.HasProperty() {
		ref, err := p.conditionProperty()
		if err != nil {
			return nil, err
		}
		n.Ref = ref
	}
	if cond.HasLiteral() {
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		n.Literal = lit
	}
	body, err := p.innerTemplate()
	if err != nil {
		return nil, err
	}
	n.Body = body
	return n, nil
}

func navigation(name string) Navigation {
	for n, s := range navigationNames {
		if s == name {
			return n
		}
	}
	return NAV_NONE
}

// relatedProperty parses the property reference following
// a navigation macro.
func (p *parser) relatedProperty(nav Navigation) (PropertyRef, error) {
	p.s.SkipBlanks()
	if err := p.expect('$'); err != nil {
		return PropertyRef{}, err
	}
	return p.parsePropertyName(nav)
}

// conditionProperty parses a property reference used by a
// conditional or loop macro, which may be navigated with
// #wxparent, #parent or #child.
func (p *parser) conditionProperty() (*PropertyRef, error) {
	p.s.SkipBlanks()
	var ref PropertyRef
	var err error
	if p.s.Current() == '#' {
		p.s.Next()
		name := p.ident()
		switch name {
		case "wxparent", "parent", "child":
			ref, err = p.relatedProperty(navigation(name))
		default:
			return nil, p.errorf("invalid object reference %q", name)
		}
	} else {
		if err := p.expect('$'); err != nil {
			return nil, err
		}
		ref, err = p.parsePropertyName(NAV_NONE)
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (p *parser) expect(r rune) error {
	if p.s.ConsumeRune(r) != nil {
		return p.errorf("%q expected", string(r))
	}
	return nil
}

// parsePropertyName parses name, name/child or {name}.
func (p *parser) parsePropertyName(nav Navigation) (PropertyRef, error) {
	braced := p.s.Current() == '{'
	if braced {
		p.s.Next()
	}
	var sb strings.Builder
	for !p.s.Eof() {
		c := p.s.Current()
		if !(utils.IsIdentRune(c) || c == '/') {
			break
		}
		sb.WriteRune(c)
		p.s.Next()
	}
	if braced {
		if err := p.expect('}'); err != nil {
			return PropertyRef{}, err
		}
	}
	name, child, _ := strings.Cut(sb.String(), "/")
	if name == "" {
		return PropertyRef{}, p.errorf("property name expected")
	}
	return PropertyRef{Nav: nav, Name: name, Child: child}, nil
}

// literal parses a double quoted string. A doubled quote
// denotes a quote character.
func (p *parser) literal() (string, error) {
	p.s.SkipBlanks()
	if err := p.expect('"'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for !p.s.Eof() {
		c := p.s.Current()
		p.s.Next()
		if c == '"' {
			if p.s.Eof() || p.s.Current() != '"' {
				return sb.String(), nil
			}
			p.s.Next()
		}
		sb.WriteRune(c)
	}
	return "", p.errorf("unterminated literal")
}

// innerTemplate extracts and parses a nested block enclosed
// in @{ and @}.
func (p *parser) innerTemplate() ([]Node, error) {
	p.s.SkipBlanks()
	if p.s.Current() != '@' || p.s.Peek() != '{' {
		return nil, p.errorf("\"@{\" expected")
	}
	p.s.Next()
	p.s.Next()
	p.s.SkipSpaces()

	start := p.base + p.s.Position()
	var sb strings.Builder
	level := 1
	for !p.s.Eof() {
		c := p.s.Current()
		p.s.Next()
		if c == '@' && !p.s.Eof() {
			n := p.s.Current()
			p.s.Next()
			switch n {
			case '}':
				level--
				if level == 0 {
					return parse(sb.String(), start-1)
				}
			case '{':
				level++
			}
			sb.WriteRune(c)
			sb.WriteRune(n)
			continue
		}
		sb.WriteRune(c)
	}
	return nil, p.errorf("\"@}\" expected")
}
