package objectbase

import (
	"strconv"
	"strings"

	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/utils"
)

// Property is the textual value of a class property of an object.
type Property struct {
	info  *metamodel.PropertyInfo
	owner *Object
	def   string
	value string
}

// NewProperty creates a property with the given effective default,
// which may differ from the descriptor default if overridden by a
// derived class.
func NewProperty(info *metamodel.PropertyInfo, def string) *Property {
	return &Property{info: info, def: def, value: def}
}

func (p *Property) Info() *metamodel.PropertyInfo {
	return p.info
}

func (p *Property) Name() string {
	return p.info.Name()
}

func (p *Property) Type() metamodel.PropertyType {
	return p.info.Type()
}

func (p *Property) Object() *Object {
	return p.owner
}

func (p *Property) Value() string {
	return p.value
}

func (p *Property) SetValue(v string) {
	p.value = v
}

func (p *Property) DefaultValue() string {
	return p.def
}

func (p *Property) IsDefault() bool {
	return p.value == p.def
}

func (p *Property) ResetDefault() {
	p.value = p.def
}

// IsNull reports whether the property holds no usable value.
func (p *Property) IsNull() bool {
	switch p.Type() {
	case metamodel.PT_BITMAP:
		return p.AsBitmap().Path == ""
	case metamodel.PT_WXSIZE:
		s := strings.TrimSpace(p.value)
		return s == "" || s == "-1,-1" || s == "-1; -1"
	default:
		return p.value == ""
	}
}

// ChildFromParent returns a field of a composite parent property.
func (p *Property) ChildFromParent(name string) string {
	i := p.info.ChildIndex(name)
	if i < 0 {
		return ""
	}
	fields := SplitParentValue(p.value)
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

// SetChildOfParent sets a single field of a composite parent property.
func (p *Property) SetChildOfParent(name, value string) bool {
	i := p.info.ChildIndex(name)
	if i < 0 {
		return false
	}
	fields := SplitParentValue(p.value)
	for len(fields) < len(p.info.Children()) {
		fields = append(fields, "")
	}
	fields[i] = value
	p.value = JoinParentValue(fields)
	return true
}

// SplitParentValue splits a composite value into its trimmed fields.
func SplitParentValue(v string) []string {
	if v == "" {
		return nil
	}
	fields := strings.Split(v, ";")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func JoinParentValue(fields []string) string {
	return strings.Join(fields, "; ")
}

////////////////////////////////////////////////////////////////////////////////
// typed access

func (p *Property) AsString() string {
	return p.value
}

// AsInt returns the integer value or 0 for malformed values.
func (p *Property) AsInt() int {
	i, err := strconv.Atoi(strings.TrimSpace(p.value))
	if err != nil {
		return 0
	}
	return i
}

func (p *Property) AsFloat() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(p.value), 64)
	if err != nil {
		return 0
	}
	return f
}

func (p *Property) AsBool() bool {
	return p.AsInt() != 0
}

func (p *Property) SetBool(b bool) {
	p.value = FormatBool(b)
}

func (p *Property) SetInt(i int) {
	p.value = strconv.Itoa(i)
}

// AsBitlist returns the flags of a bitlist value.
func (p *Property) AsBitlist() []string {
	return utils.SplitTrim(p.value, "|")
}

func (p *Property) AsIntList() []int {
	return ParseIntList(p.value)
}

func (p *Property) AsIntPairList() []IntPair {
	return ParseIntPairList(p.value)
}

func (p *Property) AsStringList() []string {
	return ParseStringList(p.value)
}

func (p *Property) SetStringList(list []string) {
	p.value = FormatStringList(list)
}

func (p *Property) AsPoint() Point {
	return ParsePoint(p.value)
}

func (p *Property) AsSize() Size {
	return Size(ParsePoint(p.value))
}

func (p *Property) AsColour() Colour {
	return ParseColour(p.value)
}

func (p *Property) AsFont() Font {
	return ParseFont(p.value)
}

func (p *Property) AsBitmap() Bitmap {
	return ParseBitmap(p.value)
}

////////////////////////////////////////////////////////////////////////////////

// Event is the handler name assigned to a class event of an object.
type Event struct {
	info  *metamodel.EventInfo
	owner *Object
	value string
}

func NewEvent(info *metamodel.EventInfo) *Event {
	return &Event{info: info, value: info.DefaultValue()}
}

func (e *Event) Info() *metamodel.EventInfo {
	return e.info
}

func (e *Event) Name() string {
	return e.info.Name()
}

func (e *Event) Object() *Object {
	return e.owner
}

func (e *Event) Value() string {
	return e.value
}

func (e *Event) SetValue(v string) {
	e.value = v
}
