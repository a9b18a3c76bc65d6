package metamodel

import (
	"fmt"
)

// PropertyType is the closed set of value kinds a property may hold.
type PropertyType int

const (
	PT_ERROR PropertyType = iota
	PT_BOOL
	PT_TEXT
	PT_INT
	PT_UINT
	PT_FLOAT
	PT_BITLIST
	PT_OPTION
	PT_EDIT_OPTION
	PT_MACRO
	PT_CLASS
	PT_WXSTRING
	PT_WXSTRING_I18N
	PT_PATH
	PT_FILE
	PT_BITMAP
	PT_WXPOINT
	PT_WXSIZE
	PT_WXFONT
	PT_WXCOLOUR
	PT_WXPARENT
	PT_WXPARENT_SB
	PT_WXPARENT_CP
	PT_INTLIST
	PT_UINTLIST
	PT_INTPAIRLIST
	PT_UINTPAIRLIST
	PT_STRINGLIST
	PT_PARENT
)

var propertyTypeNames = map[PropertyType]string{
	PT_BOOL:          "bool",
	PT_TEXT:          "text",
	PT_INT:           "int",
	PT_UINT:          "uint",
	PT_FLOAT:         "float",
	PT_BITLIST:       "bitlist",
	PT_OPTION:        "option",
	PT_EDIT_OPTION:   "editoption",
	PT_MACRO:         "macro",
	PT_CLASS:         "class",
	PT_WXSTRING:      "wxString",
	PT_WXSTRING_I18N: "wxString_i18n",
	PT_PATH:          "path",
	PT_FILE:          "file",
	PT_BITMAP:        "bitmap",
	PT_WXPOINT:       "wxPoint",
	PT_WXSIZE:        "wxSize",
	PT_WXFONT:        "wxFont",
	PT_WXCOLOUR:      "wxColour",
	PT_WXPARENT:      "wxParent",
	PT_WXPARENT_SB:   "wxParentSB",
	PT_WXPARENT_CP:   "wxParentCP",
	PT_INTLIST:       "intlist",
	PT_UINTLIST:      "uintlist",
	PT_INTPAIRLIST:   "intpairlist",
	PT_UINTPAIRLIST:  "uintpairlist",
	PT_STRINGLIST:    "stringlist",
	PT_PARENT:        "parent",
}

var propertyTypes = map[string]PropertyType{}

func init() {
	for t, n := range propertyTypeNames {
		propertyTypes[n] = t
	}
}

func (t PropertyType) String() string {
	if n, ok := propertyTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("PropertyType(%d)", int(t))
}

// ParsePropertyType maps a descriptor type name to its PropertyType.
func ParsePropertyType(name string) (PropertyType, error) {
	if t, ok := propertyTypes[name]; ok {
		return t, nil
	}
	return PT_ERROR, fmt.Errorf("unknown property type %q", name)
}

// IsList reports whether the type holds a comma separated number list
// usable with #foreach.
func (t PropertyType) IsList() bool {
	switch t {
	case PT_INTLIST, PT_UINTLIST, PT_INTPAIRLIST, PT_UINTPAIRLIST:
		return true
	}
	return false
}

func (t PropertyType) IsPairList() bool {
	return t == PT_INTPAIRLIST || t == PT_UINTPAIRLIST
}

// HasOptions reports whether the type carries a list of named options.
func (t PropertyType) HasOptions() bool {
	return t == PT_BITLIST || t == PT_OPTION || t == PT_EDIT_OPTION
}
