package codegen

import (
	"strconv"
	"strings"

	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/utils"
)

// ArrayInfo describes a member array synthesized from object names
// with index suffixes like name[1][2].
type ArrayInfo struct {
	Name string
	// Object is the first object contributing to the array. Its class
	// determines the element type.
	Object *objectbase.Object
	// MaxIndex holds the largest index found per dimension.
	MaxIndex []int
}

// Sizes returns the array size per dimension.
func (a *ArrayInfo) Sizes() []int {
	return utils.TransformSlice(a.MaxIndex, func(i int) int { return i + 1 })
}

// Dimensions renders the sizes as declaration suffix, for example [3][2].
func (a *ArrayInfo) Dimensions() string {
	return utils.JoinFunc(a.Sizes(), "", func(i int) string { return "[" + strconv.Itoa(i) + "]" })
}

// ParseArrayName splits a name into the base name and its indices.
// ok is false if the name has no (valid) index suffix.
func ParseArrayName(name string) (base string, indices []int, ok bool) {
	name = strings.TrimSpace(name)
	rest := name
	for strings.HasSuffix(rest, "]") {
		open := strings.LastIndexByte(rest, '[')
		if open < 0 {
			return name, nil, false
		}
		i, err := strconv.Atoi(strings.TrimSpace(rest[open+1 : len(rest)-1]))
		if err != nil || i < 0 {
			return name, nil, false
		}
		indices = append([]int{i}, indices...)
		rest = rest[:open]
	}
	if len(indices) == 0 || rest == "" {
		return name, nil, false
	}
	return rest, indices, true
}

// FindArrayObjects scans the names of all descendants of obj (and obj
// itself unless skipRoot is set) for array names. Names with a
// dimension count differing from the first occurrence are ignored.
func FindArrayObjects(obj *objectbase.Object, skipRoot bool) map[string]*ArrayInfo {
	arrays := map[string]*ArrayInfo{}
	obj.Walk(func(o *objectbase.Object) bool {
		if skipRoot && o == obj {
			return true
		}
		base, indices, ok := ParseArrayName(o.Name())
		if !ok {
			return true
		}
		a := arrays[base]
		if a == nil {
			arrays[base] = &ArrayInfo{Name: base, Object: o, MaxIndex: indices}
			return true
		}
		if len(a.MaxIndex) != len(indices) {
			log.Warn("array {{name}} used with different dimensions by {{object}}", "name", base, "object", o.String())
			return true
		}
		for i, n := range indices {
			a.MaxIndex[i] = max(a.MaxIndex[i], n)
		}
		return true
	})
	return arrays
}
