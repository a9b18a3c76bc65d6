package utils

import (
	"cmp"
	"slices"
	"strings"
)

func Pointer[T any](t T) *T {
	return &t
}

// OrderedMapKeys returns the sorted keys of a map.
func OrderedMapKeys[K cmp.Ordered, V any](m map[K]V) []K {
	r := make([]K, 0, len(m))
	for k := range m {
		r = append(r, k)
	}
	slices.Sort(r)
	return r
}

type Stringable interface {
	String() string
}

// Join joins the string representations of the list elements.
// The default separator is ", ".
func Join[S Stringable](list []S, seps ...string) string {
	return JoinFunc(list, OptionalDefaulted(", ", seps...), func(e S) string { return e.String() })
}

func JoinFunc[S any](list []S, separator string, f func(S) string) string {
	var sb strings.Builder
	for i, e := range list {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(f(e))
	}
	return sb.String()
}

// AppendUnique appends the elements not yet contained in the slice.
func AppendUnique[E comparable, A ~[]E](in A, add ...E) A {
	for _, v := range add {
		if !slices.Contains(in, v) {
			in = append(in, v)
		}
	}
	return in
}

func TransformSlice[E any, A ~[]E, T any](in A, m func(E) T) []T {
	r := make([]T, len(in))
	for i, v := range in {
		r[i] = m(v)
	}
	return r
}
