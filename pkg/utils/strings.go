package utils

import (
	"strconv"
	"strings"
)

// SplitTrim splits s at sep and trims all fields.
// Empty fields are omitted.
func SplitTrim(s, sep string) []string {
	var r []string
	for _, f := range strings.Split(s, sep) {
		f = strings.TrimSpace(f)
		if f != "" {
			r = append(r, f)
		}
	}
	return r
}

func IsNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// IsIdentRune matches runes allowed in C like identifiers.
func IsIdentRune(r rune) bool {
	return r == '_' || IsAlnum(r)
}

// IsAlnum matches ASCII letters and digits only.
func IsAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
