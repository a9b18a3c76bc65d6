package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseToolkitVersion parses a dotted version (2.9, 3.1.5) or the
// integer form used by the toolkit macros (3105 for 3.1.5).
func ParseToolkitVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	if !strings.Contains(v, ".") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q", v)
		}
		v = fmt.Sprintf("%d.%d.%d", n/1000, (n%1000)/100, n%100)
	}
	r, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return r, nil
}
