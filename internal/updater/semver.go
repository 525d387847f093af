package updater

import (
	"fmt"
	"strconv"
	"strings"
)

// Semver is a release version. Shell builds and release tags carry plain
// major.minor.patch versions; pre-release and build suffixes never appear.
type Semver struct {
	Major int
	Minor int
	Patch int
}

// ParseSemver parses "1.2.3" or a tag-style "v1.2.3". Anything that is not
// three non-negative numeric fields is rejected, which is how dev builds are
// detected.
func ParseSemver(s string) (Semver, error) {
	fields := strings.SplitN(strings.TrimPrefix(s, "v"), ".", 3)
	if len(fields) != 3 {
		return Semver{}, fmt.Errorf("version %q is not major.minor.patch", s)
	}

	var nums [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return Semver{}, fmt.Errorf("version %q has bad field %q", s, field)
		}
		nums[i] = n
	}
	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// LessThan reports whether v is an older release than other.
func (v Semver) LessThan(other Semver) bool {
	switch {
	case v.Major != other.Major:
		return v.Major < other.Major
	case v.Minor != other.Minor:
		return v.Minor < other.Minor
	default:
		return v.Patch < other.Patch
	}
}
