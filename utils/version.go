package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a major.minor.patch triple. Parsing strips non-digit characters
// from each part, so tags like "v1.2.0" or "1.2.0-rc1" parse.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 3 {
		return Version{}, fmt.Errorf("invalid version: %q", s)
	}

	var nums [3]uint64
	for i := 0; i < 3; i++ {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, parts[i])
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version: %q", s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// GreaterThan reports whether v is strictly newer than other.
func (v Version) GreaterThan(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	return v.Patch > other.Patch
}
