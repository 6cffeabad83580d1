package gamestore

import (
	"strconv"
	"strings"
)

type version struct {
	major, minor, patch int
}

// parseVersion parses a major.minor.patch string
// Returns false for anything that does not look like a version, including the
// empty string from a fresh install
func parseVersion(s string) (version, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return version{}, false
	}

	numbers := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return version{}, false
		}

		numbers[i] = n
	}

	return version{major: numbers[0], minor: numbers[1], patch: numbers[2]}, true
}

func (v version) lessThan(other version) bool {
	if v.major != other.major {
		return v.major < other.major
	}

	if v.minor != other.minor {
		return v.minor < other.minor
	}

	return v.patch < other.patch
}
