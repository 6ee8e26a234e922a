package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/omm/pkg/errors"
)

// Version is a parsed version identifier such as "12.0": a dot-separated
// sequence of non-negative integers. It keeps the text it was parsed from so
// that store keys are written back exactly as they were read.
type Version struct {
	raw   string
	parts []int
}

// ParseVersion parses a dot-separated version identifier.
// Every component must be a non-empty string of ASCII digits.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, errors.NewValidationError("version", s, "version is empty")
	}

	components := strings.Split(s, ".")
	parts := make([]int, len(components))
	for i, c := range components {
		if c == "" || strings.TrimLeft(c, "0123456789") != "" {
			return Version{}, errors.NewValidationError("version", s,
				fmt.Sprintf("%q is not a version: component %d (%q) is not a number", s, i+1, c))
		}
		n, err := strconv.Atoi(c)
		if err != nil {
			return Version{}, errors.NewValidationError("version", s,
				fmt.Sprintf("%q is not a version: %v", s, err))
		}
		parts[i] = n
	}

	return Version{raw: s, parts: parts}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the text the version was parsed from.
func (v Version) String() string {
	return v.raw
}

// Parts returns a copy of the numeric components.
func (v Version) Parts() []int {
	return append([]int(nil), v.parts...)
}

// Compare orders versions component-wise, most significant first.
// A version that is a strict prefix of another sorts first ("12" < "12.0").
func (v Version) Compare(other Version) int {
	for i := 0; i < len(v.parts) && i < len(other.parts); i++ {
		switch {
		case v.parts[i] < other.parts[i]:
			return -1
		case v.parts[i] > other.parts[i]:
			return 1
		}
	}
	switch {
	case len(v.parts) < len(other.parts):
		return -1
	case len(v.parts) > len(other.parts):
		return 1
	}
	return 0
}
