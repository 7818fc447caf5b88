package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a three-part major.minor.patch identifier. No
// pre-release or build-metadata suffixes are supported.
type Version struct {
	Major int
	Minor int
	Patch int
}

type Part int

const (
	PartPatch Part = iota
	PartMinor
	PartMajor
)

var pattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if !pattern.MatchString(s) {
		return Version{}, fmt.Errorf("invalid version %q: want MAJOR.MINOR.PATCH", s)
	}

	parts := strings.Split(s, ".")
	major, _ := strconv.Atoi(parts[0])
	minor, _ := strconv.Atoi(parts[1])
	patch, _ := strconv.Atoi(parts[2])

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag returns the git tag name for the version.
func (v Version) Tag() string {
	return "v" + v.String()
}

// Bump returns the next version for the given part. Minor and major
// bumps zero the lower parts.
func (v Version) Bump(p Part) Version {
	switch p {
	case PartMajor:
		return Version{Major: v.Major + 1}
	case PartMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}
