package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// tripleExpression matches exactly a three-component numeric version.
// Prerelease suffixes, build metadata, signs and whitespace are all rejected.
var tripleExpression = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Version wraps semver.Version restricted to strict major.minor.patch triples.
type Version struct {
	*semver.Version
}

// ParseVersion creates a Version from a strict "major.minor.patch" string.
func ParseVersion(s string) (*Version, error) {
	if !tripleExpression.MatchString(s) {
		return nil, fmt.Errorf("not a version: %q", s)
	}
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("not a version: %q: %w", s, err)
	}
	return &Version{v}, nil
}

// ZeroVersion returns the 0.0.0 fallback used when nothing resolves.
func ZeroVersion() *Version {
	return &Version{semver.New(0, 0, 0, "", "")}
}

// BumpMajor increments the major component and resets minor and patch.
func (v *Version) BumpMajor() *Version {
	next := v.IncMajor()
	return &Version{&next}
}

// BumpMinor increments the minor component and resets patch.
func (v *Version) BumpMinor() *Version {
	next := v.IncMinor()
	return &Version{&next}
}

// BumpPatch increments the patch component.
func (v *Version) BumpPatch() *Version {
	next := v.IncPatch()
	return &Version{&next}
}

// Bump returns the next version for the given increment class.
func (v *Version) Bump(class IncrementClass) (*Version, error) {
	switch class {
	case IncrementMajor:
		return v.BumpMajor(), nil
	case IncrementMinor:
		return v.BumpMinor(), nil
	case IncrementPatch:
		return v.BumpPatch(), nil
	default:
		return nil, fmt.Errorf("unknown increment class: %q", class)
	}
}

// Compare orders two versions lexicographically on (major, minor, patch).
func (v *Version) Compare(other *Version) int {
	return v.Version.Compare(other.Version)
}

// String returns the canonical "major.minor.patch" form.
func (v *Version) String() string {
	return v.Version.String()
}

// IncrementClass selects which component advances on the next release.
type IncrementClass string

const (
	IncrementMajor IncrementClass = "major"
	IncrementMinor IncrementClass = "minor"
	IncrementPatch IncrementClass = "patch"
)

// IncrementClasses lists the valid classes in selection order.
func IncrementClasses() []IncrementClass {
	return []IncrementClass{IncrementMajor, IncrementMinor, IncrementPatch}
}

// ParseIncrementClass validates an increment class supplied as free text.
func ParseIncrementClass(s string) (IncrementClass, error) {
	switch class := IncrementClass(strings.ToLower(strings.TrimSpace(s))); class {
	case IncrementMajor, IncrementMinor, IncrementPatch:
		return class, nil
	default:
		return "", fmt.Errorf("unknown increment class: %q", s)
	}
}
