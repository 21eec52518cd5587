// Package rangeslider is a terminal range slider built from a pure state
// core (package track) and a Bubble Tea component (package slider).
package rangeslider

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Release is a parsed SemVer 2.0.0 version. Build metadata is dropped.
type Release struct {
	Major, Minor, Patch int
	Pre                 string
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Pre != "" {
		s += "-" + r.Pre
	}
	return s
}

// Tag is the git tag for r.
func (r Release) Tag() string { return "v" + r.String() }

// ParseRelease parses a SemVer string without the leading `v`.
func ParseRelease(v string) (Release, error) {
	m := releaseRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Release{}, fmt.Errorf("rangeslider: %q is not a semver release", v)
	}
	var r Release
	var err error
	if r.Major, err = strconv.Atoi(m[1]); err != nil {
		return Release{}, err
	}
	if r.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Release{}, err
	}
	if r.Patch, err = strconv.Atoi(m[3]); err != nil {
		return Release{}, err
	}
	r.Pre = m[4]
	return r, nil
}

// Version returns the embedded module version (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}
