// Package version formats the build information injected via ldflags.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Normalize returns version in canonical semver form without the "v"
// prefix. Values that are not semantic versions (e.g., "dev") are returned
// unchanged.
func Normalize(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return version
	}
	return v.String()
}

// IsRelease reports whether version is a semantic version without a
// prerelease suffix.
func IsRelease(version string) bool {
	v, err := parseSemver(version)
	return err == nil && v.Prerelease() == ""
}

// String renders the one-line version banner for cli. Builds that are not
// a tagged release are marked as such.
func (i Info) String(cli string) string {
	banner := fmt.Sprintf("%s version %s (commit: %s, built: %s)", cli, Normalize(i.Version), i.Commit, i.Date)
	if !IsRelease(i.Version) {
		banner += " [pre-release]"
	}
	return banner
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
