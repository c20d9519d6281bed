package version // import "github.com/Xunop/e-livraria/internal/version"

import (
	"strings"

	"github.com/Xunop/e-livraria/internal/config"
	"golang.org/x/mod/semver"
)

// Version is overridden at build time with
// -ldflags "-X github.com/Xunop/e-livraria/internal/version.Version=x.y.z".
var Version = "0.1.0"

// GetCurrentVersion returns the configured version when it is valid
// semver, the build version otherwise.
func GetCurrentVersion() string {
	if config.Opts != nil && semver.IsValid(canonical(config.Opts.Version)) {
		return strings.TrimPrefix(config.Opts.Version, "v")
	}
	return Version
}

// GetMinorVersion returns "x.y" of a version.
func GetMinorVersion(version string) string {
	return strings.TrimPrefix(semver.MajorMinor(canonical(version)), "v")
}

func IsVersionGreaterThan(version, target string) bool {
	return semver.Compare(canonical(version), canonical(target)) > 0
}

func canonical(version string) string {
	if version == "" || strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
