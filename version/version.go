// Package version reports the module and storage engine versions.
//
// The engine version is set at link time:
//
//	go build -ldflags "-X github.com/hugr-lab/soma-go/version.Engine=2.27.1"
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

const modulePath = "github.com/hugr-lab/soma-go"

// Engine is the storage engine version as "major.minor.patch".
var Engine = "2.27.1"

// Module returns the soma-go module version from build info, or "(devel)".
func Module() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	if info.Main.Path == modulePath && info.Main.Version != "" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}
	return "(devel)"
}

// EngineTriple returns the engine major, minor and patch numbers.
// Returns an error if Engine is not a valid semantic version.
func EngineTriple() (major, minor, patch int, err error) {
	v := "v" + strings.TrimPrefix(Engine, "v")
	if !semver.IsValid(v) {
		return 0, 0, 0, fmt.Errorf("invalid engine version %q", Engine)
	}

	// Canonical drops build metadata and fills missing parts with zeros.
	core := strings.TrimPrefix(semver.Canonical(v), "v")
	if pre := semver.Prerelease(v); pre != "" {
		core = strings.TrimSuffix(core, pre)
	}
	parts := strings.SplitN(core, ".", 3)
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid engine version %q: %w", Engine, err)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// Compact returns the engine version as "major.minor.patch", or
// "major.minor" when majorMinorOnly is set.
func Compact(majorMinorOnly bool) (string, error) {
	major, minor, patch, err := EngineTriple()
	if err != nil {
		return "", err
	}
	if majorMinorOnly {
		return fmt.Sprintf("%d.%d", major, minor), nil
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
}

// AsString returns the full version description, e.g.
// "soma-go v0.3.0, engine 2.27.1".
func AsString() string {
	return fmt.Sprintf("soma-go %s, engine %s", Module(), Engine)
}
