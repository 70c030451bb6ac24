package display

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// BuildVersion renders "name vX.Y.Z". When version is empty it attempts to
// infer the main module's version from build metadata and falls back to a
// placeholder when none is recorded.
func BuildVersion(name, version string) string {
	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "No version specified"
		}
		version = inferred
	}
	version = strings.TrimPrefix(version, "v")

	if name != "" {
		name = name + " "
	}
	return fmt.Sprintf("%sv%s", name, version)
}

// inferVersion attempts to infer the version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", fmt.Errorf("no version info found in build metadata")
}
