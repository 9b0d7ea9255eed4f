package cmd

import (
	"fmt"
	"runtime/debug"
)

const unknownVersion = "unknown"

// buildVersion reports the module version and Go version baked into the binary.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return unknownVersion
	}

	return fmt.Sprintf("%s (%s)", info.Main.Version, info.GoVersion)
}
