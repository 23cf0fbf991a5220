package utils

import "runtime/debug"

const (
	unknownVersion     = "unknown"
	developmentVersion = "(devel)"
)

// GetApplicationVersion returns the module version stamped into the binary by the Go toolchain.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable || buildInfo.Main.Version == "" || buildInfo.Main.Version == developmentVersion {
		return unknownVersion
	}
	return buildInfo.Main.Version
}
