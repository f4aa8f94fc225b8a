package rolldiff

import (
	"fmt"
)

const (
	// VersionMajor represents the current major version of rolldiff.
	VersionMajor = 0
	// VersionMinor represents the current minor version of rolldiff.
	VersionMinor = 1
	// VersionPatch represents the current patch version of rolldiff.
	VersionPatch = 0
)

// Version provides a stringified version of the current version.
var Version string

func init() {
	Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
