package cjson

import "github.com/reoring/cjson/internal/cbind"

// Header-time version of the linked cJSON library.
const (
	VersionMajor = cbind.VersionMajor
	VersionMinor = cbind.VersionMinor
	VersionPatch = cbind.VersionPatch
)

// Limits compiled into the library.
const (
	// NestingLimit is the maximum parse depth before cJSON rejects input.
	NestingLimit = cbind.NestingLimit
	// CircularLimit bounds cJSON's cycle detection during printing.
	CircularLimit = cbind.CircularLimit
)

// Version returns the runtime library version, e.g. "1.7.18".
func Version() string { return cbind.Version() }
