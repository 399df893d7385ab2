//go:build !cjson_nopkgconfig

package cbind

// Default link configuration: locate the cJSON header and library through
// pkg-config, matching how the library is installed by distro packages and
// `make install`.

/*
#cgo pkg-config: libcjson
*/
import "C"
