//go:build cjson_nopkgconfig

package cbind

// Alternative link configuration for installations without a pkg-config
// file. Build with -tags cjson_nopkgconfig and point the toolchain at the
// two install locations explicitly:
//
//	CGO_CFLAGS="-I/path/to/cjson/include" \
//	CGO_LDFLAGS="-L/path/to/cjson/lib" \
//	go build -tags cjson_nopkgconfig ./...

/*
#cgo LDFLAGS: -lcjson
*/
import "C"
