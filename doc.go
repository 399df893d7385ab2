package cjson

// Package cjson provides:
//
// - Go bindings to the cJSON C library (parse, build, mutate, print)
// - An owning Value wrapper with explicit Close and ownership transfer on attach/detach
// - A stable error model via coded errors (Code, Op, JSON Pointer path)
// - JSON Pointer lookup over parsed trees (RFC 6901)
//
// Design policy:
// - Keep only public APIs in the root package; all cgo lives under internal/cbind.
// - Place Go-value bridges under codec/ and the CLI under cmd/cjson.
// - Prefer black-box testing against public APIs.
//
// Ownership:
// - Exactly one wrapper owns a root handle; Close releases the whole subtree once.
// - Append/Insert/Set transfer ownership of the child into the container.
// - Index/Get return non-owning views valid while the parent is alive.
// - Detach returns a newly owned wrapper that must be Closed or re-attached.
//
// The underlying tree is not safe for concurrent use from multiple
// goroutines without external locking. Views must not be used after the
// subtree that contains them has been released; the binding cannot detect
// that statically and it is undefined behavior, inherited from cJSON.
//
// Typical usage:
//
//	v, err := cjson.Parse(data)
//	defer v.Close()
//	item, err := v.Lookup("/items/2/price")
//	f, err := item.AsFloat64()
