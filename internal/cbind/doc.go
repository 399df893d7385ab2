// Package cbind contains all cgo bindings to the cJSON C library.
//
// Design policy:
//
//   - Isolation: every `import "C"` in the module lives here. Other packages
//     hold Node handles opaquely and never touch C types.
//   - One thin wrapper per cJSON entry point actually used; no extra logic
//     beyond string conversion and freeing C-owned buffers.
//   - C failure signals (NULL returns, false cJSON_bool) are reported as
//     plain Go return values; translation into the public error model
//     happens in the root package.
//   - Memory: nodes are owned by whoever holds the root; Delete releases a
//     whole subtree. Buffers returned by the print family are copied into
//     Go strings and released with cJSON_free before returning.
//
// The cJSON value tree is not safe for concurrent mutation. Callers must
// not use the same Node from multiple goroutines without external locking.
package cbind
