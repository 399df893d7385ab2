package cjson

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeAlloc        = "alloc_failed"        // cJSON returned NULL on construction or print.
	CodeParseError   = "parse_error"         // input text rejected by the parser.
	CodeTypeMismatch = "type_mismatch"       // extraction or operation invalid for the actual kind.
	CodeIndexRange   = "index_out_of_range"  // array index outside [0, Len).
	CodeKeyNotFound  = "key_not_found"       // object member missing.
	CodeOwnership    = "ownership_violation" // attach of a non-owned or already-attached value.
	CodeReleased     = "handle_released"     // operation on a closed wrapper.
)

// Error is the structured error returned by binding operations.
type Error struct {
	Code    string // One of the codes listed above.
	Op      string // Operation that failed (for example: "AsString", "Index").
	Path    string // Optional JSON Pointer (for example: /items/2).
	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cjson: %s: %s at %s: %s", e.Op, e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("cjson: %s: %s: %s", e.Op, e.Code, e.Message)
}

// SyntaxError reports a parse failure. Offset is the byte position where
// cJSON stopped; Snippet is a short fragment of the input around it.
type SyntaxError struct {
	Offset  int64
	Snippet string
}

func (e *SyntaxError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("cjson: parse error at offset %d", e.Offset)
	}
	return fmt.Sprintf("cjson: parse error at offset %d near %q", e.Offset, e.Snippet)
}

// AsError extracts a binding *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsSyntaxError extracts a *SyntaxError from err.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	if err == nil {
		return nil, false
	}
	var e *SyntaxError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ---- internal constructors ----

func errAlloc(op string) *Error {
	return &Error{Code: CodeAlloc, Op: op, Message: "cJSON allocation failed"}
}

func errMismatch(op string, want, got Kind) *Error {
	return &Error{Code: CodeTypeMismatch, Op: op, Message: fmt.Sprintf("want %s, got %s", want, got)}
}

func errReleased(op string) *Error {
	return &Error{Code: CodeReleased, Op: op, Message: "value already released"}
}
