package cjson

import "github.com/reoring/cjson/internal/cbind"

// Parse parses JSON text into a new owned tree. On failure it returns a
// *SyntaxError with the byte offset cJSON stopped at and a short snippet
// of the surrounding input.
func Parse(data []byte) (*Value, error) {
	n, off := cbind.Parse(data)
	if n == nil {
		return nil, &SyntaxError{Offset: off, Snippet: snippetAt(data, off)}
	}
	return &Value{node: n, owned: true}, nil
}

// ParseString is Parse for a string input.
func ParseString(s string) (*Value, error) { return Parse([]byte(s)) }

// snippetAt cuts a short window of the input around offset for error
// messages, clamped to the input bounds.
func snippetAt(data []byte, off int64) string {
	const window = 16
	if len(data) == 0 {
		return ""
	}
	start := off - 4
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return string(data[start:end])
}
