package cjson

import "github.com/reoring/cjson/internal/cbind"

// Print renders the tree as formatted (indented) JSON text. Formatting,
// whitespace, and number precision are cJSON's, not redefined here.
func (v *Value) Print() ([]byte, error) {
	return v.print("Print", true)
}

// PrintUnformatted renders the tree as compact JSON text.
func (v *Value) PrintUnformatted() ([]byte, error) {
	return v.print("PrintUnformatted", false)
}

// PrintBuffered renders the tree with a preallocated output buffer of
// prebuffer bytes, skipping cJSON's measure-then-print pass when the
// caller can guess the output size.
func (v *Value) PrintBuffered(prebuffer int, format bool) ([]byte, error) {
	n, err := v.live("PrintBuffered")
	if err != nil {
		return nil, err
	}
	if prebuffer < 0 {
		prebuffer = 0
	}
	s, ok := cbind.PrintBuffered(n, prebuffer, format)
	if !ok {
		return nil, errAlloc("PrintBuffered")
	}
	return []byte(s), nil
}

func (v *Value) print(op string, format bool) ([]byte, error) {
	n, err := v.live(op)
	if err != nil {
		return nil, err
	}
	s, ok := cbind.Print(n, format)
	if !ok {
		return nil, errAlloc(op)
	}
	return []byte(s), nil
}

// MarshalJSON implements json.Marshaler with the compact printer, so a
// *Value embeds as raw JSON in structs handled by encoding/json or
// goccy/go-json.
func (v *Value) MarshalJSON() ([]byte, error) { return v.PrintUnformatted() }

// UnmarshalJSON implements json.Unmarshaler. It parses data into a fresh
// owned tree, releasing any tree v previously owned.
func (v *Value) UnmarshalJSON(data []byte) error {
	nv, err := Parse(data)
	if err != nil {
		return err
	}
	_ = v.Close()
	v.node = nv.node
	v.owned = true
	nv.node = nil
	nv.owned = false
	return nil
}

// String renders the compact form for debugging. It returns "" for a
// released value and swallows print failures; use PrintUnformatted when
// the error matters.
func (v *Value) String() string {
	b, err := v.PrintUnformatted()
	if err != nil {
		return ""
	}
	return string(b)
}

// Minify strips whitespace and comments from JSON text without building a
// tree, via cJSON_Minify on a copy of the input.
func Minify(data []byte) []byte { return cbind.Minify(data) }
