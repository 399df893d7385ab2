package cjson

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookup resolves an RFC 6901 JSON Pointer against the tree and returns a
// non-owning view of the target. "" resolves to v itself. Errors carry the
// pointer prefix that failed as their Path.
func (v *Value) Lookup(pointer string) (*Value, error) {
	if _, err := v.live("Lookup"); err != nil {
		return nil, err
	}
	if pointer == "" {
		return &Value{node: v.node}, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, &Error{Code: CodeTypeMismatch, Op: "Lookup", Path: pointer, Message: "pointer must start with /"}
	}
	cur := &Value{node: v.node}
	walked := ""
	for _, raw := range strings.Split(pointer[1:], "/") {
		token := unescapePointerToken(raw)
		walked += "/" + raw
		var next *Value
		var err error
		switch cur.Kind() {
		case KindObject:
			next, err = cur.Get(token)
		case KindArray:
			i, convErr := strconv.Atoi(token)
			if convErr != nil || (len(token) > 1 && token[0] == '0') {
				return nil, &Error{
					Code: CodeTypeMismatch, Op: "Lookup", Path: walked,
					Message: fmt.Sprintf("token %q is not an array index", token),
				}
			}
			next, err = cur.Index(i)
		default:
			return nil, &Error{
				Code: CodeTypeMismatch, Op: "Lookup", Path: walked,
				Message: fmt.Sprintf("cannot descend into %s", cur.Kind()),
			}
		}
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.Op = "Lookup"
				e.Path = walked
			}
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// RFC 6901 escaping: ~0 is "~", ~1 is "/".

func unescapePointerToken(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}

func escapePointerToken(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
