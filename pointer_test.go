package cjson_test

import (
	"testing"

	cjson "github.com/reoring/cjson"
)

func TestLookup(t *testing.T) {
	v, err := cjson.ParseString(`{"items":[{"price":9.5},{"price":12}],"a/b":1,"m~n":2}`)
	if err != nil {
		t.Fatalf("parse err=%v", err)
	}
	defer v.Close()

	cases := []struct {
		pointer string
		want    float64
	}{
		{"/items/0/price", 9.5},
		{"/items/1/price", 12},
		{"/a~1b", 1}, // ~1 unescapes to "/"
		{"/m~0n", 2}, // ~0 unescapes to "~"
	}
	for _, tc := range cases {
		got, err := v.Lookup(tc.pointer)
		if err != nil {
			t.Fatalf("lookup %s err=%v", tc.pointer, err)
		}
		f, err := got.AsFloat64()
		if err != nil || f != tc.want {
			t.Fatalf("lookup %s err=%v v=%v", tc.pointer, err, f)
		}
	}
}

func TestLookup_Root(t *testing.T) {
	v, err := cjson.ParseString(`[1]`)
	if err != nil {
		t.Fatalf("parse err=%v", err)
	}
	defer v.Close()
	root, err := v.Lookup("")
	if err != nil {
		t.Fatalf("lookup err=%v", err)
	}
	if !root.Equal(v) {
		t.Fatalf("empty pointer must resolve to the root")
	}
}

func TestLookup_Errors(t *testing.T) {
	v, err := cjson.ParseString(`{"items":[1,2]}`)
	if err != nil {
		t.Fatalf("parse err=%v", err)
	}
	defer v.Close()

	cases := []struct {
		pointer string
		code    string
	}{
		{"no-slash", cjson.CodeTypeMismatch},
		{"/missing", cjson.CodeKeyNotFound},
		{"/items/5", cjson.CodeIndexRange},
		{"/items/x", cjson.CodeTypeMismatch},
		{"/items/01", cjson.CodeTypeMismatch}, // leading zero is not an index
		{"/items/0/deeper", cjson.CodeTypeMismatch},
	}
	for _, tc := range cases {
		_, err := v.Lookup(tc.pointer)
		if err == nil {
			t.Fatalf("lookup %s expected error", tc.pointer)
		}
		e, ok := cjson.AsError(err)
		if !ok || e.Code != tc.code {
			t.Fatalf("lookup %s: want %s, got %v", tc.pointer, tc.code, err)
		}
	}
}
