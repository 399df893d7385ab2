package cjson_test

import (
	"testing"

	cjson "github.com/reoring/cjson"
)

func TestParse_Valid(t *testing.T) {
	v, err := cjson.Parse([]byte(` {"a": [1, 2.5, "x", true, null]} `))
	if err != nil {
		t.Fatalf("parse err=%v", err)
	}
	defer v.Close()
	if v.Kind() != cjson.KindObject {
		t.Fatalf("kind=%v", v.Kind())
	}
	a, err := v.Get("a")
	if err != nil {
		t.Fatalf("get err=%v", err)
	}
	if n, err := a.Len(); err != nil || n != 5 {
		t.Fatalf("len err=%v n=%d", err, n)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{
		`{"a":}`,
		`[1,2`,
		`{"a":1,}`,
		`tru`,
		``,
	} {
		v, err := cjson.ParseString(input)
		if err == nil {
			v.Close()
			t.Fatalf("parse %q expected error", input)
		}
		se, ok := cjson.AsSyntaxError(err)
		if !ok {
			t.Fatalf("parse %q: want *SyntaxError, got %T (%v)", input, err, err)
		}
		if se.Offset < 0 || se.Offset > int64(len(input)) {
			t.Fatalf("parse %q: offset %d out of bounds", input, se.Offset)
		}
	}
}

func TestParse_MalformedOffset(t *testing.T) {
	_, err := cjson.ParseString(`{"a":}`)
	se, ok := cjson.AsSyntaxError(err)
	if !ok {
		t.Fatalf("want *SyntaxError, got %v", err)
	}
	// cJSON stops at the '}' that cannot start a value.
	if se.Offset != 5 {
		t.Fatalf("offset=%d want 5", se.Offset)
	}
	if se.Snippet == "" {
		t.Fatalf("empty snippet")
	}
}

func TestRoundTrip_AllKinds(t *testing.T) {
	build := func() *cjson.Value {
		obj, err := cjson.NewObject()
		if err != nil {
			t.Fatalf("object err=%v", err)
		}
		null, _ := cjson.Null()
		b, _ := cjson.Bool(false)
		num, _ := cjson.Number(-12.25)
		str, _ := cjson.String("héllo \"quoted\"")
		arr, _ := cjson.NewArray()
		inner, _ := cjson.Int(7)
		if err := arr.Append(inner); err != nil {
			t.Fatalf("append err=%v", err)
		}
		for key, child := range map[string]*cjson.Value{
			"null": null, "bool": b, "num": num, "str": str, "arr": arr,
		} {
			if err := obj.Set(key, child); err != nil {
				t.Fatalf("set %s err=%v", key, err)
			}
		}
		return obj
	}

	orig := build()
	defer orig.Close()

	text, err := orig.PrintUnformatted()
	if err != nil {
		t.Fatalf("print err=%v", err)
	}
	reparsed, err := cjson.Parse(text)
	if err != nil {
		t.Fatalf("reparse err=%v", err)
	}
	defer reparsed.Close()
	if !orig.Equal(reparsed) {
		t.Fatalf("round trip mismatch: %s vs %s", text, reparsed)
	}

	// formatted output parses back to the same tree as well
	pretty, err := orig.Print()
	if err != nil {
		t.Fatalf("pretty print err=%v", err)
	}
	fromPretty, err := cjson.Parse(pretty)
	if err != nil {
		t.Fatalf("reparse pretty err=%v", err)
	}
	defer fromPretty.Close()
	if !orig.Equal(fromPretty) {
		t.Fatalf("formatted round trip mismatch")
	}
}

func TestConstructCloseChurn(t *testing.T) {
	// Exercised under a leak checker in CI; here it just must not crash
	// or accumulate live handles.
	for i := 0; i < 1000; i++ {
		v, err := cjson.ParseString(`{"a":[1,2,3],"b":{"c":"d"}}`)
		if err != nil {
			t.Fatalf("parse err=%v", err)
		}
		det, err := v.Detach("b")
		if err != nil {
			t.Fatalf("detach err=%v", err)
		}
		if err := det.Close(); err != nil {
			t.Fatalf("close detached err=%v", err)
		}
		if err := v.Close(); err != nil {
			t.Fatalf("close err=%v", err)
		}
	}
}
