package codec_test

import (
	"reflect"
	"testing"

	cjson "github.com/reoring/cjson"
	"github.com/reoring/cjson/codec"
)

func TestFromAny_ToAny_RoundTrip(t *testing.T) {
	in := map[string]any{
		"null": nil,
		"bool": true,
		"num":  1.5,
		"str":  "x",
		"arr":  []any{1.0, "two", false},
		"obj":  map[string]any{"nested": []any{}},
	}
	v, err := codec.FromAny(in)
	if err != nil {
		t.Fatalf("FromAny err=%v", err)
	}
	defer v.Close()

	out, err := codec.ToAny(v)
	if err != nil {
		t.Fatalf("ToAny err=%v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n in=%#v\nout=%#v", in, out)
	}
}

func TestFromAny_SortedKeys(t *testing.T) {
	v, err := codec.FromAny(map[string]any{"b": 1.0, "a": 2.0, "c": 3.0})
	if err != nil {
		t.Fatalf("FromAny err=%v", err)
	}
	defer v.Close()
	keys, err := v.Keys()
	if err != nil {
		t.Fatalf("keys err=%v", err)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys=%v want %v", keys, want)
	}
}

func TestFromAny_IntegerTypes(t *testing.T) {
	v, err := codec.FromAny([]any{int(1), int64(2), int32(3), uint(4), float32(5)})
	if err != nil {
		t.Fatalf("FromAny err=%v", err)
	}
	defer v.Close()
	want, err := cjson.ParseString(`[1,2,3,4,5]`)
	if err != nil {
		t.Fatalf("parse err=%v", err)
	}
	defer want.Close()
	if !v.Equal(want) {
		t.Fatalf("got %s", v)
	}
}

func TestFromAny_Unsupported(t *testing.T) {
	if _, err := codec.FromAny(struct{}{}); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
	if _, err := codec.FromAny(map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatalf("expected error for nested unsupported type")
	}
}

type order struct {
	ID    string   `json:"id"`
	Total float64  `json:"total"`
	Tags  []string `json:"tags,omitempty"`
}

func TestEncodeDecode_Struct(t *testing.T) {
	in := order{ID: "o-1", Total: 42.5, Tags: []string{"a", "b"}}
	v, err := codec.Encode(in)
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}
	defer v.Close()

	id, err := v.Lookup("/id")
	if err != nil {
		t.Fatalf("lookup err=%v", err)
	}
	if s, err := id.AsString(); err != nil || s != "o-1" {
		t.Fatalf("id err=%v v=%q", err, s)
	}

	var out order
	if err := codec.Decode(v, &out); err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: in=%+v out=%+v", in, out)
	}
}

func TestDecode_ReleasedValue(t *testing.T) {
	v, err := cjson.ParseString(`{}`)
	if err != nil {
		t.Fatalf("parse err=%v", err)
	}
	_ = v.Close()
	var out map[string]any
	if err := codec.Decode(v, &out); err == nil {
		t.Fatalf("expected handle_released error")
	}
}
