package cjson

import (
	"math"
	"unicode/utf8"

	"github.com/reoring/cjson/internal/cbind"
)

// Value wraps a node in the cJSON tree. A Value either owns its node (it
// was constructed, parsed, or detached) or is a non-owning view into a
// tree owned by someone else (it came from Index/Get/Each).
//
// Owning Values must be released exactly once with Close, or handed over
// to a container via Append/Insert/Set. Copying a Value struct does not
// duplicate the tree; use Duplicate for that.
type Value struct {
	node  cbind.Node
	owned bool
}

// ---- constructors ----

// Null returns a new owned null value.
func Null() (*Value, error) { return newOwned("Null", cbind.CreateNull()) }

// Bool returns a new owned boolean value.
func Bool(b bool) (*Value, error) { return newOwned("Bool", cbind.CreateBool(b)) }

// Number returns a new owned number value. NaN and ±Inf are rejected
// before crossing the boundary; cJSON would silently encode them as null.
func Number(f float64) (*Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &Error{Code: CodeTypeMismatch, Op: "Number", Message: "non-finite number"}
	}
	return newOwned("Number", cbind.CreateNumber(f))
}

// Int returns a new owned number value holding i. cJSON stores all
// numbers as double, so integers above 2^53 lose precision.
func Int(i int64) (*Value, error) { return Number(float64(i)) }

// String returns a new owned string value. The input must be valid UTF-8.
func String(s string) (*Value, error) {
	if !utf8.ValidString(s) {
		return nil, &Error{Code: CodeTypeMismatch, Op: "String", Message: "invalid UTF-8"}
	}
	return newOwned("String", cbind.CreateString(s))
}

// Raw returns a new owned raw value: a pre-rendered JSON fragment that the
// printer emits verbatim. The fragment is not validated.
func Raw(s string) (*Value, error) { return newOwned("Raw", cbind.CreateRaw(s)) }

// NewArray returns a new owned empty array.
func NewArray() (*Value, error) { return newOwned("NewArray", cbind.CreateArray()) }

// NewObject returns a new owned empty object.
func NewObject() (*Value, error) { return newOwned("NewObject", cbind.CreateObject()) }

func newOwned(op string, n cbind.Node) (*Value, error) {
	if n == nil {
		return nil, errAlloc(op)
	}
	return &Value{node: n, owned: true}, nil
}

// ---- lifecycle ----

// Close releases the node and its whole subtree. It is a no-op on a
// non-owning view and on a Value that was already closed or whose
// ownership was transferred into a container, so `defer v.Close()` is
// always safe.
func (v *Value) Close() error {
	if v == nil || v.node == nil {
		return nil
	}
	if v.owned {
		cbind.Delete(v.node)
	}
	v.node = nil
	v.owned = false
	return nil
}

// Owned reports whether v currently owns its subtree.
func (v *Value) Owned() bool { return v != nil && v.node != nil && v.owned }

// live returns the underlying node or a handle_released error.
func (v *Value) live(op string) (cbind.Node, error) {
	if v == nil || v.node == nil {
		return nil, errReleased(op)
	}
	return v.node, nil
}

// ---- inspection ----

// Kind returns the JSON type of the value, or KindInvalid after Close.
func (v *Value) Kind() Kind {
	if v == nil || v.node == nil {
		return KindInvalid
	}
	return kindOf(v.node)
}

func (v *Value) IsNull() bool   { return v.Kind() == KindNull }
func (v *Value) IsBool() bool   { return v.Kind() == KindBool }
func (v *Value) IsNumber() bool { return v.Kind() == KindNumber }
func (v *Value) IsString() bool { return v.Kind() == KindString }
func (v *Value) IsArray() bool  { return v.Kind() == KindArray }
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// ---- extraction ----

// AsBool extracts a boolean, failing with type_mismatch for other kinds.
func (v *Value) AsBool() (bool, error) {
	n, err := v.live("AsBool")
	if err != nil {
		return false, err
	}
	if k := kindOf(n); k != KindBool {
		return false, errMismatch("AsBool", KindBool, k)
	}
	return cbind.IsTrue(n), nil
}

// AsFloat64 extracts a number.
func (v *Value) AsFloat64() (float64, error) {
	n, err := v.live("AsFloat64")
	if err != nil {
		return 0, err
	}
	if k := kindOf(n); k != KindNumber {
		return 0, errMismatch("AsFloat64", KindNumber, k)
	}
	return cbind.NumberValue(n), nil
}

// AsInt64 extracts a number, truncating toward zero the way cJSON's own
// valueint does.
func (v *Value) AsInt64() (int64, error) {
	f, err := v.AsFloat64()
	if err != nil {
		if e, ok := err.(*Error); ok && e.Code == CodeTypeMismatch {
			return 0, errMismatch("AsInt64", KindNumber, v.Kind())
		}
		return 0, err
	}
	return int64(f), nil
}

// AsString extracts a string.
func (v *Value) AsString() (string, error) {
	n, err := v.live("AsString")
	if err != nil {
		return "", err
	}
	if k := kindOf(n); k != KindString {
		return "", errMismatch("AsString", KindString, k)
	}
	return cbind.StringValue(n), nil
}

// ---- whole-tree helpers ----

// Duplicate deep-copies the value into a new owned tree. With recurse
// false only the node itself is copied.
func (v *Value) Duplicate(recurse bool) (*Value, error) {
	n, err := v.live("Duplicate")
	if err != nil {
		return nil, err
	}
	return newOwned("Duplicate", cbind.Duplicate(n, recurse))
}

// Equal reports deep, case-sensitive equality of the two trees, per
// cJSON_Compare. A released value is never equal to anything.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil || v.node == nil || o.node == nil {
		return false
	}
	return cbind.Compare(v.node, o.node, true)
}
