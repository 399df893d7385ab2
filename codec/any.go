// Package codec bridges Go values and cJSON trees.
//
// FromAny/ToAny walk the tree directly using the binding's own container
// operations; Encode/Decode round arbitrary Go structs through
// goccy/go-json text.
package codec

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	cjson "github.com/reoring/cjson"
)

// FromAny builds a new owned tree from a Go value using the usual dynamic
// mapping: nil, bool, string, numeric types, json.Number, []any, and
// map[string]any. Map keys are emitted in sorted order so output is
// deterministic; JSON objects built this way lose Go map randomization,
// not information.
func FromAny(v any) (*cjson.Value, error) {
	switch x := v.(type) {
	case nil:
		return cjson.Null()
	case bool:
		return cjson.Bool(x)
	case string:
		return cjson.String(x)
	case float64:
		return cjson.Number(x)
	case float32:
		return cjson.Number(float64(x))
	case int:
		return cjson.Int(int64(x))
	case int64:
		return cjson.Int(x)
	case int32:
		return cjson.Int(int64(x))
	case uint:
		return cjson.Number(float64(x))
	case uint64:
		return cjson.Number(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("codec: number %q: %w", x.String(), err)
		}
		return cjson.Number(f)
	case []any:
		arr, err := cjson.NewArray()
		if err != nil {
			return nil, err
		}
		for i, el := range x {
			child, err := FromAny(el)
			if err != nil {
				arr.Close()
				return nil, fmt.Errorf("codec: index %d: %w", i, err)
			}
			if err := arr.Append(child); err != nil {
				child.Close()
				arr.Close()
				return nil, err
			}
		}
		return arr, nil
	case map[string]any:
		obj, err := cjson.NewObject()
		if err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, err := FromAny(x[k])
			if err != nil {
				obj.Close()
				return nil, fmt.Errorf("codec: key %q: %w", k, err)
			}
			if err := obj.Set(k, child); err != nil {
				child.Close()
				obj.Close()
				return nil, err
			}
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("codec: unsupported Go type %T", v)
	}
}

// ToAny converts a tree into the dynamic Go mapping: map[string]any for
// objects, []any for arrays, float64 for numbers, bool, string, and nil.
// Duplicate object keys keep the last occurrence, matching what most Go
// JSON decoders do.
func ToAny(v *cjson.Value) (any, error) {
	switch v.Kind() {
	case cjson.KindNull:
		return nil, nil
	case cjson.KindBool:
		return v.AsBool()
	case cjson.KindNumber:
		return v.AsFloat64()
	case cjson.KindString:
		return v.AsString()
	case cjson.KindArray:
		out := []any{}
		var walkErr error
		err := v.Each(func(_ string, item *cjson.Value) bool {
			el, err := ToAny(item)
			if err != nil {
				walkErr = err
				return false
			}
			out = append(out, el)
			return true
		})
		if err != nil {
			return nil, err
		}
		if walkErr != nil {
			return nil, walkErr
		}
		return out, nil
	case cjson.KindObject:
		out := map[string]any{}
		var walkErr error
		err := v.Each(func(key string, item *cjson.Value) bool {
			el, err := ToAny(item)
			if err != nil {
				walkErr = err
				return false
			}
			out[key] = el
			return true
		})
		if err != nil {
			return nil, err
		}
		if walkErr != nil {
			return nil, walkErr
		}
		return out, nil
	default:
		return nil, fmt.Errorf("codec: cannot convert %s value", v.Kind())
	}
}
