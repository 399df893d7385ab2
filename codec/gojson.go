package codec

import (
	"github.com/goccy/go-json"

	cjson "github.com/reoring/cjson"
)

// Encode marshals an arbitrary Go value with go-json and parses the
// result into a new owned tree. Struct tags, Marshaler implementations,
// and omitempty all behave exactly as under go-json.
func Encode(v any) (*cjson.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return cjson.Parse(data)
}

// Decode prints the tree and unmarshals the text into out with go-json.
func Decode(v *cjson.Value, out any) error {
	data, err := v.PrintUnformatted()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
