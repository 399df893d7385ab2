package cjson

import "github.com/reoring/cjson/internal/cbind"

// Kind identifies the JSON type of a Value.
type Kind int

const (
	KindInvalid Kind = iota // Released or corrupt node.
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindRaw // Pre-rendered JSON fragment stored verbatim (cJSON "raw").
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindRaw:
		return "raw"
	default:
		return "invalid"
	}
}

func kindOf(n cbind.Node) Kind {
	switch cbind.TypeOf(n) {
	case cbind.TypeNull:
		return KindNull
	case cbind.TypeFalse, cbind.TypeTrue:
		return KindBool
	case cbind.TypeNumber:
		return KindNumber
	case cbind.TypeString:
		return KindString
	case cbind.TypeArray:
		return KindArray
	case cbind.TypeObject:
		return KindObject
	case cbind.TypeRaw:
		return KindRaw
	default:
		return KindInvalid
	}
}
