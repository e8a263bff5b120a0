package value

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	NumberKind = Kind("number")
	TextKind   = Kind("text")
)

type Kind string

// Value is a closed tagged union. Number and Text are the only variants; the
// unexported method keeps other packages from adding more.
type Value interface {
	Kind() Kind
	NativeValue() any
	String() string

	variant()
}

// NewValue converts a Go native into a Value. Integers must fit in an int64
// and floats must be integral, which covers what the YAML and JSON decoders
// produce for number literals.
func NewValue(v any) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case string:
		return Text(v), nil
	case int:
		return Number(v), nil
	case int8:
		return Number(v), nil
	case int16:
		return Number(v), nil
	case int32:
		return Number(v), nil
	case int64:
		return Number(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return Number(v), nil
	case uint16:
		return Number(v), nil
	case uint32:
		return Number(v), nil
	case uint64:
		return fromUint(v)
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, NewTypeError("new", fmt.Sprintf("invalid number %s, not parsable as int", v))
		}
		return Number(i), nil
	case nil:
		return nil, NewTypeError("new", "cannot create a value from nil")
	default:
		return nil, NewTypeError("new", fmt.Sprintf("unsupported native type %T", v))
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, NewTypeError("new", fmt.Sprintf("number %d overflows int64", u))
	}
	return Number(u), nil
}

func fromFloat(f float64) (Value, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, NewTypeError("new", fmt.Sprintf("number %v is not an int64", f))
	}
	return Number(f), nil
}

// NativeValue unwraps v, returning nil for a nil Value.
func NativeValue(v Value) any {
	if v == nil {
		return nil
	}
	return v.NativeValue()
}
