package value

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValue(t *testing.T) {
	tests := []struct {
		in     any
		expect Value
	}{
		{in: 5, expect: Number(5)},
		{in: int8(-3), expect: Number(-3)},
		{in: uint32(7), expect: Number(7)},
		{in: uint64(math.MaxInt64), expect: Number(math.MaxInt64)},
		{in: 4.0, expect: Number(4)},
		{in: json.Number("12"), expect: Number(12)},
		{in: "abc", expect: Text("abc")},
		{in: Text("x"), expect: Text("x")},
	}

	for _, test := range tests {
		v, err := NewValue(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.expect, v)
	}
}

func TestNewValueErrors(t *testing.T) {
	for _, in := range []any{nil, 1.5, uint64(math.MaxUint64), json.Number("1.5"), true, []any{1}} {
		_, err := NewValue(in)
		require.Error(t, err, "%v", in)
		assert.True(t, errors.Is(err, ErrType))
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "-12", Number(-12).String())
	assert.Equal(t, `"a b"`, Text("a b").String())
	assert.Equal(t, NumberKind, Number(0).Kind())
	assert.Equal(t, TextKind, Text("").Kind())
	assert.Nil(t, NativeValue(nil))
}
