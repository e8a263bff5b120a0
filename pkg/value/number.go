package value

import (
	"math"
	"strconv"
)

type Number int64

func (n Number) Kind() Kind {
	return NumberKind
}

func (n Number) NativeValue() any {
	return int64(n)
}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n Number) variant() {}

// Sqrt truncates the float64 square root back to an integer. Above 2^53 the
// conversion to float64 rounds, so the result can be off by one.
func (n Number) Sqrt() (Value, error) {
	if n < 0 {
		return nil, NewDomainError(SqrtOp.String(), "cannot compute sqrt of negative number")
	}
	return Number(math.Sqrt(float64(n))), nil
}

// Add wraps on overflow, like any int64 addition in Go.
func (n Number) Add(right Value) (Value, error) {
	r, ok := right.(Number)
	if !ok {
		return nil, errMixedAdd()
	}
	return n + r, nil
}
