package value

import "strconv"

type Text string

func (s Text) Kind() Kind {
	return TextKind
}

func (s Text) NativeValue() any {
	return (string)(s)
}

func (s Text) String() string {
	return strconv.Quote(string(s))
}

func (s Text) variant() {}

func (s Text) Sqrt() (Value, error) {
	return nil, NewTypeError(SqrtOp.String(), "cannot compute sqrt of string")
}

func (s Text) Add(right Value) (Value, error) {
	r, ok := right.(Text)
	if !ok {
		return nil, errMixedAdd()
	}
	return s + r, nil
}
