package value

import "fmt"

type Operator string

const (
	AddOp      = Operator("+")
	SqrtOp     = Operator("sqrt")
	IsNumberOp = Operator("is_number")
)

func (o Operator) String() string {
	return string(o)
}

// IsNumber reports whether v is the Number variant.
func IsNumber(v Value) bool {
	_, ok := v.(Number)
	return ok
}

func Sqrt(v Value) (Value, error) {
	switch v := v.(type) {
	case Number:
		return v.Sqrt()
	case Text:
		return v.Sqrt()
	default:
		return nil, NewTypeError(SqrtOp.String(), fmt.Sprintf("cannot compute sqrt of %s", describe(v)))
	}
}

// Add adds two numbers or concatenates two texts. Any other pairing is a
// TypeError. Number addition wraps on int64 overflow.
func Add(left, right Value) (Value, error) {
	switch l := left.(type) {
	case Number:
		return l.Add(right)
	case Text:
		return l.Add(right)
	default:
		return nil, errMixedAdd()
	}
}

func UnaryOperation(op Operator, val Value) (Value, error) {
	switch op {
	case SqrtOp:
		return Sqrt(val)
	default:
		return nil, &ErrUnknownOperator{Op: op}
	}
}

// UnaryPredicate applies an operator that answers a yes/no question about a
// value rather than producing a new one.
func UnaryPredicate(op Operator, val Value) (bool, error) {
	switch op {
	case IsNumberOp:
		return IsNumber(val), nil
	default:
		return false, &ErrUnknownOperator{Op: op}
	}
}

func BinaryOperation(op Operator, left, right Value) (Value, error) {
	switch op {
	case AddOp:
		return Add(left, right)
	default:
		return nil, &ErrUnknownOperator{Op: op}
	}
}

func describe(v Value) string {
	if v == nil {
		return "nil"
	}
	return string(v.Kind())
}
