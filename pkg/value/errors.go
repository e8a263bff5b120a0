package value

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// DomainError means the variant was accepted but its payload is outside
	// the range the operation handles.
	DomainError = ErrorKind("domain error")
	// TypeError means the operation does not accept the variant, or the
	// combination of variants, it was given.
	TypeError = ErrorKind("type error")
)

var (
	ErrDomain = errors.New(string(DomainError))
	ErrType   = errors.New(string(TypeError))
)

// EvalError is returned by every failing operation in this package. Match it
// with errors.Is(err, ErrDomain) or errors.Is(err, ErrType).
type EvalError struct {
	Kind ErrorKind
	Op   string
	Msg  string
}

func (e *EvalError) Error() string {
	return e.Msg
}

func (e *EvalError) Is(target error) bool {
	switch e.Kind {
	case DomainError:
		return target == ErrDomain
	case TypeError:
		return target == ErrType
	}
	return false
}

func NewDomainError(op, msg string) error {
	return &EvalError{
		Kind: DomainError,
		Op:   op,
		Msg:  msg,
	}
}

func NewTypeError(op, msg string) error {
	return &EvalError{
		Kind: TypeError,
		Op:   op,
		Msg:  msg,
	}
}

func errMixedAdd() error {
	return NewTypeError(AddOp.String(), "cannot add values of different types")
}

type ErrUnknownOperator struct {
	Op Operator
}

func (e *ErrUnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %q", string(e.Op))
}
