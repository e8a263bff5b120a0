package eval

import "fmt"

type ErrStep struct {
	Source string
	Index  int
	Name   string
	Op     string
	Err    error
}

func (e *ErrStep) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: step %d %q (%s): %v", e.Source, e.Index, e.Name, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: step %d (%s): %v", e.Source, e.Index, e.Op, e.Err)
}

func (e *ErrStep) Unwrap() error {
	return e.Err
}

type ErrUnboundReference struct {
	Name string
}

func (e *ErrUnboundReference) Error() string {
	return fmt.Sprintf("reference $%s does not name an earlier step that produced a value", e.Name)
}

type ErrUnknownOp struct {
	Op string
}

func (e *ErrUnknownOp) Error() string {
	return fmt.Sprintf("unknown op %q", e.Op)
}

type ErrArity struct {
	Op   string
	Want int
	Got  int
}

func (e *ErrArity) Error() string {
	return fmt.Sprintf("op %s takes %d argument(s), got %d", e.Op, e.Want, e.Got)
}
