package eval

import (
	"context"
	"errors"
	"strings"

	"github.com/acorn-io/tagval/pkg/value"
)

type Result struct {
	Step int
	Name string
	Op   string
	// Value is set when the step produced a Value. is_number steps produce a
	// bool instead, available through NativeValue.
	Value  value.Value
	Native any
	Err    error
}

func (r Result) NativeValue() any {
	return r.Native
}

// ToNative renders the result for JSON or YAML output.
func (r Result) ToNative() map[string]any {
	out := map[string]any{
		"step": r.Step,
		"op":   r.Op,
	}
	if r.Name != "" {
		out["name"] = r.Name
	}
	if r.Err != nil {
		out["error"] = r.Err.Error()
	} else {
		out["value"] = r.Native
	}
	return out
}

// Failed joins the errors recorded on results, or returns nil if every step
// succeeded.
func Failed(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

// Run evaluates the steps of prog in order. Named steps that produce a Value
// can be referenced by later steps as "$name".
func Run(ctx context.Context, prog Program, opts ...Option) ([]Result, error) {
	o := Options(opts).Merge().Complete()
	env := ScopeData{}
	results := make([]Result, 0, len(prog.Steps))

	for i, step := range prog.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := Result{
			Step: i,
			Name: step.Name,
			Op:   step.Op,
		}

		v, native, err := evalStep(o, env, step)
		if err != nil {
			err = &ErrStep{
				Source: o.SourceName,
				Index:  i,
				Name:   step.Name,
				Op:     step.Op,
				Err:    err,
			}
			if o.Policy != Continue {
				return results, err
			}
			result.Err = err
			results = append(results, result)
			continue
		}

		result.Value = v
		result.Native = native
		env.Set(step.Name, v)
		results = append(results, result)
	}

	return results, nil
}

func evalStep(o Option, env ScopeData, step Step) (value.Value, any, error) {
	args, err := resolveArgs(env, step.Args)
	if err != nil {
		return nil, nil, err
	}

	switch step.Op {
	case string(value.SqrtOp):
		if err := arity(step.Op, 1, args); err != nil {
			return nil, nil, err
		}
		return produced(value.UnaryOperation(value.SqrtOp, args[0]))
	case string(value.IsNumberOp):
		if err := arity(step.Op, 1, args); err != nil {
			return nil, nil, err
		}
		ok, err := value.UnaryPredicate(value.IsNumberOp, args[0])
		if err != nil {
			return nil, nil, err
		}
		return nil, ok, nil
	case "add", string(value.AddOp):
		if err := arity(step.Op, 2, args); err != nil {
			return nil, nil, err
		}
		return produced(value.BinaryOperation(value.AddOp, args[0], args[1]))
	case "capital":
		if err := arity(step.Op, 1, args); err != nil {
			return nil, nil, err
		}
		state, ok := args[0].(value.Text)
		if !ok {
			return nil, nil, value.NewTypeError(step.Op, "capital lookup requires a string")
		}
		capital, err := o.Table.Get(string(state))
		if err != nil {
			return nil, nil, err
		}
		return produced(value.Text(capital), nil)
	default:
		return nil, nil, &ErrUnknownOp{Op: step.Op}
	}
}

func produced(v value.Value, err error) (value.Value, any, error) {
	if err != nil {
		return nil, nil, err
	}
	return v, v.NativeValue(), nil
}

func arity(op string, want int, args []value.Value) error {
	if len(args) != want {
		return &ErrArity{Op: op, Want: want, Got: len(args)}
	}
	return nil
}

// resolveArgs converts literals to values and replaces "$name" with the value
// of the named step. "$$" escapes a literal leading dollar sign.
func resolveArgs(env ScopeData, args []any) ([]value.Value, error) {
	result := make([]value.Value, 0, len(args))
	for _, arg := range args {
		if s, ok := arg.(string); ok && strings.HasPrefix(s, "$") {
			if strings.HasPrefix(s, "$$") {
				result = append(result, value.Text(s[1:]))
				continue
			}
			v, ok := env.Get(s[1:])
			if !ok {
				return nil, &ErrUnboundReference{Name: s[1:]}
			}
			result = append(result, v)
			continue
		}
		v, err := value.NewValue(arg)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
