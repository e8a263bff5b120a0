// Package eval runs sequences of value operations read from YAML programs.
package eval

import (
	"context"
)

// Eval runs a single step with no references available and returns its result.
func Eval(ctx context.Context, step Step, opts ...Option) (Result, error) {
	results, err := Run(ctx, Program{Steps: []Step{step}}, opts...)
	if err != nil {
		return Result{}, err
	}
	return results[0], results[0].Err
}
