package eval

import "github.com/acorn-io/tagval/pkg/lookup"

type Policy string

const (
	// Propagate stops at the first failing step and returns its error.
	Propagate = Policy("propagate")
	// Continue records the error on the step's Result and runs the next step.
	Continue = Policy("continue")
)

type Option struct {
	Policy     Policy
	Table      *lookup.Table
	SourceName string
}

func (o Option) Complete() Option {
	if o.Policy == "" {
		o.Policy = Propagate
	}
	if o.Table == nil {
		t := lookup.Default()
		o.Table = &t
	}
	if o.SourceName == "" {
		o.SourceName = "<inline>"
	}
	return o
}

type Options []Option

func (o Options) Merge() (result Option) {
	for _, opt := range o {
		if opt.Policy != "" {
			result.Policy = opt.Policy
		}
		if opt.Table != nil {
			result.Table = opt.Table
		}
		if opt.SourceName != "" {
			result.SourceName = opt.SourceName
		}
	}
	return
}
