package tagval

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/acorn-io/tagval/pkg/eval"
	"github.com/acorn-io/tagval/pkg/lookup"
)

type Option struct {
	SourceName string
	Continue   bool
	Table      *lookup.Table
	Context    context.Context
}

func (o Option) Complete() Option {
	if o.SourceName == "" {
		o.SourceName = "<inline>"
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	return o
}

type Options []Option

func (o Options) Merge() (result Option) {
	for _, opt := range o {
		if opt.SourceName != "" {
			result.SourceName = opt.SourceName
		}
		if opt.Continue {
			result.Continue = true
		}
		if opt.Table != nil {
			result.Table = opt.Table
		}
		if opt.Context != nil {
			result.Context = opt.Context
		}
	}
	return
}

type Decoder struct {
	opts  Option
	input io.Reader
}

func NewDecoder(input io.Reader, opts ...Option) *Decoder {
	return &Decoder{
		opts:  Options(opts).Merge().Complete(),
		input: input,
	}
}

// Decode reads a program and stores it, or the outcome of running it, in
// out. *eval.Program receives the parsed program, *[]eval.Result the raw
// results, and anything else the JSON form of the results.
func (d *Decoder) Decode(out any) error {
	prog, err := eval.Decode(d.input)
	if err != nil {
		return err
	}

	switch n := out.(type) {
	case *eval.Program:
		*n = prog
		return nil
	}

	policy := eval.Propagate
	if d.opts.Continue {
		policy = eval.Continue
	}

	results, err := eval.Run(d.opts.Context, prog, eval.Option{
		Policy:     policy,
		Table:      d.opts.Table,
		SourceName: d.opts.SourceName,
	})
	if err != nil {
		return err
	}

	switch n := out.(type) {
	case *[]eval.Result:
		*n = results
		return nil
	}

	natives := make([]map[string]any, 0, len(results))
	for _, r := range results {
		natives = append(natives, r.ToNative())
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(natives); err != nil {
		return err
	}

	return json.NewDecoder(buf).Decode(out)
}

func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}
