package cmds

import (
	"bytes"
	"fmt"
	"os"

	"github.com/acorn-io/tagval/pkg/eval"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Fmt struct {
	root *TagVal
}

func NewFmt(root *TagVal) *cobra.Command {
	f := &Fmt{root: root}
	return &cobra.Command{
		Use:   "fmt [flags] [FILE]...",
		Short: "Formats program files, writing the output to the source file if changed",
		RunE:  f.Run,
	}
}

func (e *Fmt) Run(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("reading %s: %w", arg, err)
		}

		newData, err := Format(data)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", arg, err)
		}

		if !bytes.Equal(data, newData) {
			e.root.Logger().Debug("rewriting", zap.String("file", arg))
			err := os.WriteFile(arg, newData, 0644)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Format decodes a program and re-encodes it with two space indentation.
func Format(data []byte) ([]byte, error) {
	prog, err := eval.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(prog); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
