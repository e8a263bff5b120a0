package eval

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Step struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Op   string `yaml:"op" json:"op"`
	Args []any  `yaml:"args,omitempty" json:"args,omitempty"`
}

type Program struct {
	Steps []Step `yaml:"steps" json:"steps"`
}

// Decode reads a YAML program. Unknown fields are rejected.
func Decode(input io.Reader) (Program, error) {
	var prog Program
	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)
	if err := dec.Decode(&prog); errors.Is(err, io.EOF) {
		return prog, nil
	} else if err != nil {
		return prog, fmt.Errorf("decoding program: %w", err)
	}
	for i, step := range prog.Steps {
		if step.Op == "" {
			return prog, fmt.Errorf("step %d is missing op", i)
		}
	}
	return prog, nil
}

func Unmarshal(data []byte) (Program, error) {
	return Decode(bytes.NewReader(data))
}
