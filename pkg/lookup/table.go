// Package lookup provides a read-only table mapping region names to their
// capitals. The table is built once and never modified afterwards.
package lookup

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed capitals.yaml
var capitalsYAML []byte

var defaultTable = sync.OnceValues(func() (Table, error) {
	return Load(bytes.NewReader(capitalsYAML))
})

type ErrNotFound struct {
	Key string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("no capital found for %s", e.Key)
}

type Table struct {
	entries map[string]string
}

// Default returns the built-in table of state capitals.
func Default() Table {
	t, err := defaultTable()
	if err != nil {
		panic(fmt.Sprintf("embedded capitals table is invalid: %v", err))
	}
	return t
}

func New(entries map[string]string) Table {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return Table{entries: copied}
}

// Load reads a YAML mapping of region names to capitals.
func Load(r io.Reader) (Table, error) {
	entries := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return Table{}, fmt.Errorf("decoding lookup table: %w", err)
	}
	return Table{entries: entries}, nil
}

func (t Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

func (t Table) Get(key string) (string, error) {
	v, ok := t.Lookup(key)
	if !ok {
		return "", &ErrNotFound{Key: key}
	}
	return v, nil
}

func (t Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t Table) Len() int {
	return len(t.entries)
}
