package eval

import "github.com/acorn-io/tagval/pkg/value"

// ScopeData holds the values of named steps that have already run.
type ScopeData map[string]value.Value

func (m ScopeData) Get(key string) (value.Value, bool) {
	v, ok := m[key]
	return v, ok
}

func (m ScopeData) Set(key string, v value.Value) {
	if key == "" || v == nil {
		return
	}
	m[key] = v
}
