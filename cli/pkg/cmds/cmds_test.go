package cmds

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/acorn-io/tagval/pkg/value"
	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type syncCounter struct {
	zapcore.Core
	syncs int
}

func (s *syncCounter) Sync() error {
	s.syncs++
	return nil
}

func runWith(t *testing.T, tv *TagVal, args ...string) (string, error) {
	t.Helper()
	root := NewRoot(tv)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := tv.Execute(root)
	return buf.String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWith(t, &TagVal{logger: zap.NewNop()}, args...)
}

func TestOps(t *testing.T) {
	tests := []struct {
		args   []string
		expect string
	}{
		{args: []string{"sqrt", "25"}, expect: "5\n"},
		{args: []string{"sqrt", "26"}, expect: "5\n"},
		{args: []string{"sqrt", "0"}, expect: "0\n"},
		{args: []string{"add", "-5", "3"}, expect: "-2\n"},
		{args: []string{"add", "-5", "-6"}, expect: "-11\n"},
		{args: []string{"add", "-5", "3", "-o", "yaml"}, expect: "-2\n"},
		{args: []string{"is-number", "-7"}, expect: "true\n"},
		{args: []string{"add", "5", "6"}, expect: "11\n"},
		{args: []string{"add", "Hello", " world!"}, expect: "\"Hello world!\"\n"},
		{args: []string{"add", "$a", "b"}, expect: "\"$ab\"\n"},
		{args: []string{"is-number", "5"}, expect: "true\n"},
		{args: []string{"is-number", "abc"}, expect: "false\n"},
		{args: []string{"capital", "Washington"}, expect: "\"Olympia\"\n"},
		{args: []string{"-o", "yaml", "capital", "Washington"}, expect: "Olympia\n"},
	}

	for _, test := range tests {
		t.Run(test.args[0], func(t *testing.T) {
			out, err := run(t, test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.expect, out)
		})
	}
}

func TestOpErrors(t *testing.T) {
	_, err := run(t, "add", "5", "abc")
	assert.True(t, errors.Is(err, value.ErrType))

	_, err = run(t, "sqrt", "-1")
	assert.True(t, errors.Is(err, value.ErrDomain))
	assert.EqualError(t, err, "<args>: step 0 (sqrt): cannot compute sqrt of negative number")

	_, err = run(t, "sqrt", "--", "-1")
	assert.True(t, errors.Is(err, value.ErrDomain))

	_, err = run(t, "add", "-5", "abc")
	assert.True(t, errors.Is(err, value.ErrType))

	_, err = run(t, "sqrt", "1", "2")
	assert.EqualError(t, err, "accepts 1 arg(s), received 2")

	_, err = run(t, "sqrt", "--bogus", "4")
	assert.EqualError(t, err, "unknown flag: --bogus")

	_, err = run(t, "sqrt", "abc")
	assert.EqualError(t, err, "<args>: step 0 (sqrt): cannot compute sqrt of string")

	_, err = run(t, "capital", "Texas")
	assert.EqualError(t, err, "<args>: step 0 (capital): no capital found for Texas")

	_, err = run(t, "-o", "xml", "sqrt", "4")
	assert.EqualError(t, err, `unknown output format "xml"`)
}

const program = `steps:
    - {name: c, op: add, args: [5, 6]}
    - {op: sqrt, args: [$c]}
    - {op: add, args: [5, abc]}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEval(t *testing.T) {
	path := writeFile(t, "prog.yaml", program)

	_, err := run(t, "eval", path)
	assert.True(t, errors.Is(err, value.ErrType))

	out, err := run(t, "eval", "--continue", path)
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, float64(11), results[0]["value"])
	assert.Equal(t, float64(3), results[1]["value"])
	assert.Contains(t, results[2]["error"], "cannot add values of different types")
}

func TestEvalTable(t *testing.T) {
	table := writeFile(t, "table.yaml", "Oregon: Salem\n")
	path := writeFile(t, "prog.yaml", "steps:\n  - {op: capital, args: [Oregon]}\n")

	out, err := run(t, "-o", "yaml", "eval", "--table", table, path)
	require.NoError(t, err)
	autogold.Expect("- op: capital\n  step: 0\n  value: Salem\n").Equal(t, out)
}

func TestFmt(t *testing.T) {
	path := writeFile(t, "prog.yaml", program)

	_, err := run(t, "fmt", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	autogold.Expect(`steps:
  - name: c
    op: add
    args:
      - 5
      - 6
  - op: sqrt
    args:
      - $c
  - op: add
    args:
      - 5
      - abc
`).Equal(t, string(data))

	again, err := Format(data)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestOpHelp(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		out, err := run(t, "sqrt", flag)
		require.NoError(t, err)
		assert.Contains(t, out, "Integer square root of a non-negative number")
		assert.Contains(t, out, "sqrt VALUE")
	}
}

func TestExecuteSyncsLoggerOnFailure(t *testing.T) {
	core := &syncCounter{Core: zapcore.NewNopCore()}
	tv := &TagVal{logger: zap.New(core)}

	_, err := runWith(t, tv, "sqrt", "-1")
	require.Error(t, err)
	assert.Equal(t, 1, core.syncs)

	core.syncs = 0
	path := writeFile(t, "prog.yaml", program)
	_, err = runWith(t, tv, "eval", path)
	require.Error(t, err)
	assert.Equal(t, 1, core.syncs)
}
