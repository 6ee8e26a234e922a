package compare_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/omm/cmd/application"
	"github.com/agentstation/omm/cmd/omm/cmd/compare"
)

const store = `- name: mod_a
  author: Au1
  '11.0':
    state: installed
  '12.0':
    state: not installed
- name: mod_b
  author: Au2
  '11.0':
    state: installed
  '12.0':
    state: installed
`

func run(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := compare.NewCommand(app)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(store), 0o644))
	return path
}

func TestCompareCommand(t *testing.T) {
	path := writeStore(t)

	stdout, err := run(t, &application.Mock{}, path, "11.0", "12.0")
	require.NoError(t, err)
	assert.Equal(t, "Name: mod_a, State in 11.0: installed, State in 12.0: not installed\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, store, string(data))
}

func TestCompareCommandFormats(t *testing.T) {
	path := writeStore(t)

	t.Run("json", func(t *testing.T) {
		app := &application.Mock{OutputFormatFunc: func() string { return "json" }}
		stdout, err := run(t, app, path, "11.0", "12.0")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"state_a": "installed"`)
		assert.Contains(t, stdout, `"state_b": "not installed"`)
	})

	t.Run("table", func(t *testing.T) {
		app := &application.Mock{OutputFormatFunc: func() string { return "table" }}
		stdout, err := run(t, app, path, "11.0", "12.0")
		require.NoError(t, err)
		assert.Contains(t, stdout, "mod_a")
		assert.NotContains(t, stdout, "mod_b")
	})

	t.Run("unknown", func(t *testing.T) {
		app := &application.Mock{OutputFormatFunc: func() string { return "xml" }}
		_, err := run(t, app, path, "11.0", "12.0")
		require.Error(t, err)
	})
}

func TestCompareCommandNoChanges(t *testing.T) {
	path := writeStore(t)

	stdout, err := run(t, &application.Mock{}, path, "11.0", "13.0")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}
