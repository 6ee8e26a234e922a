package versions_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/omm/cmd/application"
	"github.com/agentstation/omm/cmd/omm/cmd/versions"
	"github.com/agentstation/omm/pkg/errors"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAddVersionCommand(t *testing.T) {
	path := writeStore(t, "- name: mod_a\n  author: Au1\n")

	stdout, err := run(t, versions.NewAddCommand(&application.Mock{}), path, "13.0")
	require.NoError(t, err)
	assert.Equal(t, "Added version '13.0' with pre-populated keys to all entries in '"+path+"'.\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "'13.0':\n    state: ''\n")
}

func TestRemoveVersionCommand(t *testing.T) {
	path := writeStore(t, "- name: mod_a\n  author: Au1\n  '13.0':\n    state: installed\n")

	stdout, err := run(t, versions.NewRemoveCommand(&application.Mock{}), path, "13.0")
	require.NoError(t, err)
	assert.Equal(t, "Removed version '13.0' from all entries in '"+path+"'.\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "13.0")
}

func TestVersionCommandsJSON(t *testing.T) {
	path := writeStore(t, "- name: mod_a\n  author: Au1\n")
	app := &application.Mock{OutputFormatFunc: func() string { return "json" }}

	stdout, err := run(t, versions.NewAddCommand(app), path, "13.0")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"version": "13.0"`)
	assert.Contains(t, stdout, `"records": 1`)
}

func TestVersionCommandsErrors(t *testing.T) {
	t.Run("missing store", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "absent.yaml")
		_, err := run(t, versions.NewAddCommand(&application.Mock{}), missing, "13.0")
		require.Error(t, err)
		assert.Equal(t, errors.ExitNotFound, errors.ExitCode(err))
		assert.NoFileExists(t, missing)
	})

	t.Run("invalid version", func(t *testing.T) {
		path := writeStore(t, "- name: mod_a\n  author: Au1\n")
		_, err := run(t, versions.NewRemoveCommand(&application.Mock{}), path, "13.x")
		require.Error(t, err)
		assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
	})
}
