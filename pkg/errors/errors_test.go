package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	pkgerrors "github.com/agentstation/omm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "store",
			ID:       "modules.yaml",
		}
		assert.Equal(t, "store modules.yaml not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("store", "x.yaml")
		wrapped := pkgerrors.WrapResource("analyse", "store", "x.yaml", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("version", "12.x", "component \"x\" is not a number")
		assert.Equal(t, `validation failed for field version: component "x" is not a number`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty"}
		assert.Equal(t, "validation failed: empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	inner := errors.New("mapping expected")
	err := pkgerrors.NewParseError("yaml", "store.yaml", "record 3 is not a mapping", inner)

	assert.Equal(t, "parse error in yaml file store.yaml: record 3 is not a mapping", err.Error())
	assert.True(t, pkgerrors.IsMalformed(err))
	assert.ErrorIs(t, err, inner)

	err.Line = 7
	assert.Equal(t, "parse error in yaml at store.yaml:7: record 3 is not a mapping", err.Error())
}

func TestIOError(t *testing.T) {
	err := pkgerrors.WrapIO("read", "/tmp/store.yaml", fs.ErrPermission)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsIO(err))
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "IO error during read of /tmp/store.yaml")

	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, pkgerrors.ExitOK},
		{"plain", errors.New("boom"), pkgerrors.ExitFailure},
		{"validation", pkgerrors.NewValidationError("version", "", "empty"), pkgerrors.ExitUsage},
		{"config", pkgerrors.NewConfigError("output", "bad format", nil), pkgerrors.ExitUsage},
		{"not found", pkgerrors.NewNotFoundError("store", "a.yaml"), pkgerrors.ExitNotFound},
		{"parse", pkgerrors.NewParseError("yaml", "a.yaml", "bad", nil), pkgerrors.ExitMalformed},
		{"io", pkgerrors.NewIOError("write", "a.yaml", errors.New("disk full")), pkgerrors.ExitIOFailure},
		{
			"wrapped parse",
			pkgerrors.WrapResource("import", "store", "a.yaml", pkgerrors.NewParseError("yaml", "a.yaml", "bad", nil)),
			pkgerrors.ExitMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.ExitCode(tt.err))
		})
	}
}
