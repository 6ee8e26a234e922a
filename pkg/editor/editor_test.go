package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/records"
)

func sampleStore() records.Store {
	b := records.NewRecord("mod_b", "Au2")
	b.SetScope("11.0", records.NewScope(
		records.Field{Key: "state", Value: "installed"},
		records.Field{Key: "evaluation", Value: "required"},
	))
	a := records.NewRecord("mod_a", "Au1")
	a.SetScope("12.0", records.NewScope(
		records.Field{Key: "state", Value: "installed"},
		records.Field{Key: "evaluation", Value: "desired"},
	))
	return records.Store{b, a}
}

func TestAddVersion(t *testing.T) {
	store := sampleStore()
	before := store.Clone()

	out, err := AddVersion(store, "13.0")
	require.NoError(t, err)

	assert.Equal(t, []string{"mod_a", "mod_b"}, out.Names())
	assert.Equal(t, []string{"13.0", "12.0"}, out[0].Versions())
	assert.Equal(t, []string{"13.0", "11.0"}, out[1].Versions())

	scope, ok := out[0].Scope("13.0")
	require.True(t, ok)
	assert.Equal(t, []records.Field{
		{Key: "state", Value: ""},
		{Key: "auto_install", Value: ""},
		{Key: "evaluation", Value: ""},
		{Key: "comment", Value: ""},
	}, scope.Fields())

	assert.Equal(t, before, store)
}

func TestAddVersionReplacesExistingScope(t *testing.T) {
	out, err := AddVersion(sampleStore(), "12.0")
	require.NoError(t, err)

	scope, ok := out[0].Scope("12.0")
	require.True(t, ok)
	assert.Equal(t, records.EmptyScope().Fields(), scope.Fields())
}

func TestAddVersionSortsNumerically(t *testing.T) {
	out, err := AddVersion(sampleStore(), "9.0")
	require.NoError(t, err)

	assert.Equal(t, []string{"12.0", "9.0"}, out[0].Versions())
}

func TestRemoveVersion(t *testing.T) {
	store := sampleStore()
	before := store.Clone()

	out, err := RemoveVersion(store, "12.0")
	require.NoError(t, err)

	assert.Equal(t, []string{"mod_a", "mod_b"}, out.Names())
	assert.Empty(t, out[0].Versions())
	assert.Equal(t, "Au1", out[0].Author)
	assert.Equal(t, []string{"11.0"}, out[1].Versions())

	assert.Equal(t, before, store)
}

func TestRemoveVersionAbsentEverywhere(t *testing.T) {
	out, err := RemoveVersion(sampleStore(), "14.0")
	require.NoError(t, err)

	assert.Equal(t, []string{"12.0"}, out[0].Versions())
	assert.Equal(t, []string{"11.0"}, out[1].Versions())
}

func TestInvalidVersion(t *testing.T) {
	for _, v := range []string{"", "12.x", "12..0", "v12", ".1"} {
		t.Run(v, func(t *testing.T) {
			_, err := AddVersion(sampleStore(), v)
			assert.True(t, errors.IsValidationError(err))

			_, err = RemoveVersion(sampleStore(), v)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
