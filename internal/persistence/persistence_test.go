package persistence

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/logging"
	"github.com/agentstation/omm/pkg/records"
)

func sampleStore() records.Store {
	a := records.NewRecord("mod_a", "Acme Corp")
	a.SetScope("12.0", records.NewScope(
		records.Field{Key: "state", Value: "installed"},
		records.Field{Key: "auto_install", Value: "f"},
		records.Field{Key: "evaluation", Value: ""},
		records.Field{Key: "comment", Value: ""},
	))
	a.SetScope("11.0", records.NewScope(
		records.Field{Key: "state", Value: "not installed"},
		records.Field{Key: "auto_install", Value: "t"},
		records.Field{Key: "evaluation", Value: "required"},
		records.Field{Key: "comment", Value: "replaced by: mod_b"},
	))
	b := records.NewRecord("mod_b", "")
	return records.Store{a, b}
}

func TestEncodeKeepsKeyOrder(t *testing.T) {
	data, err := Encode(sampleStore())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "- name: mod_a\n  author: Acme Corp\n")
	assert.Contains(t, text, "'12.0':")
	assert.Contains(t, text, "evaluation: ''")
	assert.Contains(t, text, "- name: mod_b\n")
	assert.Less(t, strings.Index(text, "'12.0':"), strings.Index(text, "'11.0':"))
	assert.Less(t, strings.Index(text, "state: installed"), strings.Index(text, "auto_install: f"))
	assert.Less(t, strings.Index(text, "auto_install: f"), strings.Index(text, "evaluation: ''"))
}

func TestEncodeDecodeIsStable(t *testing.T) {
	first, err := Encode(sampleStore())
	require.NoError(t, err)

	store, err := Decode(first, "store.yaml")
	require.NoError(t, err)
	assert.Equal(t, sampleStore(), store)

	second, err := Encode(store)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestEncodeDecodeQuotedValues(t *testing.T) {
	values := []string{
		"see\tticket 42",
		"\n",
		"\n\n",
		"line one\nline two",
		" \n leading",
		"a: b",
		"yes",
		"null",
		"~",
		"#x",
		"x # y",
		" padded ",
		"-",
		"- item",
		"? key",
		"'quoted'",
		"it's",
		`back\slash`,
		`"double"`,
		"[flow]",
		"bell\a",
		"nel\u0085",
		"sep\u2028",
		"12.0",
	}

	for _, v := range values {
		t.Run(strconv.Quote(v), func(t *testing.T) {
			rec := records.NewRecord("mod_a", v)
			rec.SetScope("12.0", records.NewScope(
				records.Field{Key: "state", Value: "installed"},
				records.Field{Key: "comment", Value: v},
			))
			rec.SetScope("11.0", records.NewScope(
				records.Field{Key: "state", Value: v},
			))
			store := records.Store{rec}

			first, err := Encode(store)
			require.NoError(t, err)

			decoded, err := Decode(first, "store.yaml")
			require.NoError(t, err, string(first))
			require.Len(t, decoded, 1)
			assert.Equal(t, v, decoded[0].Author)
			assert.Equal(t, []string{"12.0", "11.0"}, decoded[0].Versions())

			scope, ok := decoded[0].Scope("12.0")
			require.True(t, ok)
			assert.Equal(t, v, scope.Value("comment"))

			_, err = records.Normalize(decoded)
			require.NoError(t, err)

			second, err := Encode(decoded)
			require.NoError(t, err)
			assert.Equal(t, string(first), string(second))
		})
	}
}

func TestEncodeDoubleQuotesControlCharacters(t *testing.T) {
	rec := records.NewRecord("mod_a", "Au1")
	rec.SetScope("12.0", records.NewScope(records.Field{Key: "comment", Value: "see\tticket 42"}))

	data, err := Encode(records.Store{rec})
	require.NoError(t, err)
	assert.Contains(t, string(data), `comment: "see\tticket 42"`)
}

func TestDecodeKeepsLiteralKeys(t *testing.T) {
	doc := `- name: mod_a
  author: Acme
  12.10:
    state: installed
    auto_install: false
    evaluation:
    comment: ''
  12.0:
    state: not installed
    ticket: 42
`
	store, err := Decode([]byte(doc), "store.yaml")
	require.NoError(t, err)
	require.Len(t, store, 1)

	rec := store[0]
	assert.Equal(t, []string{"12.10", "12.0"}, rec.Versions())

	scope, ok := rec.Scope("12.10")
	require.True(t, ok)
	assert.Equal(t, []records.Field{
		{Key: "state", Value: "installed"},
		{Key: "auto_install", Value: "false"},
		{Key: "evaluation", Value: ""},
		{Key: "comment", Value: ""},
	}, scope.Fields())

	older, ok := rec.Scope("12.0")
	require.True(t, ok)
	assert.Equal(t, "42", older.Value("ticket"))
}

func TestDecodeEmptyDocuments(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":        "",
		"comment only": "# nothing yet\n",
		"empty list":   "[]\n",
		"null":         "null\n",
	} {
		t.Run(name, func(t *testing.T) {
			store, err := Decode([]byte(doc), "store.yaml")
			require.NoError(t, err)
			assert.Empty(t, store)
		})
	}
}

func TestDecodeRejectsWrongShape(t *testing.T) {
	tests := map[string]string{
		"mapping document":    "name: mod_a\n",
		"scalar document":     "hello\n",
		"scalar record":       "- mod_a\n",
		"record without name": "- author: Acme\n",
		"scalar scope":        "- name: mod_a\n  author: Acme\n  '12.0': installed\n",
		"list scope":          "- name: mod_a\n  '12.0':\n  - installed\n",
		"nested scope value":  "- name: mod_a\n  '12.0':\n    state:\n      nested: true\n",
		"invalid yaml":        "- name: [mod_a\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc), "store.yaml")
			require.Error(t, err)
			assert.True(t, errors.IsMalformed(err), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := New()

	t.Run("missing file", func(t *testing.T) {
		_, err := files.Load(filepath.Join(dir, "missing.yaml"))
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("missing file allowed", func(t *testing.T) {
		store, existed, err := files.LoadOrEmpty(filepath.Join(dir, "missing.yaml"))
		require.NoError(t, err)
		assert.False(t, existed)
		assert.Empty(t, store)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0o644))

		_, _, err := files.LoadOrEmpty(path)
		assert.True(t, errors.IsMalformed(err))
	})
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modules.yaml")
	logger := logging.NewTestLogger(t)
	files := New(WithLogger(logger.Logger))

	require.NoError(t, files.Save(path, sampleStore()))

	store, existed, err := files.LoadOrEmpty(path)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, sampleStore(), store)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")

	logger.AssertContains(t, "Store saved")
}

func TestSaveReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old content\n"), 0o600))

	files := New()
	require.NoError(t, files.Save(path, records.Store{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "modules.yaml")

	err := New().Save(path, sampleStore())
	assert.True(t, errors.IsIO(err))
}
