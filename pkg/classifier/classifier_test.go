package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/omm/pkg/records"
)

func record(name, author, version, state, evaluation string) records.Record {
	r := records.NewRecord(name, author)
	r.SetScope(version, records.NewScope(
		records.Field{Key: "state", Value: state},
		records.Field{Key: "auto_install", Value: ""},
		records.Field{Key: "evaluation", Value: evaluation},
		records.Field{Key: "comment", Value: ""},
	))
	return r
}

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		state      string
		evaluation string
		want       Category
		migrated   bool
	}{
		{"installed", "", NotEvaluated, false},
		{"not installed", "", NotEvaluated, false},
		{"", "", NotEvaluated, false},
		{"not installed", "required", RequiredNotInstalled, false},
		{"not installed", "desired", DesiredNotInstalled, false},
		{"installed", "not desired", NotDesiredInstalled, false},
		{"installed", "not required", NotRequiredInstalled, false},
		{"installed", "required", "", true},
		{"installed", "desired", "", false},
		{"not installed", "not required", "", false},
		{"", "required", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.state+"/"+tt.evaluation, func(t *testing.T) {
			store := records.Store{record("mod", "Au", "12.0", tt.state, tt.evaluation)}
			report := Classify(store, records.MustParseVersion("12.0"), AuthorFilter{})

			for _, c := range Categories() {
				if c == tt.want {
					assert.Equal(t, []string{"mod"}, report.Names(c), c)
				} else {
					assert.Empty(t, report.Names(c), c)
				}
			}
			if tt.migrated {
				assert.Equal(t, 1, report.Migrated)
			} else {
				assert.Zero(t, report.Migrated)
			}
		})
	}
}

func TestClassifyMissingScopeIsNotEvaluated(t *testing.T) {
	store := records.Store{record("mod_old", "Au", "11.0", "installed", "required")}

	report := Classify(store, records.MustParseVersion("12.0"), AuthorFilter{})

	assert.Equal(t, []string{"mod_old"}, report.Names(NotEvaluated))
	assert.Zero(t, report.Migrated)
}

func TestClassifySortsNamesAndKeepsCategoryOrder(t *testing.T) {
	store := records.Store{
		record("zeta", "Au", "12.0", "installed", ""),
		record("Alpha", "Au", "12.0", "installed", ""),
		record("beta", "Au", "12.0", "not installed", "required"),
		record("alpha", "Au", "12.0", "installed", ""),
	}

	report := Classify(store, records.MustParseVersion("12.0"), AuthorFilter{})

	assert.Equal(t, []string{"Alpha", "alpha", "zeta"}, report.Names(NotEvaluated))
	assert.Len(t, report.Groups, 5)
	for i, c := range Categories() {
		assert.Equal(t, c, report.Groups[i].Category)
	}
	assert.Equal(t, []Group{
		{Category: NotEvaluated, Names: []string{"Alpha", "alpha", "zeta"}},
		{Category: RequiredNotInstalled, Names: []string{"beta"}},
	}, report.NonEmpty())
}

func TestClassifyAuthorFilter(t *testing.T) {
	store := records.Store{
		record("mod_acme", "Acme Corp", "12.0", "installed", ""),
		record("mod_beta", "Beta Inc", "12.0", "installed", ""),
		record("mod_both", "Acme Corp, Beta Inc", "12.0", "installed", ""),
	}
	v := records.MustParseVersion("12.0")

	tests := []struct {
		name   string
		filter AuthorFilter
		want   []string
	}{
		{"no filter", AuthorFilter{}, []string{"mod_acme", "mod_beta", "mod_both"}},
		{"include", AuthorFilter{Include: []string{"acme"}}, []string{"mod_acme", "mod_both"}},
		{"include is case-insensitive", AuthorFilter{Include: []string{"ACME"}}, []string{"mod_acme", "mod_both"}},
		{"exclude", AuthorFilter{Exclude: []string{"beta"}}, []string{"mod_acme"}},
		{"exclude after include", AuthorFilter{Include: []string{"acme"}, Exclude: []string{"INC"}}, []string{"mod_acme"}},
		{"include matches nothing", AuthorFilter{Include: []string{"gamma"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Classify(store, v, tt.filter)
			assert.Equal(t, tt.want, report.Names(NotEvaluated))
		})
	}
}

func TestClassifyDoesNotModifyStore(t *testing.T) {
	store := records.Store{
		record("b", "Au", "12.0", "installed", ""),
		record("a", "Au", "12.0", "installed", ""),
	}
	before := store.Clone()

	Classify(store, records.MustParseVersion("12.0"), AuthorFilter{})

	assert.Equal(t, before, store)
}

func TestAuthorFilterIsEmpty(t *testing.T) {
	assert.True(t, AuthorFilter{}.IsEmpty())
	assert.False(t, AuthorFilter{Exclude: []string{"x"}}.IsEmpty())
}
