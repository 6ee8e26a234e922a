package reconciler

import (
	"github.com/agentstation/omm/pkg/constants"
	"github.com/agentstation/omm/pkg/records"
)

// Partial is the snapshot-owned part of a version scope: the two columns
// whose keys come from the snapshot header.
type Partial struct {
	Fields []records.Field
}

// NewPartial builds a partial scope from the state and auto-install columns.
func NewPartial(stateKey, state, autoInstallKey, autoInstall string) Partial {
	return Partial{Fields: []records.Field{
		{Key: stateKey, Value: state},
		{Key: autoInstallKey, Value: autoInstall},
	}}
}

// MergeScope combines a previously stored scope with freshly imported
// columns. The imported columns overwrite their keys, evaluation and comment
// are carried over from old (empty when old is nil), and any other key of
// old is kept in place.
func MergeScope(old *records.Scope, partial Partial) records.Scope {
	var merged records.Scope
	if old != nil {
		merged = old.Clone()
	}

	for _, f := range partial.Fields {
		merged.Set(f.Key, f.Value)
	}

	var evaluation, comment string
	if old != nil {
		evaluation, comment = old.Evaluation(), old.Comment()
	}
	merged.Set(constants.FieldEvaluation, evaluation)
	merged.Set(constants.FieldComment, comment)

	return merged
}

// demote marks a record the snapshot no longer lists as not installed for
// the version. An existing scope only has its state replaced.
func demote(record *records.Record, version string) {
	scope, ok := record.Scope(version)
	if !ok {
		scope = records.EmptyScope()
	} else {
		scope = scope.Clone()
	}
	scope.Set(constants.FieldState, constants.StateNotInstalled)
	record.SetScope(version, scope)
}

// mergeRecord applies a staged module to its existing record.
func mergeRecord(record *records.Record, s *staged, version string) {
	var old *records.Scope
	if existing, ok := record.Scope(version); ok {
		old = &existing
	}
	record.SetScope(version, MergeScope(old, s.partial))
	record.Author = s.author
}

// newRecord seeds a record for a module seen for the first time.
func newRecord(s *staged, version string) records.Record {
	r := records.NewRecord(s.name, s.author)
	r.SetScope(version, MergeScope(nil, s.partial))
	return r
}
