package records

import "github.com/agentstation/omm/pkg/constants"

// Field is one key/value pair of a version scope.
type Field struct {
	Key   string
	Value string
}

// Scope is the per-(record, version) sub-record. Its keys are kept in order
// because two of them come from the snapshot header and hand-added keys must
// survive a round trip through the store.
type Scope struct {
	fields []Field
}

// NewScope builds a scope from fields in the given order. Later duplicates
// overwrite earlier ones in place.
func NewScope(fields ...Field) Scope {
	var s Scope
	for _, f := range fields {
		s.Set(f.Key, f.Value)
	}
	return s
}

// EmptyScope returns a scope with state, auto_install, evaluation and comment all empty.
func EmptyScope() Scope {
	var s Scope
	for _, key := range constants.ScopeFields {
		s.Set(key, "")
	}
	return s
}

// Get returns the value for key and whether it is present.
func (s Scope) Get(key string) (string, bool) {
	for _, f := range s.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Value returns the value for key, or "" when absent.
func (s Scope) Value(key string) string {
	v, _ := s.Get(key)
	return v
}

// Set replaces the value for key in place, or appends it.
func (s *Scope) Set(key, value string) {
	for i := range s.fields {
		if s.fields[i].Key == key {
			s.fields[i].Value = value
			return
		}
	}
	s.fields = append(s.fields, Field{Key: key, Value: value})
}

// Fields returns a copy of the fields in order.
func (s Scope) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Len returns the number of fields.
func (s Scope) Len() int {
	return len(s.fields)
}

// IsEmpty reports whether the scope has no fields at all.
func (s Scope) IsEmpty() bool {
	return len(s.fields) == 0
}

// Clone returns a deep copy.
func (s Scope) Clone() Scope {
	return Scope{fields: s.Fields()}
}

// State returns the installation state.
func (s Scope) State() string { return s.Value(constants.FieldState) }

// AutoInstall returns the auto-install flag.
func (s Scope) AutoInstall() string { return s.Value(constants.FieldAutoInstall) }

// Evaluation returns the human evaluation.
func (s Scope) Evaluation() string { return s.Value(constants.FieldEvaluation) }

// Comment returns the free-text comment.
func (s Scope) Comment() string { return s.Value(constants.FieldComment) }
