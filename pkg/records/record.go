// Package records defines the data model shared by every omm operation:
// records keyed by module name, each carrying version-scoped sub-records,
// and the normalization that gives a store its canonical order.
package records

// Record is one tracked module.
type Record struct {
	Name   string
	Author string

	scopes []entry
}

// entry pairs a version key with its scope. Keys are kept as written in the
// store; they are only parsed when the store is normalized.
type entry struct {
	key   string
	scope Scope
}

// NewRecord creates a record with no version scopes.
func NewRecord(name, author string) Record {
	return Record{Name: name, Author: author}
}

// Scope returns the scope stored under the version key.
func (r *Record) Scope(version string) (Scope, bool) {
	for _, e := range r.scopes {
		if e.key == version {
			return e.scope, true
		}
	}
	return Scope{}, false
}

// SetScope stores a scope under the version key, replacing an existing one
// in place or appending a new one.
func (r *Record) SetScope(version string, s Scope) {
	for i := range r.scopes {
		if r.scopes[i].key == version {
			r.scopes[i].scope = s
			return
		}
	}
	r.scopes = append(r.scopes, entry{key: version, scope: s})
}

// RemoveScope deletes the scope stored under the version key.
// It reports whether a scope was removed.
func (r *Record) RemoveScope(version string) bool {
	for i := range r.scopes {
		if r.scopes[i].key == version {
			r.scopes = append(r.scopes[:i], r.scopes[i+1:]...)
			return true
		}
	}
	return false
}

// Versions returns the version keys in their current order.
func (r *Record) Versions() []string {
	keys := make([]string, len(r.scopes))
	for i, e := range r.scopes {
		keys[i] = e.key
	}
	return keys
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	c := Record{Name: r.Name, Author: r.Author}
	if len(r.scopes) > 0 {
		c.scopes = make([]entry, len(r.scopes))
		for i, e := range r.scopes {
			c.scopes[i] = entry{key: e.key, scope: e.scope.Clone()}
		}
	}
	return c
}
