package records

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agentstation/omm/pkg/errors"
)

// Store is the ordered collection of records persisted as one document.
type Store []Record

// Clone returns a deep copy.
func (s Store) Clone() Store {
	if s == nil {
		return nil
	}
	c := make(Store, len(s))
	for i, r := range s {
		c[i] = r.Clone()
	}
	return c
}

// Index returns the position of the record with the given name, or -1.
func (s Store) Index(name string) int {
	for i := range s {
		if s[i].Name == name {
			return i
		}
	}
	return -1
}

// Names returns the record names in store order.
func (s Store) Names() []string {
	names := make([]string, len(s))
	for i := range s {
		names[i] = s[i].Name
	}
	return names
}

// Normalize returns a copy of the store in canonical order: records ascending
// by name, and each record's version scopes newest first. Every version key is
// parsed first; a key that is not a version fails the whole call and the input
// is left untouched.
func Normalize(s Store) (Store, error) {
	out := s.Clone()

	parsed := make([]map[string]Version, len(out))
	for i := range out {
		parsed[i] = make(map[string]Version, len(out[i].scopes))
		for _, e := range out[i].scopes {
			v, err := ParseVersion(e.key)
			if err != nil {
				return nil, errors.NewValidationError("version", e.key,
					fmt.Sprintf("record %s has a key that is not a version: %q", out[i].Name, e.key))
			}
			parsed[i][e.key] = v
		}
	}

	for i := range out {
		versions := parsed[i]
		slices.SortStableFunc(out[i].scopes, func(a, b entry) int {
			return versions[b.key].Compare(versions[a.key])
		})
	}

	slices.SortStableFunc(out, func(a, b Record) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out, nil
}
