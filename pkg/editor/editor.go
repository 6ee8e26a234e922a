// Package editor adds and removes version scopes across every record of a
// store.
package editor

import (
	"github.com/agentstation/omm/pkg/records"
)

// AddVersion returns a copy of the store in which every record has an empty
// scope for version (state, auto_install, evaluation and comment all empty).
// An existing scope for version is replaced.
func AddVersion(store records.Store, version string) (records.Store, error) {
	v, err := records.ParseVersion(version)
	if err != nil {
		return nil, err
	}

	out := store.Clone()
	for i := range out {
		out[i].SetScope(v.String(), records.EmptyScope())
	}

	return records.Normalize(out)
}

// RemoveVersion returns a copy of the store with the version scope removed
// from every record. Records without that scope are left as they are.
func RemoveVersion(store records.Store, version string) (records.Store, error) {
	v, err := records.ParseVersion(version)
	if err != nil {
		return nil, err
	}

	out := store.Clone()
	for i := range out {
		out[i].RemoveScope(v.String())
	}

	return records.Normalize(out)
}
