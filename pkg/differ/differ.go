// Package differ compares the version scopes of a record store.
package differ

import (
	"github.com/agentstation/omm/pkg/constants"
	"github.com/agentstation/omm/pkg/records"
)

// StateChange is a record whose installation state differs between two
// version scopes.
type StateChange struct {
	Name   string `json:"name" yaml:"name"`
	StateA string `json:"state_a" yaml:"state_a"`
	StateB string `json:"state_b" yaml:"state_b"`
}

// Comparison is the result of comparing two versions across a store.
type Comparison struct {
	VersionA string        `json:"version_a" yaml:"version_a"`
	VersionB string        `json:"version_b" yaml:"version_b"`
	Changes  []StateChange `json:"changes" yaml:"changes"`

	// Compared counts records that had both scopes.
	Compared int `json:"compared" yaml:"compared"`
}

// HasChanges returns true if any record changed state.
func (c *Comparison) HasChanges() bool {
	return len(c.Changes) > 0
}

// Compare reports, in store order, every record whose scopes for a and b
// both exist with at least one field and whose state differs. Records
// missing either scope are not reported.
func Compare(store records.Store, a, b records.Version) *Comparison {
	result := &Comparison{
		VersionA: a.String(),
		VersionB: b.String(),
		Changes:  []StateChange{},
	}

	for i := range store {
		rec := &store[i]
		scopeA, okA := rec.Scope(a.String())
		scopeB, okB := rec.Scope(b.String())
		if !okA || !okB || scopeA.IsEmpty() || scopeB.IsEmpty() {
			continue
		}
		result.Compared++

		stateA, hasA := scopeA.Get(constants.FieldState)
		stateB, hasB := scopeB.Get(constants.FieldState)
		if stateA == stateB && hasA == hasB {
			continue
		}
		result.Changes = append(result.Changes, StateChange{
			Name:   rec.Name,
			StateA: stateA,
			StateB: stateB,
		})
	}

	return result
}

// CompareStates returns only the state changes between versions a and b.
func CompareStates(store records.Store, a, b records.Version) []StateChange {
	return Compare(store, a, b).Changes
}
