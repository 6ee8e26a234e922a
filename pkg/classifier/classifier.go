// Package classifier buckets the records of one version scope into the
// concern categories of the analysis report.
package classifier

import (
	"slices"

	"github.com/agentstation/omm/pkg/constants"
	"github.com/agentstation/omm/pkg/records"
)

// Group is the sorted list of module names in one category.
type Group struct {
	Category Category `json:"category" yaml:"category"`
	Names    []string `json:"names" yaml:"names"`
}

// Report is the result of classifying a store for one version.
type Report struct {
	Version  string  `json:"version" yaml:"version"`
	Groups   []Group `json:"groups" yaml:"groups"`
	Migrated int     `json:"migrated" yaml:"migrated"`
}

// Names returns the names reported under a category.
func (r Report) Names(c Category) []string {
	for _, g := range r.Groups {
		if g.Category == c {
			return g.Names
		}
	}
	return nil
}

// NonEmpty returns the groups that have at least one name, in report order.
func (r Report) NonEmpty() []Group {
	var groups []Group
	for _, g := range r.Groups {
		if len(g.Names) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Classify walks the store and reports every record of the version that
// passes the filter. A record without a scope for the version is treated as
// having every field empty. Combinations outside the report categories are
// left out. The store is not modified.
func Classify(store records.Store, version records.Version, filter AuthorFilter) Report {
	key := version.String()
	buckets := make(map[Category][]string, len(Categories()))
	report := Report{Version: key}

	for i := range store {
		rec := &store[i]
		if !filter.Matches(rec.Author) {
			continue
		}

		scope, _ := rec.Scope(key)
		category, migrated, ok := classify(scope.State(), scope.Evaluation())
		switch {
		case migrated:
			report.Migrated++
		case ok:
			buckets[category] = append(buckets[category], rec.Name)
		}
	}

	for _, c := range Categories() {
		names := buckets[c]
		slices.Sort(names)
		if names == nil {
			names = []string{}
		}
		report.Groups = append(report.Groups, Group{Category: c, Names: names})
	}

	return report
}

// classify applies the report rules in order; the first match wins.
func classify(state, evaluation string) (category Category, migrated bool, ok bool) {
	if evaluation == "" {
		return NotEvaluated, false, true
	}

	switch state {
	case constants.StateNotInstalled:
		switch evaluation {
		case constants.EvaluationRequired:
			return RequiredNotInstalled, false, true
		case constants.EvaluationDesired:
			return DesiredNotInstalled, false, true
		}
	case constants.StateInstalled:
		switch evaluation {
		case constants.EvaluationNotDesired:
			return NotDesiredInstalled, false, true
		case constants.EvaluationNotRequired:
			return NotRequiredInstalled, false, true
		case constants.EvaluationRequired:
			return "", true, false
		}
	}

	return "", false, false
}
