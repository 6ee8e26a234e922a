// Package reconciler merges a module snapshot into a record store.
//
// Imported columns overwrite the target version scope, human evaluation and
// comment are carried forward, modules missing from the snapshot are marked
// not installed, and every other version scope is left as it was.
package reconciler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/records"
	"github.com/agentstation/omm/pkg/snapshot"
)

// Reconciler merges snapshots into stores.
type Reconciler interface {
	// Reconcile returns a new store with the snapshot merged into the given
	// version scope. The input store is not modified.
	Reconcile(snap *snapshot.Snapshot, store records.Store, version records.Version) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	logger *zerolog.Logger
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{logger: options.logger}, nil
}

// Reconcile performs the merge step by step.
func (r *reconciler) Reconcile(snap *snapshot.Snapshot, store records.Store, version records.Version) (*Result, error) {
	if snap == nil {
		return nil, &errors.ValidationError{Field: "snapshot", Message: "cannot be nil"}
	}
	if version.String() == "" {
		return nil, &errors.ValidationError{Field: "version", Message: "cannot be empty"}
	}

	start := time.Now()
	key := version.String()

	// Step 1: stage the snapshot
	b := collect(snap)

	// Step 2: merge staged modules into existing records, append new ones
	merged := store.Clone()
	index := make(map[string]int, len(merged))
	for i := range merged {
		if _, dup := index[merged[i].Name]; !dup {
			index[merged[i].Name] = i
		}
	}

	result := &Result{Version: version, Skipped: snap.Skipped}
	existing := len(merged)

	for _, s := range b.order {
		if i, ok := index[s.name]; ok {
			mergeRecord(&merged[i], s, key)
			result.Stats.Updated++
			continue
		}
		merged = append(merged, newRecord(s, key))
		result.Added = append(result.Added, s.name)
	}

	// Step 3: demote records the snapshot no longer lists
	for i := 0; i < existing; i++ {
		if b.has(merged[i].Name) {
			continue
		}
		demote(&merged[i], key)
		result.Demoted = append(result.Demoted, merged[i].Name)
	}

	// Step 4: canonical order
	normalized, err := records.Normalize(merged)
	if err != nil {
		return nil, err
	}

	result.Store = normalized
	result.Stats.RowsImported = len(snap.Rows)
	result.Stats.RowsSkipped = len(snap.Skipped)
	result.Stats.Duplicates = b.duplicates
	result.Stats.Added = len(result.Added)
	result.Stats.Demoted = len(result.Demoted)
	result.Stats.Records = len(normalized)
	result.Stats.Duration = time.Since(start)

	r.logger.Info().
		Str("version", key).
		Int("added", result.Stats.Added).
		Int("updated", result.Stats.Updated).
		Int("demoted", result.Stats.Demoted).
		Int("skipped", result.Stats.RowsSkipped).
		Int("duplicates", result.Stats.Duplicates).
		Dur("duration", result.Stats.Duration).
		Msg("Snapshot reconciled")

	return result, nil
}
