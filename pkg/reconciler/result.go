package reconciler

import (
	"fmt"
	"time"

	"github.com/agentstation/omm/pkg/records"
	"github.com/agentstation/omm/pkg/snapshot"
)

// Result represents the outcome of a reconciliation.
type Result struct {
	// Store is the reconciled, normalized store.
	Store records.Store

	// Version is the scope the snapshot was imported into.
	Version records.Version

	// Added lists modules that were not in the store before.
	Added []string

	// Demoted lists modules absent from the snapshot, now marked not installed.
	Demoted []string

	// Skipped carries the snapshot rows that were not imported.
	Skipped []snapshot.Skipped

	Stats Statistics
}

// Statistics contains counters about the reconciliation.
type Statistics struct {
	RowsImported int
	RowsSkipped  int
	Duplicates   int
	Added        int
	Updated      int
	Demoted      int
	Records      int
	Duration     time.Duration
}

// HasSkipped returns true if any snapshot row was not imported.
func (r *Result) HasSkipped() bool {
	return len(r.Skipped) > 0
}

// Summary returns a one-line description of the reconciliation.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d records for %s: %d added, %d updated, %d marked not installed, %d rows skipped",
		r.Stats.Records, r.Version, r.Stats.Added, r.Stats.Updated, r.Stats.Demoted, r.Stats.RowsSkipped)
}
