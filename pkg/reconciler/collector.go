package reconciler

import (
	"github.com/agentstation/omm/pkg/snapshot"
)

// staged is the import-side view of one module: the first author seen for it
// and the latest values of the two header-named columns.
type staged struct {
	name    string
	author  string
	partial Partial
}

// batch holds the distinct modules of one snapshot in first-sighting order.
type batch struct {
	order      []*staged
	byName     map[string]*staged
	duplicates int
}

// collect stages every importable row. A later row for a name already staged
// overwrites the column values but keeps the first author.
func collect(snap *snapshot.Snapshot) *batch {
	b := &batch{byName: make(map[string]*staged, len(snap.Rows))}
	stateKey, autoKey := snap.StateKey(), snap.AutoInstallKey()

	for _, row := range snap.Rows {
		partial := NewPartial(stateKey, row.Fields[2], autoKey, row.Fields[3])
		if s, ok := b.byName[row.Name()]; ok {
			s.partial = partial
			b.duplicates++
			continue
		}
		s := &staged{name: row.Name(), author: row.Author(), partial: partial}
		b.byName[s.name] = s
		b.order = append(b.order, s)
	}

	return b
}

// has reports whether the snapshot mentioned the name.
func (b *batch) has(name string) bool {
	_, ok := b.byName[name]
	return ok
}
