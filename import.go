package omm

import (
	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/reconciler"
	"github.com/agentstation/omm/pkg/snapshot"
)

// Compile-time interface check to ensure proper implementation.
var _ Importer = (*client)(nil)

// Importer merges snapshot exports into stores.
type Importer interface {
	Import(inputPath, storePath, version string) (*ImportResult, error)
}

// ImportResult describes a completed import.
type ImportResult struct {
	*reconciler.Result

	// Path is the store that was written.
	Path string

	// Created is true when the store did not exist before the import.
	Created bool
}

// Import reads the snapshot at inputPath and merges it into the store at
// storePath for version. A missing store is created. The store is written
// only after the whole merge succeeded.
func (c *client) Import(inputPath, storePath, version string) (*ImportResult, error) {
	// Step 1: validate the version argument before touching any file
	v, err := parseVersion("version", version)
	if err != nil {
		return nil, err
	}

	// Step 2: read the snapshot
	snap, err := snapshot.ReadFile(inputPath,
		snapshot.WithDelimiter(c.options.delimiter),
		snapshot.WithLogger(c.logger),
	)
	if err != nil {
		return nil, errors.WrapResource("import", "snapshot", inputPath, err)
	}

	// Step 3: load the store, or start empty
	store, existed, err := c.files.LoadOrEmpty(storePath)
	if err != nil {
		return nil, errors.WrapResource("import", "store", storePath, err)
	}

	// Step 4: merge
	result, err := c.reconciler.Reconcile(snap, store, v)
	if err != nil {
		return nil, errors.WrapResource("import", "store", storePath, err)
	}

	// Step 5: persist
	if err := c.save("import", storePath, result.Store); err != nil {
		return nil, err
	}

	// Step 6: notify
	c.hooks.triggerImport(result.Store, v.String(), result.Added, result.Demoted)

	return &ImportResult{Result: result, Path: storePath, Created: !existed}, nil
}
