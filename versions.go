package omm

import (
	"github.com/agentstation/omm/pkg/differ"
	"github.com/agentstation/omm/pkg/editor"
	"github.com/agentstation/omm/pkg/records"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Comparer      = (*client)(nil)
	_ VersionEditor = (*client)(nil)
)

// Comparer reports state differences between two versions of a store.
type Comparer interface {
	Compare(storePath, versionA, versionB string) (*differ.Comparison, error)
}

// VersionEditor adds and removes version scopes across a whole store.
type VersionEditor interface {
	AddVersion(storePath, version string) (*EditResult, error)
	RemoveVersion(storePath, version string) (*EditResult, error)
}

// EditResult describes a version scope edit that was saved.
type EditResult struct {
	Path    string
	Version string
	Records int
}

// Compare loads the store and reports every module whose state differs
// between versionA and versionB. Nothing is written.
func (c *client) Compare(storePath, versionA, versionB string) (*differ.Comparison, error) {
	a, err := parseVersion("version_a", versionA)
	if err != nil {
		return nil, err
	}
	b, err := parseVersion("version_b", versionB)
	if err != nil {
		return nil, err
	}

	store, err := c.load("compare", storePath)
	if err != nil {
		return nil, err
	}

	result := differ.Compare(store, a, b)
	c.logger.Debug().
		Str("store", storePath).
		Int("compared", result.Compared).
		Int("changes", len(result.Changes)).
		Msg("Versions compared")
	return result, nil
}

// AddVersion gives every record an empty scope for version and saves the store.
func (c *client) AddVersion(storePath, version string) (*EditResult, error) {
	return c.edit("add-version", storePath, version, editor.AddVersion)
}

// RemoveVersion strips the version scope from every record and saves the store.
func (c *client) RemoveVersion(storePath, version string) (*EditResult, error) {
	return c.edit("remove-version", storePath, version, editor.RemoveVersion)
}

func (c *client) edit(operation, storePath, version string, fn func(records.Store, string) (records.Store, error)) (*EditResult, error) {
	if _, err := parseVersion("version", version); err != nil {
		return nil, err
	}

	store, err := c.load(operation, storePath)
	if err != nil {
		return nil, err
	}

	updated, err := fn(store, version)
	if err != nil {
		return nil, err
	}

	if err := c.save(operation, storePath, updated); err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("operation", operation).
		Str("store", storePath).
		Str("version", version).
		Int("records", len(updated)).
		Msg("Store updated")

	return &EditResult{Path: storePath, Version: version, Records: len(updated)}, nil
}
