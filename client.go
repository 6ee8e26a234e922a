// Package omm tracks the migration status of modules across versions of an
// application platform.
//
// A Client runs each operation as one read, transform, normalize and write
// cycle against a YAML record store:
//
//	client, err := omm.New(omm.WithDelimiter(';'))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Merge a snapshot export into the store for version 17.0
//	result, err := client.Import("modules.csv", "modules.yaml", "17.0")
//
//	// Report modules that still need attention
//	report, err := client.Analyse("modules.yaml", "17.0", classifier.AuthorFilter{
//	    Exclude: []string{"Odoo S.A."},
//	})
package omm

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/omm/internal/persistence"
	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/reconciler"
	"github.com/agentstation/omm/pkg/records"
)

// Client runs omm operations against store files.
type Client interface {
	// Importer merges snapshots into stores
	Importer

	// Comparer reports state differences between versions
	Comparer

	// VersionEditor adds and removes version scopes
	VersionEditor

	// Analyser classifies modules for a version
	Analyser

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {
	options    *options
	logger     *zerolog.Logger
	files      *persistence.Files
	reconciler reconciler.Reconciler
	hooks      *hooks
}

// New creates a new Client with the given options.
func New(opts ...Option) (Client, error) {
	options, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	rec, err := reconciler.New(reconciler.WithLogger(options.logger))
	if err != nil {
		return nil, errors.WrapResource("create", "reconciler", "", err)
	}

	return &client{
		options:    options,
		logger:     options.logger,
		files:      persistence.New(persistence.WithLogger(options.logger)),
		reconciler: rec,
		hooks:      newHooks(),
	}, nil
}

// load reads a store that must exist.
func (c *client) load(operation, path string) (records.Store, error) {
	store, err := c.files.Load(path)
	if err != nil {
		return nil, errors.WrapResource(operation, "store", path, err)
	}
	return store, nil
}

// save writes a normalized store.
func (c *client) save(operation, path string, store records.Store) error {
	if err := c.files.Save(path, store); err != nil {
		return errors.WrapResource(operation, "store", path, err)
	}
	return nil
}

// parseVersion validates a version argument.
func parseVersion(field, value string) (records.Version, error) {
	v, err := records.ParseVersion(value)
	if err != nil {
		var ve *errors.ValidationError
		if errors.As(err, &ve) {
			ve.Field = field
			return records.Version{}, ve
		}
		return records.Version{}, err
	}
	return v, nil
}
