package omm

import (
	"github.com/agentstation/omm/pkg/classifier"
)

// Compile-time interface check to ensure proper implementation.
var _ Analyser = (*client)(nil)

// Analyser classifies the modules of a store for one version.
type Analyser interface {
	Analyse(storePath, version string, filter classifier.AuthorFilter) (*classifier.Report, error)
}

// Analyse loads the store and classifies every module that passes the
// author filter. Nothing is written.
func (c *client) Analyse(storePath, version string, filter classifier.AuthorFilter) (*classifier.Report, error) {
	v, err := parseVersion("version", version)
	if err != nil {
		return nil, err
	}

	store, err := c.load("analyse", storePath)
	if err != nil {
		return nil, err
	}

	report := classifier.Classify(store, v, filter)
	c.logger.Debug().
		Str("store", storePath).
		Str("version", v.String()).
		Strs("include", filter.Include).
		Strs("exclude", filter.Exclude).
		Int("migrated", report.Migrated).
		Msg("Store analysed")
	return &report, nil
}
