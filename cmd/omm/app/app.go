// Package app provides the application context and dependency management
// for the omm CLI. It centralizes configuration, logging, and the omm client
// that commands receive through the application.Application interface.
package app

import (
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/agentstation/omm"
	"github.com/agentstation/omm/cmd/application"
	"github.com/agentstation/omm/pkg/classifier"
	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/snapshot"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the omm application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client omm.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled by flag, config,
// NO_COLOR, or a non-terminal stdout.
func (a *App) NoColor() bool {
	return a.config.NoColor || color.NoColor
}

// AuthorFilter returns the author filter from config.
func (a *App) AuthorFilter() classifier.AuthorFilter {
	return classifier.AuthorFilter{
		Include: a.config.IncludeAuthors,
		Exclude: a.config.ExcludeAuthors,
	}
}

// Client returns the omm client. Without options the client is created once
// and reused. With options a new client is created with the configured
// options followed by opts.
func (a *App) Client(opts ...omm.Option) (omm.Client, error) {
	if len(opts) > 0 {
		base, err := a.clientOptions()
		if err != nil {
			return nil, err
		}
		client, err := omm.New(append(base, opts...)...)
		if err != nil {
			return nil, errors.WrapResource("create", "client", "with custom options", err)
		}
		return client, nil
	}

	a.mu.RLock()
	if a.client != nil {
		client := a.client
		a.mu.RUnlock()
		return client, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	base, err := a.clientOptions()
	if err != nil {
		return nil, err
	}
	client, err := omm.New(base...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = client
	return client, nil
}

// clientOptions builds client options from the configuration.
func (a *App) clientOptions() ([]omm.Option, error) {
	delimiter, err := snapshot.ParseDelimiter(a.config.Delimiter)
	if err != nil {
		return nil, err
	}
	return []omm.Option{
		omm.WithLogger(a.logger),
		omm.WithDelimiter(delimiter),
	}, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(client omm.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
