// Package application provides the application interface for omm commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Client()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use client
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    ClientFunc: func(...omm.Option) (omm.Client, error) {
//	        return omm.New()
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/omm"
	"github.com/agentstation/omm/pkg/classifier"
)

// Application provides what commands need from the running program.
// The App struct from cmd/omm/app implements this interface.
type Application interface {
	// Client returns an omm client configured from flags and config.
	// Extra options are applied after the configured ones.
	Client(opts ...omm.Option) (omm.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// AuthorFilter returns the author filter from config, used when the
	// analyse command gets no filter flags.
	AuthorFilter() classifier.AuthorFilter

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
