package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/omm/cmd/omm/cmd/analyse"
	"github.com/agentstation/omm/cmd/omm/cmd/compare"
	"github.com/agentstation/omm/cmd/omm/cmd/completion"
	"github.com/agentstation/omm/cmd/omm/cmd/importer"
	"github.com/agentstation/omm/cmd/omm/cmd/man"
	"github.com/agentstation/omm/cmd/omm/cmd/versions"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(importer.NewCommand(a))
	rootCmd.AddCommand(compare.NewCommand(a))
	rootCmd.AddCommand(analyse.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(versions.NewAddCommand(a))
	rootCmd.AddCommand(versions.NewRemoveCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.AddCommand(man.NewCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("omm %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
