// Package versions provides the add-version and remove-version commands.
package versions

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/omm"
	"github.com/agentstation/omm/cmd/application"
	"github.com/agentstation/omm/internal/cmd/completion"
	"github.com/agentstation/omm/internal/cmd/output"
)

// NewAddCommand creates the add-version command.
func NewAddCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "add-version <store_file> <version>",
		GroupID: "management",
		Short:   "Add an empty version scope to every module",
		Long: `Add-version gives every module an empty scope for the version, with state,
auto_install, evaluation and comment all blank. An existing scope for the version is
replaced.`,
		Example:           `  omm add-version modules.yaml 18.0`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completion.PositionalArgs(completion.Store, completion.Version),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			result, err := client.AddVersion(args[0], args[1])
			if err != nil {
				return err
			}

			return printEdit(cmd, app, result,
				fmt.Sprintf("Added version '%s' with pre-populated keys to all entries in '%s'.", result.Version, result.Path))
		},
	}
}

// NewRemoveCommand creates the remove-version command.
func NewRemoveCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "remove-version <store_file> <version>",
		GroupID: "management",
		Short:   "Remove a version scope from every module",
		Long: `Remove-version deletes the version scope from every module. Modules without it are
left as they are, and modules are never deleted.`,
		Example:           `  omm remove-version modules.yaml 14.0`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completion.PositionalArgs(completion.Store, completion.Version),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			result, err := client.RemoveVersion(args[0], args[1])
			if err != nil {
				return err
			}

			return printEdit(cmd, app, result,
				fmt.Sprintf("Removed version '%s' from all entries in '%s'.", result.Version, result.Path))
		},
	}
}

func printEdit(cmd *cobra.Command, app application.Application, result *omm.EditResult, message string) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	if format == output.FormatJSON || format == output.FormatYAML {
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), map[string]any{
			"store":   result.Path,
			"version": result.Version,
			"records": result.Records,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
