// Package compare provides the compare command.
package compare

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/omm/cmd/application"
	"github.com/agentstation/omm/internal/cmd/completion"
	"github.com/agentstation/omm/internal/cmd/output"
	"github.com/agentstation/omm/pkg/differ"
)

// NewCommand creates the compare command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "compare <store_file> <version_a> <version_b>",
		GroupID: "core",
		Short:   "Show modules whose state differs between two versions",
		Long: `Compare lists every module that has both version scopes and a different state in each.
Modules missing either scope are not listed. The store is not modified.`,
		Example: `  omm compare modules.yaml 16.0 17.0
  omm compare modules.yaml 16.0 17.0 --format table`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completion.PositionalArgs(completion.Store, completion.Version, completion.Version),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			result, err := client.Compare(args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return printComparison(cmd, app, result)
		},
	}
}

func printComparison(cmd *cobra.Command, app application.Application, result *differ.Comparison) error {
	out := cmd.OutOrStdout()

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(out, result)
	case output.FormatTable:
		return output.NewFormatter(format).Format(out, output.ComparisonToTableData(result))
	}

	for _, c := range result.Changes {
		fmt.Fprintf(out, "Name: %s, State in %s: %s, State in %s: %s\n",
			c.Name, result.VersionA, c.StateA, result.VersionB, c.StateB)
	}
	return nil
}
