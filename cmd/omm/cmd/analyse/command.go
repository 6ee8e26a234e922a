// Package analyse provides the analyse command.
package analyse

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/omm/cmd/application"
	"github.com/agentstation/omm/internal/cmd/completion"
	"github.com/agentstation/omm/internal/cmd/output"
	"github.com/agentstation/omm/pkg/classifier"
)

// NewCommand creates the analyse command.
func NewCommand(app application.Application) *cobra.Command {
	var include, exclude []string

	cmd := &cobra.Command{
		Use:     "analyse <store_file> <version>",
		Aliases: []string{"analyze"},
		GroupID: "core",
		Short:   "Report modules that need attention for a version",
		Long: `Analyse groups the modules of one version by concern:

  Not evaluated                no evaluation entered yet
  Required but not installed   evaluation required, state not installed
  Desired but not installed    evaluation desired, state not installed
  Not desired but installed    evaluation not desired, state installed
  Not required but installed   evaluation not required, state installed

Modules that are required and installed are counted as migrated. Other combinations
are not reported. Author filters match case-insensitive substrings of the author.`,
		Example: `  omm analyse modules.yaml 17.0
  omm analyse modules.yaml 17.0 --include-authors "Odoo Community Association"
  omm analyse modules.yaml 17.0 --exclude-authors odoo,acme`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completion.PositionalArgs(completion.Store, completion.Version),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := app.AuthorFilter()
			if cmd.Flags().Changed("include-authors") {
				filter.Include = include
			}
			if cmd.Flags().Changed("exclude-authors") {
				filter.Exclude = exclude
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			report, err := client.Analyse(args[0], args[1], filter)
			if err != nil {
				return err
			}

			return printReport(cmd, app, report)
		},
	}

	cmd.Flags().StringSliceVar(&include, "include-authors", nil, "only modules whose author contains one of these terms")
	cmd.Flags().StringSliceVar(&exclude, "exclude-authors", nil, "skip modules whose author contains any of these terms")

	return cmd
}

func printReport(cmd *cobra.Command, app application.Application, report *classifier.Report) error {
	out := cmd.OutOrStdout()

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(out, report)
	case output.FormatTable:
		return output.NewFormatter(format).Format(out, output.ReportToTableData(report))
	}

	return NewPrinter(out, !app.NoColor()).Print(report)
}
