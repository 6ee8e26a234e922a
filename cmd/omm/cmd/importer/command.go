// Package importer provides the import command.
package importer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/omm"
	"github.com/agentstation/omm/cmd/application"
	"github.com/agentstation/omm/internal/cmd/completion"
	"github.com/agentstation/omm/internal/cmd/emoji"
	"github.com/agentstation/omm/internal/cmd/output"
	"github.com/agentstation/omm/pkg/logging"
	"github.com/agentstation/omm/pkg/snapshot"
)

// Summary is the machine-readable result of an import.
type Summary struct {
	Store      string   `json:"store" yaml:"store"`
	Version    string   `json:"version" yaml:"version"`
	Created    bool     `json:"created" yaml:"created"`
	Records    int      `json:"records" yaml:"records"`
	Added      []string `json:"added" yaml:"added"`
	Demoted    []string `json:"demoted" yaml:"demoted"`
	Updated    int      `json:"updated" yaml:"updated"`
	Skipped    int      `json:"skipped" yaml:"skipped"`
	Duplicates int      `json:"duplicates" yaml:"duplicates"`
}

// NewCommand creates the import command.
func NewCommand(app application.Application) *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:     "import <input_file> <store_file> <version>",
		Aliases: []string{"import-csv"},
		GroupID: "core",
		Short:   "Merge a module snapshot into a store",
		Long: `Import reads a delimited module export and merges it into the store for one version.

The header row names the columns. Its third and fourth columns become the keys of the
imported version scope (conventionally state and auto_install). Evaluations and comments
already in the store are kept. Modules missing from the snapshot are marked not installed.
A missing store file is created.`,
		Example: `  omm import modules.csv modules.yaml 17.0
  omm import --delimiter , modules.csv modules.yaml 17.0`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completion.PositionalArgs(completion.Snapshot, completion.Store, completion.Version),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []omm.Option
			if cmd.Flags().Changed("delimiter") {
				d, err := snapshot.ParseDelimiter(delimiter)
				if err != nil {
					return err
				}
				opts = append(opts, omm.WithDelimiter(d))
			}

			client, err := app.Client(opts...)
			if err != nil {
				return err
			}

			result, err := client.Import(args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return printResult(cmd, app, result)
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "column delimiter of the input file (default \";\")")

	return cmd
}

func printResult(cmd *cobra.Command, app application.Application, result *omm.ImportResult) error {
	out := cmd.OutOrStdout()

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	if format == output.FormatJSON || format == output.FormatYAML {
		return output.NewFormatter(format).Format(out, Summary{
			Store:      result.Path,
			Version:    result.Version.String(),
			Created:    result.Created,
			Records:    result.Stats.Records,
			Added:      nonNil(result.Added),
			Demoted:    nonNil(result.Demoted),
			Updated:    result.Stats.Updated,
			Skipped:    result.Stats.RowsSkipped,
			Duplicates: result.Stats.Duplicates,
		})
	}

	if result.HasSkipped() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %d snapshot rows skipped\n", emoji.Warning, result.Stats.RowsSkipped)
	}

	if result.Created {
		fmt.Fprintf(out, "%s not found. Created a new file with the data.\n", result.Path)
	} else {
		fmt.Fprintf(out, "Data appended/merged to %s successfully.\n", result.Path)
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithStore(ctx, result.Path)
	ctx = logging.WithVersion(ctx, result.Version.String())
	logging.FromContext(ctx).Info().Msg(result.Summary())
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
