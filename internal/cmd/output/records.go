package output

import (
	"strconv"
	"strings"

	"github.com/agentstation/omm/pkg/classifier"
	"github.com/agentstation/omm/pkg/differ"
)

// ComparisonToTableData converts a version comparison to table format.
func ComparisonToTableData(c *differ.Comparison) Data {
	headers := []string{
		Title("name"),
		Title("state_in_" + c.VersionA),
		Title("state_in_" + c.VersionB),
	}

	rows := make([][]string, 0, len(c.Changes))
	for _, change := range c.Changes {
		rows = append(rows, []string{change.Name, change.StateA, change.StateB})
	}

	return Data{Headers: headers, Rows: rows}
}

// ReportToTableData converts an analysis report to a category/count table.
func ReportToTableData(r *classifier.Report) Data {
	headers := []string{Title("category"), Title("modules"), Title("names")}

	var rows [][]string
	for _, g := range r.NonEmpty() {
		rows = append(rows, []string{g.Category.String(), strconv.Itoa(len(g.Names)), strings.Join(g.Names, " ")})
	}
	if r.Migrated > 0 {
		rows = append(rows, []string{"Required and migrated", strconv.Itoa(r.Migrated), ""})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft},
	}
}
