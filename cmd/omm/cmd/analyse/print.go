package analyse

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/agentstation/omm/pkg/classifier"
)

// categoryColors maps each category to its heading color.
var categoryColors = map[classifier.Category]color.Attribute{
	classifier.NotEvaluated:         color.FgHiYellow,
	classifier.RequiredNotInstalled: color.FgHiRed,
	classifier.DesiredNotInstalled:  color.FgHiBlue,
	classifier.NotDesiredInstalled:  color.FgHiMagenta,
	classifier.NotRequiredInstalled: color.FgHiCyan,
}

// Printer writes the grouped text report.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a Printer. Headings are colored when enabled is true.
func NewPrinter(w io.Writer, enabled bool) *Printer {
	return &Printer{w: w, color: enabled}
}

// Print writes every non-empty category as a heading with its count, the
// names on one indented line, and a blank line, followed by the migrated
// tally when it is not zero.
func (p *Printer) Print(report *classifier.Report) error {
	for _, g := range report.NonEmpty() {
		heading := p.paint(categoryColors[g.Category])
		if _, err := heading.Fprintf(p.w, "%s: %d modules", g.Category, len(g.Names)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "\n  %s\n\n", strings.Join(g.Names, " ")); err != nil {
			return err
		}
	}

	if report.Migrated > 0 {
		if _, err := p.paint(color.FgHiGreen).Fprint(p.w, "Required and migrated modules:"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "\n  └─ %d modules\n", report.Migrated); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
