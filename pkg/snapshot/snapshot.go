// Package snapshot reads the tabular module export that an import reconciles
// into the store. The first row is a header; its third and fourth columns name
// the scope fields the import writes.
package snapshot

import (
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/agentstation/omm/pkg/constants"
	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/logging"
)

var summaryRow = regexp.MustCompile(constants.SummaryRowPattern)

// SkipReason explains why a row was not imported.
type SkipReason string

const (
	// SkipTooFewFields marks a row with fewer than four columns.
	SkipTooFewFields SkipReason = "too few fields"
	// SkipSummaryRow marks an exporter footer such as "(42 rows)".
	SkipSummaryRow SkipReason = "summary row"
)

// String returns the reason as a sentence fragment.
func (r SkipReason) String() string {
	switch r {
	case SkipTooFewFields:
		return "It doesn't have enough columns."
	case SkipSummaryRow:
		return "It contains the pattern '(<number> rows)'."
	default:
		return string(r)
	}
}

// Row is one importable snapshot row.
type Row struct {
	// Number is the 1-based file line the row starts on. Blank lines and
	// quoted fields spanning lines are counted, so it matches what an editor shows.
	Number int
	Fields []string
}

// Name returns the module name column.
func (r Row) Name() string { return r.Fields[0] }

// Author returns the author column.
func (r Row) Author() string { return r.Fields[1] }

// Skipped is a row that was read but not imported.
type Skipped struct {
	// Number is the file line the row starts on, as in Row.
	Number int
	Fields []string
	Reason SkipReason
}

// Snapshot is a parsed export.
type Snapshot struct {
	Header  []string
	Rows    []Row
	Skipped []Skipped
}

// StateKey returns the header text of the third column.
func (s *Snapshot) StateKey() string { return s.Header[2] }

// AutoInstallKey returns the header text of the fourth column.
func (s *Snapshot) AutoInstallKey() string { return s.Header[3] }

type options struct {
	delimiter rune
	logger    *zerolog.Logger
	source    string
}

// Option configures Read.
type Option func(*options)

// WithDelimiter sets the column separator. The default is ';'.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		if d != 0 {
			o.delimiter = d
		}
	}
}

// ParseDelimiter converts a delimiter setting into a rune. It accepts a
// single character, or "tab" and `\t` for a tab.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return constants.DefaultDelimiter, nil
	case "tab", `\t`:
		return '\t', nil
	}

	runes := []rune(s)
	if len(runes) != 1 {
		return 0, errors.NewValidationError("delimiter", s, "must be a single character")
	}
	switch r := runes[0]; r {
	case '\r', '\n', '"', utf8.RuneError:
		return 0, errors.NewValidationError("delimiter", s, "cannot be used as a column delimiter")
	default:
		return r, nil
	}
}

// WithLogger sets the logger used for skipped-row diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// withSource names the input in errors.
func withSource(name string) Option {
	return func(o *options) { o.source = name }
}

// ReadFile opens and parses a snapshot file.
func ReadFile(path string, opts ...Option) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("snapshot", path)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	return Read(f, append(opts, withSource(path))...)
}

// Read parses a snapshot. Rows with fewer than four fields and summary footer
// rows are skipped and reported in Snapshot.Skipped; neither is an error.
func Read(r io.Reader, opts ...Option) (*Snapshot, error) {
	o := &options{delimiter: constants.DefaultDelimiter, logger: &logging.Nop}
	for _, opt := range opts {
		opt(o)
	}

	reader := csv.NewReader(r)
	reader.Comma = o.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("csv", o.source, "snapshot is empty", nil)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", o.source, err)
	}
	if len(header) < constants.MinSnapshotFields {
		return nil, errors.NewParseError("csv", o.source,
			"header needs at least 4 columns (name, author, state, auto_install)", nil)
	}

	snap := &Snapshot{Header: header}
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", o.source, err)
		}
		number, _ := reader.FieldPos(0)

		reason := classifyRow(fields)
		if reason != "" {
			snap.Skipped = append(snap.Skipped, Skipped{Number: number, Fields: fields, Reason: reason})
			o.logger.Warn().
				Int("row", number).
				Strs("content", fields).
				Str("reason", string(reason)).
				Msg("Skipping snapshot row")
			continue
		}
		snap.Rows = append(snap.Rows, Row{Number: number, Fields: fields})
	}

	return snap, nil
}

// classifyRow returns why a row must be skipped, or "" if it is importable.
func classifyRow(fields []string) SkipReason {
	if len(fields) > 0 && summaryRow.MatchString(fields[0]) {
		return SkipSummaryRow
	}
	if len(fields) < constants.MinSnapshotFields {
		return SkipTooFewFields
	}
	return ""
}
