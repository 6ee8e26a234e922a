// Package constants provides shared constants used throughout the omm codebase.
// This includes store field names, the fixed state and evaluation vocabularies,
// file permissions and snapshot defaults.
package constants

// FilePermissions is the default permission for created files (rw-r--r--)
const FilePermissions = 0644

// Record field names. Every other key of a record is a version scope.
const (
	FieldName   = "name"
	FieldAuthor = "author"
)

// Scope field names.
const (
	// FieldState is the installation state column, conventionally the third snapshot column.
	FieldState = "state"

	// FieldAutoInstall is the auto-install flag column, conventionally the fourth snapshot column.
	FieldAutoInstall = "auto_install"

	// FieldEvaluation holds the human judgment on a module.
	FieldEvaluation = "evaluation"

	// FieldComment holds free-text notes.
	FieldComment = "comment"
)

// ScopeFields is the fixed field set of a freshly added version scope, in order.
var ScopeFields = []string{FieldState, FieldAutoInstall, FieldEvaluation, FieldComment}

// State values.
const (
	StateInstalled    = "installed"
	StateNotInstalled = "not installed"
)

// Evaluation values.
const (
	EvaluationRequired    = "required"
	EvaluationDesired     = "desired"
	EvaluationNotRequired = "not required"
	EvaluationNotDesired  = "not desired"
)

// Snapshot defaults
const (
	// DefaultDelimiter separates snapshot columns.
	DefaultDelimiter = ';'

	// MinSnapshotFields is the number of columns a snapshot row needs to be imported.
	MinSnapshotFields = 4

	// SummaryRowPattern matches the "(N rows)" footer some exporters append.
	SummaryRowPattern = `\(\d+ rows\)`
)

// Path constants
const (
	// ConfigFileName is the base name of the optional config file searched in $HOME and the working directory.
	ConfigFileName = ".omm"

	// TempFilePattern names the temporary file a store is written to before it replaces the target.
	TempFilePattern = ".omm-*.yaml.tmp"
)
