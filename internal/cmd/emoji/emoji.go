// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used as prefixes on status lines.
const (
	// Success marks a completed write.
	Success = "✓"

	// Error marks a failed command.
	Error = "✗"

	// Warning marks recoverable problems such as skipped snapshot rows.
	Warning = "!"

	// Info marks informational lines.
	Info = "i"
)
