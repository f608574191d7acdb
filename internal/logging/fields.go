// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldPaths = "paths"
	FieldFiles = "files"

	// Refactoring fields.
	FieldRefactoring = "refactoring"
	FieldSelection   = "selection"
	FieldChanged     = "changed"
	FieldReason      = "reason"

	// Batch fields.
	FieldParallel       = "parallel"
	FieldFilesChanged   = "files_changed"
	FieldFilesUnchanged = "files_unchanged"
)
