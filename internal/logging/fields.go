package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldFormat = "format"

	// Configuration fields.
	FieldConfigSource  = "config_source"
	FieldSegmentation  = "segmentation"
	FieldTrailingSpace = "include_trailing_space"
	FieldDelay         = "delay"
	FieldBurst         = "burst"
	FieldHideSyntax    = "hide_syntax"

	// Scan statistics fields.
	FieldTokens    = "tokens"
	FieldBytes     = "bytes"
	FieldSyntax    = "syntax"
	FieldDisplay   = "display"
	FieldSkipped   = "skipped"
	FieldElapsed   = "elapsed"
	FieldInFence   = "in_fence"
	FieldOpenMarks = "open_marks"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
