package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdtype/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "typewriter.burst").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownSegmentations lists valid segmentation values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownSegmentations = map[config.Segmentation]bool{
	config.SegmentationGrapheme: true,
	config.SegmentationCodeUnit: true,
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatTable:   true,
	config.FormatJSON:    true,
	config.FormatSummary: true,
}

// knownColorModes lists valid color values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = map[config.ColorMode]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// knownSyntaxModes lists valid typewriter syntax values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownSyntaxModes = map[config.SyntaxMode]bool{
	config.SyntaxShow: true,
	config.SyntaxHide: true,
}

// burstWarnThreshold is the burst above which pacing is barely visible.
const burstWarnThreshold = 64

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Segmentation != "" && !knownSegmentations[cfg.Segmentation] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "segmentation",
			Value:   cfg.Segmentation,
			Message: fmt.Sprintf("invalid segmentation %q (valid: grapheme, codeunit)", cfg.Segmentation),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q (valid: text, table, json, summary)", cfg.Format),
		})
	}

	if cfg.Color != "" && !knownColorModes[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q (valid: auto, always, never)", cfg.Color),
		})
	}

	validateTypewriter(&cfg.Typewriter, result)

	return result
}

// validateTypewriter checks the playback settings.
func validateTypewriter(tw *config.TypewriterConfig, result *ValidationResult) {
	if tw.Syntax != "" && !knownSyntaxModes[tw.Syntax] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "typewriter.syntax",
			Value:   tw.Syntax,
			Message: fmt.Sprintf("invalid syntax mode %q (valid: show, hide)", tw.Syntax),
		})
	}

	if tw.Burst < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "typewriter.burst",
			Value:   tw.Burst,
			Message: "burst must be >= 0",
		})
	} else if tw.Burst > burstWarnThreshold {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "typewriter.burst",
			Value:   tw.Burst,
			Message: fmt.Sprintf("burst %d releases most tokens at once", tw.Burst),
		})
	}

	if tw.Delay != nil && *tw.Delay < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "typewriter.delay",
			Value:   tw.Delay.String(),
			Message: "delay must be >= 0",
		})
	}
}

// ValidateWithFile validates a config and annotates errors with the file path.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	displayPath := filePath
	if abs, err := filepath.Abs(filePath); err == nil {
		displayPath = abs
	}

	for i := range result.Errors {
		result.Errors[i].FilePath = displayPath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = displayPath
	}

	return result
}
