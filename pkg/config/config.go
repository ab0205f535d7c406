// Package config defines the configuration types for mdtype.
// These types are pure data structures; discovery and merging live in the
// loader.
package config

import (
	"fmt"
	"time"

	"github.com/yaklabco/mdtype/pkg/scanner"
	"github.com/yaklabco/mdtype/pkg/segment"
)

// Segmentation selects how display text is split into units.
type Segmentation string

const (
	SegmentationGrapheme Segmentation = segment.StrategyGrapheme
	SegmentationCodeUnit Segmentation = segment.StrategyCodeUnit
)

// OutputFormat specifies the output format for scan reports.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// SyntaxMode controls whether playback writes syntax tokens.
type SyntaxMode string

const (
	SyntaxShow SyntaxMode = "show"
	SyntaxHide SyntaxMode = "hide"
)

// Playback defaults.
const (
	DefaultDelay = 20 * time.Millisecond
	DefaultBurst = 1
)

// TypewriterConfig configures paced playback.
type TypewriterConfig struct {
	// Delay is the pause between token releases. Zero disables pacing.
	Delay *time.Duration `yaml:"delay,omitempty"`

	// Burst is the number of tokens released per tick.
	Burst int `yaml:"burst,omitempty"`

	// Syntax shows or hides syntax tokens during playback.
	Syntax SyntaxMode `yaml:"syntax,omitempty"`
}

// Config is the root configuration structure for mdtype.
type Config struct {
	// Segmentation is "grapheme" or "codeunit".
	Segmentation Segmentation `yaml:"segmentation,omitempty"`

	// IncludeTrailingSpace keeps the space after a line marker inside the
	// line token. Nil means unset.
	IncludeTrailingSpace *bool `yaml:"include_trailing_space,omitempty"`

	// Format specifies the scan report format.
	Format OutputFormat `yaml:"format,omitempty"`

	// Color is "auto", "always" or "never".
	Color ColorMode `yaml:"color,omitempty"`

	// Typewriter configures playback.
	Typewriter TypewriterConfig `yaml:"typewriter,omitempty"`

	// CLI-level options (not persisted to config files).

	// Strict fails a scan that ends with an open fence or inline mark.
	Strict bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	includeTrailingSpace := true
	delay := DefaultDelay
	return &Config{
		Segmentation:         SegmentationGrapheme,
		IncludeTrailingSpace: &includeTrailingSpace,
		Format:               FormatText,
		Color:                ColorAuto,
		Typewriter: TypewriterConfig{
			Delay:  &delay,
			Burst:  DefaultBurst,
			Syntax: SyntaxShow,
		},
	}
}

// TrailingSpace reports whether line tokens keep their trailing space.
// Unset means true.
func (c *Config) TrailingSpace() bool {
	return c.IncludeTrailingSpace == nil || *c.IncludeTrailingSpace
}

// ScannerOptions converts the configuration into scanner options.
func (c *Config) ScannerOptions() (scanner.Options, error) {
	seg, err := segment.ParseStrategy(string(c.Segmentation))
	if err != nil {
		return scanner.Options{}, fmt.Errorf("segmentation: %w", err)
	}
	return scanner.Options{
		TrimLineSpace: !c.TrailingSpace(),
		Segmenter:     seg,
	}, nil
}

// DelayOrDefault returns the playback delay, or DefaultDelay when unset.
func (t TypewriterConfig) DelayOrDefault() time.Duration {
	if t.Delay == nil {
		return DefaultDelay
	}
	return *t.Delay
}

// HideSyntax reports whether playback drops syntax tokens.
func (t TypewriterConfig) HideSyntax() bool {
	return t.Syntax == SyntaxHide
}
