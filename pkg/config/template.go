package config

import (
	"bytes"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every key with its documentation and default value.
	// If false, generates a short template with most keys commented out.
	Full bool
}

// templateField documents one key of the full template.
type templateField struct {
	key         string
	value       string
	description string
}

// templateFields lists the top-level keys in template order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var templateFields = []templateField{
	{
		key:   "segmentation",
		value: string(SegmentationGrapheme),
		description: "How display text is split into tokens. grapheme keeps user-perceived " +
			"characters such as emoji with modifiers together; codeunit splits by code point.",
	},
	{
		key:   "include_trailing_space",
		value: "true",
		description: "Keep the space after a line marker (\"# \", \"> \", \"- \", \"1. \") inside " +
			"the line token. When false the space is emitted as whitespace.",
	},
	{
		key:         "format",
		value:       string(FormatText),
		description: "Report format for mdtype scan: text, table, json, or summary.",
	},
	{
		key:         "color",
		value:       string(ColorAuto),
		description: "Colorized output: auto, always, or never. NO_COLOR disables auto.",
	},
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Text segmentation: grapheme or codeunit
segmentation: grapheme

# Keep the space after "# ", "> ", "- " and "1. " in the line token
# include_trailing_space: true

# Report format: text, table, json, or summary
# format: text

# Typewriter playback
# typewriter:
#   delay: 20ms
#   burst: 1
#   syntax: show
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with every key documented.
func generateFullTemplate() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# mdtype configuration - Full Template
# See: https://github.com/yaklabco/mdtype
#
# Every key is shown with its default value.
`)

	for _, field := range templateFields {
		fmt.Fprintf(&buf, "\n# %s\n", wrapComment(field.description, commentWrapWidth))
		fmt.Fprintf(&buf, "%s: %s\n", field.key, field.value)
	}

	defaults := NewConfig()
	buf.WriteString("\n# Typewriter playback used by mdtype play.\n")
	buf.WriteString("typewriter:\n")
	fmt.Fprintf(&buf, "  # Pause between token releases; 0s disables pacing.\n  delay: %s\n",
		defaults.Typewriter.DelayOrDefault())
	fmt.Fprintf(&buf, "  # Tokens released per tick.\n  burst: %d\n", defaults.Typewriter.Burst)
	fmt.Fprintf(&buf, "  # show writes every token; hide writes display text only.\n  syntax: %s\n",
		defaults.Typewriter.Syntax)

	// The full template must stay loadable.
	if _, err := FromYAML(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("full template: %w", err)
	}

	return buf.Bytes(), nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n# ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdtype configuration
# See: https://github.com/yaklabco/mdtype`
}
