package reporter

import (
	"fmt"
	"slices"
	"strings"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
)

// formats lists every Format in help order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var formats = []Format{FormatText, FormatTable, FormatJSON, FormatSummary}

// Formats returns the supported formats in help order.
func Formats() []Format {
	return slices.Clone(formats)
}

// FormatList returns the supported formats as "text, table, ...".
func FormatList() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat parses a format string. Names are case sensitive and the
// empty string means FormatText.
func ParseFormat(formatStr string) (Format, error) {
	if formatStr == "" {
		return FormatText, nil
	}
	format := Format(formatStr)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: %s", formatStr, FormatList())
	}
	return format, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return slices.Contains(formats, f)
}
