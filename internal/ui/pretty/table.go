package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdtype/pkg/token"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // OFFSET, LOC, CATEGORY, KIND, VALUE
	minOffsetWidth   = 6
	minLocWidth      = 7
	minCategoryWidth = 8
	minKindWidth     = 10
	minValueWidth    = 12
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow represents a single token row.
type TableRow struct {
	Offset   int
	Location string
	Kind     token.Kind
	Value    string
}

// RowsFromTokens builds table rows for a token stream that starts at
// offset 0. Locations are 1-based line:column, with columns in bytes.
func RowsFromTokens(tokens []token.Token) []TableRow {
	rows := make([]TableRow, 0, len(tokens))
	offset, line, col := 0, 1, 1

	for _, tok := range tokens {
		rows = append(rows, TableRow{
			Offset:   offset,
			Location: fmt.Sprintf("%d:%d", line, col),
			Kind:     tok.Kind,
			Value:    tok.Value,
		})

		offset += len(tok.Value)
		if nl := strings.LastIndexByte(tok.Value, '\n'); nl >= 0 {
			line += strings.Count(tok.Value, "\n")
			col = len(tok.Value) - nl
		} else {
			col += len(tok.Value)
		}
	}

	return rows
}

// TableFormatter formats tokens as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

type columnWidths struct {
	offset   int
	loc      int
	category int
	kind     int
	value    int
}

// FormatTable formats rows as a styled table with a header and legend.
func (t *TableFormatter) FormatTable(rows []TableRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths sizes columns to their content, then shrinks the
// value column to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		offset:   minOffsetWidth,
		loc:      minLocWidth,
		category: minCategoryWidth,
		kind:     minKindWidth,
		value:    minValueWidth,
	}

	for _, row := range rows {
		widths.offset = max(widths.offset, len(strconv.Itoa(row.Offset)))
		widths.loc = max(widths.loc, len(row.Location))
		widths.value = max(widths.value, len(strconv.Quote(row.Value)))
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.value = max(minValueWidth, widths.value-excess)
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.offset + widths.loc + widths.category + widths.kind + widths.value +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %*s  %-*s  %-*s  %-*s  %-*s",
		widths.offset, "OFFSET",
		widths.loc, "LOC",
		widths.category, "CATEGORY",
		widths.kind, "KIND",
		widths.value, "VALUE",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, t.calculateTotalWidth(widths)))
}

// formatRow formats a single row, coloring the kind column by token kind.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	value := truncateString(strconv.Quote(row.Value), widths.value)
	kind := fmt.Sprintf("%-*s", widths.kind, row.Kind.String())

	return fmt.Sprintf(" %s  %-*s  %-*s  %s  %s",
		t.styles.Offset.Render(fmt.Sprintf("%*d", widths.offset, row.Offset)),
		widths.loc, row.Location,
		widths.category, row.Kind.Category().String(),
		t.styles.ForKind(row.Kind).Render(kind),
		t.styles.Value.Render(value),
	)
}

// formatLegend formats the legend explaining the kind colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Legend: line/open/close = syntax | default/whitespace = display")
	}

	samples := make([]string, 0, len(token.Kinds()))
	for _, kind := range token.Kinds() {
		samples = append(samples, t.styles.ForKind(kind).Render(kind.String()))
	}

	return t.styles.TableLegend.Render(" Legend: ") + strings.Join(samples, "  ")
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(summary ScanSummary) string {
	counts := summary.Counts
	parts := []string{
		fmt.Sprintf("%d tokens", counts.Tokens),
		fmt.Sprintf("%d bytes", counts.Bytes),
	}

	for _, kind := range token.Kinds() {
		if n := counts.Of(kind); n > 0 {
			parts = append(parts, t.styles.ForKind(kind).Render(fmt.Sprintf("%d %s", n, kind)))
		}
	}

	if summary.Unterminated() {
		parts = append(parts, t.styles.Warning.Render("unterminated"))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to at most maxLen bytes, adding "..."
// if truncated. The cut never splits a UTF-8 sequence.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:runeBoundary(str, maxLen)]
	}
	return str[:runeBoundary(str, maxLen-3)] + "..."
}

// runeBoundary backs i off to the start of the rune containing it.
func runeBoundary(str string, i int) int {
	for i > 0 && !utf8.RuneStart(str[i]) {
		i--
	}
	return i
}
