package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdtype/pkg/token"
)

const (
	summaryDividerWidth = 40
	wordToken           = "token"
	wordTokens          = "tokens"
)

// ScanSummary is the input to the summary formatters.
type ScanSummary struct {
	// Counts tallies the emitted tokens.
	Counts token.Counts

	// InFence is true when the scan ended inside a fenced code block.
	InFence bool

	// OpenMarks names the inline marks still open at the end, innermost last.
	OpenMarks []string
}

// Unterminated reports whether the scan left a fence or mark open.
func (s ScanSummary) Unterminated() bool {
	return s.InFence || len(s.OpenMarks) > 0
}

// FormatSummaryOneLine formats scan statistics as a single line.
// Example: "7 tokens (3 syntax, 4 display), 8 bytes".
func (s *Styles) FormatSummaryOneLine(summary ScanSummary) string {
	counts := summary.Counts
	if counts.Tokens == 0 {
		return s.Dim.Render("No tokens") + "\n"
	}

	tokenWord := wordTokens
	if counts.Tokens == 1 {
		tokenWord = wordToken
	}

	parts := []string{
		fmt.Sprintf("%d %s (%s, %s)", counts.Tokens, tokenWord,
			s.LineSyntax.Render(fmt.Sprintf("%d syntax", counts.OfCategory(token.Syntax))),
			s.Text.Render(fmt.Sprintf("%d display", counts.OfCategory(token.Display))),
		),
		fmt.Sprintf("%d bytes", counts.Bytes),
	}

	if summary.InFence {
		parts = append(parts, s.Warning.Render("unterminated fence"))
	}
	if len(summary.OpenMarks) > 0 {
		parts = append(parts, s.Warning.Render("open marks: "+strings.Join(summary.OpenMarks, ", ")))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats scan statistics as a summary block.
func (s *Styles) FormatSummary(summary ScanSummary) string {
	var builder strings.Builder

	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	counts := summary.Counts
	builder.WriteString("  Tokens:            " +
		s.SummaryValue.Render(strconv.Itoa(counts.Tokens)) + "\n")
	builder.WriteString("  Bytes:             " +
		s.SummaryValue.Render(strconv.Itoa(counts.Bytes)) + "\n")
	builder.WriteString("\n")

	for _, kind := range token.Kinds() {
		label := fmt.Sprintf("    %-16s ", kind.String()+":")
		builder.WriteString(label + s.ForKind(kind).Render(strconv.Itoa(counts.Of(kind))) + "\n")
	}
	builder.WriteString("\n")

	if summary.InFence {
		builder.WriteString("  Fence:             " + s.Warning.Render("open") + "\n")
	}
	if len(summary.OpenMarks) > 0 {
		builder.WriteString("  Open marks:        " +
			s.Warning.Render(strings.Join(summary.OpenMarks, ", ")) + "\n")
	}

	if summary.Unterminated() {
		builder.WriteString(s.Warning.Render("Scan ended with open markup"))
	} else {
		builder.WriteString(s.Success.Render("Scan complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
