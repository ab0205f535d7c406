package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdtype/internal/ui/pretty"
	"github.com/yaklabco/mdtype/pkg/token"
)

func sampleCounts() token.Counts {
	return token.Count([]token.Token{
		token.New(token.Line, "# "),
		token.New(token.Default, "H"),
		token.New(token.Default, "i"),
		token.New(token.Whitespace, " "),
		token.New(token.Open, "*"),
		token.New(token.Default, "x"),
		token.New(token.Close, "*"),
	})
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(pretty.ScanSummary{Counts: sampleCounts()})

	assert.Equal(t, "7 tokens (3 syntax, 4 display), 8 bytes\n", result)
}

func TestFormatSummaryOneLine_Empty(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "No tokens\n", styles.FormatSummaryOneLine(pretty.ScanSummary{}))
}

func TestFormatSummaryOneLine_Unterminated(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(pretty.ScanSummary{
		Counts:    token.Count([]token.Token{token.New(token.Open, "**")}),
		InFence:   true,
		OpenMarks: []string{"strong", "code"},
	})

	assert.Equal(t, "1 token (1 syntax, 0 display), 2 bytes, unterminated fence, open marks: strong, code\n", result)
}

func TestFormatSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(pretty.ScanSummary{Counts: sampleCounts()})

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Tokens:            7")
	assert.Contains(t, result, "Bytes:             8")
	assert.Contains(t, result, "default:")
	assert.Contains(t, result, "whitespace:")
	assert.Contains(t, result, "Scan complete")
	assert.NotContains(t, result, "Open marks")
}

func TestFormatSummary_OpenMarkup(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(pretty.ScanSummary{
		Counts:    sampleCounts(),
		InFence:   true,
		OpenMarks: []string{"emphasis"},
	})

	assert.Contains(t, result, "Fence:             open")
	assert.Contains(t, result, "Open marks:        emphasis")
	assert.Contains(t, result, "Scan ended with open markup")
}
