// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/mdtype/pkg/token"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token styles
	LineSyntax lipgloss.Style
	OpenMark   lipgloss.Style
	CloseMark  lipgloss.Style
	Text       lipgloss.Style
	Whitespace lipgloss.Style

	// Report components
	Offset   lipgloss.Style
	KindName lipgloss.Style
	Value    lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableLegend    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	plain bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		LineSyntax: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		OpenMark:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		CloseMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Text:       lipgloss.NewStyle(),
		Whitespace: lipgloss.NewStyle(),

		Offset:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		KindName: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Value:    lipgloss.NewStyle(),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		LineSyntax:     plain,
		OpenMark:       plain,
		CloseMark:      plain,
		Text:           plain,
		Whitespace:     plain,
		Offset:         plain,
		KindName:       plain,
		Value:          plain,
		Warning:        plain,
		Error:          plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TableLegend:    plain,
		Dim:            plain,
		Bold:           plain,
		plain:          true,
	}
}

// ForKind returns the style used to render tokens of the given kind.
func (s *Styles) ForKind(kind token.Kind) lipgloss.Style {
	switch kind {
	case token.Line:
		return s.LineSyntax
	case token.Open:
		return s.OpenMark
	case token.Close:
		return s.CloseMark
	case token.Whitespace:
		return s.Whitespace
	default:
		return s.Text
	}
}

// RenderToken renders a token value in its kind's style. Without color, and
// for whitespace, the value is written as-is. Multi-line values are styled
// line by line so Lipgloss never pads or reflows them.
func (s *Styles) RenderToken(tok token.Token) string {
	if s.plain || tok.Kind == token.Whitespace {
		return tok.Value
	}

	style := s.ForKind(tok.Kind).TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(tok.Value, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
