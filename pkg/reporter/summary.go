package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/mdtype/internal/ui/pretty"
)

// SummaryRenderer formats a scan as an aggregated summary block.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, scan *Scan) error {
	if scan == nil || len(scan.Tokens) == 0 {
		if _, err := fmt.Fprintln(r.out, r.styles.Dim.Render("No tokens.")); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		return nil
	}

	if scan.Path != "" {
		if _, err := fmt.Fprintln(r.out, r.styles.Bold.Render(scan.Path)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if _, err := fmt.Fprint(r.out, r.styles.FormatSummary(scan.Summary())); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}
