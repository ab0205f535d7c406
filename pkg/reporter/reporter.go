// Package reporter renders scanner output as text, tables, JSON or summaries.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdtype/internal/ui/pretty"
	"github.com/yaklabco/mdtype/pkg/scanner"
	"github.com/yaklabco/mdtype/pkg/token"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Scan is a finished scan ready for reporting.
type Scan struct {
	// Path names the input, such as a file path or "<stdin>".
	Path string

	// Source is the scanned text.
	Source string

	// Tokens is the complete token stream for Source.
	Tokens []token.Token

	// State is the scanner state after the last token.
	State scanner.State
}

// NewScan tokenizes src with opts and captures the final scanner state.
func NewScan(path, src string, opts scanner.Options) *Scan {
	const bytesPerToken = 2
	sc := scanner.New(src, opts)
	tokens := make([]token.Token, 0, len(src)/bytesPerToken)
	for tok := range sc.All() {
		tokens = append(tokens, tok)
	}
	return &Scan{
		Path:   path,
		Source: src,
		Tokens: tokens,
		State:  sc.State(),
	}
}

// Summary aggregates the scan for the summary formatters.
func (s *Scan) Summary() pretty.ScanSummary {
	summary := pretty.ScanSummary{
		Counts:  token.Count(s.Tokens),
		InFence: s.State.InFence,
	}
	for _, mark := range s.State.Marks {
		summary.OpenMarks = append(summary.OpenMarks, mark.String())
	}
	return summary
}

// Reporter formats and writes scan results.
type Reporter interface {
	// Report writes formatted output for the given scan.
	// It returns the number of tokens reported and any write errors.
	Report(ctx context.Context, scan *Scan) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer Renderer
}

// Report implements Reporter by rendering the scan.
func (f *reporterFacade) Report(ctx context.Context, scan *Scan) (int, error) {
	if err := f.renderer.Render(ctx, scan); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	if scan == nil {
		return 0, nil
	}
	return len(scan.Tokens), nil
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatSummary:
		return &reporterFacade{renderer: NewSummaryRenderer(opts)}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
