package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/yaklabco/mdtype/internal/ui/pretty"
)

// offsetWidth right-aligns offsets in text output.
const offsetWidth = 6

// TextReporter writes one line per token: offset, kind and quoted value.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, scan *Scan) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if scan == nil || len(scan.Tokens) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No tokens."))
		}
		return 0, nil
	}

	offset := 0
	for _, tok := range scan.Tokens {
		fmt.Fprintf(r.bw, "%s  %s  %s\n",
			r.styles.Offset.Render(fmt.Sprintf("%*d", offsetWidth, offset)),
			r.styles.ForKind(tok.Kind).Render(fmt.Sprintf("%-10s", tok.Kind)),
			r.styles.Value.Render(strconv.Quote(tok.Value)),
		)
		offset += len(tok.Value)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(scan.Summary()))
	}

	return len(scan.Tokens), nil
}
