// Package typewriter plays a token stream to a writer at a steady pace.
package typewriter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"golang.org/x/time/rate"

	"github.com/yaklabco/mdtype/internal/logging"
	"github.com/yaklabco/mdtype/internal/ui/pretty"
	"github.com/yaklabco/mdtype/pkg/token"
)

// ErrNilWriter is returned by Play when the player has no writer.
var ErrNilWriter = errors.New("typewriter: nil writer")

// Stats describes a finished or interrupted playback.
type Stats struct {
	// Counts tallies every token pulled from the stream, shown or not.
	Counts token.Counts

	// Shown is the number of tokens written.
	Shown int

	// Skipped is the number of syntax tokens hidden by HideSyntax.
	Skipped int

	// Elapsed is the wall time spent in Play.
	Elapsed time.Duration
}

// Player writes tokens one at a time, waiting on Limiter before each.
type Player struct {
	// Writer receives the token values.
	Writer io.Writer

	// Limiter paces output. Nil writes as fast as the writer accepts.
	Limiter *rate.Limiter

	// Styles colors tokens by kind. Nil writes values unstyled.
	Styles *pretty.Styles

	// HideSyntax drops syntax tokens so only display text is written.
	HideSyntax bool
}

// NewLimiter returns a limiter releasing burst tokens every delay.
// A non-positive delay disables pacing.
func NewLimiter(delay time.Duration, burst int) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(delay), max(burst, 1))
}

// Play pulls tokens from seq and writes them in order until the stream
// ends, ctx is done, or a write fails. Stats reflect the tokens handled
// before the return.
func (p *Player) Play(ctx context.Context, seq iter.Seq[token.Token]) (stats Stats, err error) {
	if p.Writer == nil {
		return stats, ErrNilWriter
	}

	limiter := p.Limiter
	if limiter == nil {
		limiter = NewLimiter(0, 0)
	}
	styles := p.Styles
	if styles == nil {
		styles = pretty.NewStyles(false)
	}

	start := time.Now()
	defer func() {
		stats.Elapsed = time.Since(start)
	}()

	for tok := range seq {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, fmt.Errorf("playback interrupted: %w", ctxErr)
		}

		stats.Counts.Add(tok)
		if p.HideSyntax && tok.IsSyntax() {
			stats.Skipped++
			continue
		}

		if waitErr := limiter.Wait(ctx); waitErr != nil {
			return stats, fmt.Errorf("playback interrupted: %w", waitErr)
		}
		if _, writeErr := io.WriteString(p.Writer, styles.RenderToken(tok)); writeErr != nil {
			return stats, fmt.Errorf("write token: %w", writeErr)
		}
		stats.Shown++
	}

	logging.FromContext(ctx).Debug("playback finished",
		logging.FieldTokens, stats.Counts.Tokens,
		logging.FieldBytes, stats.Counts.Bytes,
		logging.FieldSkipped, stats.Skipped,
		logging.FieldElapsed, time.Since(start),
	)

	return stats, nil
}
