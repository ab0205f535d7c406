package reporter

import "context"

// Renderer formats a finished scan for output.
// Renderers are stateless and only handle presentation logic.
type Renderer interface {
	// Render writes the formatted scan to the configured output.
	Render(ctx context.Context, scan *Scan) error
}
