package scanner

import "github.com/yaklabco/mdtype/pkg/segment"

// Options configures a Scanner. The zero value is ready to use: line
// markers keep their trailing space and text is split by grapheme cluster.
type Options struct {
	// TrimLineSpace leaves the trailing space of a matched line marker
	// ("# ", "> ", "- ", "1. ") out of the line token. The space is then
	// scanned on the next step and surfaces as a whitespace display token.
	// Fence lines are never trimmed.
	TrimLineSpace bool

	// Segmenter splits display text into units. Nil selects
	// segment.Default().
	Segmenter segment.Segmenter
}

// DefaultOptions returns the options used by Scan.
func DefaultOptions() Options {
	return Options{Segmenter: segment.Default()}
}

func (o Options) segmenter() segment.Segmenter {
	if o.Segmenter == nil {
		return segment.Default()
	}
	return o.Segmenter
}
