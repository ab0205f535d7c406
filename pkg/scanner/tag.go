package scanner

import (
	"strings"

	"github.com/yaklabco/mdtype/pkg/token"
)

// tagMatcher recognizes "<...>" spans by surface syntax only. It remembers
// the next '>' it found so that a run of '<' with no closing '>' is searched
// once, not once per '<'.
type tagMatcher struct {
	src string

	// gt is the offset of the first '>' after the last searched '<', or -1
	// when there is none. It is valid only when searched is true.
	gt       int
	searched bool
}

// match returns the length of the tag starting at pos and Close for "</..."
// or Open for anything else. Without a later '>' there is no tag and the
// length is 0. Offsets passed to match must not decrease.
func (m *tagMatcher) match(pos int) (int, token.Kind) {
	src := m.src
	if src[pos] != '<' {
		return 0, 0
	}

	if !m.searched || (m.gt >= 0 && m.gt <= pos) {
		m.searched = true
		m.gt = -1
		if i := strings.IndexByte(src[pos+1:], '>'); i >= 0 {
			m.gt = pos + 1 + i
		}
	}
	if m.gt < 0 {
		return 0, 0
	}

	n := m.gt - pos + 1
	if strings.HasPrefix(src[pos:], "</") {
		return n, token.Close
	}
	return n, token.Open
}
