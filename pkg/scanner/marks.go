package scanner

import (
	"fmt"

	"github.com/yaklabco/mdtype/pkg/token"
)

// Mark is an inline toggle tracked on the mark stack.
type Mark uint8

// Inline marks.
const (
	Strong    Mark = iota // **
	Emphasis              // *
	Underline             // _
	CodeSpan              // `
)

// String returns the lowercase name of the mark.
func (m Mark) String() string {
	switch m {
	case Strong:
		return "strong"
	case Emphasis:
		return "emphasis"
	case Underline:
		return "underline"
	case CodeSpan:
		return "code"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// Delimiter returns the source text that toggles the mark.
func (m Mark) Delimiter() string {
	switch m {
	case Strong:
		return "**"
	case Emphasis:
		return "*"
	case Underline:
		return "_"
	case CodeSpan:
		return "`"
	default:
		return ""
	}
}

// markAt returns the mark whose delimiter starts at pos. "**" wins over "*".
func markAt(src string, pos int) (Mark, bool) {
	switch src[pos] {
	case '*':
		if pos+1 < len(src) && src[pos+1] == '*' {
			return Strong, true
		}
		return Emphasis, true
	case '_':
		return Underline, true
	case '`':
		return CodeSpan, true
	default:
		return 0, false
	}
}

// markStack is the LIFO of open marks. A delimiter only ever looks at the
// top: equal closes it, anything else opens a new mark on top.
type markStack []Mark

func (s *markStack) top() (Mark, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	return (*s)[len(*s)-1], true
}

// inCode reports whether an open code span is on top of the stack.
func (s *markStack) inCode() bool {
	top, ok := s.top()
	return ok && top == CodeSpan
}

// toggle closes m when it is on top, otherwise opens it.
func (s *markStack) toggle(m Mark) token.Kind {
	if top, ok := s.top(); ok && top == m {
		*s = (*s)[:len(*s)-1]
		return token.Close
	}
	*s = append(*s, m)
	return token.Open
}
