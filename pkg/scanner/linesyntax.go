package scanner

import "strings"

const (
	fenceMarker     = "```"
	maxHeadingLevel = 6
)

// atLineStart reports whether pos is at offset 0 or right after a newline.
func atLineStart(src string, pos int) bool {
	return pos == 0 || src[pos-1] == '\n'
}

// matchFence returns the length of a fence delimiter line starting at pos,
// or 0. The line runs through its info string and its newline, if any.
func matchFence(src string, pos int) int {
	if !strings.HasPrefix(src[pos:], fenceMarker) {
		return 0
	}
	if nl := strings.IndexByte(src[pos:], '\n'); nl >= 0 {
		return nl + 1
	}
	return len(src) - pos
}

// matchLineSyntax returns the length of a non-fence line marker starting at
// pos, including its trailing space, or 0. Markers are tried in order:
// ATX heading, block quote, bullet, ordered list item.
func matchLineSyntax(src string, pos int) int {
	if n := matchHeading(src, pos); n > 0 {
		return n
	}
	if n := matchBlockquote(src, pos); n > 0 {
		return n
	}
	if n := matchBullet(src, pos); n > 0 {
		return n
	}
	return matchOrdered(src, pos)
}

// matchHeading matches 1-6 '#' followed by a space.
func matchHeading(src string, pos int) int {
	n := runOf(src, pos, '#')
	if n == 0 || n > maxHeadingLevel {
		return 0
	}
	return followedBySpace(src, pos, n)
}

// matchBlockquote matches one or more '>' followed by a space.
func matchBlockquote(src string, pos int) int {
	n := runOf(src, pos, '>')
	if n == 0 {
		return 0
	}
	return followedBySpace(src, pos, n)
}

// matchBullet matches '-', '+' or '*' followed by a space.
func matchBullet(src string, pos int) int {
	switch src[pos] {
	case '-', '+', '*':
		return followedBySpace(src, pos, 1)
	default:
		return 0
	}
}

// matchOrdered matches digits, then '.' or ')', then a space.
func matchOrdered(src string, pos int) int {
	end := pos
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	if end == pos || end >= len(src) {
		return 0
	}
	if src[end] != '.' && src[end] != ')' {
		return 0
	}
	return followedBySpace(src, pos, end-pos+1)
}

// runOf counts consecutive c bytes from pos.
func runOf(src string, pos int, c byte) int {
	end := pos
	for end < len(src) && src[end] == c {
		end++
	}
	return end - pos
}

// followedBySpace returns n+1 when src[pos+n] is a space, otherwise 0.
func followedBySpace(src string, pos, n int) int {
	if pos+n < len(src) && src[pos+n] == ' ' {
		return n + 1
	}
	return 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
