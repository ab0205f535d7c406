package scanner

// isSpace reports whether b is one of the whitespace bytes that clump into a
// single display token.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// whitespaceRun returns the length of the whitespace run starting at start.
// The caller guarantees src[start] is whitespace, so the result is at least 1.
func whitespaceRun(src string, start int) int {
	end := start
	for end < len(src) && isSpace(src[end]) {
		end++
	}
	return end - start
}
