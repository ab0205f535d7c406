package pretty

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "fits", input: "abc", maxLen: 3, want: "abc"},
		{name: "ascii", input: "abcdefgh", maxLen: 6, want: "abc..."},
		{name: "short limit", input: "abcdef", maxLen: 2, want: "ab"},
		{name: "backs off multibyte", input: `"héllo"`, maxLen: 6, want: `"h...`},
		{name: "keeps whole rune", input: `"héllo"`, maxLen: 7, want: `"hé...`},
		{name: "short limit multibyte", input: "日本", maxLen: 2, want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := truncateString(testCase.input, testCase.maxLen)
			assert.Equal(t, testCase.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
