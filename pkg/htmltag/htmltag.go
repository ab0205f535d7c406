// Package htmltag derives closing tags for the HTML spans a scanner emits.
package htmltag

import (
	"strings"

	"golang.org/x/net/html"
)

// ToClosingTag returns the closing tag that balances tag.
//
// An opening tag such as `<div class="x">` yields "</div>" with the name in
// its source casing. A closing tag is returned unchanged. Self-closing tags,
// comments, doctypes and anything that is not exactly one tag yield "".
func ToClosingTag(tag string) string {
	if !strings.HasPrefix(tag, "<") || !strings.HasSuffix(tag, ">") {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(tag))
	tt := z.Next()

	// TagName lowercases the tokenizer buffer in place, so copy the raw
	// bytes first.
	raw := string(z.Raw())
	if len(raw) != len(tag) {
		return ""
	}

	switch tt {
	case html.StartTagToken:
		name, _ := z.TagName()
		if len(name) == 0 {
			return ""
		}
		return "</" + raw[1:1+len(name)] + ">"
	case html.EndTagToken:
		return tag
	case html.SelfClosingTagToken:
		return ""
	default:
		return ""
	}
}
