// Package token defines the classified tokens produced by the scanner.
package token

import (
	"fmt"
	"strings"
)

// Category splits tokens into markup the renderer may hide and text it shows.
type Category uint8

const (
	// Syntax tokens carry Markdown or HTML markup.
	Syntax Category = iota
	// Display tokens carry visible text.
	Display
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case Syntax:
		return "syntax"
	case Display:
		return "display"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Kind classifies a token within its category.
type Kind uint8

// Token kinds. Line, Open and Close belong to Syntax; Default and
// Whitespace belong to Display.
const (
	Line       Kind = iota // line-start marker: "# ", "> ", "- ", "1. ", fence line
	Open                   // opening inline mark or HTML tag
	Close                  // closing inline mark or HTML tag
	Default                // a single grapheme cluster of text
	Whitespace             // a maximal run of space, tab, CR, LF
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	Line:       "line",
	Open:       "open",
	Close:      "close",
	Default:    "default",
	Whitespace: "whitespace",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Category returns the category the kind belongs to.
func (k Kind) Category() Category {
	switch k {
	case Line, Open, Close:
		return Syntax
	default:
		return Display
	}
}

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	return int(k) < len(kindNames)
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

// Token is one classified slice of the source.
type Token struct {
	// Category is Syntax or Display.
	Category Category

	// Kind refines Category.
	Kind Kind

	// Value is the exact source text consumed for this token.
	Value string
}

// New returns a token of the given kind with its category filled in.
func New(kind Kind, value string) Token {
	return Token{Category: kind.Category(), Kind: kind, Value: value}
}

// Len returns the length of the token value in bytes.
func (t Token) Len() int {
	return len(t.Value)
}

// IsSyntax reports whether the token carries markup.
func (t Token) IsSyntax() bool {
	return t.Category == Syntax
}

// String renders the token as kind("value").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}

// Join concatenates token values in order. For a complete scan the result
// equals the scanned source.
func Join(tokens []Token) string {
	size := 0
	for _, tok := range tokens {
		size += len(tok.Value)
	}

	var buf strings.Builder
	buf.Grow(size)
	for _, tok := range tokens {
		buf.WriteString(tok.Value)
	}
	return buf.String()
}

// Validate checks that a token slice is a faithful decomposition of src:
//   - every token is non-empty,
//   - every token's category matches its kind,
//   - the joined values equal src.
func Validate(tokens []Token, src string) bool {
	if len(tokens) == 0 {
		return src == ""
	}

	pos := 0
	for _, tok := range tokens {
		if tok.Value == "" || !tok.Kind.IsValid() || tok.Category != tok.Kind.Category() {
			return false
		}
		if !strings.HasPrefix(src[pos:], tok.Value) {
			return false
		}
		pos += len(tok.Value)
	}

	return pos == len(src)
}
