// Package scanner splits Markdown with inline HTML into classified tokens
// for progressive rendering.
//
// The scanner is a single left-to-right pass. Each call to Next consumes at
// least one byte and returns exactly one token, so the stream always ends
// and the token values concatenate back to the source:
//
//	sc := scanner.New("# Hi *x*", scanner.DefaultOptions())
//	for tok := range sc.All() {
//		fmt.Print(tok.Value)
//	}
//
// Recognition is deliberately shallow. Line markers are only seen at the
// start of a line, inline marks are a toggle stack rather than a matched
// bracket structure, and HTML tags are classified by their first two bytes.
// Malformed input is never repaired; it is re-emitted as display text.
package scanner

import (
	"iter"
	"slices"

	"github.com/yaklabco/mdtype/pkg/segment"
	"github.com/yaklabco/mdtype/pkg/token"
)

// Scanner produces tokens from a source string on demand.
// A Scanner is not safe for concurrent use; separate Scanners are
// independent.
type Scanner struct {
	src     string
	pos     int
	inFence bool
	marks   markStack
	tags    tagMatcher

	trimLineSpace bool
	seg           segment.Segmenter
}

// State is a snapshot of the scanner between tokens.
type State struct {
	// Offset is the byte offset of the next token.
	Offset int

	// InFence is true between an opening and a closing fence line.
	InFence bool

	// Marks lists open inline marks, innermost last.
	Marks []Mark
}

// Done reports whether the whole source has been consumed.
func (s State) Done(src string) bool {
	return s.Offset >= len(src)
}

// Unterminated reports whether the scan left a fence or inline mark open.
func (s State) Unterminated() bool {
	return s.InFence || len(s.Marks) > 0
}

// New returns a Scanner positioned at the start of src.
func New(src string, opts Options) *Scanner {
	return &Scanner{
		src:           src,
		tags:          tagMatcher{src: src},
		trimLineSpace: opts.TrimLineSpace,
		seg:           opts.segmenter(),
	}
}

// Next returns the next token. The boolean is false once the source is
// exhausted, and stays false on later calls.
func (s *Scanner) Next() (token.Token, bool) {
	if s.pos >= len(s.src) {
		return token.Token{}, false
	}

	n, kind := s.step()
	tok := token.New(kind, s.src[s.pos:s.pos+n])
	s.pos += n

	return tok, true
}

// All yields the remaining tokens. Stopping the loop early leaves the
// scanner where it stopped; nothing needs releasing.
func (s *Scanner) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// State returns a snapshot of the scanner.
func (s *Scanner) State() State {
	return State{
		Offset:  s.pos,
		InFence: s.inFence,
		Marks:   slices.Clone([]Mark(s.marks)),
	}
}

// Source returns the text being scanned.
func (s *Scanner) Source() string {
	return s.src
}

// step decides the token at s.pos and returns its length and kind.
// Every branch returns a length of at least one.
func (s *Scanner) step() (int, token.Kind) {
	src, pos := s.src, s.pos

	if atLineStart(src, pos) {
		if n := matchFence(src, pos); n > 0 {
			s.inFence = !s.inFence
			return n, token.Line
		}
		if !s.inFence {
			if n := matchLineSyntax(src, pos); n > 0 {
				if s.trimLineSpace {
					n--
				}
				return n, token.Line
			}
		}
	}

	if s.inFence {
		return s.display()
	}

	if !s.marks.inCode() {
		if n, kind := s.tags.match(pos); n > 0 {
			return n, kind
		}
	}

	if mark, ok := markAt(src, pos); ok && (mark == CodeSpan || !s.marks.inCode()) {
		return len(mark.Delimiter()), s.marks.toggle(mark)
	}

	if isSpace(src[pos]) {
		return whitespaceRun(src, pos), token.Whitespace
	}

	return len(s.seg.First(src[pos:])), token.Default
}

// display returns the next display unit inside a fence, where no markup
// is recognized.
func (s *Scanner) display() (int, token.Kind) {
	if isSpace(s.src[s.pos]) {
		return whitespaceRun(s.src, s.pos), token.Whitespace
	}
	return len(s.seg.First(s.src[s.pos:])), token.Default
}

// Tokenize scans src to the end and returns every token.
func Tokenize(src string, opts Options) []token.Token {
	const bytesPerToken = 2
	tokens := make([]token.Token, 0, len(src)/bytesPerToken)
	for tok := range New(src, opts).All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Scan yields the tokens of src using DefaultOptions.
func Scan(src string) iter.Seq[token.Token] {
	return New(src, DefaultOptions()).All()
}
