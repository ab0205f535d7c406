// Package segment splits text into the units a typewriter emits one at a time.
//
// Two strategies are available. Graphemes follows Unicode extended grapheme
// cluster boundaries (UAX #29), so an emoji ZWJ sequence or a letter with
// combining marks is a single unit. CodeUnits emits one encoded rune at a
// time and is the fallback when cluster-aware output is not wanted.
//
// Both strategies slice the input without copying or decoding it into a new
// form, so concatenating every unit always reproduces the input, including
// invalid UTF-8 bytes.
package segment

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Segmenter yields user-visible units of a string.
type Segmenter interface {
	// Name identifies the strategy in configuration and logs.
	Name() string

	// First returns the first unit of s, or "" when s is empty.
	First(s string) string

	// Each yields the units of s in order.
	Each(s string) iter.Seq[string]
}

// Strategy names accepted by ParseStrategy.
const (
	StrategyGrapheme = "grapheme"
	StrategyCodeUnit = "codeunit"
)

// Graphemes segments by extended grapheme cluster.
type Graphemes struct{}

// Name implements Segmenter.
func (Graphemes) Name() string { return StrategyGrapheme }

// First implements Segmenter.
func (Graphemes) First(s string) string {
	if s == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if cluster == "" {
		return CodeUnits{}.First(s)
	}
	return cluster
}

// Each implements Segmenter.
func (Graphemes) Each(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		rest := s
		for rest != "" {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if !yield(cluster) {
				return
			}
		}
	}
}

// CodeUnits segments by encoded rune. An invalid byte is its own unit.
type CodeUnits struct{}

// Name implements Segmenter.
func (CodeUnits) Name() string { return StrategyCodeUnit }

// First implements Segmenter.
func (CodeUnits) First(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// Each implements Segmenter.
func (c CodeUnits) Each(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s != "" {
			unit := c.First(s)
			if !yield(unit) {
				return
			}
			s = s[len(unit):]
		}
	}
}

// Default returns the grapheme cluster strategy.
func Default() Segmenter {
	return Graphemes{}
}

// ParseStrategy returns the Segmenter registered under name.
// An empty name selects the default.
func ParseStrategy(name string) (Segmenter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyGrapheme, "graphemes":
		return Graphemes{}, nil
	case StrategyCodeUnit, "codeunits", "rune", "runes":
		return CodeUnits{}, nil
	default:
		return nil, fmt.Errorf("unknown segmentation strategy %q; valid strategies: %s, %s",
			name, StrategyGrapheme, StrategyCodeUnit)
	}
}
