package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdtype/pkg/token"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tokens := []token.Token{
		token.New(token.Line, "# "),
		token.New(token.Default, "H"),
		token.New(token.Whitespace, " "),
		token.New(token.Open, "*"),
		token.New(token.Default, "x"),
		token.New(token.Close, "*"),
	}

	counts := token.Count(tokens)

	assert.Equal(t, 6, counts.Tokens)
	assert.Equal(t, 7, counts.Bytes)
	assert.Equal(t, 1, counts.Of(token.Line))
	assert.Equal(t, 2, counts.Of(token.Default))
	assert.Equal(t, 1, counts.Of(token.Whitespace))
	assert.Equal(t, 3, counts.OfCategory(token.Syntax))
	assert.Equal(t, 3, counts.OfCategory(token.Display))
	assert.Zero(t, counts.Of(token.Kind(42)))
}

func TestCounts_ZeroValue(t *testing.T) {
	t.Parallel()

	var counts token.Counts
	counts.Add(token.Token{Kind: token.Kind(42), Value: "?"})

	assert.Equal(t, 1, counts.Tokens)
	assert.Equal(t, 1, counts.Bytes)
	assert.Zero(t, counts.OfCategory(token.Syntax))
}

func TestKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]token.Kind{token.Line, token.Open, token.Close, token.Default, token.Whitespace},
		token.Kinds())
}
