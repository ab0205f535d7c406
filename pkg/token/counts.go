package token

// Counts tallies tokens by kind. The zero value is empty and ready to use.
type Counts struct {
	// Tokens is the number of tokens added.
	Tokens int

	// Bytes is the total length of their values.
	Bytes int

	byKind [len(kindNames)]int
}

// Count tallies a token slice.
func Count(tokens []Token) Counts {
	var c Counts
	for _, tok := range tokens {
		c.Add(tok)
	}
	return c
}

// Add records one token.
func (c *Counts) Add(tok Token) {
	c.Tokens++
	c.Bytes += len(tok.Value)
	if tok.Kind.IsValid() {
		c.byKind[tok.Kind]++
	}
}

// Of returns the number of tokens of the given kind.
func (c Counts) Of(kind Kind) int {
	if !kind.IsValid() {
		return 0
	}
	return c.byKind[kind]
}

// OfCategory returns the number of tokens in the given category.
func (c Counts) OfCategory(cat Category) int {
	total := 0
	for _, kind := range Kinds() {
		if kind.Category() == cat {
			total += c.byKind[kind]
		}
	}
	return total
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
