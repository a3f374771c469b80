package ident

// Expander turns an ordered list of tokens into parsed identifiers, applying
// carry between numeric tokens.
type Expander struct {
	variant Variant
	carry   Carry
}

// NewExpander creates an Expander for the given variant with no carry.
func NewExpander(v Variant) *Expander {
	return &Expander{variant: v}
}

// Carry returns the current carry state.
func (e *Expander) Carry() Carry {
	return e.carry
}

// Next parses token, normalizes it against the carry for numeric tokens, and
// advances the carry. On error the carry is left as it was.
func (e *Expander) Next(token string) (Parsed, error) {
	p, err := Parse(e.variant, token)
	if err != nil {
		return Parsed{}, err
	}
	if e.variant != Numeric {
		return p, nil
	}
	p, err = e.carry.Normalize(token, p)
	if err != nil {
		return Parsed{}, err
	}
	e.carry.Advance(p)
	return p, nil
}

// ExpandAll runs a fresh Expander over tokens in order and stops at the first
// error.
func ExpandAll(v Variant, tokens []string) ([]Parsed, error) {
	e := NewExpander(v)
	parsed := make([]Parsed, 0, len(tokens))
	for _, token := range tokens {
		p, err := e.Next(token)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}
	return parsed, nil
}

// Flatten collects every identifier of parsed, in order.
func Flatten(parsed []Parsed) []ID {
	var ids []ID
	for _, p := range parsed {
		for id := range p.IDs() {
			ids = append(ids, id)
		}
	}
	return ids
}
