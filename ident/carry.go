package ident

// Carry holds the last identifier emitted by a numeric token. Its zero value
// is the absent state, in which tokens pass through unchanged.
type Carry struct {
	last  uint64
	valid bool
}

// Value returns the carried number and whether one is set.
func (c Carry) Value() (uint64, bool) {
	return c.last, c.valid
}

// Normalize applies the carry to p without changing c. A range's start is
// fixed against the carry and its end against the fixed start.
func (c Carry) Normalize(token string, p Parsed) (Parsed, error) {
	if !c.valid {
		return p, nil
	}
	start := FixLen(p.Start, c.last)
	if p.Kind == Single {
		p.Start, p.End = start, start
		return p, nil
	}
	end := FixLen(p.End, start)
	if end < start {
		return Parsed{}, &InvalidRangeError{Token: token, Start: start, End: end}
	}
	p.Start, p.End = start, end
	return p, nil
}

// Advance records the last value produced by p.
func (c *Carry) Advance(p Parsed) {
	c.last, c.valid = p.End, true
}

// Reset returns c to the absent state.
func (c *Carry) Reset() {
	*c = Carry{}
}
