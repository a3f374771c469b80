package ident

import (
	"iter"
	"strconv"
	"strings"
)

// ID is one fully resolved identifier.
type ID struct {
	Prefix string
	Number uint64
}

// String returns the prefix followed by the bare decimal number.
func (id ID) String() string {
	return id.Prefix + strconv.FormatUint(id.Number, 10)
}

// Format returns the prefix followed by the number left-padded with zeros to
// width digits. Numbers already at least width digits long are not cut.
func (id ID) Format(width int) string {
	digits := strconv.FormatUint(id.Number, 10)
	if pad := width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return id.Prefix + digits
}

// Values yields every number in [Start, End] in ascending order. The sequence
// is restartable and yields nothing for an inverted range.
func (p Parsed) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if p.End < p.Start {
			return
		}
		for n := p.Start; ; n++ {
			if !yield(n) || n == p.End {
				return
			}
		}
	}
}

// IDs yields Values with the prefix attached.
func (p Parsed) IDs() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for n := range p.Values() {
			if !yield(ID{Prefix: p.Prefix, Number: n}) {
				return
			}
		}
	}
}

// Last returns the final identifier the token produces.
func (p Parsed) Last() ID {
	return ID{Prefix: p.Prefix, Number: p.End}
}
