package ident

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Variant selects the identifier grammar.
type Variant int

const (
	// Numeric identifiers are digits only and take part in carry.
	Numeric Variant = iota
	// Drawing identifiers are an optional letter prefix followed by digits.
	Drawing
)

// String returns the variant name
func (v Variant) String() string {
	switch v {
	case Numeric:
		return "numeric"
	case Drawing:
		return "drawing"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant converts a variant name back into a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "numeric", "num", "erep":
		return Numeric, nil
	case "drawing", "dwg":
		return Drawing, nil
	default:
		return 0, fmt.Errorf("unknown variant %q: expected numeric or drawing", name)
	}
}

// Kind tells a single identifier from a range.
type Kind int

const (
	Single Kind = iota
	Range
)

// String returns the kind name
func (k Kind) String() string {
	if k == Range {
		return "range"
	}
	return "single"
}

// Parsed is one tokenized identifier. For a Single, Start and End are equal.
// Prefix is only ever set for the Drawing variant and is uppercase.
type Parsed struct {
	Kind   Kind
	Prefix string
	Start  uint64
	End    uint64
}

// Len returns the number of identifiers the token expands to. An inverted
// range has length zero.
func (p Parsed) Len() uint64 {
	if p.End < p.Start {
		return 0
	}
	return p.End - p.Start + 1
}

var (
	numericRange  = regexp.MustCompile(`^([0-9]+)-([0-9]+)$`)
	drawingRange  = regexp.MustCompile(`^([a-zA-Z]*)([0-9]+)-[a-zA-Z]*([0-9]+)$`)
	drawingSingle = regexp.MustCompile(`^([a-zA-Z]*)([0-9]+)$`)
)

// Parse classifies token as a Single or a Range and resolves a range's end.
//
// Only a token that splits on "-" into exactly two non-empty parts, each
// matching the variant's grammar, is a range. Every other token is a single
// identifier and must parse as one, so "123-456-789" is a ParseError rather
// than a guess.
func Parse(v Variant, token string) (Parsed, error) {
	if parts := strings.Split(token, "-"); len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		if p, ok, err := parseRange(v, token); ok || err != nil {
			return p, err
		}
	}
	return parseSingle(v, token)
}

func parseRange(v Variant, token string) (Parsed, bool, error) {
	var prefix, a, b string
	switch v {
	case Drawing:
		m := drawingRange.FindStringSubmatch(token)
		if m == nil {
			return Parsed{}, false, nil
		}
		prefix, a, b = strings.ToUpper(m[1]), m[2], m[3]
	default:
		m := numericRange.FindStringSubmatch(token)
		if m == nil {
			return Parsed{}, false, nil
		}
		a, b = m[1], m[2]
	}

	start, err := parseNumber(token, a)
	if err != nil {
		return Parsed{}, true, err
	}
	end, err := resolveEnd(token, a, b)
	if err != nil {
		return Parsed{}, true, err
	}
	if end < start {
		return Parsed{}, true, &InvalidRangeError{Token: token, Start: start, End: end}
	}
	return Parsed{Kind: Range, Prefix: prefix, Start: start, End: end}, true, nil
}

func parseSingle(v Variant, token string) (Parsed, error) {
	text, prefix := token, ""
	if v == Drawing {
		m := drawingSingle.FindStringSubmatch(token)
		if m == nil {
			return Parsed{}, &ParseError{Token: token, Text: token, Err: errNotDrawing}
		}
		prefix, text = strings.ToUpper(m[1]), m[2]
	}
	n, err := parseNumber(token, text)
	if err != nil {
		return Parsed{}, err
	}
	return Parsed{Kind: Single, Prefix: prefix, Start: n, End: n}, nil
}

// ResolveEnd computes the true end of a range from its start and end
// fragments. An end shorter than the start borrows the start's leading
// digits: ("120", "45") is 145. An end of the same or greater length is
// taken as written: ("1", "20") is 20.
func ResolveEnd(a, b string) (uint64, error) {
	return resolveEnd(a+"-"+b, a, b)
}

func resolveEnd(token, a, b string) (uint64, error) {
	if len(a) > len(b) {
		return parseNumber(token, a[:len(a)-len(b)]+b)
	}
	return parseNumber(token, b)
}

// parseNumber parses text as a 32-bit unsigned decimal. Signs are rejected.
func parseNumber(token, text string) (uint64, error) {
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		cause := errNotNumber
		if errors.Is(err, strconv.ErrRange) {
			cause = strconv.ErrRange
		}
		return 0, &ParseError{Token: token, Text: text, Err: cause}
	}
	return n, nil
}
