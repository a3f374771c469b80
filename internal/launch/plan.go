package launch

import (
	"errors"
	"fmt"

	"github.com/shopdocs/launcher/ident"
)

// ErrRangeTooLarge is matched by errors from Plan when a token expands to more
// identifiers than allowed.
var ErrRangeTooLarge = errors.New("range too large")

// ErrInvalidLimit is returned by Plan for a maxRange below one.
var ErrInvalidLimit = errors.New("max range must be at least 1")

// Group is the expansion of one token.
type Group struct {
	Token string   `json:"token" yaml:"token"`
	Names []string `json:"identifiers" yaml:"identifiers"`
}

// Plan expands tokens in order with carry and formats every identifier with
// width-digit zero padding. No token may expand to more than maxRange
// identifiers. Any error fails the whole plan so nothing is opened for a
// partly valid command line.
func Plan(v ident.Variant, tokens []string, maxRange, width int) ([]Group, error) {
	if maxRange < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLimit, maxRange)
	}

	e := ident.NewExpander(v)
	groups := make([]Group, 0, len(tokens))
	for _, token := range tokens {
		p, err := e.Next(token)
		if err != nil {
			return nil, err
		}
		if p.Len() > uint64(maxRange) {
			return nil, fmt.Errorf("%w: %q expands to %d identifiers, limit is %d", ErrRangeTooLarge, token, p.Len(), maxRange)
		}

		g := Group{Token: token, Names: make([]string, 0, p.Len())}
		for id := range p.IDs() {
			g.Names = append(g.Names, id.Format(width))
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// Names flattens groups into one ordered list.
func Names(groups []Group) []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.Names...)
	}
	return names
}
