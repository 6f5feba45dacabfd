// Package restaurant provides the [Restaurant] type, the normalised representation
// of a single takeaway listing from the catalog service, along with the parser
// that builds them from raw catalog responses and the ranking applied before display.
package restaurant

import (
	"slices"
	"strings"
)

// MaxResults is the maximum number of restaurants taken from a single catalog response.
const MaxResults = 10

// Restaurant is a single, normalised restaurant listing.
//
// A Restaurant is a value, once built by [Parse] it is never modified, functions
// that need a different view of a list of restaurants return a new slice.
type Restaurant struct {
	// Display name, may contain non-ASCII characters
	Name string `json:"name" toml:"name" yaml:"name"`

	// Address in the form "<first line>, <postal code>", empty if the catalog
	// had neither
	Address string `json:"address" toml:"address" yaml:"address"`

	// Cuisine tags in the order the catalog listed them, promotional
	// tags (see [Denylist]) removed
	Cuisines []string `json:"cuisines" toml:"cuisines" yaml:"cuisines"`

	// Star rating, 0 means the restaurant has not been rated
	Rating float64 `json:"rating" toml:"rating" yaml:"rating"`
}

// Rated reports whether the restaurant has a rating.
func (r Restaurant) Rated() bool {
	return r.Rating > 0
}

// Equal reports whether two restaurants are identical.
func (r Restaurant) Equal(other Restaurant) bool {
	return r.Name == other.Name &&
		r.Address == other.Address &&
		r.Rating == other.Rating &&
		slices.Equal(r.Cuisines, other.Cuisines)
}

// String implements [fmt.Stringer] for a [Restaurant].
func (r Restaurant) String() string {
	return r.Name + " (" + strings.Join(r.Cuisines, ", ") + ")"
}

// Results is a set of ranked restaurants for a single postcode, it is the document
// exported by the formats in package format.
type Results struct {
	// The postcode as the user entered it
	Postcode string `json:"postcode" toml:"postcode" yaml:"postcode"`

	// The restaurants, best rated first
	Restaurants []Restaurant `json:"restaurants" toml:"restaurants" yaml:"restaurants"`
}

// Rank returns a copy of restaurants sorted by rating, highest first.
//
// The sort is stable so restaurants with the same rating keep the order the
// catalog gave them in, which reflects promoted placement.
func Rank(restaurants []Restaurant) []Restaurant {
	ranked := slices.Clone(restaurants)
	slices.SortStableFunc(ranked, func(a, b Restaurant) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return 0
		}
	})

	return ranked
}
