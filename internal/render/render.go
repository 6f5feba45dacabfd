// Package render turns ranked restaurants into the human readable text shown
// on the console and saved to disk.
//
// Both renderers produce the same numbered, four line per restaurant layout. The
// console variant is decorated by a [Palette] and restricted to ASCII, the file
// variant is plain and keeps the text exactly as the catalog sent it.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.followtheprocess.codes/grub/internal/restaurant"
	"go.followtheprocess.codes/hue"
)

// notRated is shown in place of a rating for restaurants without one.
const notRated = "Not Rated"

// Palette maps a rating [Tier] to the style used to show the rating on the console.
//
// Tiers missing from the palette, or a nil palette, are shown unstyled.
type Palette map[Tier]hue.Style

// DefaultPalette returns the palette used on an interactive terminal.
func DefaultPalette() Palette {
	return Palette{
		High:    hue.Green | hue.Bold,
		Medium:  hue.Yellow,
		Low:     hue.Red,
		Unrated: hue.BrightBlack | hue.Italic,
	}
}

// apply renders text in the style for tier.
func (p Palette) apply(tier Tier, text string) string {
	style, ok := p[tier]
	if !ok {
		return text
	}

	return style.Text(text)
}

// NoResults returns the notice shown instead of a listing when a postcode has no restaurants.
func NoResults(postcode string) string {
	return fmt.Sprintf("No restaurants found for postcode %s", postcode)
}

// Console renders restaurants for display on the terminal.
//
// Non-ASCII characters are stripped and each rating is styled according
// to its [Tier] by palette.
func Console(restaurants []restaurant.Restaurant, postcode string, palette Palette) string {
	if len(restaurants) == 0 {
		return NoResults(postcode) + "\n"
	}

	s := &strings.Builder{}
	fmt.Fprintf(s, "Top %d Restaurants for %s:\n\n", len(restaurants), postcode)

	for i, r := range restaurants {
		cuisines := make([]string, 0, len(r.Cuisines))
		for _, cuisine := range r.Cuisines {
			cuisines = append(cuisines, strings.TrimSpace(ascii(cuisine)))
		}

		rating := palette.apply(TierOf(r.Rating), Rating(r.Rating))

		block(s, i+1, strings.TrimSpace(ascii(r.Name)), cuisines, rating, Address(ascii(r.Address)))
	}

	return s.String()
}

// File renders restaurants for the persisted record, text is kept as is other than
// trimming and address normalisation.
func File(restaurants []restaurant.Restaurant, postcode string) string {
	if len(restaurants) == 0 {
		return NoResults(postcode) + "\n"
	}

	s := &strings.Builder{}
	fmt.Fprintf(s, "Top %d Restaurants for Postcode: %s\n", len(restaurants), postcode)

	for i, r := range restaurants {
		cuisines := make([]string, 0, len(r.Cuisines))
		for _, cuisine := range r.Cuisines {
			cuisines = append(cuisines, strings.TrimSpace(cuisine))
		}

		block(s, i+1, strings.TrimSpace(r.Name), cuisines, Rating(r.Rating), Address(r.Address))
	}

	return s.String()
}

// block writes the listing for a single restaurant followed by a blank line.
func block(s *strings.Builder, index int, name string, cuisines []string, rating, address string) {
	fmt.Fprintf(s, "%d. %s\n", index, name)
	fmt.Fprintf(s, "   Cuisines: %s\n", strings.Join(cuisines, ", "))
	fmt.Fprintf(s, "   Rating: %s\n", rating)
	fmt.Fprintf(s, "   Address: %s\n", address)
	s.WriteByte('\n')
}

// Rating formats a star rating, always with at least one decimal place
// e.g. "4.5", "4.0", or "Not Rated" if rating is 0.
func Rating(rating float64) string {
	if rating <= 0 {
		return notRated
	}

	formatted := strconv.FormatFloat(rating, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}

	return formatted
}

// Address normalises an address for display: a space after every comma, runs
// of whitespace collapsed to one space and the ends trimmed.
func Address(address string) string {
	address = strings.ReplaceAll(address, ",", ", ")
	return strings.Join(strings.Fields(address), " ")
}

// ascii returns s with all non-ASCII characters removed.
func ascii(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}

		return r
	}, s)
}
