package restaurant

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformed is returned (wrapped) from [Parse] when the catalog response is
// not a valid JSON document.
var ErrMalformed = errors.New("malformed catalog response")

// Denylist is the set of tags the catalog mixes in with cuisines that are really
// promotions or store categories, they are dropped from [Restaurant.Cuisines].
//
// Matching is exact and case sensitive.
//
//nolint:gochecknoglobals // Fixed lookup table
var Denylist = []string{
	"Low Delivery Fee",
	"Deals",
	"Collect stamps",
	"Cheeky Tuesday",
	"Lunch",
	"Breakfast",
	"Freebies",
	"£8 off",
	"Shops",
	"Pharmacy",
	"All Night Alcohol",
	"Gifts",
	"Electronics",
	"Health and Beauty",
}

// Parse decodes a raw catalog response into at most [MaxResults] restaurants, in
// the order the catalog listed them.
//
// Parsing is tolerant, a missing "restaurants" array is simply no results and
// missing or oddly typed fields on a restaurant take their zero value rather than
// discarding the restaurant. Only a body that is not JSON at all is an error, in
// which case the returned slice is nil, never partial.
func Parse(body []byte) ([]Restaurant, error) {
	var document any
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	root, ok := document.(map[string]any)
	if !ok {
		return nil, nil
	}

	entries, ok := root["restaurants"].([]any)
	if !ok {
		return nil, nil
	}

	entries = entries[:min(MaxResults, len(entries))]

	restaurants := make([]Restaurant, 0, len(entries))
	for _, entry := range entries {
		restaurants = append(restaurants, fromEntry(object(entry)))
	}

	return restaurants, nil
}

// fromEntry maps a single loosely typed catalog entry to a [Restaurant], applying
// defaults field by field.
func fromEntry(entry map[string]any) Restaurant {
	address := object(entry["address"])

	return Restaurant{
		Name:     text(entry["name"]),
		Cuisines: cuisines(entry["cuisines"]),
		Rating:   rating(object(entry["rating"])["starRating"]),
		Address:  joinAddress(text(address["firstLine"]), text(address["postalCode"])),
	}
}

// cuisines collects the names of the cuisine objects in value, dropping
// anything on the [Denylist].
func cuisines(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		name := text(object(item)["name"])
		if slices.Contains(Denylist, name) {
			continue
		}

		names = append(names, name)
	}

	return names
}

// rating interprets value as a star rating, anything unusable is 0 (unrated).
func rating(value any) float64 {
	var stars float64

	switch v := value.(type) {
	case float64:
		stars = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}

		stars = parsed
	default:
		return 0
	}

	if math.IsNaN(stars) || math.IsInf(stars, 0) || stars < 0 {
		return 0
	}

	return stars
}

// joinAddress builds "<firstLine>, <postalCode>" from whichever parts are present.
func joinAddress(firstLine, postalCode string) string {
	parts := make([]string, 0, 2) //nolint:mnd // First line and postal code
	if firstLine != "" {
		parts = append(parts, firstLine)
	}

	if postalCode != "" {
		parts = append(parts, postalCode)
	}

	return strings.Join(parts, ", ")
}

// object returns value as a JSON object, or an empty one if it is anything else.
func object(value any) map[string]any {
	if obj, ok := value.(map[string]any); ok {
		return obj
	}

	return map[string]any{}
}

// text returns the textual form of a JSON scalar, or "" for null, objects and arrays.
func text(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
