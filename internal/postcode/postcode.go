// Package postcode implements validation of UK postcodes.
//
// Validation is purely syntactic, a postcode that passes [Valid] is shaped like a UK
// postcode (outward code, optional space, inward code) but may not actually exist.
package postcode

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ErrInvalid is returned (wrapped) from [Validate] when the input is not a UK postcode.
var ErrInvalid = errors.New("invalid UK postcode")

// pattern is the UK outward + inward code grammar, applied to the uppercased input.
//
//nolint:gochecknoglobals // Compiled once
var pattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][0-9A-Z]? ?[0-9][A-Z]{2}$`)

// Valid reports whether input is a syntactically valid UK postcode.
//
// The check is case insensitive and allows at most a single space between
// the outward and inward codes, e.g. "EC4M7RF", "w1a 1aa".
func Valid(input string) bool {
	return pattern.MatchString(strings.ToUpper(input))
}

// Validate is like [Valid] but returns an error wrapping [ErrInvalid] describing
// the offending input.
func Validate(input string) error {
	if !Valid(input) {
		return fmt.Errorf("%w: %q", ErrInvalid, input)
	}

	return nil
}

// Compact returns the postcode uppercased with all whitespace removed, suitable
// for embedding in a filename.
func Compact(input string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, input))
}
