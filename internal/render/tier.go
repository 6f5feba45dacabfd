package render

// Tier is a cosmetic bucket for a rating, used only to decorate the
// rating on the console.
type Tier int

//go:generate stringer -type Tier -linecomment
const (
	Unrated Tier = iota // unrated
	Low                 // low
	Medium              // medium
	High                // high
)

// Rating boundaries for each [Tier].
const (
	highThreshold   = 4.0
	mediumThreshold = 2.5
)

// TierOf returns the [Tier] for a star rating.
func TierOf(rating float64) Tier {
	switch {
	case rating >= highThreshold:
		return High
	case rating >= mediumThreshold:
		return Medium
	case rating > 0:
		return Low
	default:
		return Unrated
	}
}
