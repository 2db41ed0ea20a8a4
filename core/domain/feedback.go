package domain

import "strings"

// Rating is a thumbs up or down on a variant
type Rating string

const (
	RatingUp   Rating = "up"
	RatingDown Rating = "down"
)

// ParseRating maps s to a rating. An empty or unknown value yields false.
func ParseRating(s string) (Rating, bool) {
	switch Rating(strings.ToLower(strings.TrimSpace(s))) {
	case RatingUp:
		return RatingUp, true
	case RatingDown:
		return RatingDown, true
	}
	return "", false
}

// FeedbackRecord is a rating and/or comment on one variant of a generation.
// It is logged and acknowledged, never stored.
type FeedbackRecord struct {
	GenerationID string
	Index        int
	Comment      string
	Rating       Rating
}
