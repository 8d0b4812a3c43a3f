package statsdomain

import (
	"fmt"
	"math"
)

// BaselineRating is the synthetic starting rating every series begins from.
const BaselineRating = 1000

// RatingChange is one step of a player's rating history.
type RatingChange struct {
	NewRating float64
}

// SeriesPoint is one plotted point of a rating trend.
type SeriesPoint struct {
	Label  string
	Rating int
}

// EloSeries builds the plotted rating trend from a chronological history:
// a synthetic "Match 0" baseline followed by one point per record in input
// order, labeled by 1-based position and rounded to the nearest integer.
// Input order is trusted as chronological and never reordered.
func EloSeries(records []RatingChange) []SeriesPoint {
	series := make([]SeriesPoint, 0, len(records)+1)
	series = append(series, SeriesPoint{Label: "Match 0", Rating: BaselineRating})

	for i, r := range records {
		series = append(series, SeriesPoint{
			Label:  fmt.Sprintf("Match %d", i+1),
			Rating: int(math.Round(r.NewRating)),
		})
	}
	return series
}
