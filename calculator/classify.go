// File: /calculator/classify.go
package calculator

// Rating is the discrete efficiency classification of a trip.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingVeryGood  Rating = "very_good"
	RatingGood      Rating = "good"
	RatingRegular   Rating = "regular"
	RatingLow       Rating = "low"
)

// Classify maps a profit margin (percent) and net earnings per km to a
// rating. Bands are evaluated in descending order and both thresholds of a
// band must hold; every (margin, perKm) pair maps to exactly one rating.
func Classify(profitMarginPercent, earningsPerKm float64) Rating {
	switch {
	case profitMarginPercent >= 70 && earningsPerKm >= 2:
		return RatingExcellent
	case profitMarginPercent >= 50 && earningsPerKm >= 1.5:
		return RatingVeryGood
	case profitMarginPercent >= 30 && earningsPerKm >= 1:
		return RatingGood
	case profitMarginPercent >= 15 && earningsPerKm >= 0.5:
		return RatingRegular
	default:
		return RatingLow
	}
}
