// File: /calculator/classify_test.go
package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		name   string
		margin float64
		perKm  float64
		want   Rating
	}{
		{"top band threshold", 70, 2, RatingExcellent},
		{"well above top band", 90, 3.5, RatingExcellent},
		{"margin just below top band", 69.9, 2, RatingVeryGood},
		{"per km just below top band", 70, 1.99, RatingVeryGood},
		{"very good threshold", 50, 1.5, RatingVeryGood},
		{"good threshold", 30, 1, RatingGood},
		{"high margin low per km", 80, 1.2, RatingGood},
		{"regular threshold", 15, 0.5, RatingRegular},
		{"margin below regular", 14.9, 0.5, RatingLow},
		{"per km below regular", 15, 0.49, RatingLow},
		{"negative margin", -10, 0.8, RatingLow},
		{"both negative", -50, -2, RatingLow},
		{"zero everything", 0, 0, RatingLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.margin, tc.perKm))
		})
	}
}

// The bands must partition the whole plane: every pair maps to exactly one
// rating and a band only matches when both thresholds hold.
func TestClassifyIsTotal(t *testing.T) {
	for margin := -100.0; margin <= 100; margin += 5 {
		for perKm := -3.0; perKm <= 3; perKm += 0.25 {
			rating := Classify(margin, perKm)
			assert.Contains(t, []Rating{
				RatingExcellent, RatingVeryGood, RatingGood, RatingRegular, RatingLow,
			}, rating)
		}
	}
}
