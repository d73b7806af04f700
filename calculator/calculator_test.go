// File: /calculator/calculator_test.go
package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() TripInput {
	maintenance := 18.0
	return TripInput{
		VehicleID:            "onix-10",
		VehicleName:          "Chevrolet Onix 1.0",
		FuelEfficiencyKmPerL: 10,
		GrossEarnings:        100,
		DistanceKm:           50,
		FuelPricePerLiter:    6,
		MaintenancePercent:   &maintenance,
		EarningDate:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalculateReferenceScenario(t *testing.T) {
	result := Calculate(validInput())

	assert.InDelta(t, 5, result.FuelLitersUsed, 1e-9)
	assert.InDelta(t, 30, result.FuelCost, 1e-9)
	assert.InDelta(t, 18, result.MaintenanceCost, 1e-9)
	assert.InDelta(t, 48, result.TotalCost, 1e-9)
	assert.InDelta(t, 52, result.NetEarnings, 1e-9)
	assert.InDelta(t, 52, result.ProfitMarginPercent, 1e-9)
	assert.InDelta(t, 1.04, result.EarningsPerKm, 1e-9)
	assert.Equal(t, RatingGood, result.EfficiencyRating)
}

func TestCalculateIsDeterministic(t *testing.T) {
	input := validInput()
	first := Calculate(input)
	second := Calculate(input)

	assert.Equal(t, first, second)
}

func TestCalculateFuelConsumptionInverse(t *testing.T) {
	cases := []struct {
		name       string
		distanceKm float64
		kmPerLiter float64
	}{
		{"round numbers", 100, 12.5},
		{"short trip", 3.7, 9.3},
		{"long shift", 412.8, 11.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			input.DistanceKm = tc.distanceKm
			input.FuelEfficiencyKmPerL = tc.kmPerLiter

			result := Calculate(input)
			assert.InDelta(t, tc.distanceKm, result.FuelLitersUsed*tc.kmPerLiter, 1e-9)
		})
	}
}

func TestCalculateNetEarningsIdentity(t *testing.T) {
	input := validInput()
	input.OtherCosts = 12.5
	input.OnlineHours = 8

	result := Calculate(input)
	assert.Equal(t, input.GrossEarnings-result.TotalCost, result.NetEarnings)
	assert.InDelta(t, result.NetEarnings/8, result.EarningsPerHour, 1e-9)
}

func TestCalculateOtherCostsIncluded(t *testing.T) {
	base := Calculate(validInput())

	withOther := validInput()
	withOther.OtherCosts = 10
	result := Calculate(withOther)

	assert.InDelta(t, base.TotalCost+10, result.TotalCost, 1e-9)
	assert.InDelta(t, base.NetEarnings-10, result.NetEarnings, 1e-9)
}

func TestCalculateEarningsPerHourZeroWhenNoHours(t *testing.T) {
	input := validInput()
	input.OnlineHours = 0

	result := Calculate(input)
	assert.Zero(t, result.EarningsPerHour)
}

func TestCalculateUsesDefaultMaintenanceWhenAbsent(t *testing.T) {
	input := validInput()
	input.MaintenancePercent = nil

	result := Calculate(input)

	// Default is 18%, not 0
	require.InDelta(t, input.GrossEarnings*DefaultMaintenancePercent/100, result.MaintenanceCost, 1e-9)
}
