// File: /calculator/validate_test.go
package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func TestValidateAcceptsValidInput(t *testing.T) {
	assert.Nil(t, Validate(validInput(), testNow))
}

func TestValidateSingleFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TripInput)
		field  string
	}{
		{"missing vehicle", func(in *TripInput) { in.VehicleID = "" }, "vehicle_id"},
		{"zero fuel efficiency", func(in *TripInput) { in.FuelEfficiencyKmPerL = 0 }, "fuel_efficiency_km_per_l"},
		{"negative fuel efficiency", func(in *TripInput) { in.FuelEfficiencyKmPerL = -3 }, "fuel_efficiency_km_per_l"},
		{"zero gross earnings", func(in *TripInput) { in.GrossEarnings = 0 }, "gross_earnings"},
		{"zero distance", func(in *TripInput) { in.DistanceKm = 0 }, "distance_km"},
		{"zero fuel price", func(in *TripInput) { in.FuelPricePerLiter = 0 }, "fuel_price_per_liter"},
		{"negative maintenance", func(in *TripInput) { m := -1.0; in.MaintenancePercent = &m }, "maintenance_percent"},
		{"maintenance above 100", func(in *TripInput) { m := 101.0; in.MaintenancePercent = &m }, "maintenance_percent"},
		{"missing date", func(in *TripInput) { in.EarningDate = time.Time{} }, "earning_date"},
		{"future date", func(in *TripInput) { in.EarningDate = testNow.AddDate(0, 0, 1) }, "earning_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			errs := Validate(input, testNow)
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestValidateBoundaryValuesAccepted(t *testing.T) {
	input := validInput()

	zero := 0.0
	input.MaintenancePercent = &zero
	assert.Nil(t, Validate(input, testNow))

	hundred := 100.0
	input.MaintenancePercent = &hundred
	assert.Nil(t, Validate(input, testNow))

	// Same calendar day as "now" is not a future date, regardless of time.
	input.EarningDate = time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 23, 59, 0, 0, time.UTC)
	assert.Nil(t, Validate(input, testNow))
}

func TestValidateReportsEveryViolation(t *testing.T) {
	errs := Validate(TripInput{}, testNow)

	require.Len(t, errs, 6)

	// Field order matches rule declaration order
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{
		"vehicle_id",
		"fuel_efficiency_km_per_l",
		"gross_earnings",
		"distance_km",
		"fuel_price_per_liter",
		"earning_date",
	}, fields)
}

func TestResolvedMaintenancePercent(t *testing.T) {
	input := validInput()
	input.MaintenancePercent = nil
	assert.Equal(t, DefaultMaintenancePercent, input.ResolvedMaintenancePercent())

	explicit := 25.0
	input.MaintenancePercent = &explicit
	assert.Equal(t, 25.0, input.ResolvedMaintenancePercent())
}
