// File: /calculator/calculator.go
package calculator

import (
	"time"
)

const (
	// DefaultMaintenancePercent is applied when no maintenance reserve is provided.
	DefaultMaintenancePercent = 18.0

	// FuelPriceAlertThreshold is the price per liter (BRL) above which an
	// insight suggests shopping around for cheaper fuel.
	FuelPriceAlertThreshold = 5.50
)

// TripInput holds the raw values of a single earnings calculation. It must pass
// Validate before being handed to Calculate.
type TripInput struct {
	VehicleID            string
	VehicleName          string
	FuelEfficiencyKmPerL float64
	GrossEarnings        float64
	DistanceKm           float64
	FuelPricePerLiter    float64
	MaintenancePercent   *float64
	OtherCosts           float64
	OnlineHours          float64
	EarningDate          time.Time
}

// ResolvedMaintenancePercent returns the maintenance reserve to use,
// falling back to the default when the field was not collected.
func (in TripInput) ResolvedMaintenancePercent() float64 {
	if in.MaintenancePercent == nil {
		return DefaultMaintenancePercent
	}
	return *in.MaintenancePercent
}

// Result holds the derived financial metrics of a trip. Values are
// full-precision; rounding is a presentation concern.
type Result struct {
	FuelLitersUsed      float64 `json:"fuel_liters_used"`
	FuelCost            float64 `json:"fuel_cost"`
	MaintenanceCost     float64 `json:"maintenance_cost"`
	OtherCosts          float64 `json:"other_costs"`
	TotalCost           float64 `json:"total_cost"`
	NetEarnings         float64 `json:"net_earnings"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	EarningsPerKm       float64 `json:"earnings_per_km"`
	EarningsPerHour     float64 `json:"earnings_per_hour"`
	EfficiencyRating    Rating  `json:"efficiency_rating"`
}

// Calculate derives the financial result of a trip. It is a pure function:
// no I/O, no hidden state, identical input always yields identical output.
// The caller is responsible for running Validate first; divisors are assumed
// to be non-zero.
func Calculate(in TripInput) Result {
	litersUsed := in.DistanceKm / in.FuelEfficiencyKmPerL
	fuelCost := litersUsed * in.FuelPricePerLiter
	maintenanceCost := in.GrossEarnings * in.ResolvedMaintenancePercent() / 100
	totalCost := fuelCost + maintenanceCost + in.OtherCosts
	netEarnings := in.GrossEarnings - totalCost
	profitMargin := netEarnings / in.GrossEarnings * 100
	perKm := netEarnings / in.DistanceKm

	perHour := 0.0
	if in.OnlineHours > 0 {
		perHour = netEarnings / in.OnlineHours
	}

	return Result{
		FuelLitersUsed:      litersUsed,
		FuelCost:            fuelCost,
		MaintenanceCost:     maintenanceCost,
		OtherCosts:          in.OtherCosts,
		TotalCost:           totalCost,
		NetEarnings:         netEarnings,
		ProfitMarginPercent: profitMargin,
		EarningsPerKm:       perKm,
		EarningsPerHour:     perHour,
		EfficiencyRating:    Classify(profitMargin, perKm),
	}
}
