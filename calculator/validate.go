// File: /calculator/validate.go
package calculator

import (
	"time"
)

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validate checks a trip input against all rules and returns every violation
// in field order, so the caller can report all problems at once. A nil slice
// means the input is valid. now anchors the "date not in the future" rule.
func Validate(in TripInput, now time.Time) []FieldError {
	var errs []FieldError

	if in.VehicleID == "" {
		errs = append(errs, FieldError{Field: "vehicle_id", Reason: "vehicle must be selected"})
	}
	if in.FuelEfficiencyKmPerL <= 0 {
		errs = append(errs, FieldError{Field: "fuel_efficiency_km_per_l", Reason: "fuel efficiency must be greater than zero"})
	}
	if in.GrossEarnings <= 0 {
		errs = append(errs, FieldError{Field: "gross_earnings", Reason: "gross earnings must be greater than zero"})
	}
	if in.DistanceKm <= 0 {
		errs = append(errs, FieldError{Field: "distance_km", Reason: "distance must be greater than zero"})
	}
	if in.FuelPricePerLiter <= 0 {
		errs = append(errs, FieldError{Field: "fuel_price_per_liter", Reason: "fuel price must be greater than zero"})
	}
	if m := in.ResolvedMaintenancePercent(); m < 0 || m > 100 {
		errs = append(errs, FieldError{Field: "maintenance_percent", Reason: "maintenance percent must be between 0 and 100"})
	}
	if in.EarningDate.IsZero() {
		errs = append(errs, FieldError{Field: "earning_date", Reason: "earning date is required"})
	} else if dayOf(in.EarningDate).After(dayOf(now)) {
		errs = append(errs, FieldError{Field: "earning_date", Reason: "earning date cannot be in the future"})
	}

	return errs
}

// dayOf truncates a timestamp to its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
