// File: /calculator/insights.go
package calculator

// Insight is an advisory message derived from a calculation.
type Insight struct {
	Severity string `json:"severity"` // warning, info, success
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// GenerateInsights evaluates every advisory rule against a result and its
// input. Rules are independent; each one that triggers appends an insight in
// declaration order. An empty slice is a valid outcome.
func GenerateInsights(res Result, in TripInput) []Insight {
	var insights []Insight

	if res.ProfitMarginPercent < 30 {
		insights = append(insights, Insight{
			Severity: "warning",
			Title:    "Low profit margin",
			Message:  "Your profit margin is below 30%. Consider reviewing your routes and working hours to reduce costs per trip.",
		})
	}
	if res.EarningsPerKm < 1 {
		insights = append(insights, Insight{
			Severity: "info",
			Title:    "Low earnings per kilometer",
			Message:  "You are netting less than R$ 1.00 per km. Longer trips or higher-demand areas tend to pay better per kilometer.",
		})
	}
	if in.ResolvedMaintenancePercent() < 15 {
		insights = append(insights, Insight{
			Severity: "warning",
			Title:    "Maintenance reserve may be too low",
			Message:  "Reserving 15-20% of gross earnings for maintenance avoids surprises with tires, oil and brakes.",
		})
	}
	if res.EfficiencyRating == RatingExcellent {
		insights = append(insights, Insight{
			Severity: "success",
			Title:    "Excellent efficiency",
			Message:  "Great work! Your margin and earnings per km are both in the top band. Keep this routine.",
		})
	}
	if in.FuelPricePerLiter > FuelPriceAlertThreshold {
		insights = append(insights, Insight{
			Severity: "info",
			Title:    "Fuel price above average",
			Message:  "You paid more than R$ 5.50 per liter. Comparing stations on your usual routes can recover a few percent of margin.",
		})
	}

	return insights
}
