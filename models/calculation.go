// File: /models/calculation.go
package models

import (
	"time"
)

// Calculation is one saved earnings calculation: the original trip input, the
// derived result and the resolved vehicle name. Records are append-only: they
// are never updated after creation and only removed by clearing the whole
// history of a user.
type Calculation struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	UserID      string    `json:"user_id" gorm:"not null;size:191"`
	VehicleID   string    `json:"vehicle_id" gorm:"not null;size:50"`
	VehicleName string    `json:"vehicle_name" gorm:"not null;size:100"`
	EarningDate time.Time `json:"earning_date" gorm:"not null"`

	// Input snapshot
	FuelEfficiencyKmPerL float64 `json:"fuel_efficiency_km_per_l" gorm:"not null"`
	GrossEarnings        float64 `json:"gross_earnings" gorm:"not null"`
	DistanceKm           float64 `json:"distance_km" gorm:"not null"`
	FuelPricePerLiter    float64 `json:"fuel_price_per_liter" gorm:"not null"`
	MaintenancePercent   float64 `json:"maintenance_percent" gorm:"not null"`
	OtherCosts           float64 `json:"other_costs" gorm:"default:0"`
	OnlineHours          float64 `json:"online_hours" gorm:"default:0"`

	// Derived result
	FuelLitersUsed      float64 `json:"fuel_liters_used" gorm:"not null"`
	FuelCost            float64 `json:"fuel_cost" gorm:"not null"`
	MaintenanceCost     float64 `json:"maintenance_cost" gorm:"not null"`
	TotalCost           float64 `json:"total_cost" gorm:"not null"`
	NetEarnings         float64 `json:"net_earnings" gorm:"not null"`
	ProfitMarginPercent float64 `json:"profit_margin_percent" gorm:"not null"`
	EarningsPerKm       float64 `json:"earnings_per_km" gorm:"not null"`
	EarningsPerHour     float64 `json:"earnings_per_hour" gorm:"not null"`
	EfficiencyRating    string  `json:"efficiency_rating" gorm:"not null;size:20"`

	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
