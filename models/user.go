// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:191"`
	Name               string    `json:"name" gorm:"not null;size:255"`
	Email              string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password           string    `json:"-" gorm:"not null;size:255"`
	EmailVerified      bool      `json:"email_verified" gorm:"default:false"`
	City               *string   `json:"city" gorm:"size:100"`
	Avatar             *string   `json:"avatar" gorm:"size:500"`
	DefaultVehicleID   string    `json:"default_vehicle_id" gorm:"size:50"`
	DefaultVehicleName string    `json:"default_vehicle_name" gorm:"size:100"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relationships
	Settings     *UserSettings `json:"settings,omitempty" gorm:"foreignKey:UserID"`
	Calculations []Calculation `json:"-" gorm:"foreignKey:UserID"`
}

// UserSettings is the single per-user configuration record. Column defaults
// match the application defaults so a missing row behaves like a fresh one.
type UserSettings struct {
	UserID                    string    `json:"user_id" gorm:"primaryKey;size:191"`
	DefaultMaintenancePercent float64   `json:"default_maintenance_percent" gorm:"default:18"`
	AutoSave                  bool      `json:"auto_save" gorm:"default:false"`
	WeeklyReportEmail         bool      `json:"weekly_report_email" gorm:"default:false"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings used when a user has no stored row.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:                    userID,
		DefaultMaintenancePercent: 18,
	}
}
