// File: /repositories/calculation_repository.go
package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"drivecalc-api/models"
)

// CalculationRepository is the append-and-clear log of saved calculations.
// Records are inserted once and never updated; Clear removes a user's whole
// history in a single statement. No ordering is guaranteed by the list
// methods; callers sort when display order matters.
type CalculationRepository struct {
	db *gorm.DB
}

func NewCalculationRepository(db *gorm.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

// Append inserts a new calculation record and returns its id. It never
// overwrites: every call produces exactly one new row.
func (r *CalculationRepository) Append(calc *models.Calculation) (string, error) {
	if err := r.db.Create(calc).Error; err != nil {
		return "", fmt.Errorf("failed to append calculation: %w", err)
	}
	return calc.ID, nil
}

// ListAll returns every saved calculation of a user.
func (r *CalculationRepository) ListAll(userID string) ([]models.Calculation, error) {
	var calculations []models.Calculation
	if err := r.db.Where("user_id = ?", userID).Find(&calculations).Error; err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	return calculations, nil
}

// ListByDateRange returns the calculations whose earning date falls in
// [start, end], both inclusive.
func (r *CalculationRepository) ListByDateRange(userID string, start, end time.Time) ([]models.Calculation, error) {
	var calculations []models.Calculation
	err := r.db.Where("user_id = ? AND earning_date >= ? AND earning_date <= ?", userID, start, end).
		Find(&calculations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations by date range: %w", err)
	}
	return calculations, nil
}

// ListByVehicle returns the calculations saved for one vehicle display name.
func (r *CalculationRepository) ListByVehicle(userID, vehicleName string) ([]models.Calculation, error) {
	var calculations []models.Calculation
	err := r.db.Where("user_id = ? AND vehicle_name = ?", userID, vehicleName).
		Find(&calculations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations by vehicle: %w", err)
	}
	return calculations, nil
}

// Clear deletes the entire history of a user. Irreversible; confirmation is
// the caller's responsibility.
func (r *CalculationRepository) Clear(userID string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Calculation{}).Error; err != nil {
		return fmt.Errorf("failed to clear calculations: %w", err)
	}
	return nil
}
