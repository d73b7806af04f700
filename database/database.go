// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"drivecalc-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Calculation{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// History is always read per user, filtered by earning date or vehicle.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_calculations_user_date ON calculations(user_id, earning_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for calculations date: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_calculations_user_vehicle ON calculations(user_id, vehicle_name)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for calculations vehicle: %v\n", err)
	}

	return nil
}
