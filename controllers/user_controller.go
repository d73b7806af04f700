// File: /controllers/user_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"drivecalc-api/models"
	"drivecalc-api/repositories"
)

type UserController struct {
	db   *gorm.DB
	repo *repositories.CalculationRepository
}

func NewUserController(db *gorm.DB, repo *repositories.CalculationRepository) *UserController {
	return &UserController{db: db, repo: repo}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.Preload("Settings").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Name      *string `json:"name"`
		City      *string `json:"city"`
		Avatar    *string `json:"avatar"`
		VehicleID *string `json:"vehicle_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.VehicleID != nil {
		preset, ok := models.FindVehiclePreset(*req.VehicleID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown vehicle"})
			return
		}
		updates["default_vehicle_id"] = preset.ID
		updates["default_vehicle_name"] = preset.Name
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := uc.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func (uc *UserController) GetSettings(c *gin.Context) {
	userID := c.GetString("user_id")

	var settings models.UserSettings
	if err := uc.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		settings = models.DefaultSettings(userID)
	}

	c.JSON(http.StatusOK, settings)
}

func (uc *UserController) UpdateSettings(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		DefaultMaintenancePercent *float64 `json:"default_maintenance_percent"`
		AutoSave                  *bool    `json:"auto_save"`
		WeeklyReportEmail         *bool    `json:"weekly_report_email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DefaultMaintenancePercent != nil {
		if m := *req.DefaultMaintenancePercent; m < 0 || m > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Default maintenance percent must be between 0 and 100"})
			return
		}
	}

	var settings models.UserSettings
	if err := uc.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		settings = models.DefaultSettings(userID)
	}

	if req.DefaultMaintenancePercent != nil {
		settings.DefaultMaintenancePercent = *req.DefaultMaintenancePercent
	}
	if req.AutoSave != nil {
		settings.AutoSave = *req.AutoSave
	}
	if req.WeeklyReportEmail != nil {
		settings.WeeklyReportEmail = *req.WeeklyReportEmail
	}
	settings.UpdatedAt = time.Now()

	if err := uc.db.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// ResetData wipes the user's calculation history and restores default
// settings. The account itself stays. Irreversible; the client must have
// confirmed this explicitly.
func (uc *UserController) ResetData(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := uc.repo.Clear(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset data"})
		return
	}

	defaults := models.DefaultSettings(userID)
	defaults.UpdatedAt = time.Now()
	if err := uc.db.Save(&defaults).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data has been reset"})
}
