// File: /controllers/calculator_controller.go
package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"drivecalc-api/calculator"
	"drivecalc-api/models"
	"drivecalc-api/repositories"
	"drivecalc-api/utils"
)

type CalculatorController struct {
	db   *gorm.DB
	repo *repositories.CalculationRepository
}

func NewCalculatorController(db *gorm.DB, repo *repositories.CalculationRepository) *CalculatorController {
	return &CalculatorController{db: db, repo: repo}
}

type CalculationRequest struct {
	VehicleID            string   `json:"vehicle_id"`
	VehicleName          string   `json:"vehicle_name"`
	FuelEfficiencyKmPerL float64  `json:"fuel_efficiency_km_per_l"`
	GrossEarnings        float64  `json:"gross_earnings"`
	DistanceKm           float64  `json:"distance_km"`
	FuelPricePerLiter    float64  `json:"fuel_price_per_liter"`
	MaintenancePercent   *float64 `json:"maintenance_percent"`
	OtherCosts           float64  `json:"other_costs"`
	OnlineHours          float64  `json:"online_hours"`
	EarningDate          string   `json:"earning_date"` // YYYY-MM-DD
}

type CalculationResponse struct {
	Result   calculator.Result    `json:"result"`
	Insights []calculator.Insight `json:"insights"`
	SavedID  string               `json:"saved_id,omitempty"`
}

// buildTripInput converts a request into a trip input, applying the user's
// stored maintenance default when the field was not sent.
func (cc *CalculatorController) buildTripInput(req CalculationRequest, settings models.UserSettings) (calculator.TripInput, []calculator.FieldError) {
	input := calculator.TripInput{
		VehicleID:            req.VehicleID,
		VehicleName:          req.VehicleName,
		FuelEfficiencyKmPerL: req.FuelEfficiencyKmPerL,
		GrossEarnings:        req.GrossEarnings,
		DistanceKm:           req.DistanceKm,
		FuelPricePerLiter:    req.FuelPricePerLiter,
		MaintenancePercent:   req.MaintenancePercent,
		OtherCosts:           req.OtherCosts,
		OnlineHours:          req.OnlineHours,
	}

	if preset, ok := models.FindVehiclePreset(req.VehicleID); ok && input.VehicleName == "" {
		input.VehicleName = preset.Name
	}

	if input.MaintenancePercent == nil {
		input.MaintenancePercent = &settings.DefaultMaintenancePercent
	}

	if req.EarningDate != "" {
		date, err := time.Parse("2006-01-02", req.EarningDate)
		if err != nil {
			return input, []calculator.FieldError{{Field: "earning_date", Reason: "earning date must be in YYYY-MM-DD format"}}
		}
		input.EarningDate = date
	}

	return input, nil
}

func (cc *CalculatorController) loadSettings(userID string) models.UserSettings {
	var settings models.UserSettings
	if err := cc.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		return models.DefaultSettings(userID)
	}
	return settings
}

// Calculate validates and computes a trip result without persisting it,
// unless the user enabled auto-save in their settings.
func (cc *CalculatorController) Calculate(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := cc.loadSettings(userID)
	input, parseErrs := cc.buildTripInput(req, settings)
	if parseErrs != nil {
		utils.SendValidationErrors(c, parseErrs)
		return
	}

	if errs := calculator.Validate(input, time.Now().UTC()); errs != nil {
		utils.SendValidationErrors(c, errs)
		return
	}

	result := calculator.Calculate(input)
	response := CalculationResponse{
		Result:   result,
		Insights: calculator.GenerateInsights(result, input),
	}

	if settings.AutoSave {
		id, err := cc.persist(userID, input, result)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save calculation"})
			return
		}
		response.SavedID = id
	}

	c.JSON(http.StatusOK, response)
}

// Save validates, computes and appends the calculation to the history.
func (cc *CalculatorController) Save(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, parseErrs := cc.buildTripInput(req, cc.loadSettings(userID))
	if parseErrs != nil {
		utils.SendValidationErrors(c, parseErrs)
		return
	}

	if errs := calculator.Validate(input, time.Now().UTC()); errs != nil {
		utils.SendValidationErrors(c, errs)
		return
	}

	result := calculator.Calculate(input)
	id, err := cc.persist(userID, input, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save calculation"})
		return
	}

	c.JSON(http.StatusCreated, CalculationResponse{
		Result:   result,
		Insights: calculator.GenerateInsights(result, input),
		SavedID:  id,
	})
}

func (cc *CalculatorController) persist(userID string, input calculator.TripInput, result calculator.Result) (string, error) {
	record := models.Calculation{
		ID:                   uuid.New().String(),
		UserID:               userID,
		VehicleID:            input.VehicleID,
		VehicleName:          input.VehicleName,
		EarningDate:          input.EarningDate,
		FuelEfficiencyKmPerL: input.FuelEfficiencyKmPerL,
		GrossEarnings:        input.GrossEarnings,
		DistanceKm:           input.DistanceKm,
		FuelPricePerLiter:    input.FuelPricePerLiter,
		MaintenancePercent:   input.ResolvedMaintenancePercent(),
		OtherCosts:           input.OtherCosts,
		OnlineHours:          input.OnlineHours,
		FuelLitersUsed:       result.FuelLitersUsed,
		FuelCost:             result.FuelCost,
		MaintenanceCost:      result.MaintenanceCost,
		TotalCost:            result.TotalCost,
		NetEarnings:          result.NetEarnings,
		ProfitMarginPercent:  result.ProfitMarginPercent,
		EarningsPerKm:        result.EarningsPerKm,
		EarningsPerHour:      result.EarningsPerHour,
		EfficiencyRating:     string(result.EfficiencyRating),
	}

	return cc.repo.Append(&record)
}

// GetHistory lists saved calculations, newest first. Optional filters:
// from/to (YYYY-MM-DD, inclusive) and vehicle (display name).
func (cc *CalculatorController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	var (
		calculations []models.Calculation
		err          error
	)

	fromStr, toStr := c.Query("from"), c.Query("to")
	vehicle := c.Query("vehicle")

	switch {
	case fromStr != "" || toStr != "":
		from, to, perr := parseDateRange(fromStr, toStr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error()})
			return
		}
		calculations, err = cc.repo.ListByDateRange(userID, from, to)
	case vehicle != "":
		calculations, err = cc.repo.ListByVehicle(userID, vehicle)
	default:
		calculations, err = cc.repo.ListAll(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch calculation history"})
		return
	}

	if vehicle != "" && (fromStr != "" || toStr != "") {
		filtered := calculations[:0]
		for _, calc := range calculations {
			if calc.VehicleName == vehicle {
				filtered = append(filtered, calc)
			}
		}
		calculations = filtered
	}

	// Storage gives no ordering guarantee; history is shown newest first.
	sort.Slice(calculations, func(i, j int) bool {
		if !calculations[i].EarningDate.Equal(calculations[j].EarningDate) {
			return calculations[i].EarningDate.After(calculations[j].EarningDate)
		}
		return calculations[i].CreatedAt.After(calculations[j].CreatedAt)
	})

	c.JSON(http.StatusOK, calculations)
}

// ClearHistory empties the user's entire calculation log. The client is
// expected to have confirmed this with the user; it cannot be undone.
func (cc *CalculatorController) ClearHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := cc.repo.Clear(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear calculation history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calculation history cleared successfully"})
}

// GetVehicles returns the selectable vehicle presets with typical km/L.
func (cc *CalculatorController) GetVehicles(c *gin.Context) {
	c.JSON(http.StatusOK, models.VehiclePresets())
}

func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now().UTC()

	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, errors.New("from must be in YYYY-MM-DD format")
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, errors.New("to must be in YYYY-MM-DD format")
		}
		// Inclusive upper bound
		to = parsed.AddDate(0, 0, 1).Add(-time.Second)
	}

	return from, to, nil
}
