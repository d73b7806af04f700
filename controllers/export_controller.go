// File: /controllers/export_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"drivecalc-api/models"
	"drivecalc-api/repositories"
)

// ExportController produces the full-state export document. Field names and
// nesting follow the legacy client-side storage schema (usuario /
// configuracoes / calculos) and are a stable contract: a future import must
// be able to round-trip this document into the same logical records.
type ExportController struct {
	db   *gorm.DB
	repo *repositories.CalculationRepository
}

func NewExportController(db *gorm.DB, repo *repositories.CalculationRepository) *ExportController {
	return &ExportController{db: db, repo: repo}
}

type exportUser struct {
	Nome         string  `json:"nome"`
	Carro        string  `json:"carro"`
	Cidade       *string `json:"cidade,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
	DataCadastro string  `json:"dataCadastro"`
}

type exportSettings struct {
	ManutencaoPadrao float64 `json:"manutencaoPadrao"`
	SalvarAutomatico bool    `json:"salvarAutomatico"`
	Notificacoes     bool    `json:"notificacoes"`
}

type exportCalculation struct {
	ID               string  `json:"id"`
	Data             string  `json:"data"`
	Veiculo          string  `json:"veiculo"`
	GanhosBrutos     float64 `json:"ganhosBrutos"`
	GanhosLiquidos   float64 `json:"ganhosLiquidos"`
	GastoCombustivel float64 `json:"gastoCombustivel"`
	GastoManutencao  float64 `json:"gastoManutencao"`
	OutrosGastos     float64 `json:"outrosGastos"`
	TempoOnline      float64 `json:"tempoOnline"`
	GanhoPorHora     float64 `json:"ganhoPorHora"`
	GanhoPorKm       float64 `json:"ganhoPorKm"`
	LitrosUsados     float64 `json:"litrosUsados"`
	Km               float64 `json:"km"`
	KmL              float64 `json:"kmL"`
	Combustivel      float64 `json:"combustivel"`
	Manutencao       float64 `json:"manutencao"`
	Timestamp        int64   `json:"timestamp"`
}

type exportDocument struct {
	Usuario       exportUser          `json:"usuario"`
	Configuracoes exportSettings      `json:"configuracoes"`
	Calculos      []exportCalculation `json:"calculos"`
	ExportadoEm   string              `json:"exportadoEm"`
}

// Export streams the user's full state as a downloadable JSON document.
func (ec *ExportController) Export(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := ec.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var settings models.UserSettings
	if err := ec.db.First(&settings, "user_id = ?", userID).Error; err != nil {
		settings = models.DefaultSettings(userID)
	}

	calculations, err := ec.repo.ListAll(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	doc := exportDocument{
		Usuario: exportUser{
			Nome:         user.Name,
			Carro:        user.DefaultVehicleName,
			Cidade:       user.City,
			Avatar:       user.Avatar,
			DataCadastro: user.CreatedAt.UTC().Format(time.RFC3339),
		},
		Configuracoes: exportSettings{
			ManutencaoPadrao: settings.DefaultMaintenancePercent,
			SalvarAutomatico: settings.AutoSave,
			Notificacoes:     settings.WeeklyReportEmail,
		},
		Calculos:    make([]exportCalculation, 0, len(calculations)),
		ExportadoEm: time.Now().UTC().Format(time.RFC3339),
	}

	for _, calc := range calculations {
		doc.Calculos = append(doc.Calculos, exportCalculation{
			ID:               calc.ID,
			Data:             calc.EarningDate.UTC().Format(time.RFC3339),
			Veiculo:          calc.VehicleName,
			GanhosBrutos:     calc.GrossEarnings,
			GanhosLiquidos:   calc.NetEarnings,
			GastoCombustivel: calc.FuelCost,
			GastoManutencao:  calc.MaintenanceCost,
			OutrosGastos:     calc.OtherCosts,
			TempoOnline:      calc.OnlineHours,
			GanhoPorHora:     calc.EarningsPerHour,
			GanhoPorKm:       calc.EarningsPerKm,
			LitrosUsados:     calc.FuelLitersUsed,
			Km:               calc.DistanceKm,
			KmL:              calc.FuelEfficiencyKmPerL,
			Combustivel:      calc.FuelPricePerLiter,
			Manutencao:       calc.MaintenancePercent,
			Timestamp:        calc.CreatedAt.UnixMilli(),
		})
	}

	filename := fmt.Sprintf("drivecalc-export-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}
