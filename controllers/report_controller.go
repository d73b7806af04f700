// File: /controllers/report_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"drivecalc-api/services"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// refDate reads the optional ?date=YYYY-MM-DD parameter, defaulting to today.
func refDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now().UTC(), true
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return time.Time{}, false
	}
	return date, true
}

// GetDashboard bundles every rollup the dashboard needs in one response.
func (rc *ReportController) GetDashboard(c *gin.Context) {
	userID := c.GetString("user_id")

	date, ok := refDate(c)
	if !ok {
		return
	}

	daily, err := rc.reports.DailyTotals(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	weekly, err := rc.reports.WeeklySummary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	monthly, err := rc.reports.MonthlyReport(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	growth, err := rc.reports.ComparativeGrowth(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	series, err := rc.reports.Last7DaysSeries(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	expenses, err := rc.reports.ExpenseDistribution(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today":                daily,
		"week":                 weekly,
		"month":                monthly,
		"growth_percent":       growth,
		"earnings_series":      series,
		"expense_distribution": expenses,
	})
}

func (rc *ReportController) GetDailyTotals(c *gin.Context) {
	userID := c.GetString("user_id")

	date, ok := refDate(c)
	if !ok {
		return
	}

	totals, err := rc.reports.DailyTotals(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute daily totals"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (rc *ReportController) GetWeeklySummary(c *gin.Context) {
	userID := c.GetString("user_id")

	date, ok := refDate(c)
	if !ok {
		return
	}

	summary, err := rc.reports.WeeklySummary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute weekly summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (rc *ReportController) GetMonthlyReport(c *gin.Context) {
	userID := c.GetString("user_id")

	date, ok := refDate(c)
	if !ok {
		return
	}

	report, err := rc.reports.MonthlyReport(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly report"})
		return
	}

	growth, err := rc.reports.ComparativeGrowth(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":         report,
		"growth_percent": growth,
	})
}

func (rc *ReportController) GetEarningsSeries(c *gin.Context) {
	userID := c.GetString("user_id")

	date, ok := refDate(c)
	if !ok {
		return
	}

	series, err := rc.reports.Last7DaysSeries(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute earnings series"})
		return
	}

	c.JSON(http.StatusOK, series)
}

func (rc *ReportController) GetExpenseDistribution(c *gin.Context) {
	userID := c.GetString("user_id")

	distribution, err := rc.reports.ExpenseDistribution(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute expense distribution"})
		return
	}

	c.JSON(http.StatusOK, distribution)
}
