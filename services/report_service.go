// File: /services/report_service.go
package services

import (
	"fmt"
	"time"

	"drivecalc-api/models"
)

// CalculationStore is the read surface the report service needs from the
// calculation log.
type CalculationStore interface {
	ListAll(userID string) ([]models.Calculation, error)
	ListByDateRange(userID string, start, end time.Time) ([]models.Calculation, error)
}

// ReportService derives rollups and chart series from the calculation log.
// Every report is recomputed fully on each call; nothing is cached and the
// store is never mutated.
type ReportService struct {
	store CalculationStore
}

func NewReportService(store CalculationStore) *ReportService {
	return &ReportService{store: store}
}

type DailyTotals struct {
	Date          string  `json:"date"`
	GrossEarnings float64 `json:"gross_earnings"`
	DistanceKm    float64 `json:"distance_km"`
	FuelCost      float64 `json:"fuel_cost"`
	Trips         int     `json:"trips"`
}

type WeeklySummary struct {
	WeekStart           string  `json:"week_start"`
	WeekEnd             string  `json:"week_end"`
	TotalNetEarnings    float64 `json:"total_net_earnings"`
	AveragePerWorkedDay float64 `json:"average_per_worked_day"`
	BestDayNetEarnings  float64 `json:"best_day_net_earnings"`
	BestDay             string  `json:"best_day,omitempty"`
	AverageMarginPct    float64 `json:"average_margin_percent"`
	WorkedDays          int     `json:"worked_days"`
}

type MonthlyReport struct {
	Month               string  `json:"month"`
	TotalNetEarnings    float64 `json:"total_net_earnings"`
	AveragePerWorkedDay float64 `json:"average_per_worked_day"`
	WorkedDays          int     `json:"worked_days"`
}

type SeriesPoint struct {
	Date        string  `json:"date"`
	Label       string  `json:"label"`
	NetEarnings float64 `json:"net_earnings"`
}

type ExpenseDistribution struct {
	FuelPercent        float64 `json:"fuel_percent"`
	MaintenancePercent float64 `json:"maintenance_percent"`
	OtherPercent       float64 `json:"other_percent"`
}

const dateLayout = "2006-01-02"

// DailyTotals sums the records whose earning date falls on the given
// calendar day.
func (s *ReportService) DailyTotals(userID string, date time.Time) (DailyTotals, error) {
	start := startOfDay(date)
	end := start.AddDate(0, 0, 1).Add(-time.Second)

	calcs, err := s.store.ListByDateRange(userID, start, end)
	if err != nil {
		return DailyTotals{}, fmt.Errorf("daily totals: %w", err)
	}

	totals := DailyTotals{Date: start.Format(dateLayout)}
	for _, c := range calcs {
		totals.GrossEarnings += c.GrossEarnings
		totals.DistanceKm += c.DistanceKm
		totals.FuelCost += c.FuelCost
		totals.Trips++
	}
	return totals, nil
}

// WeeklySummary reports the Sunday-to-Saturday week containing the reference
// date. The average divides the total by the number of distinct days with at
// least one record, not by seven.
func (s *ReportService) WeeklySummary(userID string, reference time.Time) (WeeklySummary, error) {
	weekStart := startOfDay(reference).AddDate(0, 0, -int(reference.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second)

	calcs, err := s.store.ListByDateRange(userID, weekStart, weekEnd)
	if err != nil {
		return WeeklySummary{}, fmt.Errorf("weekly summary: %w", err)
	}

	summary := WeeklySummary{
		WeekStart: weekStart.Format(dateLayout),
		WeekEnd:   weekStart.AddDate(0, 0, 6).Format(dateLayout),
	}
	if len(calcs) == 0 {
		return summary, nil
	}

	perDay := map[string]float64{}
	var marginSum float64
	for _, c := range calcs {
		day := startOfDay(c.EarningDate).Format(dateLayout)
		perDay[day] += c.NetEarnings
		summary.TotalNetEarnings += c.NetEarnings
		marginSum += c.ProfitMarginPercent
	}

	for day, net := range perDay {
		if summary.BestDay == "" || net > summary.BestDayNetEarnings {
			summary.BestDay = day
			summary.BestDayNetEarnings = net
		}
	}

	summary.WorkedDays = len(perDay)
	summary.AveragePerWorkedDay = summary.TotalNetEarnings / float64(summary.WorkedDays)
	summary.AverageMarginPct = marginSum / float64(len(calcs))
	return summary, nil
}

// MonthlyReport covers the calendar month containing the reference date.
func (s *ReportService) MonthlyReport(userID string, reference time.Time) (MonthlyReport, error) {
	monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	calcs, err := s.store.ListByDateRange(userID, monthStart, monthEnd)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("monthly report: %w", err)
	}

	report := MonthlyReport{Month: monthStart.Format("2006-01")}
	perDay := map[string]struct{}{}
	for _, c := range calcs {
		report.TotalNetEarnings += c.NetEarnings
		perDay[startOfDay(c.EarningDate).Format(dateLayout)] = struct{}{}
	}

	report.WorkedDays = len(perDay)
	if report.WorkedDays > 0 {
		report.AveragePerWorkedDay = report.TotalNetEarnings / float64(report.WorkedDays)
	}
	return report, nil
}

// ComparativeGrowth returns the percent change of this month's net earnings
// over last month's. Zero when last month has no earnings.
func (s *ReportService) ComparativeGrowth(userID string, reference time.Time) (float64, error) {
	thisMonth, err := s.MonthlyReport(userID, reference)
	if err != nil {
		return 0, err
	}
	// Step back from the month start, not the reference day: AddDate on e.g.
	// March 31 would normalize "Feb 31" into March again.
	monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	lastMonth, err := s.MonthlyReport(userID, monthStart.AddDate(0, -1, 0))
	if err != nil {
		return 0, err
	}

	if lastMonth.TotalNetEarnings == 0 {
		return 0, nil
	}
	return (thisMonth.TotalNetEarnings - lastMonth.TotalNetEarnings) / lastMonth.TotalNetEarnings * 100, nil
}

// Last7DaysSeries returns one point per calendar day in the window ending at
// the reference date, oldest first and zero-filled, always exactly 7 entries.
func (s *ReportService) Last7DaysSeries(userID string, reference time.Time) ([]SeriesPoint, error) {
	end := startOfDay(reference)
	start := end.AddDate(0, 0, -6)

	calcs, err := s.store.ListByDateRange(userID, start, end.AddDate(0, 0, 1).Add(-time.Second))
	if err != nil {
		return nil, fmt.Errorf("earnings series: %w", err)
	}

	perDay := map[string]float64{}
	for _, c := range calcs {
		perDay[startOfDay(c.EarningDate).Format(dateLayout)] += c.NetEarnings
	}

	series := make([]SeriesPoint, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format(dateLayout)
		series = append(series, SeriesPoint{
			Date:        key,
			Label:       day.Weekday().String()[:3],
			NetEarnings: perDay[key],
		})
	}
	return series, nil
}

// ExpenseDistribution splits the cumulative historical costs into fuel,
// maintenance and other shares. With no history (or zero total cost) it
// falls back to a fixed 60/25/15 split so charts always have something to
// draw.
func (s *ReportService) ExpenseDistribution(userID string) (ExpenseDistribution, error) {
	calcs, err := s.store.ListAll(userID)
	if err != nil {
		return ExpenseDistribution{}, fmt.Errorf("expense distribution: %w", err)
	}

	var fuel, maintenance, other float64
	for _, c := range calcs {
		fuel += c.FuelCost
		maintenance += c.MaintenanceCost
		other += c.OtherCosts
	}

	total := fuel + maintenance + other
	if total == 0 {
		return ExpenseDistribution{FuelPercent: 60, MaintenancePercent: 25, OtherPercent: 15}, nil
	}

	return ExpenseDistribution{
		FuelPercent:        fuel / total * 100,
		MaintenancePercent: maintenance / total * 100,
		OtherPercent:       other / total * 100,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
