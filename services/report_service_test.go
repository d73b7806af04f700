// File: /services/report_service_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivecalc-api/models"
)

// fakeStore is an in-memory CalculationStore.
type fakeStore struct {
	records []models.Calculation
	err     error
}

func (f *fakeStore) ListAll(userID string) ([]models.Calculation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Calculation
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByDateRange(userID string, start, end time.Time) ([]models.Calculation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Calculation
	for _, r := range f.records {
		if r.UserID == userID && !r.EarningDate.Before(start) && !r.EarningDate.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

const testUser = "user-1"

func record(date time.Time, net, gross, distance, fuelCost, maintCost, otherCosts, margin float64) models.Calculation {
	return models.Calculation{
		UserID:              testUser,
		EarningDate:         date,
		NetEarnings:         net,
		GrossEarnings:       gross,
		DistanceKm:          distance,
		FuelCost:            fuelCost,
		MaintenanceCost:     maintCost,
		OtherCosts:          otherCosts,
		ProfitMarginPercent: margin,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyTotals(t *testing.T) {
	store := &fakeStore{records: []models.Calculation{
		record(day(2025, 3, 10), 52, 100, 50, 30, 18, 0, 52),
		record(day(2025, 3, 10), 80, 150, 60, 40, 27, 3, 53),
		record(day(2025, 3, 11), 999, 999, 999, 999, 999, 0, 10),
	}}
	svc := NewReportService(store)

	totals, err := svc.DailyTotals(testUser, day(2025, 3, 10))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", totals.Date)
	assert.InDelta(t, 250, totals.GrossEarnings, 1e-9)
	assert.InDelta(t, 110, totals.DistanceKm, 1e-9)
	assert.InDelta(t, 70, totals.FuelCost, 1e-9)
	assert.Equal(t, 2, totals.Trips)
}

func TestDailyTotalsEmptyDay(t *testing.T) {
	svc := NewReportService(&fakeStore{})

	totals, err := svc.DailyTotals(testUser, day(2025, 3, 10))
	require.NoError(t, err)
	assert.Zero(t, totals.GrossEarnings)
	assert.Zero(t, totals.Trips)
}

func TestWeeklySummaryAveragesOverWorkedDays(t *testing.T) {
	// 2025-03-12 is a Wednesday; its week runs Sunday 03-09 to Saturday 03-15.
	store := &fakeStore{records: []models.Calculation{
		record(day(2025, 3, 9), 100, 0, 0, 0, 0, 0, 50),
		record(day(2025, 3, 9), 20, 0, 0, 0, 0, 0, 30),
		record(day(2025, 3, 11), 200, 0, 0, 0, 0, 0, 60),
		record(day(2025, 3, 15), 60, 0, 0, 0, 0, 0, 40),
		// Outside the week
		record(day(2025, 3, 16), 999, 0, 0, 0, 0, 0, 99),
		record(day(2025, 3, 8), 999, 0, 0, 0, 0, 0, 99),
	}}
	svc := NewReportService(store)

	summary, err := svc.WeeklySummary(testUser, day(2025, 3, 12))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-09", summary.WeekStart)
	assert.Equal(t, "2025-03-15", summary.WeekEnd)
	assert.InDelta(t, 380, summary.TotalNetEarnings, 1e-9)
	assert.Equal(t, 3, summary.WorkedDays)
	// Divided by 3 worked days, not 7
	assert.InDelta(t, 380.0/3, summary.AveragePerWorkedDay, 1e-9)
	assert.Equal(t, "2025-03-11", summary.BestDay)
	assert.InDelta(t, 200, summary.BestDayNetEarnings, 1e-9)
	assert.InDelta(t, (50+30+60+40)/4.0, summary.AverageMarginPct, 1e-9)
}

func TestWeeklySummaryEmptyWeek(t *testing.T) {
	svc := NewReportService(&fakeStore{})

	summary, err := svc.WeeklySummary(testUser, day(2025, 3, 12))
	require.NoError(t, err)

	assert.Zero(t, summary.TotalNetEarnings)
	assert.Zero(t, summary.WorkedDays)
	assert.Zero(t, summary.AveragePerWorkedDay)
	assert.Empty(t, summary.BestDay)
}

func TestMonthlyReport(t *testing.T) {
	store := &fakeStore{records: []models.Calculation{
		record(day(2025, 3, 1), 100, 0, 0, 0, 0, 0, 0),
		record(day(2025, 3, 1), 50, 0, 0, 0, 0, 0, 0),
		record(day(2025, 3, 31), 150, 0, 0, 0, 0, 0, 0),
		record(day(2025, 4, 1), 999, 0, 0, 0, 0, 0, 0),
		record(day(2025, 2, 28), 999, 0, 0, 0, 0, 0, 0),
	}}
	svc := NewReportService(store)

	report, err := svc.MonthlyReport(testUser, day(2025, 3, 15))
	require.NoError(t, err)

	assert.Equal(t, "2025-03", report.Month)
	assert.InDelta(t, 300, report.TotalNetEarnings, 1e-9)
	assert.Equal(t, 2, report.WorkedDays)
	assert.InDelta(t, 150, report.AveragePerWorkedDay, 1e-9)
}

func TestComparativeGrowth(t *testing.T) {
	store := &fakeStore{records: []models.Calculation{
		record(day(2025, 2, 10), 200, 0, 0, 0, 0, 0, 0),
		record(day(2025, 3, 10), 300, 0, 0, 0, 0, 0, 0),
	}}
	svc := NewReportService(store)

	growth, err := svc.ComparativeGrowth(testUser, day(2025, 3, 15))
	require.NoError(t, err)
	assert.InDelta(t, 50, growth, 1e-9)
}

func TestComparativeGrowthMonthEndReferences(t *testing.T) {
	// February has no 29th-31st in 2025; the previous month must still
	// resolve to February for any March reference day.
	store := &fakeStore{records: []models.Calculation{
		record(day(2025, 2, 10), 200, 0, 0, 0, 0, 0, 0),
		record(day(2025, 3, 10), 300, 0, 0, 0, 0, 0, 0),
	}}
	svc := NewReportService(store)

	for _, d := range []int{15, 28, 29, 30, 31} {
		growth, err := svc.ComparativeGrowth(testUser, day(2025, 3, d))
		require.NoError(t, err)
		assert.InDelta(t, 50, growth, 1e-9, "reference day %d", d)
	}
}

func TestComparativeGrowthZeroWhenNoPreviousMonth(t *testing.T) {
	store := &fakeStore{records: []models.Calculation{
		record(day(2025, 3, 10), 300, 0, 0, 0, 0, 0, 0),
	}}
	svc := NewReportService(store)

	growth, err := svc.ComparativeGrowth(testUser, day(2025, 3, 15))
	require.NoError(t, err)
	assert.Zero(t, growth)
}

func TestLast7DaysSeriesAlwaysSevenPoints(t *testing.T) {
	store := &fakeStore{records: []models.Calculation{
		record(day(2025, 3, 12), 52, 0, 0, 0, 0, 0, 0),
		record(day(2025, 3, 12), 48, 0, 0, 0, 0, 0, 0),
		record(day(2025, 3, 9), 30, 0, 0, 0, 0, 0, 0),
		// Outside the window
		record(day(2025, 3, 5), 999, 0, 0, 0, 0, 0, 0),
	}}
	svc := NewReportService(store)

	series, err := svc.Last7DaysSeries(testUser, day(2025, 3, 12))
	require.NoError(t, err)
	require.Len(t, series, 7)

	// Oldest first: 03-06 .. 03-12
	assert.Equal(t, "2025-03-06", series[0].Date)
	assert.Equal(t, "2025-03-12", series[6].Date)

	assert.InDelta(t, 100, series[6].NetEarnings, 1e-9)
	assert.InDelta(t, 30, series[3].NetEarnings, 1e-9)
	for _, i := range []int{0, 1, 2, 4, 5} {
		assert.Zero(t, series[i].NetEarnings, "day %s should be zero-filled", series[i].Date)
	}

	// Labels are weekday abbreviations
	assert.Equal(t, "Thu", series[0].Label)
	assert.Equal(t, "Wed", series[6].Label)
}

func TestLast7DaysSeriesEmptyStore(t *testing.T) {
	svc := NewReportService(&fakeStore{})

	series, err := svc.Last7DaysSeries(testUser, day(2025, 3, 12))
	require.NoError(t, err)
	require.Len(t, series, 7)
	for _, p := range series {
		assert.Zero(t, p.NetEarnings)
	}
}

func TestExpenseDistribution(t *testing.T) {
	store := &fakeStore{records: []models.Calculation{
		record(day(2025, 3, 10), 0, 0, 0, 60, 30, 10, 0),
		record(day(2025, 3, 11), 0, 0, 0, 60, 20, 20, 0),
	}}
	svc := NewReportService(store)

	dist, err := svc.ExpenseDistribution(testUser)
	require.NoError(t, err)

	assert.InDelta(t, 60, dist.FuelPercent, 1e-9)
	assert.InDelta(t, 25, dist.MaintenancePercent, 1e-9)
	assert.InDelta(t, 15, dist.OtherPercent, 1e-9)
	assert.InDelta(t, 100, dist.FuelPercent+dist.MaintenancePercent+dist.OtherPercent, 1e-9)
}

func TestExpenseDistributionFallbackWhenEmpty(t *testing.T) {
	svc := NewReportService(&fakeStore{})

	dist, err := svc.ExpenseDistribution(testUser)
	require.NoError(t, err)

	assert.Equal(t, ExpenseDistribution{FuelPercent: 60, MaintenancePercent: 25, OtherPercent: 15}, dist)
}

func TestReportsPropagateStorageErrors(t *testing.T) {
	svc := NewReportService(&fakeStore{err: errors.New("medium unavailable")})

	_, err := svc.WeeklySummary(testUser, day(2025, 3, 12))
	assert.Error(t, err)

	_, err = svc.ExpenseDistribution(testUser)
	assert.Error(t, err)
}
