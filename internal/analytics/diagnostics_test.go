package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukkan-backend/internal/models"
	"dukkan-backend/internal/timeseries"
)

func TestDiagnosticsInsufficientData(t *testing.T) {
	s := seriesWithTotals(day(2024, time.March, 1), 100, 200, 150)

	report := Diagnostics(s, 30, DefaultThresholds())

	assert.False(t, report.Sufficient)
	assert.Equal(t, 3, report.RecordCount)
	assert.False(t, report.Trend.Computed)
	assert.False(t, report.Consistency.Computed)
	assert.Empty(t, report.Shifts)
}

func TestDiagnosticsConstantSeries(t *testing.T) {
	totals := make([]float64, 14)
	for i := range totals {
		totals[i] = 300
	}
	s := seriesWithTotals(day(2024, time.March, 1), totals...)

	report := Diagnostics(s, 14, DefaultThresholds())

	require.True(t, report.Sufficient)

	assert.True(t, report.Consistency.Computed)
	assert.Zero(t, report.Consistency.CV)
	assert.True(t, report.Consistency.Stable)

	require.True(t, report.Trend.Computed)
	assert.Equal(t, 300.0, report.Trend.MovingAvg)
	assert.Equal(t, 300.0, report.Trend.Previous)
	assert.Equal(t, DirectionFlat, report.Trend.Change.Direction)

	// 14 kayıt gün profili için yeterli değil
	assert.False(t, report.Weekdays.Computed)
}

func TestDiagnosticsTrendRequiresTwoWeeks(t *testing.T) {
	s := seriesWithTotals(day(2024, time.March, 1), 100, 100, 100, 100, 100, 100, 100)

	report := Diagnostics(s, 7, DefaultThresholds())

	require.True(t, report.Sufficient)
	assert.False(t, report.Trend.Computed)
	assert.Equal(t, 100.0, report.Trend.MovingAvg)
}

func TestDiagnosticsTrendChange(t *testing.T) {
	totals := []float64{100, 100, 100, 100, 100, 100, 100, 200, 200, 200, 200, 200, 200, 200}
	s := seriesWithTotals(day(2024, time.March, 1), totals...)

	report := Diagnostics(s, 14, DefaultThresholds())

	require.True(t, report.Trend.Computed)
	assert.Equal(t, 200.0, report.Trend.MovingAvg)
	assert.Equal(t, 100.0, report.Trend.Previous)
	assert.Equal(t, 100.0, report.Trend.Change.Percent)
	assert.Equal(t, DirectionPositive, report.Trend.Change.Direction)
}

func TestDiagnosticsPeakDependency(t *testing.T) {
	s := seriesWithTotals(day(2024, time.June, 3), 100, 100, 100, 100, 100, 100, 1000)

	report := Diagnostics(s, 7, DefaultThresholds())

	require.True(t, report.Sufficient)
	require.Len(t, report.Peaks.PeakDates, 1)
	assert.Equal(t, "2024-06-09", report.Peaks.PeakDates[0])
	assert.InDelta(t, 0.625, report.Peaks.Ratio, 1e-9)
	assert.True(t, report.Peaks.Dependent)
}

func TestDiagnosticsNoPeaksOnFlatSeries(t *testing.T) {
	s := seriesWithTotals(day(2024, time.June, 3), 100, 100, 100, 100, 100)

	report := Diagnostics(s, 5, DefaultThresholds())

	assert.Empty(t, report.Peaks.PeakDates)
	assert.Zero(t, report.Peaks.Ratio)
	assert.False(t, report.Peaks.Dependent)
}

func TestDiagnosticsTicketAvgExcludesZeroTicketDays(t *testing.T) {
	start := day(2024, time.April, 1)
	records := make([]models.SalesRecord, 0, 6)
	for i := 0; i < 5; i++ {
		records = append(records, models.SalesRecord{
			Date:           start.AddDate(0, 0, i),
			Morning:        100,
			MorningTickets: 10, // fiş başına 10 EUR, sabit
		})
	}
	// fişsiz gün: tutarı ne olursa olsun ortalamaya girmez
	records = append(records, models.SalesRecord{
		Date:    start.AddDate(0, 0, 5),
		Morning: 5000,
	})
	s := timeseries.Normalize(records, timeseries.DefaultWeekdayNames)

	report := Diagnostics(s, 6, DefaultThresholds())

	require.True(t, report.TicketAvg.Computed)
	assert.Zero(t, report.TicketAvg.CV)
	assert.True(t, report.TicketAvg.Stable)

	require.Len(t, report.Shifts, 3)
	morning := report.Shifts[0]
	assert.Equal(t, models.ShiftMorning, morning.Shift)
	assert.True(t, morning.Computed)
	assert.Zero(t, morning.CV)
	assert.False(t, morning.Volatile)

	// öğle vardiyasında hiç fiş yok, sinyal hesaplanmaz
	assert.False(t, report.Shifts[1].Computed)
}

func TestDiagnosticsWeekdayProfile(t *testing.T) {
	// 2024-01-01 Pazartesi; cumartesiler belirgin biçimde güçlü
	start := day(2024, time.January, 1)
	totals := make([]float64, 21)
	for i := range totals {
		if start.AddDate(0, 0, i).Weekday() == time.Saturday {
			totals[i] = 400
		} else {
			totals[i] = 100
		}
	}
	s := seriesWithTotals(start, totals...)

	report := Diagnostics(s, 21, DefaultThresholds())

	require.True(t, report.Weekdays.Computed)
	assert.Equal(t, "Cumartesi", report.Weekdays.StrongDay)
	assert.InDelta(t, 185.71, report.Weekdays.StrongPct, 0.01)
	assert.NotEqual(t, "Cumartesi", report.Weekdays.WeakDay)
	assert.InDelta(t, -28.57, report.Weekdays.WeakPct, 0.01)
}
