package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukkan-backend/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeSortsByDate(t *testing.T) {
	records := []models.SalesRecord{
		{Date: date(2024, time.January, 3), Morning: 30},
		{Date: date(2024, time.January, 1), Morning: 10},
		{Date: date(2024, time.January, 2), Morning: 20},
	}

	s := Normalize(records, DefaultWeekdayNames)

	require.Len(t, s, 3)
	assert.Equal(t, []float64{10, 20, 30}, s.Totals())
}

func TestNormalizeDerivesCalendarFields(t *testing.T) {
	// 2024-01-01 Pazartesi, ISO 2024-W01
	records := []models.SalesRecord{{Date: date(2024, time.January, 1), Morning: 100}}

	s := Normalize(records, DefaultWeekdayNames)

	require.Len(t, s, 1)
	p := s[0]
	assert.Equal(t, time.Monday, p.Weekday)
	assert.Equal(t, "Pazartesi", p.WeekdayName)
	assert.Equal(t, 2024, p.ISOYear)
	assert.Equal(t, 1, p.ISOWeek)
	assert.Equal(t, time.January, p.Month)
	assert.Equal(t, 2024, p.Year)
}

func TestNormalizeISOWeekCrossesYear(t *testing.T) {
	// 2024-12-30 Pazartesi, ISO takviminde 2025-W01'e düşer
	records := []models.SalesRecord{{Date: date(2024, time.December, 30), Morning: 1}}

	s := Normalize(records, DefaultWeekdayNames)

	assert.Equal(t, 2025, s[0].ISOYear)
	assert.Equal(t, 1, s[0].ISOWeek)
}

func TestNormalizeRecomputesTotal(t *testing.T) {
	// dosyadan gelen Total değeri ne olursa olsun vardiyalardan hesaplanır
	records := []models.SalesRecord{
		{Date: date(2024, time.May, 5), Morning: 100, Afternoon: 50, Evening: 25, Total: 9999},
	}

	s := Normalize(records, DefaultWeekdayNames)

	assert.Equal(t, 175.0, s[0].Total)
}

func TestSeriesLast(t *testing.T) {
	records := []models.SalesRecord{
		{Date: date(2024, time.January, 1), Morning: 1},
		{Date: date(2024, time.January, 2), Morning: 2},
		{Date: date(2024, time.January, 3), Morning: 3},
	}
	s := Normalize(records, DefaultWeekdayNames)

	assert.Equal(t, []float64{2, 3}, s.Last(2).Totals())
	assert.Equal(t, []float64{1, 2, 3}, s.Last(10).Totals())
	assert.Empty(t, s.Last(0))
}

func TestSeriesAt(t *testing.T) {
	records := []models.SalesRecord{
		{Date: date(2024, time.January, 1), Morning: 1},
		{Date: date(2024, time.January, 2), Morning: 2},
	}
	s := Normalize(records, DefaultWeekdayNames)

	p := s.At(date(2024, time.January, 2))
	require.NotNil(t, p)
	assert.Equal(t, 2.0, p.Total)

	assert.Nil(t, s.At(date(2024, time.January, 5)))
}
