package financial

import (
	"fmt"
	"time"

	"dukkan-backend/internal/analytics"
	"dukkan-backend/internal/config"
	"dukkan-backend/internal/rrhh"
	"dukkan-backend/internal/store"
	"dukkan-backend/internal/timeseries"

	"github.com/gofiber/fiber/v2"
)

type EBITDAResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 0 = bütün yıl

	Sales        float64 `json:"sales"`
	Purchases    float64 `json:"purchases"`
	Expenses     float64 `json:"expenses"`
	EmployerCost float64 `json:"employer_cost"`

	EBITDA float64 `json:"ebitda"`
	Margin float64 `json:"margin_pct"` // ciro sıfırsa 0
}

// GET /api/financial/ebitda?year=2025[&month=6]
// EBITDA = ciro - alımlar - giderler - personel işveren maliyeti.
// Ay verilmezse bütün yıl konsolide edilir.
func EBITDAHandler(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearStr := c.Query("year")
		if yearStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "year zorunlu")
		}
		var year int
		if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
			return fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
		}

		month := 0
		if monthStr := c.Query("month"); monthStr != "" {
			if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
				return fiber.NewError(fiber.StatusBadRequest, "month geçersiz")
			}
		}

		inPeriod := func(d time.Time) bool {
			if d.Year() != year {
				return false
			}
			return month == 0 || int(d.Month()) == month
		}

		// Ciro
		records, err := st.LoadSales()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar yüklenemedi")
		}
		series := timeseries.Normalize(records, timeseries.DefaultWeekdayNames)
		r := analytics.YearOf(year)
		if month != 0 {
			r = analytics.MonthOf(year, time.Month(month))
		}
		sales := analytics.Aggregate(series, r).Total

		// Alımlar
		purchases, err := st.LoadPurchases()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alımlar yüklenemedi")
		}
		var purchaseTotal float64
		for _, p := range purchases {
			if inPeriod(p.Date) {
				purchaseTotal += p.Amount
			}
		}

		// Giderler
		expenses, err := st.LoadExpenses()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Giderler yüklenemedi")
		}
		var expenseTotal float64
		for _, e := range expenses {
			if inPeriod(e.Date) {
				expenseTotal += e.Amount
			}
		}

		// Personel (planlanan işveren maliyeti)
		positions, err := st.LoadPositions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pozisyonlar yüklenemedi")
		}
		employerCost := rrhh.EmployerCostFor(positions, year, month, cfg.SocialChargeRate)

		ebitda := sales - purchaseTotal - expenseTotal - employerCost
		margin := 0.0
		if sales > 0 {
			margin = ebitda / sales * 100
		}

		return c.JSON(EBITDAResponse{
			Year:         year,
			Month:        month,
			Sales:        sales,
			Purchases:    purchaseTotal,
			Expenses:     expenseTotal,
			EmployerCost: employerCost,
			EBITDA:       ebitda,
			Margin:       margin,
		})
	}
}
