package dashboard

import (
	"fmt"

	"dukkan-backend/internal/analytics"
	"dukkan-backend/internal/config"
	"dukkan-backend/internal/store"
	"dukkan-backend/internal/timeseries"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/trends?window=7
// İstikrar/oynaklık raporu: hareketli ortalama trendi, ciro tutarlılığı,
// ortalama fiş istikrarı, vardiya oynaklığı, pik bağımlılığı ve güçlü/zayıf
// gün profili. Veri azsa rapor "yetersiz veri" işaretiyle döner, hata değil.
func TrendsHandler(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		window := 7
		if windowStr := c.Query("window"); windowStr != "" {
			if _, err := fmt.Sscan(windowStr, &window); err != nil || window <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "window geçersiz")
			}
		}

		records, err := st.LoadSales()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar yüklenemedi")
		}
		series := timeseries.Normalize(records, timeseries.DefaultWeekdayNames)

		th := analytics.Thresholds{
			SalesCV:   cfg.SalesCVThreshold,
			TicketCV:  cfg.TicketCVThreshold,
			ShiftCV:   cfg.ShiftCVThreshold,
			PeakRatio: cfg.PeakRatioThreshold,
		}

		report := analytics.Diagnostics(series, window, th)
		return c.JSON(report)
	}
}
