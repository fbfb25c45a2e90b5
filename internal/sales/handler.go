package sales

import (
	"fmt"
	"log"
	"time"

	"dukkan-backend/internal/analytics"
	"dukkan-backend/internal/audit"
	"dukkan-backend/internal/auth"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/store"
	"dukkan-backend/internal/timeseries"

	"github.com/gofiber/fiber/v2"
)

type CreateSalesRequest struct {
	Date             string  `json:"date"` // "2025-12-09"
	Morning          float64 `json:"morning_eur"`
	Afternoon        float64 `json:"afternoon_eur"`
	Evening          float64 `json:"evening_eur"`
	MorningTickets   int     `json:"morning_tickets"`
	AfternoonTickets int     `json:"afternoon_tickets"`
	EveningTickets   int     `json:"evening_tickets"`
	Note             string  `json:"note"`
}

type SalesRecordResponse struct {
	Date             string  `json:"date"`
	Weekday          string  `json:"weekday"`
	Morning          float64 `json:"morning_eur"`
	Afternoon        float64 `json:"afternoon_eur"`
	Evening          float64 `json:"evening_eur"`
	Total            float64 `json:"total_eur"`
	MorningTickets   int     `json:"morning_tickets"`
	AfternoonTickets int     `json:"afternoon_tickets"`
	EveningTickets   int     `json:"evening_tickets"`
	Note             string  `json:"note"`
}

func toResponse(p *timeseries.Point) SalesRecordResponse {
	return SalesRecordResponse{
		Date:             p.Date.Format("2006-01-02"),
		Weekday:          p.WeekdayName,
		Morning:          p.Morning,
		Afternoon:        p.Afternoon,
		Evening:          p.Evening,
		Total:            p.Total,
		MorningTickets:   p.MorningTickets,
		AfternoonTickets: p.AfternoonTickets,
		EveningTickets:   p.EveningTickets,
		Note:             p.Note,
	}
}

// POST /api/sales
// Tarihe göre ekle ya da üzerine yaz (son yazan kazanır). Total alanı
// istemciden alınmaz, vardiyalardan hesaplanır.
func CreateSalesRecordHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSalesRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		if body.Morning < 0 || body.Afternoon < 0 || body.Evening < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ciro tutarları negatif olamaz")
		}
		if body.MorningTickets < 0 || body.AfternoonTickets < 0 || body.EveningTickets < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiş sayıları negatif olamaz")
		}

		rec := models.SalesRecord{
			Date:             d,
			Morning:          body.Morning,
			Afternoon:        body.Afternoon,
			Evening:          body.Evening,
			MorningTickets:   body.MorningTickets,
			AfternoonTickets: body.AfternoonTickets,
			EveningTickets:   body.EveningTickets,
			Note:             body.Note,
		}
		rec.Recompute()

		replaced, err := st.UpsertSales(rec)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kaydedilemedi")
		}

		// Audit log yaz
		if userID, userName, err := auth.GetUserInfo(c, st); err == nil {
			action := models.AuditActionCreate
			desc := fmt.Sprintf("Satış eklendi: %s - %.2f EUR", body.Date, rec.Total)
			if replaced {
				action = models.AuditActionUpdate
				desc = fmt.Sprintf("Satış güncellendi: %s - %.2f EUR", body.Date, rec.Total)
			}
			if logErr := audit.WriteLog(st, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "sales_record",
				Action:      action,
				Description: desc,
			}); logErr != nil {
				// Log hatası kritik değil
				log.Printf("Audit log yazılamadı: %v", logErr)
			}
		}

		series := timeseries.Normalize([]models.SalesRecord{rec}, timeseries.DefaultWeekdayNames)
		status := fiber.StatusCreated
		if replaced {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(toResponse(&series[0]))
	}
}

// GET /api/sales?from=...&to=...
func ListSalesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := st.LoadSales()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar yüklenemedi")
		}
		series := timeseries.Normalize(records, timeseries.DefaultWeekdayNames)

		fromStr := c.Query("from")
		toStr := c.Query("to")

		var from, to time.Time
		if fromStr != "" {
			if from, err = time.Parse("2006-01-02", fromStr); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from geçersiz")
			}
		}
		if toStr != "" {
			if to, err = time.Parse("2006-01-02", toStr); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to geçersiz")
			}
		}

		resp := make([]SalesRecordResponse, 0, len(series))
		for i := range series {
			if fromStr != "" && series[i].Date.Before(from) {
				continue
			}
			if toStr != "" && series[i].Date.After(to) {
				continue
			}
			resp = append(resp, toResponse(&series[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/sales/summary
// Dört aralık biçiminden biri kabul edilir:
//
//	?year=2025&month=6   ay özeti
//	?year=2025           yıl özeti
//	?from=...&to=...     kapalı aralık
//	?last=7              son N kayıt (kayan pencere)
func SalesSummaryHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := parseRange(c)
		if err != nil {
			return err
		}

		records, err := st.LoadSales()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar yüklenemedi")
		}
		series := timeseries.Normalize(records, timeseries.DefaultWeekdayNames)

		agg := analytics.Aggregate(series, r)
		return c.JSON(fiber.Map{
			"from":                agg.From.Format("2006-01-02"),
			"to":                  agg.To.Format("2006-01-02"),
			"total":               agg.Total,
			"active_days":         agg.ActiveDays,
			"mean_per_active_day": agg.MeanPerActiveDay,
		})
	}
}

func parseRange(c *fiber.Ctx) (analytics.Range, error) {
	if lastStr := c.Query("last"); lastStr != "" {
		var n int
		if _, err := fmt.Sscan(lastStr, &n); err != nil || n <= 0 {
			return analytics.Range{}, fiber.NewError(fiber.StatusBadRequest, "last geçersiz")
		}
		return analytics.LastN(n), nil
	}

	if yearStr := c.Query("year"); yearStr != "" {
		var year int
		if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
			return analytics.Range{}, fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
		}
		if monthStr := c.Query("month"); monthStr != "" {
			var month int
			if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
				return analytics.Range{}, fiber.NewError(fiber.StatusBadRequest, "month geçersiz")
			}
			return analytics.MonthOf(year, time.Month(month)), nil
		}
		return analytics.YearOf(year), nil
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return analytics.Range{}, fiber.NewError(fiber.StatusBadRequest, "year, last veya from/to zorunlu")
	}
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return analytics.Range{}, fiber.NewError(fiber.StatusBadRequest, "from geçersiz")
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return analytics.Range{}, fiber.NewError(fiber.StatusBadRequest, "to geçersiz")
	}
	return analytics.Between(from, to), nil
}

type ComparisonResponse struct {
	Date       string                    `json:"date"`
	Current    SalesRecordResponse       `json:"current"`
	Comparable *SalesRecordResponse      `json:"comparable"` // geçen yılın eşleşen günü, yoksa null
	Day        *analytics.VarianceResult `json:"day_variation"`
	Week       *WeekComparison           `json:"week_variation"`
}

type WeekComparison struct {
	Current   analytics.PeriodAggregate `json:"current"`
	Baseline  analytics.PeriodAggregate `json:"baseline"`
	Variation analytics.VarianceResult  `json:"variation"`
}

// GET /api/sales/comparison?date=2025-06-11
// Günün cirosu, geçen yılın karşılaştırılabilir günüyle (aynı haftanın
// günü, 364 gün geriye en yakın kayıt) kıyaslanır. Ek olarak iki günün
// içinde bulunduğu haftalar kıyaslanır.
func SalesComparisonHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dateStr := c.Query("date")
		if dateStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "date zorunlu (YYYY-MM-DD)")
		}
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date geçersiz")
		}

		records, err := st.LoadSales()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar yüklenemedi")
		}
		series := timeseries.Normalize(records, timeseries.DefaultWeekdayNames)

		current := series.At(d)
		if current == nil {
			return fiber.NewError(fiber.StatusNotFound, "Bu tarihe ait satış kaydı yok")
		}

		resp := ComparisonResponse{
			Date:    dateStr,
			Current: toResponse(current),
		}

		comparable := analytics.FindYearAgoComparable(series, d)
		if comparable != nil {
			cr := toResponse(comparable)
			resp.Comparable = &cr

			dayVar := analytics.Variation(current.Total, comparable.Total)
			resp.Day = &dayVar

			curWeek := analytics.Aggregate(series, analytics.WeekOf(d))
			baseWeek := analytics.Aggregate(series, analytics.WeekOf(comparable.Date))
			resp.Week = &WeekComparison{
				Current:   curWeek,
				Baseline:  baseWeek,
				Variation: analytics.Variation(curWeek.Total, baseWeek.Total),
			}
		}

		return c.JSON(resp)
	}
}
