package sales

import (
	"bytes"
	"fmt"
	"time"

	"dukkan-backend/internal/analytics"
	"dukkan-backend/internal/store"
	"dukkan-backend/internal/timeseries"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Ay isimleri sabit tablodan gelir, locale'den değil.
var monthNames = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

type MonthlySalesRow struct {
	Month            int     `json:"month"`
	MonthName        string  `json:"month_name"`
	Total            float64 `json:"total"`
	ActiveDays       int     `json:"active_days"`
	MeanPerActiveDay float64 `json:"mean_per_active_day"`
}

type MonthlySalesResponse struct {
	Year       int               `json:"year"`
	Rows       []MonthlySalesRow `json:"rows"`
	GrandTotal float64           `json:"grand_total"`
}

func buildMonthlySales(st *store.Store, year int) (*MonthlySalesResponse, error) {
	records, err := st.LoadSales()
	if err != nil {
		return nil, err
	}
	series := timeseries.Normalize(records, timeseries.DefaultWeekdayNames)

	resp := &MonthlySalesResponse{Year: year, Rows: make([]MonthlySalesRow, 0, 12)}
	for m := 1; m <= 12; m++ {
		agg := analytics.Aggregate(series, analytics.MonthOf(year, time.Month(m)))
		resp.Rows = append(resp.Rows, MonthlySalesRow{
			Month:            m,
			MonthName:        monthNames[m-1],
			Total:            agg.Total,
			ActiveDays:       agg.ActiveDays,
			MeanPerActiveDay: agg.MeanPerActiveDay,
		})
		resp.GrandTotal += agg.Total
	}
	return resp, nil
}

func parseYear(c *fiber.Ctx) (int, error) {
	yearStr := c.Query("year")
	if yearStr == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "year zorunlu")
	}
	var year int
	if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
	}
	return year, nil
}

// GET /api/sales/monthly?year=2025
// Ay bazında konsolide satış tablosu (12 satır).
func MonthlySalesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return err
		}

		resp, err := buildMonthlySales(st, year)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aylık satışlar hesaplanamadı")
		}
		return c.JSON(resp)
	}
}

// GET /api/sales/monthly/export?year=2025
// Aynı tabloyu .xlsx olarak indirir.
func MonthlySalesExportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return err
		}

		data, err := buildMonthlySales(st, year)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aylık satışlar hesaplanamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Aylar"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Ay", "Ciro (EUR)", "Aktif Gün", "Aktif Gün Ortalaması (EUR)"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for i, row := range data.Rows {
			values := []interface{}{row.MonthName, row.Total, row.ActiveDays, row.MeanPerActiveDay}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
				f.SetCellValue(sheet, cell, v)
			}
		}
		totalLabel, _ := excelize.CoordinatesToCellName(1, 14)
		totalCell, _ := excelize.CoordinatesToCellName(2, 14)
		f.SetCellValue(sheet, totalLabel, "Toplam")
		f.SetCellValue(sheet, totalCell, data.GrandTotal)

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="satislar-%d.xlsx"`, year))
		return c.Send(buf.Bytes())
	}
}
