package dashboard

import (
	"fmt"
	"sort"
	"time"

	"dukkan-backend/internal/store"
	"dukkan-backend/internal/timeseries"

	"github.com/gofiber/fiber/v2"
)

type SalesChartPoint struct {
	Label     string  `json:"label"` // tarih / hafta başlangıcı / ay başlangıcı
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Total     float64 `json:"total"`
}

type SalesChartGrandTotals struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Total     float64 `json:"total"`
}

type SalesChartResponse struct {
	Period      string                `json:"period"` // daily | weekly | monthly
	From        string                `json:"from"`
	To          string                `json:"to"`
	Points      []SalesChartPoint     `json:"points"`
	GrandTotals SalesChartGrandTotals `json:"grand_totals"`
}

// GET /api/dashboard/sales-chart?period=daily&count=7
// Vardiya kırılımlı ciro grafiği. Bucket anahtarı: daily için günün
// kendisi, weekly için haftanın Pazartesi'si, monthly için ayın ilk günü.
func SalesChartHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Query("period", "daily") // daily | weekly | monthly
		countStr := c.Query("count", "")

		var count int
		if countStr == "" {
			switch period {
			case "weekly":
				count = 8
			case "monthly":
				count = 12
			default:
				period = "daily"
				count = 7
			}
		} else {
			if _, err := fmt.Sscan(countStr, &count); err != nil || count <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "count geçersiz")
			}
		}

		now := time.Now()
		loc := now.Location()
		// bugünün 00:00'ı
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		var start time.Time

		switch period {
		case "weekly":
			days := 7 * (count - 1)
			start = end.AddDate(0, 0, -days)
		case "monthly":
			end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, -1)
			start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -(count - 1), 0)
		default:
			period = "daily"
			start = end.AddDate(0, 0, -(count - 1))
		}

		records, err := st.LoadSales()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar yüklenemedi")
		}
		series := timeseries.Normalize(records, timeseries.DefaultWeekdayNames)

		// bucket bazlı toplama
		type bucketAgg struct {
			Bucket    time.Time
			Morning   float64
			Afternoon float64
			Evening   float64
			Total     float64
		}

		buckets := make(map[time.Time]*bucketAgg)

		for i := range series {
			d := series[i].Date
			if d.Before(start) || d.After(end) {
				continue
			}

			var key time.Time
			switch period {
			case "weekly":
				offset := (int(d.Weekday()) + 6) % 7 // Pazartesi'ye çek
				key = d.AddDate(0, 0, -offset)
			case "monthly":
				key = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
			default:
				key = d
			}

			agg, ok := buckets[key]
			if !ok {
				agg = &bucketAgg{Bucket: key}
				buckets[key] = agg
			}
			agg.Morning += series[i].Morning
			agg.Afternoon += series[i].Afternoon
			agg.Evening += series[i].Evening
		}

		// map'ten slice'a taşı ve sıralı hale getir
		ordered := make([]bucketAgg, 0, len(buckets))
		for _, v := range buckets {
			v.Total = v.Morning + v.Afternoon + v.Evening
			ordered = append(ordered, *v)
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Bucket.Before(ordered[j].Bucket) })

		points := make([]SalesChartPoint, 0, len(ordered))
		grand := SalesChartGrandTotals{}

		for _, b := range ordered {
			points = append(points, SalesChartPoint{
				Label:     b.Bucket.Format("2006-01-02"),
				Morning:   b.Morning,
				Afternoon: b.Afternoon,
				Evening:   b.Evening,
				Total:     b.Total,
			})

			grand.Morning += b.Morning
			grand.Afternoon += b.Afternoon
			grand.Evening += b.Evening
			grand.Total += b.Total
		}

		return c.JSON(SalesChartResponse{
			Period:      period,
			From:        start.Format("2006-01-02"),
			To:          end.Format("2006-01-02"),
			Points:      points,
			GrandTotals: grand,
		})
	}
}
