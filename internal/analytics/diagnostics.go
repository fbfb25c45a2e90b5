package analytics

import (
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/timeseries"
)

// Pencere boyutları: trend için 7+7 kayıt, gün profili için 15 kayıt.
const (
	trendSpan          = 7
	weekdayProfileSpan = 15
	minDiagnosticsSpan = 5
)

// Thresholds: diyagnostik sinyallerin sınıflandırma eşikleri. Eski
// sürümlerde sayfadan sayfaya farklı literaller vardı; tek yapıda toplanıp
// config üzerinden geçirilir.
type Thresholds struct {
	SalesCV   float64 // günlük ciro CV eşiği, üstü "istikrarsız"
	TicketCV  float64 // ortalama fiş CV eşiği
	ShiftCV   float64 // vardiya bazlı fiş CV eşiği
	PeakRatio float64 // pik bağımlılık oranı eşiği
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SalesCV:   0.35,
		TicketCV:  0.25,
		ShiftCV:   0.30,
		PeakRatio: 0.30,
	}
}

type TrendSignal struct {
	Computed  bool           `json:"computed"` // en az 14 kayıt ister
	MovingAvg float64        `json:"moving_avg"`
	Previous  float64        `json:"previous"`
	Change    VarianceResult `json:"change"`
}

type ConsistencySignal struct {
	Computed bool    `json:"computed"`
	CV       float64 `json:"cv"`
	Stable   bool    `json:"stable"`
}

type ShiftVolatility struct {
	Shift    models.Shift `json:"shift"`
	Computed bool         `json:"computed"` // fişsiz günler dışlanınca yeterli veri kalmalı
	CV       float64      `json:"cv"`
	Volatile bool         `json:"volatile"`
}

type PeakSignal struct {
	Ratio     float64  `json:"ratio"` // pik günlerin cirodaki payı
	PeakDates []string `json:"peak_dates"`
	Dependent bool     `json:"dependent"`
}

type WeekdayProfile struct {
	Computed  bool    `json:"computed"` // en az 15 kayıt ister
	StrongDay string  `json:"strong_day"`
	StrongPct float64 `json:"strong_pct"` // genel ortalamadan sapma yüzdesi
	WeakDay   string  `json:"weak_day"`
	WeakPct   float64 `json:"weak_pct"`
}

// DiagnosticsReport: bağımsız sinyallerin birlikte sunulduğu rapor.
// Hiçbir sinyal diğerini ezmez; sunum katmanı hepsini yan yana gösterir.
type DiagnosticsReport struct {
	WindowSize  int  `json:"window_size"`
	RecordCount int  `json:"record_count"`
	Sufficient  bool `json:"sufficient"` // en az 5 kayıt

	Trend       TrendSignal       `json:"trend"`
	Consistency ConsistencySignal `json:"consistency"`
	TicketAvg   ConsistencySignal `json:"ticket_avg"`
	Shifts      []ShiftVolatility `json:"shifts"`
	Peaks       PeakSignal        `json:"peaks"`
	Weekdays    WeekdayProfile    `json:"weekdays"`
}

// Diagnostics: serinin son `window` kaydı üzerinden istikrar/oynaklık
// sinyallerini hesaplar. Yeni kurulmuş bir işletmede veri azlığı olağan
// durumdur: 5 kayıttan az varsa rapor "yetersiz veri" olarak işaretlenir,
// hata üretilmez.
func Diagnostics(s timeseries.Series, window int, th Thresholds) DiagnosticsReport {
	win := s.Last(window)

	report := DiagnosticsReport{
		WindowSize:  window,
		RecordCount: len(win),
		Sufficient:  len(win) >= minDiagnosticsSpan,
	}
	if !report.Sufficient {
		return report
	}

	report.Trend = trendSignal(s)
	report.Consistency = consistencySignal(win.Totals(), th.SalesCV)
	report.TicketAvg = consistencySignal(ticketAverages(win), th.TicketCV)
	report.Shifts = shiftVolatility(win, th.ShiftCV)
	report.Peaks = peakSignal(win, th.PeakRatio)
	report.Weekdays = weekdayProfile(s.Last(weekdayProfileSpan))
	return report
}

// trendSignal: son 7 kaydın ortalaması ile ondan önceki 7 kaydın
// ortalamasının karşılaştırması. 14 kayıttan az varsa hesaplanmaz.
func trendSignal(s timeseries.Series) TrendSignal {
	current := mean(s.Last(trendSpan).Totals())

	if len(s) < 2*trendSpan {
		return TrendSignal{MovingAvg: current}
	}
	prevWindow := s[len(s)-2*trendSpan : len(s)-trendSpan]
	previous := mean(prevWindow.Totals())

	return TrendSignal{
		Computed:  true,
		MovingAvg: current,
		Previous:  previous,
		Change:    Variation(current, previous),
	}
}

func consistencySignal(values []float64, threshold float64) ConsistencySignal {
	cv, ok := coefficientOfVariation(values)
	if !ok {
		return ConsistencySignal{}
	}
	return ConsistencySignal{Computed: true, CV: cv, Stable: cv <= threshold}
}

// ticketAverages: gün başına ortalama fiş tutarı (ciro / fiş sayısı).
// Fişi olmayan günler hesaba katılmaz.
func ticketAverages(win timeseries.Series) []float64 {
	out := make([]float64, 0, len(win))
	for i := range win {
		tickets := win[i].TotalTickets()
		if tickets == 0 {
			continue
		}
		out = append(out, win[i].Total/float64(tickets))
	}
	return out
}

func shiftVolatility(win timeseries.Series, threshold float64) []ShiftVolatility {
	out := make([]ShiftVolatility, 0, len(models.Shifts))
	for _, shift := range models.Shifts {
		values := make([]float64, 0, len(win))
		for i := range win {
			tickets := win[i].ShiftTickets(shift)
			if tickets == 0 {
				continue
			}
			values = append(values, win[i].ShiftAmount(shift)/float64(tickets))
		}

		sv := ShiftVolatility{Shift: shift}
		if cv, ok := coefficientOfVariation(values); ok && len(values) >= 2 {
			sv.Computed = true
			sv.CV = cv
			sv.Volatile = cv > threshold
		}
		out = append(out, sv)
	}
	return out
}

// peakSignal: ortalama + 2 standart sapmayı aşan günler pik sayılır.
// Oran, pik günlerdeki cironun pencere toplam cirosuna bölümüdür.
func peakSignal(win timeseries.Series, threshold float64) PeakSignal {
	totals := win.Totals()
	m := mean(totals)
	sd := stddev(totals)
	limit := m + 2*sd

	var peakSum, total float64
	var dates []string
	for i := range win {
		total += win[i].Total
		if win[i].Total > limit {
			peakSum += win[i].Total
			dates = append(dates, win[i].Date.Format("2006-01-02"))
		}
	}

	sig := PeakSignal{PeakDates: dates}
	if total > 0 {
		sig.Ratio = peakSum / total
	}
	sig.Dependent = sig.Ratio > threshold
	return sig
}

// weekdayProfile: haftalık desen için en az 15 kayıt gerekir. Pencere gün
// ismine göre gruplanır; en güçlü ve en zayıf günün genel ortalamadan
// yüzde sapması raporlanır.
func weekdayProfile(win timeseries.Series) WeekdayProfile {
	if len(win) < weekdayProfileSpan {
		return WeekdayProfile{}
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := range win {
		sums[win[i].WeekdayName] += win[i].Total
		counts[win[i].WeekdayName]++
	}

	global := mean(win.Totals())
	if global <= 0 {
		return WeekdayProfile{}
	}

	profile := WeekdayProfile{Computed: true}
	first := true
	var strongMean, weakMean float64
	for name, sum := range sums {
		avg := sum / float64(counts[name])
		if first || avg > strongMean {
			profile.StrongDay = name
			strongMean = avg
		}
		if first || avg < weakMean {
			profile.WeakDay = name
			weakMean = avg
		}
		first = false
	}
	profile.StrongPct = (strongMean/global - 1) * 100
	profile.WeakPct = (weakMean/global - 1) * 100
	return profile
}
