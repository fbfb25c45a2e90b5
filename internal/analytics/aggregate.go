package analytics

import (
	"time"

	"dukkan-backend/internal/timeseries"
)

// Range: kapalı tarih aralığı ya da son N kayıtlık kayan pencere.
// LastN > 0 ise From/To yok sayılır ve pencere serinin en yeni N kaydından
// oluşur (sabit bir takvim penceresi değil).
type Range struct {
	From  time.Time
	To    time.Time
	LastN int
}

func Between(from, to time.Time) Range {
	return Range{From: from, To: to}
}

func MonthOf(year int, month time.Month) Range {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Range{From: first, To: first.AddDate(0, 1, -1)}
}

func YearOf(year int) Range {
	return Range{
		From: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func LastN(n int) Range {
	return Range{LastN: n}
}

// WeekOf: d'nin içinde bulunduğu ISO haftası (Pazartesi-Pazar).
// Pazartesi, sıfır tabanlı gün ofseti geri sayılarak bulunur.
func WeekOf(d time.Time) Range {
	offset := (int(d.Weekday()) + 6) % 7 // Pazartesi'den bu yana geçen gün
	monday := d.AddDate(0, 0, -offset)
	return Range{From: monday, To: monday.AddDate(0, 0, 6)}
}

// PeriodAggregate: bir aralığın özet değerleri. AktifGün = toplamı sıfırdan
// büyük olan gün; ortalama aktif gün sayısına bölünerek hesaplanır, aktif
// gün yoksa sıfırdır (hata değil, tanımlı bir sıfıra bölme politikası).
type PeriodAggregate struct {
	From             time.Time `json:"from"`
	To               time.Time `json:"to"`
	Total            float64   `json:"total"`
	ActiveDays       int       `json:"active_days"`
	MeanPerActiveDay float64   `json:"mean_per_active_day"`
}

// Aggregate: aralığa düşen kayıtların toplamı, aktif gün sayısı ve aktif
// gün başına ortalaması. Boş aralık sıfır toplam döner.
func Aggregate(s timeseries.Series, r Range) PeriodAggregate {
	window := slice(s, r)

	agg := PeriodAggregate{From: r.From, To: r.To}
	if len(window) > 0 {
		agg.From = window[0].Date
		agg.To = window[len(window)-1].Date
	}

	for i := range window {
		agg.Total += window[i].Total
		if window[i].Total > 0 {
			agg.ActiveDays++
		}
	}
	if agg.ActiveDays > 0 {
		agg.MeanPerActiveDay = agg.Total / float64(agg.ActiveDays)
	}
	return agg
}

// slice: aralığa düşen alt seriyi döner. Seri sıralı olduğundan kayan
// pencere doğrudan sondan alınır.
func slice(s timeseries.Series, r Range) timeseries.Series {
	if r.LastN > 0 {
		return s.Last(r.LastN)
	}

	out := make(timeseries.Series, 0, len(s))
	for i := range s {
		if s[i].Date.Before(r.From) || s[i].Date.After(r.To) {
			continue
		}
		out = append(out, s[i])
	}
	return out
}
