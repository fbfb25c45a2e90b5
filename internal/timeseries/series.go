package timeseries

import (
	"sort"
	"time"

	"dukkan-backend/internal/models"
)

// DefaultWeekdayNames: haftanın günleri için sabit isim tablosu,
// time.Weekday ile aynı sırada (Pazar=0). İsimler asla sistem locale'inden
// türetilmez; farklı bir dil gerekiyorsa tablo dışarıdan verilir.
var DefaultWeekdayNames = [7]string{
	"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
}

// Point: takvim alanları türetilmiş tek günlük satış kaydı.
type Point struct {
	models.SalesRecord
	Weekday     time.Weekday
	WeekdayName string
	ISOYear     int
	ISOWeek     int
	Month       time.Month
	Year        int
}

// Series: tarihe göre artan sıralı günlük seri. Kayıt deposu tarih başına
// tekliği garanti eder; seri boşluklu olabilir (her takvim günü için satır
// bulunmak zorunda değildir).
type Series []Point

// Normalize: sırasız kayıt kümesini takvim alanları eklenmiş sıralı seriye
// çevirir. names sabit yedi girişlik gün ismi tablosudur.
func Normalize(records []models.SalesRecord, names [7]string) Series {
	series := make(Series, 0, len(records))
	for _, rec := range records {
		rec.Recompute()
		wd := rec.Date.Weekday()
		isoYear, isoWeek := rec.Date.ISOWeek()
		series = append(series, Point{
			SalesRecord: rec,
			Weekday:     wd,
			WeekdayName: names[wd],
			ISOYear:     isoYear,
			ISOWeek:     isoWeek,
			Month:       rec.Date.Month(),
			Year:        rec.Date.Year(),
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

// Last: serinin en yeni n kaydı. Seri kısa ise tamamı döner; çağıran
// tarafın kısa pencereyi tolere etmesi beklenir.
func (s Series) Last(n int) Series {
	if n <= 0 {
		return Series{}
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// At: verilen güne ait kaydı bulur, yoksa nil.
func (s Series) At(date time.Time) *Point {
	for i := range s {
		if s[i].Date.Equal(date) {
			return &s[i]
		}
	}
	return nil
}

// Totals: günlük toplamları sıra korunarak döner.
func (s Series) Totals() []float64 {
	totals := make([]float64, len(s))
	for i := range s {
		totals[i] = s[i].Total
	}
	return totals
}
