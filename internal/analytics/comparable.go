package analytics

import (
	"time"

	"dukkan-backend/internal/timeseries"
)

// yearAgoOffset: tam 52 hafta = 364 gün. Takvim yılı değil hafta hizalı
// kaydırma kullanılır ki hedef tarih referansla aynı haftanın gününe
// düşsün; müşteri trafiği takvim tarihinden çok haftanın gününü izler.
const yearAgoOffset = -364

// FindYearAgoComparable: geçen yılın karşılaştırılabilir gününü bulur.
// Seri, referansla aynı haftanın gününe düşen kayıtlara süzülür ve
// hedefe (referans - 364 gün) mutlak mesafesi en küçük olan seçilir.
// Eşit mesafede iki aday varsa erken tarihli olan kazanır; aynı güne
// denk gelen hiç kayıt yoksa nil döner.
func FindYearAgoComparable(s timeseries.Series, ref time.Time) *timeseries.Point {
	target := ref.AddDate(0, 0, yearAgoOffset)
	weekday := ref.Weekday()

	var best *timeseries.Point
	var bestDist time.Duration
	for i := range s {
		if s[i].Weekday != weekday {
			continue
		}
		dist := s[i].Date.Sub(target)
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist {
			best = &s[i]
			bestDist = dist
			continue
		}
		// eşitlikte erken tarih kazanır; seri sıralı olduğundan
		// önce görülen aday zaten erken olandır
	}
	return best
}
