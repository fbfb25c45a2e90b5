package models

// Position: bir planlama yılına ait personel pozisyonu tanımı.
// (Year, Role) doğal anahtar kabul edilir: aynı yıl için aynı pozisyon
// yeniden kaydedilirse eski satırın üzerine yazılır.
type Position struct {
	Year        int
	Role        string  // pozisyon adı (ör. "Garson", "Aşçı")
	AnnualGross float64 // kişi başı yıllık brüt maaş (EUR)
	Need        [12]int // ay bazında ihtiyaç duyulan kişi sayısı (Ocak..Aralık)
}

// MonthlyPayroll: ayın brüt maaş maliyeti = yıllık brüt / 12 * ihtiyaç.
// month 1-12 arası; saklanmaz, her okumada türetilir.
func (p *Position) MonthlyPayroll(month int) float64 {
	if month < 1 || month > 12 {
		return 0
	}
	return p.AnnualGross / 12 * float64(p.Need[month-1])
}
