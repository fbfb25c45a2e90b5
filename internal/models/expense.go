package models

import "time"

// ExpenseCategories: sabit gider kategorisi listesi. Kategoriler ürün
// alımlarına bağlı olmayan işletme giderlerini kapsar; liste kapalıdır,
// kullanıcı tarafından genişletilemez.
var ExpenseCategories = []string{
	"Kira",
	"Faturalar",
	"Bakım ve Onarım",
	"Danışmanlık ve Muhasebe",
	"Banka ve Ödeme Komisyonları",
	"Teknoloji ve Platformlar",
	"Pazarlama ve İletişim",
	"Temizlik ve Çamaşırhane",
	"Üniforma ve Ekipman",
	"Güvenlik",
	"Diğer İşletme Giderleri",
}

func IsValidExpenseCategory(name string) bool {
	for _, c := range ExpenseCategories {
		if c == name {
			return true
		}
	}
	return false
}

// ExpenseEntry: tek bir gider hareketi. Aynı güne birden fazla gider
// girilebilir; kayıtlar güncellenmez, yalnızca eklenir veya silinir.
type ExpenseEntry struct {
	ID          uint
	Date        time.Time
	Month       string // "2006-01" ay anahtarı, tarihten türetilir
	Category    string
	Description string
	Amount      float64 // > 0 olmak zorunda
}
