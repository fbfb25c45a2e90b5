package models

import "time"

// PurchaseEntry: ürün/hammadde alım kaydı. Gider hareketlerinden ayrı
// tutulur çünkü EBITDA hesabında ayrı kalem olarak düşülür.
type PurchaseEntry struct {
	ID          uint
	Date        time.Time
	Month       string // "2006-01"
	Supplier    string // tedarikçi adı, opsiyonel
	Description string
	Amount      float64 // > 0 olmak zorunda
}
