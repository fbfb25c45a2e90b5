package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog: veri değiştiren her işlem için bir iz kaydı.
type AuditLog struct {
	ID        uint
	CreatedAt time.Time

	// Hangi kullanıcı?
	UserID   uint
	UserName string // kullanıcı adı (denormalize)

	// Hangi entity? (ör: "sales_record", "expense", "purchase", "position")
	EntityType string
	EntityID   uint

	// İşlem tipi: create/update/delete
	Action AuditAction

	// Küçük bir özet
	Description string
}
