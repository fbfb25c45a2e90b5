package audit

import (
	"time"

	"dukkan-backend/internal/models"
	"dukkan-backend/internal/store"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string // "sales_record", "expense", "purchase", "position"
	EntityID    uint
	Action      models.AuditAction
	Description string
}

// WriteLog: iz kaydını dosyaya ekler. Audit yazımı kritik değildir;
// çağıran taraf hatayı log'lar ama asıl işlemi geri almaz.
func WriteLog(st *store.Store, opts LogOptions) error {
	return st.AppendAuditLog(models.AuditLog{
		CreatedAt:   time.Now(),
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
	})
}
