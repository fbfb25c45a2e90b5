package audit

import (
	"time"

	"dukkan-backend/internal/models"
	"dukkan-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	UserID      uint               `json:"user_id"`
	UserName    string             `json:"user_name"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
}

// GET /api/audit-logs?entity_type=expense (sadece owner)
// En yeni kayıt en üstte döner.
func ListAuditLogsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logs, err := st.LoadAuditLogs()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Audit kayıtları yüklenemedi")
		}

		entityType := c.Query("entity_type")

		resp := make([]AuditLogResponse, 0, len(logs))
		for i := len(logs) - 1; i >= 0; i-- {
			l := logs[i]
			if entityType != "" && l.EntityType != entityType {
				continue
			}
			resp = append(resp, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format(time.RFC3339),
				UserID:      l.UserID,
				UserName:    l.UserName,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
			})
		}
		return c.JSON(resp)
	}
}
