package store

import (
	"strconv"
	"time"

	"dukkan-backend/internal/models"
)

const auditFile = "audit.csv"

var auditHeader = []string{
	"id", "created_at", "user_id", "user_name",
	"entity_type", "entity_id", "action", "description",
}

func (s *Store) LoadAuditLogs() ([]models.AuditLog, error) {
	t, err := readTable(s.path(auditFile))
	if err != nil {
		return nil, err
	}

	logs := make([]models.AuditLog, 0, len(t.rows))
	for _, row := range t.rows {
		created, err := time.Parse(time.RFC3339, t.get(row, "created_at"))
		if err != nil {
			continue
		}
		logs = append(logs, models.AuditLog{
			ID:          parseUint(t.get(row, "id")),
			CreatedAt:   created,
			UserID:      parseUint(t.get(row, "user_id")),
			UserName:    t.get(row, "user_name"),
			EntityType:  t.get(row, "entity_type"),
			EntityID:    parseUint(t.get(row, "entity_id")),
			Action:      models.AuditAction(t.get(row, "action")),
			Description: t.get(row, "description"),
		})
	}
	return logs, nil
}

func (s *Store) AppendAuditLog(entry models.AuditLog) error {
	logs, err := s.LoadAuditLogs()
	if err != nil {
		return err
	}

	var maxID uint
	for _, l := range logs {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	entry.ID = maxID + 1
	logs = append(logs, entry)

	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(l.ID), 10),
			l.CreatedAt.Format(time.RFC3339),
			strconv.FormatUint(uint64(l.UserID), 10),
			l.UserName,
			l.EntityType,
			strconv.FormatUint(uint64(l.EntityID), 10),
			string(l.Action),
			l.Description,
		})
	}
	return writeTable(s.path(auditFile), auditHeader, rows)
}
