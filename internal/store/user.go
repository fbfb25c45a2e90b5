package store

import (
	"strconv"

	"dukkan-backend/internal/models"
)

const userFile = "users.csv"

var userHeader = []string{"id", "name", "email", "password_hash", "role"}

func (s *Store) LoadUsers() ([]models.User, error) {
	t, err := readTable(s.path(userFile))
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(t.rows))
	for _, row := range t.rows {
		u := models.User{
			ID:           parseUint(t.get(row, "id")),
			Name:         t.get(row, "name"),
			Email:        t.get(row, "email"),
			PasswordHash: t.get(row, "password_hash"),
			Role:         models.UserRole(t.get(row, "role")),
		}
		if u.Email == "" {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Store) SaveUsers(users []models.User) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Name,
			u.Email,
			u.PasswordHash,
			string(u.Role),
		})
	}
	return writeTable(s.path(userFile), userHeader, rows)
}

func (s *Store) AppendUser(u models.User) (models.User, error) {
	users, err := s.LoadUsers()
	if err != nil {
		return u, err
	}

	var maxID uint
	for _, cur := range users {
		if cur.ID > maxID {
			maxID = cur.ID
		}
	}
	u.ID = maxID + 1

	users = append(users, u)
	return u, s.SaveUsers(users)
}
