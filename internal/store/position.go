package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dukkan-backend/internal/models"
)

const positionFile = "positions.csv"

var positionHeader = buildPositionHeader()

func buildPositionHeader() []string {
	h := []string{"year", "role", "annual_gross_eur"}
	for m := 1; m <= 12; m++ {
		h = append(h, fmt.Sprintf("need_%d", m))
	}
	return h
}

// LoadPositions: pozisyon tanımlarını yıl, sonra pozisyon adı sırasıyla
// döner. Aynı (yıl, pozisyon) çiftinden birden fazla satır varsa son satır
// geçerli sayılır; kaynak dosyada sessizce biriken kopyalar böylece
// yükleme anında temizlenmiş olur.
func (s *Store) LoadPositions() ([]models.Position, error) {
	t, err := readTable(s.path(positionFile))
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]models.Position, len(t.rows))
	order := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		p := models.Position{
			Year:        parseInt(t.get(row, "year")),
			Role:        strings.TrimSpace(t.get(row, "role")),
			AnnualGross: parseFloat(t.get(row, "annual_gross_eur")),
		}
		if p.Year == 0 || p.Role == "" {
			continue
		}
		for m := 1; m <= 12; m++ {
			p.Need[m-1] = parseInt(t.get(row, fmt.Sprintf("need_%d", m)))
		}
		key := positionKey(p.Year, p.Role)
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = p
	}

	positions := make([]models.Position, 0, len(byKey))
	for _, key := range order {
		positions = append(positions, byKey[key])
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Year != positions[j].Year {
			return positions[i].Year < positions[j].Year
		}
		return positions[i].Role < positions[j].Role
	})
	return positions, nil
}

func (s *Store) SavePositions(positions []models.Position) error {
	rows := make([][]string, 0, len(positions))
	for _, p := range positions {
		row := []string{
			strconv.Itoa(p.Year),
			p.Role,
			money(p.AnnualGross),
		}
		for m := 1; m <= 12; m++ {
			row = append(row, strconv.Itoa(p.Need[m-1]))
		}
		rows = append(rows, row)
	}
	return writeTable(s.path(positionFile), positionHeader, rows)
}

// UpsertPosition: (yıl, pozisyon) doğal anahtardır; aynı çift yeniden
// kaydedilirse eski satırın üzerine yazılır. Üzerine yazıldıysa true döner.
func (s *Store) UpsertPosition(p models.Position) (bool, error) {
	positions, err := s.LoadPositions()
	if err != nil {
		return false, err
	}

	replaced := false
	for i := range positions {
		if positionKey(positions[i].Year, positions[i].Role) == positionKey(p.Year, p.Role) {
			positions[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		positions = append(positions, p)
	}
	return replaced, s.SavePositions(positions)
}

func positionKey(year int, role string) string {
	return fmt.Sprintf("%d|%s", year, strings.ToLower(strings.TrimSpace(role)))
}
