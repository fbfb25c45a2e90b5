package store

import (
	"log"
	"sort"
	"strconv"
	"time"

	"dukkan-backend/internal/models"
)

const expenseFile = "expenses.csv"

var expenseHeader = []string{"id", "date", "month", "category", "description", "amount"}

// LoadExpenses: gider hareketlerini tarih, sonra id sırasıyla döner.
// Month kolonu eksik veya boşsa tarihten türetilir (eski dosyalar için
// geriye dönük doldurma).
func (s *Store) LoadExpenses() ([]models.ExpenseEntry, error) {
	t, err := readTable(s.path(expenseFile))
	if err != nil {
		return nil, err
	}

	entries := make([]models.ExpenseEntry, 0, len(t.rows))
	dropped := 0
	for _, row := range t.rows {
		d, err := time.Parse(dateLayout, t.get(row, "date"))
		if err != nil {
			dropped++
			continue
		}
		month := t.get(row, "month")
		if month == "" {
			month = d.Format("2006-01")
		}
		entries = append(entries, models.ExpenseEntry{
			ID:          parseUint(t.get(row, "id")),
			Date:        d,
			Month:       month,
			Category:    t.get(row, "category"),
			Description: t.get(row, "description"),
			Amount:      parseFloat(t.get(row, "amount")),
		})
	}
	if dropped > 0 {
		log.Printf("[WARN] %s: %d satır geçersiz tarih nedeniyle atlandı", expenseFile, dropped)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (s *Store) SaveExpenses(entries []models.ExpenseEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Date.Format(dateLayout),
			e.Month,
			e.Category,
			e.Description,
			money(e.Amount),
		})
	}
	return writeTable(s.path(expenseFile), expenseHeader, rows)
}

// AppendExpense: serbest id atayıp kaydeder, atanmış halini döner.
func (s *Store) AppendExpense(e models.ExpenseEntry) (models.ExpenseEntry, error) {
	entries, err := s.LoadExpenses()
	if err != nil {
		return e, err
	}

	var maxID uint
	for _, cur := range entries {
		if cur.ID > maxID {
			maxID = cur.ID
		}
	}
	e.ID = maxID + 1
	e.Month = e.Date.Format("2006-01")

	entries = append(entries, e)
	return e, s.SaveExpenses(entries)
}

// DeleteExpense: id eşleşmezse false döner, dosyaya dokunmaz.
func (s *Store) DeleteExpense(id uint) (bool, error) {
	entries, err := s.LoadExpenses()
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return false, nil
	}
	return true, s.SaveExpenses(kept)
}
