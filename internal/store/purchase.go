package store

import (
	"log"
	"sort"
	"strconv"
	"time"

	"dukkan-backend/internal/models"
)

const purchaseFile = "purchases.csv"

var purchaseHeader = []string{"id", "date", "month", "supplier", "description", "amount"}

func (s *Store) LoadPurchases() ([]models.PurchaseEntry, error) {
	t, err := readTable(s.path(purchaseFile))
	if err != nil {
		return nil, err
	}

	entries := make([]models.PurchaseEntry, 0, len(t.rows))
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
		entries = append(entries, models.PurchaseEntry{
			ID:          parseUint(t.get(row, "id")),
			Date:        d,
			Month:       month,
			Supplier:    t.get(row, "supplier"),
			Description: t.get(row, "description"),
			Amount:      parseFloat(t.get(row, "amount")),
		})
	}
	if dropped > 0 {
		log.Printf("[WARN] %s: %d satır geçersiz tarih nedeniyle atlandı", purchaseFile, dropped)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (s *Store) SavePurchases(entries []models.PurchaseEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Date.Format(dateLayout),
			e.Month,
			e.Supplier,
			e.Description,
			money(e.Amount),
		})
	}
	return writeTable(s.path(purchaseFile), purchaseHeader, rows)
}

func (s *Store) AppendPurchase(e models.PurchaseEntry) (models.PurchaseEntry, error) {
	entries, err := s.LoadPurchases()
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
	return e, s.SavePurchases(entries)
}

func (s *Store) DeletePurchase(id uint) (bool, error) {
	entries, err := s.LoadPurchases()
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
	return true, s.SavePurchases(kept)
}
