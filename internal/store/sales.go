package store

import (
	"log"
	"sort"
	"strconv"
	"time"

	"dukkan-backend/internal/models"
)

const salesFile = "sales.csv"

const dateLayout = "2006-01-02"

var salesHeader = []string{
	"date",
	"morning_eur", "afternoon_eur", "evening_eur", "total_eur",
	"morning_tickets", "afternoon_tickets", "evening_tickets",
	"note",
}

// LoadSales: satış kayıtlarını tarihe göre artan sırada döner.
// Tarihi çözülemeyen satırlar atlanır ve log'lanır; aynı tarihe birden
// fazla satır varsa dosyadaki son satır geçerli sayılır (son yazan kazanır).
// Total alanı dosyadaki değerden değil vardiyalardan yeniden hesaplanır.
func (s *Store) LoadSales() ([]models.SalesRecord, error) {
	t, err := readTable(s.path(salesFile))
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]models.SalesRecord, len(t.rows))
	dropped := 0
	for _, row := range t.rows {
		d, err := time.Parse(dateLayout, t.get(row, "date"))
		if err != nil {
			dropped++
			continue
		}
		rec := models.SalesRecord{
			Date:             d,
			Morning:          parseFloat(t.get(row, "morning_eur")),
			Afternoon:        parseFloat(t.get(row, "afternoon_eur")),
			Evening:          parseFloat(t.get(row, "evening_eur")),
			MorningTickets:   parseInt(t.get(row, "morning_tickets")),
			AfternoonTickets: parseInt(t.get(row, "afternoon_tickets")),
			EveningTickets:   parseInt(t.get(row, "evening_tickets")),
			Note:             t.get(row, "note"),
		}
		rec.Recompute()
		byDate[d] = rec
	}
	if dropped > 0 {
		log.Printf("[WARN] %s: %d satır geçersiz tarih nedeniyle atlandı", salesFile, dropped)
	}

	records := make([]models.SalesRecord, 0, len(byDate))
	for _, rec := range byDate {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

func (s *Store) SaveSales(records []models.SalesRecord) error {
	sorted := make([]models.SalesRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	rows := make([][]string, 0, len(sorted))
	for i := range sorted {
		rec := &sorted[i]
		rec.Recompute()
		rows = append(rows, []string{
			rec.Date.Format(dateLayout),
			money(rec.Morning), money(rec.Afternoon), money(rec.Evening), money(rec.Total),
			strconv.Itoa(rec.MorningTickets), strconv.Itoa(rec.AfternoonTickets), strconv.Itoa(rec.EveningTickets),
			rec.Note,
		})
	}
	return writeTable(s.path(salesFile), salesHeader, rows)
}

// UpsertSales: tarihe göre ekle ya da üzerine yaz. Var olan kaydın yerini
// aldıysa true döner.
func (s *Store) UpsertSales(rec models.SalesRecord) (bool, error) {
	records, err := s.LoadSales()
	if err != nil {
		return false, err
	}

	replaced := false
	for i := range records {
		if records[i].Date.Equal(rec.Date) {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	return replaced, s.SaveSales(records)
}
