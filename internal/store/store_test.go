package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukkan-backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(t.TempDir())
	require.NoError(t, err)
	return st
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoadSalesMissingFile(t *testing.T) {
	st := newTestStore(t)

	records, err := st.LoadSales()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSalesRoundTrip(t *testing.T) {
	st := newTestStore(t)
	records := []models.SalesRecord{
		{Date: date(2024, time.May, 2), Morning: 120.5, Afternoon: 80, Evening: 200.25, MorningTickets: 12, AfternoonTickets: 8, EveningTickets: 20, Note: "bayram öncesi"},
		{Date: date(2024, time.May, 1), Morning: 90},
	}
	for i := range records {
		records[i].Recompute()
	}

	require.NoError(t, st.SaveSales(records))

	loaded, err := st.LoadSales()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// tarihe göre sıralı döner
	assert.Equal(t, date(2024, time.May, 1), loaded[0].Date)
	assert.Equal(t, 90.0, loaded[0].Total)
	assert.Equal(t, 400.75, loaded[1].Total)
	assert.Equal(t, "bayram öncesi", loaded[1].Note)
	assert.Equal(t, 20, loaded[1].EveningTickets)
}

func TestSalesSaveIsByteStable(t *testing.T) {
	st := newTestStore(t)
	records := []models.SalesRecord{
		{Date: date(2024, time.May, 1), Morning: 123.456, Afternoon: 10},
	}
	require.NoError(t, st.SaveSales(records))

	first, err := os.ReadFile(filepath.Join(st.dir, salesFile))
	require.NoError(t, err)

	loaded, err := st.LoadSales()
	require.NoError(t, err)
	require.NoError(t, st.SaveSales(loaded))

	second, err := os.ReadFile(filepath.Join(st.dir, salesFile))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestLoadSalesDropsBadDates(t *testing.T) {
	st := newTestStore(t)
	content := "date,morning_eur,afternoon_eur,evening_eur,total_eur,morning_tickets,afternoon_tickets,evening_tickets,note\n" +
		"2024-05-01,100,0,0,100,0,0,0,\n" +
		"bozuk-tarih,999,0,0,999,0,0,0,\n"
	require.NoError(t, os.WriteFile(filepath.Join(st.dir, salesFile), []byte(content), 0o644))

	records, err := st.LoadSales()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 100.0, records[0].Total)
}

func TestLoadSalesLastRowWinsOnDuplicateDate(t *testing.T) {
	st := newTestStore(t)
	content := "date,morning_eur,afternoon_eur,evening_eur,total_eur,morning_tickets,afternoon_tickets,evening_tickets,note\n" +
		"2024-05-01,100,0,0,100,0,0,0,eski\n" +
		"2024-05-01,250,0,0,250,0,0,0,yeni\n"
	require.NoError(t, os.WriteFile(filepath.Join(st.dir, salesFile), []byte(content), 0o644))

	records, err := st.LoadSales()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 250.0, records[0].Total)
	assert.Equal(t, "yeni", records[0].Note)
}

func TestLoadSalesBackfillsMissingColumns(t *testing.T) {
	st := newTestStore(t)
	// fiş kolonları eklenmeden önce yazılmış eski bir dosya
	content := "date,morning_eur,afternoon_eur,evening_eur,total_eur\n" +
		"2024-05-01,100,50,25,175\n"
	require.NoError(t, os.WriteFile(filepath.Join(st.dir, salesFile), []byte(content), 0o644))

	records, err := st.LoadSales()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 175.0, records[0].Total)
	assert.Zero(t, records[0].MorningTickets)
	assert.Empty(t, records[0].Note)
}

func TestLoadSalesIgnoresStoredTotal(t *testing.T) {
	st := newTestStore(t)
	content := "date,morning_eur,afternoon_eur,evening_eur,total_eur,morning_tickets,afternoon_tickets,evening_tickets,note\n" +
		"2024-05-01,100,50,25,9999,0,0,0,\n"
	require.NoError(t, os.WriteFile(filepath.Join(st.dir, salesFile), []byte(content), 0o644))

	records, err := st.LoadSales()
	require.NoError(t, err)
	assert.Equal(t, 175.0, records[0].Total)
}

func TestUpsertSales(t *testing.T) {
	st := newTestStore(t)

	replaced, err := st.UpsertSales(models.SalesRecord{Date: date(2024, time.May, 1), Morning: 100})
	require.NoError(t, err)
	assert.False(t, replaced)

	replaced, err = st.UpsertSales(models.SalesRecord{Date: date(2024, time.May, 1), Morning: 300})
	require.NoError(t, err)
	assert.True(t, replaced)

	records, err := st.LoadSales()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 300.0, records[0].Total)
}

func TestAppendExpenseAssignsIDs(t *testing.T) {
	st := newTestStore(t)

	first, err := st.AppendExpense(models.ExpenseEntry{Date: date(2024, time.May, 3), Category: "Kira", Description: "mayıs kirası", Amount: 1500})
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, "2024-05", first.Month)

	second, err := st.AppendExpense(models.ExpenseEntry{Date: date(2024, time.May, 10), Category: "Faturalar", Description: "elektrik", Amount: 240.60})
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.ID)

	entries, err := st.LoadExpenses()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 240.60, entries[1].Amount)
}

func TestDeleteExpense(t *testing.T) {
	st := newTestStore(t)
	entry, err := st.AppendExpense(models.ExpenseEntry{Date: date(2024, time.May, 3), Category: "Kira", Description: "mayıs", Amount: 1500})
	require.NoError(t, err)

	found, err := st.DeleteExpense(999)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = st.DeleteExpense(entry.ID)
	require.NoError(t, err)
	assert.True(t, found)

	entries, err := st.LoadExpenses()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadExpensesBackfillsMonth(t *testing.T) {
	st := newTestStore(t)
	content := "id,date,month,category,description,amount\n" +
		"1,2024-05-03,,Kira,mayıs kirası,1500.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(st.dir, expenseFile), []byte(content), 0o644))

	entries, err := st.LoadExpenses()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-05", entries[0].Month)
}

func TestUpsertPositionByYearAndRole(t *testing.T) {
	st := newTestStore(t)

	p := models.Position{Year: 2025, Role: "Garson", AnnualGross: 24000}
	for i := range p.Need {
		p.Need[i] = 1
	}
	replaced, err := st.UpsertPosition(p)
	require.NoError(t, err)
	assert.False(t, replaced)

	// pozisyon adı büyük/küçük harfe duyarsız eşleşir
	p.Role = "garson"
	p.AnnualGross = 26000
	replaced, err = st.UpsertPosition(p)
	require.NoError(t, err)
	assert.True(t, replaced)

	positions, err := st.LoadPositions()
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, 26000.0, positions[0].AnnualGross)
	assert.Equal(t, [12]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, positions[0].Need)
}

func TestLoadPositionsLastRowWinsOnDuplicateKey(t *testing.T) {
	st := newTestStore(t)
	content := "year,role,annual_gross_eur,need_1,need_2,need_3,need_4,need_5,need_6,need_7,need_8,need_9,need_10,need_11,need_12\n" +
		"2025,Garson,20000.00,1,1,1,1,1,1,1,1,1,1,1,1\n" +
		"2025,Garson,24000.00,1,1,1,1,1,1,1,1,1,1,1,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(st.dir, positionFile), []byte(content), 0o644))

	positions, err := st.LoadPositions()
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, 24000.0, positions[0].AnnualGross)
}
