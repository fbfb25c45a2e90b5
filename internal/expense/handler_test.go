package expense

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukkan-backend/internal/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/api/expense-categories", ListExpenseCategoriesHandler())
	app.Post("/api/expenses", CreateExpenseHandler(st))
	app.Get("/api/expenses", ListExpensesHandler(st))
	app.Delete("/api/expenses/:id", DeleteExpenseHandler(st))
	app.Get("/api/expenses/summary/monthly", MonthlyExpenseSummaryHandler(st))
	return app, st
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestListExpenseCategories(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/expense-categories", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []string
	decode(t, resp, &categories)
	assert.Contains(t, categories, "Kira")
	assert.Contains(t, categories, "Diğer İşletme Giderleri")
}

func TestCreateExpenseValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name string
		body CreateExpenseRequest
	}{
		{"boş açıklama", CreateExpenseRequest{Date: "2025-01-10", Category: "Kira", Description: "   ", Amount: 100}},
		{"sıfır tutar", CreateExpenseRequest{Date: "2025-01-10", Category: "Kira", Description: "ocak", Amount: 0}},
		{"negatif tutar", CreateExpenseRequest{Date: "2025-01-10", Category: "Kira", Description: "ocak", Amount: -5}},
		{"bilinmeyen kategori", CreateExpenseRequest{Date: "2025-01-10", Category: "Yakıt", Description: "ocak", Amount: 100}},
		{"bozuk tarih", CreateExpenseRequest{Date: "10/01/2025", Category: "Kira", Description: "ocak", Amount: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/expenses", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateExpensePersists(t *testing.T) {
	app, st := newTestApp(t)

	resp := postJSON(t, app, "/api/expenses", CreateExpenseRequest{
		Date: "2025-01-10", Category: "Faturalar", Description: "elektrik", Amount: 240.60,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created ExpenseResponse
	decode(t, resp, &created)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "2025-01", created.Month)

	entries, err := st.LoadExpenses()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "elektrik", entries[0].Description)
}

func TestDeleteExpense(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/expenses", CreateExpenseRequest{
		Date: "2025-01-10", Category: "Kira", Description: "ocak", Amount: 1500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodDelete, "/api/expenses/1", nil)
	del, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/api/expenses/999", nil)
	del, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, del.StatusCode)
}

func TestListExpensesFilters(t *testing.T) {
	app, _ := newTestApp(t)

	for _, e := range []CreateExpenseRequest{
		{Date: "2025-01-05", Category: "Kira", Description: "ocak kirası", Amount: 1500},
		{Date: "2025-02-05", Category: "Kira", Description: "şubat kirası", Amount: 1500},
		{Date: "2025-02-10", Category: "Faturalar", Description: "elektrik", Amount: 200},
	} {
		resp := postJSON(t, app, "/api/expenses", e)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/expenses?from=2025-02-01&to=2025-02-28", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var list []ExpenseResponse
	decode(t, resp, &list)
	assert.Len(t, list, 2)

	req = httptest.NewRequest(http.MethodGet, "/api/expenses?category=Faturalar", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)

	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "elektrik", list[0].Description)
}

func TestMonthlyExpenseSummary(t *testing.T) {
	app, _ := newTestApp(t)

	for _, e := range []CreateExpenseRequest{
		{Date: "2025-02-05", Category: "Kira", Description: "şubat kirası", Amount: 1500},
		{Date: "2025-02-10", Category: "Faturalar", Description: "elektrik", Amount: 200},
		{Date: "2025-02-20", Category: "Faturalar", Description: "su", Amount: 50},
		{Date: "2025-03-01", Category: "Kira", Description: "mart kirası", Amount: 1500},
	} {
		resp := postJSON(t, app, "/api/expenses", e)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/expenses/summary/monthly?year=2025&month=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var monthly MonthlyExpenseSummaryResponse
	decode(t, resp, &monthly)
	require.Len(t, monthly.Items, 2)
	// sabit kategori sırası: Kira, Faturalar
	assert.Equal(t, "Kira", monthly.Items[0].Category)
	assert.Equal(t, 1500.0, monthly.Items[0].Total)
	assert.Equal(t, "Faturalar", monthly.Items[1].Category)
	assert.Equal(t, 250.0, monthly.Items[1].Total)
	assert.Equal(t, 1750.0, monthly.GrandTotal)

	// ay verilmezse yıllık tablo döner
	req = httptest.NewRequest(http.MethodGet, "/api/expenses/summary/monthly?year=2025", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)

	var annual AnnualExpenseSummaryResponse
	decode(t, resp, &annual)
	require.Len(t, annual.Rows, 12)
	assert.Equal(t, 1750.0, annual.Rows[1].Total)
	assert.Equal(t, 1500.0, annual.Rows[2].Total)
	assert.Equal(t, 3250.0, annual.GrandTotal)
}
