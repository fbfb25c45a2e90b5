package expense

import (
	"fmt"
	"log"
	"strings"
	"time"

	"dukkan-backend/internal/audit"
	"dukkan-backend/internal/auth"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateExpenseRequest struct {
	Date        string  `json:"date"` // "2025-12-09"
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type ExpenseResponse struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Month       string  `json:"month"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func toResponse(e models.ExpenseEntry) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Month:       e.Month,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
	}
}

// GET /api/expense-categories
// Kategori listesi sabittir, CRUD yoktur.
func ListExpenseCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(models.ExpenseCategories)
	}
}

// POST /api/expenses
// Açıklama boşsa veya tutar sıfır/negatifse kayıt hiç yazılmadan reddedilir.
func CreateExpenseHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Description = strings.TrimSpace(body.Description)
		if body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Açıklama zorunlu")
		}
		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Tutar sıfırdan büyük olmalı")
		}
		if !models.IsValidExpenseCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori geçersiz")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		entry, err := st.AppendExpense(models.ExpenseEntry{
			Date:        d,
			Category:    body.Category,
			Description: body.Description,
			Amount:      body.Amount,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gider kaydedilemedi")
		}

		// Audit log yaz
		if userID, userName, err := auth.GetUserInfo(c, st); err == nil {
			if logErr := audit.WriteLog(st, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "expense",
				EntityID:    entry.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Gider eklendi: %s - %.2f EUR", entry.Category, entry.Amount),
			}); logErr != nil {
				log.Printf("Audit log yazılamadı: %v", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(entry))
	}
}

// GET /api/expenses?from=...&to=...&category=...
func ListExpensesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := st.LoadExpenses()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Giderler listelenemedi")
		}

		fromStr := c.Query("from")
		toStr := c.Query("to")
		category := c.Query("category")

		var from, to time.Time
		if fromStr != "" {
			if from, err = time.Parse("2006-01-02", fromStr); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from geçersiz")
			}
		}
		if toStr != "" {
			if to, err = time.Parse("2006-01-02", toStr); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to geçersiz")
			}
		}

		resp := make([]ExpenseResponse, 0, len(entries))
		for _, e := range entries {
			if fromStr != "" && e.Date.Before(from) {
				continue
			}
			if toStr != "" && e.Date.After(to) {
				continue
			}
			if category != "" && e.Category != category {
				continue
			}
			resp = append(resp, toResponse(e))
		}
		return c.JSON(resp)
	}
}

// DELETE /api/expenses/:id
// Giderler yerinde güncellenmez; yanlış kayıt silinip yeniden girilir.
func DeleteExpenseHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id uint
		if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		found, err := st.DeleteExpense(id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gider silinemedi")
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "Gider bulunamadı")
		}

		if userID, userName, err := auth.GetUserInfo(c, st); err == nil {
			if logErr := audit.WriteLog(st, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "expense",
				EntityID:    id,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Gider silindi: #%d", id),
			}); logErr != nil {
				log.Printf("Audit log yazılamadı: %v", logErr)
			}
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

type MonthlyExpenseSummaryItem struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type MonthlyExpenseSummaryResponse struct {
	Year       int                         `json:"year"`
	Month      int                         `json:"month"`
	Items      []MonthlyExpenseSummaryItem `json:"items"`
	GrandTotal float64                     `json:"grand_total"`
}

type AnnualExpenseRow struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type AnnualExpenseSummaryResponse struct {
	Year       int                `json:"year"`
	Rows       []AnnualExpenseRow `json:"rows"`
	GrandTotal float64            `json:"grand_total"`
}

// GET /api/expenses/summary/monthly?year=2025&month=12
// Ay verilirse kategori kırılımı, verilmezse yılın 12 aylık toplam tablosu.
func MonthlyExpenseSummaryHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearStr := c.Query("year")
		if yearStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "year zorunlu")
		}
		var year int
		if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
			return fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
		}

		entries, err := st.LoadExpenses()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		if monthStr := c.Query("month"); monthStr != "" {
			var month int
			if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
				return fiber.NewError(fiber.StatusBadRequest, "month geçersiz")
			}

			totals := make(map[string]float64)
			for _, e := range entries {
				if e.Date.Year() != year || int(e.Date.Month()) != month {
					continue
				}
				totals[e.Category] += e.Amount
			}

			resp := MonthlyExpenseSummaryResponse{Year: year, Month: month}
			// sabit kategori sırası korunur
			for _, cat := range models.ExpenseCategories {
				total, ok := totals[cat]
				if !ok {
					continue
				}
				resp.Items = append(resp.Items, MonthlyExpenseSummaryItem{Category: cat, Total: total})
				resp.GrandTotal += total
			}
			return c.JSON(resp)
		}

		resp := AnnualExpenseSummaryResponse{Year: year, Rows: make([]AnnualExpenseRow, 12)}
		for m := 1; m <= 12; m++ {
			resp.Rows[m-1] = AnnualExpenseRow{Month: m}
		}
		for _, e := range entries {
			if e.Date.Year() != year {
				continue
			}
			m := int(e.Date.Month())
			resp.Rows[m-1].Total += e.Amount
			resp.GrandTotal += e.Amount
		}
		return c.JSON(resp)
	}
}
