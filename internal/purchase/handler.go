package purchase

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

type CreatePurchaseRequest struct {
	Date        string  `json:"date"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type PurchaseResponse struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Month       string  `json:"month"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func toResponse(e models.PurchaseEntry) PurchaseResponse {
	return PurchaseResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Month:       e.Month,
		Supplier:    e.Supplier,
		Description: e.Description,
		Amount:      e.Amount,
	}
}

// POST /api/purchases
func CreatePurchaseHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseRequest
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

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		entry, err := st.AppendPurchase(models.PurchaseEntry{
			Date:        d,
			Supplier:    strings.TrimSpace(body.Supplier),
			Description: body.Description,
			Amount:      body.Amount,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alım kaydedilemedi")
		}

		if userID, userName, err := auth.GetUserInfo(c, st); err == nil {
			if logErr := audit.WriteLog(st, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "purchase",
				EntityID:    entry.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Alım eklendi: %s - %.2f EUR", entry.Description, entry.Amount),
			}); logErr != nil {
				log.Printf("Audit log yazılamadı: %v", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(entry))
	}
}

// GET /api/purchases?from=...&to=...
func ListPurchasesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := st.LoadPurchases()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alımlar listelenemedi")
		}

		fromStr := c.Query("from")
		toStr := c.Query("to")

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

		resp := make([]PurchaseResponse, 0, len(entries))
		for _, e := range entries {
			if fromStr != "" && e.Date.Before(from) {
				continue
			}
			if toStr != "" && e.Date.After(to) {
				continue
			}
			resp = append(resp, toResponse(e))
		}
		return c.JSON(resp)
	}
}

// DELETE /api/purchases/:id
func DeletePurchaseHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id uint
		if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		found, err := st.DeletePurchase(id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alım silinemedi")
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "Alım bulunamadı")
		}

		if userID, userName, err := auth.GetUserInfo(c, st); err == nil {
			if logErr := audit.WriteLog(st, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "purchase",
				EntityID:    id,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Alım silindi: #%d", id),
			}); logErr != nil {
				log.Printf("Audit log yazılamadı: %v", logErr)
			}
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

type MonthlyPurchaseRow struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type MonthlyPurchaseSummaryResponse struct {
	Year       int                  `json:"year"`
	Rows       []MonthlyPurchaseRow `json:"rows"`
	GrandTotal float64              `json:"grand_total"`
}

// GET /api/purchases/summary/monthly?year=2025
func MonthlyPurchaseSummaryHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearStr := c.Query("year")
		if yearStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "year zorunlu")
		}
		var year int
		if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
			return fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
		}

		entries, err := st.LoadPurchases()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		resp := MonthlyPurchaseSummaryResponse{Year: year, Rows: make([]MonthlyPurchaseRow, 12)}
		for m := 1; m <= 12; m++ {
			resp.Rows[m-1] = MonthlyPurchaseRow{Month: m}
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
