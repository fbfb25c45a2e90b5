package rrhh

import (
	"fmt"
	"log"
	"strings"

	"dukkan-backend/internal/audit"
	"dukkan-backend/internal/auth"
	"dukkan-backend/internal/config"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreatePositionRequest struct {
	Year        int     `json:"year"`
	Role        string  `json:"role"`
	AnnualGross float64 `json:"annual_gross_eur"`
	Need        [12]int `json:"monthly_need"` // Ocak..Aralık
}

type PositionResponse struct {
	Year        int     `json:"year"`
	Role        string  `json:"role"`
	AnnualGross float64 `json:"annual_gross_eur"`
	Need        [12]int `json:"monthly_need"`
}

// POST /api/positions (sadece owner)
// (yıl, pozisyon) doğal anahtardır: aynı çift yeniden gönderilirse eski
// tanımın üzerine yazılır, sessizce kopya satır birikmez.
func CreatePositionHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePositionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Role = strings.TrimSpace(body.Role)
		if body.Role == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Pozisyon adı zorunlu")
		}
		if body.Year < 2000 || body.Year > 2100 {
			return fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
		}
		if body.AnnualGross < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Yıllık brüt negatif olamaz")
		}
		for _, n := range body.Need {
			if n < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Aylık ihtiyaç negatif olamaz")
			}
		}

		p := models.Position{
			Year:        body.Year,
			Role:        body.Role,
			AnnualGross: body.AnnualGross,
			Need:        body.Need,
		}

		replaced, err := st.UpsertPosition(p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pozisyon kaydedilemedi")
		}

		if userID, userName, err := auth.GetUserInfo(c, st); err == nil {
			action := models.AuditActionCreate
			desc := fmt.Sprintf("Pozisyon eklendi: %s (%d)", p.Role, p.Year)
			if replaced {
				action = models.AuditActionUpdate
				desc = fmt.Sprintf("Pozisyon güncellendi: %s (%d)", p.Role, p.Year)
			}
			if logErr := audit.WriteLog(st, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "position",
				Action:      action,
				Description: desc,
			}); logErr != nil {
				log.Printf("Audit log yazılamadı: %v", logErr)
			}
		}

		status := fiber.StatusCreated
		if replaced {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(PositionResponse{
			Year:        p.Year,
			Role:        p.Role,
			AnnualGross: p.AnnualGross,
			Need:        p.Need,
		})
	}
}

// GET /api/positions?year=2025
func ListPositionsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return err
		}

		positions, err := st.LoadPositions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pozisyonlar yüklenemedi")
		}

		resp := make([]PositionResponse, 0, len(positions))
		for _, p := range positions {
			if p.Year != year {
				continue
			}
			resp = append(resp, PositionResponse{
				Year:        p.Year,
				Role:        p.Role,
				AnnualGross: p.AnnualGross,
				Need:        p.Need,
			})
		}
		return c.JSON(resp)
	}
}

// GET /api/positions/costs?year=2025[&month=6]
// Pozisyon bazında brüt maaş / SGK / işveren maliyeti tabloları ve aylık
// toplamlar. month verilirse yanıt o ayın toplamına daraltılmaz, yalnızca
// period_total alanı o ayı gösterir.
func PositionCostsHandler(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return err
		}

		month := 0
		if monthStr := c.Query("month"); monthStr != "" {
			if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
				return fiber.NewError(fiber.StatusBadRequest, "month geçersiz")
			}
		}

		positions, err := st.LoadPositions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pozisyonlar yüklenemedi")
		}

		plan := ComputeCosts(positions, year, cfg.SocialChargeRate)
		periodTotal := plan.AnnualEmployer
		if month != 0 {
			periodTotal = plan.Totals[month-1].Employer
		}

		return c.JSON(fiber.Map{
			"plan":         plan,
			"month":        month,
			"period_total": periodTotal,
		})
	}
}

func parseYear(c *fiber.Ctx) (int, error) {
	yearStr := c.Query("year")
	if yearStr == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "year zorunlu")
	}
	var year int
	if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
	}
	return year, nil
}
