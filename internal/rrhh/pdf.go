package rrhh

import (
	"bytes"
	"fmt"

	"dukkan-backend/internal/config"
	"dukkan-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
)

// GET /api/positions/costs/export?year=2025 (sadece owner)
// Yıllık personel maliyet planını PDF olarak indirir.
func PositionCostsPDFHandler(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return err
		}

		positions, err := st.LoadPositions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pozisyonlar yüklenemedi")
		}
		plan := ComputeCosts(positions, year, cfg.SocialChargeRate)

		pdf := gofpdf.New("L", "mm", "A4", "")
		tr := pdf.UnicodeTranslatorFromDescriptor("cp1254") // Türkçe karakterler
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(40, 10, tr(fmt.Sprintf("Personel Maliyet Planı %d", year)))
		pdf.Ln(12)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(20, 7, "Ay", "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, tr("Brüt Maaş (EUR)"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, tr(fmt.Sprintf("SGK İşveren %%%.0f (EUR)", plan.SocialRate*100)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, tr("İşveren Maliyeti (EUR)"), "1", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, t := range plan.Totals {
			pdf.CellFormat(20, 6, fmt.Sprintf("%d", t.Month), "1", 0, "C", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", t.Payroll), "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", t.Social), "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", t.Employer), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(110, 7, tr("Yıllık Toplam"), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%.2f", plan.AnnualEmployer), "1", 1, "R", false, 0, "")

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "PDF oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="personel-maliyet-%d.pdf"`, year))
		return c.Send(buf.Bytes())
	}
}
