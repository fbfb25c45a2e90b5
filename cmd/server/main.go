package main

import (
	"log"
	"strings"

	"dukkan-backend/internal/audit"
	"dukkan-backend/internal/auth"
	"dukkan-backend/internal/config"
	"dukkan-backend/internal/dashboard"
	"dukkan-backend/internal/expense"
	"dukkan-backend/internal/financial"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/purchase"
	"dukkan-backend/internal/rrhh"
	"dukkan-backend/internal/sales"
	"dukkan-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Kayıt deposu açılamadı: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-owner", auth.RegisterOwnerHandler(st))
	api.Post("/auth/login", auth.LoginHandler(cfg, st))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(st))

	// Owner routes
	ownerRoutes := protected.Group("")
	ownerRoutes.Use(auth.RequireRole(models.RoleOwner))

	// Personel hesapları
	ownerRoutes.Post("/auth/users", auth.CreateStaffHandler(st))

	// RRHH: pozisyon planlama ve maliyetler
	ownerRoutes.Post("/positions", rrhh.CreatePositionHandler(st))
	ownerRoutes.Get("/positions", rrhh.ListPositionsHandler(st))
	ownerRoutes.Get("/positions/costs", rrhh.PositionCostsHandler(st, cfg))
	ownerRoutes.Get("/positions/costs/export", rrhh.PositionCostsPDFHandler(st, cfg))

	// EBITDA
	ownerRoutes.Get("/financial/ebitda", financial.EBITDAHandler(st, cfg))

	// Audit logs
	ownerRoutes.Get("/audit-logs", audit.ListAuditLogsHandler(st))

	// Satışlar
	protected.Post("/sales", sales.CreateSalesRecordHandler(st))
	protected.Get("/sales", sales.ListSalesHandler(st))
	protected.Get("/sales/summary", sales.SalesSummaryHandler(st))
	protected.Get("/sales/comparison", sales.SalesComparisonHandler(st))
	protected.Get("/sales/monthly", sales.MonthlySalesHandler(st))
	protected.Get("/sales/monthly/export", sales.MonthlySalesExportHandler(st))

	// Giderler
	protected.Get("/expense-categories", expense.ListExpenseCategoriesHandler())
	protected.Post("/expenses", expense.CreateExpenseHandler(st))
	protected.Get("/expenses", expense.ListExpensesHandler(st))
	protected.Delete("/expenses/:id", expense.DeleteExpenseHandler(st))
	protected.Get("/expenses/summary/monthly", expense.MonthlyExpenseSummaryHandler(st))

	// Alımlar
	protected.Post("/purchases", purchase.CreatePurchaseHandler(st))
	protected.Get("/purchases", purchase.ListPurchasesHandler(st))
	protected.Delete("/purchases/:id", purchase.DeletePurchaseHandler(st))
	protected.Get("/purchases/summary/monthly", purchase.MonthlyPurchaseSummaryHandler(st))

	// Dashboard
	protected.Get("/dashboard/trends", dashboard.TrendsHandler(st, cfg))
	protected.Get("/dashboard/sales-chart", dashboard.SalesChartHandler(st))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
