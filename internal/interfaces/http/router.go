package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-ledger/internal/application/auth"
	"github.com/tu-usuario/almacen-ledger/internal/application/inventory"
	"github.com/tu-usuario/almacen-ledger/internal/application/usecase"
	"github.com/tu-usuario/almacen-ledger/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC       *usecase.ItemUseCase
	ReportUC     *usecase.ReportUseCase
	MovementUC   *inventory.MovementUseCase
	BalanceUC    *inventory.BalanceUseCase
	AuthUC       *auth.AuthUseCase
	MovementRepo repository.MovementRepository
	KardexPDF    inventory.KardexPDFGenerator
	JWTSecret    string

	// Umbrales por defecto de los reportes.
	LowStockThreshold int64
	ExpiryWindowDays  int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Movimientos y consultas del libro (protegido)
	movementHandler := NewMovementHandler(deps.MovementUC, deps.BalanceUC, deps.ItemUC, deps.MovementRepo, deps.KardexPDF)
	movements := protected.Group("/movements")
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Get("/export", movementHandler.ExportCSV)

	items.Get("/:id/movements", movementHandler.ListByItem)
	items.Get("/:id/balance", movementHandler.Balance)
	items.Get("/:id/kardex", movementHandler.Kardex)
	items.Get("/:id/kardex/pdf", movementHandler.KardexPDF)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.LowStockThreshold, deps.ExpiryWindowDays)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/expiring", reportHandler.Expiring)
	reports.Get("/movements", reportHandler.MovementsByPeriod)
}
