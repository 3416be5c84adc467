package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/tu-usuario/almacen-ledger/docs"
	"github.com/tu-usuario/almacen-ledger/internal/application/auth"
	"github.com/tu-usuario/almacen-ledger/internal/application/inventory"
	"github.com/tu-usuario/almacen-ledger/internal/application/usecase"
	infrapdf "github.com/tu-usuario/almacen-ledger/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-ledger/internal/interfaces/http"
	"github.com/tu-usuario/almacen-ledger/pkg/config"
	"github.com/tu-usuario/almacen-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := usecase.NewItemUseCase(itemRepo, movementRepo)
	reportUC := usecase.NewReportUseCase(itemRepo, movementRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, itemRepo)
	balanceUC := inventory.NewBalanceUseCase(itemRepo, movementRepo)
	kardexPDF := infrapdf.NewKardexPDFGenerator()
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:            itemUC,
		ReportUC:          reportUC,
		MovementUC:        movementUC,
		BalanceUC:         balanceUC,
		AuthUC:            authUC,
		MovementRepo:      movementRepo,
		KardexPDF:         kardexPDF,
		JWTSecret:         cfg.JWT.Secret,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		ExpiryWindowDays:  cfg.Inventory.ExpiryWindowDays,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
