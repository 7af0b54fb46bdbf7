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
	appanalytics "github.com/tu-usuario/tienda-ropa-api/internal/application/analytics"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/orders"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-ropa-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/tienda-ropa-api/internal/interfaces/http"
	"github.com/tu-usuario/tienda-ropa-api/pkg/config"
	"github.com/tu-usuario/tienda-ropa-api/pkg/logger"
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

	// Repositorios atados al pool (lecturas y CRUD fuera de transacción)
	productRepo := postgres.NewProductRepository(pool)
	importOrderRepo := postgres.NewImportOrderRepository(pool)
	salesOrderRepo := postgres.NewSalesOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	createImportUC := orders.NewCreateImportOrderUseCase(txRunner)
	createSalesUC := orders.NewCreateSalesOrderUseCase(txRunner)
	listOrdersUC := orders.NewListOrdersUseCase(importOrderRepo, salesOrderRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, cfg.Dashboard.LowStockThreshold)

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
		Title:    "Tienda Ropa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:         productUC,
		CreateImportOrder: createImportUC,
		CreateSalesOrder:  createSalesUC,
		ListOrders:        listOrdersUC,
		DashboardUC:       dashboardUC,
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
