package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/session"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
	infrapdf "github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/pdf"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
	httpRouter "github.com/chrisx123456/WarehouseAppFrontend/internal/interfaces/http"
	"github.com/chrisx123456/WarehouseAppFrontend/pkg/config"
	"github.com/chrisx123456/WarehouseAppFrontend/pkg/logger"
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
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	apiClient := warehouse.New(cfg.API)

	store := session.NewStore(cfg.Session.File)
	sessionManager := session.NewManager(apiClient, store,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute, log)

	categoryUC := usecase.NewCategoryUseCase(apiClient)
	manufacturerUC := usecase.NewManufacturerUseCase(apiClient)
	productUC := usecase.NewProductUseCase(apiClient)
	stockUC := usecase.NewStockUseCase(apiClient)
	accountUC := usecase.NewAccountUseCase(apiClient)

	reportGenerator := infrapdf.NewSalesReportGenerator()
	saleHistoryUC := usecase.NewSaleHistoryUseCase(apiClient, reportGenerator)

	// Confirmar una venta cambia stock e historial en el backend: ambas
	// vistas recargan en su próxima lectura.
	saleWorkflow := usecase.NewSaleWorkflow(apiClient, func(sessionID string) {
		saleHistoryUC.InvalidateSession(sessionID)
		stockUC.DropSession(sessionID)
	})

	// Al destruir una sesión se suelta todo su estado de vista.
	sessionManager.OnDestroy(categoryUC.DropSession)
	sessionManager.OnDestroy(manufacturerUC.DropSession)
	sessionManager.OnDestroy(productUC.DropSession)
	sessionManager.OnDestroy(stockUC.DropSession)
	sessionManager.OnDestroy(accountUC.DropSession)
	sessionManager.OnDestroy(saleHistoryUC.DropSession)
	sessionManager.OnDestroy(saleWorkflow.DropSession)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.Views("./web/views"),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Static("/static", "./web/static")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionManager: sessionManager,
		CookieName:     cfg.Session.CookieName,
		CategoryUC:     categoryUC,
		ManufacturerUC: manufacturerUC,
		ProductUC:      productUC,
		StockUC:        stockUC,
		SaleHistoryUC:  saleHistoryUC,
		SaleWorkflow:   saleWorkflow,
		AccountUC:      accountUC,
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
