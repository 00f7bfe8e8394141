package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/caja-pos/internal/application/auth"
	"github.com/tu-usuario/caja-pos/internal/application/billing"
	"github.com/tu-usuario/caja-pos/internal/application/catalog"
	"github.com/tu-usuario/caja-pos/internal/application/returns"
	infrapdf "github.com/tu-usuario/caja-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/caja-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/caja-pos/internal/infrastructure/receipt"
	httpRouter "github.com/tu-usuario/caja-pos/internal/interfaces/http"
	"github.com/tu-usuario/caja-pos/pkg/config"
	"github.com/tu-usuario/caja-pos/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewCatalogUseCase(productRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, productRepo, invoiceRepo, cfg.POS.PageSize)
	returnUC := returns.NewReturnUseCase(invoiceRepo, returnRepo, txRunner)

	receiptRenderer, err := receipt.NewRenderer(cfg.POS.Currency, cfg.POS.StoreName)
	if err != nil {
		log.Fatal().Err(err).Msg("plantilla de recibo")
	}
	pdfGenerator := infrapdf.NewReceiptPDFGenerator(cfg.POS.Currency, cfg.POS.StoreName)
	receiptUC := billing.NewReceiptUseCase(invoiceRepo, returnRepo, receiptRenderer, pdfGenerator)

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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		InvoiceUC: invoiceUC,
		ReceiptUC: receiptUC,
		ReturnUC:  returnUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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
