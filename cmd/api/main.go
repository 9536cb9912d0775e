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

	appauth "github.com/kontorwerk/kassa-api/internal/application/auth"
	appkassa "github.com/kontorwerk/kassa-api/internal/application/kassa"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
	infrapdf "github.com/kontorwerk/kassa-api/internal/infrastructure/pdf"
	"github.com/kontorwerk/kassa-api/internal/infrastructure/postgres"
	httpRouter "github.com/kontorwerk/kassa-api/internal/interfaces/http"
	"github.com/kontorwerk/kassa-api/pkg/config"
	"github.com/kontorwerk/kassa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("konfiguration laden: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("anwendung startet")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("verbindung zu PostgreSQL")
	}
	defer pool.Close()

	wareRepo := postgres.NewWareRepository(pool)
	kassaRepo := postgres.NewKassaRepository(pool)
	saleRepo := postgres.NewKassaSaleRepository(pool)
	logRepo := postgres.NewWarenLogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordSaleUC := appkassa.NewRecordSaleUseCase(txRunner, kassaRepo)
	wareUC := usecase.NewWareUseCase(wareRepo)
	kassaUC := usecase.NewKassaUseCase(kassaRepo)
	berichtGenerator := infrapdf.NewMarotoBerichtGenerator()
	saleUC := usecase.NewSaleUseCase(saleRepo, berichtGenerator)
	warenLogUC := usecase.NewWarenLogUseCase(logRepo)
	authUC := appauth.NewAuthUseCase(userRepo, appauth.JWTConfig{
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

	httpRouter.InitMetrics()
	app.Use(httpRouter.PrometheusMiddleware())

	// Swagger-UI lokal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kassa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordSale: recordSaleUC,
		WareUC:     wareUC,
		KassaUC:    kassaUC,
		SaleUC:     saleUC,
		WarenLogUC: warenLogUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-Server beendet")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown-signal empfangen, server wird beendet...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server-shutdown")
	}

	log.Info().Msg("anwendung gestoppt")
}
