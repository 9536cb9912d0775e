package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appauth "github.com/kontorwerk/kassa-api/internal/application/auth"
	"github.com/kontorwerk/kassa-api/internal/application/kassa"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/pkg/logger"
)

// RouterDeps Abhängigkeiten für den Router.
type RouterDeps struct {
	RecordSale *kassa.RecordSaleUseCase
	WareUC     *usecase.WareUseCase
	KassaUC    *usecase.KassaUseCase
	SaleUC     *usecase.SaleUseCase
	WarenLogUC *usecase.WarenLogUseCase
	AuthUC     *appauth.AuthUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registriert die Routen der API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Kassen-Webhook (eigene Authentifizierung über X-API-Key).
	// app.All statt Post, damit falsche Methoden die protokollkonforme
	// 405-JSON-Antwort bekommen statt Fibers Standardantwort.
	webhookHandler := NewKassaWebhookHandler(deps.RecordSale, deps.Log)
	api.All("/kassa/webhook", webhookHandler.Handle)

	// Auth (öffentlich)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Geschützte Routen (Bearer-Token erforderlich)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Waren: lesen für alle Rollen, schreiben nur admin und lager
	waren := protected.Group("/waren")
	wareHandler := NewWareHandler(deps.WareUC)
	waren.Get("/", wareHandler.List)
	waren.Get("/:id", wareHandler.GetByID)
	schreibend := RequireRole(entity.RoleAdmin, entity.RoleLager)
	waren.Post("/", schreibend, wareHandler.Create)
	waren.Put("/:id", schreibend, wareHandler.Update)
	waren.Delete("/:id", schreibend, wareHandler.Delete)

	// Kassenterminals: nur admin (API-Keys)
	kassen := protected.Group("/kassen", RequireRole(entity.RoleAdmin))
	kassaHandler := NewKassaHandler(deps.KassaUC)
	kassen.Post("/", kassaHandler.Create)
	kassen.Get("/", kassaHandler.List)
	kassen.Get("/:id", kassaHandler.GetByID)
	kassen.Post("/:id/rotate-key", kassaHandler.RotateKey)
	kassen.Delete("/:id", kassaHandler.Delete)

	// Verkäufe und Tagesbericht (lesend)
	verkaeufe := protected.Group("/verkaeufe")
	saleHandler := NewSaleHandler(deps.SaleUC)
	verkaeufe.Get("/tagesbericht", saleHandler.Tagesbericht)
	verkaeufe.Get("/", saleHandler.List)

	// Warenlog (lesend)
	warenlog := protected.Group("/warenlog")
	warenLogHandler := NewWarenLogHandler(deps.WarenLogUC)
	warenlog.Get("/", warenLogHandler.List)
}
