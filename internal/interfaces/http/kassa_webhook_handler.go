package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/application/kassa"
	"github.com/kontorwerk/kassa-api/internal/domain"
	"github.com/kontorwerk/kassa-api/pkg/logger"
)

// KassaWebhookHandler nimmt Verkaufsereignisse der Kassenterminals entgegen.
// Antwortformat und Fehlermeldungen sind Teil des bestehenden Kassen-Protokolls
// (englische Meldungen, {error}-Körper) und dürfen nicht verändert werden.
type KassaWebhookHandler struct {
	uc  *kassa.RecordSaleUseCase
	log *logger.Logger
}

// NewKassaWebhookHandler baut den Handler.
func NewKassaWebhookHandler(uc *kassa.RecordSaleUseCase, log *logger.Logger) *KassaWebhookHandler {
	return &KassaWebhookHandler{uc: uc, log: log}
}

// Handle godoc
// @Summary      Verkaufsereignis einer Kassa verbuchen
// @Description  Reduziert den Bestand der Ware, legt den Verkaufsdatensatz an,
//
//	aktualisiert die Kassen-Synchronisation und schreibt einen
//	Warenlog-Eintrag, alles in einer Transaktion.
//
// @Tags         kassa
// @Accept       json
// @Produce      json
// @Param        X-API-Key  header  string                   true  "API-Key des Terminals"
// @Param        body       body    dto.KassaWebhookRequest  true  "product_id, quantity, amount (optional), event_id (optional)"
// @Success      200  {object}  dto.KassaWebhookResponse
// @Failure      400  {object}  dto.WebhookErrorResponse
// @Failure      401  {object}  dto.WebhookErrorResponse
// @Failure      404  {object}  dto.WebhookErrorResponse
// @Failure      405  {object}  dto.WebhookErrorResponse
// @Failure      500  {object}  dto.WebhookErrorResponse
// @Router       /api/kassa/webhook [post]
func (h *KassaWebhookHandler) Handle(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return h.respondError(c, fiber.StatusMethodNotAllowed, "Only POST allowed")
	}

	apiKey := c.Get("X-API-Key")
	if apiKey == "" {
		return h.respondError(c, fiber.StatusUnauthorized, "API key required")
	}

	// Payload-Fehler entscheiden sich erst NACH der Authentifizierung: ein
	// unbekannter Key bekommt 401, auch wenn der Körper unbrauchbar ist.
	// Ein unlesbarer Körper läuft deshalb als leerer Request in den Use-Case.
	var in dto.KassaWebhookRequest
	if err := c.BodyParser(&in); err != nil {
		in = dto.KassaWebhookRequest{}
	}

	result, err := h.uc.Execute(c.Context(), kassa.RecordSaleInput{
		APIKey:  apiKey,
		WareID:  in.ProductID,
		Menge:   in.Quantity,
		Summe:   in.Amount,
		EventID: in.EventID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrAmbiguousAPIKey):
			return h.respondError(c, fiber.StatusUnauthorized, "Invalid API key")
		case errors.Is(err, domain.ErrInvalidInput):
			return h.respondError(c, fiber.StatusBadRequest, "Missing required fields")
		case errors.Is(err, domain.ErrNotFound):
			return h.respondError(c, fiber.StatusNotFound, "Product not found")
		default:
			h.log.Error().Err(err).Str("product_id", in.ProductID).Msg("webhook: verkauf fehlgeschlagen")
			return h.respondError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	if !result.Wiederholung {
		salesRecordedTotal.Inc()
	}
	webhookRequestsTotal.WithLabelValues(strconv.Itoa(fiber.StatusOK)).Inc()

	return c.JSON(dto.KassaWebhookResponse{
		Success:       true,
		Message:       "Sale recorded",
		NewQuantity:   result.NeuerBestand.InexactFloat64(),
		NeedsPurchase: result.Nachbestellung,
		SaleID:        result.SaleID,
	})
}

func (h *KassaWebhookHandler) respondError(c *fiber.Ctx, status int, msg string) error {
	webhookRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	return c.Status(status).JSON(dto.WebhookErrorResponse{Error: msg})
}
