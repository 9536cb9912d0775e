package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
)

// KassaHandler HTTP-Handler für die Terminal-Verwaltung (nur admin).
type KassaHandler struct {
	uc *usecase.KassaUseCase
}

// NewKassaHandler baut den Handler.
func NewKassaHandler(uc *usecase.KassaUseCase) *KassaHandler {
	return &KassaHandler{uc: uc}
}

// Create godoc
// @Summary      Kassenterminal anlegen
// @Description  Der API-Key wird serverseitig erzeugt und nur in dieser Antwort zurückgegeben.
// @Tags         kassen
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKassaRequest  true  "name, kassa_nummer"
// @Success      201  {object}  dto.KassaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/kassen [post]
func (h *KassaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKassaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ungültiger Request-Körper"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Kassenterminal abrufen (ohne API-Key)
// @Tags         kassen
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Kassen-ID"
// @Success      200  {object}  dto.KassaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kassen/{id} [get]
func (h *KassaHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Kassa nicht gefunden"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Kassenterminals auflisten
// @Tags         kassen
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Seitengröße (max 100)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.KassaListResponse
// @Router       /api/kassen [get]
func (h *KassaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "ungültige Query-Parameter"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// RotateKey godoc
// @Summary      API-Key eines Terminals erneuern
// @Description  Der alte Key ist sofort ungültig; der neue steht nur in dieser Antwort.
// @Tags         kassen
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Kassen-ID"
// @Success      200  {object}  dto.KassaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kassen/{id}/rotate-key [post]
func (h *KassaHandler) RotateKey(c *fiber.Ctx) error {
	resp, err := h.uc.RotateKey(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Kassa nicht gefunden"})
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Kassenterminal löschen
// @Tags         kassen
// @Security     Bearer
// @Param        id  path  string  true  "Kassen-ID"
// @Success      204
// @Router       /api/kassen/{id} [delete]
func (h *KassaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
