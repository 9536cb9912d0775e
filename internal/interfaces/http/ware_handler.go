package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
	"github.com/kontorwerk/kassa-api/internal/domain"
)

// WareHandler HTTP-Handler für die Warenverwaltung (geschützt).
type WareHandler struct {
	uc *usecase.WareUseCase
}

// NewWareHandler baut den Handler.
func NewWareHandler(uc *usecase.WareUseCase) *WareHandler {
	return &WareHandler{uc: uc}
}

// Create godoc
// @Summary      Ware anlegen
// @Tags         waren
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWareRequest  true  "name, bestand, mindestbestand, verkaufspreis, einheit"
// @Success      201  {object}  dto.WareResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/waren [post]
func (h *WareHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWareRequest
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
// @Summary      Ware abrufen
// @Tags         waren
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Waren-ID"
// @Success      200  {object}  dto.WareResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/waren/{id} [get]
func (h *WareHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Ware nicht gefunden"})
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Ware aktualisieren (ohne Bestand)
// @Tags         waren
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Waren-ID"
// @Param        body  body  dto.UpdateWareRequest  true  "zu ändernde Felder"
// @Success      200  {object}  dto.WareResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/waren/{id} [put]
func (h *WareHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWareRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ungültiger Request-Körper"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Ware nicht gefunden"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Waren auflisten
// @Tags         waren
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Suche im Namen (umlaut-unempfindlich)"
// @Param        limit   query  int     false  "Seitengröße (max 100)"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {object}  dto.WareListResponse
// @Router       /api/waren [get]
func (h *WareHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "ungültige Query-Parameter"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Ware löschen
// @Tags         waren
// @Security     Bearer
// @Param        id  path  string  true  "Waren-ID"
// @Success      204
// @Router       /api/waren/{id} [delete]
func (h *WareHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mapError bildet Domänenfehler auf HTTP-Status und {code, message} ab.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ungültige Daten"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Ressource nicht gefunden"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Ressource bereits vorhanden"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Zugriff verweigert"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "nicht autorisiert"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
