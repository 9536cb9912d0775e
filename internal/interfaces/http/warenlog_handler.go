package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
)

// WarenLogHandler HTTP-Handler für das Warenlog (geschützt, nur lesend).
type WarenLogHandler struct {
	uc *usecase.WarenLogUseCase
}

// NewWarenLogHandler baut den Handler.
func NewWarenLogHandler(uc *usecase.WarenLogUseCase) *WarenLogHandler {
	return &WarenLogHandler{uc: uc}
}

// List godoc
// @Summary      Warenlog auflisten
// @Tags         warenlog
// @Security     Bearer
// @Produce      json
// @Param        ware_id  query  string  false  "Filter: Ware"
// @Param        limit    query  int     false  "Seitengröße (max 100)"
// @Param        offset   query  int     false  "Offset"
// @Success      200  {object}  dto.WarenLogListResponse
// @Router       /api/warenlog [get]
func (h *WarenLogHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "ungültige Query-Parameter"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Query("ware_id"), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}
