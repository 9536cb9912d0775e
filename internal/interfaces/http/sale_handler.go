package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kontorwerk/kassa-api/internal/application/dto"
	"github.com/kontorwerk/kassa-api/internal/application/usecase"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
)

// SaleHandler HTTP-Handler für Kassenverkäufe und Tagesberichte (geschützt).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler baut den Handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary      Kassenverkäufe auflisten
// @Tags         verkaeufe
// @Security     Bearer
// @Produce      json
// @Param        kassa_id  query  string  false  "Filter: Kassa"
// @Param        ware_id   query  string  false  "Filter: Ware"
// @Param        von       query  string  false  "Filter: ab Datum (YYYY-MM-DD)"
// @Param        bis       query  string  false  "Filter: bis Datum exklusiv (YYYY-MM-DD)"
// @Param        limit     query  int     false  "Seitengröße (max 100)"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/verkaeufe [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "ungültige Query-Parameter"})
	}
	page.DefaultPage()

	filter := repository.SaleFilter{
		KassaID: c.Query("kassa_id"),
		WareID:  c.Query("ware_id"),
	}
	if von := c.Query("von"); von != "" {
		t, err := time.Parse("2006-01-02", von)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "von: Format YYYY-MM-DD erwartet"})
		}
		filter.Von = &t
	}
	if bis := c.Query("bis"); bis != "" {
		t, err := time.Parse("2006-01-02", bis)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "bis: Format YYYY-MM-DD erwartet"})
		}
		filter.Bis = &t
	}

	resp, err := h.uc.List(filter, page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// Tagesbericht godoc
// @Summary      Tagesbericht (Z-Bericht) eines Kalendertags
// @Description  Aggregiert Menge und Umsatz je Ware. Mit format=pdf wird der Bericht als PDF geliefert.
// @Tags         verkaeufe
// @Security     Bearer
// @Produce      json
// @Produce      application/pdf
// @Param        datum   query  string  true   "Kalendertag (YYYY-MM-DD)"
// @Param        format  query  string  false  "pdf für PDF-Ausgabe"
// @Success      200  {object}  dto.TagesberichtResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/verkaeufe/tagesbericht [get]
func (h *SaleHandler) Tagesbericht(c *fiber.Ctx) error {
	datum := c.Query("datum")
	if datum == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datum erforderlich (YYYY-MM-DD)"})
	}

	if c.Query("format") == "pdf" {
		pdfBytes, err := h.uc.TagesberichtPDF(c.Context(), datum)
		if err != nil {
			return mapError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="tagesbericht-`+datum+`.pdf"`)
		return c.Send(pdfBytes)
	}

	resp, err := h.uc.Tagesbericht(datum)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}
