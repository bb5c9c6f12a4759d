package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/application/usecase"
)

// CatalogHandler exportación del catálogo en PDF.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ExportPDF godoc
// @Summary      Descargar el catálogo completo en PDF (A4, por categoría)
// @Tags         catalog
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/catalog/pdf [get]
func (h *CatalogHandler) ExportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.ExportPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogue.pdf"`)
	return c.Send(pdf)
}
