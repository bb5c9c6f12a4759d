package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/application/usecase"
	"github.com/sred/vitrine-api/internal/domain"
)

// StickerHandler maneja las peticiones HTTP para catálogos de stickers.
type StickerHandler struct {
	uc *usecase.StickerUseCase
}

// NewStickerHandler construye el handler.
func NewStickerHandler(uc *usecase.StickerUseCase) *StickerHandler {
	return &StickerHandler{uc: uc}
}

// List godoc
// @Summary      Listar catálogos de stickers
// @Tags         stickers
// @Produce      json
// @Success      200  {array}  dto.StickerCatalogResponse
// @Router       /api/stickers [get]
func (h *StickerHandler) List(c *fiber.Ctx) error {
	catalogs, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(catalogs)
}

// Create godoc
// @Summary      Crear catálogo de stickers
// @Tags         stickers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStickerCatalogRequest  true  "Datos del catálogo"
// @Success      201  {object}  dto.StickerCatalogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stickers [post]
func (h *StickerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStickerCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	catalog, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title e imageUrl son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(catalog)
}

// Update godoc
// @Summary      Actualizar catálogo de stickers (parcial)
// @Tags         stickers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del catálogo"
// @Param        body  body  dto.UpdateStickerCatalogRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.StickerCatalogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stickers/{id} [patch]
func (h *StickerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStickerCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	catalog, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los campos enviados no pueden quedar vacíos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if catalog == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catálogo no encontrado"})
	}
	return c.JSON(catalog)
}

// Delete godoc
// @Summary      Eliminar catálogo de stickers
// @Tags         stickers
// @Param        id  path  string  true  "ID del catálogo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stickers/{id} [delete]
func (h *StickerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catálogo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
