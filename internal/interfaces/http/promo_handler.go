package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/application/usecase"
	"github.com/sred/vitrine-api/internal/domain"
)

// PromoHandler maneja las peticiones HTTP para promociones.
type PromoHandler struct {
	uc *usecase.PromoUseCase
}

// NewPromoHandler construye el handler.
func NewPromoHandler(uc *usecase.PromoUseCase) *PromoHandler {
	return &PromoHandler{uc: uc}
}

// List godoc
// @Summary      Listar promociones (más recientes primero)
// @Tags         promos
// @Produce      json
// @Success      200  {array}  dto.PromoResponse
// @Router       /api/promos [get]
func (h *PromoHandler) List(c *fiber.Ctx) error {
	promos, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(promos)
}

// Create godoc
// @Summary      Publicar promoción
// @Tags         promos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePromoRequest  true  "Datos de la promoción"
// @Success      201  {object}  dto.PromoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/promos [post]
func (h *PromoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePromoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	promo, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "imageUrl es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(promo)
}

// Update godoc
// @Summary      Actualizar promoción (parcial)
// @Tags         promos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.UpdatePromoRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.PromoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promos/{id} [patch]
func (h *PromoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePromoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	promo, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "imageUrl no puede quedar vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if promo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción no encontrada"})
	}
	return c.JSON(promo)
}

// Delete godoc
// @Summary      Eliminar promoción
// @Tags         promos
// @Param        id  path  string  true  "ID de la promoción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promos/{id} [delete]
func (h *PromoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
