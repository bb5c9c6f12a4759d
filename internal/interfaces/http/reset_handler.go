package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sred/vitrine-api/internal/application/auth"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/domain"
)

// ResetHandler maneja el flujo de reinicio de contraseña en tres pasos.
type ResetHandler struct {
	uc *auth.AuthUseCase
}

// NewResetHandler construye el handler.
func NewResetHandler(uc *auth.AuthUseCase) *ResetHandler {
	return &ResetHandler{uc: uc}
}

// ForgotPassword godoc
// @Summary      Solicitar código de reinicio por email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "Email de la cuenta"
// @Success      200  {object}  dto.StatusResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/forgot-password [post]
func (h *ResetHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.RequestReset(c.Context(), in.Email); err != nil {
		if errors.Is(err, domain.ErrMailDelivery) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MAIL_DELIVERY", Message: "no se pudo enviar el correo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Mismo mensaje exista o no la cuenta.
	return c.JSON(dto.StatusResponse{Message: "si el email existe, se envió un código"})
}

// VerifyCode godoc
// @Summary      Verificar el código recibido (no lo consume)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyCodeRequest  true  "Email y código"
// @Success      200  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/verify-code [post]
func (h *ResetHandler) VerifyCode(c *fiber.Ctx) error {
	var in dto.VerifyCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.VerifyCode(c.Context(), in.Email, in.Code); err != nil {
		if errors.Is(err, domain.ErrInvalidResetCode) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "código inválido o expirado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Message: "código válido"})
}

// ResetPassword godoc
// @Summary      Fijar la contraseña nueva con el código
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "Email, código y contraseña nueva"
// @Success      200  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reset-password [post]
func (h *ResetHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CommitReset(c.Context(), in.Email, in.Code, in.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código de 8 caracteres y contraseña de mín. 6 son requeridos"})
		case errors.Is(err, domain.ErrInvalidResetCode):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "código inválido o expirado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Message: "contraseña actualizada"})
}
