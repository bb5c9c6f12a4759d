package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sred/vitrine-api/internal/application/auth"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/pkg/token"
)

// AuthHandler maneja login, logout, registro y el usuario de la sesión.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sessions SessionStore
	cfg      SessionConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, sessions SessionStore, cfg SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, cfg: cfg}
}

// Login godoc
// @Summary      Iniciar sesión (username o email + contraseña)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.setSessionCookie(c, user.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(user)
}

// Logout godoc
// @Summary      Cerrar la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := GetSessionID(c); sid != "" {
		h.sessions.Destroy(sid)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.StatusResponse{Message: "sesión cerrada"})
}

// CurrentUser godoc
// @Summary      Usuario de la sesión actual (null si no hay sesión)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.JSON(nil)
	}
	user, err := h.uc.GetUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(user)
}

// Register godoc
// @Summary      Registro inicial (solo mientras no exista ningún usuario)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de la cuenta"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Email == "" || len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username, email y contraseña (mín. 6) son requeridos"})
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRegistrationClosed):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "REGISTRATION_CLOSED", Message: "el registro está cerrado"})
		case errors.Is(err, domain.ErrUsernameAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "USERNAME_TAKEN", Message: "username ya existe"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_TAKEN", Message: "email ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.setSessionCookie(c, user.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// setSessionCookie abre una sesión servidor y deja su id firmado en la cookie.
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, userID string) error {
	maxAge := time.Duration(h.cfg.MaxAgeSecs) * time.Second
	sid := h.sessions.Create(userID)
	signed, err := token.Generate(h.cfg.Secret, sid, h.cfg.Issuer, maxAge)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    signed,
		Expires:  time.Now().Add(maxAge),
		HTTPOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
