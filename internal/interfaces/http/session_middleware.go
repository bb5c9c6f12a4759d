package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/pkg/token"
)

// Locals keys para la sesión autenticada en Fiber.
const (
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalSessionID = "session_id"
)

// SessionStore puerto del almacén de sesiones del lado servidor. La cookie
// solo transporta el id de sesión firmado; el almacén es la autoridad.
type SessionStore interface {
	Create(userID string) string
	Get(id string) (string, bool)
	Destroy(id string)
}

// UserResolver carga el usuario sanitizado de la sesión (lo implementa auth.AuthUseCase).
type UserResolver interface {
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
}

// SessionConfig parámetros de la cookie de sesión.
type SessionConfig struct {
	Secret     string
	CookieName string
	Issuer     string
	MaxAgeSecs int
	Secure     bool
}

// SessionMiddleware resuelve la cookie de sesión si existe y deja UserID, Role
// y SessionID en c.Locals. Nunca corta la petición: las rutas públicas siguen
// siendo públicas y RequireSession decide después.
func SessionMiddleware(cfg SessionConfig, sessions SessionStore, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(cfg.CookieName)
		if cookie == "" {
			return c.Next()
		}
		sessionID, err := token.Parse(cfg.Secret, cookie)
		if err != nil {
			return c.Next()
		}
		userID, ok := sessions.Get(sessionID)
		if !ok {
			return c.Next()
		}
		user, err := users.GetUser(c.Context(), userID)
		if err != nil || user == nil {
			return c.Next()
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, user.Role)
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// RequireSession corta con 401 si la petición no llegó con sesión válida.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol de la sesión no está entre los permitidos.
// Debe ir detrás de RequireSession.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
	}
}

// GetUserID devuelve el UserID de la sesión (vacío si no hay sesión).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol de la sesión (vacío si no hay sesión).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSessionID devuelve el id de sesión (vacío si no hay sesión).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
