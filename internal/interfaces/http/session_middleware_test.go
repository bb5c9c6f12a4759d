package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sred/vitrine-api/internal/application/dto"
	apphttp "github.com/sred/vitrine-api/internal/interfaces/http"
	"github.com/sred/vitrine-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testIssuer     = "vitrine-api-test"
	testCookieName = "vitrine_session"
)

// fakeSessions almacén de sesiones mínimo para los tests del middleware.
type fakeSessions struct {
	entries map[string]string // session id -> user id
}

func (s *fakeSessions) Create(userID string) string {
	id := "sesion-de-" + userID
	s.entries[id] = userID
	return id
}

func (s *fakeSessions) Get(id string) (string, bool) {
	userID, ok := s.entries[id]
	return userID, ok
}

func (s *fakeSessions) Destroy(id string) { delete(s.entries, id) }

// fakeUsers resuelve siempre el mismo usuario con el rol configurado.
type fakeUsers struct {
	role string
}

func (u *fakeUsers) GetUser(_ context.Context, id string) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id, Username: "amine", Role: u.role}, nil
}

func testSessionConfig() apphttp.SessionConfig {
	return apphttp.SessionConfig{
		Secret:     testSecret,
		CookieName: testCookieName,
		Issuer:     testIssuer,
		MaxAgeSecs: 3600,
	}
}

// buildTestApp construye una app Fiber con el middleware de sesión y dos rutas:
// /protected (RequireSession) y /admin (RequireSession + RequireRole superadmin).
func buildTestApp(role string) (*fiber.App, *fakeSessions) {
	sessions := &fakeSessions{entries: make(map[string]string)}
	app := fiber.New()
	app.Use(apphttp.SessionMiddleware(testSessionConfig(), sessions, &fakeUsers{role: role}))
	app.Get("/protected", apphttp.RequireSession(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	app.Get("/admin", apphttp.RequireSession(), apphttp.RequireRole("superadmin"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app, sessions
}

// sessionCookie abre una sesión en el almacén y devuelve la cookie firmada.
func sessionCookie(t *testing.T, sessions *fakeSessions) *http.Cookie {
	t.Helper()
	sid := sessions.Create(testUserID)
	signed, err := token.Generate(testSecret, sid, testIssuer, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: signed}
}

func doRequest(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSession_SinCookie_Retorna401(t *testing.T) {
	app, _ := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSession_CookieValida_CargaLocals(t *testing.T) {
	app, sessions := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", sessionCookie(t, sessions))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), testUserID)
	assert.Contains(t, string(body), "admin")
}

func TestRequireSession_CookieFirmadaConOtroSecret_Retorna401(t *testing.T) {
	app, sessions := buildTestApp("admin")
	sid := sessions.Create(testUserID)
	firmada, err := token.Generate("otro-secret-completamente-distinto", sid, testIssuer, time.Hour)
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", &http.Cookie{Name: testCookieName, Value: firmada})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cookie firmada con otro secret no debe abrir sesión")
}

func TestRequireSession_SesionDestruida_Retorna401(t *testing.T) {
	app, sessions := buildTestApp("admin")
	cookie := sessionCookie(t, sessions)

	// Logout del lado servidor: la cookie sigue siendo válida criptográficamente
	// pero el almacén ya no la reconoce.
	sessions.Destroy("sesion-de-" + testUserID)

	resp := doRequest(t, app, "/protected", cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_SuperadminAccede(t *testing.T) {
	app, sessions := buildTestApp("superadmin")
	resp := doRequest(t, app, "/admin", sessionCookie(t, sessions))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_AdminBloqueadoEnRutaSuperadmin(t *testing.T) {
	app, sessions := buildTestApp("admin")
	resp := doRequest(t, app, "/admin", sessionCookie(t, sessions))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}
