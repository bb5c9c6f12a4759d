package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sred/vitrine-api/internal/application/auth"
	"github.com/sred/vitrine-api/internal/application/usecase"
	"github.com/sred/vitrine-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	PromoUC    *usecase.PromoUseCase
	StickerUC  *usecase.StickerUseCase
	SettingsUC *usecase.SettingsUseCase
	MessageUC  *usecase.MessageUseCase
	CatalogUC  *usecase.CatalogUseCase
	Sessions   SessionStore
	Session    SessionConfig
}

// Router registra las rutas de la API. La cookie de sesión se resuelve una vez
// para todo /api; cada grupo decide con RequireSession/RequireRole.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.Session, deps.Sessions, deps.AuthUC))

	// Auth y sesión (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Session)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/user", authHandler.CurrentUser)

	// Reinicio de contraseña (público)
	resetHandler := NewResetHandler(deps.AuthUC)
	api.Post("/forgot-password", resetHandler.ForgotPassword)
	api.Post("/verify-code", resetHandler.VerifyCode)
	api.Post("/reset-password", resetHandler.ResetPassword)

	// Cuenta autenticada y gestión de usuarios (superadmin)
	userHandler := NewUserHandler(deps.AuthUC)
	api.Post("/user/change-password", RequireSession(), userHandler.ChangePassword)
	adminUsers := api.Group("/admin/users", RequireSession(), RequireRole(entity.RoleSuperadmin))
	adminUsers.Get("/", userHandler.List)
	adminUsers.Post("/", userHandler.Create)
	adminUsers.Delete("/:id", userHandler.Delete)

	// Productos: lectura pública, escritura con sesión
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Post("/products", RequireSession(), productHandler.Create)
	api.Patch("/products/:id", RequireSession(), productHandler.Update)
	api.Delete("/products/:id", RequireSession(), productHandler.Delete)

	// Promociones
	promoHandler := NewPromoHandler(deps.PromoUC)
	api.Get("/promos", promoHandler.List)
	api.Post("/promos", RequireSession(), promoHandler.Create)
	api.Patch("/promos/:id", RequireSession(), promoHandler.Update)
	api.Delete("/promos/:id", RequireSession(), promoHandler.Delete)

	// Catálogos de stickers
	stickerHandler := NewStickerHandler(deps.StickerUC)
	api.Get("/stickers", stickerHandler.List)
	api.Post("/stickers", RequireSession(), stickerHandler.Create)
	api.Patch("/stickers/:id", RequireSession(), stickerHandler.Update)
	api.Delete("/stickers/:id", RequireSession(), stickerHandler.Delete)

	// Configuración del sitio
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", settingsHandler.Get)
	api.Patch("/settings", RequireSession(), settingsHandler.Update)

	// Bandeja de mensajes: creación pública, gestión con sesión
	messageHandler := NewMessageHandler(deps.MessageUC)
	api.Post("/messages", messageHandler.Create)
	api.Get("/messages", RequireSession(), messageHandler.List)
	api.Patch("/messages/:id/read", RequireSession(), messageHandler.MarkRead)
	api.Delete("/messages/:id", RequireSession(), messageHandler.Delete)

	// Exportación del catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog/pdf", catalogHandler.ExportPDF)
}
