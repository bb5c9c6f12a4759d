package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sred/vitrine-api/internal/application/auth"
	"github.com/sred/vitrine-api/internal/application/usecase"
	"github.com/sred/vitrine-api/internal/infrastructure/email"
	infrapdf "github.com/sred/vitrine-api/internal/infrastructure/pdf"
	"github.com/sred/vitrine-api/internal/infrastructure/postgres"
	"github.com/sred/vitrine-api/internal/infrastructure/session"
	httpRouter "github.com/sred/vitrine-api/internal/interfaces/http"
	"github.com/sred/vitrine-api/pkg/config"
	"github.com/sred/vitrine-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de la base de datos")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	promoRepo := postgres.NewPromoRepository(pool)
	stickerRepo := postgres.NewStickerCatalogRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	if err := postgres.SeedCatalog(ctx, productRepo); err != nil {
		log.Fatal().Err(err).Msg("seed del catálogo")
	}

	sessions := session.NewStore(
		time.Duration(cfg.Session.MaxAgeDays)*24*time.Hour,
		time.Duration(cfg.Session.SweepPeriodHours)*time.Hour,
	)
	defer sessions.Close()

	mailer := email.NewMailer(cfg.SMTP, cfg.App.Name, cfg.App.URL)
	authUC := auth.NewAuthUseCase(userRepo, txRunner, mailer, auth.Config{
		ProtectedUsername: cfg.Admin.ProtectedUsername,
		ResetCodeTTL:      time.Duration(cfg.Reset.CodeTTLMinutes) * time.Minute,
	}, log.Zerolog())

	productUC := usecase.NewProductUseCase(productRepo)
	promoUC := usecase.NewPromoUseCase(promoRepo)
	stickerUC := usecase.NewStickerUseCase(stickerRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	messageUC := usecase.NewMessageUseCase(messageRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo, infrapdf.NewCatalogGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		PromoUC:    promoUC,
		StickerUC:  stickerUC,
		SettingsUC: settingsUC,
		MessageUC:  messageUC,
		CatalogUC:  catalogUC,
		Sessions:   sessions,
		Session: httpRouter.SessionConfig{
			Secret:     cfg.Session.Secret,
			CookieName: cfg.Session.CookieName,
			Issuer:     cfg.App.Name,
			MaxAgeSecs: cfg.Session.MaxAgeDays * 24 * 3600,
			Secure:     cfg.App.Env == "production",
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
