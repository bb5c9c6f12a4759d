package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository (fila única) sobre PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración del sitio. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la fila de configuración, creándola con valores vacíos si no existe.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	var s entity.Settings
	err := r.q.QueryRow(ctx, `
		SELECT id, instagram_reel, facebook_reel, tiktok_reel, stickers_image_url, updated_at
		FROM settings LIMIT 1`).
		Scan(&s.ID, &s.InstagramReel, &s.FacebookReel, &s.TiktokReel, &s.StickersImageURL, &s.UpdatedAt)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	s = entity.Settings{ID: uuid.New().String(), UpdatedAt: time.Now()}
	_, err = r.q.Exec(ctx, `
		INSERT INTO settings (id, instagram_reel, facebook_reel, tiktok_reel, stickers_image_url, updated_at)
		VALUES ($1, '', '', '', '', $2)`, s.ID, s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("init settings: %w", err)
	}
	return &s, nil
}

// Update persiste la configuración completa.
func (r *SettingsRepo) Update(ctx context.Context, settings *entity.Settings) error {
	query := `
		UPDATE settings
		SET instagram_reel = $2, facebook_reel = $3, tiktok_reel = $4, stickers_image_url = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		settings.ID, settings.InstagramReel, settings.FacebookReel, settings.TiktokReel,
		settings.StickersImageURL, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
