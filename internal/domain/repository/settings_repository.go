package repository

import (
	"context"

	"github.com/sred/vitrine-api/internal/domain/entity"
)

// SettingsRepository define el puerto de persistencia para Settings (fila única).
type SettingsRepository interface {
	// Get devuelve la fila de configuración, creándola con valores vacíos si no existe.
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) error
}
