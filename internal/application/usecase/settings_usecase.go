package usecase

import (
	"context"
	"time"

	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la configuración del sitio (fila única).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración, creándola con valores vacíos si no existe.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Update aplica una actualización parcial: los campos nil no se tocan.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if in.InstagramReel != nil {
		settings.InstagramReel = *in.InstagramReel
	}
	if in.FacebookReel != nil {
		settings.FacebookReel = *in.FacebookReel
	}
	if in.TiktokReel != nil {
		settings.TiktokReel = *in.TiktokReel
	}
	if in.StickersImageURL != nil {
		settings.StickersImageURL = *in.StickersImageURL
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ID:               s.ID,
		InstagramReel:    s.InstagramReel,
		FacebookReel:     s.FacebookReel,
		TiktokReel:       s.TiktokReel,
		StickersImageURL: s.StickersImageURL,
		UpdatedAt:        s.UpdatedAt,
	}
}
