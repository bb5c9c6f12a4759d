package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/application/usecase"
	"github.com/sred/vitrine-api/internal/domain/entity"
)

// fakeSettingsRepo implementación en memoria del puerto SettingsRepository.
// Igual que la fila real en Postgres, Get crea la configuración vacía la
// primera vez que se consulta.
type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *entity.Settings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		r.settings = &entity.Settings{ID: "settings-1", UpdatedAt: time.Now()}
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.settings = &cp
	return nil
}

func TestSettingsGet_CreaFilaVaciaSiNoExiste(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	out, err := uc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out.InstagramReel)
	assert.Empty(t, out.StickersImageURL)
}

func TestSettingsUpdate_ParcialNoTocaCamposNil(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := usecase.NewSettingsUseCase(repo)

	insta := "https://instagram.com/reel/abc"
	_, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{InstagramReel: &insta})
	require.NoError(t, err)

	tiktok := "https://tiktok.com/@sred/video/1"
	out, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{TiktokReel: &tiktok})
	require.NoError(t, err)

	assert.Equal(t, insta, out.InstagramReel, "el reel de Instagram no debe perderse")
	assert.Equal(t, tiktok, out.TiktokReel)
	assert.Empty(t, out.FacebookReel)
}

func TestSettingsUpdate_PermiteVaciarUnCampo(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := usecase.NewSettingsUseCase(repo)

	url := "https://cdn.sred.ma/stickers.webp"
	_, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{StickersImageURL: &url})
	require.NoError(t, err)

	empty := ""
	out, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{StickersImageURL: &empty})
	require.NoError(t, err)
	assert.Empty(t, out.StickersImageURL)
}
