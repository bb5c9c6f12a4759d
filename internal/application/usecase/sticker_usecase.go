package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

// StickerUseCase casos de uso CRUD para los catálogos de stickers.
type StickerUseCase struct {
	repo repository.StickerCatalogRepository
}

// NewStickerUseCase construye el caso de uso.
func NewStickerUseCase(repo repository.StickerCatalogRepository) *StickerUseCase {
	return &StickerUseCase{repo: repo}
}

// Create crea un catálogo de stickers. Título e imagen son obligatorios.
func (uc *StickerUseCase) Create(ctx context.Context, in dto.CreateStickerCatalogRequest) (*dto.StickerCatalogResponse, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ImageURL) == "" {
		return nil, domain.ErrInvalidInput
	}
	catalog := &entity.StickerCatalog{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := uc.repo.Create(ctx, catalog); err != nil {
		return nil, err
	}
	return toStickerCatalogResponse(catalog), nil
}

// List devuelve todos los catálogos de stickers.
func (uc *StickerUseCase) List(ctx context.Context) ([]dto.StickerCatalogResponse, error) {
	catalogs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StickerCatalogResponse, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, *toStickerCatalogResponse(c))
	}
	return out, nil
}

// Update aplica una actualización parcial: los campos nil no se tocan.
func (uc *StickerUseCase) Update(ctx context.Context, id string, in dto.UpdateStickerCatalogRequest) (*dto.StickerCatalogResponse, error) {
	catalog, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, nil
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.ErrInvalidInput
		}
		catalog.Title = *in.Title
	}
	if in.Description != nil {
		catalog.Description = *in.Description
	}
	if in.ImageURL != nil {
		if strings.TrimSpace(*in.ImageURL) == "" {
			return nil, domain.ErrInvalidInput
		}
		catalog.ImageURL = *in.ImageURL
	}
	if err := uc.repo.Update(ctx, catalog); err != nil {
		return nil, err
	}
	return toStickerCatalogResponse(catalog), nil
}

// Delete elimina un catálogo de stickers por ID.
func (uc *StickerUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func toStickerCatalogResponse(c *entity.StickerCatalog) *dto.StickerCatalogResponse {
	return &dto.StickerCatalogResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
	}
}
