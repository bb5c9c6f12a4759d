package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

// PromoUseCase casos de uso CRUD para promociones. Solo la imagen es obligatoria.
type PromoUseCase struct {
	repo repository.PromoRepository
}

// NewPromoUseCase construye el caso de uso.
func NewPromoUseCase(repo repository.PromoRepository) *PromoUseCase {
	return &PromoUseCase{repo: repo}
}

// Create publica una promoción nueva.
func (uc *PromoUseCase) Create(ctx context.Context, in dto.CreatePromoRequest) (*dto.PromoResponse, error) {
	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, domain.ErrInvalidInput
	}
	promo := &entity.Promo{
		ID:          uuid.New().String(),
		ProductName: in.ProductName,
		Category:    in.Category,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return toPromoResponse(promo), nil
}

// List devuelve las promociones de la más reciente a la más antigua.
func (uc *PromoUseCase) List(ctx context.Context) ([]dto.PromoResponse, error) {
	promos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromoResponse, 0, len(promos))
	for _, p := range promos {
		out = append(out, *toPromoResponse(p))
	}
	return out, nil
}

// Update aplica una actualización parcial: los campos nil no se tocan.
func (uc *PromoUseCase) Update(ctx context.Context, id string, in dto.UpdatePromoRequest) (*dto.PromoResponse, error) {
	promo, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, nil
	}
	if in.ProductName != nil {
		promo.ProductName = *in.ProductName
	}
	if in.Category != nil {
		promo.Category = *in.Category
	}
	if in.Description != nil {
		promo.Description = *in.Description
	}
	if in.ImageURL != nil {
		if strings.TrimSpace(*in.ImageURL) == "" {
			return nil, domain.ErrInvalidInput
		}
		promo.ImageURL = *in.ImageURL
	}
	if err := uc.repo.Update(ctx, promo); err != nil {
		return nil, err
	}
	return toPromoResponse(promo), nil
}

// Delete elimina una promoción por ID.
func (uc *PromoUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func toPromoResponse(p *entity.Promo) *dto.PromoResponse {
	return &dto.PromoResponse{
		ID:          p.ID,
		ProductName: p.ProductName,
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}
