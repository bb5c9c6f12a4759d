package repository

import (
	"context"

	"github.com/sred/vitrine-api/internal/domain/entity"
)

// StickerCatalogRepository define el puerto de persistencia para StickerCatalog (DIP).
type StickerCatalogRepository interface {
	Create(ctx context.Context, catalog *entity.StickerCatalog) error
	GetByID(ctx context.Context, id string) (*entity.StickerCatalog, error)
	List(ctx context.Context) ([]*entity.StickerCatalog, error)
	Update(ctx context.Context, catalog *entity.StickerCatalog) error
	Delete(ctx context.Context, id string) (bool, error)
}
