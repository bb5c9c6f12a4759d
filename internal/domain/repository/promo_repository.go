package repository

import (
	"context"

	"github.com/sred/vitrine-api/internal/domain/entity"
)

// PromoRepository define el puerto de persistencia para Promo (DIP).
type PromoRepository interface {
	Create(ctx context.Context, promo *entity.Promo) error
	GetByID(ctx context.Context, id string) (*entity.Promo, error)
	// List devuelve las promociones de la más reciente a la más antigua.
	List(ctx context.Context) ([]*entity.Promo, error)
	Update(ctx context.Context, promo *entity.Promo) error
	Delete(ctx context.Context, id string) (bool, error)
}
