package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

var _ repository.PromoRepository = (*PromoRepo)(nil)

const promoColumns = `id, product_name, category, description, image_url, created_at`

// PromoRepo implementación del puerto PromoRepository sobre PostgreSQL.
type PromoRepo struct {
	q Querier
}

// NewPromoRepository construye el adaptador de persistencia para promociones. Pasar pool o tx (Querier).
func NewPromoRepository(q Querier) *PromoRepo {
	return &PromoRepo{q: q}
}

// Create persiste una nueva promoción.
func (r *PromoRepo) Create(ctx context.Context, promo *entity.Promo) error {
	query := `
		INSERT INTO promos (id, product_name, category, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		promo.ID, promo.ProductName, promo.Category, promo.Description, promo.ImageURL, promo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promo: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID, o nil si no existe.
func (r *PromoRepo) GetByID(ctx context.Context, id string) (*entity.Promo, error) {
	p, err := scanPromo(r.q.QueryRow(ctx, `SELECT `+promoColumns+` FROM promos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promo: %w", err)
	}
	return p, nil
}

// List devuelve las promociones de la más reciente a la más antigua.
func (r *PromoRepo) List(ctx context.Context) ([]*entity.Promo, error) {
	rows, err := r.q.Query(ctx, `SELECT `+promoColumns+` FROM promos ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list promos: %w", err)
	}
	defer rows.Close()

	var promos []*entity.Promo
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, err
		}
		promos = append(promos, p)
	}
	return promos, rows.Err()
}

// Update persiste los campos editables de una promoción.
func (r *PromoRepo) Update(ctx context.Context, promo *entity.Promo) error {
	query := `
		UPDATE promos
		SET product_name = $2, category = $3, description = $4, image_url = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		promo.ID, promo.ProductName, promo.Category, promo.Description, promo.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update promo: %w", err)
	}
	return nil
}

// Delete elimina una promoción. Devuelve false si no existía.
func (r *PromoRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM promos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete promo: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanPromo(row pgx.Row) (*entity.Promo, error) {
	var p entity.Promo
	err := row.Scan(&p.ID, &p.ProductName, &p.Category, &p.Description, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
