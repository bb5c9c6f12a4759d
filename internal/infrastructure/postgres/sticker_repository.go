package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

var _ repository.StickerCatalogRepository = (*StickerCatalogRepo)(nil)

// StickerCatalogRepo implementación del puerto StickerCatalogRepository sobre PostgreSQL.
type StickerCatalogRepo struct {
	q Querier
}

// NewStickerCatalogRepository construye el adaptador para catálogos de stickers. Pasar pool o tx (Querier).
func NewStickerCatalogRepository(q Querier) *StickerCatalogRepo {
	return &StickerCatalogRepo{q: q}
}

// Create persiste un nuevo catálogo de stickers.
func (r *StickerCatalogRepo) Create(ctx context.Context, catalog *entity.StickerCatalog) error {
	query := `
		INSERT INTO sticker_catalogs (id, title, description, image_url)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, catalog.ID, catalog.Title, catalog.Description, catalog.ImageURL)
	if err != nil {
		return fmt.Errorf("insert sticker catalog: %w", err)
	}
	return nil
}

// GetByID obtiene un catálogo por ID, o nil si no existe.
func (r *StickerCatalogRepo) GetByID(ctx context.Context, id string) (*entity.StickerCatalog, error) {
	var c entity.StickerCatalog
	err := r.q.QueryRow(ctx, `SELECT id, title, description, image_url FROM sticker_catalogs WHERE id = $1`, id).
		Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sticker catalog: %w", err)
	}
	return &c, nil
}

// List devuelve todos los catálogos de stickers.
func (r *StickerCatalogRepo) List(ctx context.Context) ([]*entity.StickerCatalog, error) {
	rows, err := r.q.Query(ctx, `SELECT id, title, description, image_url FROM sticker_catalogs ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sticker catalogs: %w", err)
	}
	defer rows.Close()

	var catalogs []*entity.StickerCatalog
	for rows.Next() {
		var c entity.StickerCatalog
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL); err != nil {
			return nil, err
		}
		catalogs = append(catalogs, &c)
	}
	return catalogs, rows.Err()
}

// Update persiste los campos editables de un catálogo.
func (r *StickerCatalogRepo) Update(ctx context.Context, catalog *entity.StickerCatalog) error {
	query := `
		UPDATE sticker_catalogs
		SET title = $2, description = $3, image_url = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, catalog.ID, catalog.Title, catalog.Description, catalog.ImageURL)
	if err != nil {
		return fmt.Errorf("update sticker catalog: %w", err)
	}
	return nil
}

// Delete elimina un catálogo de stickers. Devuelve false si no existía.
func (r *StickerCatalogRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sticker_catalogs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sticker catalog: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
