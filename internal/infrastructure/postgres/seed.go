package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

// seedProducts catálogo inicial que se inserta la primera vez que la tabla de
// productos está vacía, para que la vitrina nunca arranque en blanco.
var seedProducts = []entity.Product{
	{
		Name:        "Bouquet de Roses Éternelles - Noir",
		Description: "Un élégant bouquet de roses roses présenté dans un étui noir sophistiqué 'Best Wishes'. Parfait pour les cadeaux et la décoration haut de gamme.",
		ImageURL:    "/attached_assets/qsdf_1768570430833.jpeg",
		Category:    "Cadeaux & Décor",
	},
	{
		Name:        "Bouquet de Roses Passion - Rose",
		Description: "Roses rouges vibrantes dans un étui rose délicat. Une alliance parfaite entre passion et douceur pour vos événements spéciaux.",
		ImageURL:    "/attached_assets/qsdqsd_1768570430833.jpeg",
		Category:    "Cadeaux & Décor",
	},
	{
		Name:        "Bouquet Lavande Sérénité - Rose",
		Description: "Délicates roses lilas dans un étui rose, apportant une touche de calme et d'élégance à tout espace.",
		ImageURL:    "/attached_assets/qsdqsdqds_1768570430834.jpeg",
		Category:    "Cadeaux & Décor",
	},
	{
		Name:        "Bouquet Azur Éclatant - Rose",
		Description: "Roses bleues uniques dans un étui rose contrasté, pour une décoration audacieuse et mémorable.",
		ImageURL:    "/attached_assets/WhatsApp_Image_2026-01-16_at_2.27.45_PM_1768570430834.jpeg",
		Category:    "Cadeaux & Décor",
	},
	{
		Name:        "Boîtes en Carton Sur Mesure",
		Description: "Solutions d'emballage robustes et personnalisables pour tous vos besoins logistiques.",
		ImageURL:    "https://images.unsplash.com/photo-1589793462417-10afb737d926?auto=format&fit=crop&q=80&w=800",
		Category:    "Emballage Industriel",
	},
}

// SeedCatalog inserta el catálogo inicial si la tabla de productos está vacía.
// Idempotente: con cualquier producto existente no hace nada.
func SeedCatalog(ctx context.Context, products repository.ProductRepository) error {
	total, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	now := time.Now()
	for _, seed := range seedProducts {
		p := seed
		p.ID = uuid.New().String()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := products.Create(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
