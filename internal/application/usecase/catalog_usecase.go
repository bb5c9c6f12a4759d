package usecase

import (
	"context"

	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

// CatalogPDFGenerator genera el documento PDF del catálogo a partir de los
// productos agrupados. El orden de los grupos es el orden de presentación.
type CatalogPDFGenerator interface {
	Generate(groups []CatalogGroup) ([]byte, error)
}

// CatalogGroup una categoría del catálogo con sus productos.
type CatalogGroup struct {
	Category string
	Products []*entity.Product
}

// CatalogUseCase exportación del catálogo completo en PDF para imprimir.
type CatalogUseCase struct {
	products repository.ProductRepository
	pdf      CatalogPDFGenerator
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, pdf CatalogPDFGenerator) *CatalogUseCase {
	return &CatalogUseCase{products: products, pdf: pdf}
}

// ExportPDF agrupa los productos por categoría, en el orden canónico de
// entity.ProductCategories y con las categorías desconocidas al final, y
// delega el documento al generador. Las categorías vacías no aparecen.
func (uc *CatalogUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(GroupByCategory(products))
}

// GroupByCategory ordena los productos en grupos por categoría.
func GroupByCategory(products []*entity.Product) []CatalogGroup {
	byCategory := make(map[string][]*entity.Product)
	var extra []string
	for _, p := range products {
		if _, seen := byCategory[p.Category]; !seen && !isKnownCategory(p.Category) {
			extra = append(extra, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
	groups := make([]CatalogGroup, 0, len(byCategory))
	for _, category := range entity.ProductCategories {
		if items, ok := byCategory[category]; ok {
			groups = append(groups, CatalogGroup{Category: category, Products: items})
		}
	}
	for _, category := range extra {
		groups = append(groups, CatalogGroup{Category: category, Products: byCategory[category]})
	}
	return groups
}

func isKnownCategory(category string) bool {
	for _, c := range entity.ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
