// Package pdf implementa la exportación del catálogo en PDF para imprimir.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del sitio + fecha de exportación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA                                                   │
//	│    Producto          Descripción                             │
//	│    Producto          Descripción                             │
//	│  CATEGORÍA                                                   │
//	│    ...                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sred/vitrine-api/internal/application/usecase"
	"github.com/sred/vitrine-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 136, Green: 14, Blue: 79}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.CatalogPDFGenerator = (*CatalogGenerator)(nil)

// CatalogGenerator implementa usecase.CatalogPDFGenerator usando Maroto v2.
type CatalogGenerator struct {
	siteName string
}

// NewCatalogGenerator construye el generador. siteName encabeza el documento.
func NewCatalogGenerator(siteName string) *CatalogGenerator {
	return &CatalogGenerator{siteName: siteName}
}

// Generate genera el PDF del catálogo y devuelve sus bytes.
func (g *CatalogGenerator) Generate(groups []usecase.CatalogGroup) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catalogue "+g.siteName, true).
		WithAuthor(g.siteName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.siteName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, group := range groups {
		m.AddRows(categoryRow(group.Category))
		for _, product := range group.Products {
			m.AddRows(productRow(product))
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del sitio (izq) y fecha de exportación (der).
func headerRow(siteName string) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(siteName, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
			text.New("Catalogue des produits", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// categoryRow: título de sección por categoría.
func categoryRow(category string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(category, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// productRow: nombre en negrita y descripción en gris.
func productRow(product *entity.Product) core.Row {
	return row.New(12).Add(
		col.New(4).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			}),
		),
		col.New(8).Add(
			text.New(product.Description, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		),
	)
}
