package entity

// StickerCatalog representa un catálogo de stickers mostrado en la página pública.
type StickerCatalog struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
}
