package dto

// CreateStickerCatalogRequest entrada para crear un catálogo de stickers.
type CreateStickerCatalogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateStickerCatalogRequest actualización parcial (nil = no tocar el campo).
type UpdateStickerCatalogRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// StickerCatalogResponse salida de un catálogo de stickers.
type StickerCatalogResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
