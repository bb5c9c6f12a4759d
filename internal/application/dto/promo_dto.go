package dto

import "time"

// CreatePromoRequest entrada para publicar una promoción. Solo la imagen es obligatoria.
type CreatePromoRequest struct {
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// UpdatePromoRequest actualización parcial (nil = no tocar el campo).
type UpdatePromoRequest struct {
	ProductName *string `json:"productName"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// PromoResponse salida de una promoción.
type PromoResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"created_at"`
}
