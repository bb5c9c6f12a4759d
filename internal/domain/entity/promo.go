package entity

import "time"

// Promo representa una promoción publicada en la vitrina.
// ProductName, Category y Description son opcionales; solo la imagen es obligatoria.
type Promo struct {
	ID          string
	ProductName string
	Category    string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}
