package entity

import "time"

// Categorías del catálogo público (trilingüe: francés/árabe).
var ProductCategories = []string{
	"Naissance",
	"Mariage",
	"Anniversaire",
	"Soutenance",
	"العمرة",
	"Emballage",
	"Patisserie",
	"Cadeaux & Décor",
	"Nouveautés",
	"Ramadan",
	"Saint Valentin",
}

// Product representa un producto del catálogo de la vitrina.
type Product struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
