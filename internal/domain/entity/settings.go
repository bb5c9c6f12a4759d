package entity

import "time"

// Settings configuración editable del sitio (fila única, se crea con valores vacíos si no existe).
type Settings struct {
	ID               string
	InstagramReel    string
	FacebookReel     string
	TiktokReel       string
	StickersImageURL string
	UpdatedAt        time.Time
}
