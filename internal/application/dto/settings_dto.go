package dto

import "time"

// UpdateSettingsRequest actualización parcial de la configuración del sitio.
type UpdateSettingsRequest struct {
	InstagramReel    *string `json:"instagramReel"`
	FacebookReel     *string `json:"facebookReel"`
	TiktokReel       *string `json:"tiktokReel"`
	StickersImageURL *string `json:"stickersImageUrl"`
}

// SettingsResponse salida de la configuración del sitio.
type SettingsResponse struct {
	ID               string    `json:"id"`
	InstagramReel    string    `json:"instagramReel"`
	FacebookReel     string    `json:"facebookReel"`
	TiktokReel       string    `json:"tiktokReel"`
	StickersImageURL string    `json:"stickersImageUrl"`
	UpdatedAt        time.Time `json:"updated_at"`
}
