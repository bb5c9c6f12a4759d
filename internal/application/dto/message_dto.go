package dto

import "time"

// CreateMessageRequest entrada del formulario de contacto. SelectedItems es el
// snapshot serializado de la selección del visitante, opaco para el servidor.
type CreateMessageRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Message       string `json:"message"`
	SelectedItems string `json:"selectedItems"`
}

// MessageResponse salida de un mensaje de la bandeja.
type MessageResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	SelectedItems string    `json:"selectedItems"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}
