package entity

import "time"

// Message representa un mensaje del formulario de contacto.
// SelectedItems es el snapshot serializado de la selección del visitante
// (opaco para el servidor: se guarda y se muestra tal cual).
type Message struct {
	ID            string
	Name          string
	Phone         string
	Body          string
	SelectedItems string
	Read          bool
	CreatedAt     time.Time
}
