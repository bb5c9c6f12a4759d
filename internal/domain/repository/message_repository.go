package repository

import (
	"context"

	"github.com/sred/vitrine-api/internal/domain/entity"
)

// MessageRepository define el puerto de persistencia para Message (bandeja de contacto).
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// List devuelve los mensajes del más reciente al más antiguo.
	List(ctx context.Context, limit, offset int) ([]*entity.Message, error)
	MarkRead(ctx context.Context, id string, read bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
