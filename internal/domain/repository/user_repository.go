package repository

import (
	"context"
	"time"

	"github.com/sred/vitrine-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// SetResetToken persiste la pareja (token, expiración). Ambos nil limpia el código.
	SetResetToken(ctx context.Context, id string, token *string, expires *time.Time) error
	// ResetPassword actualiza el hash y limpia la pareja de reset en una sola sentencia.
	ResetPassword(ctx context.Context, id, passwordHash string) error
	// Delete devuelve false si el usuario no existía.
	Delete(ctx context.Context, id string) (bool, error)
}
