package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// User representa una cuenta de administración del sitio.
// ResetToken y ResetTokenExpires van siempre en pareja: ambos nil o ambos con valor.
type User struct {
	ID                string
	Username          string // único
	Email             string // único
	PasswordHash      string // registro scrypt "<dk hex>.<salt hex>", nunca plano después de persistir
	Role              string // admin, superadmin
	ResetToken        *string
	ResetTokenExpires *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasPendingReset indica si hay un código de reinicio emitido (expirado o no).
func (u *User) HasPendingReset() bool {
	return u.ResetToken != nil && u.ResetTokenExpires != nil
}
