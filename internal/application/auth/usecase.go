// Package auth implementa los casos de uso de autenticación y gestión de
// cuentas de administración: login por identificador o email, registro en modo
// bootstrap, creación/eliminación de cuentas con reglas de protección y el
// flujo de reinicio de contraseña por código.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
	"github.com/sred/vitrine-api/pkg/password"
)

// TxRunner ejecuta un callback con el repositorio de usuarios atado a una
// transacción. Las reglas con chequeo-y-escritura (bootstrap, duplicados,
// último superadmin) corren dentro para no depender de carreras entre requests.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository) error) error
}

// Mailer es el canal de notificación por correo. SendResetCode es parte dura
// del flujo de reinicio; SendWelcome es best-effort.
type Mailer interface {
	SendResetCode(to, code string) error
	SendWelcome(to, username string) error
}

// Config reglas parametrizables del caso de uso.
type Config struct {
	ProtectedUsername string        // cuenta que nunca puede eliminarse
	ResetCodeTTL      time.Duration // ventana de validez del código de reinicio
}

// AuthUseCase casos de uso de autenticación y cuentas.
type AuthUseCase struct {
	users  repository.UserRepository
	tx     TxRunner
	mailer Mailer
	cfg    Config
	log    zerolog.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, tx TxRunner, mailer Mailer, cfg Config, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, tx: tx, mailer: mailer, cfg: cfg, log: log}
}

// Login resuelve el identificador primero como username y después como email,
// y verifica la contraseña. Usuario desconocido y contraseña incorrecta fallan
// con el mismo error: la respuesta no permite enumerar cuentas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.users.GetByEmail(ctx, in.Username)
		if err != nil {
			return nil, err
		}
	}
	if user == nil || !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

// GetUser devuelve el usuario sanitizado por id, o nil si no existe.
func (uc *AuthUseCase) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Register crea la primera cuenta del sistema con rol superadmin. En cuanto
// existe cualquier usuario, el registro público queda cerrado y las cuentas
// siguientes solo se crean vía CreateUser (superadmin).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	var created *entity.User
	err = uc.tx.Run(ctx, func(users repository.UserRepository) error {
		total, err := users.Count(ctx)
		if err != nil {
			return err
		}
		if total > 0 {
			return domain.ErrRegistrationClosed
		}
		if err := checkDuplicates(ctx, users, in.Username, in.Email); err != nil {
			return err
		}
		now := time.Now()
		created = &entity.User{
			ID:           uuid.New().String(),
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         entity.RoleSuperadmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return users.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	uc.sendWelcome(created)
	return toUserResponse(created), nil
}

// CreateUser crea una cuenta de administración (endpoint reservado a
// superadmin). Los chequeos de duplicado sí revelan existencia: el llamador ya
// es un administrador privilegiado.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	if role != entity.RoleAdmin && role != entity.RoleSuperadmin {
		return nil, domain.ErrInvalidInput
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	var created *entity.User
	err = uc.tx.Run(ctx, func(users repository.UserRepository) error {
		if err := checkDuplicates(ctx, users, in.Username, in.Email); err != nil {
			return err
		}
		now := time.Now()
		created = &entity.User{
			ID:           uuid.New().String(),
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return users.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	uc.sendWelcome(created)
	return toUserResponse(created), nil
}

// ListUsers devuelve todas las cuentas sanitizadas (solo superadmin).
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// DeleteUser elimina una cuenta aplicando las reglas de protección: nadie se
// elimina a sí mismo, la cuenta protegida es intocable y siempre debe quedar
// al menos un superadmin. Todo dentro de una transacción.
func (uc *AuthUseCase) DeleteUser(ctx context.Context, currentUserID, targetID string) error {
	return uc.tx.Run(ctx, func(users repository.UserRepository) error {
		if targetID == currentUserID {
			return domain.ErrSelfDelete
		}
		target, err := users.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if target == nil {
			return domain.ErrUserNotFound
		}
		if uc.cfg.ProtectedUsername != "" && target.Username == uc.cfg.ProtectedUsername {
			return domain.ErrProtectedAccount
		}
		if target.Role == entity.RoleSuperadmin {
			all, err := users.List(ctx)
			if err != nil {
				return err
			}
			superadmins := 0
			for _, u := range all {
				if u.Role == entity.RoleSuperadmin {
					superadmins++
				}
			}
			if superadmins <= 1 {
				return domain.ErrLastSuperadmin
			}
		}
		found, err := users.Delete(ctx, targetID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

// ChangePassword verifica la contraseña actual del usuario autenticado y
// persiste el hash de la nueva.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !password.Verify(in.OldPassword, user.PasswordHash) {
		return domain.ErrWrongOldPassword
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(ctx, userID, hash)
}

// sendWelcome dispara el correo de bienvenida en segundo plano: un fallo del
// canal no hace fallar la creación de la cuenta, solo se registra.
func (uc *AuthUseCase) sendWelcome(user *entity.User) {
	go func() {
		if err := uc.mailer.SendWelcome(user.Email, user.Username); err != nil {
			uc.log.Error().Err(err).Str("email", user.Email).Msg("envío de email de bienvenida")
		}
	}()
}

func checkDuplicates(ctx context.Context, users repository.UserRepository, username, email string) error {
	existing, err := users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameAlreadyExists
	}
	existing, err = users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
