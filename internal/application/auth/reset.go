package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/pkg/password"
)

// Longitudes del flujo de reinicio: código de 4 bytes aleatorios en hex
// (8 caracteres) y contraseña nueva de al menos 6 caracteres.
const (
	resetCodeLen      = 8
	minPasswordLen    = 6
	resetCodeRawBytes = 4
)

// RequestReset emite un código de reinicio para el email indicado. Si el email
// no corresponde a ninguna cuenta, retorna nil sin efecto: el llamador responde
// siempre el mismo mensaje genérico y la existencia de la cuenta no se revela.
// Un fallo del canal de correo sí es un error duro de la operación; la pareja
// (token, expiración) solo se persiste después de un envío exitoso.
func (uc *AuthUseCase) RequestReset(ctx context.Context, email string) error {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	code, err := generateResetCode()
	if err != nil {
		return err
	}
	expires := time.Now().Add(uc.cfg.ResetCodeTTL)

	if err := uc.mailer.SendResetCode(user.Email, code); err != nil {
		uc.log.Error().Err(err).Str("email", user.Email).Msg("envío del código de reinicio")
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}
	if err := uc.users.SetResetToken(ctx, user.ID, &code, &expires); err != nil {
		return err
	}
	uc.log.Info().Str("email", user.Email).Time("expires", expires).Msg("código de reinicio emitido")
	return nil
}

// VerifyCode comprueba el código contra el token almacenado: comparación
// case-insensitive con espacios eliminados. No consume el código ni muta nada;
// se puede verificar repetidamente dentro de la ventana. Email desconocido,
// código que no coincide y código expirado fallan con el mismo error.
func (uc *AuthUseCase) VerifyCode(ctx context.Context, email, code string) error {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return checkResetCode(user, code)
}

// CommitReset es el paso final: valida la forma de la entrada antes de
// cualquier búsqueda, re-verifica el código igual que VerifyCode y, si pasa,
// persiste el hash nuevo y limpia la pareja (token, expiración) en una sola
// escritura atómica.
func (uc *AuthUseCase) CommitReset(ctx context.Context, email, code, newPassword string) error {
	if len(code) != resetCodeLen {
		return domain.ErrInvalidInput
	}
	if len(newPassword) < minPasswordLen {
		return domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := checkResetCode(user, code); err != nil {
		return err
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := uc.users.ResetPassword(ctx, user.ID, hash); err != nil {
		return err
	}
	uc.log.Info().Str("email", user.Email).Msg("contraseña reiniciada")
	return nil
}

// checkResetCode aplica la comparación normalizada y la ventana de expiración.
func checkResetCode(user *entity.User, code string) error {
	if user == nil || user.ResetToken == nil {
		return domain.ErrInvalidResetCode
	}
	if normalizeCode(code) != normalizeCode(*user.ResetToken) {
		return domain.ErrInvalidResetCode
	}
	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return domain.ErrInvalidResetCode
	}
	return nil
}

// normalizeCode baja a minúsculas y elimina todo espacio en blanco.
func normalizeCode(code string) string {
	return strings.Join(strings.Fields(strings.ToLower(code)), "")
}

// generateResetCode produce 8 caracteres hex desde 4 bytes criptográficos.
func generateResetCode() (string, error) {
	raw := make([]byte, resetCodeRawBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generar código de reinicio: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
