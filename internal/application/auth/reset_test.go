package auth_test

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/pkg/password"
)

func TestRequestReset_EmailDesconocidoSilencioso(t *testing.T) {
	uc, _, mailer := newTestUseCase(t)

	err := uc.RequestReset(context.Background(), "nadie@sred.ma")

	require.NoError(t, err)
	_, sent := mailer.lastReset()
	assert.False(t, sent, "no debe enviarse ningún correo para un email desconocido")
}

func TestRequestReset_EmiteCodigoHexDe8YLoPersiste(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)
	u := seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)

	require.NoError(t, uc.RequestReset(context.Background(), "amine@sred.ma"))

	mail, sent := mailer.lastReset()
	require.True(t, sent)
	assert.Equal(t, "amine@sred.ma", mail.To)
	assert.Len(t, mail.Code, 8)
	_, err := hex.DecodeString(mail.Code)
	assert.NoError(t, err, "el código debe ser hexadecimal")

	stored := repo.mustGet(u.ID)
	require.True(t, stored.HasPendingReset())
	assert.Equal(t, mail.Code, *stored.ResetToken)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *stored.ResetTokenExpires, 5*time.Second)
}

func TestRequestReset_FalloDelCorreoNoPersisteElToken(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)
	u := seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)
	mailer.ResetErr = errors.New("smtp caído")

	err := uc.RequestReset(context.Background(), "amine@sred.ma")

	assert.ErrorIs(t, err, domain.ErrMailDelivery)
	assert.False(t, repo.mustGet(u.ID).HasPendingReset())
}

func TestVerifyCode_CaseInsensitiveYSinEspacios(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)
	seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)
	require.NoError(t, uc.RequestReset(context.Background(), "amine@sred.ma"))
	mail, _ := mailer.lastReset()

	alterado := "  " + strings.ToUpper(mail.Code[:4]) + " " + mail.Code[4:] + "\t"
	assert.NoError(t, uc.VerifyCode(context.Background(), "amine@sred.ma", alterado))
}

func TestVerifyCode_NoConsumeElCodigo(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)
	seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)
	require.NoError(t, uc.RequestReset(context.Background(), "amine@sred.ma"))
	mail, _ := mailer.lastReset()

	require.NoError(t, uc.VerifyCode(context.Background(), "amine@sred.ma", mail.Code))
	assert.NoError(t, uc.VerifyCode(context.Background(), "amine@sred.ma", mail.Code))
}

func TestVerifyCode_MismoErrorParaTodosLosFallos(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)
	u := seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)
	require.NoError(t, uc.RequestReset(context.Background(), "amine@sred.ma"))
	mail, _ := mailer.lastReset()

	// Email desconocido.
	assert.ErrorIs(t, uc.VerifyCode(context.Background(), "nadie@sred.ma", mail.Code), domain.ErrInvalidResetCode)
	// Código que no coincide.
	assert.ErrorIs(t, uc.VerifyCode(context.Background(), "amine@sred.ma", "deadbeef"), domain.ErrInvalidResetCode)
	// Código expirado.
	pasado := time.Now().Add(-time.Minute)
	require.NoError(t, repo.SetResetToken(context.Background(), u.ID, &mail.Code, &pasado))
	assert.ErrorIs(t, uc.VerifyCode(context.Background(), "amine@sred.ma", mail.Code), domain.ErrInvalidResetCode)
}

func TestCommitReset_ValidaLaFormaAntesDeBuscar(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)
	repo.Lookups = 0

	errCodigo := uc.CommitReset(context.Background(), "amine@sred.ma", "abc", "nueva123")
	errPassword := uc.CommitReset(context.Background(), "amine@sred.ma", "deadbeef", "corta")

	assert.ErrorIs(t, errCodigo, domain.ErrInvalidInput)
	assert.ErrorIs(t, errPassword, domain.ErrInvalidInput)
	assert.Zero(t, repo.Lookups, "la validación de forma no debe tocar el repositorio")
}

func TestCommitReset_CambiaLaContraseñaYLimpiaElToken(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)
	u := seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)
	require.NoError(t, uc.RequestReset(context.Background(), "amine@sred.ma"))
	mail, _ := mailer.lastReset()

	require.NoError(t, uc.CommitReset(context.Background(), "amine@sred.ma", mail.Code, "nueva123"))

	stored := repo.mustGet(u.ID)
	assert.True(t, password.Verify("nueva123", stored.PasswordHash))
	assert.Nil(t, stored.ResetToken)
	assert.Nil(t, stored.ResetTokenExpires)
	// El código queda inutilizable después del commit.
	assert.ErrorIs(t, uc.VerifyCode(context.Background(), "amine@sred.ma", mail.Code), domain.ErrInvalidResetCode)
}

func TestCommitReset_CodigoEquivocadoNoCambiaNada(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	u := seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)
	require.NoError(t, uc.RequestReset(context.Background(), "amine@sred.ma"))
	antes := repo.mustGet(u.ID).PasswordHash

	err := uc.CommitReset(context.Background(), "amine@sred.ma", "deadbeef", "nueva123")

	assert.ErrorIs(t, err, domain.ErrInvalidResetCode)
	assert.Equal(t, antes, repo.mustGet(u.ID).PasswordHash)
}
