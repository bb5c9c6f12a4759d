package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sred/vitrine-api/internal/application/auth"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/pkg/password"
)

func newTestUseCase(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeMailer) {
	t.Helper()
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(repo, &fakeTx{repo: repo}, mailer, auth.Config{
		ProtectedUsername: "Mohamed",
		ResetCodeTTL:      10 * time.Minute,
	}, zerolog.Nop())
	return uc, repo, mailer
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email, plain, role string) *entity.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	now := time.Now()
	u := &entity.User{
		ID:           username + "-id",
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLogin_PorUsername(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "amine", Password: "secreto1"})

	require.NoError(t, err)
	assert.Equal(t, "amine", resp.Username)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
}

func TestLogin_PorEmailComoIdentificador(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "amine@sred.ma", Password: "secreto1"})

	require.NoError(t, err)
	assert.Equal(t, "amine", resp.Username)
}

func TestLogin_MismoErrorParaCuentaDesconocidaYContraseñaIncorrecta(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)

	_, errDesconocido := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreto1"})
	_, errIncorrecta := uc.Login(context.Background(), dto.LoginRequest{Username: "amine", Password: "otra"})

	assert.ErrorIs(t, errDesconocido, domain.ErrUnauthorized)
	assert.ErrorIs(t, errIncorrecta, domain.ErrUnauthorized)
	assert.Equal(t, errDesconocido, errIncorrecta)
}

func TestRegister_PrimeraCuentaEsSuperadmin(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "fundador",
		Email:    "fundador@sred.ma",
		Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperadmin, resp.Role)

	stored := repo.mustGet(resp.ID)
	require.NotNil(t, stored)
	assert.True(t, password.Verify("secreto1", stored.PasswordHash))
	assert.Eventually(t, func() bool { return mailer.welcomeCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestRegister_CerradoEnCuantoExisteUnUsuario(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seedUser(t, repo, "fundador", "fundador@sred.ma", "secreto1", entity.RoleSuperadmin)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "otro",
		Email:    "otro@sred.ma",
		Password: "secreto1",
	})

	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestCreateUser_RolPorDefectoAdmin(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	resp, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "nuevo",
		Email:    "nuevo@sred.ma",
		Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
}

func TestCreateUser_RolInvalidoRechazado(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "nuevo",
		Email:    "nuevo@sred.ma",
		Password: "secreto1",
		Role:     "root",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_RechazaUsernameYEmailDuplicados(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)

	_, errUsername := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "amine",
		Email:    "libre@sred.ma",
		Password: "secreto1",
	})
	_, errEmail := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "libre",
		Email:    "amine@sred.ma",
		Password: "secreto1",
	})

	assert.ErrorIs(t, errUsername, domain.ErrUsernameAlreadyExists)
	assert.ErrorIs(t, errEmail, domain.ErrEmailAlreadyExists)
}

func TestDeleteUser_NadieSeEliminaASiMismo(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	u := seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleSuperadmin)

	err := uc.DeleteUser(context.Background(), u.ID, u.ID)

	assert.ErrorIs(t, err, domain.ErrSelfDelete)
}

func TestDeleteUser_CuentaProtegidaIntocable(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	caller := seedUser(t, repo, "fundador", "fundador@sred.ma", "secreto1", entity.RoleSuperadmin)
	target := seedUser(t, repo, "Mohamed", "mohamed@sred.ma", "secreto1", entity.RoleAdmin)

	err := uc.DeleteUser(context.Background(), caller.ID, target.ID)

	assert.ErrorIs(t, err, domain.ErrProtectedAccount)
	assert.NotNil(t, repo.mustGet(target.ID))
}

func TestDeleteUser_UltimoSuperadminNoSeElimina(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	caller := seedUser(t, repo, "editor", "editor@sred.ma", "secreto1", entity.RoleAdmin)
	target := seedUser(t, repo, "fundador", "fundador@sred.ma", "secreto1", entity.RoleSuperadmin)

	err := uc.DeleteUser(context.Background(), caller.ID, target.ID)

	assert.ErrorIs(t, err, domain.ErrLastSuperadmin)
}

func TestDeleteUser_SuperadminConRelevoSeElimina(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	caller := seedUser(t, repo, "fundador", "fundador@sred.ma", "secreto1", entity.RoleSuperadmin)
	target := seedUser(t, repo, "segundo", "segundo@sred.ma", "secreto1", entity.RoleSuperadmin)

	err := uc.DeleteUser(context.Background(), caller.ID, target.ID)

	require.NoError(t, err)
	assert.Nil(t, repo.mustGet(target.ID))
}

func TestDeleteUser_ObjetivoInexistente(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	caller := seedUser(t, repo, "fundador", "fundador@sred.ma", "secreto1", entity.RoleSuperadmin)

	err := uc.DeleteUser(context.Background(), caller.ID, "no-existe")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword_VerificaLaActual(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	u := seedUser(t, repo, "amine", "amine@sred.ma", "secreto1", entity.RoleAdmin)

	errMala := uc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordRequest{
		OldPassword: "equivocada",
		NewPassword: "nueva123",
	})
	assert.ErrorIs(t, errMala, domain.ErrWrongOldPassword)

	require.NoError(t, uc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordRequest{
		OldPassword: "secreto1",
		NewPassword: "nueva123",
	}))
	assert.True(t, password.Verify("nueva123", repo.mustGet(u.ID).PasswordHash))
}

func TestListUsers_DevuelveTodasLasCuentasSanitizadas(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seedUser(t, repo, "fundador", "fundador@sred.ma", "secreto1", entity.RoleSuperadmin)
	seedUser(t, repo, "editor", "editor@sred.ma", "secreto1", entity.RoleAdmin)

	list, err := uc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "fundador", list[0].Username)
	assert.Equal(t, "editor", list[1].Username)
}
