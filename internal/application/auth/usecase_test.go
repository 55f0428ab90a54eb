package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
)

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "proyectos-test"}

func seededAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	created, err := auth.SeedDevUsers(context.Background(), store, hasher, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, created)
	uc, err := auth.NewAuthUseCase(store.Users(), hasher, testJWT, zerolog.Nop())
	require.NoError(t, err)
	return uc, store
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := seededAuth(t)

	out, session, err := uc.Login(context.Background(), dto.LoginRequest{Username: "sales", Password: "sales123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleSales, session.Role)
	assert.Equal(t, "sales", session.Username)
	assert.Equal(t, "المبيعات", session.Department)
	assert.Equal(t, session.UserID, out.Session.UserID)

	fromToken, err := uc.Authenticate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, session, fromToken)
}

func TestLogin_ErroresIndistinguibles(t *testing.T) {
	uc, _ := seededAuth(t)
	ctx := context.Background()

	_, _, errWrongPass := uc.Login(ctx, dto.LoginRequest{Username: "sales", Password: "nope"})
	_, _, errUnknown := uc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "sales123"})

	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	store := memory.NewStore()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), &entity.User{
		ID: "u-1", Username: "former", PasswordHash: hash, Role: entity.RoleSales, IsActive: false,
	}))
	uc, err := auth.NewAuthUseCase(store.Users(), hasher, testJWT, zerolog.Nop())
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), dto.LoginRequest{Username: "former", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	uc, _ := seededAuth(t)
	_, err := uc.Authenticate("")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = uc.Authenticate("token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLogout_LimpiaSesion(t *testing.T) {
	uc, _ := seededAuth(t)
	s := uc.Logout(entity.Session{UserID: "u1", Username: "x", Role: entity.RoleHR})
	assert.False(t, s.Authenticated())
	assert.False(t, uc.Logout(entity.Session{}).Authenticated())
}

func TestSeedDevUsers_SoloSiVacio(t *testing.T) {
	_, store := seededAuth(t)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	created, err := auth.SeedDevUsers(context.Background(), store, hasher, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, created)

	n, err := store.Users().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(auth.DevAccounts), n)

	manager, err := store.Users().GetByUsername(context.Background(), "manager")
	require.NoError(t, err)
	require.NotNil(t, manager)
	assert.Equal(t, entity.RoleManagement, manager.Role)
}

type failingTx struct{ store *memory.Store }

func (f failingTx) RunUsers(ctx context.Context, fn func(repository.UserRepository) error) error {
	return f.store.RunUsers(ctx, func(users repository.UserRepository) error {
		if err := fn(users); err != nil {
			return err
		}
		return errors.New("commit fallido")
	})
}

func TestSeedDevUsers_TodoONada(t *testing.T) {
	store := memory.NewStore()
	_, err := auth.SeedDevUsers(context.Background(), failingTx{store}, auth.NewPasswordHasher(bcrypt.MinCost), zerolog.Nop())
	require.Error(t, err)

	n, err := store.Users().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "un fallo en la transacción no debe dejar cuentas a medias")
}

func TestNewAuthUseCase_HasherInvalido(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MaxCost + 1)

	uc, err := auth.NewAuthUseCase(memory.NewStore().Users(), hasher, testJWT, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, uc)
}
