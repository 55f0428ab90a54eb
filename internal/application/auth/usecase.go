package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
	"github.com/jhoicas/Proyectos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase compuerta de sesión: login, validación del token y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   *PasswordHasher
	jwtCfg   JWTConfig
	log      zerolog.Logger
	// dummyHash se compara cuando el usuario no existe para igualar el coste del login fallido.
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth. Falla si el hasher no puede
// producir el hash de comparación para usuarios inexistentes.
func NewAuthUseCase(userRepo repository.UserRepository, hasher *PasswordHasher, jwtCfg JWTConfig, log zerolog.Logger) (*AuthUseCase, error) {
	dummy, err := hasher.Hash("invalid-password-placeholder")
	if err != nil {
		return nil, fmt.Errorf("auth: hash de comparación: %w", err)
	}
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, jwtCfg: jwtCfg, log: log, dummyHash: dummy}, nil
}

// Login verifica usuario/contraseña y establece la sesión.
// Usuario inexistente, contraseña errónea o cuenta inactiva devuelven el mismo
// domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, entity.Session, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, entity.Session{}, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		uc.hasher.Matches(uc.dummyHash, in.Password)
		uc.log.Info().Str("username", in.Username).Msg("login rechazado")
		return nil, entity.Session{}, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Matches(user.PasswordHash, in.Password) || !user.IsActive {
		uc.log.Info().Str("username", in.Username).Msg("login rechazado")
		return nil, entity.Session{}, domain.ErrInvalidCredentials
	}

	session := entity.Session{
		UserID:     user.ID,
		Username:   user.Username,
		Role:       user.Role,
		Department: user.Department,
	}
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:     session.UserID,
		Username:   session.Username,
		Role:       string(session.Role),
		Department: session.Department,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, entity.Session{}, fmt.Errorf("login: token: %w", err)
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("sesión iniciada")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Session:   dto.ToSessionResponse(session),
	}, session, nil
}

// Authenticate reconstruye la sesión a partir del token.
// Cualquier token inválido, expirado o con rol desconocido es domain.ErrUnauthenticated.
func (uc *AuthUseCase) Authenticate(token string) (entity.Session, error) {
	if token == "" {
		return entity.Session{}, domain.ErrUnauthenticated
	}
	id, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return entity.Session{}, domain.ErrUnauthenticated
	}
	s := entity.Session{
		UserID:     id.UserID,
		Username:   id.Username,
		Role:       entity.Role(id.Role),
		Department: id.Department,
	}
	if !s.Authenticated() || !s.Role.Valid() {
		return entity.Session{}, domain.ErrUnauthenticated
	}
	return s, nil
}

// Logout descarta la sesión sin condiciones y devuelve el contexto vacío.
func (uc *AuthUseCase) Logout(s entity.Session) entity.Session {
	if s.Authenticated() {
		uc.log.Info().Str("user_id", s.UserID).Msg("sesión cerrada")
	}
	return entity.Session{}
}
