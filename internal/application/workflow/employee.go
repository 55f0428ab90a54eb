package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/policy"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// EmployeeUseCase altas de empleados (usuarios) para recursos humanos.
type EmployeeUseCase struct {
	base
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(users repository.UserRepository, hasher *auth.PasswordHasher, opts Options) *EmployeeUseCase {
	return &EmployeeUseCase{base: newBase(opts, "workflow.employee"), users: users, hasher: hasher}
}

// Add crea un usuario activo. Username duplicado devuelve domain.ErrDuplicate.
func (uc *EmployeeUseCase) Add(ctx context.Context, s entity.Session, in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if err := uc.authorize(s, policy.ResourceEmployee, policy.ActionCreate); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(in.Username)
	role := entity.Role(in.Role)
	if username == "" || in.Password == "" || !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Department:   in.Department,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		IsActive:     true,
		CreatedAt:    uc.now(),
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	uc.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Str("actor", s.UserID).Msg("empleado registrado")
	out := dto.ToUserResponse(u)
	return &out, nil
}

// List devuelve los empleados activos.
func (uc *EmployeeUseCase) List(ctx context.Context, s entity.Session) ([]dto.UserResponse, error) {
	if err := uc.authorize(s, policy.ResourceEmployee, policy.ActionList); err != nil {
		return nil, err
	}
	users, err := uc.users.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}
