package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// UserTxRunner ejecuta fn dentro de una transacción sobre la tabla de usuarios.
type UserTxRunner interface {
	RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error
}

// DevAccount cuenta de arranque para desarrollo.
type DevAccount struct {
	Username   string
	Password   string
	Role       entity.Role
	Department string
}

// DevAccounts SOLO DESARROLLO: credenciales de marcador de posición, una por rol.
// No deben existir en una base de datos de producción.
var DevAccounts = []DevAccount{
	{"master", "admin123", entity.RoleMaster, "الإدارة العامة"},
	{"sales", "sales123", entity.RoleSales, "المبيعات"},
	{"manager", "manager123", entity.RoleManagement, "الإدارة العليا"},
	{"projects", "projects123", entity.RoleProjects, "إدارة المشاريع"},
	{"operations", "operations123", entity.RoleOperations, "التشغيل"},
	{"procurement", "procurement123", entity.RoleProcurement, "المشتريات"},
	{"finance", "finance123", entity.RoleFinance, "المالية"},
	{"hr", "hr123", entity.RoleHR, "الموارد البشرية"},
}

// SeedDevUsers SOLO DESARROLLO: crea DevAccounts si el almacén de identidades está vacío.
// Todo o nada dentro de una transacción. Devuelve true si creó las cuentas.
func SeedDevUsers(ctx context.Context, tx UserTxRunner, hasher *PasswordHasher, log zerolog.Logger) (bool, error) {
	created := false
	err := tx.RunUsers(ctx, func(users repository.UserRepository) error {
		n, err := users.Count(ctx)
		if err != nil {
			return fmt.Errorf("contar usuarios: %w", err)
		}
		if n > 0 {
			return nil
		}
		now := time.Now()
		for _, acc := range DevAccounts {
			hash, err := hasher.Hash(acc.Password)
			if err != nil {
				return err
			}
			u := &entity.User{
				ID:           uuid.New().String(),
				Username:     acc.Username,
				PasswordHash: hash,
				Role:         acc.Role,
				Department:   acc.Department,
				FullName:     acc.Username,
				IsActive:     true,
				CreatedAt:    now,
			}
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("crear %s: %w", acc.Username, err)
			}
		}
		created = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed dev: %w", err)
	}
	if created {
		log.Warn().Int("accounts", len(DevAccounts)).Msg("cuentas de desarrollo creadas con contraseñas por defecto")
	}
	return created, nil
}
