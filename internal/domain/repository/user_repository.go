package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (almacén de identidades).
// Las búsquedas devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// ListActive devuelve los usuarios activos ordenados por username.
	ListActive(ctx context.Context) ([]*entity.User, error)
	// GetByIDs devuelve los usuarios existentes de la lista, indexados por ID.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
	Count(ctx context.Context) (int, error)
}
