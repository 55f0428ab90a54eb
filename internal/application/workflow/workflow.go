// Package workflow implementa el motor de aprobación y estados: proyectos, tareas,
// compras, facturas, comentarios y empleados. Cada operación recibe la sesión
// explícita y consulta la tabla de permisos antes de tocar el almacén.
package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Proyectos-api/internal/application/authz"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/policy"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// Options dependencias comunes a todos los casos de uso del flujo.
type Options struct {
	Authz  *authz.Authorizer
	Guards policy.Guards
	Log    zerolog.Logger
	// Clock permite fijar la hora en pruebas; nil usa time.Now.
	Clock func() time.Time
}

type base struct {
	authz  *authz.Authorizer
	guards policy.Guards
	log    zerolog.Logger
	now    func() time.Time
}

func newBase(opts Options, component string) base {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return base{
		authz:  opts.Authz,
		guards: opts.Guards,
		log:    opts.Log.With().Str("component", component).Logger(),
		now:    now,
	}
}

// authorize aplica la tabla de permisos y deja rastro de los rechazos.
func (b base) authorize(s entity.Session, res policy.Resource, act policy.Action) error {
	if err := b.authz.Check(s, res, act); err != nil {
		b.log.Warn().
			Str("user_id", s.UserID).
			Str("role", string(s.Role)).
			Str("resource", string(res)).
			Str("action", string(act)).
			Err(err).
			Msg("permiso denegado")
		return err
	}
	return nil
}

func (b base) logChange(s entity.Session, kind, id, from, to string) {
	b.log.Info().
		Str("entity", kind).
		Str("id", id).
		Str("from", from).
		Str("to", to).
		Str("actor", s.UserID).
		Msg("cambio de estado")
}

// loadProject devuelve domain.ErrNotFound si el proyecto no existe.
func loadProject(ctx context.Context, repo repository.ProjectRepository, id string) (*entity.Project, error) {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener proyecto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// parseDate interpreta YYYY-MM-DD; vacío o mal formado queda nulo.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func optionalID(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
