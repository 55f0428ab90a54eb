// Package authz aplica la tabla de permisos de policy mediante un enforcer casbin.
package authz

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/policy"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// Authorizer responde si un rol puede ejecutar una acción sobre un recurso.
// Las políticas se cargan una sola vez; después el enforcer solo se lee.
type Authorizer struct {
	enforcer *casbin.Enforcer
}

// New construye el autorizador con la tabla policy.Permissions.
func New() (*Authorizer, error) {
	return NewWithTable(policy.Permissions)
}

// NewWithTable construye el autorizador con una tabla arbitraria.
func NewWithTable(table []policy.Permission) (*Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz: modelo: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authz: enforcer: %w", err)
	}
	for _, p := range table {
		for _, r := range p.RolesFor() {
			if _, err := e.AddPolicy(string(r), string(p.Resource), string(p.Action)); err != nil {
				return nil, fmt.Errorf("authz: política %s/%s/%s: %w", r, p.Resource, p.Action, err)
			}
		}
	}
	return &Authorizer{enforcer: e}, nil
}

// MustNew como New pero entra en pánico; la tabla es estática.
func MustNew() *Authorizer {
	a, err := New()
	if err != nil {
		panic(err)
	}
	return a
}

// Allowed informa si role puede ejecutar action sobre resource.
func (a *Authorizer) Allowed(role entity.Role, resource policy.Resource, action policy.Action) bool {
	ok, err := a.enforcer.Enforce(string(role), string(resource), string(action))
	return err == nil && ok
}

// DeniedError permiso denegado para una acción concreta. Envuelve domain.ErrForbidden.
type DeniedError struct {
	Resource policy.Resource
	Action   policy.Action
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("%s: %s/%s", domain.ErrForbidden, e.Resource, e.Action)
}

func (e *DeniedError) Unwrap() error { return domain.ErrForbidden }

// Check valida la sesión y el permiso.
// Devuelve domain.ErrUnauthenticated sin sesión y *DeniedError sin permiso.
func (a *Authorizer) Check(s entity.Session, resource policy.Resource, action policy.Action) error {
	if !s.Authenticated() {
		return domain.ErrUnauthenticated
	}
	if !a.Allowed(s.Role, resource, action) {
		return &DeniedError{Resource: resource, Action: action}
	}
	return nil
}
