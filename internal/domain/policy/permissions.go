// Package policy reúne las reglas declarativas del flujo de trabajo: qué rol puede
// ejecutar cada operación y qué estados son válidos para cada entidad.
package policy

import "github.com/jhoicas/Proyectos-api/internal/domain/entity"

// Resource entidad sobre la que se autoriza una acción.
type Resource string

// Action operación sobre un recurso.
type Action string

const (
	ResourceProject         Resource = "project"
	ResourceTask            Resource = "task"
	ResourcePurchaseRequest Resource = "purchase_request"
	ResourceSupplier        Resource = "supplier"
	ResourceInvoice         Resource = "invoice"
	ResourceComment         Resource = "comment"
	ResourceEmployee        Resource = "employee"
)

const (
	ActionCreate     Action = "create"
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionTransition Action = "transition"
	ActionProgress   Action = "progress"
	ActionSetStatus  Action = "set_status"
	ActionMarkPaid   Action = "mark_paid"
	ActionList       Action = "list"
	ActionListAll    Action = "list_all"
	ActionDownload   Action = "download"
)

// Permission fila de la tabla de permisos. Roles nil significa "cualquier usuario autenticado".
type Permission struct {
	Resource Resource
	Action   Action
	Roles    []entity.Role
}

func roles(r ...entity.Role) []entity.Role { return r }

// Permissions tabla única de autorización del sistema.
var Permissions = []Permission{
	{ResourceProject, ActionCreate, roles(entity.RoleSales, entity.RoleMaster)},
	{ResourceProject, ActionApprove, roles(entity.RoleManagement, entity.RoleMaster)},
	{ResourceProject, ActionReject, roles(entity.RoleManagement, entity.RoleMaster)},
	{ResourceProject, ActionTransition, nil},
	{ResourceProject, ActionProgress, nil},

	{ResourceTask, ActionCreate, nil},
	{ResourceTask, ActionSetStatus, nil},

	{ResourcePurchaseRequest, ActionCreate, roles(entity.RoleOperations, entity.RoleMaster, entity.RoleProjects)},
	{ResourcePurchaseRequest, ActionApprove, roles(entity.RoleProcurement, entity.RoleMaster)},
	{ResourcePurchaseRequest, ActionReject, roles(entity.RoleProcurement, entity.RoleMaster)},
	// list: ver solicitudes en el dashboard; list_all: ver también las de otros usuarios.
	{ResourcePurchaseRequest, ActionList, roles(entity.RoleProcurement, entity.RoleMaster, entity.RoleOperations)},
	{ResourcePurchaseRequest, ActionListAll, roles(entity.RoleProcurement, entity.RoleMaster)},

	{ResourceSupplier, ActionCreate, roles(entity.RoleProcurement, entity.RoleMaster)},
	{ResourceSupplier, ActionList, roles(entity.RoleProcurement, entity.RoleMaster, entity.RoleOperations, entity.RoleProjects)},

	{ResourceInvoice, ActionCreate, roles(entity.RoleFinance, entity.RoleMaster)},
	{ResourceInvoice, ActionMarkPaid, roles(entity.RoleFinance, entity.RoleMaster)},
	{ResourceInvoice, ActionList, roles(entity.RoleFinance, entity.RoleMaster)},
	{ResourceInvoice, ActionDownload, roles(entity.RoleFinance, entity.RoleMaster)},

	{ResourceComment, ActionCreate, nil},

	{ResourceEmployee, ActionCreate, roles(entity.RoleHR, entity.RoleMaster)},
	{ResourceEmployee, ActionList, roles(entity.RoleHR, entity.RoleMaster)},
}

// RolesFor expande una fila: nil se traduce a todos los roles.
func (p Permission) RolesFor() []entity.Role {
	if p.Roles == nil {
		return entity.Roles()
	}
	return p.Roles
}
