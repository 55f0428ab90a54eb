package entity

import "time"

// Role clase de autorización fija de un usuario.
type Role string

// Roles válidos para User.
const (
	RoleMaster      Role = "master"
	RoleSales       Role = "sales"
	RoleManagement  Role = "management"
	RoleProjects    Role = "projects"
	RoleOperations  Role = "operations"
	RoleProcurement Role = "procurement"
	RoleFinance     Role = "finance"
	RoleHR          Role = "hr"
)

// Roles devuelve los ocho roles en orden estable.
func Roles() []Role {
	return []Role{
		RoleMaster, RoleSales, RoleManagement, RoleProjects,
		RoleOperations, RoleProcurement, RoleFinance, RoleHR,
	}
}

// Valid informa si r es uno de los roles conocidos.
func (r Role) Valid() bool {
	for _, known := range Roles() {
		if r == known {
			return true
		}
	}
	return false
}

// User representa un usuario (empleado) del sistema. Nunca se elimina.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash
	Role         Role
	Department   string
	FullName     string
	Email        string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
}
