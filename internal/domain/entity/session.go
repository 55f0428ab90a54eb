package entity

// Session contexto autenticado que acompaña a cada operación del flujo de trabajo.
// Se construye en el login y viaja explícitamente (nunca como estado global).
type Session struct {
	UserID     string
	Username   string
	Role       Role
	Department string
}

// Authenticated informa si la sesión tiene identidad.
func (s Session) Authenticated() bool {
	return s.UserID != "" && s.Role != ""
}
