package dto

// ErrorResponse cuerpo de error HTTP. Message va localizado según Accept-Language.
type ErrorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Redirect string            `json:"redirect,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"` // campo -> regla incumplida
}

// MessageResponse confirmación localizada de una operación.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActionResponse confirmación localizada más el recurso afectado.
type ActionResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
