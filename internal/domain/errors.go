package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnauthenticated    = errors.New("sesión requerida")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidStatus      = errors.New("estado no válido")
	ErrInvalidTransition  = errors.New("transición no permitida desde el estado actual")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
)
