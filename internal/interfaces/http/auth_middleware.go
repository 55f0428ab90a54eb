package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// Locals key para la sesión en Fiber.
const LocalSession = "session"

// SessionCookie nombre de la cookie con el token de sesión.
const SessionCookie = "session_token"

// SessionAuthenticator reconstruye la sesión desde un token. Lo implementa *auth.AuthUseCase.
type SessionAuthenticator interface {
	Authenticate(token string) (entity.Session, error)
}

// AuthMiddleware exige sesión: acepta Bearer Token o la cookie session_token.
// Sin sesión válida responde 401 UNAUTHENTICATED con redirect a /login.
func AuthMiddleware(authn SessionAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return unauthenticated(c)
		}
		s, err := authn.Authenticate(token)
		if err != nil {
			return unauthenticated(c)
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (vacía si no pasó por AuthMiddleware).
func GetSession(c *fiber.Ctx) entity.Session {
	s, _ := c.Locals(LocalSession).(entity.Session)
	return s
}

// tokenFromRequest el header Authorization tiene prioridad sobre la cookie.
func tokenFromRequest(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	return c.Cookies(SessionCookie)
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:     "UNAUTHENTICATED",
		Message:  tr(c, msgUnauthenticated),
		Redirect: LoginPath,
	})
}
