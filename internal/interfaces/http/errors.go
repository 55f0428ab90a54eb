package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Proyectos-api/internal/application/authz"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
)

// LoginPath destino al que el cliente debe ir cuando no hay sesión.
const LoginPath = "/login"

type errorMapping struct {
	sentinel error
	status   int
	code     string
	key      string
}

var errorMappings = []errorMapping{
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHENTICATED", msgUnauthenticated},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", msgInvalidCredentials},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", msgForbidden},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", msgNotFound},
	{domain.ErrInvalidStatus, fiber.StatusUnprocessableEntity, "INVALID_STATUS", msgInvalidStatus},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT", msgInvalidInput},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", msgDuplicate},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION", msgInvalidTransition},
}

// errorResponder traduce errores de dominio a respuestas HTTP localizadas.
type errorResponder struct {
	log zerolog.Logger
}

func (r errorResponder) write(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			key := m.key
			var denied *authz.DeniedError
			if m.sentinel == domain.ErrForbidden && errors.As(err, &denied) {
				key = forbiddenKey(denied)
			}
			body := dto.ErrorResponse{Code: m.code, Message: tr(c, key)}
			if m.sentinel == domain.ErrUnauthenticated {
				body.Redirect = LoginPath
			}
			return c.Status(m.status).JSON(body)
		}
	}
	r.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: tr(c, msgInternal)})
}

// forbiddenKey mensaje propio de la acción denegada; si no hay, el genérico.
func forbiddenKey(d *authz.DeniedError) string {
	key := "forbidden." + string(d.Resource) + "." + string(d.Action)
	if _, ok := messagesAR[key]; ok {
		return key
	}
	return msgForbidden
}
