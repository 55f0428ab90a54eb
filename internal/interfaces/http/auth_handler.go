package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	errs         errorResponder
	rv           *requestValidator
	cookieSecure bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, errs errorResponder, rv *requestValidator, cookieSecure bool) *AuthHandler {
	return &AuthHandler{uc: uc, errs: errs, rv: rv, cookieSecure: cookieSecure}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.ActionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, session, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.ActionResponse{Message: tr(c, msgWelcome, session.Username), Data: out})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var current entity.Session
	if token := tokenFromRequest(c); token != "" {
		current, _ = h.uc.Authenticate(token)
	}
	h.uc.Logout(current)
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.MessageResponse{Message: tr(c, msgLoggedOut)})
}

// Me devuelve la sesión autenticada.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.ToSessionResponse(GetSession(c)))
}
