package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/views"
)

// DashboardHandler vistas de lectura por rol.
type DashboardHandler struct {
	uc   *views.ViewUseCase
	errs errorResponder
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *views.ViewUseCase, errs errorResponder) *DashboardHandler {
	return &DashboardHandler{uc: uc, errs: errs}
}

// Dashboard godoc
// @Summary      Dashboard filtrado por rol
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), GetSession(c))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Contadores globales de proyectos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetSession(c))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// ProjectDetail godoc
// @Summary      Detalle de proyecto
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *DashboardHandler) ProjectDetail(c *fiber.Ctx) error {
	out, err := h.uc.ProjectDetail(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// EligibleProjects proyectos para los selectores de compra (purpose=purchase) o factura (purpose=invoice).
func (h *DashboardHandler) EligibleProjects(c *fiber.Ctx) error {
	out, err := h.uc.EligibleProjects(c.UserContext(), GetSession(c), views.Purpose(c.Query("purpose")))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
