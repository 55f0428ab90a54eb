package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
)

// EmployeeHandler altas y listado de empleados (hr, master).
type EmployeeHandler struct {
	uc   *workflow.EmployeeUseCase
	errs errorResponder
	rv   *requestValidator
}

func NewEmployeeHandler(uc *workflow.EmployeeUseCase, errs errorResponder, rv *requestValidator) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, errs: errs, rv: rv}
}

// List godoc
// @Summary      Listar empleados activos
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetSession(c))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Dar de alta un empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Empleado"
// @Success      201   {object}  dto.ActionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, err := h.uc.Add(c.UserContext(), GetSession(c), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResponse{Message: tr(c, msgEmployeeCreated), Data: out})
}
