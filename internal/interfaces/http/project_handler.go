package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
)

// ProjectHandler ciclo de vida de proyectos, tareas y comentarios.
type ProjectHandler struct {
	projects *workflow.ProjectUseCase
	tasks    *workflow.TaskUseCase
	comments *workflow.CommentUseCase
	errs     errorResponder
	rv       *requestValidator
}

// NewProjectHandler construye el handler.
func NewProjectHandler(
	projects *workflow.ProjectUseCase,
	tasks *workflow.TaskUseCase,
	comments *workflow.CommentUseCase,
	errs errorResponder,
	rv *requestValidator,
) *ProjectHandler {
	return &ProjectHandler{projects: projects, tasks: tasks, comments: comments, errs: errs, rv: rv}
}

// Create godoc
// @Summary      Crear proyecto (sales, master)
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "Datos del proyecto"
// @Success      201   {object}  dto.ActionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, err := h.projects.Create(c.UserContext(), GetSession(c), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResponse{Message: tr(c, msgProjectCreated), Data: out})
}

// Approve godoc
// @Summary      Aprobar proyecto (management, master)
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ActionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/approve [post]
func (h *ProjectHandler) Approve(c *fiber.Ctx) error {
	out, err := h.projects.Approve(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ActionResponse{Message: tr(c, msgProjectApproved, out.Name), Data: out})
}

// Reject godoc
// @Summary      Rechazar proyecto (management, master)
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ActionResponse
// @Router       /api/projects/{id}/reject [post]
func (h *ProjectHandler) Reject(c *fiber.Ctx) error {
	out, err := h.projects.Reject(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ActionResponse{Message: tr(c, msgProjectRejected, out.Name), Data: out})
}

// Transition godoc
// @Summary      Cambiar estado de ejecución
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID del proyecto"
// @Param        status  path  string  true  "in_progress | on_hold | completed | cancelled"
// @Success      200     {object}  dto.ActionResponse
// @Failure      422     {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/status/{status} [put]
func (h *ProjectHandler) Transition(c *fiber.Ctx) error {
	status := c.Params("status")
	out, err := h.projects.Transition(c.UserContext(), GetSession(c), c.Params("id"), status)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ActionResponse{Message: tr(c, msgProjectStatus, tr(c, "status."+status)), Data: out})
}

// UpdateProgress fija el porcentaje de avance (0..100).
func (h *ProjectHandler) UpdateProgress(c *fiber.Ctx) error {
	var in dto.UpdateProgressRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, err := h.projects.UpdateProgress(c.UserContext(), GetSession(c), c.Params("id"), in.ProgressPercent)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ActionResponse{Message: tr(c, msgProgress), Data: out})
}

// AddTask godoc
// @Summary      Agregar tarea al proyecto
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del proyecto"
// @Param        body  body  dto.CreateTaskRequest   true  "Datos de la tarea"
// @Success      201   {object}  dto.ActionResponse
// @Router       /api/projects/{id}/tasks [post]
func (h *ProjectHandler) AddTask(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, err := h.tasks.Add(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResponse{Message: tr(c, msgTaskCreated), Data: out})
}

// SetTaskStatus cambia el estado de una tarea.
func (h *ProjectHandler) SetTaskStatus(c *fiber.Ctx) error {
	out, err := h.tasks.SetStatus(c.UserContext(), GetSession(c), c.Params("id"), c.Params("status"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ActionResponse{Message: tr(c, msgTaskStatus), Data: out})
}

// AddComment agrega un comentario. Texto en blanco responde 200 sin crear nada.
func (h *ProjectHandler) AddComment(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, err := h.comments.Add(c.UserContext(), GetSession(c), c.Params("id"), in.CommentText)
	if err != nil {
		return h.errs.write(c, err)
	}
	if out == nil {
		return c.JSON(dto.ActionResponse{})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResponse{Message: tr(c, msgCommentAdded), Data: out})
}
