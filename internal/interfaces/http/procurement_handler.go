package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
)

// ProcurementHandler solicitudes de compra y proveedores.
type ProcurementHandler struct {
	uc   *workflow.ProcurementUseCase
	errs errorResponder
	rv   *requestValidator
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *workflow.ProcurementUseCase, errs errorResponder, rv *requestValidator) *ProcurementHandler {
	return &ProcurementHandler{uc: uc, errs: errs, rv: rv}
}

// AddPurchaseRequest godoc
// @Summary      Crear solicitud de compra (operations, master)
// @Tags         procurement
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Solicitud"
// @Success      201   {object}  dto.ActionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-requests [post]
func (h *ProcurementHandler) AddPurchaseRequest(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, err := h.uc.AddPurchaseRequest(c.UserContext(), GetSession(c), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResponse{Message: tr(c, msgPurchaseCreated), Data: out})
}

// ApprovePurchaseRequest godoc
// @Summary      Aprobar solicitud de compra (procurement, master)
// @Tags         procurement
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ActionResponse
// @Router       /api/purchase-requests/{id}/approve [post]
func (h *ProcurementHandler) ApprovePurchaseRequest(c *fiber.Ctx) error {
	out, err := h.uc.ApprovePurchaseRequest(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ActionResponse{Message: tr(c, msgPurchaseApprove), Data: out})
}

// RejectPurchaseRequest rechaza una solicitud pendiente.
func (h *ProcurementHandler) RejectPurchaseRequest(c *fiber.Ctx) error {
	out, err := h.uc.RejectPurchaseRequest(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ActionResponse{Message: tr(c, msgPurchaseReject), Data: out})
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         procurement
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *ProcurementHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListSuppliers(c.UserContext(), GetSession(c))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// AddSupplier registra un proveedor.
func (h *ProcurementHandler) AddSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, err := h.uc.AddSupplier(c.UserContext(), GetSession(c), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResponse{Message: tr(c, msgSupplierCreated), Data: out})
}
