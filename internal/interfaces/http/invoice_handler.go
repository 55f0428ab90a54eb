package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
)

// InvoiceHandler facturas de proyecto.
type InvoiceHandler struct {
	uc   *workflow.InvoiceUseCase
	errs errorResponder
	rv   *requestValidator
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *workflow.InvoiceUseCase, errs errorResponder, rv *requestValidator) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, errs: errs, rv: rv}
}

// Add godoc
// @Summary      Emitir factura (finance, master)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Factura"
// @Success      201   {object}  dto.ActionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if ok, err := parseAndValidate(c, h.rv, &in); !ok {
		return err
	}
	out, err := h.uc.Add(c.UserContext(), GetSession(c), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ActionResponse{Message: tr(c, msgInvoiceCreated), Data: out})
}

// MarkPaid godoc
// @Summary      Marcar factura como pagada
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.ActionResponse
// @Router       /api/invoices/{id}/paid [post]
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ActionResponse{Message: tr(c, msgInvoicePaid), Data: out})
}

// PDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.DownloadPDF(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.errs.write(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}
