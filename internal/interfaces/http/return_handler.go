package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-pos/internal/application/billing"
	"github.com/tu-usuario/caja-pos/internal/application/dto"
	"github.com/tu-usuario/caja-pos/internal/application/returns"
	"github.com/tu-usuario/caja-pos/internal/domain"
)

// ReturnHandler maneja devoluciones y reembolsos (protegido).
type ReturnHandler struct {
	uc      *returns.ReturnUseCase
	receipt *billing.ReceiptUseCase
}

// NewReturnHandler construye el handler de devoluciones.
func NewReturnHandler(uc *returns.ReturnUseCase, receipt *billing.ReceiptUseCase) *ReturnHandler {
	return &ReturnHandler{uc: uc, receipt: receipt}
}

// Lookup busca la factura original por número exacto y devuelve sus
// artículos listos para editar cantidades a devolver.
// GET /api/returns/lookup?invoice_number=
func (h *ReturnHandler) Lookup(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Query("invoice_number"))
	out, err := h.uc.LookupInvoice(c.Context(), number)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice_number es requerido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create procesa una devolución contra una factura existente.
// POST /api/returns
func (h *ReturnHandler) Create(c *fiber.Ctx) error {
	var in dto.ProcessReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ProcessReturn(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "motivo, artículos y cantidades a devolver son requeridos y deben respetar lo facturado"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una devolución procesada.
// GET /api/returns/:id
func (h *ReturnHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.GetReturn(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "devolución no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReceiptHTML devuelve el comprobante imprimible de la devolución.
// GET /api/returns/:id/receipt
func (h *ReturnHandler) ReceiptHTML(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	html, err := h.receipt.ReturnReceiptHTML(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "devolución no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}
