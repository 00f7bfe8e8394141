package dto

import "github.com/shopspring/decimal"

// ReturnableItem artículo de la factura original listo para editar la
// cantidad a devolver.
type ReturnableItem struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Quantity      int64           `json:"quantity"` // cantidad original facturada
	UnitPrice     decimal.Decimal `json:"unit_price"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// ReturnLookupResponse respuesta de GET /api/returns/lookup: la factura
// encontrada con sus artículos originales.
type ReturnLookupResponse struct {
	InvoiceID     string           `json:"invoice_id"`
	InvoiceNumber string           `json:"invoice_number"`
	CustomerName  string           `json:"customer_name,omitempty"`
	CreatedAt     string           `json:"created_at"`
	Items         []ReturnableItem `json:"items"`
}

// ReturnItemRequest artículo con la cantidad a devolver y el descuento a
// aplicar al reembolso.
type ReturnItemRequest struct {
	Code          string          `json:"code"`
	ReturnQty     int64           `json:"return_qty"`
	DiscountType  string          `json:"discount_type,omitempty"`
	DiscountValue decimal.Decimal `json:"discount_value,omitempty"`
	Reason        string          `json:"reason,omitempty"`
}

// ProcessReturnRequest body para POST /api/returns.
type ProcessReturnRequest struct {
	InvoiceNumber string              `json:"invoice_number"`
	ReturnDate    string              `json:"return_date,omitempty"` // YYYY-MM-DD, default hoy
	Reason        string              `json:"reason"`                // motivo principal, obligatorio
	Notes         string              `json:"notes,omitempty"`
	Action        string              `json:"action,omitempty"` // default refund
	Items         []ReturnItemRequest `json:"items"`
}

// ReturnItemResponse artículo devuelto en respuestas.
type ReturnItemResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	OriginalQty   int64           `json:"original_qty"`
	ReturnedQty   int64           `json:"returned_qty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Reason        string          `json:"reason,omitempty"`
	Refund        decimal.Decimal `json:"refund"`
}

// ReturnResponse devolución procesada.
type ReturnResponse struct {
	ID            string               `json:"id"`
	InvoiceNumber string               `json:"invoice_number"`
	ReturnDate    string               `json:"return_date"`
	Reason        string               `json:"reason"`
	Notes         string               `json:"notes,omitempty"`
	Action        string               `json:"action"`
	TotalUnits    int64                `json:"total_units"`
	TotalRefund   decimal.Decimal      `json:"total_refund"`
	Status        string               `json:"status"`
	ProcessedAt   string               `json:"processed_at"`
	Items         []ReturnItemResponse `json:"items"`
}
