package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea enviada al finalizar la factura. El precio y el
// nombre se toman del catálogo en el servidor; el cliente solo manda código,
// cantidad y descuento.
type InvoiceItemRequest struct {
	Code          string          `json:"code"`
	Quantity      int64           `json:"quantity"`
	DiscountType  string          `json:"discount_type,omitempty"`  // percentage | fixed (default percentage)
	DiscountValue decimal.Decimal `json:"discount_value,omitempty"` // default 0
}

// FinalizeInvoiceRequest body para POST /api/invoices.
type FinalizeInvoiceRequest struct {
	CustomerName  string               `json:"customer_name,omitempty"`
	CustomerPhone string               `json:"customer_phone,omitempty"`
	PaymentMethod string               `json:"payment_method"` // cash | card | transfer
	Items         []InvoiceItemRequest `json:"items"`
}

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Total         decimal.Decimal `json:"total"`
}

// InvoiceResponse factura con detalle.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	CustomerName  string                `json:"customer_name,omitempty"`
	CustomerPhone string                `json:"customer_phone,omitempty"`
	PaymentMethod string                `json:"payment_method"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Total         decimal.Decimal       `json:"total"`
	Status        string                `json:"status"`
	CreatedAt     string                `json:"created_at"` // RFC 3339
	Items         []InvoiceItemResponse `json:"items"`
}

// ListInvoicesQuery parámetros de GET /api/invoices.
// Search y las fechas se aplican después del fetch, sobre la página cruda.
type ListInvoicesQuery struct {
	Cursor   string `query:"cursor"`
	Search   string `query:"search"`
	DateFrom string `query:"date_from"` // YYYY-MM-DD
	DateTo   string `query:"date_to"`   // YYYY-MM-DD, inclusivo el día completo
}

// InvoiceSummary fila del listado.
type InvoiceSummary struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	CustomerName  string          `json:"customer_name,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

// ListInvoicesResponse página del listado. HasMore y NextCursor se derivan
// del conteo CRUDO de la página (20), no del filtrado: un filtro puede dejar
// la página vacía y aun así haber más registros por pedir.
type ListInvoicesResponse struct {
	Invoices   []InvoiceSummary `json:"invoices"`
	HasMore    bool             `json:"has_more"`
	NextCursor string           `json:"next_cursor,omitempty"`
}
