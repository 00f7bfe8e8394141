package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// El stock no se edita por aquí: se descuenta al facturar.
type UpdateProductRequest struct {
	Barcode     string          `json:"barcode,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
}

// LookupResponse resultado de resolver un código escaneado: los campos que
// la caja necesita para armar la línea del borrador.
type LookupResponse struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available int64           `json:"available"`
}
