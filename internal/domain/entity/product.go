package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es la cantidad disponible para venta; se descuenta al finalizar cada factura.
type Product struct {
	ID          string
	SKU         string // código único escaneable
	Barcode     string // código de barras alterno (opcional)
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
