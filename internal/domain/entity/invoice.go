package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
)

// Estados de factura.
const (
	InvoiceStatusCompleted = "completed"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// Invoice representa la cabecera de una factura de venta finalizada.
// Inmutable después de creada, salvo eliminación.
type Invoice struct {
	ID            string
	Number        string // INV-{AAMM}-{NNNN}
	CustomerName  string // opcional
	CustomerPhone string // opcional
	PaymentMethod string // cash, card, transfer
	Subtotal      decimal.Decimal
	Total         decimal.Decimal
	Status        string
	CreatedAt     time.Time
}

// InvoiceItem es una línea de la factura con los datos del producto
// congelados al momento de la venta (nombre y precio pueden cambiar después
// en el catálogo sin afectar facturas ya emitidas).
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductCode string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Discount    pos.Discount
	Total       decimal.Decimal
}
