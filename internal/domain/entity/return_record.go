package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
)

// Estados y acciones de devolución.
const (
	ReturnStatusProcessed = "processed"
	ReturnActionRefund    = "refund"
)

// ReturnRecord representa una devolución procesada contra una factura.
// InvoiceNumber es una referencia por número legible, no una llave foránea:
// la búsqueda de la factura y la escritura de la devolución son dos
// operaciones independientes, no transaccionales.
type ReturnRecord struct {
	ID            string
	InvoiceNumber string
	ReturnDate    time.Time
	Reason        string // motivo principal
	Notes         string // texto libre
	Action        string // refund
	TotalRefund   decimal.Decimal
	Status        string
	ProcessedAt   time.Time
}

// ReturnItem es un artículo devuelto. Solo se persisten artículos con
// cantidad devuelta mayor a cero.
type ReturnItem struct {
	ID          string
	ReturnID    string
	ProductCode string
	ProductName string
	OriginalQty int64
	ReturnedQty int64
	UnitPrice   decimal.Decimal
	Discount    pos.Discount
	Reason      string // motivo por artículo (opcional)
	Refund      decimal.Decimal
}
