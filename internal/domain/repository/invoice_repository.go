package repository

import (
	"time"

	"github.com/tu-usuario/caja-pos/internal/domain/entity"
)

// PageCursor identifica el último registro crudo de una página para pedir
// la siguiente (keyset: fecha de creación + id como desempate).
type PageCursor struct {
	CreatedAt time.Time
	ID        string
}

// InvoiceRepository puerto de persistencia para facturas.
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type InvoiceRepository interface {
	// Create persiste la cabecera. Devuelve domain.ErrDuplicate si el
	// número de factura ya existe.
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(number string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	// ListPage devuelve hasta limit facturas ordenadas por fecha de creación
	// descendente, empezando después del cursor si no es nil.
	ListPage(limit int, after *PageCursor) ([]*entity.Invoice, error)
	Delete(id string) error
}
