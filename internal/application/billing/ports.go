package billing

import (
	"context"

	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repositorios
// atados a esa transacción. Si fn retorna error se hace rollback completo:
// cada escritura de factura o devolución es todo-o-nada.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
	RunReturn(ctx context.Context, fn func(
		returnRepo repository.ReturnRepository,
	) error) error
}
