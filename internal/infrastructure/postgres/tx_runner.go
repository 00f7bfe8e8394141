package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/caja-pos/internal/application/billing"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInvoice inicia una transacción con repos de catálogo y facturas
// (descuento de stock + cabecera + líneas en un solo commit).
func (r *TxRunner) RunInvoice(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewInvoiceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReturn inicia una transacción para la escritura de una devolución
// (cabecera + artículos). No incluye la búsqueda previa de la factura:
// ese par lectura-escritura es deliberadamente no transaccional.
func (r *TxRunner) RunReturn(ctx context.Context, fn func(
	returnRepo repository.ReturnRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewReturnRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
