package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, number, customer_name, customer_phone, payment_method, subtotal, total, status, created_at`

// Create persiste la cabecera de la factura. Número duplicado → ErrDuplicate.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, number, customer_name, customer_phone, payment_method, subtotal, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, nullIfEmpty(invoice.CustomerName), nullIfEmpty(invoice.CustomerPhone),
		invoice.PaymentMethod, invoice.Subtotal, invoice.Total, invoice.Status, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la factura.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_code, product_name, quantity, unit_price, discount_type, discount_value, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.ProductCode, item.ProductName, item.Quantity,
		item.UnitPrice, item.Discount.Type, item.Discount.Value, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNumber obtiene una factura por su número legible (coincidencia exacta).
func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, number))
}

func (r *InvoiceRepo) scanOne(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var customerName, customerPhone *string
	err := row.Scan(
		&inv.ID, &inv.Number, &customerName, &customerPhone,
		&inv.PaymentMethod, &inv.Subtotal, &inv.Total, &inv.Status, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.CustomerName = derefStr(customerName)
	inv.CustomerPhone = derefStr(customerPhone)
	return &inv, nil
}

// GetItemsByInvoiceID obtiene todas las líneas de una factura en su orden original.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_code, product_name, quantity, unit_price, discount_type, discount_value, total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		var disc pos.Discount
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductCode, &it.ProductName, &it.Quantity,
			&it.UnitPrice, &disc.Type, &disc.Value, &it.Total); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		it.Discount = disc
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListPage devuelve hasta limit facturas en orden cronológico inverso,
// empezando después del cursor (keyset sobre created_at + id).
func (r *InvoiceRepo) ListPage(limit int, after *repository.PageCursor) ([]*entity.Invoice, error) {
	var rows pgx.Rows
	var err error
	if after == nil {
		query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC, id DESC LIMIT $1`
		rows, err = r.q.Query(context.Background(), query, limit)
	} else {
		query := `SELECT ` + invoiceColumns + ` FROM invoices
			WHERE (created_at, id) < ($2, $3)
			ORDER BY created_at DESC, id DESC LIMIT $1`
		rows, err = r.q.Query(context.Background(), query, limit, after.CreatedAt, after.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var customerName, customerPhone *string
		if err := rows.Scan(&inv.ID, &inv.Number, &customerName, &customerPhone,
			&inv.PaymentMethod, &inv.Subtotal, &inv.Total, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.CustomerName = derefStr(customerName)
		inv.CustomerPhone = derefStr(customerPhone)
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Delete elimina la factura; las líneas caen por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
