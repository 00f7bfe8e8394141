package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/pos"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación de ReturnRepository (usable con pool o tx).
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

// Create persiste la cabecera de la devolución.
func (r *ReturnRepo) Create(record *entity.ReturnRecord) error {
	query := `
		INSERT INTO returns (id, invoice_number, return_date, reason, notes, action, total_refund, status, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.InvoiceNumber, record.ReturnDate, record.Reason, nullIfEmpty(record.Notes),
		record.Action, record.TotalRefund, record.Status, record.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// CreateItem persiste un artículo devuelto.
func (r *ReturnRepo) CreateItem(item *entity.ReturnItem) error {
	query := `
		INSERT INTO return_items (id, return_id, product_code, product_name, original_qty, returned_qty, unit_price, discount_type, discount_value, reason, refund)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ReturnID, item.ProductCode, item.ProductName, item.OriginalQty, item.ReturnedQty,
		item.UnitPrice, item.Discount.Type, item.Discount.Value, nullIfEmpty(item.Reason), item.Refund,
	)
	if err != nil {
		return fmt.Errorf("insert return item: %w", err)
	}
	return nil
}

// GetByID obtiene una devolución por ID.
func (r *ReturnRepo) GetByID(id string) (*entity.ReturnRecord, error) {
	query := `
		SELECT id, invoice_number, return_date, reason, notes, action, total_refund, status, processed_at
		FROM returns WHERE id = $1`
	var rec entity.ReturnRecord
	var notes *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.InvoiceNumber, &rec.ReturnDate, &rec.Reason, &notes,
		&rec.Action, &rec.TotalRefund, &rec.Status, &rec.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	rec.Notes = derefStr(notes)
	return &rec, nil
}

// GetItemsByReturnID obtiene los artículos de una devolución.
func (r *ReturnRepo) GetItemsByReturnID(returnID string) ([]*entity.ReturnItem, error) {
	query := `
		SELECT id, return_id, product_code, product_name, original_qty, returned_qty, unit_price, discount_type, discount_value, reason, refund
		FROM return_items WHERE return_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, returnID)
	if err != nil {
		return nil, fmt.Errorf("list return items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReturnItem
	for rows.Next() {
		var it entity.ReturnItem
		var disc pos.Discount
		var reason *string
		if err := rows.Scan(&it.ID, &it.ReturnID, &it.ProductCode, &it.ProductName, &it.OriginalQty,
			&it.ReturnedQty, &it.UnitPrice, &disc.Type, &disc.Value, &reason, &it.Refund); err != nil {
			return nil, fmt.Errorf("scan return item: %w", err)
		}
		it.Discount = disc
		it.Reason = derefStr(reason)
		list = append(list, &it)
	}
	return list, rows.Err()
}
