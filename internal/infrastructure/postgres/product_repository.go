package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, barcode, name, description, price, stock, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, barcode, name, description, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, nullIfEmpty(product.Barcode), product.Name, product.Description,
		product.Price, product.Stock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode busca por código escaneado: SKU o código de barras alterno.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 OR barcode = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var barcode *string
	err := row.Scan(
		&p.ID, &p.SKU, &barcode, &p.Name, &p.Description,
		&p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Barcode = derefStr(barcode)
	return &p, nil
}

// List lista productos con paginación por offset.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var barcode *string
		if err := rows.Scan(&p.ID, &p.SKU, &barcode, &p.Name, &p.Description,
			&p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Barcode = derefStr(barcode)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables del producto. No toca el stock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET barcode = $2, name = $3, description = $4, price = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.Barcode), product.Name, product.Description,
		product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DecrementStock descuenta stock de forma atómica: la condición stock >= qty
// en el UPDATE evita dejar el stock en negativo ante ventas concurrentes.
func (r *ProductRepo) DecrementStock(productID string, qty int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
