package repository

import "github.com/tu-usuario/caja-pos/internal/domain/entity"

// ProductRepository puerto de persistencia para el catálogo.
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByCode busca por código escaneado: coincidencia exacta con SKU o
	// con el código de barras alterno.
	GetByCode(code string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta stock de forma atómica. Devuelve
	// domain.ErrInsufficientStock si no hay unidades suficientes.
	DecrementStock(productID string, qty int64) error
	Delete(id string) error
}
