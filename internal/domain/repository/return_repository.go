package repository

import "github.com/tu-usuario/caja-pos/internal/domain/entity"

// ReturnRepository puerto de persistencia para devoluciones (append-only).
type ReturnRepository interface {
	Create(record *entity.ReturnRecord) error
	CreateItem(item *entity.ReturnItem) error
	GetByID(id string) (*entity.ReturnRecord, error)
	GetItemsByReturnID(returnID string) ([]*entity.ReturnItem, error)
}
