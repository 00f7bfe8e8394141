package repository

import "github.com/tu-usuario/caja-pos/internal/domain/entity"

// UserRepository puerto de persistencia para operadores de caja.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
