package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCajero  = "cajero"
	RoleGerente = "gerente"
)

// User representa un operador del punto de venta.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, gerente, cajero
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
