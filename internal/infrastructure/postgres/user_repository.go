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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo operador.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un operador por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy(`id = $1`, id)
}

// GetByEmail obtiene un operador por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getBy(`email = $1`, email)
}

func (r *UserRepo) getBy(where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, status, created_at, updated_at
		FROM users WHERE ` + where
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
