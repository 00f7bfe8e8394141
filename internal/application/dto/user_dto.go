package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"` // default cajero
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
