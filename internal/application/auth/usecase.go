package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caja-pos/internal/application/dto"
	"github.com/tu-usuario/caja-pos/internal/domain"
	"github.com/tu-usuario/caja-pos/internal/domain/entity"
	"github.com/tu-usuario/caja-pos/internal/domain/repository"
	"github.com/tu-usuario/caja-pos/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login de operadores.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un operador: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCajero
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
