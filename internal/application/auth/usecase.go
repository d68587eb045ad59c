package auth

import (
	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret         string
	AccessMinutes  int
	RefreshMinutes int
	Issuer         string
}

// AuthUseCase casos de uso de autenticación: registro, login y refresh de tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Role vacío queda en "buyer". Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password contra usuarios activos y emite el par de tokens.
// Cualquier fallo de credenciales retorna ErrUnauthorized sin distinguir el motivo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.GenerateAccess(uc.jwtCfg.Secret, user.Email, user.Role, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, user.Email, user.Role, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// ExchangeAccessToken emite un nuevo access token a partir de un refresh token válido.
// Los claims del token nuevo se rederivan del estado actual del usuario en DB:
// un rol cambiado después de emitir el refresh no persiste en el access nuevo.
func (uc *AuthUseCase) ExchangeAccessToken(refreshToken string) (*dto.AccessTokenResponse, error) {
	user, err := uc.userFromRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	access, err := jwt.GenerateAccess(uc.jwtCfg.Secret, user.Email, user.Role, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AccessTokenResponse{AccessToken: access, TokenType: "bearer"}, nil
}

// RotateRefreshToken emite un refresh token nuevo a partir de uno válido (rotación),
// con los claims rederivados del estado actual del usuario en DB.
func (uc *AuthUseCase) RotateRefreshToken(refreshToken string) (*dto.RefreshTokenResponse, error) {
	user, err := uc.userFromRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, user.Email, user.Role, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshTokenResponse{RefreshToken: refresh, TokenType: "bearer"}, nil
}

// userFromRefreshToken valida el refresh token y busca al usuario referido por sub.
// Del token solo se confía el sub como llave de búsqueda; rol e id salen de la DB.
// Falla con ErrUnauthorized si el token no es refresh, expiró, es inválido,
// o el usuario ya no existe o está inactivo.
func (uc *AuthUseCase) userFromRefreshToken(refreshToken string) (*entity.User, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !claims.IsRefresh() {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByEmail(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
