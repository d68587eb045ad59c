package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token. Los access tokens no llevan el claim token_type;
// los refresh tokens se marcan con "refresh". Ambos se firman con el mismo secreto.
const TokenTypeRefresh = "refresh"

// Errores de validación de tokens. El caller los normaliza a 401 sin filtrar el motivo.
var (
	ErrExpired = errors.New("jwt: token expirado")
	ErrInvalid = errors.New("jwt: token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject es el email del usuario; UserID y Role permiten al middleware RBAC
// tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"id"`
	Role      string `json:"role"` // "buyer" | "seller" | "admin"
	TokenType string `json:"token_type,omitempty"`
}

// IsRefresh indica si el token fue emitido como refresh token.
func (c *Claims) IsRefresh() bool {
	return c.TokenType == TokenTypeRefresh
}

// GenerateAccess genera un access token firmado de corta duración.
func GenerateAccess(secret, email, role string, userID int64, issuer string, expMinutes int) (string, error) {
	return generate(secret, email, role, userID, issuer, expMinutes, "")
}

// GenerateRefresh genera un refresh token firmado de larga duración,
// marcado con token_type="refresh".
func GenerateRefresh(secret, email, role string, userID int64, issuer string, expMinutes int) (string, error) {
	return generate(secret, email, role, userID, issuer, expMinutes, TokenTypeRefresh)
}

func generate(secret, email, role string, userID int64, issuer string, expMinutes int, tokenType string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
			ID:        uuid.New().String(),
		},
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna ErrExpired si el token venció y ErrInvalid para cualquier otro defecto
// (firma incorrecta, estructura malformada, método de firma inesperado).
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
