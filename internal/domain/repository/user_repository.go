package repository

import "github.com/jhoicas/ecommerce-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna user.ID.
	// Devuelve domain.ErrEmailAlreadyExists si el email ya está tomado.
	Create(user *entity.User) error
	// GetByEmail busca un usuario activo por email; (nil, nil) si no existe.
	GetByEmail(email string) (*entity.User, error)
}
