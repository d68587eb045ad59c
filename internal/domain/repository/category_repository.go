package repository

import "github.com/jhoicas/ecommerce-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Todas las lecturas filtran is_active = true.
type CategoryRepository interface {
	// Create persiste la categoría y asigna category.ID.
	Create(category *entity.Category) error
	// GetByID busca una categoría activa; (nil, nil) si no existe.
	GetByID(id int64) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	// Deactivate marca la categoría como inactiva.
	// Devuelve domain.ErrNotFound si no hay fila activa con ese id.
	Deactivate(id int64) error
	// MarkAllActive reactiva todas las categorías inactivas y devuelve cuántas.
	MarkAllActive() (int64, error)
}
