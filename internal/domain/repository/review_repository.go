package repository

import "github.com/jhoicas/ecommerce-api/internal/domain/entity"

// ReviewRepository define el puerto de persistencia para Review (DIP).
// Todas las lecturas filtran is_active = true.
type ReviewRepository interface {
	// Create persiste el review y asigna review.ID.
	// Devuelve domain.ErrDuplicateReview si el usuario ya tiene un review activo
	// para ese producto (índice único parcial en DB).
	Create(review *entity.Review) error
	// GetByID busca un review activo; (nil, nil) si no existe.
	GetByID(id int64) (*entity.Review, error)
	List() ([]*entity.Review, error)
	// Deactivate marca el review como inactivo.
	// Devuelve domain.ErrNotFound si no hay fila activa con ese id.
	Deactivate(id int64) error
	// ActiveGradesByProduct devuelve las calificaciones de los reviews activos del producto.
	ActiveGradesByProduct(productID int64) ([]int, error)
}
