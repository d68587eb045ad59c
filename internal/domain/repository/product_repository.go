package repository

import "github.com/jhoicas/ecommerce-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas filtran is_active = true.
type ProductRepository interface {
	// Create persiste el producto y asigna product.ID.
	Create(product *entity.Product) error
	// GetByID busca un producto activo; (nil, nil) si no existe.
	GetByID(id int64) (*entity.Product, error)
	// List devuelve los productos activos cuya categoría también está activa.
	List() ([]*entity.Product, error)
	ListByCategory(categoryID int64) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Deactivate marca el producto como inactivo.
	// Devuelve domain.ErrNotFound si no hay fila activa con ese id.
	Deactivate(id int64) error
	// MarkAllActive reactiva todos los productos inactivos y devuelve cuántos.
	MarkAllActive() (int64, error)
	// UpdateRating escribe el rating derivado (solo lo usa el recálculo de reviews).
	UpdateRating(productID int64, rating float64) error
}
