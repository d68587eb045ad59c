package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el id generado por la DB. Rating inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, image_url, stock, category_id, seller_id, rating, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.Stock, product.CategoryID, product.SellerID, product.Rating, product.IsActive,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, stock, category_id, seller_id, rating, is_active
		FROM products WHERE id = $1 AND is_active = true`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Stock, &p.CategoryID, &p.SellerID, &p.Rating, &p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista los productos activos cuya categoría también está activa (join filtrado).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.image_url, p.stock, p.category_id, p.seller_id, p.rating, p.is_active
		FROM products p
		JOIN categories c ON c.id = p.category_id AND c.is_active = true
		WHERE p.is_active = true ORDER BY p.id`
	return r.queryList(query)
}

// ListByCategory lista los productos activos de una categoría.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, stock, category_id, seller_id, rating, is_active
		FROM products WHERE category_id = $1 AND is_active = true ORDER BY id`
	return r.queryList(query, categoryID)
}

func (r *ProductRepo) queryList(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.Stock, &p.CategoryID, &p.SellerID, &p.Rating, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente. No toca Rating (campo derivado, ver UpdateRating).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, image_url = $5, stock = $6, category_id = $7
		WHERE id = $1 AND is_active = true`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.ImageURL, product.Stock, product.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Deactivate marca el producto como inactivo (soft delete). Sobre uno ya
// inactivo no hay fila activa que afectar y se devuelve ErrNotFound.
func (r *ProductRepo) Deactivate(id int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = false WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllActive reactiva todos los productos inactivos y devuelve cuántas filas cambió.
func (r *ProductRepo) MarkAllActive() (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = true WHERE is_active = false`)
	if err != nil {
		return 0, fmt.Errorf("mark all products active: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// UpdateRating actualiza solo el rating derivado (usado por el recálculo de reviews).
func (r *ProductRepo) UpdateRating(productID int64, rating float64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET rating = $2 WHERE id = $1`,
		productID, rating,
	)
	if err != nil {
		return fmt.Errorf("update product rating: %w", err)
	}
	return nil
}
