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

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL (usable con pool o tx).
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador de persistencia para reviews. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste un nuevo review y asigna el id generado por la DB.
// El índice único parcial sobre (user_id, product_id) de filas activas convierte
// la inserción concurrente duplicada en ErrDuplicateReview, sin check-then-insert.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, product_id, comment, comment_date, grade, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		review.UserID, review.ProductID, review.Comment, review.CommentDate,
		review.Grade, review.IsActive,
	).Scan(&review.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReview
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID obtiene un review activo por ID.
func (r *ReviewRepo) GetByID(id int64) (*entity.Review, error) {
	query := `
		SELECT id, user_id, product_id, comment, comment_date, grade, is_active
		FROM reviews WHERE id = $1 AND is_active = true`
	var rev entity.Review
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rev.ID, &rev.UserID, &rev.ProductID, &rev.Comment, &rev.CommentDate,
		&rev.Grade, &rev.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rev, nil
}

// List lista los reviews activos.
func (r *ReviewRepo) List() ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, product_id, comment, comment_date, grade, is_active
		FROM reviews WHERE is_active = true ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.ProductID, &rev.Comment,
			&rev.CommentDate, &rev.Grade, &rev.IsActive); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}

// Deactivate marca el review como inactivo (soft delete). Sobre uno ya
// inactivo no hay fila activa que afectar y se devuelve ErrNotFound.
func (r *ReviewRepo) Deactivate(id int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE reviews SET is_active = false WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return fmt.Errorf("deactivate review: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ActiveGradesByProduct devuelve las calificaciones de los reviews activos del producto.
func (r *ReviewRepo) ActiveGradesByProduct(productID int64) ([]int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT grade FROM reviews WHERE product_id = $1 AND is_active = true`, productID)
	if err != nil {
		return nil, fmt.Errorf("grades by product: %w", err)
	}
	defer rows.Close()
	var grades []int
	for rows.Next() {
		var g int
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
