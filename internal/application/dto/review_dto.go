package dto

import "time"

// CreateReviewRequest entrada para crear un review.
// UserID no viene en el body: se toma del comprador autenticado.
type CreateReviewRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Comment   string `json:"comment" validate:"omitempty,max=500"`
	Grade     int    `json:"grade" validate:"required,min=1,max=5"`
}

// ReviewResponse salida de un review.
type ReviewResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	Comment     string    `json:"comment,omitempty"`
	CommentDate time.Time `json:"comment_date"`
	Grade       int       `json:"grade"`
	IsActive    bool      `json:"is_active"`
}
