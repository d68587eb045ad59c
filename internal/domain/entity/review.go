package entity

import "time"

// Límites de la calificación de un review.
const (
	GradeMin = 1
	GradeMax = 5
)

// Review representa un reseña de un comprador sobre un producto (soft delete).
// A lo sumo un review activo por par (UserID, ProductID); la DB lo respalda con
// un índice único parcial sobre filas activas.
type Review struct {
	ID          int64
	UserID      int64
	ProductID   int64
	Comment     string
	CommentDate time.Time
	Grade       int // 1..5
	IsActive    bool
}
