package entity

// Category representa una categoría de productos (jerárquica opcional, soft delete).
// ParentID nulo si es raíz; si está presente debe referir una categoría activa
// al momento de crear o actualizar. No se detectan ciclos en el árbol.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
	IsActive bool
}
