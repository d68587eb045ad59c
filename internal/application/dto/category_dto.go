package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

// UpdateCategoryRequest entrada para actualización parcial: solo los campos
// presentes se sobreescriben.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=50"`
	ParentID *int64  `json:"parent_id" validate:"omitempty,gt=0"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
	IsActive bool   `json:"is_active"`
}
