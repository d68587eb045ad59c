package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// SellerID no viene en el body: se toma del vendedor autenticado.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"image_url" validate:"omitempty,max=200"`
	Stock       int             `json:"stock" validate:"min=0"`
	CategoryID  int64           `json:"category_id" validate:"required,gt=0"`
}

// UpdateProductRequest entrada para actualización parcial: solo los campos
// presentes se sobreescriben. Rating no es actualizable (campo derivado).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,max=200"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	CategoryID  *int64           `json:"category_id" validate:"omitempty,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Stock       int             `json:"stock"`
	CategoryID  int64           `json:"category_id"`
	SellerID    int64           `json:"seller_id"`
	Rating      float64         `json:"rating"`
	IsActive    bool            `json:"is_active"`
}
