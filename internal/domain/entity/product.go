package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (soft delete).
// Rating es un campo derivado: se recalcula desde los reviews activos y no se
// asigna directamente. SellerID fija la propiedad exclusiva del vendedor.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, positivo, 2 decimales
	ImageURL    string
	Stock       int
	CategoryID  int64
	SellerID    int64
	Rating      float64 // promedio de grades activos; 0.0 sin reviews
	IsActive    bool
}
