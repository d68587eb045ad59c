package usecase

import (
	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Rating se maneja vía reviews;
// las mutaciones exigen que el actor sea el vendedor dueño del producto.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto del vendedor autenticado. La categoría referida debe
// existir y estar activa; el precio debe ser positivo. Rating inicia en 0.
func (uc *ProductUseCase) Create(sellerID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !in.Price.IsPositive() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateCategory(in.CategoryID); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		SellerID:    sellerID,
		Rating:      0,
		IsActive:    true,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve los productos activos cuya categoría también está activa.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByCategory devuelve los productos activos de una categoría activa.
// Devuelve ErrNotFound si la categoría no existe o está inactiva.
func (uc *ProductUseCase) ListByCategory(categoryID int64) ([]dto.ProductResponse, error) {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID devuelve el detalle de un producto activo. ErrNotFound si el producto
// no existe; ErrCategoryInactive si su categoría quedó inactiva.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validateCategory(product.CategoryID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza parcialmente un producto del vendedor: solo los campos presentes
// se sobreescriben. La existencia se verifica antes que la propiedad
// (ErrNotFound antes que ErrForbidden). Una categoría nueva se revalida.
func (uc *ProductUseCase) Update(id, sellerID int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if in.CategoryID != nil {
		if err := uc.validateCategory(*in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate marca como inactivo un producto del vendedor (soft delete).
// Devuelve el producto desactivado para el mensaje de confirmación.
func (uc *ProductUseCase) Deactivate(id, sellerID int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if err := uc.repo.Deactivate(id); err != nil {
		return nil, err
	}
	product.IsActive = false
	return toProductResponse(product), nil
}

// MarkAllActive reactiva en bloque todos los productos inactivos (operación administrativa).
func (uc *ProductUseCase) MarkAllActive() (int64, error) {
	return uc.repo.MarkAllActive()
}

// validateCategory verifica que la categoría exista y esté activa.
func (uc *ProductUseCase) validateCategory(categoryID int64) error {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryInactive
	}
	return nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		SellerID:    p.SellerID,
		Rating:      p.Rating,
		IsActive:    p.IsActive,
	}
}
