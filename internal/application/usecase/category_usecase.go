package usecase

import (
	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías (solo admin muta; lecturas públicas).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Si trae parent_id, el padre debe existir y estar activo.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.validateParent(in.ParentID); err != nil {
		return nil, err
	}
	category := &entity.Category{
		Name:     in.Name,
		ParentID: in.ParentID,
		IsActive: true,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías activas.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update actualiza parcialmente una categoría activa: solo los campos presentes
// se sobreescriben. Un parent_id nuevo se revalida contra categorías activas.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.ParentID != nil {
		if err := uc.validateParent(in.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = in.ParentID
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Deactivate marca la categoría como inactiva (soft delete).
// Sobre una categoría ya inactiva devuelve ErrNotFound: la transición no es idempotente.
func (uc *CategoryUseCase) Deactivate(id int64) error {
	return uc.repo.Deactivate(id)
}

// MarkAllActive reactiva en bloque todas las categorías inactivas (operación administrativa).
func (uc *CategoryUseCase) MarkAllActive() (int64, error) {
	return uc.repo.MarkAllActive()
}

// validateParent verifica que el padre, si viene, exista y esté activo.
// No se detectan ciclos en el árbol de categorías.
func (uc *CategoryUseCase) validateParent(parentID *int64) error {
	if parentID == nil {
		return nil
	}
	parent, err := uc.repo.GetByID(*parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return domain.ErrParentNotFound
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
		IsActive: c.IsActive,
	}
}
