package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/rating"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// TxRunner es el contrato mínimo que necesita el caso de uso de reviews para
// ejecutar la escritura del review y el recálculo del rating en una sola
// transacción. Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		reviewRepo repository.ReviewRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReviewUseCase casos de uso para reviews. Cada mutación dispara el recálculo
// del rating del producto dentro de la misma transacción: un review commiteado
// nunca queda visible con un rating desactualizado.
type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	tx         TxRunner
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviewRepo repository.ReviewRepository, tx TxRunner) *ReviewUseCase {
	return &ReviewUseCase{reviewRepo: reviewRepo, tx: tx}
}

// List devuelve todos los reviews activos.
func (uc *ReviewUseCase) List() ([]dto.ReviewResponse, error) {
	list, err := uc.reviewRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReviewResponse(r))
	}
	return items, nil
}

// Create crea un review del comprador autenticado sobre un producto activo y
// recalcula el rating. El índice único parcial de la DB garantiza a lo sumo un
// review activo por (usuario, producto) aun con inserciones concurrentes.
func (uc *ReviewUseCase) Create(userID int64, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.Grade < entity.GradeMin || in.Grade > entity.GradeMax {
		return nil, domain.ErrInvalidInput
	}
	review := &entity.Review{
		UserID:      userID,
		ProductID:   in.ProductID,
		Comment:     in.Comment,
		CommentDate: time.Now(),
		Grade:       in.Grade,
		IsActive:    true,
	}
	err := uc.tx.Run(context.Background(), func(
		reviewRepo repository.ReviewRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := reviewRepo.Create(review); err != nil {
			return err
		}
		return recomputeRating(reviewRepo, productRepo, in.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// Deactivate marca un review como inactivo y recalcula el rating del producto.
// El autor puede desactivar su propio review; admin cualquiera. La existencia
// se verifica antes que la propiedad (ErrNotFound antes que ErrForbidden).
func (uc *ReviewUseCase) Deactivate(id, actorID int64, actorRole string) error {
	return uc.tx.Run(context.Background(), func(
		reviewRepo repository.ReviewRepository,
		productRepo repository.ProductRepository,
	) error {
		review, err := reviewRepo.GetByID(id)
		if err != nil {
			return err
		}
		if review == nil {
			return domain.ErrNotFound
		}
		if actorRole != entity.RoleAdmin && review.UserID != actorID {
			return domain.ErrForbidden
		}
		if err := reviewRepo.Deactivate(id); err != nil {
			return err
		}
		return recomputeRating(reviewRepo, productRepo, review.ProductID)
	})
}

// recomputeRating escribe en el producto el promedio de los grades activos.
func recomputeRating(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, productID int64) error {
	grades, err := reviewRepo.ActiveGradesByProduct(productID)
	if err != nil {
		return err
	}
	return productRepo.UpdateRating(productID, rating.Average(grades))
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	if r == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		Comment:     r.Comment,
		CommentDate: r.CommentDate,
		Grade:       r.Grade,
		IsActive:    r.IsActive,
	}
}
