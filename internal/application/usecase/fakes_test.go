package usecase_test

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// repos de postgres: lecturas filtran is_active, (nil, nil) cuando no hay fila,
// Deactivate no idempotente, y el índice único parcial de reviews.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	nextID     int64
	categories map[int64]*entity.Category
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[int64]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(category *entity.Category) error {
	r.nextID++
	category.ID = r.nextID
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok || !c.IsActive {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) error {
	c, ok := r.categories[category.ID]
	if !ok || !c.IsActive {
		return domain.ErrNotFound
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for id := int64(1); id <= r.nextID; id++ {
		if c, ok := r.categories[id]; ok && c.IsActive {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Deactivate(id int64) error {
	c, ok := r.categories[id]
	if !ok || !c.IsActive {
		return domain.ErrNotFound
	}
	c.IsActive = false
	return nil
}

func (r *fakeCategoryRepo) MarkAllActive() (int64, error) {
	var n int64
	for _, c := range r.categories {
		if !c.IsActive {
			c.IsActive = true
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	nextID   int64
	products map[int64]*entity.Product
	// categories permite a List replicar el JOIN con categorías activas
	categories *fakeCategoryRepo
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(categories *fakeCategoryRepo) *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product), categories: categories}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.nextID++
	product.ID = r.nextID
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for id := int64(1); id <= r.nextID; id++ {
		p, ok := r.products[id]
		if !ok || !p.IsActive {
			continue
		}
		if r.categories != nil {
			cat, _ := r.categories.GetByID(p.CategoryID)
			if cat == nil {
				continue
			}
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range all {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	p, ok := r.products[product.ID]
	if !ok || !p.IsActive {
		return domain.ErrNotFound
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Deactivate(id int64) error {
	p, ok := r.products[id]
	if !ok || !p.IsActive {
		return domain.ErrNotFound
	}
	p.IsActive = false
	return nil
}

func (r *fakeProductRepo) MarkAllActive() (int64, error) {
	var n int64
	for _, p := range r.products {
		if !p.IsActive {
			p.IsActive = true
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) UpdateRating(productID int64, rating float64) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Rating = rating
	return nil
}

// ratingOf lee el rating persistido sin pasar por el filtro is_active.
func (r *fakeProductRepo) ratingOf(productID int64) float64 {
	if p, ok := r.products[productID]; ok {
		return p.Rating
	}
	return -1
}

type fakeReviewRepo struct {
	nextID  int64
	reviews map[int64]*entity.Review
}

var _ repository.ReviewRepository = (*fakeReviewRepo)(nil)

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*entity.Review)}
}

func (r *fakeReviewRepo) Create(review *entity.Review) error {
	// Índice único parcial: a lo sumo un review activo por (usuario, producto)
	for _, existing := range r.reviews {
		if existing.IsActive && existing.UserID == review.UserID && existing.ProductID == review.ProductID {
			return domain.ErrDuplicateReview
		}
	}
	r.nextID++
	review.ID = r.nextID
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) GetByID(id int64) (*entity.Review, error) {
	rev, ok := r.reviews[id]
	if !ok || !rev.IsActive {
		return nil, nil
	}
	clone := *rev
	return &clone, nil
}

func (r *fakeReviewRepo) List() ([]*entity.Review, error) {
	var out []*entity.Review
	for id := int64(1); id <= r.nextID; id++ {
		if rev, ok := r.reviews[id]; ok && rev.IsActive {
			clone := *rev
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Deactivate(id int64) error {
	rev, ok := r.reviews[id]
	if !ok || !rev.IsActive {
		return domain.ErrNotFound
	}
	rev.IsActive = false
	return nil
}

func (r *fakeReviewRepo) ActiveGradesByProduct(productID int64) ([]int, error) {
	var grades []int
	for id := int64(1); id <= r.nextID; id++ {
		if rev, ok := r.reviews[id]; ok && rev.IsActive && rev.ProductID == productID {
			grades = append(grades, rev.Grade)
		}
	}
	return grades, nil
}

// fakeTxRunner ejecuta la función directamente sobre los fakes compartidos.
type fakeTxRunner struct {
	reviewRepo  *fakeReviewRepo
	productRepo *fakeProductRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(tx.reviewRepo, tx.productRepo)
}
