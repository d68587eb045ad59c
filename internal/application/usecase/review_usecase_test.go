package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

const (
	buyerMaria = int64(100)
	buyerJose  = int64(200)
)

// reviewFixture arma el caso de uso de reviews con un producto activo creado.
type reviewFixture struct {
	uc          *usecase.ReviewUseCase
	productRepo *fakeProductRepo
	productID   int64
}

func buildReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo(categoryRepo)
	reviewRepo := newFakeReviewRepo()

	cat := &entity.Category{Name: "Electrónica", IsActive: true}
	require.NoError(t, categoryRepo.Create(cat))
	product := &entity.Product{
		Name:       "Audífonos BT",
		Price:      decimal.RequireFromString("59.99"),
		Stock:      10,
		CategoryID: cat.ID,
		SellerID:   sellerAna,
		IsActive:   true,
	}
	require.NoError(t, productRepo.Create(product))

	tx := &fakeTxRunner{reviewRepo: reviewRepo, productRepo: productRepo}
	return &reviewFixture{
		uc:          usecase.NewReviewUseCase(reviewRepo, tx),
		productRepo: productRepo,
		productID:   product.ID,
	}
}

func (f *reviewFixture) create(t *testing.T, userID int64, grade int) *dto.ReviewResponse {
	t.Helper()
	out, err := f.uc.Create(userID, dto.CreateReviewRequest{
		ProductID: f.productID,
		Comment:   "buen producto",
		Grade:     grade,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create + recálculo de rating
// ──────────────────────────────────────────────────────────────────────────────

func TestReviewCreate_ActualizaRatingDelProducto(t *testing.T) {
	f := buildReviewFixture(t)

	out := f.create(t, buyerMaria, 4)
	assert.Equal(t, buyerMaria, out.UserID, "el user_id debe salir del actor autenticado")
	assert.True(t, out.IsActive)
	assert.False(t, out.CommentDate.IsZero(), "comment_date debe asignarse al crear")
	assert.Equal(t, 4.0, f.productRepo.ratingOf(f.productID))

	// Segundo review de otro comprador: promedio (4+5)/2
	f.create(t, buyerJose, 5)
	assert.Equal(t, 4.5, f.productRepo.ratingOf(f.productID))
}

func TestReviewCreate_GradeFueraDeRango_RetornaError(t *testing.T) {
	f := buildReviewFixture(t)

	_, err := f.uc.Create(buyerMaria, dto.CreateReviewRequest{ProductID: f.productID, Grade: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(buyerMaria, dto.CreateReviewRequest{ProductID: f.productID, Grade: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReviewCreate_ProductoInexistente_RetornaErrNotFound(t *testing.T) {
	f := buildReviewFixture(t)

	_, err := f.uc.Create(buyerMaria, dto.CreateReviewRequest{ProductID: 99, Grade: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewCreate_Duplicado_RetornaErrDuplicateReview(t *testing.T) {
	f := buildReviewFixture(t)

	f.create(t, buyerMaria, 4)
	_, err := f.uc.Create(buyerMaria, dto.CreateReviewRequest{ProductID: f.productID, Grade: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicateReview,
		"un usuario no puede tener dos reviews activos del mismo producto")
}

func TestReviewCreate_TrasDesactivar_PermiteUnoNuevo(t *testing.T) {
	f := buildReviewFixture(t)

	first := f.create(t, buyerMaria, 2)
	require.NoError(t, f.uc.Deactivate(first.ID, buyerMaria, entity.RoleBuyer))

	// El cupo se libera al desactivar el review anterior
	second := f.create(t, buyerMaria, 5)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 5.0, f.productRepo.ratingOf(f.productID),
		"solo el review activo cuenta para el rating")
}

// ──────────────────────────────────────────────────────────────────────────────
// Deactivate — propiedad y rol
// ──────────────────────────────────────────────────────────────────────────────

func TestReviewDeactivate_AutorPuede_RatingVuelveACero(t *testing.T) {
	f := buildReviewFixture(t)

	r := f.create(t, buyerMaria, 4)
	require.NoError(t, f.uc.Deactivate(r.ID, buyerMaria, entity.RoleBuyer))

	assert.Equal(t, 0.0, f.productRepo.ratingOf(f.productID),
		"sin reviews activos el rating debe volver a 0.0")
}

func TestReviewDeactivate_OtroBuyer_RetornaErrForbidden(t *testing.T) {
	f := buildReviewFixture(t)

	r := f.create(t, buyerMaria, 4)
	err := f.uc.Deactivate(r.ID, buyerJose, entity.RoleBuyer)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un buyer no puede desactivar reviews ajenos")
}

func TestReviewDeactivate_AdminPuedeCualquiera(t *testing.T) {
	f := buildReviewFixture(t)

	r := f.create(t, buyerMaria, 4)
	err := f.uc.Deactivate(r.ID, int64(999), entity.RoleAdmin)
	assert.NoError(t, err, "admin puede desactivar cualquier review")
	assert.Equal(t, 0.0, f.productRepo.ratingOf(f.productID))
}

func TestReviewDeactivate_NoExiste_RetornaErrNotFound(t *testing.T) {
	f := buildReviewFixture(t)

	err := f.uc.Deactivate(99, buyerJose, entity.RoleBuyer)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"la existencia se verifica antes que la propiedad")
}

func TestReviewDeactivate_DosVeces_RetornaErrNotFound(t *testing.T) {
	f := buildReviewFixture(t)

	r := f.create(t, buyerMaria, 4)
	require.NoError(t, f.uc.Deactivate(r.ID, buyerMaria, entity.RoleBuyer))

	err := f.uc.Deactivate(r.ID, buyerMaria, entity.RoleBuyer)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestReviewList_SoloActivos(t *testing.T) {
	f := buildReviewFixture(t)

	r1 := f.create(t, buyerMaria, 4)
	f.create(t, buyerJose, 5)
	require.NoError(t, f.uc.Deactivate(r1.ID, buyerMaria, entity.RoleBuyer))

	out, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, out, 1, "los reviews inactivos no deben listarse")
	assert.Equal(t, buyerJose, out[0].UserID)
}
