package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-api/internal/domain"
)

const (
	sellerAna  = int64(10)
	sellerLuis = int64(20)
)

// buildProductUseCase arma el caso de uso con una categoría activa ya creada.
func buildProductUseCase(t *testing.T) (*usecase.ProductUseCase, *usecase.CategoryUseCase, int64) {
	t.Helper()
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo(categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)

	cat, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)
	return productUC, categoryUC, cat.ID
}

func createProductReq(categoryID int64) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Audífonos BT",
		Description: "Audífonos inalámbricos con cancelación de ruido",
		Price:       decimal.RequireFromString("59.99"),
		ImageURL:    "https://img.example.com/audifonos.jpg",
		Stock:       15,
		CategoryID:  categoryID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_OK(t *testing.T) {
	uc, _, catID := buildProductUseCase(t)

	out, err := uc.Create(sellerAna, createProductReq(catID))
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, sellerAna, out.SellerID, "el seller_id debe salir del actor autenticado")
	assert.True(t, decimal.RequireFromString("59.99").Equal(out.Price))
	assert.Equal(t, 0.0, out.Rating, "un producto nuevo inicia con rating 0")
	assert.True(t, out.IsActive)
}

func TestProductCreate_PrecioNoPositivo_RetornaError(t *testing.T) {
	uc, _, catID := buildProductUseCase(t)

	in := createProductReq(catID)
	in.Price = decimal.Zero
	_, err := uc.Create(sellerAna, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio cero debe rechazarse")

	in.Price = decimal.RequireFromString("-5")
	_, err = uc.Create(sellerAna, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")
}

func TestProductCreate_CategoriaInexistente_RetornaError(t *testing.T) {
	uc, _, _ := buildProductUseCase(t)

	in := createProductReq(99)
	_, err := uc.Create(sellerAna, in)
	assert.ErrorIs(t, err, domain.ErrCategoryInactive)
}

func TestProductCreate_CategoriaInactiva_RetornaError(t *testing.T) {
	uc, categoryUC, catID := buildProductUseCase(t)
	require.NoError(t, categoryUC.Deactivate(catID))

	_, err := uc.Create(sellerAna, createProductReq(catID))
	assert.ErrorIs(t, err, domain.ErrCategoryInactive)
}

func TestProductCreate_RedondeaPrecioADosDecimales(t *testing.T) {
	uc, _, catID := buildProductUseCase(t)

	in := createProductReq(catID)
	in.Price = decimal.RequireFromString("10.999")
	out, err := uc.Create(sellerAna, in)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("11.00").Equal(out.Price),
		"el precio debe redondearse a 2 decimales")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_ExcluyeCategoriaInactiva(t *testing.T) {
	uc, categoryUC, catID := buildProductUseCase(t)

	_, err := uc.Create(sellerAna, createProductReq(catID))
	require.NoError(t, err)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 1)

	// Al desactivar la categoría, sus productos desaparecen del listado
	require.NoError(t, categoryUC.Deactivate(catID))
	out, err = uc.List()
	require.NoError(t, err)
	assert.Empty(t, out, "productos de categorías inactivas no deben listarse")
}

func TestProductListByCategory_CategoriaInexistente_Retorna404(t *testing.T) {
	uc, _, _ := buildProductUseCase(t)

	_, err := uc.ListByCategory(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetByID_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc, _, _ := buildProductUseCase(t)

	_, err := uc.GetByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetByID_CategoriaInactiva_RetornaError(t *testing.T) {
	uc, categoryUC, catID := buildProductUseCase(t)

	p, err := uc.Create(sellerAna, createProductReq(catID))
	require.NoError(t, err)
	require.NoError(t, categoryUC.Deactivate(catID))

	_, err = uc.GetByID(p.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryInactive,
		"el detalle de un producto con categoría inactiva debe fallar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Deactivate — propiedad del seller
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_Parcial(t *testing.T) {
	uc, _, catID := buildProductUseCase(t)

	p, err := uc.Create(sellerAna, createProductReq(catID))
	require.NoError(t, err)

	out, err := uc.Update(p.ID, sellerAna, dto.UpdateProductRequest{Stock: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Stock)
	assert.Equal(t, p.Name, out.Name, "los campos no enviados deben conservarse")
	assert.True(t, p.Price.Equal(out.Price))
}

func TestProductUpdate_SellerAjeno_RetornaErrForbidden(t *testing.T) {
	uc, _, catID := buildProductUseCase(t)

	p, err := uc.Create(sellerAna, createProductReq(catID))
	require.NoError(t, err)

	_, err = uc.Update(p.ID, sellerLuis, dto.UpdateProductRequest{Stock: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un seller no puede modificar productos de otro")
}

func TestProductUpdate_NoExiste_RetornaErrNotFoundAntesQueForbidden(t *testing.T) {
	uc, _, _ := buildProductUseCase(t)

	// La existencia se resuelve antes que la propiedad
	_, err := uc.Update(99, sellerLuis, dto.UpdateProductRequest{Stock: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_CategoriaNuevaInactiva_RetornaError(t *testing.T) {
	uc, categoryUC, catID := buildProductUseCase(t)

	p, err := uc.Create(sellerAna, createProductReq(catID))
	require.NoError(t, err)

	otra, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)
	require.NoError(t, categoryUC.Deactivate(otra.ID))

	_, err = uc.Update(p.ID, sellerAna, dto.UpdateProductRequest{CategoryID: i64Ptr(otra.ID)})
	assert.ErrorIs(t, err, domain.ErrCategoryInactive)
}

func TestProductDeactivate_SoloElDueno(t *testing.T) {
	uc, _, catID := buildProductUseCase(t)

	p, err := uc.Create(sellerAna, createProductReq(catID))
	require.NoError(t, err)

	_, err = uc.Deactivate(p.ID, sellerLuis)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Deactivate(p.ID, sellerAna)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	// Ya desactivado: la fila activa no existe para un segundo delete
	_, err = uc.Deactivate(p.ID, sellerAna)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"desactivar dos veces debe fallar con ErrNotFound")
}

func TestProductMarkAllActive_ReactivaYReporta(t *testing.T) {
	uc, _, catID := buildProductUseCase(t)

	p1, _ := uc.Create(sellerAna, createProductReq(catID))
	in2 := createProductReq(catID)
	in2.Name = "Parlante BT"
	uc.Create(sellerAna, in2)

	_, err := uc.Deactivate(p1.ID, sellerAna)
	require.NoError(t, err)

	n, err := uc.MarkAllActive()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	out, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
