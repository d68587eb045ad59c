package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ecommerce-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ReviewUC   *usecase.ReviewUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas son públicas; las mutaciones
// combinan AuthMiddleware (identidad) con RequireRole (política por rol).
// Los chequeos de propiedad viven en los use cases.
func Router(app *fiber.App, deps RouterDeps) {
	authn := AuthMiddleware(deps.JWTSecret)

	// Users: registro y protocolo de tokens (público)
	users := app.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC)
	users.Post("/", authHandler.Register)
	users.Post("/token", authHandler.Token)
	users.Post("/refresh-token", authHandler.RefreshToken)
	users.Post("/access-token", authHandler.AccessToken)

	// Categories: lecturas públicas, mutaciones solo admin
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", authn, RequireRole(entity.RoleAdmin), categoryHandler.Create)
	categories.Put("/", authn, RequireRole(entity.RoleAdmin), categoryHandler.MarkAllActive)
	categories.Put("/:id", authn, RequireRole(entity.RoleAdmin), categoryHandler.Update)
	categories.Delete("/:id", authn, RequireRole(entity.RoleAdmin), categoryHandler.Deactivate)

	// Products: lecturas públicas, crear/mutar seller (dueño), reactivación masiva admin
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", authn, RequireRole(entity.RoleSeller), productHandler.Create)
	products.Put("/", authn, RequireRole(entity.RoleAdmin), productHandler.MarkAllActive)
	products.Get("/category/:id", productHandler.ListByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", authn, RequireRole(entity.RoleSeller), productHandler.Update)
	products.Delete("/:id", authn, RequireRole(entity.RoleSeller), productHandler.Deactivate)

	// Reviews: lecturas públicas, crear buyer, desactivar autor o admin
	reviews := app.Group("/reviews")
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews.Get("/", reviewHandler.List)
	reviews.Post("/", authn, RequireRole(entity.RoleBuyer), reviewHandler.Create)
	reviews.Delete("/:id", authn, RequireRole(entity.RoleBuyer, entity.RoleAdmin), reviewHandler.Deactivate)
}
