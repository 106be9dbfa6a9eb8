package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/session"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionManager *session.Manager
	CookieName     string

	CategoryUC     *usecase.CategoryUseCase
	ManufacturerUC *usecase.ManufacturerUseCase
	ProductUC      *usecase.ProductUseCase
	StockUC        *usecase.StockUseCase
	SaleHistoryUC  *usecase.SaleHistoryUseCase
	SaleWorkflow   *usecase.SaleWorkflow
	AccountUC      *usecase.AccountUseCase
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.SessionManager, deps.CookieName)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Todo lo demás requiere sesión válida
	protected := app.Group("/", RequireSession(deps.SessionManager, deps.CookieName))

	protected.Get("/", func(c *fiber.Ctx) error {
		vd := newViewData("Inicio", SessionFrom(c))
		return c.Render("index", vd, "layouts/main")
	})

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Post("/:name", categoryHandler.Update)
	categories.Post("/:name/delete", categoryHandler.Delete)

	manufacturers := protected.Group("/manufacturers")
	manufacturerHandler := NewManufacturerHandler(deps.ManufacturerUC)
	manufacturers.Get("/", manufacturerHandler.List)
	manufacturers.Post("/", manufacturerHandler.Create)
	manufacturers.Post("/:name", manufacturerHandler.Rename)
	manufacturers.Post("/:name/delete", manufacturerHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/:ean", productHandler.Update)
	products.Post("/:ean/delete", productHandler.Delete)

	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/deliveries", stockHandler.AddDelivery)

	// Historial completo, reservado a manager/admin
	sales := protected.Group("/sales", RequireRole(entity.RoleManager, entity.RoleAdmin))
	saleHandler := NewSaleHandler(deps.SaleHistoryUC)
	sales.Get("/", saleHandler.History)
	sales.Get("/report.pdf", saleHandler.Report)

	mySales := protected.Group("/my-sales")
	mySalesHandler := NewMySalesHandler(deps.SaleHistoryUC, deps.SaleWorkflow)
	mySales.Get("/", mySalesHandler.Page)
	mySales.Post("/draft", mySalesHandler.Begin)
	mySales.Post("/draft/submit", mySalesHandler.Submit)
	mySales.Post("/draft/items", mySalesHandler.AddItem)
	mySales.Post("/draft/items/:id", mySalesHandler.UpdateItem)
	mySales.Post("/draft/items/:id/delete", mySalesHandler.RemoveItem)
	mySales.Post("/pending/confirm", mySalesHandler.Confirm)
	mySales.Post("/pending/reject", mySalesHandler.Reject)

	accountHandler := NewAccountHandler(deps.AccountUC)
	protected.Get("/user", accountHandler.Profile)

	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/", accountHandler.Admin)
	admin.Post("/users", accountHandler.Register)
}
