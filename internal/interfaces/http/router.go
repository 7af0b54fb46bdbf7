package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/tienda-ropa-api/internal/application/analytics"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/orders"
	"github.com/tu-usuario/tienda-ropa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC         *usecase.ProductUseCase
	CreateImportOrder *orders.CreateImportOrderUseCase
	CreateSalesOrder  *orders.CreateSalesOrderUseCase
	ListOrders        *orders.ListOrdersUseCase
	DashboardUC       *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Órdenes (recibos de mercancía y ventas)
	orderHandler := NewOrderHandler(deps.CreateImportOrder, deps.CreateSalesOrder, deps.ListOrders)
	importOrders := api.Group("/import-orders")
	importOrders.Post("/", orderHandler.CreateImportOrder)
	importOrders.Get("/", orderHandler.ListImportOrders)
	salesOrders := api.Group("/sales-orders")
	salesOrders.Post("/", orderHandler.CreateSalesOrder)
	salesOrders.Get("/", orderHandler.ListSalesOrders)

	// Dashboard (solo lectura)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
