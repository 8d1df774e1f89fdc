package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.InventoryUC)
	suppliers.Post("/", supplierHandler.Register)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:name/products", supplierHandler.Products)

	// Products y movimientos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.InventoryUC)
	products.Post("/", productHandler.Receipt)
	products.Get("/", productHandler.List)
	products.Patch("/:name", productHandler.Update)
	products.Post("/:name/shipments", productHandler.Shipment)

	// Transactions (solo lectura)
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.InventoryUC)
	transactions.Get("/", transactionHandler.List)
}
