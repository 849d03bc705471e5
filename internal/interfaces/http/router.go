package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/orders-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	OrderUC    *usecase.OrderUseCase
	ReportUC   *usecase.ReportUseCase
}

// Router registra las rutas de la API. Todas las rutas son públicas y
// cuelgan de la raíz, sin prefijo de versión.
func Router(app *fiber.App, deps RouterDeps) {
	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete)

	orders := app.Group("/orders")
	reportHandler := NewReportHandler(deps.ReportUC)
	// /orders/report antes que /orders/:id para que "report" no se
	// interprete como un id.
	orders.Get("/report", reportHandler.GetOrdersReport)

	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/items", orderHandler.AddItem)
}
