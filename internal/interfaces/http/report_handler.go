package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/orders-api/internal/application/dto"
	"github.com/jhoicas/orders-api/internal/application/usecase"
)

// ReportHandler maneja el endpoint de reporte de ventas.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetOrdersReport GET /orders/report
//
// Respuesta: {report: [...], metadata: {total_orders, execution_time_ms,
// query_count}}. Si el almacenamiento no responde, la petición falla con
// 500; no hay reintentos.
func (h *ReportHandler) GetOrdersReport(c *fiber.Ctx) error {
	report, err := h.uc.GetOrdersReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(report)
}
