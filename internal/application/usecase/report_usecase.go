package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/orders-api/internal/application/dto"
	"github.com/jhoicas/orders-api/internal/domain/repository"
)

// ReportUseCase genera el reporte de ventas por pedido.
//
// El patrón de acceso es deliberadamente N+1: una consulta lista todos los
// pedidos y, por cada pedido, se consultan su cliente y sus líneas. El
// contador de consultas forma parte del contrato de la respuesta, así que
// no se reemplaza por un JOIN.
type ReportUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(orders repository.OrderRepository, customers repository.CustomerRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders, customers: customers}
}

// GetOrdersReport lee todos los pedidos y construye una entrada por pedido
// con el nombre del cliente, el número de líneas y el total
// (Σ cantidad × precio unitario, redondeado a 2 decimales).
//
// Metadata: total_orders == len(report), execution_time_ms es tiempo de
// pared de la agregación y query_count el número de viajes al
// almacenamiento (1 + 2·N).
func (uc *ReportUseCase) GetOrdersReport(ctx context.Context) (*dto.OrdersReportResponse, error) {
	start := time.Now()
	queries := 0

	orders, err := uc.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: list orders: %w", err)
	}
	queries++

	report := make([]dto.OrderReportEntry, 0, len(orders))
	for _, o := range orders {
		customer, err := uc.customers.GetByID(ctx, o.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("report: customer of order %d: %w", o.ID, err)
		}
		queries++
		if customer == nil {
			// La FK garantiza la existencia; si falta, el dato está corrupto.
			return nil, fmt.Errorf("report: order %d references missing customer %d", o.ID, o.CustomerID)
		}

		items, err := uc.orders.ListItemsByOrderID(ctx, o.ID)
		if err != nil {
			return nil, fmt.Errorf("report: items of order %d: %w", o.ID, err)
		}
		queries++

		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		report = append(report, dto.OrderReportEntry{
			OrderID:      o.ID,
			CustomerName: customer.Name,
			ItemCount:    len(items),
			OrderDate:    o.OrderDate,
			Status:       o.Status,
			Total:        total.Round(2).InexactFloat64(),
		})
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	return &dto.OrdersReportResponse{
		Report: report,
		Metadata: dto.ReportMetadata{
			TotalOrders:     len(report),
			ExecutionTimeMs: elapsed,
			QueryCount:      queries,
		},
	}, nil
}
