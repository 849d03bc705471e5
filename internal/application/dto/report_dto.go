package dto

import "time"

// OrderReportEntry resumen de un pedido en GET /orders/report.
// Total se expone como número JSON, no como string decimal: los consumidores
// del reporte esperan un valor numérico.
type OrderReportEntry struct {
	OrderID      int64     `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	ItemCount    int       `json:"item_count"`
	OrderDate    time.Time `json:"order_date"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
}

// ReportMetadata metadatos de ejecución del reporte.
// QueryCount cuenta viajes lógicos al almacenamiento (1 listado de pedidos
// + 2 por pedido: cliente y líneas). El patrón N+1 es comportamiento
// especificado, no un accidente a optimizar.
type ReportMetadata struct {
	TotalOrders     int     `json:"total_orders"`
	ExecutionTimeMs float64 `json:"execution_time_ms"`
	QueryCount      int     `json:"query_count"`
}

// OrdersReportResponse cuerpo de GET /orders/report.
type OrdersReportResponse struct {
	Report   []OrderReportEntry `json:"report"`
	Metadata ReportMetadata     `json:"metadata"`
}
