package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest línea dentro de POST /orders o cuerpo de
// POST /orders/:id/items.
type CreateOrderItemRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest cuerpo de POST /orders. Items es opcional; si viene,
// pedido y líneas se insertan en la misma transacción.
type CreateOrderRequest struct {
	CustomerID int64                    `json:"customer_id"`
	Status     string                   `json:"status"`
	Notes      string                   `json:"notes,omitempty"`
	Items      []CreateOrderItemRequest `json:"items,omitempty"`
}

// OrderResponse representación de un pedido en respuestas.
type OrderResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	OrderDate  time.Time `json:"order_date"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
}

// OrderItemResponse representación de una línea en respuestas.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderDetailResponse pedido con sus líneas (GET /orders/:id).
type OrderDetailResponse struct {
	OrderResponse
	Items []OrderItemResponse `json:"items"`
}
