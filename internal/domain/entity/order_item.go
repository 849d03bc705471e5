package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderItem representa una línea de un pedido.
// Quantity > 0 y UnitPrice >= 0 son constraints de la base de datos
// (check_positive_quantity, check_non_negative_price).
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal // NUMERIC(10,2)
}

// String representación legible de la línea.
func (i *OrderItem) String() string {
	return fmt.Sprintf("OrderItem(id=%d, order_id=%d, product='%s')", i.ID, i.OrderID, i.ProductName)
}
