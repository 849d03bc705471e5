package entity

import (
	"fmt"
	"time"
)

// Estados válidos de un pedido (enumeración cerrada, respaldada por el
// constraint check_status_values en la tabla orders).
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderStatuses lista los estados válidos en orden de ciclo de vida.
var OrderStatuses = []string{
	StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

// IsValidStatus indica si s pertenece a la enumeración cerrada de estados.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order representa un pedido de un cliente.
// CustomerID es la referencia explícita al cliente dueño; la navegación
// Order→Customer se resuelve con un lookup en el repositorio, no hay
// carga perezosa.
type Order struct {
	ID         int64
	CustomerID int64
	OrderDate  time.Time // asignado por la base de datos al insertar
	Status     string
	Notes      string // opcional
}

// String representación legible del pedido.
func (o *Order) String() string {
	return fmt.Sprintf("Order(id=%d, customer_id=%d, status='%s')", o.ID, o.CustomerID, o.Status)
}
