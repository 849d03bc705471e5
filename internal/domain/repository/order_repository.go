package repository

import (
	"context"

	"github.com/jhoicas/orders-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// GetByID devuelve (nil, nil) si el pedido no existe.
type OrderRepository interface {
	// Create inserta el pedido; la base de datos asigna ID y OrderDate
	// (se escriben de vuelta en la entidad).
	Create(ctx context.Context, order *entity.Order) error
	// CreateItem inserta una línea; la base de datos asigna el ID.
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]*entity.Order, error)
	ListItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
	Delete(ctx context.Context, id int64) error
}
