package repository

import (
	"context"

	"github.com/jhoicas/orders-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID y GetByEmail devuelven (nil, nil) si el cliente no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	// Delete elimina el cliente; la base de datos elimina en cascada sus
	// pedidos y las líneas de esos pedidos.
	Delete(ctx context.Context, id int64) error
}
