package usecase

import (
	"context"

	"github.com/jhoicas/orders-api/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción de almacenamiento con
// un OrderRepository atado a esa transacción. Lo implementa
// postgres.TxRunner.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
