package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/orders-api/internal/domain"
	"github.com/jhoicas/orders-api/internal/domain/entity"
	"github.com/jhoicas/orders-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido. ID y order_date los asigna la
// base de datos y se escriben de vuelta en la entidad.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (customer_id, status, notes)
		VALUES ($1, $2, $3)
		RETURNING id, order_date`
	err := r.q.QueryRow(ctx, query,
		order.CustomerID, order.Status, nullIfEmpty(order.Notes),
	).Scan(&order.ID, &order.OrderDate)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.ErrReferenceNotFound
		case isCheckViolation(err):
			return domain.ErrCheckViolation
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del pedido.
func (r *OrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.OrderID, item.ProductName, item.Quantity, item.UnitPrice,
	).Scan(&item.ID)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.ErrReferenceNotFound
		case isCheckViolation(err):
			return domain.ErrCheckViolation
		}
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, status, notes
		FROM orders WHERE id = $1`
	var o entity.Order
	var notes *string
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Notes = derefStr(notes)
	return &o, nil
}

// ListAll lista todos los pedidos, ordenados por ID.
func (r *OrderRepo) ListAll(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, status, notes
		FROM orders ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListByCustomerID lista los pedidos de un cliente.
func (r *OrderRepo) ListByCustomerID(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, status, notes
		FROM orders WHERE customer_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListItemsByOrderID lista todas las líneas de un pedido.
func (r *OrderRepo) ListItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_name, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var i entity.OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductName, &i.Quantity, &i.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina un pedido por ID (cascada hacia order_items).
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var notes *string
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &notes); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Notes = derefStr(notes)
		list = append(list, &o)
	}
	return list, rows.Err()
}
