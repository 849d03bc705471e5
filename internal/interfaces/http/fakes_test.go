package http_test

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/orders-api/internal/application/usecase"
	"github.com/jhoicas/orders-api/internal/domain"
	"github.com/jhoicas/orders-api/internal/domain/entity"
	"github.com/jhoicas/orders-api/internal/domain/repository"
	apphttp "github.com/jhoicas/orders-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con el mismo contrato que los adaptadores de postgres.
// buildTestApp levanta la aplicación Fiber completa con las rutas reales.
// ──────────────────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	customers map[int64]*entity.Customer
	nextID    int64
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[int64]*entity.Customer), nextID: 1}
}

func (m *memCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	for _, ex := range m.customers {
		if ex.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	c.ID = m.nextID
	c.CreatedAt = time.Now()
	m.customers[c.ID] = c
	m.nextID++
	return nil
}

func (m *memCustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return m.customers[id], nil
}

func (m *memCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	for _, c := range m.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for id := int64(1); id < m.nextID; id++ {
		if c, ok := m.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCustomerRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.customers, id)
	return nil
}

type memOrderRepo struct {
	customers  *memCustomerRepo
	orders     map[int64]*entity.Order
	items      map[int64][]*entity.OrderItem
	nextID     int64
	nextItemID int64
}

func newMemOrderRepo(customers *memCustomerRepo) *memOrderRepo {
	return &memOrderRepo{
		customers: customers,
		orders:    make(map[int64]*entity.Order),
		items:     make(map[int64][]*entity.OrderItem),
		nextID:    1, nextItemID: 1,
	}
}

func (m *memOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if _, ok := m.customers.customers[o.CustomerID]; !ok {
		return domain.ErrReferenceNotFound
	}
	if !entity.IsValidStatus(o.Status) {
		return domain.ErrCheckViolation
	}
	o.ID = m.nextID
	o.OrderDate = time.Now()
	m.orders[o.ID] = o
	m.nextID++
	return nil
}

func (m *memOrderRepo) CreateItem(ctx context.Context, i *entity.OrderItem) error {
	if _, ok := m.orders[i.OrderID]; !ok {
		return domain.ErrReferenceNotFound
	}
	if i.Quantity <= 0 || i.UnitPrice.IsNegative() {
		return domain.ErrCheckViolation
	}
	i.ID = m.nextItemID
	m.items[i.OrderID] = append(m.items[i.OrderID], i)
	m.nextItemID++
	return nil
}

func (m *memOrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	return m.orders[id], nil
}

func (m *memOrderRepo) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	for id := int64(1); id < m.nextID; id++ {
		if o, ok := m.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) ListByCustomerID(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	var out []*entity.Order
	for id := int64(1); id < m.nextID; id++ {
		if o, ok := m.orders[id]; ok && o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) ListItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	return m.items[orderID], nil
}

func (m *memOrderRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.orders, id)
	delete(m.items, id)
	return nil
}

func (m *memOrderRepo) addOrderWithItems(customerID int64, status string, items ...*entity.OrderItem) *entity.Order {
	o := &entity.Order{ID: m.nextID, CustomerID: customerID, OrderDate: time.Now(), Status: status}
	m.orders[o.ID] = o
	m.nextID++
	for _, it := range items {
		it.ID = m.nextItemID
		it.OrderID = o.ID
		m.items[o.ID] = append(m.items[o.ID], it)
		m.nextItemID++
	}
	return o
}

func item(product string, qty int, price string) *entity.OrderItem {
	return &entity.OrderItem{ProductName: product, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

// memTxRunner ejecuta el callback directamente (sin transacción real).
type memTxRunner struct {
	orders repository.OrderRepository
}

func (m *memTxRunner) Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(m.orders)
}

// buildTestApp construye la aplicación Fiber con las rutas reales sobre los
// fakes en memoria.
func buildTestApp(customers *memCustomerRepo, orders *memOrderRepo) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(customers, orders),
		OrderUC:    usecase.NewOrderUseCase(orders, &memTxRunner{orders: orders}),
		ReportUC:   usecase.NewReportUseCase(orders, customers),
	})
	return app
}
