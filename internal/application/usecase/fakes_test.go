package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/orders-api/internal/domain"
	"github.com/jhoicas/orders-api/internal/domain/entity"
	"github.com/jhoicas/orders-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios. Imitan el contrato de los adaptadores
// de postgres: GetByID devuelve (nil, nil) si no existe, Create asigna ID y
// timestamp, y las violaciones de FK se traducen a domain.ErrReferenceNotFound.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
	nextID    int64
	getCalls  int
	failWith  error // si se define, todas las operaciones fallan con este error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*entity.Customer), nextID: 1}
}

func (f *fakeCustomerRepo) addCustomer(name, email string) *entity.Customer {
	c := &entity.Customer{ID: f.nextID, Name: name, Email: email, CreatedAt: time.Now()}
	f.customers[c.ID] = c
	f.nextID++
	return c
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, c := range f.customers {
		if c.Email == customer.Email {
			return domain.ErrDuplicate
		}
	}
	customer.ID = f.nextID
	customer.CreatedAt = time.Now()
	f.customers[customer.ID] = customer
	f.nextID++
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	f.getCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.Customer
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.customers, id)
	return nil
}

type fakeOrderRepo struct {
	orders     map[int64]*entity.Order
	items      map[int64][]*entity.OrderItem // por order_id
	customers  *fakeCustomerRepo             // para simular la FK customer_id
	nextID     int64
	nextItemID int64
	listCalls  int
	itemCalls  int
	failWith   error
}

func newFakeOrderRepo(customers *fakeCustomerRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:     make(map[int64]*entity.Order),
		items:      make(map[int64][]*entity.OrderItem),
		customers:  customers,
		nextID:     1,
		nextItemID: 1,
	}
}

func (f *fakeOrderRepo) addOrder(customerID int64, status string) *entity.Order {
	o := &entity.Order{ID: f.nextID, CustomerID: customerID, OrderDate: time.Now(), Status: status}
	f.orders[o.ID] = o
	f.nextID++
	return o
}

func (f *fakeOrderRepo) addItem(orderID int64, product string, qty int, price string) *entity.OrderItem {
	i := &entity.OrderItem{
		ID: f.nextItemID, OrderID: orderID, ProductName: product,
		Quantity: qty, UnitPrice: mustDecimal(price),
	}
	f.items[orderID] = append(f.items[orderID], i)
	f.nextItemID++
	return i
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.customers != nil {
		if _, ok := f.customers.customers[order.CustomerID]; !ok {
			return domain.ErrReferenceNotFound
		}
	}
	order.ID = f.nextID
	order.OrderDate = time.Now()
	f.orders[order.ID] = order
	f.nextID++
	return nil
}

func (f *fakeOrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.orders[item.OrderID]; !ok {
		return domain.ErrReferenceNotFound
	}
	if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
		return domain.ErrCheckViolation
	}
	item.ID = f.nextItemID
	f.items[item.OrderID] = append(f.items[item.OrderID], item)
	f.nextItemID++
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.orders[id], nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context) ([]*entity.Order, error) {
	f.listCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.Order
	for id := int64(1); id < f.nextID; id++ {
		if o, ok := f.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByCustomerID(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.Order
	for id := int64(1); id < f.nextID; id++ {
		if o, ok := f.orders[id]; ok && o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	f.itemCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.orders, id)
	delete(f.items, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre el fake (sin transacción).
type fakeTxRunner struct {
	orders repository.OrderRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(f.orders)
}
