package usecase

import (
	"context"

	"github.com/jhoicas/orders-api/internal/application/dto"
	"github.com/jhoicas/orders-api/internal/domain"
	"github.com/jhoicas/orders-api/internal/domain/entity"
	"github.com/jhoicas/orders-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, orders repository.OrderRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, orders: orders}
}

// Create crea un nuevo cliente. La unicidad del email se pre-chequea aquí
// y la garantiza el constraint único de la base (el repo traduce la
// violación a domain.ErrDuplicate si dos inserts compiten).
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.customers.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Company: in.Company,
	}
	if err := uc.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	resp := customerToResponse(customer)
	return &resp, nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.customers.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, customerToResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente con sus pedidos. La relación Customer→Orders
// se resuelve con una consulta explícita al repositorio de pedidos.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerDetailResponse, error) {
	customer, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	orders, err := uc.orders.ListByCustomerID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.CustomerDetailResponse{
		CustomerResponse: customerToResponse(customer),
		Orders:           make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, orderToResponse(o))
	}
	return resp, nil
}

// Delete elimina un cliente. La cascada (pedidos y líneas) la ejecuta la
// base de datos.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.customers.Delete(ctx, id)
}

func customerToResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
	}
}
