package usecase

import (
	"context"

	"github.com/jhoicas/orders-api/internal/application/dto"
	"github.com/jhoicas/orders-api/internal/domain"
	"github.com/jhoicas/orders-api/internal/domain/entity"
	"github.com/jhoicas/orders-api/internal/domain/repository"
)

// OrderUseCase casos de uso para pedidos y sus líneas.
type OrderUseCase struct {
	orders repository.OrderRepository
	tx     OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, tx OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{orders: orders, tx: tx}
}

// Create crea un pedido y, si vienen, sus líneas en una sola transacción.
// El estado se valida contra la enumeración cerrada antes de tocar la base;
// cantidad y precio los vigilan los constraints CHECK de order_items.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderDetailResponse, error) {
	if in.CustomerID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}

	order := &entity.Order{
		CustomerID: in.CustomerID,
		Status:     in.Status,
		Notes:      in.Notes,
	}
	items := make([]*entity.OrderItem, 0, len(in.Items))

	err := uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.OrderItem{
				OrderID:     order.ID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			}
			if err := orders.CreateItem(ctx, item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.OrderDetailResponse{
		OrderResponse: orderToResponse(order),
		Items:         make([]dto.OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, itemToResponse(it))
	}
	return resp, nil
}

// AddItem añade una línea a un pedido existente.
func (uc *OrderUseCase) AddItem(ctx context.Context, orderID int64, in dto.CreateOrderItemRequest) (*dto.OrderItemResponse, error) {
	if in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.OrderItem{
		OrderID:     orderID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
	if err := uc.orders.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	resp := itemToResponse(item)
	return &resp, nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderDetailResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orders.ListItemsByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.OrderDetailResponse{
		OrderResponse: orderToResponse(order),
		Items:         make([]dto.OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, itemToResponse(it))
	}
	return resp, nil
}

// List lista todos los pedidos.
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := uc.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToResponse(o))
	}
	return out, nil
}

// Delete elimina un pedido (cascada hacia sus líneas).
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.orders.Delete(ctx, id)
}

func orderToResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate,
		Status:     o.Status,
		Notes:      o.Notes,
	}
}

func itemToResponse(i *entity.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:          i.ID,
		OrderID:     i.OrderID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
	}
}
