package dto

import "time"

// CreateCustomerRequest cuerpo de POST /customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"` // opcional
}

// CustomerResponse representación de un cliente en respuestas.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerDetailResponse cliente con sus pedidos (GET /customers/:id).
// La relación Customer→Orders se resuelve con una consulta explícita.
type CustomerDetailResponse struct {
	CustomerResponse
	Orders []OrderResponse `json:"orders"`
}
