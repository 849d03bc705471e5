package entity

import (
	"fmt"
	"time"
)

// Customer representa un cliente de la tienda.
// Company es opcional (cadena vacía = NULL en la base de datos).
type Customer struct {
	ID        int64
	Name      string
	Email     string // único a nivel global (constraint en DB)
	Company   string
	CreatedAt time.Time // asignado por la base de datos al insertar
}

// String representación legible del cliente.
func (c *Customer) String() string {
	return fmt.Sprintf("Customer(id=%d, name='%s', email='%s')", c.ID, c.Name, c.Email)
}
