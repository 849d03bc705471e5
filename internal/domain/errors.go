package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidStatus     = errors.New("estado de pedido inválido")
	ErrReferenceNotFound = errors.New("la fila referenciada no existe")
	ErrCheckViolation    = errors.New("violación de constraint de la base de datos")
)
