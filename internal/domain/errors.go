package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los llamadores los envuelven con fmt.Errorf("%w: detalle") y se
// discriminan con errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidSortKey    = errors.New("clave de ordenamiento inválida")
)
