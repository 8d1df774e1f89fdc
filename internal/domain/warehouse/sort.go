package warehouse

import (
	"fmt"
	"sort"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// SortKey clave de ordenamiento para listados de productos. Conjunto
// cerrado de comparadores, sin reflexión.
type SortKey string

// Claves de ordenamiento disponibles.
const (
	SortByName     SortKey = "name"
	SortByQuantity SortKey = "quantity"
	SortByPrice    SortKey = "price"
)

// ProductsSorted productos activos ordenados ascendentemente por la
// clave dada. El orden es estable: a igualdad de clave se conserva el
// orden de primer registro.
func (w *Warehouse) ProductsSorted(key SortKey) ([]*entity.Product, error) {
	var less func(a, b *entity.Product) bool
	switch key {
	case SortByName:
		less = func(a, b *entity.Product) bool { return a.Name < b.Name }
	case SortByQuantity:
		less = func(a, b *entity.Product) bool { return a.Quantity < b.Quantity }
	case SortByPrice:
		less = func(a, b *entity.Product) bool { return a.Price.LessThan(b.Price) }
	default:
		return nil, fmt.Errorf("%w: '%s' (disponibles: name, quantity, price)", domain.ErrInvalidSortKey, key)
	}

	out := w.Products()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}
