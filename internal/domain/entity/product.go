package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain"
)

// Product representa un producto almacenado. La referencia al proveedor
// es una clave de búsqueda (SupplierName), nunca propiedad: el agregado
// puede dar de baja un producto sin afectar al proveedor.
// Quantity y Price se revalidan en cada mutación, no solo al construir.
type Product struct {
	Name         string
	Quantity     int
	Price        decimal.Decimal // precio unitario de venta
	SupplierName string
	ArrivalDate  time.Time
	Description  string
}

// NewProduct construye un producto validado. Si arrivalDate es cero se
// usa la hora actual. Quantity cero es válido al construir, aunque el
// almacén lo dará de baja en cuanto un despacho lo deje en cero.
func NewProduct(name string, quantity int, price decimal.Decimal, supplierName string, arrivalDate time.Time, description string) (*Product, error) {
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: el nombre del producto debe tener al menos 3 caracteres", domain.ErrInvalidInput)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad del producto no puede ser negativa", domain.ErrInvalidInput)
	}
	if !price.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio del producto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if arrivalDate.IsZero() {
		arrivalDate = time.Now()
	}
	return &Product{
		Name:         name,
		Quantity:     quantity,
		Price:        price,
		SupplierName: supplierName,
		ArrivalDate:  arrivalDate,
		Description:  description,
	}, nil
}

// UpdateQuantity reemplaza la cantidad (valor absoluto, no delta).
func (p *Product) UpdateQuantity(newQuantity int) error {
	if newQuantity < 0 {
		return fmt.Errorf("%w: la cantidad del producto no puede ser negativa", domain.ErrInvalidInput)
	}
	p.Quantity = newQuantity
	return nil
}

// UpdatePrice reemplaza el precio unitario.
func (p *Product) UpdatePrice(newPrice decimal.Decimal) error {
	if !newPrice.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: el precio del producto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	p.Price = newPrice
	return nil
}

// String representación legible para logs y listados.
func (p *Product) String() string {
	return fmt.Sprintf("%s - %d und. a %s", p.Name, p.Quantity, p.Price.StringFixed(2))
}
